package model

import "math"

// Множители базовой выплаты для 3, 4 и 5 символов в ряд
var payoutMultipliers = [3]float64{1.0, 1.8, 2.8}

// PayoutRow - строка таблицы выплат для одного символа
type PayoutRow struct {
	Symbol Symbol `json:"symbol" yaml:"symbol"`
	X3     int    `json:"x3" yaml:"x3"`
	X4     int    `json:"x4" yaml:"x4"`
	X5     int    `json:"x5" yaml:"x5"`
}

// PayoutTable - таблица выплат (символ, количество) -> сумма
type PayoutTable struct {
	Rows []PayoutRow `json:"rows" yaml:"rows"`
}

// NewPayoutRow создает строку, отрицательные выплаты обрезаются до 0
func NewPayoutRow(symbol Symbol, x3, x4, x5 int) PayoutRow {
	return PayoutRow{
		Symbol: symbol,
		X3:     max(0, x3),
		X4:     max(0, x4),
		X5:     max(0, x5),
	}
}

// NewPayoutTable создает таблицу. Пустой список строк заменяется стандартной таблицей
func NewPayoutTable(rows []PayoutRow) PayoutTable {
	if len(rows) == 0 {
		return StandardPayoutTable()
	}
	normalized := make([]PayoutRow, len(rows))
	for i, r := range rows {
		normalized[i] = NewPayoutRow(r.Symbol, r.X3, r.X4, r.X5)
	}
	return PayoutTable{Rows: normalized}
}

// StandardPayoutTable строит по строке на каждый символ каталога
func StandardPayoutTable() PayoutTable {
	symbols := AllSymbols()
	rows := make([]PayoutRow, 0, len(symbols))
	for _, s := range symbols {
		rows = append(rows, NewPayoutRow(s,
			defaultPayout(s, 3),
			defaultPayout(s, 4),
			defaultPayout(s, 5),
		))
	}
	return PayoutTable{Rows: rows}
}

// Payout возвращает выплату за count одинаковых символов.
// count обрезается до [0,5], меньше 3 - выплаты нет.
// Если символа нет в таблице, выплата считается по стандартной формуле
func (t PayoutTable) Payout(symbol Symbol, count int) int {
	c := min(max(0, count), 5)
	if c < 3 {
		return 0
	}

	row, ok := t.Row(symbol)
	if !ok {
		return defaultPayout(symbol, c)
	}

	switch c {
	case 3:
		return row.X3
	case 4:
		return row.X4
	default:
		return row.X5
	}
}

// Row ищет первую строку для символа
func (t PayoutTable) Row(symbol Symbol) (PayoutRow, bool) {
	for _, r := range t.Rows {
		if r.Symbol == symbol {
			return r, true
		}
	}
	return PayoutRow{}, false
}

// defaultPayout - round(base * mult), не меньше 1 для count 3..5
func defaultPayout(symbol Symbol, count int) int {
	if count < 3 {
		return 0
	}
	mult := payoutMultipliers[min(count, 5)-3]
	return max(1, int(math.Round(float64(symbol.BasePayout())*mult)))
}
