package model

// WinLine - выигрышная серия в одном ряду сетки
type WinLine struct {
	Row    int
	Symbol Symbol
	Count  int
	Payout int
}

// Outcome - результат одного спина
type Outcome struct {
	Index       int        // Порядковый номер спина
	Grid        [][]Symbol // Сетка rows x columns
	Stops       []int      // Позиция остановки каждого барабана
	WinLines    []WinLine  // Не больше одной линии на ряд
	TotalPayout int
}

// Wager - ставка на спин
type Wager struct {
	Bet int
}

// WagerResult - результат спина со ставкой
type WagerResult struct {
	Outcome Outcome
	Bet     int
	Payout  int // Выплата в фишках (TotalPayout * Bet с ограничением)
	Chips   int // Баланс после спина
}
