package spin

import (
	"math"

	"coop_slots/internal/model"
	"coop_slots/pkg/rng"
)

// Границы позиционных тиров по доле длины ленты
const (
	tier1Bound = 0.55
	tier2Bound = 0.78
	tier3Bound = 0.92
)

// pickIndex выбирает позицию остановки по взвешенному пулу:
// каждая позиция входит один раз, позиции тира <= 2 получают еще CommonBoost копий.
// RareCut на пул не влияет.
// Пул не строится: тир растет вместе с индексом, поэтому частые позиции идут префиксом,
// и номер в пуле переводится в индекс арифметически
func pickIndex(src rng.Source, stripLen int, bias model.Bias) int {
	if stripLen <= 0 {
		return 0
	}

	common := commonCount(stripLen)
	boost := max(0, bias.CommonBoost)
	// Ограничение, чтобы размер пула помещался в int
	if common > 0 && boost > (math.MaxInt-stripLen)/common {
		boost = (math.MaxInt - stripLen) / common
	}

	weight := 1 + boost
	commonSlots := common * weight
	r := src.Intn(stripLen + common*boost)

	if r < commonSlots {
		return r / weight
	}
	return common + (r - commonSlots)
}

// commonCount - число позиций тира <= 2 на ленте длины stripLen
func commonCount(stripLen int) int {
	n := 0
	for n < stripLen && tierAt(n, stripLen) <= 2 {
		n++
	}
	return n
}

// tierAt - тир позиции по ее месту на ленте (не по символу)
func tierAt(index, stripLen int) int {
	if stripLen <= 0 {
		return 2
	}
	u := float64(index) / float64(max(1, stripLen-1))
	switch {
	case u < tier1Bound:
		return 1
	case u < tier2Bound:
		return 2
	case u < tier3Bound:
		return 3
	default:
		return 4
	}
}
