package spin

import (
	"coop_slots/internal/model"

	"go.uber.org/zap"
)

const (
	// Ограничения серии спинов
	burstMin = 1
	burstMax = 10
)

// SpinOnce выполняет один спин: остановки барабанов, сетка, выигрышные ряды, выплата
func (s *serv) SpinOnce() model.Outcome {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.spinLocked()
}

// SpinBurst выполняет серию спинов, count обрезается до [1,10]
func (s *serv) SpinBurst(count int) []model.Outcome {
	c := min(max(burstMin, count), burstMax)

	s.mtx.Lock()
	defer s.mtx.Unlock()

	list := make([]model.Outcome, 0, c)
	for i := 0; i < c; i++ {
		list = append(list, s.spinLocked())
	}
	return list
}

func (s *serv) spinLocked() model.Outcome {
	s.spinning.Store(true)
	defer s.spinning.Store(false)

	s.spinIndex++

	stops := s.pickStops()
	grid := makeGrid(s.cfg, stops)
	lines := evaluateRows(grid, s.cfg.MinMatches, s.payouts)

	total := 0
	for _, l := range lines {
		total = model.SatAdd(total, l.Payout)
	}

	outcome := model.Outcome{
		Index:       s.spinIndex,
		Grid:        grid,
		Stops:       stops,
		WinLines:    lines,
		TotalPayout: max(0, total),
	}
	s.last = &outcome

	s.log.Debug("spin",
		zap.Int("index", s.spinIndex),
		zap.Ints("stops", stops),
		zap.Int("lines", len(lines)),
		zap.Int("payout", outcome.TotalPayout))

	return outcome
}

// pickStops выбирает позицию остановки для каждого барабана
func (s *serv) pickStops() []int {
	stops := make([]int, len(s.cfg.Reels))
	for col, reel := range s.cfg.Reels {
		stops[col] = pickIndex(s.rnd, len(reel.Strip), reel.Bias)
	}
	return stops
}

// makeGrid строит видимую сетку: grid[row][col] = strip[(stop+row) % len(strip)]
func makeGrid(cfg model.ReelConfig, stops []int) [][]model.Symbol {
	cols := len(cfg.Reels)
	grid := make([][]model.Symbol, cfg.Rows)
	for row := range grid {
		grid[row] = make([]model.Symbol, cols)
	}

	for col, reel := range cfg.Reels {
		n := len(reel.Strip)
		if n == 0 {
			continue
		}
		for row := 0; row < cfg.Rows; row++ {
			grid[row][col] = reel.Strip[(stops[col]+row)%n]
		}
	}
	return grid
}

// evaluateRows ищет серии одинаковых символов слева направо в каждом ряду.
// На ряд выдается не больше одной линии: если в ряду несколько подходящих серий,
// остается последняя
func evaluateRows(grid [][]model.Symbol, minMatches int, payouts model.PayoutTable) []model.WinLine {
	var wins []model.WinLine

	for r, row := range grid {
		if len(row) == 0 {
			continue
		}

		current := row[0]
		count := 1
		var best *model.WinLine

		for c := 1; c < len(row); c++ {
			if row[c] == current {
				count++
				continue
			}
			if count >= minMatches {
				best = newWinLine(r, current, count, payouts)
			}
			current = row[c]
			count = 1
		}

		// Серия, дошедшая до конца ряда
		if count >= minMatches {
			best = newWinLine(r, current, count, payouts)
		}

		if best != nil {
			wins = append(wins, *best)
		}
	}
	return wins
}

func newWinLine(row int, symbol model.Symbol, count int, payouts model.PayoutTable) *model.WinLine {
	return &model.WinLine{
		Row:    row,
		Symbol: symbol,
		Count:  count,
		Payout: max(0, payouts.Payout(symbol, count)),
	}
}
