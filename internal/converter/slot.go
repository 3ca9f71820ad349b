package converter

import (
	"fmt"

	"coop_slots/internal/api/dto/slot"
	"coop_slots/internal/model"
)

func ToOutcomeResponse(o model.Outcome) slot.OutcomeResponse {
	grid := make([][]string, len(o.Grid))
	for r, row := range o.Grid {
		grid[r] = symbolIDs(row)
	}
	return slot.OutcomeResponse{
		Grid:        grid,
		Stops:       append([]int{}, o.Stops...),
		WinLines:    toWinLines(o.WinLines),
		TotalPayout: o.TotalPayout,
		SpinIndex:   o.Index,
	}
}

func ToBurstResponse(outcomes []model.Outcome) slot.BurstResponse {
	result := make([]slot.OutcomeResponse, len(outcomes))
	for i, o := range outcomes {
		result[i] = ToOutcomeResponse(o)
	}
	return slot.BurstResponse{Outcomes: result}
}

func toWinLines(lines []model.WinLine) []slot.WinLine {
	result := make([]slot.WinLine, len(lines))
	for i, l := range lines {
		result[i] = slot.WinLine{
			Row:    l.Row,
			Symbol: l.Symbol.ID(),
			Count:  l.Count,
			Payout: l.Payout,
		}
	}
	return result
}

func ToConfigResponse(cfg model.ReelConfig, table model.PayoutTable) slot.ConfigResponse {
	reels := make([]slot.Reel, len(cfg.Reels))
	for i, r := range cfg.Reels {
		reels[i] = slot.Reel{
			Strip: symbolIDs(r.Strip),
			Bias:  slot.Bias{CommonBoost: r.Bias.CommonBoost, RareCut: r.Bias.RareCut},
		}
	}

	payouts := make([]slot.PayoutRow, len(table.Rows))
	for i, row := range table.Rows {
		payouts[i] = slot.PayoutRow{Symbol: row.Symbol.ID(), X3: row.X3, X4: row.X4, X5: row.X5}
	}

	return slot.ConfigResponse{
		Reels:      reels,
		Rows:       cfg.Rows,
		MinMatches: cfg.MinMatches,
		Payouts:    payouts,
	}
}

// ToReelConfig переводит запрос в конфигурацию. Ограничения применяет конструктор модели
func ToReelConfig(req slot.ConfigRequest) (model.ReelConfig, error) {
	reels := make([]model.Reel, len(req.Reels))
	for i, r := range req.Reels {
		strip, err := parseSymbols(r.Strip)
		if err != nil {
			return model.ReelConfig{}, fmt.Errorf("reel %d: %w", i, err)
		}
		reels[i] = model.NewReel(strip, model.NewBias(r.Bias.CommonBoost, r.Bias.RareCut))
	}
	return model.NewReelConfig(reels, req.Rows, req.MinMatches), nil
}

// ToPayoutTable - второе значение false, если строки выплат не переданы
func ToPayoutTable(rows []slot.PayoutRow) (model.PayoutTable, bool, error) {
	if len(rows) == 0 {
		return model.PayoutTable{}, false, nil
	}
	result := make([]model.PayoutRow, len(rows))
	for i, r := range rows {
		s, err := model.ParseSymbol(r.Symbol)
		if err != nil {
			return model.PayoutTable{}, false, fmt.Errorf("payout row %d: %w", i, err)
		}
		result[i] = model.NewPayoutRow(s, r.X3, r.X4, r.X5)
	}
	return model.NewPayoutTable(result), true, nil
}

func symbolIDs(symbols []model.Symbol) []string {
	ids := make([]string, len(symbols))
	for i, s := range symbols {
		ids[i] = s.ID()
	}
	return ids
}

func parseSymbols(ids []string) ([]model.Symbol, error) {
	symbols := make([]model.Symbol, len(ids))
	for i, id := range ids {
		s, err := model.ParseSymbol(id)
		if err != nil {
			return nil, err
		}
		symbols[i] = s
	}
	return symbols, nil
}

func ToSimulationRequest(req slot.SimulateRequest) model.SimulationRequest {
	return model.SimulationRequest{
		Rounds:  req.Rounds,
		Workers: req.Workers,
		Seed:    req.Seed,
	}
}

func ToSimulateResponse(r model.SimulationReport) slot.SimulateResponse {
	hits := make(map[string]int, len(r.LineHits))
	for s, n := range r.LineHits {
		hits[s.ID()] = n
	}
	return slot.SimulateResponse{
		Rounds:      r.Rounds,
		Workers:     r.Workers,
		Seed:        r.Seed,
		Wins:        r.Wins,
		TotalPayout: r.TotalPayout,
		MaxPayout:   r.MaxPayout,
		HitRate:     r.HitRate,
		RTP:         r.RTP,
		LineHits:    hits,
	}
}
