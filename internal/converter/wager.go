package converter

import (
	"coop_slots/internal/api/dto/wager"
	"coop_slots/internal/model"
)

func ToWager(bet int) model.Wager {
	return model.Wager{Bet: bet}
}

func ToSpinResponse(r model.WagerResult) wager.SpinResponse {
	return wager.SpinResponse{
		Outcome: ToOutcomeResponse(r.Outcome),
		Bet:     r.Bet,
		Payout:  r.Payout,
		Chips:   r.Chips,
	}
}

func ToWagerBurstResponse(results []model.WagerResult, err error) wager.BurstResponse {
	rounds := make([]wager.SpinResponse, len(results))
	for i, r := range results {
		rounds[i] = ToSpinResponse(r)
	}
	res := wager.BurstResponse{Rounds: rounds}
	if err != nil {
		res.Error = err.Error()
	}
	return res
}

func ToStatsResponse(s model.Stats) wager.StatsResponse {
	return wager.StatsResponse{
		TotalSpins:  s.TotalSpins,
		TotalBet:    s.TotalBet,
		TotalPayout: s.TotalPayout,
		CurrentRTP:  s.CurrentRTP,
		WindowRTP:   s.WindowRTP,
		WindowSize:  s.WindowSize,
	}
}
