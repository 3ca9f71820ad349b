package wager

import "coop_slots/internal/api/dto/slot"

type SpinRequest struct {
	Bet int `json:"bet"` // Размер ставки (положительное целое, >0)
}

type BurstRequest struct {
	Bet   int `json:"bet"`
	Count int `json:"count"`
}

type SpinResponse struct {
	Outcome slot.OutcomeResponse `json:"outcome"`
	Bet     int                  `json:"bet"`
	Payout  int                  `json:"payout"` // Выигрыш в фишках
	Chips   int                  `json:"chips"`  // Баланс после
}

type BurstResponse struct {
	Rounds []SpinResponse `json:"rounds"`
	Error  string         `json:"error,omitempty"` // Причина остановки серии
}

type StatsResponse struct {
	TotalSpins  int     `json:"total_spins"`
	TotalBet    int64   `json:"total_bet"`
	TotalPayout int64   `json:"total_payout"`
	CurrentRTP  float64 `json:"current_rtp"`
	WindowRTP   float64 `json:"window_rtp"`
	WindowSize  int     `json:"window_size"`
}
