package session

import "time"

type AmountRequest struct {
	Amount int `json:"amount"` // Отрицательное значение считается нулем
}

type SessionResponse struct {
	Chips       int        `json:"chips"`
	BestWin     int        `json:"best_win"`
	Spins       int        `json:"spins"`
	Wins        int        `json:"wins"`
	LastSavedAt *time.Time `json:"last_saved_at,omitempty"` // Нет, если сессия не сохранялась
	Status      string     `json:"status"`
}

type SpendResponse struct {
	Spent   bool            `json:"spent"`
	Session SessionResponse `json:"session"`
}
