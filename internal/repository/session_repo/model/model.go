package model

import "time"

// Snapshot - сохраняемая запись сессии. Поля указатели, чтобы отличать отсутствующее поле от нуля
type Snapshot struct {
	Chips       *int       `json:"chips"`
	BestWin     *int       `json:"bestWin"`
	Spins       *int       `json:"spins"`
	Wins        *int       `json:"wins"`
	LastSavedAt *time.Time `json:"lastSavedAt"`
}

// Complete - все поля на месте
func (s Snapshot) Complete() bool {
	return s.Chips != nil && s.BestWin != nil && s.Spins != nil && s.Wins != nil && s.LastSavedAt != nil
}
