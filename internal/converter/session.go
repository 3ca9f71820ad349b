package converter

import (
	"coop_slots/internal/api/dto/session"
	"coop_slots/internal/model"
)

func ToSessionResponse(s model.Snapshot, status string) session.SessionResponse {
	res := session.SessionResponse{
		Chips:   s.Chips,
		BestWin: s.BestWin,
		Spins:   s.Spins,
		Wins:    s.Wins,
		Status:  status,
	}
	if !s.LastSavedAt.IsZero() {
		savedAt := s.LastSavedAt
		res.LastSavedAt = &savedAt
	}
	return res
}
