package model

import "time"

// FreshChips - стартовый баланс новой сессии
const FreshChips = 500

// Snapshot - сохраненный прогресс игрока
type Snapshot struct {
	Chips       int
	BestWin     int
	Spins       int
	Wins        int
	LastSavedAt time.Time
}

// NewSnapshot создает снимок, отрицательные значения обрезаются до 0
func NewSnapshot(chips, bestWin, spins, wins int, savedAt time.Time) Snapshot {
	return Snapshot{
		Chips:       max(0, chips),
		BestWin:     max(0, bestWin),
		Spins:       max(0, spins),
		Wins:        max(0, wins),
		LastSavedAt: savedAt,
	}
}

// FreshSnapshot - снимок новой сессии (500 фишек, счетчики по нулям)
func FreshSnapshot() Snapshot {
	return Snapshot{Chips: FreshChips}
}
