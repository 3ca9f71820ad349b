package session

import (
	"context"
	"errors"
	"fmt"

	"coop_slots/internal/model"
	"coop_slots/internal/repository"

	"go.uber.org/zap"
)

// Load читает сохраненную сессию.
// Если записи нет или она испорчена, сессия начинается заново, ошибка наружу не отдается
func (s *serv) Load(ctx context.Context) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	snapshot, err := s.repo.GetSnapshot(ctx)
	switch {
	case err == nil:
		s.snapshot = snapshot
	case errors.Is(err, repository.ErrNotFound):
		s.snapshot = model.FreshSnapshot()
	case errors.Is(err, repository.ErrCorrupt):
		s.log.Warn("session record is corrupt, starting fresh", zap.Error(err))
		s.snapshot = model.FreshSnapshot()
	default:
		s.log.Error("failed to load session, starting fresh", zap.Error(err))
		s.snapshot = model.FreshSnapshot()
	}
	s.refreshStatusLocked()
}

// Save заменяет снимок целиком и сохраняет его
func (s *serv) Save(ctx context.Context, chips, bestWin, spins, wins int) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	return s.commitLocked(ctx, model.NewSnapshot(chips, bestWin, spins, wins, s.now()))
}

// AddChips начисляет фишки, отрицательная сумма считается нулем.
// Баланс насыщается на math.MaxInt
func (s *serv) AddChips(ctx context.Context, delta int) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	cur := s.snapshot
	return s.commitLocked(ctx, model.NewSnapshot(model.SatAdd(cur.Chips, max(0, delta)), cur.BestWin, cur.Spins, cur.Wins, s.now()))
}

// SpendChips списывает фишки. Если фишек не хватает - возвращает false и ничего не меняет
func (s *serv) SpendChips(ctx context.Context, delta int) (bool, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	cost := max(0, delta)
	cur := s.snapshot
	if cur.Chips < cost {
		return false, nil
	}

	err := s.commitLocked(ctx, model.NewSnapshot(cur.Chips-cost, cur.BestWin, cur.Spins, cur.Wins, s.now()))
	if err != nil {
		return false, err
	}
	return true, nil
}

// RecordSpin учитывает один спин: счетчик спинов, побед, лучший выигрыш и начисление выплаты
func (s *serv) RecordSpin(ctx context.Context, payout int) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	win := max(0, payout)
	cur := s.snapshot
	wins := cur.Wins
	if win > 0 {
		wins = model.SatAdd(wins, 1)
	}
	return s.commitLocked(ctx, model.NewSnapshot(model.SatAdd(cur.Chips, win), max(cur.BestWin, win), model.SatAdd(cur.Spins, 1), wins, s.now()))
}

// ResetAll удаляет сохраненную запись и начинает сессию заново
func (s *serv) ResetAll(ctx context.Context) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()

	if err := s.repo.DeleteSnapshot(ctx); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	s.snapshot = model.FreshSnapshot()
	s.refreshStatusLocked()
	s.log.Info("session reset")
	return nil
}

// commitLocked сохраняет снимок и только после успешной записи заменяет его в памяти
func (s *serv) commitLocked(ctx context.Context, next model.Snapshot) error {
	if err := s.repo.SaveSnapshot(ctx, next); err != nil {
		s.log.Error("failed to persist session", zap.Error(err))
		return fmt.Errorf("persist session: %w", err)
	}
	s.snapshot = next
	s.refreshStatusLocked()
	return nil
}

// StatusLine - "Ready" для несохраненной сессии, иначе фишки, лучший выигрыш и число спинов
func StatusLine(s model.Snapshot) string {
	if s.LastSavedAt.IsZero() {
		return statusReady
	}
	return fmt.Sprintf("Chips %d • Best %d • Spins %d", s.Chips, s.BestWin, s.Spins)
}
