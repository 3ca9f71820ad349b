package wager

import (
	"context"
	"errors"
	"fmt"

	"coop_slots/internal/metrics"
	"coop_slots/internal/model"

	"go.uber.org/zap"
)

const (
	// Максимальная выплата в кратности ставки
	maxPayoutMultiplier = 10000
	burstMin            = 1
	burstMax            = 10
)

// Spin списывает ставку, крутит барабаны и начисляет выигрыш
func (s *serv) Spin(ctx context.Context, wager model.Wager) (*model.WagerResult, error) {
	// Валидация ставки
	if wager.Bet <= 0 {
		return nil, ErrInvalidBet
	}

	var res *model.WagerResult

	// Начало транзакции: списание, спин и начисление либо проходят вместе, либо не проходят
	err := s.txManager.Do(ctx, func(txCtx context.Context) error {
		ok, err := s.session.SpendChips(txCtx, wager.Bet)
		if err != nil {
			return fmt.Errorf("spend chips: %w", err)
		}
		if !ok {
			return ErrNotEnoughChips
		}

		// КЛЮЧЕВОЙ ВЫЗОВ
		outcome := s.engine.SpinOnce()
		payout := ApplyMaxPayout(model.SatMul(outcome.TotalPayout, wager.Bet), wager.Bet, maxPayoutMultiplier)

		if err := s.session.RecordSpin(txCtx, payout); err != nil {
			// Без настоящей транзакции списание уже сохранено - возвращаем ставку
			if refundErr := s.session.AddChips(txCtx, wager.Bet); refundErr != nil {
				return errors.Join(fmt.Errorf("record spin: %w", err), fmt.Errorf("refund bet: %w", refundErr))
			}
			return fmt.Errorf("record spin: %w", err)
		}

		res = &model.WagerResult{
			Outcome: outcome,
			Bet:     wager.Bet,
			Payout:  payout,
			Chips:   s.session.Snapshot().Chips,
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, ErrNotEnoughChips) {
			metrics.ObserveWagerError("not_enough_chips")
			return nil, err
		}
		// Транзакция могла откатиться - перечитываем сессию из хранилища
		s.session.Load(ctx)
		metrics.ObserveWagerError("storage")
		s.log.Error("wager spin failed", zap.Int("bet", wager.Bet), zap.Error(err))
		return nil, err
	}

	// Обновляем статистику
	s.statsRepo.UpdateState(wager.Bet, res.Payout)
	metrics.ObserveWager(wager.Bet, res.Payout, res.Chips)
	metrics.ObserveRTP(s.statsRepo.State())

	s.log.Info("wager spin",
		zap.Int("bet", wager.Bet),
		zap.Int("payout", res.Payout),
		zap.Int("chips", res.Chips))

	return res, nil
}

// Burst выполняет серию спинов со ставкой, count обрезается до [1,10].
// На первой ошибке останавливается и возвращает уже сыгранные спины
func (s *serv) Burst(ctx context.Context, wager model.Wager, count int) ([]model.WagerResult, error) {
	c := min(max(burstMin, count), burstMax)

	results := make([]model.WagerResult, 0, c)
	for i := 0; i < c; i++ {
		res, err := s.Spin(ctx, wager)
		if err != nil {
			return results, err
		}
		results = append(results, *res)
	}
	return results, nil
}

func (s *serv) Stats() model.Stats {
	return s.statsRepo.State()
}

// ApplyMaxPayout применяет лимит по максимальному выигрышу
func ApplyMaxPayout(amount, bet, maxMult int) int {
	maxPay := model.SatMul(maxMult, bet)
	if amount > maxPay {
		return maxPay
	}
	return max(0, amount)
}
