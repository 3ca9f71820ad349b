package wager

import (
	"context"
	"errors"

	"coop_slots/internal/repository"
	"coop_slots/internal/service"

	"go.uber.org/zap"
)

var (
	ErrInvalidBet     = errors.New("bet must be positive")
	ErrNotEnoughChips = errors.New("not enough chips")
)

// TxManager - то, что нужно сервису от менеджера транзакций (trm.Manager подходит)
type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// DirectTx выполняет функцию без транзакции (для хранилищ без транзакций)
type DirectTx struct{}

func (DirectTx) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type serv struct {
	engine    service.SpinService
	session   service.SessionService
	statsRepo repository.StatsRepository
	txManager TxManager
	log       *zap.Logger
}

// NewWagerService Создать сервис спинов на фишки
func NewWagerService(
	engine service.SpinService,
	session service.SessionService,
	statsRepo repository.StatsRepository,
	txManager TxManager,
	log *zap.Logger,
) service.WagerService {
	if txManager == nil {
		txManager = DirectTx{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &serv{
		engine:    engine,
		session:   session,
		statsRepo: statsRepo,
		txManager: txManager,
		log:       log,
	}
}
