package repository

import (
	"context"
	"errors"

	"coop_slots/internal/model"
)

var (
	// ErrNotFound - записи по ключу нет
	ErrNotFound = errors.New("record not found")
	// ErrCorrupt - запись есть, но не читается
	ErrCorrupt = errors.New("record is corrupt")
)

// KVRepository - хранилище ключ-значение
type KVRepository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}

type SessionRepository interface {
	GetSnapshot(ctx context.Context) (model.Snapshot, error)
	SaveSnapshot(ctx context.Context, snapshot model.Snapshot) error
	DeleteSnapshot(ctx context.Context) error
}

type StatsRepository interface {
	State() model.Stats
	UpdateState(bet, payout int)
}
