package memory_repo

import (
	"context"
	"sync"

	"coop_slots/internal/repository"
)

// repo - хранилище ключ-значение в памяти процесса
type repo struct {
	mtx  sync.RWMutex
	data map[string][]byte
}

func NewKVRepository() repository.KVRepository {
	return &repo{
		data: make(map[string][]byte),
	}
}

// Get возвращает копию значения или repository.ErrNotFound
func (r *repo) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mtx.RLock()
	defer r.mtx.RUnlock()

	v, ok := r.data[key]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return append([]byte(nil), v...), nil
}

func (r *repo) Set(ctx context.Context, key string, value []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.data[key] = append([]byte(nil), value...)
	return nil
}

// Delete удаляет ключ, отсутствие ключа ошибкой не считается
func (r *repo) Delete(ctx context.Context, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mtx.Lock()
	defer r.mtx.Unlock()

	delete(r.data, key)
	return nil
}
