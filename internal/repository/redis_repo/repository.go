package redis_repo

import (
	"context"
	"errors"

	"coop_slots/internal/repository"

	"github.com/redis/go-redis/v9"
)

type repo struct {
	rdb    redis.UniversalClient
	prefix string
}

// NewKVRepository - хранилище ключ-значение в Redis. Ключи хранятся с префиксом
func NewKVRepository(rdb redis.UniversalClient, prefix string) repository.KVRepository {
	return &repo{
		rdb:    rdb,
		prefix: prefix,
	}
}

func (r *repo) key(k string) string {
	return r.prefix + k
}

func (r *repo) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := r.rdb.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return value, nil
}

// Set пишет значение без TTL
func (r *repo) Set(ctx context.Context, key string, value []byte) error {
	return r.rdb.Set(ctx, r.key(key), value, 0).Err()
}

func (r *repo) Delete(ctx context.Context, key string) error {
	return r.rdb.Del(ctx, r.key(key)).Err()
}
