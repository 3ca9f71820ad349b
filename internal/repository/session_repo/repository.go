package session_repo

import (
	"context"
	"errors"
	"fmt"

	"coop_slots/internal/model"
	"coop_slots/internal/repository"
	repoModel "coop_slots/internal/repository/session_repo/model"

	jsoniter "github.com/json-iterator/go"
)

// SnapshotKey - ключ записи сессии в хранилище
const SnapshotKey = "coop.session.snapshot"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

type repo struct {
	kv  repository.KVRepository
	key string
}

func NewSessionRepository(kv repository.KVRepository) repository.SessionRepository {
	return NewSessionRepositoryWithKey(kv, SnapshotKey)
}

func NewSessionRepositoryWithKey(kv repository.KVRepository, key string) repository.SessionRepository {
	return &repo{
		kv:  kv,
		key: key,
	}
}

// GetSnapshot - чтение снимка.
// Возвращает repository.ErrNotFound, если записи нет, и repository.ErrCorrupt, если запись не читается
func (r *repo) GetSnapshot(ctx context.Context) (model.Snapshot, error) {
	data, err := r.kv.Get(ctx, r.key)
	if err != nil {
		return model.Snapshot{}, err
	}

	var raw repoModel.Snapshot
	if err := json.Unmarshal(data, &raw); err != nil {
		return model.Snapshot{}, fmt.Errorf("%w: %v", repository.ErrCorrupt, err)
	}
	if !raw.Complete() {
		return model.Snapshot{}, fmt.Errorf("%w: missing fields", repository.ErrCorrupt)
	}

	return model.NewSnapshot(*raw.Chips, *raw.BestWin, *raw.Spins, *raw.Wins, *raw.LastSavedAt), nil
}

// SaveSnapshot - запись снимка.
// Если снимок не кодируется, старая запись удаляется
func (r *repo) SaveSnapshot(ctx context.Context, snapshot model.Snapshot) error {
	data, err := encode(snapshot)
	if err != nil {
		if delErr := r.kv.Delete(ctx, r.key); delErr != nil {
			return errors.Join(err, delErr)
		}
		return err
	}
	return r.kv.Set(ctx, r.key, data)
}

func (r *repo) DeleteSnapshot(ctx context.Context) error {
	return r.kv.Delete(ctx, r.key)
}

func encode(s model.Snapshot) ([]byte, error) {
	savedAt := s.LastSavedAt.UTC()
	data, err := json.Marshal(repoModel.Snapshot{
		Chips:       &s.Chips,
		BestWin:     &s.BestWin,
		Spins:       &s.Spins,
		Wins:        &s.Wins,
		LastSavedAt: &savedAt,
	})
	if err != nil {
		return nil, fmt.Errorf("encode snapshot: %w", err)
	}
	return data, nil
}
