package session

import (
	"context"
	"sync"
	"time"

	"coop_slots/internal/model"
	"coop_slots/internal/repository"
	"coop_slots/internal/service"

	"go.uber.org/zap"
)

// Строка статуса, пока сессия ни разу не сохранялась
const statusReady = "Ready"

// serv - хранилище сессии игрока. Единственный владелец снимка
// и единственный писатель сохраненной записи
type serv struct {
	mtx sync.Mutex

	repo     repository.SessionRepository
	snapshot model.Snapshot
	status   string

	now func() time.Time
	log *zap.Logger
}

type Option func(*serv)

// WithClock подменяет часы (для тестов)
func WithClock(now func() time.Time) Option {
	return func(s *serv) {
		if now != nil {
			s.now = now
		}
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(s *serv) {
		if log != nil {
			s.log = log
		}
	}
}

// NewSessionService создает хранилище и сразу загружает сохраненную сессию
func NewSessionService(ctx context.Context, repo repository.SessionRepository, opts ...Option) service.SessionService {
	s := &serv{
		repo:     repo,
		snapshot: model.FreshSnapshot(),
		status:   statusReady,
		now:      time.Now,
		log:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Load(ctx)
	return s
}

// Snapshot возвращает текущий снимок
func (s *serv) Snapshot() model.Snapshot {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.snapshot
}

// Status - производная строка для отображения, источником правды не является
func (s *serv) Status() string {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.status
}

func (s *serv) refreshStatusLocked() {
	s.status = StatusLine(s.snapshot)
}
