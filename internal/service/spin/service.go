package spin

import (
	"sync"
	"sync/atomic"

	"coop_slots/internal/model"
	"coop_slots/internal/service"
	"coop_slots/pkg/rng"

	"go.uber.org/zap"
)

// serv - движок спинов. Владеет конфигурацией и последним результатом,
// спины сериализуются мьютексом
type serv struct {
	mtx sync.Mutex

	cfg       model.ReelConfig
	payouts   model.PayoutTable
	last      *model.Outcome
	spinIndex int
	spinning  atomic.Bool

	rnd rng.Source
	log *zap.Logger
}

type Option func(*serv)

// WithSource подменяет источник случайных чисел (для тестов и симуляций)
func WithSource(src rng.Source) Option {
	return func(s *serv) {
		if src != nil {
			s.rnd = src
		}
	}
}

func WithPayoutTable(table model.PayoutTable) Option {
	return func(s *serv) {
		s.payouts = model.NewPayoutTable(table.Rows)
	}
}

func WithLogger(log *zap.Logger) Option {
	return func(s *serv) {
		if log != nil {
			s.log = log
		}
	}
}

// NewSpinService Создать движок с конфигурацией барабанов
func NewSpinService(cfg model.ReelConfig, opts ...Option) service.SpinService {
	s := &serv{
		cfg:     cfg.Normalize(),
		payouts: model.StandardPayoutTable(),
		rnd:     rng.New(),
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ApplyConfig заменяет конфигурацию целиком
func (s *serv) ApplyConfig(cfg model.ReelConfig) {
	next := cfg.Normalize()

	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.cfg = next
	s.log.Info("reel config applied",
		zap.Int("reels", next.Columns()),
		zap.Int("rows", next.Rows),
		zap.Int("min_matches", next.MinMatches))
}

func (s *serv) ApplyPayoutTable(table model.PayoutTable) {
	next := model.NewPayoutTable(table.Rows)

	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.payouts = next
}

// Config возвращает копию текущей конфигурации
func (s *serv) Config() model.ReelConfig {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.cfg.Normalize()
}

func (s *serv) PayoutTable() model.PayoutTable {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return model.NewPayoutTable(s.payouts.Rows)
}

// LastOutcome - результат последнего спина, false до первого спина
func (s *serv) LastOutcome() (model.Outcome, bool) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	if s.last == nil {
		return model.Outcome{}, false
	}
	return *s.last, true
}

func (s *serv) SpinIndex() int {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	return s.spinIndex
}

// Spinning читается без мьютекса, поэтому виден во время спина
func (s *serv) Spinning() bool {
	return s.spinning.Load()
}
