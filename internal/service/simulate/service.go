package simulate

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"coop_slots/internal/model"
	"coop_slots/internal/service"
	"coop_slots/internal/service/spin"
	"coop_slots/pkg/rng"

	"github.com/panjf2000/ants/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	MaxRounds  = 1_000_000
	MaxWorkers = 32
	// Как часто воркер проверяет отмену контекста
	cancelCheckEvery = 1024
)

var ErrInvalidRounds = errors.New("rounds must be positive")

// ConfigSource - откуда берется текущая конфигурация автомата
type ConfigSource interface {
	Config() model.ReelConfig
	PayoutTable() model.PayoutTable
}

type serv struct {
	src ConfigSource
	log *zap.Logger
}

// NewSimulationService Создать сервис RTP симуляции.
// Каждый прогон работает на копии текущей конфигурации и не трогает боевой движок
func NewSimulationService(src ConfigSource, log *zap.Logger) service.SimulationService {
	if log == nil {
		log = zap.NewNop()
	}
	return &serv{src: src, log: log}
}

// chunkResult - итог одного куска прогона
type chunkResult struct {
	wins      int
	total     int64
	maxPayout int
	lineHits  map[model.Symbol]int
}

// Run делит прогон на куски по числу воркеров. Кусок i крутит свой движок с seed+i,
// поэтому при одинаковом seed результат не зависит от планировщика
func (s *serv) Run(ctx context.Context, req model.SimulationRequest) (*model.SimulationReport, error) {
	if req.Rounds <= 0 {
		return nil, ErrInvalidRounds
	}
	rounds := min(req.Rounds, MaxRounds)
	workers := min(max(1, req.Workers), MaxWorkers, rounds)
	seed := req.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	cfg := s.src.Config()
	table := s.src.PayoutTable()

	pool, err := ants.NewPool(workers)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}
	defer pool.Release()

	results := make([]chunkResult, workers)
	errs := make([]error, workers)
	var wg sync.WaitGroup

	started := time.Now()
	for i := 0; i < workers; i++ {
		n := rounds / workers
		if i < rounds%workers {
			n++
		}

		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			results[i], errs[i] = runChunk(ctx, cfg, table, seed+int64(i), n)
		})
		if err != nil {
			wg.Done()
			errs[i] = fmt.Errorf("submit chunk %d: %w", i, err)
		}
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}

	report := merge(results, rounds, workers, seed)
	s.log.Info("simulation done",
		zap.Int("rounds", rounds),
		zap.Int("workers", workers),
		zap.Int64("seed", seed),
		zap.Float64("rtp", report.RTP),
		zap.Duration("took", time.Since(started)))

	return report, nil
}

func runChunk(ctx context.Context, cfg model.ReelConfig, table model.PayoutTable, seed int64, n int) (chunkResult, error) {
	engine := spin.NewSpinService(cfg,
		spin.WithSource(rng.NewSeeded(seed)),
		spin.WithPayoutTable(table),
	)

	res := chunkResult{lineHits: make(map[model.Symbol]int)}
	for i := 0; i < n; i++ {
		if i%cancelCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return res, err
			}
		}

		out := engine.SpinOnce()
		if out.TotalPayout > 0 {
			res.wins++
		}
		res.total += int64(out.TotalPayout)
		res.maxPayout = max(res.maxPayout, out.TotalPayout)
		for _, l := range out.WinLines {
			res.lineHits[l.Symbol]++
		}
	}
	return res, nil
}

func merge(chunks []chunkResult, rounds, workers int, seed int64) *model.SimulationReport {
	report := &model.SimulationReport{
		Rounds:   rounds,
		Workers:  workers,
		Seed:     seed,
		LineHits: make(map[model.Symbol]int),
	}
	for _, c := range chunks {
		report.Wins += c.wins
		report.TotalPayout += c.total
		report.MaxPayout = max(report.MaxPayout, c.maxPayout)
		for s, n := range c.lineHits {
			report.LineHits[s] += n
		}
	}

	r := decimal.NewFromInt(int64(rounds))
	hundred := decimal.NewFromInt(100)
	report.HitRate = decimal.NewFromInt(int64(report.Wins)).Div(r).Mul(hundred).Round(2).InexactFloat64()
	report.RTP = decimal.NewFromInt(report.TotalPayout).Div(r).Mul(hundred).Round(2).InexactFloat64()
	return report
}
