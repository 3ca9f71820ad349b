package stats_repo

import (
	"sync"

	"coop_slots/internal/model"

	"github.com/shopspring/decimal"
)

// Размер окна последних спинов для расчета RTP
const defaultWindowSize = 500

var hundred = decimal.NewFromInt(100)

// Результат спина для окна
type spinResult struct {
	bet    decimal.Decimal
	payout decimal.Decimal
}

// StateRepo хранит статистику RTP в памяти
type StateRepo struct {
	mtx sync.RWMutex

	totalSpins  int
	totalBet    decimal.Decimal
	totalPayout decimal.Decimal

	window     []spinResult
	windowSize int
}

// NewStatsRepository Конструктор репозитория с пустой статистикой
func NewStatsRepository() *StateRepo {
	return NewStatsRepositoryWithWindow(defaultWindowSize)
}

func NewStatsRepositoryWithWindow(size int) *StateRepo {
	return &StateRepo{
		totalBet:    decimal.Zero,
		totalPayout: decimal.Zero,
		window:      make([]spinResult, 0, max(1, size)),
		windowSize:  max(1, size),
	}
}

// State возвращает копию текущей статистики
func (r *StateRepo) State() model.Stats {
	r.mtx.RLock()
	defer r.mtx.RUnlock()

	var windowBet, windowPayout decimal.Decimal
	for _, s := range r.window {
		windowBet = windowBet.Add(s.bet)
		windowPayout = windowPayout.Add(s.payout)
	}

	return model.Stats{
		TotalSpins:  r.totalSpins,
		TotalBet:    r.totalBet.IntPart(),
		TotalPayout: r.totalPayout.IntPart(),
		CurrentRTP:  rtp(r.totalPayout, r.totalBet),
		WindowRTP:   rtp(windowPayout, windowBet),
		WindowSize:  len(r.window),
	}
}

// UpdateState Обновление статистики после спина
func (r *StateRepo) UpdateState(bet, payout int) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	b := decimal.NewFromInt(int64(max(0, bet)))
	p := decimal.NewFromInt(int64(max(0, payout)))

	r.totalSpins++
	r.totalBet = r.totalBet.Add(b)
	r.totalPayout = r.totalPayout.Add(p)

	// Добавляем спин в окно и поддерживаем его размер
	r.window = append(r.window, spinResult{bet: b, payout: p})
	if len(r.window) > r.windowSize {
		r.window = r.window[1:]
	}
}

// rtp = payout / bet * 100, округление до сотых
func rtp(payout, bet decimal.Decimal) float64 {
	if !bet.IsPositive() {
		return 0
	}
	return payout.Div(bet).Mul(hundred).Round(2).InexactFloat64()
}
