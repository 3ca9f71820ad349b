package metrics

import (
	"net/http"

	"coop_slots/internal/model"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	labelMode   = "mode"
	labelScope  = "scope"
	labelReason = "reason"

	ModeFree  = "free"
	ModeWager = "wager"
)

// Имена метрик: coop_slots_<name>

var (
	spinsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "coop_slots_spins_total",
		Help: "Количество спинов",
	}, []string{labelMode})

	wagerBetTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coop_slots_wager_bet_total",
		Help: "Сумма ставок в фишках",
	})

	wagerPayoutTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "coop_slots_wager_payout_total",
		Help: "Сумма выплат в фишках",
	})

	wagerErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "coop_slots_wager_errors_total",
		Help: "Неудачные спины со ставкой",
	}, []string{labelReason})

	sessionChips = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "coop_slots_session_chips",
		Help: "Баланс сессии после последнего спина",
	})

	rtpPct = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "coop_slots_rtp_pct",
		Help: "RTP %, scope=total|window",
	}, []string{labelScope})
)

func ObserveFreeSpins(n int) {
	spinsTotal.WithLabelValues(ModeFree).Add(float64(max(0, n)))
}

func ObserveWager(bet, payout, chips int) {
	spinsTotal.WithLabelValues(ModeWager).Inc()
	wagerBetTotal.Add(float64(max(0, bet)))
	wagerPayoutTotal.Add(float64(max(0, payout)))
	sessionChips.Set(float64(chips))
}

func ObserveWagerError(reason string) {
	wagerErrors.WithLabelValues(reason).Inc()
}

func ObserveRTP(s model.Stats) {
	rtpPct.WithLabelValues("total").Set(s.CurrentRTP)
	rtpPct.WithLabelValues("window").Set(s.WindowRTP)
}

// Handler - ручка /metrics
func Handler() http.Handler {
	return promhttp.Handler()
}
