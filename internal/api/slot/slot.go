package slot

import (
	"errors"
	"net/http"

	dto "coop_slots/internal/api/dto/slot"
	"coop_slots/internal/converter"
	"coop_slots/internal/metrics"
	"coop_slots/internal/service"
	"coop_slots/internal/service/simulate"
	"coop_slots/pkg/req"
	"coop_slots/pkg/resp"

	"go.uber.org/zap"
)

var ErrNoSpins = errors.New("no spins yet")

type HandlerDeps struct {
	Serv service.SpinService
	Sim  service.SimulationService
	Log  *zap.Logger
}

type Handler struct {
	serv service.SpinService
	sim  service.SimulationService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{serv: deps.Serv, sim: deps.Sim, log: log}
}

// Spin - один спин без ставки
func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	outcome := h.serv.SpinOnce()
	metrics.ObserveFreeSpins(1)
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToOutcomeResponse(outcome))
}

func (h *Handler) Burst(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.BurstRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err)
		return
	}

	outcomes := h.serv.SpinBurst(payload.Count)
	metrics.ObserveFreeSpins(len(outcomes))
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToBurstResponse(outcomes))
}

func (h *Handler) Last(w http.ResponseWriter, r *http.Request) {
	outcome, ok := h.serv.LastOutcome()
	if !ok {
		resp.WriteError(w, http.StatusNotFound, ErrNoSpins)
		return
	}
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToOutcomeResponse(outcome))
}

func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToConfigResponse(h.serv.Config(), h.serv.PayoutTable()))
}

// PutConfig заменяет конфигурацию барабанов целиком, таблицу выплат - если она передана
func (h *Handler) PutConfig(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.ConfigRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err)
		return
	}

	cfg, err := converter.ToReelConfig(payload)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err)
		return
	}
	table, hasTable, err := converter.ToPayoutTable(payload.Payouts)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err)
		return
	}

	h.serv.ApplyConfig(cfg)
	if hasTable {
		h.serv.ApplyPayoutTable(table)
	}
	h.log.Info("slot config replaced", zap.Bool("payouts", hasTable))

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToConfigResponse(h.serv.Config(), h.serv.PayoutTable()))
}

// Simulate - RTP прогон на копии текущей конфигурации, боевой движок не меняется
func (h *Handler) Simulate(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SimulateRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err)
		return
	}

	report, err := h.sim.Run(r.Context(), converter.ToSimulationRequest(payload))
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, simulate.ErrInvalidRounds) {
			status = http.StatusBadRequest
		}
		resp.WriteError(w, status, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSimulateResponse(*report))
}
