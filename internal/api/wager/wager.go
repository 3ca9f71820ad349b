package wager

import (
	"errors"
	"net/http"

	dto "coop_slots/internal/api/dto/wager"
	"coop_slots/internal/converter"
	"coop_slots/internal/service"
	wagerServ "coop_slots/internal/service/wager"
	"coop_slots/pkg/req"
	"coop_slots/pkg/resp"
)

type HandlerDeps struct {
	Serv service.WagerService
}

type Handler struct {
	serv service.WagerService
}

func NewHandler(deps HandlerDeps) *Handler {
	return &Handler{serv: deps.Serv}
}

func (h *Handler) Spin(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.SpinRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err)
		return
	}

	result, err := h.serv.Spin(r.Context(), converter.ToWager(payload.Bet))
	if err != nil {
		resp.WriteError(w, statusFromError(err), err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSpinResponse(*result))
}

// Burst - серия спинов. Если серия прервалась после первого раунда,
// сыгранные раунды возвращаются вместе с причиной остановки
func (h *Handler) Burst(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.BurstRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err)
		return
	}

	results, err := h.serv.Burst(r.Context(), converter.ToWager(payload.Bet), payload.Count)
	if err != nil && len(results) == 0 {
		resp.WriteError(w, statusFromError(err), err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, converter.ToWagerBurstResponse(results, err))
}

func (h *Handler) Stats(w http.ResponseWriter, r *http.Request) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToStatsResponse(h.serv.Stats()))
}

func statusFromError(err error) int {
	switch {
	case errors.Is(err, wagerServ.ErrInvalidBet):
		return http.StatusBadRequest
	case errors.Is(err, wagerServ.ErrNotEnoughChips):
		return http.StatusPaymentRequired
	default:
		return http.StatusInternalServerError
	}
}
