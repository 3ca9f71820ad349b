package session

import (
	"net/http"

	dto "coop_slots/internal/api/dto/session"
	"coop_slots/internal/converter"
	"coop_slots/internal/service"
	"coop_slots/pkg/req"
	"coop_slots/pkg/resp"

	"go.uber.org/zap"
)

type HandlerDeps struct {
	Serv service.SessionService
	Log  *zap.Logger
}

type Handler struct {
	serv service.SessionService
	log  *zap.Logger
}

func NewHandler(deps HandlerDeps) *Handler {
	log := deps.Log
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{serv: deps.Serv, log: log}
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	h.writeSession(w)
}

func (h *Handler) Deposit(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.AmountRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.serv.AddChips(r.Context(), payload.Amount); err != nil {
		h.log.Error("deposit failed", zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, err)
		return
	}
	h.writeSession(w)
}

// Spend - списание без спина. Нехватка фишек не ошибка: spent=false
func (h *Handler) Spend(w http.ResponseWriter, r *http.Request) {
	payload, err := req.Decode[dto.AmountRequest](r.Body)
	if err != nil {
		resp.WriteError(w, http.StatusBadRequest, err)
		return
	}

	ok, err := h.serv.SpendChips(r.Context(), payload.Amount)
	if err != nil {
		h.log.Error("spend failed", zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, err)
		return
	}

	resp.WriteJSONResponse(w, http.StatusOK, dto.SpendResponse{
		Spent:   ok,
		Session: converter.ToSessionResponse(h.serv.Snapshot(), h.serv.Status()),
	})
}

func (h *Handler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.serv.ResetAll(r.Context()); err != nil {
		h.log.Error("reset failed", zap.Error(err))
		resp.WriteError(w, http.StatusInternalServerError, err)
		return
	}
	h.writeSession(w)
}

// Reload перечитывает сессию из хранилища
func (h *Handler) Reload(w http.ResponseWriter, r *http.Request) {
	h.serv.Load(r.Context())
	h.writeSession(w)
}

func (h *Handler) writeSession(w http.ResponseWriter) {
	resp.WriteJSONResponse(w, http.StatusOK, converter.ToSessionResponse(h.serv.Snapshot(), h.serv.Status()))
}
