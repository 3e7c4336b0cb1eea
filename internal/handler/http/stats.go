package http

import (
	"net/http"
	"strconv"

	"github.com/dezporcento/tipshare-backend-go/internal/domain/stats"
	"github.com/dezporcento/tipshare-backend-go/internal/handler/http/response"
)

type StatsHandler interface {
	Overview(w http.ResponseWriter, r *http.Request)
	Totals(w http.ResponseWriter, r *http.Request)
	Ranking(w http.ResponseWriter, r *http.Request)
	DateSpans(w http.ResponseWriter, r *http.Request)
	PresenceHistory(w http.ResponseWriter, r *http.Request)
	PaymentHistory(w http.ResponseWriter, r *http.Request)
}

type StatsHandlerImpl struct {
	statsService stats.StatsService
}

func NewStatsHandler(statsService stats.StatsService) StatsHandler {
	return &StatsHandlerImpl{statsService: statsService}
}

// Overview implements StatsHandler.
func (h *StatsHandlerImpl) Overview(w http.ResponseWriter, r *http.Request) {
	resp, err := h.statsService.Overview(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Totals implements StatsHandler.
func (h *StatsHandlerImpl) Totals(w http.ResponseWriter, r *http.Request) {
	resp, err := h.statsService.Totals(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// Ranking implements StatsHandler.
func (h *StatsHandlerImpl) Ranking(w http.ResponseWriter, r *http.Request) {
	resp, err := h.statsService.Ranking(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// DateSpans implements StatsHandler.
func (h *StatsHandlerImpl) DateSpans(w http.ResponseWriter, r *http.Request) {
	resp, err := h.statsService.DateSpans(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// PresenceHistory implements StatsHandler.
func (h *StatsHandlerImpl) PresenceHistory(w http.ResponseWriter, r *http.Request) {
	resp, err := h.statsService.PresenceHistory(r.Context(), queryLimit(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// PaymentHistory implements StatsHandler.
func (h *StatsHandlerImpl) PaymentHistory(w http.ResponseWriter, r *http.Request) {
	resp, err := h.statsService.PaymentHistory(r.Context(), queryLimit(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, resp)
}

// queryLimit parses the optional ?limit= parameter; 0 means service default.
func queryLimit(r *http.Request) int {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}
