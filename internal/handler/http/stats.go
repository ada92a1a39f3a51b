package http

import (
	"net/http"

	"github.com/isj-group4/fingerprint-attendance-go/internal/domain/stats"
	"github.com/isj-group4/fingerprint-attendance-go/internal/handler/http/response"
)

type StatsHandler interface {
	Daily(w http.ResponseWriter, r *http.Request)
	Period(w http.ResponseWriter, r *http.Request)
}

type statsHandlerImpl struct {
	statsService stats.Service
}

func NewStatsHandler(statsService stats.Service) StatsHandler {
	return &statsHandlerImpl{statsService: statsService}
}

// Daily implements StatsHandler.
func (h *statsHandlerImpl) Daily(w http.ResponseWriter, r *http.Request) {
	daily, err := h.statsService.DailyStats(r.Context(), r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, daily)
}

// Period implements StatsHandler.
func (h *statsHandlerImpl) Period(w http.ResponseWriter, r *http.Request) {
	period, err := h.statsService.PeriodStats(
		r.Context(),
		r.URL.Query().Get("start_date"),
		r.URL.Query().Get("end_date"),
	)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, period)
}
