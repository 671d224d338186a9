package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hospomate/hospomate-backend-go/internal/domain/insight"
	"github.com/hospomate/hospomate-backend-go/internal/domain/shiftreport"
	"github.com/hospomate/hospomate-backend-go/internal/handler/http/response"
)

type InsightHandler interface {
	// GetWeeklyDashboard returns the 168 hourly insights of one store week
	GetWeeklyDashboard(w http.ResponseWriter, r *http.Request)
	// GetShiftReport returns scheduled vs actual shifts and daily sales
	GetShiftReport(w http.ResponseWriter, r *http.Request)
}

type insightHandlerImpl struct {
	insightService     insight.InsightService
	shiftReportService shiftreport.ShiftReportService
}

func NewInsightHandler(insightService insight.InsightService, shiftReportService shiftreport.ShiftReportService) InsightHandler {
	return &insightHandlerImpl{
		insightService:     insightService,
		shiftReportService: shiftReportService,
	}
}

// GetWeeklyDashboard handles GET /insights/weekly/{storeID}
func (h *insightHandlerImpl) GetWeeklyDashboard(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")
	weekStart := r.URL.Query().Get("weekStart") // format: YYYY-MM-DD

	result, err := h.insightService.GetWeeklyDashboard(r.Context(), storeID, weekStart)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetShiftReport handles GET /shifts/report/{storeID}
func (h *insightHandlerImpl) GetShiftReport(w http.ResponseWriter, r *http.Request) {
	storeID := chi.URLParam(r, "storeID")
	start := r.URL.Query().Get("start")
	end := r.URL.Query().Get("end")

	result, err := h.shiftReportService.GetShiftReport(r.Context(), storeID, start, end)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
