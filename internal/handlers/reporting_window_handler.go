package handlers

import (
	"net/http"
	"time"

	"github.com/senyabanana/capital-schemes/internal/ate"
	"github.com/senyabanana/capital-schemes/internal/logger"
	"github.com/senyabanana/capital-schemes/internal/services"
	"github.com/senyabanana/capital-schemes/internal/utils"

	"github.com/rs/zerolog"
)

// ReportingWindowHandler - HTTP handler for reporting windows.
type ReportingWindowHandler struct {
	Service    services.ReportingWindowService
	Translator *ate.Translator
	Log        zerolog.Logger
	Now        func() time.Time
}

// NewReportingWindowHandler creates a new ReportingWindowHandler.
func NewReportingWindowHandler(service services.ReportingWindowService, translator *ate.Translator, log zerolog.Logger) *ReportingWindowHandler {
	return &ReportingWindowHandler{
		Service:    service,
		Translator: translator,
		Log:        log,
		Now:        time.Now,
	}
}

// GetReportingWindow handles GET /api/reporting-window?date=YYYY-MM-DD. The date defaults to now.
func (h *ReportingWindowHandler) GetReportingWindow(w http.ResponseWriter, r *http.Request) {
	log := logger.From(r.Context(), h.Log)

	date, err := utils.ParseDate(r.URL.Query().Get("date"), h.Translator.Location(), h.Now())
	if err != nil {
		utils.SendError(w, log, err)
		return
	}
	window := h.Service.GetByDate(date)
	if window == nil {
		utils.SendErrorResponse(w, log, http.StatusNotFound, "no reporting window is open on "+date.Format("2006-01-02"))
		return
	}
	utils.SendJSON(w, log, http.StatusOK, h.Translator.ReportingWindowRepr(*window, date))
}
