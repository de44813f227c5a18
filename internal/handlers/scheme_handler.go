package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/senyabanana/capital-schemes/internal/ate"
	"github.com/senyabanana/capital-schemes/internal/logger"
	"github.com/senyabanana/capital-schemes/internal/services"
	"github.com/senyabanana/capital-schemes/internal/utils"

	"github.com/rs/zerolog"
)

// SchemeHandler - HTTP handlers for capital schemes.
type SchemeHandler struct {
	Service *services.SchemeService
	Log     zerolog.Logger
	Timeout time.Duration
}

// NewSchemeHandler creates a new SchemeHandler.
func NewSchemeHandler(service *services.SchemeService, log zerolog.Logger, timeout time.Duration) *SchemeHandler {
	return &SchemeHandler{
		Service: service,
		Log:     log,
		Timeout: timeout,
	}
}

// ImportSchemes handles POST /api/schemes.
func (h *SchemeHandler) ImportSchemes(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()
	log := logger.From(ctx, h.Log)

	var reprs []ate.SchemeRepr
	if err := utils.DecodeJSON(r, &reprs); err != nil {
		utils.SendError(w, log, err)
		return
	}
	if err := h.Service.ImportSchemes(ctx, reprs); err != nil {
		utils.SendError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// ClearSchemes handles DELETE /api/schemes.
func (h *SchemeHandler) ClearSchemes(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	if err := h.Service.ClearSchemes(ctx); err != nil {
		utils.SendError(w, logger.From(ctx, h.Log), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ExportScheme handles GET /api/schemes/{schemeId}.
func (h *SchemeHandler) ExportScheme(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()
	log := logger.From(ctx, h.Log)

	id, err := utils.ParseID(r, "schemeId")
	if err != nil {
		utils.SendError(w, log, err)
		return
	}
	repr, err := h.Service.ExportScheme(ctx, id)
	if err != nil {
		utils.SendError(w, log, err)
		return
	}
	utils.SendJSON(w, log, http.StatusOK, repr)
}

// GetScheme handles GET /api/schemes/{schemeId}/summary.
func (h *SchemeHandler) GetScheme(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()
	log := logger.From(ctx, h.Log)

	id, err := utils.ParseID(r, "schemeId")
	if err != nil {
		utils.SendError(w, log, err)
		return
	}
	summary, err := h.Service.GetScheme(ctx, id)
	if err != nil {
		utils.SendError(w, log, err)
		return
	}
	utils.SendJSON(w, log, http.StatusOK, summary)
}

// GetAuthoritySchemes handles GET /api/authorities/{authorityId}/schemes.
func (h *SchemeHandler) GetAuthoritySchemes(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()
	log := logger.From(ctx, h.Log)

	authorityID, err := utils.ParseID(r, "authorityId")
	if err != nil {
		utils.SendError(w, log, err)
		return
	}
	result, err := h.Service.GetAuthoritySchemes(ctx, authorityID)
	if err != nil {
		utils.SendError(w, log, err)
		return
	}
	utils.SendJSON(w, log, http.StatusOK, result)
}

// UpdateSpendToDate handles PUT /api/schemes/{schemeId}/spend-to-date.
func (h *SchemeHandler) UpdateSpendToDate(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()
	log := logger.From(ctx, h.Log)

	id, err := utils.ParseID(r, "schemeId")
	if err != nil {
		utils.SendError(w, log, err)
		return
	}
	var repr ate.SpendToDateRepr
	if err := utils.DecodeJSON(r, &repr); err != nil {
		utils.SendError(w, log, err)
		return
	}
	summary, err := h.Service.UpdateSpendToDate(ctx, id, repr)
	if err != nil {
		utils.SendError(w, log, err)
		return
	}
	utils.SendJSON(w, log, http.StatusOK, summary)
}

// UpdateMilestones handles PUT /api/schemes/{schemeId}/milestones.
func (h *SchemeHandler) UpdateMilestones(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()
	log := logger.From(ctx, h.Log)

	id, err := utils.ParseID(r, "schemeId")
	if err != nil {
		utils.SendError(w, log, err)
		return
	}
	var repr ate.MilestonesRepr
	if err := utils.DecodeJSON(r, &repr); err != nil {
		utils.SendError(w, log, err)
		return
	}
	summary, err := h.Service.UpdateMilestones(ctx, id, repr)
	if err != nil {
		utils.SendError(w, log, err)
		return
	}
	utils.SendJSON(w, log, http.StatusOK, summary)
}

// ReviewScheme handles POST /api/schemes/{schemeId}/reviews.
func (h *SchemeHandler) ReviewScheme(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()
	log := logger.From(ctx, h.Log)

	id, err := utils.ParseID(r, "schemeId")
	if err != nil {
		utils.SendError(w, log, err)
		return
	}
	summary, err := h.Service.ReviewScheme(ctx, id)
	if err != nil {
		utils.SendError(w, log, err)
		return
	}
	utils.SendJSON(w, log, http.StatusCreated, summary)
}
