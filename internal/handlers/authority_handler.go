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

// AuthorityHandler - HTTP handlers for local authorities.
type AuthorityHandler struct {
	Service *services.AuthorityService
	Log     zerolog.Logger
	Timeout time.Duration
}

// NewAuthorityHandler creates a new AuthorityHandler.
func NewAuthorityHandler(service *services.AuthorityService, log zerolog.Logger, timeout time.Duration) *AuthorityHandler {
	return &AuthorityHandler{
		Service: service,
		Log:     log,
		Timeout: timeout,
	}
}

// ImportAuthorities handles POST /api/authorities.
func (h *AuthorityHandler) ImportAuthorities(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()
	log := logger.From(ctx, h.Log)

	var reprs []ate.AuthorityRepr
	if err := utils.DecodeJSON(r, &reprs); err != nil {
		utils.SendError(w, log, err)
		return
	}
	if err := h.Service.ImportAuthorities(ctx, reprs); err != nil {
		utils.SendError(w, log, err)
		return
	}
	w.WriteHeader(http.StatusCreated)
}

// ClearAuthorities handles DELETE /api/authorities.
func (h *AuthorityHandler) ClearAuthorities(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()

	if err := h.Service.ClearAuthorities(ctx); err != nil {
		utils.SendError(w, logger.From(ctx, h.Log), err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetAuthority handles GET /api/authorities/{authorityId}.
func (h *AuthorityHandler) GetAuthority(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), h.Timeout)
	defer cancel()
	log := logger.From(ctx, h.Log)

	id, err := utils.ParseID(r, "authorityId")
	if err != nil {
		utils.SendError(w, log, err)
		return
	}
	authority, err := h.Service.GetAuthority(ctx, id)
	if err != nil {
		utils.SendError(w, log, err)
		return
	}
	utils.SendJSON(w, log, http.StatusOK, authority)
}
