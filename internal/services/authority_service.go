package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/senyabanana/capital-schemes/internal/ate"
	"github.com/senyabanana/capital-schemes/internal/logger"
	"github.com/senyabanana/capital-schemes/internal/models"
	"github.com/senyabanana/capital-schemes/internal/repository"

	"github.com/rs/zerolog"
)

// AuthorityService imports and looks up local authorities.
type AuthorityService struct {
	Authorities repository.AuthorityRepository
	Schemes     repository.SchemeRepository
	Translator  *ate.Translator
	Log         zerolog.Logger
}

// NewAuthorityService creates a new AuthorityService.
func NewAuthorityService(
	authorities repository.AuthorityRepository,
	schemes repository.SchemeRepository,
	translator *ate.Translator,
	log zerolog.Logger,
) *AuthorityService {
	return &AuthorityService{Authorities: authorities, Schemes: schemes, Translator: translator, Log: log}
}

// ImportAuthorities adds authorities.
func (s *AuthorityService) ImportAuthorities(ctx context.Context, reprs []ate.AuthorityRepr) error {
	authorities := make([]models.Authority, 0, len(reprs))
	for _, repr := range reprs {
		if err := ate.Validate(repr); err != nil {
			return models.WrapErrorResponse(http.StatusBadRequest, err)
		}
		authorities = append(authorities, s.Translator.Authority(repr))
	}

	if err := s.Authorities.Add(ctx, authorities...); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return models.WrapErrorResponse(http.StatusConflict, err)
		}
		logger.From(ctx, s.Log).Error().Err(err).Msg("failed to add authorities")
		return models.NewErrorResponse(http.StatusInternalServerError, "internal server error")
	}
	logger.From(ctx, s.Log).Info().Int("count", len(authorities)).Msg("authorities imported")
	return nil
}

// GetAuthority returns an authority.
func (s *AuthorityService) GetAuthority(ctx context.Context, id int) (*ate.AuthorityRepr, error) {
	authority, err := s.Authorities.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, models.NewErrorResponse(http.StatusNotFound, fmt.Sprintf("authority %d not found", id))
	}
	if err != nil {
		logger.From(ctx, s.Log).Error().Err(err).Msg("failed to get authority")
		return nil, models.NewErrorResponse(http.StatusInternalServerError, "internal server error")
	}
	repr := s.Translator.AuthorityRepr(*authority)
	return &repr, nil
}

// ClearAuthorities deletes every authority together with the schemes they own.
func (s *AuthorityService) ClearAuthorities(ctx context.Context) error {
	if err := s.Schemes.Clear(ctx); err != nil {
		logger.From(ctx, s.Log).Error().Err(err).Msg("failed to clear schemes")
		return models.NewErrorResponse(http.StatusInternalServerError, "internal server error")
	}
	if err := s.Authorities.Clear(ctx); err != nil {
		logger.From(ctx, s.Log).Error().Err(err).Msg("failed to clear authorities")
		return models.NewErrorResponse(http.StatusInternalServerError, "internal server error")
	}
	logger.From(ctx, s.Log).Info().Msg("authorities cleared")
	return nil
}
