package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/senyabanana/capital-schemes/internal/ate"
	"github.com/senyabanana/capital-schemes/internal/logger"
	"github.com/senyabanana/capital-schemes/internal/metrics"
	"github.com/senyabanana/capital-schemes/internal/models"
	"github.com/senyabanana/capital-schemes/internal/repository"

	"github.com/rs/zerolog"
)

// SchemeService imports, exports and updates capital schemes.
type SchemeService struct {
	Schemes     repository.SchemeRepository
	Authorities repository.AuthorityRepository
	Windows     ReportingWindowService
	Translator  *ate.Translator
	Metrics     *metrics.Metrics
	Log         zerolog.Logger
	Now         func() time.Time
}

// NewSchemeService creates a new SchemeService.
func NewSchemeService(
	schemes repository.SchemeRepository,
	authorities repository.AuthorityRepository,
	windows ReportingWindowService,
	translator *ate.Translator,
	m *metrics.Metrics,
	log zerolog.Logger,
) *SchemeService {
	return &SchemeService{
		Schemes:     schemes,
		Authorities: authorities,
		Windows:     windows,
		Translator:  translator,
		Metrics:     m,
		Log:         log,
		Now:         time.Now,
	}
}

// ImportSchemes adds schemes with their full revision history.
func (s *SchemeService) ImportSchemes(ctx context.Context, reprs []ate.SchemeRepr) error {
	authorityIDs := make(map[string]int)
	schemes := make([]*models.Scheme, 0, len(reprs))
	for _, repr := range reprs {
		if err := ate.Validate(repr); err != nil {
			return models.WrapErrorResponse(http.StatusBadRequest, err)
		}
		for _, overview := range repr.OverviewRevisions {
			if err := s.resolveAuthority(ctx, overview.AuthorityAbbreviation, authorityIDs); err != nil {
				return err
			}
		}
		scheme, err := s.Translator.Scheme(repr, authorityIDs)
		if err != nil {
			return models.WrapErrorResponse(http.StatusBadRequest, err)
		}
		schemes = append(schemes, scheme)
	}

	if err := s.Schemes.Add(ctx, schemes...); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return models.WrapErrorResponse(http.StatusConflict, err)
		}
		return s.internalError(ctx, "failed to add schemes", err)
	}
	s.Metrics.AddSchemesImported(len(schemes))
	logger.From(ctx, s.Log).Info().Int("count", len(schemes)).Msg("schemes imported")
	return nil
}

// ExportScheme returns the full revision history of a scheme.
func (s *SchemeService) ExportScheme(ctx context.Context, id int) (*ate.SchemeRepr, error) {
	scheme, err := s.getScheme(ctx, id)
	if err != nil {
		return nil, err
	}

	abbreviations := make(map[int]string)
	for _, rev := range scheme.Overview().OverviewRevisions() {
		if _, ok := abbreviations[rev.AuthorityID]; ok {
			continue
		}
		authority, err := s.Authorities.Get(ctx, rev.AuthorityID)
		if err != nil {
			return nil, s.internalError(ctx, "failed to get scheme authority", err)
		}
		abbreviations[rev.AuthorityID] = authority.Abbreviation
	}

	repr, err := s.Translator.SchemeRepr(scheme, abbreviations)
	if err != nil {
		return nil, s.internalError(ctx, "failed to translate scheme", err)
	}
	return &repr, nil
}

// GetScheme returns the current state of a scheme.
func (s *SchemeService) GetScheme(ctx context.Context, id int) (*ate.SchemeSummaryRepr, error) {
	scheme, err := s.getScheme(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.summary(ctx, scheme)
}

// GetAuthoritySchemes returns the authority's schemes that are not under embargo, with the current reporting window.
func (s *SchemeService) GetAuthoritySchemes(ctx context.Context, authorityID int) (*ate.AuthoritySchemesRepr, error) {
	authority, err := s.Authorities.Get(ctx, authorityID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, models.NewErrorResponse(http.StatusNotFound, fmt.Sprintf("authority %d not found", authorityID))
	}
	if err != nil {
		return nil, s.internalError(ctx, "failed to get authority", err)
	}

	schemes, err := s.Schemes.GetByAuthority(ctx, authorityID)
	if err != nil {
		return nil, s.internalError(ctx, "failed to get authority schemes", err)
	}

	now := s.Now()
	window := s.Windows.GetByDate(now)
	result := &ate.AuthoritySchemesRepr{
		Authority: s.Translator.AuthorityRepr(*authority),
		Schemes:   []ate.SchemeSummaryRepr{},
	}
	if window != nil {
		windowRepr := s.Translator.ReportingWindowRepr(*window, now)
		result.ReportingWindow = &windowRepr
	}
	for _, scheme := range schemes {
		if scheme.Overview().FundingProgramme().IsUnderEmbargo() {
			continue
		}
		summary, err := s.Translator.SchemeSummary(scheme, window)
		if err != nil {
			return nil, s.internalError(ctx, "failed to summarise scheme", err)
		}
		result.Schemes = append(result.Schemes, summary)
	}
	return result, nil
}

// UpdateSpendToDate supersedes the scheme's spend to date with an authority update.
func (s *SchemeService) UpdateSpendToDate(ctx context.Context, id int, repr ate.SpendToDateRepr) (*ate.SchemeSummaryRepr, error) {
	if err := ate.Validate(repr); err != nil {
		return nil, models.WrapErrorResponse(http.StatusBadRequest, err)
	}
	return s.updateScheme(ctx, id, func(scheme *models.Scheme, now time.Time) error {
		err := scheme.Funding().SupersedeFinancial(models.FinancialRevision{
			Effective: models.OpenDateRange(now),
			Type:      models.SpendToDate,
			Amount:    *repr.Amount,
			Source:    models.AuthorityUpdate,
		})
		if err != nil {
			return err
		}
		s.Metrics.IncrementSuperseded("financial")
		return nil
	})
}

// UpdateMilestones supersedes the given milestone dates with authority updates.
func (s *SchemeService) UpdateMilestones(ctx context.Context, id int, repr ate.MilestonesRepr) (*ate.SchemeSummaryRepr, error) {
	if err := ate.Validate(repr); err != nil {
		return nil, models.WrapErrorResponse(http.StatusBadRequest, err)
	}
	revisions := make([]models.MilestoneRevision, 0, len(repr.Milestones))
	for _, m := range repr.Milestones {
		milestone, observationType, statusDate, err := s.Translator.MilestoneDate(m)
		if err != nil {
			return nil, models.WrapErrorResponse(http.StatusBadRequest, err)
		}
		if !milestone.IsActive() {
			return nil, models.NewErrorResponse(http.StatusBadRequest, fmt.Sprintf("milestone %q cannot be updated", m.Milestone))
		}
		revisions = append(revisions, models.MilestoneRevision{
			Milestone:       milestone,
			ObservationType: observationType,
			StatusDate:      statusDate,
			Source:          models.AuthorityUpdate,
		})
	}

	return s.updateScheme(ctx, id, func(scheme *models.Scheme, now time.Time) error {
		for _, rev := range revisions {
			rev.Effective = models.OpenDateRange(now)
			if err := scheme.Milestones().SupersedeMilestone(rev); err != nil {
				return err
			}
			s.Metrics.IncrementSuperseded("milestone")
		}
		return nil
	})
}

// ReviewScheme records that the authority has reviewed the scheme.
func (s *SchemeService) ReviewScheme(ctx context.Context, id int) (*ate.SchemeSummaryRepr, error) {
	return s.updateScheme(ctx, id, func(scheme *models.Scheme, now time.Time) error {
		scheme.Reviews().UpdateAuthorityReview(models.AuthorityReview{ReviewDate: now, Source: models.AuthorityUpdate})
		return nil
	})
}

// ClearSchemes deletes every scheme.
func (s *SchemeService) ClearSchemes(ctx context.Context) error {
	if err := s.Schemes.Clear(ctx); err != nil {
		return s.internalError(ctx, "failed to clear schemes", err)
	}
	logger.From(ctx, s.Log).Info().Msg("schemes cleared")
	return nil
}

// updateScheme applies an authority update to a scheme that is open for updates and persists it.
func (s *SchemeService) updateScheme(ctx context.Context, id int, apply func(*models.Scheme, time.Time) error) (*ate.SchemeSummaryRepr, error) {
	scheme, err := s.getScheme(ctx, id)
	if err != nil {
		return nil, err
	}
	if !scheme.IsUpdateable() {
		return nil, models.NewErrorResponse(http.StatusConflict, fmt.Sprintf("scheme %s cannot be updated", scheme.Reference()))
	}

	if err := apply(scheme, s.Now()); err != nil {
		return nil, models.WrapErrorResponse(http.StatusConflict, err)
	}
	if err := s.Schemes.Update(ctx, scheme); err != nil {
		return nil, s.internalError(ctx, "failed to update scheme", err)
	}

	updated, err := s.getScheme(ctx, id)
	if err != nil {
		return nil, err
	}
	logger.From(ctx, s.Log).Info().Str("reference", updated.Reference()).Msg("scheme updated")
	return s.summary(ctx, updated)
}

func (s *SchemeService) getScheme(ctx context.Context, id int) (*models.Scheme, error) {
	scheme, err := s.Schemes.Get(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, models.NewErrorResponse(http.StatusNotFound, fmt.Sprintf("scheme %d not found", id))
	}
	if err != nil {
		return nil, s.internalError(ctx, "failed to get scheme", err)
	}
	return scheme, nil
}

func (s *SchemeService) summary(ctx context.Context, scheme *models.Scheme) (*ate.SchemeSummaryRepr, error) {
	summary, err := s.Translator.SchemeSummary(scheme, s.Windows.GetByDate(s.Now()))
	if err != nil {
		return nil, s.internalError(ctx, "failed to summarise scheme", err)
	}
	return &summary, nil
}

func (s *SchemeService) resolveAuthority(ctx context.Context, abbreviation string, ids map[string]int) error {
	if _, ok := ids[abbreviation]; ok {
		return nil
	}
	authority, err := s.Authorities.GetByAbbreviation(ctx, abbreviation)
	if errors.Is(err, repository.ErrNotFound) {
		return models.NewErrorResponse(http.StatusBadRequest, fmt.Sprintf("unknown authority %q", abbreviation))
	}
	if err != nil {
		return s.internalError(ctx, "failed to get authority", err)
	}
	ids[abbreviation] = authority.ID
	return nil
}

func (s *SchemeService) internalError(ctx context.Context, msg string, err error) error {
	logger.From(ctx, s.Log).Error().Err(err).Msg(msg)
	return models.NewErrorResponse(http.StatusInternalServerError, "internal server error")
}
