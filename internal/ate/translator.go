package ate

import (
	"errors"
	"fmt"
	"time"

	"github.com/senyabanana/capital-schemes/internal/models"

	"github.com/shopspring/decimal"
)

// ErrUnknownAuthority is returned when a scheme references an authority abbreviation that is not known.
var ErrUnknownAuthority = errors.New("unknown authority")

// Translator converts between ATE representations and the domain model.
type Translator struct {
	loc *time.Location
}

// NewTranslator creates a Translator reading and writing naive date-times in loc.
func NewTranslator(loc *time.Location) *Translator {
	return &Translator{loc: loc}
}

// Location returns the zone naive date-times are interpreted in.
func (t *Translator) Location() *time.Location {
	return t.loc
}

// Scheme builds a domain scheme from its representation. Revision ids are not carried over.
// authorityIDs maps authority abbreviations to ids.
func (t *Translator) Scheme(repr SchemeRepr, authorityIDs map[string]int) (*models.Scheme, error) {
	scheme := models.NewScheme(repr.ID, repr.Reference)

	for _, r := range repr.OverviewRevisions {
		rev, err := t.overviewRevision(r, authorityIDs)
		if err != nil {
			return nil, err
		}
		scheme.Overview().UpdateOverview(rev)
	}
	for _, r := range repr.BidStatusRevisions {
		effective, err := t.dateRange(r.Effective)
		if err != nil {
			return nil, err
		}
		status, err := bidStatuses.decode(r.Status)
		if err != nil {
			return nil, err
		}
		scheme.Funding().UpdateBidStatus(models.BidStatusRevision{Effective: effective, Status: status})
	}
	for _, r := range repr.FinancialRevisions {
		rev, err := t.financialRevision(r)
		if err != nil {
			return nil, err
		}
		scheme.Funding().UpdateFinancial(rev)
	}
	for _, r := range repr.MilestoneRevisions {
		rev, err := t.milestoneRevision(r)
		if err != nil {
			return nil, err
		}
		scheme.Milestones().UpdateMilestone(rev)
	}
	for _, r := range repr.OutputRevisions {
		rev, err := t.outputRevision(r)
		if err != nil {
			return nil, err
		}
		scheme.Outputs().UpdateOutput(rev)
	}
	for _, r := range repr.AuthorityReviews {
		reviewDate, err := t.parseDateTime(r.ReviewDate)
		if err != nil {
			return nil, err
		}
		source, err := dataSources.decode(r.Source)
		if err != nil {
			return nil, err
		}
		scheme.Reviews().UpdateAuthorityReview(models.AuthorityReview{ReviewDate: reviewDate, Source: source})
	}
	return scheme, nil
}

func (t *Translator) overviewRevision(r OverviewRevisionRepr, authorityIDs map[string]int) (models.OverviewRevision, error) {
	effective, err := t.dateRange(r.Effective)
	if err != nil {
		return models.OverviewRevision{}, err
	}
	authorityID, ok := authorityIDs[r.AuthorityAbbreviation]
	if !ok {
		return models.OverviewRevision{}, fmt.Errorf("%w: %q", ErrUnknownAuthority, r.AuthorityAbbreviation)
	}
	schemeType, err := schemeTypes.decode(r.Type)
	if err != nil {
		return models.OverviewRevision{}, err
	}
	programme, err := fundingProgrammes.decode(r.FundingProgramme)
	if err != nil {
		return models.OverviewRevision{}, err
	}
	return models.OverviewRevision{
		Effective:        effective,
		Name:             r.Name,
		AuthorityID:      authorityID,
		Type:             schemeType,
		FundingProgramme: programme,
	}, nil
}

func (t *Translator) financialRevision(r FinancialRevisionRepr) (models.FinancialRevision, error) {
	effective, err := t.dateRange(r.Effective)
	if err != nil {
		return models.FinancialRevision{}, err
	}
	financialType, err := financialTypes.decode(r.Type)
	if err != nil {
		return models.FinancialRevision{}, err
	}
	source, err := dataSources.decode(r.Source)
	if err != nil {
		return models.FinancialRevision{}, err
	}
	return models.FinancialRevision{Effective: effective, Type: financialType, Amount: r.Amount, Source: source}, nil
}

func (t *Translator) milestoneRevision(r MilestoneRevisionRepr) (models.MilestoneRevision, error) {
	effective, err := t.dateRange(r.Effective)
	if err != nil {
		return models.MilestoneRevision{}, err
	}
	milestone, observationType, statusDate, err := t.MilestoneDate(MilestoneDateRepr{
		Milestone:       r.Milestone,
		ObservationType: r.ObservationType,
		StatusDate:      r.StatusDate,
	})
	if err != nil {
		return models.MilestoneRevision{}, err
	}
	source, err := dataSources.decode(r.Source)
	if err != nil {
		return models.MilestoneRevision{}, err
	}
	return models.MilestoneRevision{
		Effective:       effective,
		Milestone:       milestone,
		ObservationType: observationType,
		StatusDate:      statusDate,
		Source:          source,
	}, nil
}

func (t *Translator) outputRevision(r OutputRevisionRepr) (models.OutputRevision, error) {
	effective, err := t.dateRange(r.Effective)
	if err != nil {
		return models.OutputRevision{}, err
	}
	outputType, err := outputTypes.decode(r.Type)
	if err != nil {
		return models.OutputRevision{}, err
	}
	measure, err := outputMeasures.decode(r.Measure)
	if err != nil {
		return models.OutputRevision{}, err
	}
	typeMeasure, err := models.OutputTypeMeasureFromTypeAndMeasure(outputType, measure)
	if err != nil {
		return models.OutputRevision{}, err
	}
	value, err := decimal.NewFromString(r.Value)
	if err != nil {
		return models.OutputRevision{}, fmt.Errorf("invalid output value %q: %w", r.Value, err)
	}
	observationType, err := observationTypes.decode(r.ObservationType)
	if err != nil {
		return models.OutputRevision{}, err
	}
	return models.OutputRevision{
		Effective:       effective,
		TypeMeasure:     typeMeasure,
		Value:           value,
		ObservationType: observationType,
	}, nil
}

// MilestoneDate decodes an authority's milestone date update.
func (t *Translator) MilestoneDate(r MilestoneDateRepr) (models.Milestone, models.ObservationType, time.Time, error) {
	milestone, err := milestones.decode(r.Milestone)
	if err != nil {
		return "", "", time.Time{}, err
	}
	observationType, err := observationTypes.decode(r.ObservationType)
	if err != nil {
		return "", "", time.Time{}, err
	}
	statusDate, err := t.ParseDate(r.StatusDate)
	if err != nil {
		return "", "", time.Time{}, err
	}
	return milestone, observationType, statusDate, nil
}

// SchemeRepr builds the representation of a scheme. abbreviations maps authority ids to abbreviations.
func (t *Translator) SchemeRepr(scheme *models.Scheme, abbreviations map[int]string) (SchemeRepr, error) {
	repr := SchemeRepr{
		ID:                 scheme.ID(),
		Reference:          scheme.Reference(),
		OverviewRevisions:  []OverviewRevisionRepr{},
		BidStatusRevisions: []BidStatusRevisionRepr{},
		FinancialRevisions: []FinancialRevisionRepr{},
		MilestoneRevisions: []MilestoneRevisionRepr{},
		OutputRevisions:    []OutputRevisionRepr{},
		AuthorityReviews:   []AuthorityReviewRepr{},
	}

	for _, rev := range scheme.Overview().OverviewRevisions() {
		abbreviation, ok := abbreviations[rev.AuthorityID]
		if !ok {
			return SchemeRepr{}, fmt.Errorf("%w: id %d", ErrUnknownAuthority, rev.AuthorityID)
		}
		schemeType, err := schemeTypes.encode(rev.Type)
		if err != nil {
			return SchemeRepr{}, err
		}
		programme, err := fundingProgrammes.encode(rev.FundingProgramme)
		if err != nil {
			return SchemeRepr{}, err
		}
		repr.OverviewRevisions = append(repr.OverviewRevisions, OverviewRevisionRepr{
			ID:                    idRepr(rev.ID),
			Effective:             t.dateRangeRepr(rev.Effective),
			Name:                  rev.Name,
			AuthorityAbbreviation: abbreviation,
			Type:                  schemeType,
			FundingProgramme:      programme,
		})
	}
	for _, rev := range scheme.Funding().BidStatusRevisions() {
		status, err := bidStatuses.encode(rev.Status)
		if err != nil {
			return SchemeRepr{}, err
		}
		repr.BidStatusRevisions = append(repr.BidStatusRevisions, BidStatusRevisionRepr{
			ID:        idRepr(rev.ID),
			Effective: t.dateRangeRepr(rev.Effective),
			Status:    status,
		})
	}
	for _, rev := range scheme.Funding().FinancialRevisions() {
		financialType, err := financialTypes.encode(rev.Type)
		if err != nil {
			return SchemeRepr{}, err
		}
		source, err := dataSources.encode(rev.Source)
		if err != nil {
			return SchemeRepr{}, err
		}
		repr.FinancialRevisions = append(repr.FinancialRevisions, FinancialRevisionRepr{
			ID:        idRepr(rev.ID),
			Effective: t.dateRangeRepr(rev.Effective),
			Type:      financialType,
			Amount:    rev.Amount,
			Source:    source,
		})
	}
	for _, rev := range scheme.Milestones().MilestoneRevisions() {
		milestone, err := milestones.encode(rev.Milestone)
		if err != nil {
			return SchemeRepr{}, err
		}
		observationType, err := observationTypes.encode(rev.ObservationType)
		if err != nil {
			return SchemeRepr{}, err
		}
		source, err := dataSources.encode(rev.Source)
		if err != nil {
			return SchemeRepr{}, err
		}
		repr.MilestoneRevisions = append(repr.MilestoneRevisions, MilestoneRevisionRepr{
			ID:              idRepr(rev.ID),
			Effective:       t.dateRangeRepr(rev.Effective),
			Milestone:       milestone,
			ObservationType: observationType,
			StatusDate:      formatDate(rev.StatusDate),
			Source:          source,
		})
	}
	for _, rev := range scheme.Outputs().OutputRevisions() {
		outputType, err := outputTypes.encode(rev.TypeMeasure.Type())
		if err != nil {
			return SchemeRepr{}, err
		}
		measure, err := outputMeasures.encode(rev.TypeMeasure.Measure())
		if err != nil {
			return SchemeRepr{}, err
		}
		observationType, err := observationTypes.encode(rev.ObservationType)
		if err != nil {
			return SchemeRepr{}, err
		}
		repr.OutputRevisions = append(repr.OutputRevisions, OutputRevisionRepr{
			ID:              idRepr(rev.ID),
			Effective:       t.dateRangeRepr(rev.Effective),
			Type:            outputType,
			Measure:         measure,
			Value:           rev.Value.String(),
			ObservationType: observationType,
		})
	}
	for _, review := range scheme.Reviews().AuthorityReviews() {
		source, err := dataSources.encode(review.Source)
		if err != nil {
			return SchemeRepr{}, err
		}
		repr.AuthorityReviews = append(repr.AuthorityReviews, AuthorityReviewRepr{
			ID:         idRepr(review.ID),
			ReviewDate: t.formatDateTime(review.ReviewDate),
			Source:     source,
		})
	}
	return repr, nil
}

// Authority builds a domain authority from its representation.
func (t *Translator) Authority(repr AuthorityRepr) models.Authority {
	return models.Authority{ID: repr.ID, Abbreviation: repr.Abbreviation, FullName: repr.FullName}
}

// AuthorityRepr builds the representation of an authority.
func (t *Translator) AuthorityRepr(authority models.Authority) AuthorityRepr {
	return AuthorityRepr{ID: authority.ID, Abbreviation: authority.Abbreviation, FullName: authority.FullName}
}

func idRepr(id int) *int {
	if id == 0 {
		return nil
	}
	return &id
}
