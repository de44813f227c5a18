package ate_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/senyabanana/capital-schemes/internal/ate"
	"github.com/senyabanana/capital-schemes/internal/models"
)

type TranslatorSuite struct {
	suite.Suite
	translator   *ate.Translator
	authorityIDs map[string]int
	abbreviation map[int]string
}

func TestTranslatorSuite(t *testing.T) {
	suite.Run(t, new(TranslatorSuite))
}

func (s *TranslatorSuite) SetupTest() {
	loc, err := ate.LoadLocation("")
	s.Require().NoError(err)
	s.translator = ate.NewTranslator(loc)
	s.authorityIDs = map[string]int{"LIV": 1}
	s.abbreviation = map[int]string{1: "LIV"}
}

func ptr[T any](v T) *T {
	return &v
}

func schemeRepr() ate.SchemeRepr {
	return ate.SchemeRepr{
		ID:        1,
		Reference: "ATE00001",
		OverviewRevisions: []ate.OverviewRevisionRepr{{
			Effective:             ate.DateRangeRepr{DateFrom: "2020-01-01T12:00:00"},
			Name:                  "Wirral Package",
			AuthorityAbbreviation: "LIV",
			Type:                  "construction",
			FundingProgramme:      "ATF4",
		}},
		BidStatusRevisions: []ate.BidStatusRevisionRepr{{
			Effective: ate.DateRangeRepr{DateFrom: "2020-01-01T12:00:00"},
			Status:    "funded",
		}},
		FinancialRevisions: []ate.FinancialRevisionRepr{
			{
				Effective: ate.DateRangeRepr{DateFrom: "2020-01-01T12:00:00", DateTo: ptr("2020-02-01T12:00:00")},
				Type:      "spend to date",
				Amount:    50_000,
				Source:    "ATF4 bid",
			},
			{
				Effective: ate.DateRangeRepr{DateFrom: "2020-02-01T12:00:00"},
				Type:      "funding allocation",
				Amount:    100_000,
				Source:    "ATF4 bid",
			},
		},
		MilestoneRevisions: []ate.MilestoneRevisionRepr{{
			Effective:       ate.DateRangeRepr{DateFrom: "2020-01-01T12:00:00"},
			Milestone:       "detailed design completed",
			ObservationType: "actual",
			StatusDate:      "2020-02-01",
			Source:          "ATF4 bid",
		}},
		OutputRevisions: []ate.OutputRevisionRepr{{
			Effective:       ate.DateRangeRepr{DateFrom: "2020-01-01T12:00:00"},
			Type:            "Improvements to make an existing walking/cycle route safer",
			Measure:         "miles",
			Value:           "3.5",
			ObservationType: "planned",
		}},
		AuthorityReviews: []ate.AuthorityReviewRepr{{
			ReviewDate: "2020-01-02T00:00:00",
			Source:     "ATF4 bid",
		}},
	}
}

func (s *TranslatorSuite) TestSchemeFromRepr() {
	scheme, err := s.translator.Scheme(schemeRepr(), s.authorityIDs)
	s.Require().NoError(err)

	s.Equal(1, scheme.ID())
	s.Equal("ATE00001", scheme.Reference())
	s.Equal("Wirral Package", scheme.Overview().Name())
	s.Equal(1, scheme.Overview().AuthorityID())
	s.Equal(models.Construction, scheme.Overview().Type())
	s.Equal(models.ATF4, scheme.Overview().FundingProgramme())
	s.Equal(models.Funded, scheme.Funding().BidStatus())
	s.Equal(ptr(100_000), scheme.Funding().FundingAllocation())
	s.Nil(scheme.Funding().SpendToDate())
	s.Equal(models.DetailedDesignCompleted, scheme.Milestones().CurrentMilestone())

	outputs := scheme.Outputs().CurrentOutputRevisions()
	s.Require().Len(outputs, 1)
	s.Equal(models.ImprovementsToExistingRouteMiles, outputs[0].TypeMeasure)
	s.Equal("3.5", outputs[0].Value.String())
}

func (s *TranslatorSuite) TestNaiveDateTimesAreLocal() {
	repr := schemeRepr()
	repr.BidStatusRevisions[0].Effective.DateFrom = "2020-06-01T12:00:00"

	scheme, err := s.translator.Scheme(repr, s.authorityIDs)
	s.Require().NoError(err)

	from := scheme.Funding().BidStatusRevisions()[0].Effective.From()
	s.True(from.Equal(time.Date(2020, 6, 1, 11, 0, 0, 0, time.UTC)), "BST is one hour ahead of UTC, got %s", from)
}

func (s *TranslatorSuite) TestOffsetDateTimesAreHonoured() {
	repr := schemeRepr()
	repr.BidStatusRevisions[0].Effective.DateFrom = "2020-06-01T12:00:00Z"

	scheme, err := s.translator.Scheme(repr, s.authorityIDs)
	s.Require().NoError(err)

	from := scheme.Funding().BidStatusRevisions()[0].Effective.From()
	s.True(from.Equal(time.Date(2020, 6, 1, 12, 0, 0, 0, time.UTC)))
}

func (s *TranslatorSuite) TestSchemeReprRoundTrip() {
	scheme, err := s.translator.Scheme(schemeRepr(), s.authorityIDs)
	s.Require().NoError(err)

	repr, err := s.translator.SchemeRepr(scheme, s.abbreviation)

	s.Require().NoError(err)
	s.Equal(schemeRepr(), repr)
}

func (s *TranslatorSuite) TestSchemeReprCarriesRevisionIDs() {
	scheme := models.NewScheme(2, "")
	scheme.Funding().UpdateBidStatus(models.BidStatusRevision{
		ID:        7,
		Effective: models.OpenDateRange(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)),
		Status:    models.NotFunded,
	})

	repr, err := s.translator.SchemeRepr(scheme, s.abbreviation)

	s.Require().NoError(err)
	s.Equal("ATE00002", repr.Reference)
	s.Require().Len(repr.BidStatusRevisions, 1)
	s.Equal(ptr(7), repr.BidStatusRevisions[0].ID)
	s.Equal("not funded", repr.BidStatusRevisions[0].Status)
	s.Equal("2020-01-01T00:00:00", repr.BidStatusRevisions[0].Effective.DateFrom)
}

func (s *TranslatorSuite) TestRejects() {
	s.Run("unknown enum value", func() {
		repr := schemeRepr()
		repr.OverviewRevisions[0].Type = "maintenance"

		_, err := s.translator.Scheme(repr, s.authorityIDs)

		s.ErrorIs(err, ate.ErrUnknownValue)
	})

	s.Run("unknown authority", func() {
		repr := schemeRepr()
		repr.OverviewRevisions[0].AuthorityAbbreviation = "WYO"

		_, err := s.translator.Scheme(repr, s.authorityIDs)

		s.ErrorIs(err, ate.ErrUnknownAuthority)
	})

	s.Run("invalid output combination", func() {
		repr := schemeRepr()
		repr.OutputRevisions[0].Measure = "number of bus gates"

		_, err := s.translator.Scheme(repr, s.authorityIDs)

		s.ErrorIs(err, models.ErrUnknownCombination)
	})

	s.Run("inverted effective range", func() {
		repr := schemeRepr()
		repr.FinancialRevisions[0].Effective.DateTo = ptr("2019-01-01T00:00:00")

		_, err := s.translator.Scheme(repr, s.authorityIDs)

		s.ErrorIs(err, models.ErrInvalidDateRange)
	})

	s.Run("malformed date", func() {
		repr := schemeRepr()
		repr.MilestoneRevisions[0].StatusDate = "01/02/2020"

		_, err := s.translator.Scheme(repr, s.authorityIDs)

		s.Error(err)
	})
}

func (s *TranslatorSuite) TestSchemeSummary() {
	scheme, err := s.translator.Scheme(schemeRepr(), s.authorityIDs)
	s.Require().NoError(err)
	window, err := models.NewReportingWindow(models.MustDateRange(
		time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC), ptr(time.Date(2020, 2, 1, 0, 0, 0, 0, time.UTC))))
	s.Require().NoError(err)

	summary, err := s.translator.SchemeSummary(scheme, &window)

	s.Require().NoError(err)
	s.Equal("Wirral Package", summary.Name)
	s.Equal("construction", summary.Type)
	s.Equal("ATF4", summary.FundingProgramme)
	s.Equal("funded", summary.BidStatus)
	s.Equal(100_000, summary.AdjustedFundingAllocation)
	s.Equal(100_000, summary.AllocationStillToSpend)
	s.Equal("detailed design completed", summary.CurrentMilestone)
	s.Require().Len(summary.Milestones, 1)
	s.Equal(ptr("2020-02-01"), summary.Milestones[0].Actual)
	s.Nil(summary.Milestones[0].Planned)
	s.Require().Len(summary.Outputs, 1)
	s.Equal(ptr("3.5"), summary.Outputs[0].Planned)
	s.Equal(ptr("2020-01-02T00:00:00"), summary.LastReviewed)
	s.True(summary.IsUpdateable)
	s.Equal(ptr(false), summary.NeedsReview)
}

func (s *TranslatorSuite) TestReportingWindowRepr() {
	window, err := models.NewReportingWindow(models.MustDateRange(
		time.Date(2020, 4, 1, 0, 0, 0, 0, time.UTC), ptr(time.Date(2020, 5, 1, 0, 0, 0, 0, time.UTC))))
	s.Require().NoError(err)

	repr := s.translator.ReportingWindowRepr(window, time.Date(2020, 4, 25, 0, 0, 0, 0, time.UTC))

	s.Equal("2020-04-01T01:00:00", repr.DateFrom)
	s.Equal("2020-05-01T01:00:00", repr.DateTo)
	s.Equal(7, repr.DaysLeft)
}

func TestValidate(t *testing.T) {
	require.NoError(t, ate.Validate(schemeRepr()))

	repr := schemeRepr()
	repr.OverviewRevisions[0].Name = ""
	err := ate.Validate(repr)
	require.ErrorIs(t, err, ate.ErrInvalidRepr)
	assert.Contains(t, err.Error(), "Name")

	err = ate.Validate(ate.MilestonesRepr{})
	assert.ErrorIs(t, err, ate.ErrInvalidRepr)

	err = ate.Validate(ate.SpendToDateRepr{Amount: ptr(-1)})
	assert.ErrorIs(t, err, ate.ErrInvalidRepr)
}
