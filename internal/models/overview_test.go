package models_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/senyabanana/capital-schemes/internal/models"
)

type SchemeOverviewSuite struct {
	suite.Suite
	overview *models.SchemeOverview
}

func TestSchemeOverviewSuite(t *testing.T) {
	suite.Run(t, new(SchemeOverviewSuite))
}

func (s *SchemeOverviewSuite) SetupTest() {
	s.overview = models.NewSchemeOverview()
}

func overviewRevision(name string, effective models.DateRange) models.OverviewRevision {
	return models.OverviewRevision{
		Effective:        effective,
		Name:             name,
		AuthorityID:      1,
		Type:             models.Construction,
		FundingProgramme: models.ATF4,
	}
}

func (s *SchemeOverviewSuite) TestRevisionsAreACopy() {
	s.overview.UpdateOverview(overviewRevision("Wirral Package", models.OpenDateRange(date(2020, 1, 1))))

	revisions := s.overview.OverviewRevisions()
	revisions[0].Name = "changed"
	_ = append(revisions, overviewRevision("extra", models.OpenDateRange(date(2021, 1, 1))))

	again := s.overview.OverviewRevisions()
	s.Len(again, 1)
	s.Equal("Wirral Package", again[0].Name)
}

func (s *SchemeOverviewSuite) TestUpdateOverviewsKeepsCallOrder() {
	rev1 := overviewRevision("School Streets", models.OpenDateRange(date(2021, 1, 1)))
	rev2 := overviewRevision("Wirral Package", models.MustDateRange(date(2020, 1, 1), ptr(date(2021, 1, 1))))

	s.overview.UpdateOverviews(rev1, rev2)

	s.Equal([]models.OverviewRevision{rev1, rev2}, s.overview.OverviewRevisions())
}

func (s *SchemeOverviewSuite) TestCurrentValues() {
	s.Run("empty overview has no current values", func() {
		s.Nil(s.overview.CurrentOverview())
		s.Empty(s.overview.Name())
		s.Zero(s.overview.AuthorityID())
		s.Empty(s.overview.Type())
		s.Empty(s.overview.FundingProgramme())
	})

	s.Run("reads the open revision", func() {
		s.overview.UpdateOverviews(
			overviewRevision("Old name", models.MustDateRange(date(2020, 1, 1), ptr(date(2020, 2, 1)))),
			models.OverviewRevision{
				Effective:        models.OpenDateRange(date(2020, 2, 1)),
				Name:             "New name",
				AuthorityID:      2,
				Type:             models.Development,
				FundingProgramme: models.ATF3,
			},
		)

		s.Equal("New name", s.overview.Name())
		s.Equal(2, s.overview.AuthorityID())
		s.Equal(models.Development, s.overview.Type())
		s.Equal(models.ATF3, s.overview.FundingProgramme())
	})
}

func (s *SchemeOverviewSuite) TestUpdateOverviewAllowsSeveralOpenRevisions() {
	// Plain updates leave closing the previous revision to the caller.
	s.overview.UpdateOverviews(
		overviewRevision("First", models.OpenDateRange(date(2020, 1, 1))),
		overviewRevision("Second", models.OpenDateRange(date(2020, 2, 1))),
	)

	s.Equal("First", s.overview.Name())
	open := 0
	for _, r := range s.overview.OverviewRevisions() {
		if r.Effective.IsOpen() {
			open++
		}
	}
	s.Equal(2, open)
}

func (s *SchemeOverviewSuite) TestSupersedeOverview() {
	s.overview.UpdateOverview(overviewRevision("First", models.OpenDateRange(date(2020, 1, 1))))

	err := s.overview.SupersedeOverview(overviewRevision("Second", models.OpenDateRange(date(2020, 2, 1))))

	s.Require().NoError(err)
	revisions := s.overview.OverviewRevisions()
	s.Require().Len(revisions, 2)
	s.True(revisions[0].Effective.Equal(models.MustDateRange(date(2020, 1, 1), ptr(date(2020, 2, 1)))))
	s.True(revisions[1].Effective.IsOpen())
	s.Equal("Second", s.overview.Name())
}

func (s *SchemeOverviewSuite) TestSupersedeOverviewRejectsInvalidRevision() {
	s.overview.UpdateOverview(overviewRevision("First", models.OpenDateRange(date(2020, 2, 1))))

	s.Run("closed revision", func() {
		err := s.overview.SupersedeOverview(overviewRevision("Second",
			models.MustDateRange(date(2020, 3, 1), ptr(date(2020, 4, 1)))))
		s.ErrorIs(err, models.ErrRevisionNotOpen)
	})

	s.Run("starts before the current revision", func() {
		err := s.overview.SupersedeOverview(overviewRevision("Second", models.OpenDateRange(date(2020, 1, 1))))
		s.ErrorIs(err, models.ErrInvalidDateRange)
	})

	s.Len(s.overview.OverviewRevisions(), 1)
	s.Equal("First", s.overview.Name())
}
