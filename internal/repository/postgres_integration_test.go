//go:build integration

package repository_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/senyabanana/capital-schemes/internal/models"
	"github.com/senyabanana/capital-schemes/internal/repository"
)

type PostgresRepositorySuite struct {
	suite.Suite
	ctx         context.Context
	container   tc.Container
	pool        *pgxpool.Pool
	schemes     *repository.PostgresSchemeRepository
	authorities *repository.PostgresAuthorityRepository
}

func TestPostgresRepositorySuite(t *testing.T) {
	suite.Run(t, new(PostgresRepositorySuite))
}

func (s *PostgresRepositorySuite) SetupSuite() {
	s.ctx = context.Background()
	ctx, cancel := context.WithTimeout(s.ctx, 3*time.Minute)
	defer cancel()

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:16-alpine",
			ExposedPorts: []string{"5432/tcp"},
			Env: map[string]string{
				"POSTGRES_USER":     "postgres",
				"POSTGRES_PASSWORD": "postgres",
				"POSTGRES_DB":       "schemes",
			},
			WaitingFor: wait.ForAll(
				wait.ForListeningPort("5432/tcp"),
				wait.ForLog("database system is ready to accept connections").WithOccurrence(2),
			).WithDeadline(2 * time.Minute),
		},
		Started: true,
	})
	s.Require().NoError(err)
	s.container = container

	host, err := container.Host(ctx)
	s.Require().NoError(err)
	port, err := container.MappedPort(ctx, "5432/tcp")
	s.Require().NoError(err)
	dsn := fmt.Sprintf("postgres://postgres:postgres@%s:%s/schemes?sslmode=disable", host, port.Port())

	migration, err := migrate.New("file://../../migrations", dsn)
	s.Require().NoError(err)
	if err := migration.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		s.Require().NoError(err)
	}

	s.pool, err = pgxpool.New(ctx, dsn)
	s.Require().NoError(err)
	s.schemes = repository.NewPostgresSchemeRepository(s.pool)
	s.authorities = repository.NewPostgresAuthorityRepository(s.pool)
}

func (s *PostgresRepositorySuite) TearDownSuite() {
	if s.pool != nil {
		s.pool.Close()
	}
	if s.container != nil {
		_ = s.container.Terminate(context.Background())
	}
}

func (s *PostgresRepositorySuite) SetupTest() {
	s.Require().NoError(s.schemes.Clear(s.ctx))
	s.Require().NoError(s.authorities.Clear(s.ctx))
	s.Require().NoError(s.authorities.Add(s.ctx,
		models.Authority{ID: 1, Abbreviation: "LIV", FullName: "Liverpool City Region Combined Authority"},
		models.Authority{ID: 2, Abbreviation: "WYO", FullName: "West Yorkshire Combined Authority"},
	))
}

func fullScheme(id, authorityID int) *models.Scheme {
	scheme := newScheme(id, authorityID)
	scheme.Funding().UpdateBidStatus(models.BidStatusRevision{
		Effective: models.OpenDateRange(date(2020, 1, 1)),
		Status:    models.Funded,
	})
	scheme.Funding().UpdateFinancial(models.FinancialRevision{
		Effective: models.MustDateRange(date(2020, 1, 1), ptr(date(2020, 3, 1))),
		Type:      models.FundingAllocation,
		Amount:    100_000,
		Source:    models.ChangeControl,
	})
	scheme.Milestones().UpdateMilestone(models.MilestoneRevision{
		Effective:       models.OpenDateRange(date(2020, 1, 1)),
		Milestone:       models.ConstructionStarted,
		ObservationType: models.Planned,
		StatusDate:      date(2020, 9, 1),
		Source:          models.ATF4Bid,
	})
	scheme.Outputs().UpdateOutput(models.OutputRevision{
		Effective:       models.OpenDateRange(date(2020, 1, 1)),
		TypeMeasure:     models.ImprovementsToExistingRouteMiles,
		Value:           decimal.RequireFromString("2.600000"),
		ObservationType: models.Planned,
	})
	scheme.Reviews().UpdateAuthorityReview(models.AuthorityReview{
		ReviewDate: date(2020, 1, 2),
		Source:     models.ATF4Bid,
	})
	return scheme
}

func (s *PostgresRepositorySuite) TestAddAndGet() {
	s.Require().NoError(s.schemes.Add(s.ctx, fullScheme(1, 1)))

	scheme, err := s.schemes.Get(s.ctx, 1)

	s.Require().NoError(err)
	s.Equal("ATE00001", scheme.Reference())
	s.Equal("Wirral Package", scheme.Overview().Name())
	s.Equal(models.ATF4, scheme.Overview().FundingProgramme())
	s.Equal(models.Funded, scheme.Funding().BidStatus())
	s.Len(scheme.Funding().FinancialRevisions(), 2)
	s.Equal(ptr(10_000), scheme.Funding().SpendToDate())
	s.Nil(scheme.Funding().ChangeControlAdjustment())
	statusDate := scheme.Milestones().CurrentStatusDate(models.ConstructionStarted, models.Planned)
	s.Require().NotNil(statusDate)
	s.Equal("2020-09-01", statusDate.Format("2006-01-02"))
	outputs := scheme.Outputs().CurrentOutputs()
	s.Require().Len(outputs, 1)
	s.True(decimal.RequireFromString("2.6").Equal(*outputs[0].Planned))
	s.Require().NotNil(scheme.Reviews().LastReviewed())
	s.True(scheme.Reviews().LastReviewed().Equal(date(2020, 1, 2)))
}

func (s *PostgresRepositorySuite) TestAddRejectsTakenID() {
	s.Require().NoError(s.schemes.Add(s.ctx, fullScheme(1, 1)))

	err := s.schemes.Add(s.ctx, fullScheme(1, 1))

	s.ErrorIs(err, repository.ErrAlreadyExists)
}

func (s *PostgresRepositorySuite) TestGetUnknownScheme() {
	_, err := s.schemes.Get(s.ctx, 99)

	s.ErrorIs(err, repository.ErrNotFound)
}

func (s *PostgresRepositorySuite) TestGetByAuthority() {
	s.Require().NoError(s.schemes.Add(s.ctx, fullScheme(2, 1), fullScheme(1, 1), fullScheme(3, 2)))

	schemes, err := s.schemes.GetByAuthority(s.ctx, 1)

	s.Require().NoError(err)
	s.Require().Len(schemes, 2)
	s.Equal(1, schemes[0].ID())
	s.Equal(2, schemes[1].ID())
}

func (s *PostgresRepositorySuite) TestUpdateSupersedesRevision() {
	s.Require().NoError(s.schemes.Add(s.ctx, fullScheme(1, 1)))
	scheme, err := s.schemes.Get(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().NoError(scheme.Funding().SupersedeFinancial(models.FinancialRevision{
		Effective: models.OpenDateRange(date(2020, 4, 1)),
		Type:      models.SpendToDate,
		Amount:    30_000,
		Source:    models.AuthorityUpdate,
	}))

	s.Require().NoError(s.schemes.Update(s.ctx, scheme))

	reloaded, err := s.schemes.Get(s.ctx, 1)
	s.Require().NoError(err)
	s.Len(reloaded.Funding().FinancialRevisions(), 3)
	s.Equal(ptr(30_000), reloaded.Funding().SpendToDate())
	s.Len(reloaded.Funding().CurrentFinancialRevisions(), 1)
}

func (s *PostgresRepositorySuite) TestUpdateUnknownScheme() {
	err := s.schemes.Update(s.ctx, fullScheme(9, 1))

	s.ErrorIs(err, repository.ErrNotFound)
}

func (s *PostgresRepositorySuite) TestAuthorities() {
	authority, err := s.authorities.GetByAbbreviation(s.ctx, "WYO")
	s.Require().NoError(err)
	s.Equal(2, authority.ID)

	_, err = s.authorities.Get(s.ctx, 99)
	s.ErrorIs(err, repository.ErrNotFound)

	err = s.authorities.Add(s.ctx, models.Authority{ID: 1, Abbreviation: "DUP", FullName: "Duplicate"})
	s.ErrorIs(err, repository.ErrAlreadyExists)
}
