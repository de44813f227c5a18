package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/senyabanana/capital-schemes/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// PostgresSchemeRepository - implementation of SchemeRepository for the database.
type PostgresSchemeRepository struct {
	DB *pgxpool.Pool
}

// NewPostgresSchemeRepository creates a new PostgresSchemeRepository.
func NewPostgresSchemeRepository(db *pgxpool.Pool) *PostgresSchemeRepository {
	return &PostgresSchemeRepository{DB: db}
}

// Add inserts the schemes with all of their revisions in one transaction.
func (r *PostgresSchemeRepository) Add(ctx context.Context, schemes ...*models.Scheme) error {
	return pgx.BeginFunc(ctx, r.DB, func(tx pgx.Tx) error {
		for _, scheme := range schemes {
			_, err := tx.Exec(ctx, `INSERT INTO capital_scheme (capital_scheme_id, scheme_reference) VALUES ($1, $2)`,
				scheme.ID(), scheme.Reference())
			if isUniqueViolation(err) {
				return fmt.Errorf("scheme %d: %w", scheme.ID(), ErrAlreadyExists)
			}
			if err != nil {
				return fmt.Errorf("failed to insert scheme %d: %w", scheme.ID(), err)
			}
			if err := saveRevisions(ctx, tx, scheme, true); err != nil {
				return fmt.Errorf("failed to insert revisions of scheme %d: %w", scheme.ID(), err)
			}
		}
		return nil
	})
}

// Get loads a scheme with all of its revisions.
func (r *PostgresSchemeRepository) Get(ctx context.Context, id int) (*models.Scheme, error) {
	schemes, err := r.load(ctx, []int{id})
	if err != nil {
		return nil, err
	}
	if len(schemes) == 0 {
		return nil, ErrNotFound
	}
	return schemes[0], nil
}

// GetByAuthority loads the schemes whose current overview belongs to the authority, ordered by id.
func (r *PostgresSchemeRepository) GetByAuthority(ctx context.Context, authorityID int) ([]*models.Scheme, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT DISTINCT capital_scheme_id
		FROM capital_scheme_overview
		WHERE authority_id = $1 AND effective_date_to IS NULL
		ORDER BY capital_scheme_id`, authorityID)
	if err != nil {
		return nil, err
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}
	return r.load(ctx, ids)
}

// Update inserts new revisions and closes persisted ones whose effective range has ended.
func (r *PostgresSchemeRepository) Update(ctx context.Context, scheme *models.Scheme) error {
	return pgx.BeginFunc(ctx, r.DB, func(tx pgx.Tx) error {
		var exists bool
		query := `SELECT EXISTS(SELECT 1 FROM capital_scheme WHERE capital_scheme_id = $1)`
		if err := tx.QueryRow(ctx, query, scheme.ID()).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return ErrNotFound
		}
		return saveRevisions(ctx, tx, scheme, false)
	})
}

// Clear deletes every scheme and its revisions.
func (r *PostgresSchemeRepository) Clear(ctx context.Context) error {
	_, err := r.DB.Exec(ctx, `TRUNCATE capital_scheme CASCADE`)
	return err
}

// load rehydrates schemes, fetching each revision category concurrently.
func (r *PostgresSchemeRepository) load(ctx context.Context, ids []int) ([]*models.Scheme, error) {
	schemes, err := r.loadSchemes(ctx, ids)
	if err != nil || len(schemes) == 0 {
		return nil, err
	}

	var (
		overviews   map[int][]models.OverviewRevision
		bidStatuses map[int][]models.BidStatusRevision
		financials  map[int][]models.FinancialRevision
		milestones  map[int][]models.MilestoneRevision
		outputs     map[int][]models.OutputRevision
		reviews     map[int][]models.AuthorityReview
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) { overviews, err = r.loadOverviews(gctx, ids); return })
	g.Go(func() (err error) { bidStatuses, err = r.loadBidStatuses(gctx, ids); return })
	g.Go(func() (err error) { financials, err = r.loadFinancials(gctx, ids); return })
	g.Go(func() (err error) { milestones, err = r.loadMilestones(gctx, ids); return })
	g.Go(func() (err error) { outputs, err = r.loadOutputs(gctx, ids); return })
	g.Go(func() (err error) { reviews, err = r.loadReviews(gctx, ids); return })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, scheme := range schemes {
		id := scheme.ID()
		scheme.Overview().UpdateOverviews(overviews[id]...)
		scheme.Funding().UpdateBidStatuses(bidStatuses[id]...)
		scheme.Funding().UpdateFinancials(financials[id]...)
		scheme.Milestones().UpdateMilestones(milestones[id]...)
		scheme.Outputs().UpdateOutputs(outputs[id]...)
		scheme.Reviews().UpdateAuthorityReviews(reviews[id]...)
	}
	return schemes, nil
}

func (r *PostgresSchemeRepository) loadSchemes(ctx context.Context, ids []int) ([]*models.Scheme, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT capital_scheme_id, scheme_reference
		FROM capital_scheme
		WHERE capital_scheme_id = ANY($1)
		ORDER BY capital_scheme_id`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var schemes []*models.Scheme
	for rows.Next() {
		var id int
		var reference string
		if err := rows.Scan(&id, &reference); err != nil {
			return nil, err
		}
		schemes = append(schemes, models.NewScheme(id, reference))
	}
	return schemes, rows.Err()
}

func (r *PostgresSchemeRepository) loadOverviews(ctx context.Context, ids []int) (map[int][]models.OverviewRevision, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT o.capital_scheme_overview_id, o.capital_scheme_id, o.effective_date_from, o.effective_date_to,
		       o.scheme_name, o.authority_id, st.scheme_type_name, fp.funding_programme_code
		FROM capital_scheme_overview o
		JOIN scheme_type st ON st.scheme_type_id = o.scheme_type_id
		JOIN funding_programme fp ON fp.funding_programme_id = o.funding_programme_id
		WHERE o.capital_scheme_id = ANY($1)
		ORDER BY o.capital_scheme_overview_id`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	revisions := make(map[int][]models.OverviewRevision)
	for rows.Next() {
		var rev models.OverviewRevision
		var schemeID int
		var from time.Time
		var to *time.Time
		if err := rows.Scan(&rev.ID, &schemeID, &from, &to, &rev.Name, &rev.AuthorityID, &rev.Type, &rev.FundingProgramme); err != nil {
			return nil, err
		}
		if rev.Effective, err = models.NewDateRange(from, to); err != nil {
			return nil, err
		}
		revisions[schemeID] = append(revisions[schemeID], rev)
	}
	return revisions, rows.Err()
}

func (r *PostgresSchemeRepository) loadBidStatuses(ctx context.Context, ids []int) (map[int][]models.BidStatusRevision, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT b.capital_scheme_bid_status_id, b.capital_scheme_id, b.effective_date_from, b.effective_date_to, bs.bid_status_name
		FROM capital_scheme_bid_status b
		JOIN bid_status bs ON bs.bid_status_id = b.bid_status_id
		WHERE b.capital_scheme_id = ANY($1)
		ORDER BY b.capital_scheme_bid_status_id`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	revisions := make(map[int][]models.BidStatusRevision)
	for rows.Next() {
		var rev models.BidStatusRevision
		var schemeID int
		var from time.Time
		var to *time.Time
		if err := rows.Scan(&rev.ID, &schemeID, &from, &to, &rev.Status); err != nil {
			return nil, err
		}
		if rev.Effective, err = models.NewDateRange(from, to); err != nil {
			return nil, err
		}
		revisions[schemeID] = append(revisions[schemeID], rev)
	}
	return revisions, rows.Err()
}

func (r *PostgresSchemeRepository) loadFinancials(ctx context.Context, ids []int) (map[int][]models.FinancialRevision, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT f.capital_scheme_financial_id, f.capital_scheme_id, f.effective_date_from, f.effective_date_to,
		       ft.financial_type_name, f.amount, ds.data_source_name
		FROM capital_scheme_financial f
		JOIN financial_type ft ON ft.financial_type_id = f.financial_type_id
		JOIN data_source ds ON ds.data_source_id = f.data_source_id
		WHERE f.capital_scheme_id = ANY($1)
		ORDER BY f.capital_scheme_financial_id`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	revisions := make(map[int][]models.FinancialRevision)
	for rows.Next() {
		var rev models.FinancialRevision
		var schemeID int
		var from time.Time
		var to *time.Time
		if err := rows.Scan(&rev.ID, &schemeID, &from, &to, &rev.Type, &rev.Amount, &rev.Source); err != nil {
			return nil, err
		}
		if rev.Effective, err = models.NewDateRange(from, to); err != nil {
			return nil, err
		}
		revisions[schemeID] = append(revisions[schemeID], rev)
	}
	return revisions, rows.Err()
}

func (r *PostgresSchemeRepository) loadMilestones(ctx context.Context, ids []int) (map[int][]models.MilestoneRevision, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT m.capital_scheme_milestone_id, m.capital_scheme_id, m.effective_date_from, m.effective_date_to,
		       ms.milestone_name, ot.observation_type_name, m.status_date, ds.data_source_name
		FROM capital_scheme_milestone m
		JOIN milestone ms ON ms.milestone_id = m.milestone_id
		JOIN observation_type ot ON ot.observation_type_id = m.observation_type_id
		JOIN data_source ds ON ds.data_source_id = m.data_source_id
		WHERE m.capital_scheme_id = ANY($1)
		ORDER BY m.capital_scheme_milestone_id`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	revisions := make(map[int][]models.MilestoneRevision)
	for rows.Next() {
		var rev models.MilestoneRevision
		var schemeID int
		var from time.Time
		var to *time.Time
		if err := rows.Scan(&rev.ID, &schemeID, &from, &to, &rev.Milestone, &rev.ObservationType, &rev.StatusDate, &rev.Source); err != nil {
			return nil, err
		}
		if rev.Effective, err = models.NewDateRange(from, to); err != nil {
			return nil, err
		}
		revisions[schemeID] = append(revisions[schemeID], rev)
	}
	return revisions, rows.Err()
}

func (r *PostgresSchemeRepository) loadOutputs(ctx context.Context, ids []int) (map[int][]models.OutputRevision, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT i.capital_scheme_intervention_id, i.capital_scheme_id, i.effective_date_from, i.effective_date_to,
		       otm.output_type_measure_name, i.intervention_value::text, ot.observation_type_name
		FROM capital_scheme_intervention i
		JOIN output_type_measure otm ON otm.output_type_measure_id = i.output_type_measure_id
		JOIN observation_type ot ON ot.observation_type_id = i.observation_type_id
		WHERE i.capital_scheme_id = ANY($1)
		ORDER BY i.capital_scheme_intervention_id`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	revisions := make(map[int][]models.OutputRevision)
	for rows.Next() {
		var rev models.OutputRevision
		var schemeID int
		var from time.Time
		var to *time.Time
		var value string
		if err := rows.Scan(&rev.ID, &schemeID, &from, &to, &rev.TypeMeasure, &value, &rev.ObservationType); err != nil {
			return nil, err
		}
		if rev.Effective, err = models.NewDateRange(from, to); err != nil {
			return nil, err
		}
		if rev.Value, err = decimal.NewFromString(value); err != nil {
			return nil, err
		}
		revisions[schemeID] = append(revisions[schemeID], rev)
	}
	return revisions, rows.Err()
}

func (r *PostgresSchemeRepository) loadReviews(ctx context.Context, ids []int) (map[int][]models.AuthorityReview, error) {
	rows, err := r.DB.Query(ctx, `
		SELECT ar.capital_scheme_authority_review_id, ar.capital_scheme_id, ar.review_date, ds.data_source_name
		FROM capital_scheme_authority_review ar
		JOIN data_source ds ON ds.data_source_id = ar.data_source_id
		WHERE ar.capital_scheme_id = ANY($1)
		ORDER BY ar.capital_scheme_authority_review_id`, pq.Array(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := make(map[int][]models.AuthorityReview)
	for rows.Next() {
		var review models.AuthorityReview
		var schemeID int
		if err := rows.Scan(&review.ID, &schemeID, &review.ReviewDate, &review.Source); err != nil {
			return nil, err
		}
		reviews[schemeID] = append(reviews[schemeID], review)
	}
	return reviews, rows.Err()
}
