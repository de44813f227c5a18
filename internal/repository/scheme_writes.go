package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/senyabanana/capital-schemes/internal/models"

	"github.com/jackc/pgx/v5"
)

// saveRevisions inserts revisions that have no id and closes persisted ones.
// With insertAll every revision is inserted, which is how imported schemes are stored.
func saveRevisions(ctx context.Context, tx pgx.Tx, scheme *models.Scheme, insertAll bool) error {
	schemeID := scheme.ID()
	isNew := func(id int) bool { return insertAll || id == 0 }

	for _, rev := range scheme.Overview().OverviewRevisions() {
		if !isNew(rev.ID) {
			if err := closeRevision(ctx, tx, "capital_scheme_overview", rev.ID, rev.Effective.To()); err != nil {
				return err
			}
			continue
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO capital_scheme_overview
			    (capital_scheme_id, effective_date_from, effective_date_to, scheme_name, authority_id, scheme_type_id, funding_programme_id)
			VALUES ($1, $2, $3, $4, $5,
			    (SELECT scheme_type_id FROM scheme_type WHERE scheme_type_name = $6),
			    (SELECT funding_programme_id FROM funding_programme WHERE funding_programme_code = $7))`,
			schemeID, rev.Effective.From(), rev.Effective.To(), rev.Name, rev.AuthorityID, string(rev.Type), string(rev.FundingProgramme))
		if err != nil {
			return fmt.Errorf("failed to insert overview: %w", err)
		}
	}

	for _, rev := range scheme.Funding().BidStatusRevisions() {
		if !isNew(rev.ID) {
			if err := closeRevision(ctx, tx, "capital_scheme_bid_status", rev.ID, rev.Effective.To()); err != nil {
				return err
			}
			continue
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO capital_scheme_bid_status (capital_scheme_id, effective_date_from, effective_date_to, bid_status_id)
			VALUES ($1, $2, $3, (SELECT bid_status_id FROM bid_status WHERE bid_status_name = $4))`,
			schemeID, rev.Effective.From(), rev.Effective.To(), string(rev.Status))
		if err != nil {
			return fmt.Errorf("failed to insert bid status: %w", err)
		}
	}

	for _, rev := range scheme.Funding().FinancialRevisions() {
		if !isNew(rev.ID) {
			if err := closeRevision(ctx, tx, "capital_scheme_financial", rev.ID, rev.Effective.To()); err != nil {
				return err
			}
			continue
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO capital_scheme_financial (capital_scheme_id, effective_date_from, effective_date_to, financial_type_id, amount, data_source_id)
			VALUES ($1, $2, $3,
			    (SELECT financial_type_id FROM financial_type WHERE financial_type_name = $4),
			    $5,
			    (SELECT data_source_id FROM data_source WHERE data_source_name = $6))`,
			schemeID, rev.Effective.From(), rev.Effective.To(), string(rev.Type), rev.Amount, string(rev.Source))
		if err != nil {
			return fmt.Errorf("failed to insert financial: %w", err)
		}
	}

	for _, rev := range scheme.Milestones().MilestoneRevisions() {
		if !isNew(rev.ID) {
			if err := closeRevision(ctx, tx, "capital_scheme_milestone", rev.ID, rev.Effective.To()); err != nil {
				return err
			}
			continue
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO capital_scheme_milestone
			    (capital_scheme_id, effective_date_from, effective_date_to, milestone_id, observation_type_id, status_date, data_source_id)
			VALUES ($1, $2, $3,
			    (SELECT milestone_id FROM milestone WHERE milestone_name = $4),
			    (SELECT observation_type_id FROM observation_type WHERE observation_type_name = $5),
			    $6,
			    (SELECT data_source_id FROM data_source WHERE data_source_name = $7))`,
			schemeID, rev.Effective.From(), rev.Effective.To(), string(rev.Milestone), string(rev.ObservationType), rev.StatusDate, string(rev.Source))
		if err != nil {
			return fmt.Errorf("failed to insert milestone: %w", err)
		}
	}

	for _, rev := range scheme.Outputs().OutputRevisions() {
		if !isNew(rev.ID) {
			if err := closeRevision(ctx, tx, "capital_scheme_intervention", rev.ID, rev.Effective.To()); err != nil {
				return err
			}
			continue
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO capital_scheme_intervention
			    (capital_scheme_id, effective_date_from, effective_date_to, output_type_measure_id, intervention_value, observation_type_id)
			VALUES ($1, $2, $3,
			    (SELECT output_type_measure_id FROM output_type_measure WHERE output_type_measure_name = $4),
			    $5::numeric,
			    (SELECT observation_type_id FROM observation_type WHERE observation_type_name = $6))`,
			schemeID, rev.Effective.From(), rev.Effective.To(), string(rev.TypeMeasure), rev.Value.String(), string(rev.ObservationType))
		if err != nil {
			return fmt.Errorf("failed to insert output: %w", err)
		}
	}

	for _, review := range scheme.Reviews().AuthorityReviews() {
		if !isNew(review.ID) {
			continue
		}
		_, err := tx.Exec(ctx, `
			INSERT INTO capital_scheme_authority_review (capital_scheme_id, review_date, data_source_id)
			VALUES ($1, $2, (SELECT data_source_id FROM data_source WHERE data_source_name = $3))`,
			schemeID, review.ReviewDate, string(review.Source))
		if err != nil {
			return fmt.Errorf("failed to insert authority review: %w", err)
		}
	}
	return nil
}

// closeRevision writes the end of a persisted revision's effective range. Table names are constants.
func closeRevision(ctx context.Context, tx pgx.Tx, table string, id int, to *time.Time) error {
	if to == nil {
		return nil
	}
	query := fmt.Sprintf(`UPDATE %[1]s SET effective_date_to = $1 WHERE %[1]s_id = $2 AND effective_date_to IS NULL`, table)
	if _, err := tx.Exec(ctx, query, *to, id); err != nil {
		return fmt.Errorf("failed to close %s %d: %w", table, id, err)
	}
	return nil
}
