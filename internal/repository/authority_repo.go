package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/senyabanana/capital-schemes/internal/models"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresAuthorityRepository - implementation of AuthorityRepository for the database.
type PostgresAuthorityRepository struct {
	DB *pgxpool.Pool
}

// NewPostgresAuthorityRepository creates a new PostgresAuthorityRepository.
func NewPostgresAuthorityRepository(db *pgxpool.Pool) *PostgresAuthorityRepository {
	return &PostgresAuthorityRepository{DB: db}
}

// Add inserts the authorities.
func (r *PostgresAuthorityRepository) Add(ctx context.Context, authorities ...models.Authority) error {
	return pgx.BeginFunc(ctx, r.DB, func(tx pgx.Tx) error {
		for _, authority := range authorities {
			_, err := tx.Exec(ctx, `
				INSERT INTO authority (authority_id, authority_abbreviation, authority_full_name)
				VALUES ($1, $2, $3)`,
				authority.ID,
				authority.Abbreviation,
				authority.FullName)
			if isUniqueViolation(err) {
				return fmt.Errorf("authority %d: %w", authority.ID, ErrAlreadyExists)
			}
			if err != nil {
				return fmt.Errorf("failed to insert authority: %w", err)
			}
		}
		return nil
	})
}

// Get returns the authority with the given id.
func (r *PostgresAuthorityRepository) Get(ctx context.Context, id int) (*models.Authority, error) {
	query := `SELECT authority_id, authority_abbreviation, authority_full_name FROM authority WHERE authority_id = $1`
	return r.getOne(ctx, query, id)
}

// GetByAbbreviation returns the authority with the given abbreviation.
func (r *PostgresAuthorityRepository) GetByAbbreviation(ctx context.Context, abbreviation string) (*models.Authority, error) {
	query := `SELECT authority_id, authority_abbreviation, authority_full_name FROM authority WHERE authority_abbreviation = $1`
	return r.getOne(ctx, query, abbreviation)
}

// Clear deletes every authority. Schemes must be cleared first.
func (r *PostgresAuthorityRepository) Clear(ctx context.Context) error {
	_, err := r.DB.Exec(ctx, `TRUNCATE authority CASCADE`)
	return err
}

func (r *PostgresAuthorityRepository) getOne(ctx context.Context, query string, arg any) (*models.Authority, error) {
	var authority models.Authority
	err := r.DB.QueryRow(ctx, query, arg).Scan(
		&authority.ID,
		&authority.Abbreviation,
		&authority.FullName,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &authority, nil
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
