package repository

import (
	"context"
	"errors"

	"github.com/senyabanana/capital-schemes/internal/models"
)

var (
	// ErrNotFound is returned when a scheme or authority does not exist.
	ErrNotFound = errors.New("not found")
	// ErrAlreadyExists is returned when adding a scheme or authority whose id is taken.
	ErrAlreadyExists = errors.New("already exists")
)

// SchemeRepository - interface for storing schemes and their revisions.
type SchemeRepository interface {
	Add(ctx context.Context, schemes ...*models.Scheme) error
	Get(ctx context.Context, id int) (*models.Scheme, error)
	GetByAuthority(ctx context.Context, authorityID int) ([]*models.Scheme, error)
	Update(ctx context.Context, scheme *models.Scheme) error
	Clear(ctx context.Context) error
}

// AuthorityRepository - interface for storing authorities.
type AuthorityRepository interface {
	Add(ctx context.Context, authorities ...models.Authority) error
	Get(ctx context.Context, id int) (*models.Authority, error)
	GetByAbbreviation(ctx context.Context, abbreviation string) (*models.Authority, error)
	Clear(ctx context.Context) error
}
