package repository

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/senyabanana/capital-schemes/internal/models"
)

// MemorySchemeRepository - in-memory implementation of SchemeRepository.
type MemorySchemeRepository struct {
	mu             sync.RWMutex
	schemes        map[int]*models.Scheme
	nextRevisionID int
}

// NewMemorySchemeRepository creates an empty MemorySchemeRepository.
func NewMemorySchemeRepository() *MemorySchemeRepository {
	return &MemorySchemeRepository{schemes: make(map[int]*models.Scheme)}
}

// Add stores the schemes, assigning ids to their revisions. Nothing is stored if any id is taken.
func (r *MemorySchemeRepository) Add(_ context.Context, schemes ...*models.Scheme) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	seen := make(map[int]bool, len(schemes))
	for _, scheme := range schemes {
		if _, ok := r.schemes[scheme.ID()]; ok || seen[scheme.ID()] {
			return fmt.Errorf("scheme %d: %w", scheme.ID(), ErrAlreadyExists)
		}
		seen[scheme.ID()] = true
	}
	for _, scheme := range schemes {
		r.schemes[scheme.ID()] = cloneScheme(scheme, r.assignID)
	}
	return nil
}

// Get returns a copy of the scheme.
func (r *MemorySchemeRepository) Get(_ context.Context, id int) (*models.Scheme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	scheme, ok := r.schemes[id]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneScheme(scheme, nil), nil
}

// GetByAuthority returns copies of the schemes currently owned by the authority, ordered by id.
func (r *MemorySchemeRepository) GetByAuthority(_ context.Context, authorityID int) ([]*models.Scheme, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var schemes []*models.Scheme
	for _, scheme := range r.schemes {
		if scheme.Overview().AuthorityID() == authorityID {
			schemes = append(schemes, cloneScheme(scheme, nil))
		}
	}
	sort.Slice(schemes, func(i, j int) bool { return schemes[i].ID() < schemes[j].ID() })
	return schemes, nil
}

// Update replaces the stored scheme, assigning ids to new revisions.
func (r *MemorySchemeRepository) Update(_ context.Context, scheme *models.Scheme) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.schemes[scheme.ID()]; !ok {
		return ErrNotFound
	}
	r.schemes[scheme.ID()] = cloneScheme(scheme, r.assignID)
	return nil
}

// Clear removes every scheme.
func (r *MemorySchemeRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.schemes = make(map[int]*models.Scheme)
	return nil
}

func (r *MemorySchemeRepository) assignID() int {
	r.nextRevisionID++
	return r.nextRevisionID
}

// cloneScheme copies a scheme revision by revision. When assign is set, revisions without an id get one.
func cloneScheme(scheme *models.Scheme, assign func() int) *models.Scheme {
	id := func(current int) int {
		if current == 0 && assign != nil {
			return assign()
		}
		return current
	}

	clone := models.NewScheme(scheme.ID(), scheme.Reference())
	for _, rev := range scheme.Overview().OverviewRevisions() {
		rev.ID = id(rev.ID)
		clone.Overview().UpdateOverview(rev)
	}
	for _, rev := range scheme.Funding().BidStatusRevisions() {
		rev.ID = id(rev.ID)
		clone.Funding().UpdateBidStatus(rev)
	}
	for _, rev := range scheme.Funding().FinancialRevisions() {
		rev.ID = id(rev.ID)
		clone.Funding().UpdateFinancial(rev)
	}
	for _, rev := range scheme.Milestones().MilestoneRevisions() {
		rev.ID = id(rev.ID)
		clone.Milestones().UpdateMilestone(rev)
	}
	for _, rev := range scheme.Outputs().OutputRevisions() {
		rev.ID = id(rev.ID)
		clone.Outputs().UpdateOutput(rev)
	}
	for _, review := range scheme.Reviews().AuthorityReviews() {
		review.ID = id(review.ID)
		clone.Reviews().UpdateAuthorityReview(review)
	}
	return clone
}

// MemoryAuthorityRepository - in-memory implementation of AuthorityRepository.
type MemoryAuthorityRepository struct {
	mu          sync.RWMutex
	authorities map[int]models.Authority
}

// NewMemoryAuthorityRepository creates an empty MemoryAuthorityRepository.
func NewMemoryAuthorityRepository() *MemoryAuthorityRepository {
	return &MemoryAuthorityRepository{authorities: make(map[int]models.Authority)}
}

// Add stores the authorities. Nothing is stored if any id or abbreviation is taken.
func (r *MemoryAuthorityRepository) Add(_ context.Context, authorities ...models.Authority) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	ids := make(map[int]bool, len(r.authorities)+len(authorities))
	abbreviations := make(map[string]bool, len(r.authorities)+len(authorities))
	for _, authority := range r.authorities {
		ids[authority.ID] = true
		abbreviations[authority.Abbreviation] = true
	}
	for _, authority := range authorities {
		if ids[authority.ID] {
			return fmt.Errorf("authority %d: %w", authority.ID, ErrAlreadyExists)
		}
		if abbreviations[authority.Abbreviation] {
			return fmt.Errorf("authority %q: %w", authority.Abbreviation, ErrAlreadyExists)
		}
		ids[authority.ID] = true
		abbreviations[authority.Abbreviation] = true
	}
	for _, authority := range authorities {
		r.authorities[authority.ID] = authority
	}
	return nil
}

// Get returns the authority with the given id.
func (r *MemoryAuthorityRepository) Get(_ context.Context, id int) (*models.Authority, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	authority, ok := r.authorities[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &authority, nil
}

// GetByAbbreviation returns the authority with the given abbreviation.
func (r *MemoryAuthorityRepository) GetByAbbreviation(_ context.Context, abbreviation string) (*models.Authority, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, authority := range r.authorities {
		if authority.Abbreviation == abbreviation {
			return &authority, nil
		}
	}
	return nil, ErrNotFound
}

// Clear removes every authority.
func (r *MemoryAuthorityRepository) Clear(_ context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.authorities = make(map[int]models.Authority)
	return nil
}
