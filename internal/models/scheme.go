package models

import "fmt"

const referencePrefix = "ATE"

// Scheme is a capital transport scheme and the root of its revision aggregates.
type Scheme struct {
	id         int
	reference  string
	overview   *SchemeOverview
	funding    *SchemeFunding
	milestones *SchemeMilestones
	outputs    *SchemeOutputs
	reviews    *SchemeReviews
}

// NewScheme creates a scheme with empty aggregates. An empty reference is derived from the id.
func NewScheme(id int, reference string) *Scheme {
	if reference == "" {
		reference = ReferenceForID(id)
	}
	return &Scheme{
		id:         id,
		reference:  reference,
		overview:   NewSchemeOverview(),
		funding:    NewSchemeFunding(),
		milestones: NewSchemeMilestones(),
		outputs:    NewSchemeOutputs(),
		reviews:    NewSchemeReviews(),
	}
}

// ReferenceForID formats a scheme id as a reference, e.g. ATE00001.
// Schemes that are not yet persisted have no reference.
func ReferenceForID(id int) string {
	if id <= 0 {
		return ""
	}
	return fmt.Sprintf("%s%05d", referencePrefix, id)
}

// ID returns the scheme id, zero until persisted.
func (s *Scheme) ID() int { return s.id }

// Reference returns the scheme reference.
func (s *Scheme) Reference() string { return s.reference }

// Overview returns the overview aggregate.
func (s *Scheme) Overview() *SchemeOverview { return s.overview }

// Funding returns the funding aggregate.
func (s *Scheme) Funding() *SchemeFunding { return s.funding }

// Milestones returns the milestones aggregate.
func (s *Scheme) Milestones() *SchemeMilestones { return s.milestones }

// Outputs returns the outputs aggregate.
func (s *Scheme) Outputs() *SchemeOutputs { return s.outputs }

// Reviews returns the reviews aggregate.
func (s *Scheme) Reviews() *SchemeReviews { return s.reviews }

// IsUpdateable reports whether the owning authority may update the scheme.
func (s *Scheme) IsUpdateable() bool {
	programme := s.overview.FundingProgramme()
	if programme == "" || !programme.IsEligibleForAuthorityUpdate() {
		return false
	}
	if s.funding.BidStatus() != Funded {
		return false
	}
	milestone := s.milestones.CurrentMilestone()
	return milestone == "" || (milestone.IsActive() && !milestone.IsComplete())
}

// NeedsReview reports whether the scheme has not been reviewed since the window opened.
func (s *Scheme) NeedsReview(window ReportingWindow) bool {
	last := s.reviews.LastReviewed()
	return last == nil || last.Before(window.Window().From())
}
