package models

import "time"

// MilestoneRevision is a time-bounded planned or actual date for a milestone.
type MilestoneRevision struct {
	ID              int
	Effective       DateRange
	Milestone       Milestone
	ObservationType ObservationType
	StatusDate      time.Time // calendar date, independent of Effective
	Source          DataSource
}

func (r MilestoneRevision) effective() DateRange { return r.Effective }

func (r MilestoneRevision) withEffective(e DateRange) MilestoneRevision {
	r.Effective = e
	return r
}

type milestoneSlot struct {
	milestone       Milestone
	observationType ObservationType
}

func milestoneSlotOf(r MilestoneRevision) milestoneSlot {
	return milestoneSlot{milestone: r.Milestone, observationType: r.ObservationType}
}

// SchemeMilestones holds the milestone revisions of a scheme.
type SchemeMilestones struct {
	milestoneRevisions []MilestoneRevision
}

// NewSchemeMilestones creates empty milestones.
func NewSchemeMilestones() *SchemeMilestones {
	return &SchemeMilestones{}
}

// MilestoneRevisions returns a copy of the revisions in insertion order.
func (m *SchemeMilestones) MilestoneRevisions() []MilestoneRevision {
	return append([]MilestoneRevision(nil), m.milestoneRevisions...)
}

// UpdateMilestone appends a revision without closing the current one.
func (m *SchemeMilestones) UpdateMilestone(revision MilestoneRevision) {
	m.milestoneRevisions = append(m.milestoneRevisions, revision)
}

// UpdateMilestones appends revisions in the order given.
func (m *SchemeMilestones) UpdateMilestones(revisions ...MilestoneRevision) {
	m.milestoneRevisions = append(m.milestoneRevisions, revisions...)
}

// SupersedeMilestone closes the current revision for the same milestone and observation type and appends the new one.
func (m *SchemeMilestones) SupersedeMilestone(revision MilestoneRevision) error {
	updated, err := supersede(m.milestoneRevisions, revision, milestoneSlotOf)
	if err != nil {
		return err
	}
	m.milestoneRevisions = updated
	return nil
}

// CurrentMilestoneRevisions returns the open revisions in insertion order.
func (m *SchemeMilestones) CurrentMilestoneRevisions() []MilestoneRevision {
	return currentOf(m.milestoneRevisions)
}

// CurrentStatusDate returns the current date for a milestone and observation type, or nil.
func (m *SchemeMilestones) CurrentStatusDate(milestone Milestone, observationType ObservationType) *time.Time {
	for _, r := range currentOf(m.milestoneRevisions) {
		if r.Milestone == milestone && r.ObservationType == observationType {
			d := r.StatusDate
			return &d
		}
	}
	return nil
}

// CurrentMilestone returns the latest milestone in delivery order that has actually been reached,
// or an empty value if none has.
func (m *SchemeMilestones) CurrentMilestone() Milestone {
	var latest Milestone
	for _, r := range currentOf(m.milestoneRevisions) {
		if r.ObservationType != Actual {
			continue
		}
		if latest == "" || latest.Before(r.Milestone) {
			latest = r.Milestone
		}
	}
	return latest
}
