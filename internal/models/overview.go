package models

// OverviewRevision is a time-bounded snapshot of a scheme's name, authority, type and funding programme.
type OverviewRevision struct {
	ID               int // zero until persisted
	Effective        DateRange
	Name             string
	AuthorityID      int
	Type             SchemeType
	FundingProgramme FundingProgramme
}

func (r OverviewRevision) effective() DateRange { return r.Effective }

func (r OverviewRevision) withEffective(e DateRange) OverviewRevision {
	r.Effective = e
	return r
}

// SchemeOverview holds the overview revisions of a scheme.
type SchemeOverview struct {
	overviewRevisions []OverviewRevision
}

// NewSchemeOverview creates an empty overview.
func NewSchemeOverview() *SchemeOverview {
	return &SchemeOverview{}
}

// OverviewRevisions returns a copy of the revisions in insertion order.
func (o *SchemeOverview) OverviewRevisions() []OverviewRevision {
	return append([]OverviewRevision(nil), o.overviewRevisions...)
}

// UpdateOverview appends a revision without closing the current one.
func (o *SchemeOverview) UpdateOverview(revision OverviewRevision) {
	o.overviewRevisions = append(o.overviewRevisions, revision)
}

// UpdateOverviews appends revisions in the order given.
func (o *SchemeOverview) UpdateOverviews(revisions ...OverviewRevision) {
	o.overviewRevisions = append(o.overviewRevisions, revisions...)
}

// SupersedeOverview closes the current overview at the new revision's start and appends it.
func (o *SchemeOverview) SupersedeOverview(revision OverviewRevision) error {
	updated, err := supersede(o.overviewRevisions, revision, singleSlot[OverviewRevision])
	if err != nil {
		return err
	}
	o.overviewRevisions = updated
	return nil
}

// CurrentOverview returns the first open revision, or nil if there is none.
func (o *SchemeOverview) CurrentOverview() *OverviewRevision {
	current := currentOf(o.overviewRevisions)
	if len(current) == 0 {
		return nil
	}
	return &current[0]
}

// Name returns the current name, or an empty string.
func (o *SchemeOverview) Name() string {
	if current := o.CurrentOverview(); current != nil {
		return current.Name
	}
	return ""
}

// AuthorityID returns the current authority id, or zero.
func (o *SchemeOverview) AuthorityID() int {
	if current := o.CurrentOverview(); current != nil {
		return current.AuthorityID
	}
	return 0
}

// Type returns the current scheme type, or an empty value.
func (o *SchemeOverview) Type() SchemeType {
	if current := o.CurrentOverview(); current != nil {
		return current.Type
	}
	return ""
}

// FundingProgramme returns the current funding programme, or an empty value.
func (o *SchemeOverview) FundingProgramme() FundingProgramme {
	if current := o.CurrentOverview(); current != nil {
		return current.FundingProgramme
	}
	return ""
}
