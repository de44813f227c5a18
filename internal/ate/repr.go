package ate

// SchemeRepr is the ATE wire representation of a capital scheme and its full revision history.
type SchemeRepr struct {
	ID                 int                     `json:"id" validate:"required,gt=0"`
	Reference          string                  `json:"reference,omitempty"`
	OverviewRevisions  []OverviewRevisionRepr  `json:"overview_revisions" validate:"dive"`
	BidStatusRevisions []BidStatusRevisionRepr `json:"bid_status_revisions" validate:"dive"`
	FinancialRevisions []FinancialRevisionRepr `json:"financial_revisions" validate:"dive"`
	MilestoneRevisions []MilestoneRevisionRepr `json:"milestone_revisions" validate:"dive"`
	OutputRevisions    []OutputRevisionRepr    `json:"output_revisions" validate:"dive"`
	AuthorityReviews   []AuthorityReviewRepr   `json:"authority_reviews" validate:"dive"`
}

// DateRangeRepr is an effective range; a missing date_to means the revision is current.
type DateRangeRepr struct {
	DateFrom string  `json:"date_from" validate:"required"`
	DateTo   *string `json:"date_to,omitempty"`
}

type OverviewRevisionRepr struct {
	ID                    *int          `json:"id,omitempty"`
	Effective             DateRangeRepr `json:"effective"`
	Name                  string        `json:"name" validate:"required"`
	AuthorityAbbreviation string        `json:"authority_abbreviation" validate:"required"`
	Type                  string        `json:"type" validate:"required"`
	FundingProgramme      string        `json:"funding_programme" validate:"required"`
}

type BidStatusRevisionRepr struct {
	ID        *int          `json:"id,omitempty"`
	Effective DateRangeRepr `json:"effective"`
	Status    string        `json:"status" validate:"required"`
}

type FinancialRevisionRepr struct {
	ID        *int          `json:"id,omitempty"`
	Effective DateRangeRepr `json:"effective"`
	Type      string        `json:"type" validate:"required"`
	Amount    int           `json:"amount"`
	Source    string        `json:"source" validate:"required"`
}

type MilestoneRevisionRepr struct {
	ID              *int          `json:"id,omitempty"`
	Effective       DateRangeRepr `json:"effective"`
	Milestone       string        `json:"milestone" validate:"required"`
	ObservationType string        `json:"observation_type" validate:"required"`
	StatusDate      string        `json:"status_date" validate:"required"`
	Source          string        `json:"source" validate:"required"`
}

type OutputRevisionRepr struct {
	ID              *int          `json:"id,omitempty"`
	Effective       DateRangeRepr `json:"effective"`
	Type            string        `json:"type" validate:"required"`
	Measure         string        `json:"measure" validate:"required"`
	Value           string        `json:"value" validate:"required,numeric"`
	ObservationType string        `json:"observation_type" validate:"required"`
}

type AuthorityReviewRepr struct {
	ID         *int   `json:"id,omitempty"`
	ReviewDate string `json:"review_date" validate:"required"`
	Source     string `json:"source" validate:"required"`
}

// AuthorityRepr is the ATE wire representation of a local authority.
type AuthorityRepr struct {
	ID           int    `json:"id" validate:"required,gt=0"`
	Abbreviation string `json:"abbreviation" validate:"required"`
	FullName     string `json:"full_name" validate:"required"`
}

// SpendToDateRepr is an authority's update of a scheme's spend to date.
type SpendToDateRepr struct {
	Amount *int `json:"amount" validate:"required,gte=0"`
}

// MilestoneDateRepr is an authority's update of one milestone date.
type MilestoneDateRepr struct {
	Milestone       string `json:"milestone" validate:"required"`
	ObservationType string `json:"observation_type" validate:"required"`
	StatusDate      string `json:"status_date" validate:"required,datetime=2006-01-02"`
}

// MilestonesRepr is an authority's update of a scheme's milestone dates.
type MilestonesRepr struct {
	Milestones []MilestoneDateRepr `json:"milestones" validate:"required,min=1,dive"`
}
