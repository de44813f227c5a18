package ate

import (
	"time"

	"github.com/senyabanana/capital-schemes/internal/models"
)

// SchemeSummaryRepr is the current state of a scheme as shown to its authority.
type SchemeSummaryRepr struct {
	ID                        int                    `json:"id"`
	Reference                 string                 `json:"reference"`
	Name                      string                 `json:"name"`
	Type                      string                 `json:"type,omitempty"`
	FundingProgramme          string                 `json:"funding_programme,omitempty"`
	BidStatus                 string                 `json:"bid_status,omitempty"`
	FundingAllocation         *int                   `json:"funding_allocation"`
	ChangeControlAdjustment   *int                   `json:"change_control_adjustment"`
	AdjustedFundingAllocation int                    `json:"adjusted_funding_allocation"`
	SpendToDate               *int                   `json:"spend_to_date"`
	AllocationStillToSpend    int                    `json:"allocation_still_to_spend"`
	CurrentMilestone          string                 `json:"current_milestone,omitempty"`
	Milestones                []MilestoneSummaryRepr `json:"milestones"`
	Outputs                   []OutputSummaryRepr    `json:"outputs"`
	LastReviewed              *string                `json:"last_reviewed"`
	IsUpdateable              bool                   `json:"is_updateable"`
	NeedsReview               *bool                  `json:"needs_review,omitempty"`
}

// MilestoneSummaryRepr holds the current planned and actual dates of a milestone.
type MilestoneSummaryRepr struct {
	Milestone string  `json:"milestone"`
	Planned   *string `json:"planned"`
	Actual    *string `json:"actual"`
}

// OutputSummaryRepr holds the current planned value of an output.
type OutputSummaryRepr struct {
	Type    string  `json:"type"`
	Measure string  `json:"measure"`
	Planned *string `json:"planned"`
}

// SchemeSummary builds the summary of a scheme. NeedsReview is only set when a window is given.
func (t *Translator) SchemeSummary(scheme *models.Scheme, window *models.ReportingWindow) (SchemeSummaryRepr, error) {
	overview := scheme.Overview()
	funding := scheme.Funding()
	summary := SchemeSummaryRepr{
		ID:                        scheme.ID(),
		Reference:                 scheme.Reference(),
		Name:                      overview.Name(),
		FundingAllocation:         funding.FundingAllocation(),
		ChangeControlAdjustment:   funding.ChangeControlAdjustment(),
		AdjustedFundingAllocation: funding.AdjustedFundingAllocation(),
		SpendToDate:               funding.SpendToDate(),
		AllocationStillToSpend:    funding.AllocationStillToSpend(),
		Milestones:                []MilestoneSummaryRepr{},
		Outputs:                   []OutputSummaryRepr{},
		IsUpdateable:              scheme.IsUpdateable(),
	}

	var err error
	if overview.CurrentOverview() != nil {
		if summary.Type, err = schemeTypes.encode(overview.Type()); err != nil {
			return SchemeSummaryRepr{}, err
		}
		if summary.FundingProgramme, err = fundingProgrammes.encode(overview.FundingProgramme()); err != nil {
			return SchemeSummaryRepr{}, err
		}
	}
	if status := funding.BidStatus(); status != "" {
		if summary.BidStatus, err = bidStatuses.encode(status); err != nil {
			return SchemeSummaryRepr{}, err
		}
	}
	if current := scheme.Milestones().CurrentMilestone(); current != "" {
		if summary.CurrentMilestone, err = milestones.encode(current); err != nil {
			return SchemeSummaryRepr{}, err
		}
	}

	for _, milestone := range models.Milestones() {
		if !milestone.IsActive() {
			continue
		}
		planned := scheme.Milestones().CurrentStatusDate(milestone, models.Planned)
		actual := scheme.Milestones().CurrentStatusDate(milestone, models.Actual)
		if planned == nil && actual == nil {
			continue
		}
		wire, err := milestones.encode(milestone)
		if err != nil {
			return SchemeSummaryRepr{}, err
		}
		row := MilestoneSummaryRepr{Milestone: wire}
		if planned != nil {
			formatted := formatDate(*planned)
			row.Planned = &formatted
		}
		if actual != nil {
			formatted := formatDate(*actual)
			row.Actual = &formatted
		}
		summary.Milestones = append(summary.Milestones, row)
	}

	for _, output := range scheme.Outputs().CurrentOutputs() {
		outputType, err := outputTypes.encode(output.TypeMeasure.Type())
		if err != nil {
			return SchemeSummaryRepr{}, err
		}
		measure, err := outputMeasures.encode(output.TypeMeasure.Measure())
		if err != nil {
			return SchemeSummaryRepr{}, err
		}
		row := OutputSummaryRepr{Type: outputType, Measure: measure}
		if output.Planned != nil {
			value := output.Planned.String()
			row.Planned = &value
		}
		summary.Outputs = append(summary.Outputs, row)
	}

	if last := scheme.Reviews().LastReviewed(); last != nil {
		formatted := t.formatDateTime(*last)
		summary.LastReviewed = &formatted
	}
	if window != nil {
		needsReview := scheme.NeedsReview(*window)
		summary.NeedsReview = &needsReview
	}
	return summary, nil
}

// ReportingWindowRepr is a reporting window and the days left to report in it.
type ReportingWindowRepr struct {
	DateFrom string `json:"date_from"`
	DateTo   string `json:"date_to"`
	DaysLeft int    `json:"days_left"`
}

// ReportingWindowRepr builds the representation of a reporting window as seen at now.
func (t *Translator) ReportingWindowRepr(window models.ReportingWindow, now time.Time) ReportingWindowRepr {
	repr := ReportingWindowRepr{
		DateFrom: t.formatDateTime(window.Window().From()),
		DaysLeft: window.DaysLeft(now),
	}
	if to := window.Window().To(); to != nil {
		repr.DateTo = t.formatDateTime(*to)
	}
	return repr
}

// AuthoritySchemesRepr is an authority's view of its schemes in the current reporting window.
type AuthoritySchemesRepr struct {
	Authority       AuthorityRepr        `json:"authority"`
	ReportingWindow *ReportingWindowRepr `json:"reporting_window"`
	Schemes         []SchemeSummaryRepr  `json:"schemes"`
}
