package models

// BidStatusRevision is a time-bounded snapshot of a scheme's bid status.
type BidStatusRevision struct {
	ID        int
	Effective DateRange
	Status    BidStatus
}

func (r BidStatusRevision) effective() DateRange { return r.Effective }

func (r BidStatusRevision) withEffective(e DateRange) BidStatusRevision {
	r.Effective = e
	return r
}

// FinancialRevision is a time-bounded financial line item in whole pounds.
type FinancialRevision struct {
	ID        int
	Effective DateRange
	Type      FinancialType
	Amount    int
	Source    DataSource
}

func (r FinancialRevision) effective() DateRange { return r.Effective }

func (r FinancialRevision) withEffective(e DateRange) FinancialRevision {
	r.Effective = e
	return r
}

// financialSlot keeps change control adjustments apart from the funding allocation they adjust.
type financialSlot struct {
	financialType FinancialType
	changeControl bool
}

func financialSlotOf(r FinancialRevision) financialSlot {
	return financialSlot{
		financialType: r.Type,
		changeControl: r.Type == FundingAllocation && r.Source == ChangeControl,
	}
}

// SchemeFunding holds the bid status and financial revisions of a scheme.
type SchemeFunding struct {
	bidStatusRevisions []BidStatusRevision
	financialRevisions []FinancialRevision
}

// NewSchemeFunding creates empty funding.
func NewSchemeFunding() *SchemeFunding {
	return &SchemeFunding{}
}

// BidStatusRevisions returns a copy of the bid status revisions in insertion order.
func (f *SchemeFunding) BidStatusRevisions() []BidStatusRevision {
	return append([]BidStatusRevision(nil), f.bidStatusRevisions...)
}

// UpdateBidStatus appends a bid status revision without closing the current one.
func (f *SchemeFunding) UpdateBidStatus(revision BidStatusRevision) {
	f.bidStatusRevisions = append(f.bidStatusRevisions, revision)
}

// UpdateBidStatuses appends bid status revisions in the order given.
func (f *SchemeFunding) UpdateBidStatuses(revisions ...BidStatusRevision) {
	f.bidStatusRevisions = append(f.bidStatusRevisions, revisions...)
}

// SupersedeBidStatus closes the current bid status at the new revision's start and appends it.
func (f *SchemeFunding) SupersedeBidStatus(revision BidStatusRevision) error {
	updated, err := supersede(f.bidStatusRevisions, revision, singleSlot[BidStatusRevision])
	if err != nil {
		return err
	}
	f.bidStatusRevisions = updated
	return nil
}

// CurrentBidStatusRevision returns the first open bid status revision, or nil.
func (f *SchemeFunding) CurrentBidStatusRevision() *BidStatusRevision {
	current := currentOf(f.bidStatusRevisions)
	if len(current) == 0 {
		return nil
	}
	return &current[0]
}

// BidStatus returns the current bid status, or an empty value.
func (f *SchemeFunding) BidStatus() BidStatus {
	if current := f.CurrentBidStatusRevision(); current != nil {
		return current.Status
	}
	return ""
}

// FinancialRevisions returns a copy of the financial revisions in insertion order.
func (f *SchemeFunding) FinancialRevisions() []FinancialRevision {
	return append([]FinancialRevision(nil), f.financialRevisions...)
}

// UpdateFinancial appends a financial revision without closing the current one.
func (f *SchemeFunding) UpdateFinancial(revision FinancialRevision) {
	f.financialRevisions = append(f.financialRevisions, revision)
}

// UpdateFinancials appends financial revisions in the order given.
func (f *SchemeFunding) UpdateFinancials(revisions ...FinancialRevision) {
	f.financialRevisions = append(f.financialRevisions, revisions...)
}

// SupersedeFinancial closes the current revision of the same financial type and appends the new one.
// Change control adjustments are superseded separately from the funding allocation.
func (f *SchemeFunding) SupersedeFinancial(revision FinancialRevision) error {
	updated, err := supersede(f.financialRevisions, revision, financialSlotOf)
	if err != nil {
		return err
	}
	f.financialRevisions = updated
	return nil
}

// CurrentFinancialRevisions returns the open financial revisions in insertion order.
func (f *SchemeFunding) CurrentFinancialRevisions() []FinancialRevision {
	return currentOf(f.financialRevisions)
}

// FundingAllocation sums the current funding allocations excluding change control, or nil if there are none.
func (f *SchemeFunding) FundingAllocation() *int {
	return f.sumCurrent(func(r FinancialRevision) bool {
		return r.Type == FundingAllocation && r.Source != ChangeControl
	})
}

// ChangeControlAdjustment sums the current change control funding allocations, or nil if there are none.
func (f *SchemeFunding) ChangeControlAdjustment() *int {
	return f.sumCurrent(func(r FinancialRevision) bool {
		return r.Type == FundingAllocation && r.Source == ChangeControl
	})
}

// SpendToDate returns the current spend to date, or nil.
func (f *SchemeFunding) SpendToDate() *int {
	return f.sumCurrent(func(r FinancialRevision) bool {
		return r.Type == SpendToDate
	})
}

// AdjustedFundingAllocation is the funding allocation plus change control adjustments.
func (f *SchemeFunding) AdjustedFundingAllocation() int {
	return valueOrZero(f.FundingAllocation()) + valueOrZero(f.ChangeControlAdjustment())
}

// AllocationStillToSpend is the adjusted funding allocation less spend to date.
func (f *SchemeFunding) AllocationStillToSpend() int {
	return f.AdjustedFundingAllocation() - valueOrZero(f.SpendToDate())
}

func (f *SchemeFunding) sumCurrent(match func(FinancialRevision) bool) *int {
	var total *int
	for _, r := range currentOf(f.financialRevisions) {
		if !match(r) {
			continue
		}
		if total == nil {
			total = new(int)
		}
		*total += r.Amount
	}
	return total
}

func valueOrZero(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}
