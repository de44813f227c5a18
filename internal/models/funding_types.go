package models

type (
	BidStatus     string // Funding approval state of a scheme
	FinancialType string // Kind of financial line item
)

const (
	Submitted BidStatus = "SUBMITTED"
	Funded    BidStatus = "FUNDED"
	NotFunded BidStatus = "NOT_FUNDED"
	Split     BidStatus = "SPLIT"
	Deleted   BidStatus = "DELETED"

	ExpectedCost      FinancialType = "EXPECTED_COST"
	ActualCost        FinancialType = "ACTUAL_COST"
	FundingAllocation FinancialType = "FUNDING_ALLOCATION"
	SpendToDate       FinancialType = "SPEND_TO_DATE"
	FundingRequest    FinancialType = "FUNDING_REQUEST"
)

// BidStatuses returns every bid status.
func BidStatuses() []BidStatus {
	return []BidStatus{Submitted, Funded, NotFunded, Split, Deleted}
}

// FinancialTypes returns every financial type.
func FinancialTypes() []FinancialType {
	return []FinancialType{ExpectedCost, ActualCost, FundingAllocation, SpendToDate, FundingRequest}
}
