package models

type (
	DataSource      string // Where a revision's data came from
	ObservationType string // Whether a value is planned or actually observed
)

const (
	Pulse5                 DataSource = "PULSE_5"
	Pulse6                 DataSource = "PULSE_6"
	ATF3Bid                DataSource = "ATF3_BID"
	ATF4Bid                DataSource = "ATF4_BID"
	ATF4EBid               DataSource = "ATF4E_BID"
	ATF4EModeratedBid      DataSource = "ATF4E_MODERATED_BID"
	ATF5Bid                DataSource = "ATF5_BID"
	InspectorateReview     DataSource = "INSPECTORATE_REVIEW"
	RegionalManagerRequest DataSource = "REGIONAL_MANAGER_REQUEST"
	InvestmentTeam         DataSource = "INVESTMENT_TEAM"
	PMOSpreadsheet         DataSource = "PMO_SPREADSHEET"
	ATEPublishedData       DataSource = "ATE_PUBLISHED_DATA"
	ChangeControl          DataSource = "CHANGE_CONTROL"
	CyclingCheck           DataSource = "CYCLING_CHECK"
	AuthorityUpdate        DataSource = "AUTHORITY_UPDATE"
	UnknownDataSource      DataSource = "UNKNOWN"

	Planned ObservationType = "PLANNED" // Value the authority expects
	Actual  ObservationType = "ACTUAL"  // Value that has happened
)

var dataSources = []DataSource{
	Pulse5,
	Pulse6,
	ATF3Bid,
	ATF4Bid,
	ATF4EBid,
	ATF4EModeratedBid,
	ATF5Bid,
	InspectorateReview,
	RegionalManagerRequest,
	InvestmentTeam,
	PMOSpreadsheet,
	ATEPublishedData,
	ChangeControl,
	CyclingCheck,
	AuthorityUpdate,
	UnknownDataSource,
}

// DataSources returns every data source.
func DataSources() []DataSource {
	return append([]DataSource(nil), dataSources...)
}

// ObservationTypes returns every observation type.
func ObservationTypes() []ObservationType {
	return []ObservationType{Planned, Actual}
}
