package ate

import (
	"errors"
	"fmt"

	"github.com/senyabanana/capital-schemes/internal/models"
)

// ErrUnknownValue is returned when a wire string or domain value has no mapping.
var ErrUnknownValue = errors.New("unknown value")

// enumMapping translates a closed domain vocabulary to and from its wire strings.
type enumMapping[T comparable] struct {
	field    string
	toWire   map[T]string
	fromWire map[string]T
}

type pair[T comparable] struct {
	value T
	wire  string
}

func newEnumMapping[T comparable](field string, pairs ...pair[T]) enumMapping[T] {
	m := enumMapping[T]{
		field:    field,
		toWire:   make(map[T]string, len(pairs)),
		fromWire: make(map[string]T, len(pairs)),
	}
	for _, p := range pairs {
		m.toWire[p.value] = p.wire
		m.fromWire[p.wire] = p.value
	}
	return m
}

func (m enumMapping[T]) decode(wire string) (T, error) {
	v, ok := m.fromWire[wire]
	if !ok {
		var zero T
		return zero, fmt.Errorf("%w: %s %q", ErrUnknownValue, m.field, wire)
	}
	return v, nil
}

func (m enumMapping[T]) encode(v T) (string, error) {
	wire, ok := m.toWire[v]
	if !ok {
		return "", fmt.Errorf("%w: %s %v", ErrUnknownValue, m.field, v)
	}
	return wire, nil
}

var schemeTypes = newEnumMapping("type",
	pair[models.SchemeType]{models.Development, "development"},
	pair[models.SchemeType]{models.Construction, "construction"},
)

var fundingProgrammes = func() enumMapping[models.FundingProgramme] {
	var pairs []pair[models.FundingProgramme]
	for _, p := range models.FundingProgrammes() {
		pairs = append(pairs, pair[models.FundingProgramme]{p, p.Code()})
	}
	return newEnumMapping("funding_programme", pairs...)
}()

var bidStatuses = newEnumMapping("status",
	pair[models.BidStatus]{models.Submitted, "submitted"},
	pair[models.BidStatus]{models.Funded, "funded"},
	pair[models.BidStatus]{models.NotFunded, "not funded"},
	pair[models.BidStatus]{models.Split, "split"},
	pair[models.BidStatus]{models.Deleted, "deleted"},
)

var financialTypes = newEnumMapping("type",
	pair[models.FinancialType]{models.ExpectedCost, "expected cost"},
	pair[models.FinancialType]{models.ActualCost, "actual cost"},
	pair[models.FinancialType]{models.FundingAllocation, "funding allocation"},
	pair[models.FinancialType]{models.SpendToDate, "spend to date"},
	pair[models.FinancialType]{models.FundingRequest, "funding request"},
)

var dataSources = newEnumMapping("source",
	pair[models.DataSource]{models.Pulse5, "Pulse 5"},
	pair[models.DataSource]{models.Pulse6, "Pulse 6"},
	pair[models.DataSource]{models.ATF3Bid, "ATF3 bid"},
	pair[models.DataSource]{models.ATF4Bid, "ATF4 bid"},
	pair[models.DataSource]{models.ATF4EBid, "ATF4e bid"},
	pair[models.DataSource]{models.ATF4EModeratedBid, "ATF4e moderated bid"},
	pair[models.DataSource]{models.ATF5Bid, "ATF5 bid"},
	pair[models.DataSource]{models.InspectorateReview, "Inspectorate review"},
	pair[models.DataSource]{models.RegionalManagerRequest, "Regional Manager request"},
	pair[models.DataSource]{models.InvestmentTeam, "Investment Team"},
	pair[models.DataSource]{models.PMOSpreadsheet, "PMO spreadsheet"},
	pair[models.DataSource]{models.ATEPublishedData, "ATE published data"},
	pair[models.DataSource]{models.ChangeControl, "change control"},
	pair[models.DataSource]{models.CyclingCheck, "cycling check"},
	pair[models.DataSource]{models.AuthorityUpdate, "authority update"},
	pair[models.DataSource]{models.UnknownDataSource, "unknown"},
)

var milestones = newEnumMapping("milestone",
	pair[models.Milestone]{models.PublicConsultationCompleted, "public consultation completed"},
	pair[models.Milestone]{models.FeasibilityDesignStarted, "feasibility design started"},
	pair[models.Milestone]{models.FeasibilityDesignCompleted, "feasibility design completed"},
	pair[models.Milestone]{models.PreliminaryDesignCompleted, "preliminary design completed"},
	pair[models.Milestone]{models.OutlineDesignCompleted, "outline design completed"},
	pair[models.Milestone]{models.DetailedDesignCompleted, "detailed design completed"},
	pair[models.Milestone]{models.ConstructionStarted, "construction started"},
	pair[models.Milestone]{models.ConstructionCompleted, "construction completed"},
	pair[models.Milestone]{models.FundingCompleted, "funding completed"},
	pair[models.Milestone]{models.NotProgressed, "not progressed"},
	pair[models.Milestone]{models.Superseded, "superseded"},
	pair[models.Milestone]{models.Removed, "removed"},
)

var observationTypes = newEnumMapping("observation_type",
	pair[models.ObservationType]{models.Planned, "planned"},
	pair[models.ObservationType]{models.Actual, "actual"},
)

var outputTypes = newEnumMapping("type",
	pair[models.OutputType]{models.NewSegregatedCyclingFacility, "New segregated cycling facility"},
	pair[models.OutputType]{models.NewTemporarySegregatedCyclingFacility, "New temporary segregated cycling facility"},
	pair[models.OutputType]{models.NewJunctionTreatment, "New junction treatment"},
	pair[models.OutputType]{models.NewPermanentFootway, "New permanent footway"},
	pair[models.OutputType]{models.NewTemporaryFootway, "New temporary footway"},
	pair[models.OutputType]{models.NewSharedUseFacilities, "New shared use (walking and cycling) facilities"},
	pair[models.OutputType]{models.NewSharedUseFacilitiesWheeling, "New shared use (walking, wheeling & cycling) facilities"},
	pair[models.OutputType]{models.ImprovementsToExistingRoute, "Improvements to make an existing walking/cycle route safer"},
	pair[models.OutputType]{models.AreaWideTrafficManagement, "Area-wide traffic management (including by TROs (both permanent and experimental))"},
	pair[models.OutputType]{models.BusPriorityMeasures, "Bus priority measures that also enable active travel (for example, bus gates)"},
	pair[models.OutputType]{models.SecureCycleParking, "Provision of secure cycle parking facilities"},
	pair[models.OutputType]{models.NewRoadCrossings, "New road crossings"},
	pair[models.OutputType]{models.RestrictionOrReductionOfCarParkingAvailability, "Restriction or reduction of car parking availability"},
	pair[models.OutputType]{models.SchoolStreets, "School streets"},
	pair[models.OutputType]{models.UpgradesToExistingFacilities, "Upgrades to existing facilities (e.g. surfacing, signage, signals)"},
	pair[models.OutputType]{models.EScooterTrials, "E-scooter trials"},
	pair[models.OutputType]{models.ParkAndCycleStrideFacilities, "Park and cycle/stride facilities"},
	pair[models.OutputType]{models.TrafficCalming, "Traffic calming (e.g. lane closures, reducing speed limits)"},
	pair[models.OutputType]{models.WideningExistingFootway, "Widening existing footway"},
	pair[models.OutputType]{models.OtherInterventions, "Other interventions"},
)

var outputMeasures = newEnumMapping("measure",
	pair[models.OutputMeasure]{models.Miles, "miles"},
	pair[models.OutputMeasure]{models.NumberOfJunctions, "number of junctions"},
	pair[models.OutputMeasure]{models.SizeOfArea, "size of area"},
	pair[models.OutputMeasure]{models.NumberOfPermanentBusPriorityLanesSchemes, "number of permanent bus priority lanes schemes"},
	pair[models.OutputMeasure]{models.NumberOfTemporaryBusPriorityLanesSchemes, "number of temporary bus priority lanes schemes"},
	pair[models.OutputMeasure]{models.NumberOfBusGates, "number of bus gates"},
	pair[models.OutputMeasure]{models.NumberOfUpgrades, "number of upgrades"},
	pair[models.OutputMeasure]{models.NumberOfCycleParkingSpaces, "number of cycle parking spaces"},
	pair[models.OutputMeasure]{models.NumberOfCrossings, "number of crossings"},
	pair[models.OutputMeasure]{models.NumberOfParkingSpaces, "number of parking spaces"},
	pair[models.OutputMeasure]{models.NumberOfSchoolStreets, "number of school streets"},
	pair[models.OutputMeasure]{models.NumberOfTrials, "number of trials"},
	pair[models.OutputMeasure]{models.NumberOfBusStops, "number of bus stops"},
	pair[models.OutputMeasure]{models.NumberOfParkAndCycleStrideFacilities, "number of park and cycle/stride facilities"},
	pair[models.OutputMeasure]{models.NumberOfMeasuresPlanned, "number of measures planned"},
)
