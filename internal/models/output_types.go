package models

import (
	"errors"
	"fmt"
)

// ErrUnknownCombination is returned when an output type and measure are not a valid pair.
var ErrUnknownCombination = errors.New("unknown output type and measure combination")

type (
	OutputType        string // Kind of physical deliverable
	OutputMeasure     string // Unit a deliverable is quantified in
	OutputTypeMeasure string // Valid pairing of an output type with a measure
)

const (
	NewSegregatedCyclingFacility                   OutputType = "NEW_SEGREGATED_CYCLING_FACILITY"
	NewTemporarySegregatedCyclingFacility          OutputType = "NEW_TEMPORARY_SEGREGATED_CYCLING_FACILITY"
	NewJunctionTreatment                           OutputType = "NEW_JUNCTION_TREATMENT"
	NewPermanentFootway                            OutputType = "NEW_PERMANENT_FOOTWAY"
	NewTemporaryFootway                            OutputType = "NEW_TEMPORARY_FOOTWAY"
	NewSharedUseFacilities                         OutputType = "NEW_SHARED_USE_FACILITIES"
	NewSharedUseFacilitiesWheeling                 OutputType = "NEW_SHARED_USE_FACILITIES_WHEELING"
	ImprovementsToExistingRoute                    OutputType = "IMPROVEMENTS_TO_EXISTING_ROUTE"
	AreaWideTrafficManagement                      OutputType = "AREA_WIDE_TRAFFIC_MANAGEMENT"
	BusPriorityMeasures                            OutputType = "BUS_PRIORITY_MEASURES"
	SecureCycleParking                             OutputType = "SECURE_CYCLE_PARKING"
	NewRoadCrossings                               OutputType = "NEW_ROAD_CROSSINGS"
	RestrictionOrReductionOfCarParkingAvailability OutputType = "RESTRICTION_OR_REDUCTION_OF_CAR_PARKING_AVAILABILITY"
	SchoolStreets                                  OutputType = "SCHOOL_STREETS"
	UpgradesToExistingFacilities                   OutputType = "UPGRADES_TO_EXISTING_FACILITIES"
	EScooterTrials                                 OutputType = "E_SCOOTER_TRIALS"
	ParkAndCycleStrideFacilities                   OutputType = "PARK_AND_CYCLE_STRIDE_FACILITIES"
	TrafficCalming                                 OutputType = "TRAFFIC_CALMING"
	WideningExistingFootway                        OutputType = "WIDENING_EXISTING_FOOTWAY"
	OtherInterventions                             OutputType = "OTHER_INTERVENTIONS"

	Miles                                    OutputMeasure = "MILES"
	NumberOfJunctions                        OutputMeasure = "NUMBER_OF_JUNCTIONS"
	SizeOfArea                               OutputMeasure = "SIZE_OF_AREA"
	NumberOfPermanentBusPriorityLanesSchemes OutputMeasure = "NUMBER_OF_PERMANENT_BUS_PRIORITY_LANES_SCHEMES"
	NumberOfTemporaryBusPriorityLanesSchemes OutputMeasure = "NUMBER_OF_TEMPORARY_BUS_PRIORITY_LANES_SCHEMES"
	NumberOfBusGates                         OutputMeasure = "NUMBER_OF_BUS_GATES"
	NumberOfUpgrades                         OutputMeasure = "NUMBER_OF_UPGRADES"
	NumberOfCycleParkingSpaces               OutputMeasure = "NUMBER_OF_CYCLE_PARKING_SPACES"
	NumberOfCrossings                        OutputMeasure = "NUMBER_OF_CROSSINGS"
	NumberOfParkingSpaces                    OutputMeasure = "NUMBER_OF_PARKING_SPACES"
	NumberOfSchoolStreets                    OutputMeasure = "NUMBER_OF_SCHOOL_STREETS"
	NumberOfTrials                           OutputMeasure = "NUMBER_OF_TRIALS"
	NumberOfBusStops                         OutputMeasure = "NUMBER_OF_BUS_STOPS"
	NumberOfParkAndCycleStrideFacilities     OutputMeasure = "NUMBER_OF_PARK_AND_CYCLE_STRIDE_FACILITIES"
	NumberOfMeasuresPlanned                  OutputMeasure = "NUMBER_OF_MEASURES_PLANNED"
)

const (
	NewSegregatedCyclingFacilityMiles                                   OutputTypeMeasure = "NEW_SEGREGATED_CYCLING_FACILITY_MILES"
	NewTemporarySegregatedCyclingFacilityMiles                          OutputTypeMeasure = "NEW_TEMPORARY_SEGREGATED_CYCLING_FACILITY_MILES"
	NewJunctionTreatmentMiles                                           OutputTypeMeasure = "NEW_JUNCTION_TREATMENT_MILES"
	NewJunctionTreatmentNumberOfJunctions                               OutputTypeMeasure = "NEW_JUNCTION_TREATMENT_NUMBER_OF_JUNCTIONS"
	NewPermanentFootwayMiles                                            OutputTypeMeasure = "NEW_PERMANENT_FOOTWAY_MILES"
	NewTemporaryFootwayMiles                                            OutputTypeMeasure = "NEW_TEMPORARY_FOOTWAY_MILES"
	NewSharedUseFacilitiesMiles                                         OutputTypeMeasure = "NEW_SHARED_USE_FACILITIES_MILES"
	NewSharedUseFacilitiesWheelingMiles                                 OutputTypeMeasure = "NEW_SHARED_USE_FACILITIES_WHEELING_MILES"
	ImprovementsToExistingRouteMiles                                    OutputTypeMeasure = "IMPROVEMENTS_TO_EXISTING_ROUTE_MILES"
	AreaWideTrafficManagementSizeOfArea                                 OutputTypeMeasure = "AREA_WIDE_TRAFFIC_MANAGEMENT_SIZE_OF_AREA"
	BusPriorityMeasuresMiles                                            OutputTypeMeasure = "BUS_PRIORITY_MEASURES_MILES"
	BusPriorityMeasuresNumberOfPermanentBusPriorityLanesSchemes         OutputTypeMeasure = "BUS_PRIORITY_MEASURES_NUMBER_OF_PERMANENT_BUS_PRIORITY_LANES_SCHEMES"
	BusPriorityMeasuresNumberOfTemporaryBusPriorityLanesSchemes         OutputTypeMeasure = "BUS_PRIORITY_MEASURES_NUMBER_OF_TEMPORARY_BUS_PRIORITY_LANES_SCHEMES"
	BusPriorityMeasuresNumberOfBusGates                                 OutputTypeMeasure = "BUS_PRIORITY_MEASURES_NUMBER_OF_BUS_GATES"
	BusPriorityMeasuresNumberOfBusStops                                 OutputTypeMeasure = "BUS_PRIORITY_MEASURES_NUMBER_OF_BUS_STOPS"
	SecureCycleParkingNumberOfCycleParkingSpaces                        OutputTypeMeasure = "SECURE_CYCLE_PARKING_NUMBER_OF_CYCLE_PARKING_SPACES"
	NewRoadCrossingsNumberOfCrossings                                   OutputTypeMeasure = "NEW_ROAD_CROSSINGS_NUMBER_OF_CROSSINGS"
	RestrictionOrReductionOfCarParkingAvailabilityNumberOfParkingSpaces OutputTypeMeasure = "RESTRICTION_OR_REDUCTION_OF_CAR_PARKING_AVAILABILITY_NUMBER_OF_PARKING_SPACES"
	SchoolStreetsNumberOfSchoolStreets                                  OutputTypeMeasure = "SCHOOL_STREETS_NUMBER_OF_SCHOOL_STREETS"
	UpgradesToExistingFacilitiesMiles                                   OutputTypeMeasure = "UPGRADES_TO_EXISTING_FACILITIES_MILES"
	UpgradesToExistingFacilitiesNumberOfUpgrades                        OutputTypeMeasure = "UPGRADES_TO_EXISTING_FACILITIES_NUMBER_OF_UPGRADES"
	EScooterTrialsNumberOfTrials                                        OutputTypeMeasure = "E_SCOOTER_TRIALS_NUMBER_OF_TRIALS"
	ParkAndCycleStrideFacilitiesNumberOfParkAndCycleStrideFacilities    OutputTypeMeasure = "PARK_AND_CYCLE_STRIDE_FACILITIES_NUMBER_OF_PARK_AND_CYCLE_STRIDE_FACILITIES"
	TrafficCalmingMiles                                                 OutputTypeMeasure = "TRAFFIC_CALMING_MILES"
	TrafficCalmingNumberOfMeasuresPlanned                               OutputTypeMeasure = "TRAFFIC_CALMING_NUMBER_OF_MEASURES_PLANNED"
	WideningExistingFootwayMiles                                        OutputTypeMeasure = "WIDENING_EXISTING_FOOTWAY_MILES"
	OtherInterventionsNumberOfMeasuresPlanned                           OutputTypeMeasure = "OTHER_INTERVENTIONS_NUMBER_OF_MEASURES_PLANNED"
	OtherInterventionsNumberOfJunctions                                 OutputTypeMeasure = "OTHER_INTERVENTIONS_NUMBER_OF_JUNCTIONS"
	OtherInterventionsSizeOfArea                                        OutputTypeMeasure = "OTHER_INTERVENTIONS_SIZE_OF_AREA"
)

type typeMeasure struct {
	outputType OutputType
	measure    OutputMeasure
}

// outputTypeMeasures is the closed catalog of valid pairs, in catalog order.
var outputTypeMeasures = []struct {
	member OutputTypeMeasure
	typeMeasure
}{
	{NewSegregatedCyclingFacilityMiles, typeMeasure{NewSegregatedCyclingFacility, Miles}},
	{NewTemporarySegregatedCyclingFacilityMiles, typeMeasure{NewTemporarySegregatedCyclingFacility, Miles}},
	{NewJunctionTreatmentMiles, typeMeasure{NewJunctionTreatment, Miles}},
	{NewJunctionTreatmentNumberOfJunctions, typeMeasure{NewJunctionTreatment, NumberOfJunctions}},
	{NewPermanentFootwayMiles, typeMeasure{NewPermanentFootway, Miles}},
	{NewTemporaryFootwayMiles, typeMeasure{NewTemporaryFootway, Miles}},
	{NewSharedUseFacilitiesMiles, typeMeasure{NewSharedUseFacilities, Miles}},
	{NewSharedUseFacilitiesWheelingMiles, typeMeasure{NewSharedUseFacilitiesWheeling, Miles}},
	{ImprovementsToExistingRouteMiles, typeMeasure{ImprovementsToExistingRoute, Miles}},
	{AreaWideTrafficManagementSizeOfArea, typeMeasure{AreaWideTrafficManagement, SizeOfArea}},
	{BusPriorityMeasuresMiles, typeMeasure{BusPriorityMeasures, Miles}},
	{BusPriorityMeasuresNumberOfPermanentBusPriorityLanesSchemes, typeMeasure{BusPriorityMeasures, NumberOfPermanentBusPriorityLanesSchemes}},
	{BusPriorityMeasuresNumberOfTemporaryBusPriorityLanesSchemes, typeMeasure{BusPriorityMeasures, NumberOfTemporaryBusPriorityLanesSchemes}},
	{BusPriorityMeasuresNumberOfBusGates, typeMeasure{BusPriorityMeasures, NumberOfBusGates}},
	{BusPriorityMeasuresNumberOfBusStops, typeMeasure{BusPriorityMeasures, NumberOfBusStops}},
	{SecureCycleParkingNumberOfCycleParkingSpaces, typeMeasure{SecureCycleParking, NumberOfCycleParkingSpaces}},
	{NewRoadCrossingsNumberOfCrossings, typeMeasure{NewRoadCrossings, NumberOfCrossings}},
	{RestrictionOrReductionOfCarParkingAvailabilityNumberOfParkingSpaces, typeMeasure{RestrictionOrReductionOfCarParkingAvailability, NumberOfParkingSpaces}},
	{SchoolStreetsNumberOfSchoolStreets, typeMeasure{SchoolStreets, NumberOfSchoolStreets}},
	{UpgradesToExistingFacilitiesMiles, typeMeasure{UpgradesToExistingFacilities, Miles}},
	{UpgradesToExistingFacilitiesNumberOfUpgrades, typeMeasure{UpgradesToExistingFacilities, NumberOfUpgrades}},
	{EScooterTrialsNumberOfTrials, typeMeasure{EScooterTrials, NumberOfTrials}},
	{ParkAndCycleStrideFacilitiesNumberOfParkAndCycleStrideFacilities, typeMeasure{ParkAndCycleStrideFacilities, NumberOfParkAndCycleStrideFacilities}},
	{TrafficCalmingMiles, typeMeasure{TrafficCalming, Miles}},
	{TrafficCalmingNumberOfMeasuresPlanned, typeMeasure{TrafficCalming, NumberOfMeasuresPlanned}},
	{WideningExistingFootwayMiles, typeMeasure{WideningExistingFootway, Miles}},
	{OtherInterventionsNumberOfMeasuresPlanned, typeMeasure{OtherInterventions, NumberOfMeasuresPlanned}},
	{OtherInterventionsNumberOfJunctions, typeMeasure{OtherInterventions, NumberOfJunctions}},
	{OtherInterventionsSizeOfArea, typeMeasure{OtherInterventions, SizeOfArea}},
}

var (
	typeMeasuresByMember = make(map[OutputTypeMeasure]typeMeasure, len(outputTypeMeasures))
	membersByTypeMeasure = make(map[typeMeasure]OutputTypeMeasure, len(outputTypeMeasures))
)

func init() {
	for _, entry := range outputTypeMeasures {
		typeMeasuresByMember[entry.member] = entry.typeMeasure
		membersByTypeMeasure[entry.typeMeasure] = entry.member
	}
}

// OutputTypeMeasures returns every valid output type and measure pair in catalog order.
func OutputTypeMeasures() []OutputTypeMeasure {
	members := make([]OutputTypeMeasure, 0, len(outputTypeMeasures))
	for _, entry := range outputTypeMeasures {
		members = append(members, entry.member)
	}
	return members
}

// OutputTypeMeasureFromTypeAndMeasure finds the catalog member for a type and measure.
func OutputTypeMeasureFromTypeAndMeasure(outputType OutputType, measure OutputMeasure) (OutputTypeMeasure, error) {
	member, ok := membersByTypeMeasure[typeMeasure{outputType: outputType, measure: measure}]
	if !ok {
		return "", fmt.Errorf("%w: type %s and measure %s", ErrUnknownCombination, outputType, measure)
	}
	return member, nil
}

// Type returns the output type of the pair.
func (m OutputTypeMeasure) Type() OutputType {
	return typeMeasuresByMember[m].outputType
}

// Measure returns the output measure of the pair.
func (m OutputTypeMeasure) Measure() OutputMeasure {
	return typeMeasuresByMember[m].measure
}

// IsValid reports whether m is a catalog member.
func (m OutputTypeMeasure) IsValid() bool {
	_, ok := typeMeasuresByMember[m]
	return ok
}
