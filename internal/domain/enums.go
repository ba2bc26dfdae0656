package domain

import "fmt"

type Office string

const (
	OfficeAkron     Office = "Akron"
	OfficeBeachwood Office = "Beachwood"
	OfficeCleveland Office = "Cleveland"
	OfficeMCS       Office = "MCS"
	OfficeWooster   Office = "Wooster"
)

// Offices lists the selectable project offices in display order.
var Offices = []Office{OfficeAkron, OfficeBeachwood, OfficeCleveland, OfficeMCS, OfficeWooster}

type ClientType string

const (
	ClientCorporation ClientType = "Corporation"
	ClientFiduciary   ClientType = "Fiduciary"
	ClientIndividual  ClientType = "Individual"
	ClientNonProfit   ClientType = "Non-Profit"
	ClientPartnership ClientType = "Partnership"
)

// ClientTypes lists the selectable client types in display order.
var ClientTypes = []ClientType{ClientCorporation, ClientFiduciary, ClientIndividual, ClientNonProfit, ClientPartnership}

// StateCode is a postal abbreviation such as "OH".
type StateCode string

// States lists the selectable project states in display order.
var States = []StateCode{
	"AK", "AR", "AZ", "CA", "CO", "CT", "DC", "FL", "GA", "IA", "ID", "IL", "IN", "KS",
	"KY", "MA", "MD", "ME", "MI", "MN", "MO", "MT", "NC", "NM", "NV", "NY", "OH", "OK",
	"OR", "PA", "PR", "SC", "TN", "TX", "VA", "WA", "WI", "WV",
}

type Region string

const (
	RegionSouth     Region = "South"
	RegionNortheast Region = "Northeast"
	RegionMidwest   Region = "Midwest"
	RegionWest      Region = "West"
	RegionUnknown   Region = "Unknown"
)

// Regions lists every region ClassifyRegion can return.
var Regions = []Region{RegionSouth, RegionNortheast, RegionMidwest, RegionWest, RegionUnknown}

// Complexity is the 1-4 project complexity level. Zero means unset.
type Complexity int

const (
	ComplexityBasic    Complexity = 1
	ComplexityEasy     Complexity = 2
	ComplexityModerate Complexity = 3
	ComplexityComplex  Complexity = 4
)

func (c Complexity) Valid() bool { return c >= ComplexityBasic && c <= ComplexityComplex }

// HoursLevel is the 1-7 estimated hours bucket. Zero means unset.
type HoursLevel int

const (
	HoursExtremelyLittle HoursLevel = 1
	HoursExtremelyHigh   HoursLevel = 7
)

func (h HoursLevel) Valid() bool { return h >= HoursExtremelyLittle && h <= HoursExtremelyHigh }

type WorkloadStatus string

const (
	WorkloadUnder WorkloadStatus = "under"
	WorkloadExact WorkloadStatus = "exact"
	WorkloadOver  WorkloadStatus = "over"
)

var (
	validOffices     = setOf(Offices)
	validClientTypes = setOf(ClientTypes)
	validStates      = setOf(States)
)

func setOf[T comparable](values []T) map[T]bool {
	m := make(map[T]bool, len(values))
	for _, v := range values {
		m[v] = true
	}
	return m
}

// ParseOffice returns the Office named s. Matching is exact.
func ParseOffice(s string) (Office, error) {
	if !validOffices[Office(s)] {
		return "", fmt.Errorf("unknown office %q", s)
	}
	return Office(s), nil
}

// ParseClientType returns the ClientType named s. Matching is exact.
func ParseClientType(s string) (ClientType, error) {
	if !validClientTypes[ClientType(s)] {
		return "", fmt.Errorf("unknown client type %q", s)
	}
	return ClientType(s), nil
}

// ParseState returns the StateCode s if it is one of the selectable states.
func ParseState(s string) (StateCode, error) {
	if !validStates[StateCode(s)] {
		return "", fmt.Errorf("unknown state %q", s)
	}
	return StateCode(s), nil
}
