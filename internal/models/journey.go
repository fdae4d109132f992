package models

import (
	"regexp"
	"time"

	"fpt/internal/structures"
)

// DateLayout is the wire format for calendar dates everywhere in the system.
const DateLayout = "2006-01-02"

// Airport is a resolved coordinate-table entry.
type Airport struct {
	Code      string
	Latitude  float64
	Longitude float64
}

// Leg is one direct flight segment. Timestamps are timezone-naive and
// leg-local; stopover entries may be self-transfer compounds ("LTN-STN").
type Leg struct {
	DepartureTimestamp time.Time
	ArrivalTimestamp   time.Time
	DepartureAirport   string
	ArrivalAirport     string
	Duration           time.Duration
	NStops             int
	StopoverAirports   []string
}

// Meta is the fare metadata attached to a journey.
type Meta struct {
	Airline        []string
	CabinBaggage   int
	CheckedBaggage int
	CabinClass     []string
	Price          int
	Currency       string
	ObservedAt     time.Time
}

// Journey is a full itinerary: one or more legs plus fare metadata. It is
// immutable once assembled.
type Journey struct {
	Legs []Leg
	Meta Meta
}

// FlightSearch describes one search query as issued against the site.
// Origin/Destination/LeaveDates are lists to support multi-city and
// city-options searches; plain searches carry single-element lists.
type FlightSearch struct {
	JourneyType string
	Origin      []string
	Destination []string
	LeaveDates  []string
	ReturnDate  string
	Flex        string
}

// FromSearchSpec lifts a configured search into a FlightSearch value.
func FromSearchSpec(s structures.SearchSpec) *FlightSearch {
	return &FlightSearch{
		JourneyType: s.JourneyType,
		Origin:      s.Origin,
		Destination: s.Destination,
		LeaveDates:  s.LeaveDates,
		ReturnDate:  s.ReturnDate,
		Flex:        s.Flex,
	}
}

var iataRe = regexp.MustCompile(`^[A-Za-z]{3}$`)

func ValidateIATACode(code string) error {
	if !iataRe.MatchString(code) {
		return NewValidationError("airport_code", "%q needs to be 3 letters", code)
	}
	return nil
}

func ValidateDate(date string) error {
	if _, err := time.Parse(DateLayout, date); err != nil {
		return NewValidationError("date", "%q is not in YYYY-MM-DD format", date)
	}
	return nil
}

// Validate checks the search against the configured permitted values. Any
// violation is a ValidationError and aborts the search outright.
func (fs *FlightSearch) Validate(rules structures.SearchRules) error {
	permitted := false
	for _, jt := range rules.PermittedJourneyTypes {
		if fs.JourneyType == jt {
			permitted = true
			break
		}
	}
	if !permitted {
		return NewValidationError("journey_type", "%q is not a permitted journey type", fs.JourneyType)
	}

	for _, codes := range [][]string{fs.Origin, fs.Destination} {
		if len(codes) == 0 {
			return NewValidationError("airport_code", "origin and destination must not be empty")
		}
		if len(codes) > rules.MaxCityOptions {
			return NewValidationError("airport_code", "%d city options exceed permitted maximum of %d", len(codes), rules.MaxCityOptions)
		}
		for _, code := range codes {
			if err := ValidateIATACode(code); err != nil {
				return err
			}
		}
	}

	if len(fs.LeaveDates) == 0 {
		return NewValidationError("leave_date", "at least one leave date is required")
	}
	for _, d := range fs.LeaveDates {
		if err := ValidateDate(d); err != nil {
			return err
		}
	}

	switch fs.JourneyType {
	case "return":
		if fs.ReturnDate == "" {
			return NewValidationError("return_date", "return journeys require a return date")
		}
		if err := ValidateDate(fs.ReturnDate); err != nil {
			return err
		}
	case "multi-city":
		if len(fs.Origin) != len(fs.Destination) || len(fs.Origin) != len(fs.LeaveDates) {
			return NewValidationError("journey_type", "multi-city requires equal origin, destination and leave date counts")
		}
	}

	if fs.Flex != "" {
		if _, ok := rules.PermittedFlex[fs.Flex]; !ok {
			return NewValidationError("flex", "%q is not a permitted flex value", fs.Flex)
		}
	}

	return nil
}

// NLegs is the number of legs a result block must contain for this search.
func (fs *FlightSearch) NLegs() int {
	switch fs.JourneyType {
	case "return":
		return 2
	case "multi-city":
		return len(fs.LeaveDates)
	default:
		return 1
	}
}

// LegDates pairs each expected leg with its calendar date, in travel order.
func (fs *FlightSearch) LegDates() ([]time.Time, error) {
	dates := fs.LeaveDates
	if fs.JourneyType == "return" {
		dates = []string{fs.LeaveDates[0], fs.ReturnDate}
	}

	out := make([]time.Time, 0, len(dates))
	for _, d := range dates {
		t, err := time.Parse(DateLayout, d)
		if err != nil {
			return nil, NewValidationError("date", "%q is not in YYYY-MM-DD format", d)
		}
		out = append(out, t)
	}
	return out, nil
}
