package models

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
)

// TimestampLayout renders the timezone-naive leg timestamps. No zone suffix:
// the site shows leg-local clock times and the ids must not depend on where
// the scraper runs.
const TimestampLayout = "2006-01-02T15:04:05"

// ID derives the journey identity: a SHA-256 digest over the fields that
// define the itinerary. Price, currency and observation time are excluded on
// purpose so repeated observations of the same itinerary collapse onto one
// identity with many price rows.
func (j *Journey) ID() string {
	var b strings.Builder
	for _, leg := range j.Legs {
		b.WriteString(strings.Join([]string{
			leg.DepartureTimestamp.Format(TimestampLayout),
			leg.ArrivalTimestamp.Format(TimestampLayout),
			leg.DepartureAirport,
			leg.ArrivalAirport,
			strconv.Itoa(leg.NStops),
			strings.Join(leg.StopoverAirports, ", "),
		}, "-"))
	}
	b.WriteString(strings.Join(j.Meta.Airline, ", "))

	sum := sha256.Sum256([]byte(b.String()))
	return hex.EncodeToString(sum[:])
}

// ID derives the search identity from every field of the search, in canonical
// field order. A search has no price, so the id is price-independent by
// construction.
func (fs *FlightSearch) ID() string {
	fields := []string{
		fs.JourneyType,
		strings.Join(fs.Origin, ", "),
		strings.Join(fs.Destination, ", "),
		strings.Join(fs.LeaveDates, ", "),
		fs.ReturnDate,
		fs.Flex,
	}
	sum := sha256.Sum256([]byte(strings.Join(fields, "-")))
	return hex.EncodeToString(sum[:])
}

// ObservedAtISO renders the observation instant the way price rows store it.
func (m *Meta) ObservedAtISO() string {
	return m.ObservedAt.Format(TimestampLayout)
}
