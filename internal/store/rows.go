package store

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"fpt/internal/geo"
	"fpt/internal/models"
	"fpt/internal/providers"
)

// InsertMap fixes the column layout of every table. Row extraction and the
// insert layer both validate against it, so a drifting column order fails
// loudly instead of scrambling data.
var InsertMap = map[string][]string{
	"flight_searches": {
		"search_id", "journey_type", "origin", "destination",
		"leave_date", "return_date", "flex",
	},
	"journeys": {
		"journey_id", "search_id", "n_legs", "cabin_baggage",
		"checked_baggage", "cabin_class", "airline",
	},
	"legs": {
		"leg_id", "journey_id", "leg_number", "departure_time",
		"arrival_time", "departure_airport", "arrival_airport", "duration",
		"n_stops", "stopover_airports", "distance_nominal_km", "distance_absolute_km",
	},
	"prices": {
		"journey_id", "price", "currency", "observed_at",
	},
}

// FlattenList joins a list field into its stored comma-separated form.
func FlattenList(l []string) string {
	return strings.Join(l, ", ")
}

// RowBuilder turns parsed journeys into storage-ready rows, attaching
// distances as it goes.
type RowBuilder struct {
	calc   *geo.Calculator
	logger providers.Logger
}

func NewRowBuilder(calc *geo.Calculator, logger providers.Logger) *RowBuilder {
	return &RowBuilder{calc: calc, logger: logger}
}

// SearchRow flattens one flight search into its row.
func (rb *RowBuilder) SearchRow(fs *models.FlightSearch) []any {
	var returnDate, flex any
	if fs.ReturnDate != "" {
		returnDate = fs.ReturnDate
	}
	if fs.Flex != "" {
		flex = fs.Flex
	}

	return []any{
		fs.ID(),
		fs.JourneyType,
		FlattenList(fs.Origin),
		FlattenList(fs.Destination),
		FlattenList(fs.LeaveDates),
		returnDate,
		flex,
	}
}

// JourneyRows extracts one row per journey.
func (rb *RowBuilder) JourneyRows(journeys []models.Journey, searchID string) [][]any {
	rows := make([][]any, 0, len(journeys))
	for i := range journeys {
		j := &journeys[i]
		rows = append(rows, []any{
			j.ID(),
			searchID,
			len(j.Legs),
			j.Meta.CabinBaggage,
			j.Meta.CheckedBaggage,
			FlattenList(j.Meta.CabinClass),
			FlattenList(j.Meta.Airline),
		})
	}
	return rows
}

// LegRows extracts one row per leg, with nominal and absolute distances
// attached. An unresolvable airport leaves both distance columns NULL for
// that leg; the rest of the record still stores.
func (rb *RowBuilder) LegRows(journeys []models.Journey) [][]any {
	var rows [][]any
	for i := range journeys {
		j := &journeys[i]
		journeyID := j.ID()

		for k, leg := range j.Legs {
			var stopovers any
			if len(leg.StopoverAirports) > 0 {
				stopovers = FlattenList(leg.StopoverAirports)
			}

			nominal, absolute := rb.legDistances(leg)

			rows = append(rows, []any{
				journeyID + "_" + strconv.Itoa(k+1),
				journeyID,
				k + 1,
				leg.DepartureTimestamp.Format(models.TimestampLayout),
				leg.ArrivalTimestamp.Format(models.TimestampLayout),
				leg.DepartureAirport,
				leg.ArrivalAirport,
				int64(leg.Duration.Seconds()),
				leg.NStops,
				stopovers,
				nominal,
				absolute,
			})
		}
	}
	return rows
}

func (rb *RowBuilder) legDistances(leg models.Leg) (nominal, absolute any) {
	n, err := rb.calc.Nominal(leg)
	if err != nil {
		rb.warnDistance(leg, err)
		return nil, nil
	}

	a, err := rb.calc.Absolute(leg)
	if err != nil {
		rb.warnDistance(leg, err)
		return nil, nil
	}

	return int64(math.Round(n)), int64(math.Round(a))
}

func (rb *RowBuilder) warnDistance(leg models.Leg, err error) {
	var notFound *models.AirportNotFoundError
	if errors.As(err, &notFound) {
		rb.logger.Warnf(providers.TypeGeo, "Leg %s-%s: %s, storing without distances",
			leg.DepartureAirport, leg.ArrivalAirport, err)
		return
	}
	rb.logger.Errorf(providers.TypeGeo, "Leg %s-%s distance: %s",
		leg.DepartureAirport, leg.ArrivalAirport, err)
}

type priceKey struct {
	journeyID string
	price     int
	currency  string
}

// PriceRows extracts one price observation per journey, dropping exact
// (journey, price, currency) duplicates within the batch while preserving
// first-seen order.
func (rb *RowBuilder) PriceRows(journeys []models.Journey) [][]any {
	seen := make(map[priceKey]struct{}, len(journeys))
	rows := make([][]any, 0, len(journeys))

	for i := range journeys {
		j := &journeys[i]
		key := priceKey{
			journeyID: j.ID(),
			price:     j.Meta.Price,
			currency:  j.Meta.Currency,
		}
		if _, dupe := seen[key]; dupe {
			continue
		}
		seen[key] = struct{}{}

		rows = append(rows, []any{
			key.journeyID,
			key.price,
			key.currency,
			j.Meta.ObservedAtISO(),
		})
	}
	return rows
}
