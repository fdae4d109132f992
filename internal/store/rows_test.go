package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fpt/internal/geo"
	"fpt/internal/models"
	"fpt/internal/testutil"
)

func newTestRowBuilder(t *testing.T) (*RowBuilder, *testutil.MockLogger) {
	t.Helper()
	resolver, err := geo.NewStaticResolver(nil)
	require.NoError(t, err)
	logger := &testutil.MockLogger{}
	return NewRowBuilder(geo.NewCalculator(resolver), logger), logger
}

func testJourney(price int) models.Journey {
	dep := time.Date(2026, 10, 2, 10, 45, 0, 0, time.UTC)
	arr := time.Date(2026, 10, 3, 4, 50, 0, 0, time.UTC)
	return models.Journey{
		Legs: []models.Leg{{
			DepartureTimestamp: dep,
			ArrivalTimestamp:   arr,
			DepartureAirport:   "LHR",
			ArrivalAirport:     "DEL",
			Duration:           14*time.Hour + 5*time.Minute,
			NStops:             0,
			StopoverAirports:   []string{},
		}},
		Meta: models.Meta{
			Airline:        []string{"Emirates"},
			CabinBaggage:   1,
			CheckedBaggage: 2,
			CabinClass:     []string{"Economy"},
			Price:          price,
			Currency:       "£",
			ObservedAt:     time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC),
		},
	}
}

func TestFlattenList(t *testing.T) {
	assert.Equal(t, "Emirates, Qantas", FlattenList([]string{"Emirates", "Qantas"}))
	assert.Equal(t, "Emirates", FlattenList([]string{"Emirates"}))
	assert.Equal(t, "", FlattenList(nil))
}

func TestInsertMap_ColumnLayouts(t *testing.T) {
	assert.Len(t, InsertMap["flight_searches"], 7)
	assert.Len(t, InsertMap["journeys"], 7)
	assert.Len(t, InsertMap["legs"], 12)
	assert.Len(t, InsertMap["prices"], 4)

	assert.Equal(t, "search_id", InsertMap["flight_searches"][0])
	assert.Equal(t, "journey_id", InsertMap["journeys"][0])
	assert.Equal(t, "leg_id", InsertMap["legs"][0])
	assert.Equal(t, "observed_at", InsertMap["prices"][3])
}

func TestSearchRow(t *testing.T) {
	rb, _ := newTestRowBuilder(t)
	fs := &models.FlightSearch{
		JourneyType: "return",
		Origin:      []string{"LHR"},
		Destination: []string{"DEL"},
		LeaveDates:  []string{"2026-10-02"},
		ReturnDate:  "2026-10-16",
	}

	row := rb.SearchRow(fs)
	require.Len(t, row, len(InsertMap["flight_searches"]))
	assert.Equal(t, fs.ID(), row[0])
	assert.Equal(t, "return", row[1])
	assert.Equal(t, "LHR", row[2])
	assert.Equal(t, "2026-10-02", row[4])
	assert.Equal(t, "2026-10-16", row[5])
	assert.Nil(t, row[6])
}

func TestSearchRow_NullableFields(t *testing.T) {
	rb, _ := newTestRowBuilder(t)
	fs := &models.FlightSearch{
		JourneyType: "one-way",
		Origin:      []string{"LTN", "STN"},
		Destination: []string{"BCN"},
		LeaveDates:  []string{"2026-11-05"},
	}

	row := rb.SearchRow(fs)
	assert.Equal(t, "LTN, STN", row[2])
	assert.Nil(t, row[5])
	assert.Nil(t, row[6])
}

func TestJourneyRows(t *testing.T) {
	rb, _ := newTestRowBuilder(t)
	j := testJourney(450)

	rows := rb.JourneyRows([]models.Journey{j}, "search123")
	require.Len(t, rows, 1)
	require.Len(t, rows[0], len(InsertMap["journeys"]))

	assert.Equal(t, j.ID(), rows[0][0])
	assert.Equal(t, "search123", rows[0][1])
	assert.Equal(t, 1, rows[0][2])
	assert.Equal(t, 1, rows[0][3])
	assert.Equal(t, 2, rows[0][4])
	assert.Equal(t, "Economy", rows[0][5])
	assert.Equal(t, "Emirates", rows[0][6])
}

func TestLegRows(t *testing.T) {
	rb, _ := newTestRowBuilder(t)
	j := testJourney(450)

	rows := rb.LegRows([]models.Journey{j})
	require.Len(t, rows, 1)
	row := rows[0]
	require.Len(t, row, len(InsertMap["legs"]))

	assert.Equal(t, j.ID()+"_1", row[0])
	assert.Equal(t, j.ID(), row[1])
	assert.Equal(t, 1, row[2])
	assert.Equal(t, "2026-10-02T10:45:00", row[3])
	assert.Equal(t, "2026-10-03T04:50:00", row[4])
	assert.Equal(t, "LHR", row[5])
	assert.Equal(t, "DEL", row[6])
	assert.Equal(t, int64(845*60), row[7])
	assert.Equal(t, 0, row[8])
	assert.Nil(t, row[9])

	nominal, ok := row[10].(int64)
	require.True(t, ok)
	assert.InDelta(t, 6716, float64(nominal), 30)
	assert.Equal(t, row[10], row[11])
}

func TestLegRows_StopoversAndNumbering(t *testing.T) {
	rb, _ := newTestRowBuilder(t)
	j := testJourney(780)
	second := j.Legs[0]
	second.DepartureAirport, second.ArrivalAirport = "DEL", "LHR"
	second.NStops = 1
	second.StopoverAirports = []string{"DXB"}
	j.Legs = append(j.Legs, second)

	rows := rb.LegRows([]models.Journey{j})
	require.Len(t, rows, 2)

	assert.Equal(t, j.ID()+"_1", rows[0][0])
	assert.Equal(t, j.ID()+"_2", rows[1][0])
	assert.Equal(t, 2, rows[1][2])
	assert.Equal(t, "DXB", rows[1][9])

	// Via Dubai is longer than the direct line.
	nominal := rows[1][10].(int64)
	absolute := rows[1][11].(int64)
	assert.Greater(t, absolute, nominal)
}

func TestLegRows_UnknownAirportLeavesDistancesNull(t *testing.T) {
	rb, logger := newTestRowBuilder(t)
	j := testJourney(450)
	j.Legs[0].ArrivalAirport = "XXX"

	rows := rb.LegRows([]models.Journey{j})
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0][10])
	assert.Nil(t, rows[0][11])
	assert.Equal(t, 1, logger.CountLevel("warn"))
}

func TestPriceRows_DedupPreservesFirstSeenOrder(t *testing.T) {
	rb, _ := newTestRowBuilder(t)

	j450a := testJourney(450)
	j450b := testJourney(450)
	j460 := testJourney(460)

	rows := rb.PriceRows([]models.Journey{j450a, j450b, j460})
	require.Len(t, rows, 2)

	assert.Equal(t, 450, rows[0][1])
	assert.Equal(t, 460, rows[1][1])
	assert.Equal(t, j450a.ID(), rows[0][0])
	assert.Equal(t, "£", rows[0][2])
	assert.Equal(t, "2026-08-31T12:00:00", rows[0][3])
}

func TestPriceRows_DifferentJourneysKeepSamePrice(t *testing.T) {
	rb, _ := newTestRowBuilder(t)

	a := testJourney(450)
	b := testJourney(450)
	b.Meta.Airline = []string{"Lufthansa"}

	rows := rb.PriceRows([]models.Journey{a, b})
	assert.Len(t, rows, 2)
}
