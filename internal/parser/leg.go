package parser

import (
	"strconv"
	"strings"
	"time"

	"fpt/internal/models"
)

const clockLayout = "15:04"

// ExtractLeg converts one leg sub-sequence into a Leg record. date is the
// leg's calendar date as supplied by the caller; an overnight-arrival penalty
// marker shifts the arrival date forward by its digit.
func ExtractLeg(chunks []models.Chunk, date time.Time) (models.Leg, error) {
	var leg models.Leg

	if len(chunks) == 0 || chunks[0].Kind != models.KindTiming {
		return leg, models.NewParseError("leg", "leg does not start with a timing chunk")
	}

	penaltyDays := 0
	for _, c := range chunks {
		if m := penaltyRe.FindStringSubmatch(c.Text); m != nil {
			penaltyDays, _ = strconv.Atoi(m[1])
			break
		}
	}

	parts := timingPartsRe.FindStringSubmatch(chunks[0].Text)
	depClock, err := time.Parse(clockLayout, parts[1])
	if err != nil {
		return leg, models.NewParseError("leg", "bad departure time %q", parts[1])
	}
	arrClock, err := time.Parse(clockLayout, parts[2])
	if err != nil {
		return leg, models.NewParseError("leg", "bad arrival time %q", parts[2])
	}

	leg.DepartureTimestamp = atClock(date, depClock)
	leg.ArrivalTimestamp = atClock(date.AddDate(0, 0, penaltyDays), arrClock)

	var airports []string
	for _, c := range chunks {
		if c.Kind == models.KindAirport {
			airports = append(airports, c.Text[:3])
		}
	}
	if len(airports) < 2 {
		return leg, models.NewParseError("leg", "found %d airport chunks, need 2", len(airports))
	}
	leg.DepartureAirport = airports[0]
	leg.ArrivalAirport = airports[1]

	stopsAt := -1
	for i, c := range chunks {
		if c.Kind != models.KindStops {
			continue
		}
		if c.Text == "direct" {
			leg.NStops = 0
		} else {
			m := stopsCountRe.FindStringSubmatch(c.Text)
			leg.NStops, _ = strconv.Atoi(m[1])
		}
		stopsAt = i
		break
	}
	if stopsAt < 0 {
		return leg, models.NewParseError("leg", "no stop-count chunk")
	}

	leg.StopoverAirports = []string{}
	if leg.NStops > 0 {
		if stopsAt+1 >= len(chunks) {
			return leg, models.NewParseError("leg", "stop count %d but no stopover list chunk", leg.NStops)
		}
		chunks[stopsAt+1].Kind = models.KindStopoverList
		leg.StopoverAirports = strings.Split(chunks[stopsAt+1].Text, ", ")
		if len(leg.StopoverAirports) != leg.NStops {
			return leg, models.NewParseError("leg", "stop count %d does not match %d stopover airports",
				leg.NStops, len(leg.StopoverAirports))
		}
	}

	durAt := -1
	for i, c := range chunks {
		if c.Kind == models.KindDuration {
			durAt = i
		}
	}
	if durAt < 0 {
		return leg, models.NewParseError("leg", "no duration chunk")
	}
	m := durationPartsRe.FindStringSubmatch(chunks[durAt].Text)
	hours, _ := strconv.Atoi(m[1])
	minutes, _ := strconv.Atoi(m[2])
	leg.Duration = time.Duration(hours)*time.Hour + time.Duration(minutes)*time.Minute

	return leg, nil
}

func atClock(date time.Time, clock time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(),
		clock.Hour(), clock.Minute(), 0, 0, time.UTC)
}
