package geo

import (
	"math"
	"strings"

	"fpt/internal/models"
)

const earthRadiusKm = 6371.0

// Haversine returns the great-circle distance in kilometers between two
// points given in decimal degrees.
func Haversine(lat1, lon1, lat2, lon2 float64) float64 {
	lat1 = lat1 * math.Pi / 180
	lon1 = lon1 * math.Pi / 180
	lat2 = lat2 * math.Pi / 180
	lon2 = lon2 * math.Pi / 180

	dLat := lat2 - lat1
	dLon := lon2 - lon1

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*math.Sin(dLon/2)*math.Sin(dLon/2)
	c := 2 * math.Asin(math.Sqrt(a))

	return earthRadiusKm * c
}

// Calculator computes leg distances through an airport resolver.
type Calculator struct {
	resolver Resolver
}

func NewCalculator(resolver Resolver) *Calculator {
	return &Calculator{resolver: resolver}
}

// Distance is the great-circle distance between two airport codes.
func (c *Calculator) Distance(from, to string) (float64, error) {
	a, err := c.resolver.Resolve(from)
	if err != nil {
		return 0, err
	}
	b, err := c.resolver.Resolve(to)
	if err != nil {
		return 0, err
	}
	return Haversine(a.Latitude, a.Longitude, b.Latitude, b.Longitude), nil
}

// Nominal is the direct departure-to-arrival distance of a leg.
func (c *Calculator) Nominal(leg models.Leg) (float64, error) {
	return c.Distance(leg.DepartureAirport, leg.ArrivalAirport)
}

// Absolute is the ground actually covered: the stopover list walked as a
// chain of hops. A self-transfer entry "AAA-BBB" ends its hop at AAA and
// starts the next one at BBB; a final hop from the last established origin
// to the arrival airport is always added. Self-transfers can make this
// shorter than Nominal, which is expected.
func (c *Calculator) Absolute(leg models.Leg) (float64, error) {
	if leg.NStops == 0 {
		return c.Nominal(leg)
	}

	total := 0.0
	origin := leg.DepartureAirport
	for _, stop := range leg.StopoverAirports {
		dest, next := stop, stop
		if i := strings.Index(stop, "-"); i >= 0 {
			dest, next = stop[:i], stop[i+1:]
		}
		d, err := c.Distance(origin, dest)
		if err != nil {
			return 0, err
		}
		total += d
		origin = next
	}

	d, err := c.Distance(origin, leg.ArrivalAirport)
	if err != nil {
		return 0, err
	}
	return total + d, nil
}
