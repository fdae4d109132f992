package geo

import (
	_ "embed"
	"fmt"
	"strconv"
	"strings"

	"fpt/internal/models"
	"fpt/internal/providers"
	"fpt/internal/structures"
)

//go:embed airports.csv
var airportsCSV string

// Resolver turns an airport code into coordinates. Resolution is exact
// match against the static table, then exact match through the compound-code
// fallback; anything else is an AirportNotFoundError.
type Resolver interface {
	Resolve(code string) (models.Airport, error)
}

type StaticResolver struct {
	airports map[string]models.Airport
	compound map[string]string
}

func NewStaticResolver(compound map[string]string) (*StaticResolver, error) {
	airports := make(map[string]models.Airport)

	lines := strings.Split(strings.TrimSpace(airportsCSV), "\n")
	for _, line := range lines[1:] {
		parts := strings.Split(line, ",")
		if len(parts) != 3 {
			return nil, fmt.Errorf("malformed airport table line %q", line)
		}
		lat, err := strconv.ParseFloat(parts[1], 64)
		if err != nil {
			return nil, fmt.Errorf("bad latitude in line %q: %w", line, err)
		}
		lon, err := strconv.ParseFloat(parts[2], 64)
		if err != nil {
			return nil, fmt.Errorf("bad longitude in line %q: %w", line, err)
		}
		airports[parts[0]] = models.Airport{Code: parts[0], Latitude: lat, Longitude: lon}
	}

	return &StaticResolver{airports: airports, compound: compound}, nil
}

func (r *StaticResolver) Resolve(code string) (models.Airport, error) {
	if a, ok := r.airports[code]; ok {
		return a, nil
	}
	if resolved, ok := r.compound[code]; ok {
		if a, ok := r.airports[resolved]; ok {
			return a, nil
		}
	}
	return models.Airport{}, &models.AirportNotFoundError{Code: code}
}

// CachedResolver fronts a Resolver with the shared byte cache so repeated
// legs over the same hubs skip the table walk. Coordinates never change, so
// entries are pinned with TTL 0.
type CachedResolver struct {
	inner Resolver
	cache providers.CacheProviderInterface
}

func (r *CachedResolver) Resolve(code string) (models.Airport, error) {
	key := "apt:" + code
	if val, ok := r.cache.Get(key); ok {
		return decodeAirport(code, val)
	}

	airport, err := r.inner.Resolve(code)
	if err != nil {
		return models.Airport{}, err
	}

	r.cache.SetWithTTL(key, encodeAirport(airport), 0)
	return airport, nil
}

func encodeAirport(a models.Airport) []byte {
	return []byte(strconv.FormatFloat(a.Latitude, 'f', -1, 64) + "|" +
		strconv.FormatFloat(a.Longitude, 'f', -1, 64))
}

func decodeAirport(code string, val []byte) (models.Airport, error) {
	parts := strings.SplitN(string(val), "|", 2)
	if len(parts) != 2 {
		return models.Airport{}, fmt.Errorf("corrupt cache entry for %q", code)
	}
	lat, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return models.Airport{}, err
	}
	lon, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return models.Airport{}, err
	}
	return models.Airport{Code: code, Latitude: lat, Longitude: lon}, nil
}

func NewResolver(conf *structures.Config, cache providers.CacheProviderInterface) (Resolver, error) {
	static, err := NewStaticResolver(conf.CompoundAirports)
	if err != nil {
		return nil, err
	}
	return &CachedResolver{inner: static, cache: cache}, nil
}
