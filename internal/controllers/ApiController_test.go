package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fpt/internal/services"
	"fpt/internal/structures"
	"fpt/internal/testutil"
)

// mockTrendService is scoped to controller tests.
type mockTrendService struct {
	stats    services.RunStats
	searches []structures.SearchSpec
	runCalls int
}

func (m *mockTrendService) RunSearch(_ context.Context, _ structures.SearchSpec) (*services.RunReport, error) {
	m.runCalls++
	return &services.RunReport{}, nil
}
func (m *mockTrendService) RunAll(_ context.Context)                 { m.runCalls++ }
func (m *mockTrendService) Stats() services.RunStats                 { return m.stats }
func (m *mockTrendService) TrackedSearches() []structures.SearchSpec { return m.searches }

func newTestController(svc *mockTrendService, cache *testutil.MockCache) *ApiController {
	return NewApiController(&testutil.MockLogger{}, svc, cache)
}

func TestGetStats_ReturnsJSON(t *testing.T) {
	svc := &mockTrendService{stats: services.RunStats{Runs: 3, Journeys: 42, Prices: 17}}
	ac := newTestController(svc, testutil.NewMockCache())

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	rr := httptest.NewRecorder()

	ac.GetStats(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var result map[string]int64
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	assert.Equal(t, int64(3), result["runs"])
	assert.Equal(t, int64(42), result["journeys"])
	assert.Equal(t, int64(17), result["prices"])
}

func TestGetStats_NotCached(t *testing.T) {
	svc := &mockTrendService{stats: services.RunStats{Runs: 1}}
	cache := testutil.NewMockCache()
	ac := newTestController(svc, cache)

	req := httptest.NewRequest(http.MethodGet, "/stats", nil)
	ac.GetStats(httptest.NewRecorder(), req)

	assert.Empty(t, cache.Data)
}

func TestGetSearches_ReturnsJSON(t *testing.T) {
	svc := &mockTrendService{searches: []structures.SearchSpec{{
		JourneyType: "return",
		Origin:      []string{"LHR"},
		Destination: []string{"DEL"},
		LeaveDates:  []string{"2026-10-02"},
		ReturnDate:  "2026-10-16",
	}}}
	ac := newTestController(svc, testutil.NewMockCache())

	req := httptest.NewRequest(http.MethodGet, "/searches", nil)
	rr := httptest.NewRecorder()

	ac.GetSearches(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	var result []structures.SearchSpec
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &result))
	require.Len(t, result, 1)
	assert.Equal(t, "return", result[0].JourneyType)
}

func TestGetSearches_CacheMissSavesResult(t *testing.T) {
	svc := &mockTrendService{searches: []structures.SearchSpec{}}
	cache := testutil.NewMockCache()
	ac := newTestController(svc, cache)

	req := httptest.NewRequest(http.MethodGet, "/searches", nil)
	ac.GetSearches(httptest.NewRecorder(), req)

	val, ok := cache.Get("searches")
	assert.True(t, ok)
	assert.NotEmpty(t, val)
}

func TestGetSearches_CacheHitSkipsService(t *testing.T) {
	cached := []byte(`[{"journeyType":"one-way"}]`)
	cache := testutil.NewMockCache()
	cache.Set("searches", cached)

	svc := &mockTrendService{searches: []structures.SearchSpec{{JourneyType: "return"}}}
	ac := newTestController(svc, cache)

	req := httptest.NewRequest(http.MethodGet, "/searches", nil)
	rr := httptest.NewRecorder()
	ac.GetSearches(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, string(cached), rr.Body.String())
}
