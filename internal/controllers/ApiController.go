package controllers

import (
	"net/http"

	json "github.com/goccy/go-json"

	"fpt/internal/providers"
	"fpt/internal/services"
)

type ApiController struct {
	logger  providers.Logger
	service services.TrendServiceInterface
	cache   providers.CacheProviderInterface
}

func NewApiController(logger providers.Logger, service services.TrendServiceInterface, cache providers.CacheProviderInterface) *ApiController {
	return &ApiController{
		logger:  logger,
		service: service,
		cache:   cache,
	}
}

func (ac *ApiController) serveFromCacheOrCompute(w http.ResponseWriter, cacheKey string, compute func() (any, error)) {
	if data, ok := ac.cache.Get(cacheKey); ok {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
		return
	}

	result, err := compute()
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	gson, err := json.Marshal(result)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	ac.cache.Set(cacheKey, gson)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

// GetStats serves daemon-lifetime run counters. Not cached: the counters are
// atomics and reading them is cheaper than a cache round-trip.
func (ac *ApiController) GetStats(w http.ResponseWriter, _ *http.Request) {
	gson, err := json.Marshal(ac.service.Stats())
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(gson)
}

// GetSearches serves the tracked search list.
func (ac *ApiController) GetSearches(w http.ResponseWriter, _ *http.Request) {
	ac.serveFromCacheOrCompute(w, "searches", func() (any, error) {
		return ac.service.TrackedSearches(), nil
	})
}
