package providers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRouterProvider_RegistersRoutes(t *testing.T) {
	rp := NewRouterProvider()

	rp.Get("/stats", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	rp.Post("/run", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	routes := rp.GetRoutes()
	require.Len(t, routes, 2)
	assert.Equal(t, "/stats", routes[0].Url)
	assert.Equal(t, "/run", routes[1].Url)
}

func TestRouterProvider_GetRejectsPost(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/stats", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	handler := rp.GetRoutes()[0].Handler

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/stats", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, http.MethodGet, rr.Header().Get("Allow"))

	rr = httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/stats", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRouterProvider_GetAnswersHead(t *testing.T) {
	rp := NewRouterProvider()
	rp.Get("/stats", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	handler := rp.GetRoutes()[0].Handler

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodHead, "/stats", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestRouterProvider_PostRejectsGet(t *testing.T) {
	rp := NewRouterProvider()
	rp.Post("/run", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	handler := rp.GetRoutes()[0].Handler

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/run", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rr.Code)
}
