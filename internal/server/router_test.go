package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"finance-dashboard/internal/handlers"
	"finance-dashboard/internal/logging"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type healthy struct{}

func (healthy) HealthCheck() error { return nil }

func newTestRouter() http.Handler {
	return NewRouter(Handlers{
		Health:    handlers.NewHealthCheckHandler(healthy{}),
		Auth:      &handlers.AuthHandler{},
		Google:    &handlers.GoogleAuthHandler{},
		Profile:   &handlers.ProfileHandler{},
		Category:  &handlers.CategoryHandler{},
		Statement: &handlers.StatementHandler{},
		Ledger:    &handlers.LedgerHandler{},
		Assistant: &handlers.AssistantHandler{},
		BankFeed:  &handlers.BankFeedHandler{},
	}, Options{
		Logger:           logging.Discard(),
		Registry:         prometheus.NewRegistry(),
		CORSAllowOrigins: []string{"http://localhost:3000"},
		MaxUploadBytes:   10 << 20,
	})
}

func TestNewRouter_Routes(t *testing.T) {
	e := NewRouter(Handlers{
		Health: handlers.NewHealthCheckHandler(healthy{}),
	}, Options{Logger: logging.Discard(), Registry: prometheus.NewRegistry(), MaxUploadBytes: 1024})

	registered := make(map[string]bool)
	for _, r := range e.Routes() {
		registered[r.Method+" "+r.Path] = true
	}

	for _, route := range []string{
		"GET /health",
		"GET /metrics",
		"POST /api/v1/auth/register",
		"POST /api/v1/auth/login",
		"POST /api/v1/auth/refresh",
		"POST /api/v1/auth/logout",
		"GET /api/v1/auth/google/login",
		"GET /api/v1/auth/google/callback",
		"GET /api/v1/me",
		"GET /api/v1/me/activity",
		"GET /api/v1/categories",
		"PUT /api/v1/categories",
		"POST /api/v1/categories",
		"DELETE /api/v1/categories/:name",
		"POST /api/v1/categories/:name/keywords",
		"DELETE /api/v1/categories/:name/keywords",
		"POST /api/v1/statements",
		"GET /api/v1/statements/current",
		"DELETE /api/v1/statements/current",
		"GET /api/v1/ledger/transactions",
		"PATCH /api/v1/ledger/transactions",
		"PATCH /api/v1/ledger/transactions/:row",
		"GET /api/v1/ledger/totals",
		"GET /api/v1/ledger/waterfall",
		"GET /api/v1/ledger/summary",
		"POST /api/v1/assistant/suggest",
		"POST /api/v1/assistant/amend",
		"POST /api/v1/bankfeed/connections",
		"GET /api/v1/bankfeed/connections/:id/accounts",
		"POST /api/v1/bankfeed/import",
	} {
		assert.True(t, registered[route], "missing route %s", route)
	}
}

func TestNewRouter_Health(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
	assert.Equal(t, "nosniff", rec.Header().Get("X-Content-Type-Options"))
}

func TestNewRouter_Metrics(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNewRouter_ProtectedRoutesNeedToken(t *testing.T) {
	router := newTestRouter()

	for _, target := range []string{"/api/v1/me", "/api/v1/categories", "/api/v1/ledger/summary"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

		require.Equal(t, http.StatusUnauthorized, rec.Code, target)
		assert.Contains(t, rec.Body.String(), `"code":"AUTH_002"`)
	}
}

func TestNewRouter_UnknownRoute(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/nowhere", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"VALIDATION_001"`)
}
