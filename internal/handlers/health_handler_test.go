package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

type stubHealthChecker struct {
	err error
}

func (s stubHealthChecker) HealthCheck() error { return s.err }

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "healthy", wantStatus: http.StatusOK, wantBody: `"status":"healthy"`},
		{name: "database down", err: errors.New("dial tcp: refused"), wantStatus: http.StatusServiceUnavailable, wantBody: `"code":"SYSTEM_003"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := newEcho()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/health", nil), rec)

			err := NewHealthCheckHandler(stubHealthChecker{err: tt.err}).HealthCheck(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.wantBody)
		})
	}
}
