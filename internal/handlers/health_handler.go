package handlers

import (
	"net/http"
	"time"

	apperrors "finance-dashboard/internal/errors"

	"github.com/labstack/echo/v4"
)

// HealthChecker is satisfied by *database.DB.
type HealthChecker interface {
	HealthCheck() error
}

type HealthCheckHandler struct {
	db HealthChecker
}

func NewHealthCheckHandler(db HealthChecker) *HealthCheckHandler {
	return &HealthCheckHandler{db: db}
}

// HealthCheck reports whether the API can reach its database
// @Summary Health check
// @Tags Health
// @Produce json
// @Success 200 {object} object{status=string,time=string}
// @Failure 503 {object} errors.ErrorResponse "SYSTEM_003"
// @Router /health [get]
func (h *HealthCheckHandler) HealthCheck(c echo.Context) error {
	if err := h.db.HealthCheck(); err != nil {
		return SendError(c, apperrors.SystemServiceUnavailable, apperrors.WithDetails("Database connection failed"))
	}

	return c.JSON(http.StatusOK, map[string]string{
		"status": "healthy",
		"time":   time.Now().UTC().Format(time.RFC3339),
	})
}
