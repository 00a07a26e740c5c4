package handlers

import (
	"fmt"
	"strings"

	apperrors "finance-dashboard/internal/errors"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var ErrUnauthorized = fmt.Errorf("unauthorized")

// getUserIDFromContext returns the user id set by the auth middleware.
func getUserIDFromContext(c echo.Context) (uuid.UUID, error) {
	userID, ok := c.Get("user_id").(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.UUID{}, ErrUnauthorized
	}
	return userID, nil
}

func getUsernameFromContext(c echo.Context) string {
	username, _ := c.Get("username").(string)
	return username
}

func getIntParam(c echo.Context, name string, defaultValue int) int {
	param := c.QueryParam(name)
	if param == "" {
		return defaultValue
	}

	var value int
	if _, err := fmt.Sscanf(param, "%d", &value); err != nil {
		return defaultValue
	}

	return value
}

func getClientIP(c echo.Context) string {
	xff := c.Request().Header.Get("X-Forwarded-For")
	if xff != "" {
		ips := strings.Split(xff, ",")
		if len(ips) > 0 {
			return strings.TrimSpace(ips[0])
		}
	}

	xri := c.Request().Header.Get("X-Real-IP")
	if xri != "" {
		return xri
	}

	return c.RealIP()
}

// bindAndValidate binds the request into req and validates it. On failure the
// error response is already written and the returned bool is false.
func bindAndValidate(c echo.Context, req interface{}) (bool, error) {
	if err := c.Bind(req); err != nil {
		return false, SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("Invalid request body"))
	}
	if err := c.Validate(req); err != nil {
		return false, SendValidationError(c, err)
	}
	return true, nil
}
