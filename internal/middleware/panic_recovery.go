package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"

	apperrors "finance-dashboard/internal/errors"

	"github.com/labstack/echo/v4"
)

// PanicRecovery turns a panic in a handler into a 500 response.
func PanicRecovery(logger *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					traceID := GetTraceID(c)
					if traceID == "" {
						traceID = "unknown"
					}

					logger.ErrorContext(c.Request().Context(), "Panic recovered",
						"trace_id", traceID,
						"panic", fmt.Sprintf("%v", r),
						"stack_trace", string(debug.Stack()),
						"path", c.Request().URL.Path,
						"method", c.Request().Method,
					)

					errorResponse := apperrors.NewErrorResponse(apperrors.SystemInternalError, traceID)
					if sendErr := c.JSON(http.StatusInternalServerError, errorResponse); sendErr != nil {
						logger.Error("Failed to send panic recovery response",
							"trace_id", traceID,
							"error", sendErr.Error(),
						)
					}
					err = nil
				}
			}()

			return next(c)
		}
	}
}
