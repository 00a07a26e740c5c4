package middleware

import (
	"finance-dashboard/internal/logging"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	TraceIDHeader     = "X-Trace-ID"
	TraceIDContextKey = "trace_id"
)

// RequestID assigns every request a trace ID, taken from the X-Trace-ID
// header when the client sent one. The ID is echoed in the response header,
// stored on the echo context and attached to the request context so that
// service logs carry it.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()

			traceID := req.Header.Get(TraceIDHeader)
			if traceID == "" {
				traceID = uuid.New().String()
			}

			c.Set(TraceIDContextKey, traceID)
			c.SetRequest(req.WithContext(logging.WithTraceID(req.Context(), traceID)))
			c.Response().Header().Set(TraceIDHeader, traceID)
			return next(c)
		}
	}
}

// GetTraceID returns the trace ID of the request, or "" outside RequestID.
func GetTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}
