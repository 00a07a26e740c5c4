package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	apperrors "finance-dashboard/internal/errors"
	"finance-dashboard/internal/handlers"
	"finance-dashboard/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// ErrorHandler formats every error that reaches echo as an ErrorResponse,
// logs it and counts it.
type ErrorHandler struct {
	logger         *slog.Logger
	apiErrorsTotal *prometheus.CounterVec
}

func NewErrorHandler(logger *slog.Logger, reg prometheus.Registerer) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
		apiErrorsTotal: promauto.With(reg).NewCounterVec(
			prometheus.CounterOpts{
				Name: "api_errors_total",
				Help: "Total number of API errors by code, endpoint, and status",
			},
			[]string{"code", "endpoint", "status"},
		),
	}
}

// CustomHTTPErrorHandler is set as echo's HTTPErrorHandler.
func (h *ErrorHandler) CustomHTTPErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	traceID := GetTraceID(c)
	if traceID == "" {
		traceID = "unknown"
	}

	var errorResponse *apperrors.ErrorResponse
	var httpStatus int

	if echoErr, ok := err.(*echo.HTTPError); ok {
		errorResponse = apperrors.NewErrorResponse(
			mapHTTPStatusToErrorCode(echoErr.Code),
			traceID,
			apperrors.WithMessage(fmt.Sprintf("%v", echoErr.Message)),
		)
		httpStatus = echoErr.Code
	} else if _, ok := err.(validator.ValidationErrors); ok {
		errorResponse = apperrors.NewValidationError(validation.FieldErrors(err), traceID)
		httpStatus = http.StatusBadRequest
	} else if code, ok := handlers.ErrorCodeFor(err); ok {
		errorResponse = apperrors.NewErrorResponse(code, traceID)
		httpStatus = errorResponse.GetHTTPStatus()
	} else {
		errorResponse, _ = apperrors.WrapSystemError(err, traceID)
		httpStatus = errorResponse.GetHTTPStatus()
	}

	logLevel := slog.LevelWarn
	if httpStatus >= 500 {
		logLevel = slog.LevelError
	}

	h.logger.Log(c.Request().Context(), logLevel, "HTTP error occurred",
		"trace_id", traceID,
		"error_code", errorResponse.Error.Code,
		"status", httpStatus,
		"message", errorResponse.Error.Message,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"error", err.Error(),
	)

	h.apiErrorsTotal.WithLabelValues(
		errorResponse.Error.Code,
		c.Path(),
		fmt.Sprintf("%d", httpStatus),
	).Inc()

	if sendErr := c.JSON(httpStatus, errorResponse); sendErr != nil {
		h.logger.Error("Failed to send error response",
			"trace_id", traceID,
			"error", sendErr.Error(),
		)
	}
}

func mapHTTPStatusToErrorCode(status int) apperrors.ErrorCode {
	switch status {
	case http.StatusBadRequest, http.StatusNotFound, http.StatusMethodNotAllowed, http.StatusUnprocessableEntity:
		return apperrors.ValidationGeneral
	case http.StatusUnauthorized:
		return apperrors.AuthMissingToken
	case http.StatusRequestEntityTooLarge:
		return apperrors.StatementTooLarge
	case http.StatusTooManyRequests:
		return apperrors.SystemRateLimitExceeded
	case http.StatusInternalServerError:
		return apperrors.SystemInternalError
	case http.StatusServiceUnavailable:
		return apperrors.SystemServiceUnavailable
	default:
		return apperrors.SystemUnexpectedError
	}
}
