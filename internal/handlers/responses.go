package handlers

import (
	"errors"
	"net/http"

	apperrors "finance-dashboard/internal/errors"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services"
	"finance-dashboard/internal/session"
	"finance-dashboard/internal/validation"

	"github.com/labstack/echo/v4"
)

// All error bodies go through SendError, SendServiceError or SendSystemError
// so that every response carries a code and the request trace id. Do not
// return echo.NewHTTPError or raw errors from handlers.

const TraceIDContextKey = "trace_id"

// SuccessResponse is the envelope of every successful response.
type SuccessResponse struct {
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

type ErrorResponse = apperrors.ErrorResponse

var serviceErrorCodes = []struct {
	err  error
	code apperrors.ErrorCode
}{
	{services.ErrInvalidCredentials, apperrors.AuthInvalidCredentials},
	{services.ErrTooManyAttempts, apperrors.SystemRateLimitExceeded},
	{services.ErrUserAlreadyExists, apperrors.AuthUsernameTaken},
	{services.ErrExpiredToken, apperrors.AuthExpiredToken},
	{services.ErrInvalidRefreshToken, apperrors.AuthInvalidTokenFormat},
	{services.ErrInvalidToken, apperrors.AuthInvalidTokenFormat},
	{services.ErrInvalidTokenType, apperrors.AuthInvalidTokenFormat},
	{services.ErrInvalidIssuer, apperrors.AuthInvalidTokenFormat},
	{services.ErrEmptyToken, apperrors.AuthMissingToken},
	{services.ErrInvalidAuthHeader, apperrors.AuthInvalidTokenFormat},
	{services.ErrPasswordMismatch, apperrors.AuthPasswordMismatch},
	{services.ErrPasswordEmpty, apperrors.AuthWeakPassword},
	{services.ErrPasswordTooShort, apperrors.AuthWeakPassword},
	{services.ErrPasswordTooLong, apperrors.AuthWeakPassword},
	{services.ErrExternalSignInDisabled, apperrors.AuthExternalSignInDisabled},
	{services.ErrExternalSignInFailed, apperrors.AuthExternalSignInFailed},

	{models.ErrEmptyCategoryName, apperrors.CategoryInvalidName},
	{models.ErrBlankKeyword, apperrors.CategoryBlankKeyword},
	{services.ErrCategoryProtected, apperrors.CategoryProtected},
	{services.ErrCategoryNotFound, apperrors.CategoryNotFound},
	{services.ErrKeywordNotFound, apperrors.CategoryNotFound},

	{services.ErrUnsupportedFormat, apperrors.StatementUnsupported},
	{services.ErrMissingColumn, apperrors.StatementMissingColumn},
	{services.ErrInvalidRow, apperrors.StatementInvalidRow},
	{services.ErrUnreadableFile, apperrors.StatementUnreadable},
	{services.ErrRowNotFound, apperrors.StatementRowNotFound},
	{session.ErrNoSession, apperrors.StatementNotLoaded},

	{services.ErrNoDescriptions, apperrors.AssistantNoInput},
	{services.ErrAssistantUnavailable, apperrors.AssistantUnavailable},
	{services.ErrCircuitBreakerOpen, apperrors.AssistantUnavailable},

	{services.ErrBankFeedNotConfigured, apperrors.BankFeedNotConfigured},
	{services.ErrNoBankAccounts, apperrors.BankFeedNoConnections},
	{services.ErrBankFeedUnavailable, apperrors.BankFeedUnavailable},
}

// ErrorCodeFor maps a service error to its response code. The first matching
// sentinel in the chain wins.
func ErrorCodeFor(err error) (apperrors.ErrorCode, bool) {
	for _, m := range serviceErrorCodes {
		if errors.Is(err, m.err) {
			return m.code, true
		}
	}
	return "", false
}

func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code apperrors.ErrorCode, opts ...apperrors.ErrorOption) error {
	errorResponse := apperrors.NewErrorResponse(code, getTraceID(c), opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendServiceError maps err to a known code, falling back to a system error.
func SendServiceError(c echo.Context, err error, opts ...apperrors.ErrorOption) error {
	if code, ok := ErrorCodeFor(err); ok {
		return SendError(c, code, opts...)
	}
	return SendSystemError(c, err)
}

// SendSystemError hides err behind a generic message.
func SendSystemError(c echo.Context, err error) error {
	errorResponse, _ := apperrors.WrapSystemError(err, getTraceID(c))
	return c.JSON(http.StatusInternalServerError, errorResponse)
}

// SendValidationError reports the fields that failed validation.
func SendValidationError(c echo.Context, err error) error {
	fields := validation.FieldErrors(err)
	if fields == nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails(err.Error()))
	}
	return c.JSON(http.StatusBadRequest, apperrors.NewValidationError(fields, getTraceID(c)))
}

func SendData(c echo.Context, status int, data interface{}) error {
	return c.JSON(status, SuccessResponse{Data: data})
}
