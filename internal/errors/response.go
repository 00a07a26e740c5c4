package errors

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
)

// ErrorResponse represents the standardized API error response structure
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains the detailed error information
type ErrorDetail struct {
	Code    string   `json:"code"`
	Message string   `json:"message"`
	Details []string `json:"details,omitempty"`
	TraceID string   `json:"trace_id"`
}

// ErrorOption is a functional option for configuring error responses
type ErrorOption func(*ErrorResponse)

// WithDetails adds detail messages to the error response
func WithDetails(details ...string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Details = details
	}
}

// WithMessage overrides the default message for the error code
func WithMessage(message string) ErrorOption {
	return func(er *ErrorResponse) {
		er.Error.Message = message
	}
}

// NewErrorResponse creates a standardized error response with the given error code and trace ID
// Optional details can be added using functional options
func NewErrorResponse(code ErrorCode, traceID string, opts ...ErrorOption) *ErrorResponse {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(code),
			Message: GetErrorMessage(code),
			TraceID: traceID,
			Details: []string{},
		},
	}

	// Apply functional options
	for _, opt := range opts {
		opt(response)
	}

	return response
}

// NewValidationError creates a validation error response with field-specific error details.
// Details are sorted so responses are stable.
func NewValidationError(fieldErrors map[string]string, traceID string) *ErrorResponse {
	details := make([]string, 0, len(fieldErrors))
	for field, message := range fieldErrors {
		details = append(details, fmt.Sprintf("%s: %s", field, message))
	}
	sort.Strings(details)

	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(ValidationGeneral),
			Message: GetErrorMessage(ValidationGeneral),
			Details: details,
			TraceID: traceID,
		},
	}
}

// NewValidationErrorFromList creates a validation error from a list of detail messages
func NewValidationErrorFromList(details []string, traceID string) *ErrorResponse {
	return &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(ValidationGeneral),
			Message: GetErrorMessage(ValidationGeneral),
			Details: details,
			TraceID: traceID,
		},
	}
}

// WrapSystemError wraps an internal error with a generic system error message
// This prevents exposure of internal implementation details to clients
// The internal error is returned separately for server-side logging
func WrapSystemError(err error, traceID string) (*ErrorResponse, error) {
	response := &ErrorResponse{
		Error: ErrorDetail{
			Code:    string(SystemInternalError),
			Message: GetErrorMessage(SystemInternalError),
			Details: []string{},
			TraceID: traceID,
		},
	}
	return response, err
}

// ToJSON serializes the error response to JSON bytes
func (er *ErrorResponse) ToJSON() ([]byte, error) {
	return json.Marshal(er)
}

// GetHTTPStatus returns the appropriate HTTP status code for the error code
func GetHTTPStatus(code ErrorCode) int {
	switch code {
	case ValidationGeneral, ValidationRequiredField, ValidationInvalidFormat,
		ValidationInvalidEmail, ValidationInvalidDate,
		AuthPasswordMismatch, AuthWeakPassword,
		CategoryInvalidName, CategoryBlankKeyword,
		StatementMissingFile, AssistantNoInput:
		return http.StatusBadRequest

	case AuthInvalidCredentials, AuthMissingToken, AuthExpiredToken,
		AuthInvalidTokenFormat, AuthExternalSignInFailed:
		return http.StatusUnauthorized

	case CategoryProtected:
		return http.StatusForbidden

	case CategoryNotFound, StatementNotLoaded, StatementRowNotFound:
		return http.StatusNotFound

	case AuthUsernameTaken:
		return http.StatusConflict

	case StatementTooLarge:
		return http.StatusRequestEntityTooLarge

	case StatementUnsupported, StatementMissingColumn, StatementUnreadable,
		StatementInvalidRow, BankFeedNoConnections:
		return http.StatusUnprocessableEntity

	case SystemRateLimitExceeded:
		return http.StatusTooManyRequests

	case SystemServiceUnavailable, AssistantUnavailable, BankFeedUnavailable,
		BankFeedNotConfigured, AuthExternalSignInDisabled:
		return http.StatusServiceUnavailable

	case SystemInternalError, SystemDatabaseError, SystemConfigurationError,
		SystemUnexpectedError, CategorySaveFailed:
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}

// GetHTTPStatusForResponse returns the HTTP status code for the error response
func (er *ErrorResponse) GetHTTPStatus() int {
	return GetHTTPStatus(ErrorCode(er.Error.Code))
}

// IsClientError returns true if the error is a 4xx client error
func (er *ErrorResponse) IsClientError() bool {
	status := er.GetHTTPStatus()
	return status >= 400 && status < 500
}

// IsServerError returns true if the error is a 5xx server error
func (er *ErrorResponse) IsServerError() bool {
	status := er.GetHTTPStatus()
	return status >= 500
}

// String returns a string representation of the error response
func (er *ErrorResponse) String() string {
	return fmt.Sprintf("[%s] %s (trace: %s)", er.Error.Code, er.Error.Message, er.Error.TraceID)
}
