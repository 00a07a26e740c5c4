package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials     ErrorCode = "AUTH_001"
	AuthMissingToken           ErrorCode = "AUTH_002"
	AuthExpiredToken           ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat     ErrorCode = "AUTH_004"
	AuthUsernameTaken          ErrorCode = "AUTH_005"
	AuthPasswordMismatch       ErrorCode = "AUTH_006"
	AuthWeakPassword           ErrorCode = "AUTH_007"
	AuthExternalSignInFailed   ErrorCode = "AUTH_008"
	AuthExternalSignInDisabled ErrorCode = "AUTH_009"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Category error codes (CATEGORY_*)
const (
	CategoryInvalidName  ErrorCode = "CATEGORY_001"
	CategoryBlankKeyword ErrorCode = "CATEGORY_002"
	CategoryNotFound     ErrorCode = "CATEGORY_003"
	CategoryProtected    ErrorCode = "CATEGORY_004"
	CategorySaveFailed   ErrorCode = "CATEGORY_005"
)

// Statement error codes (STATEMENT_*)
const (
	StatementMissingFile   ErrorCode = "STATEMENT_001"
	StatementUnsupported   ErrorCode = "STATEMENT_002"
	StatementMissingColumn ErrorCode = "STATEMENT_003"
	StatementUnreadable    ErrorCode = "STATEMENT_004"
	StatementInvalidRow    ErrorCode = "STATEMENT_005"
	StatementTooLarge      ErrorCode = "STATEMENT_006"
	StatementNotLoaded     ErrorCode = "STATEMENT_007"
	StatementRowNotFound   ErrorCode = "STATEMENT_008"
)

// Assistant error codes (ASSISTANT_*)
const (
	AssistantUnavailable ErrorCode = "ASSISTANT_001"
	AssistantNoInput     ErrorCode = "ASSISTANT_002"
)

// Bank feed error codes (BANKFEED_*)
const (
	BankFeedUnavailable   ErrorCode = "BANKFEED_001"
	BankFeedNoConnections ErrorCode = "BANKFEED_002"
	BankFeedNotConfigured ErrorCode = "BANKFEED_003"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	AuthInvalidCredentials:     "Invalid username or password",
	AuthMissingToken:           "Authorization token is required",
	AuthExpiredToken:           "Authorization token has expired",
	AuthInvalidTokenFormat:     "Invalid authorization token format",
	AuthUsernameTaken:          "Username already exists",
	AuthPasswordMismatch:       "Passwords do not match",
	AuthWeakPassword:           "Password does not meet requirements",
	AuthExternalSignInFailed:   "External sign-in failed",
	AuthExternalSignInDisabled: "External sign-in is not configured",

	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidEmail:  "Invalid email address format",
	ValidationInvalidDate:   "Invalid date format or range",

	CategoryInvalidName:  "Category name cannot be empty",
	CategoryBlankKeyword: "Keyword cannot be empty",
	CategoryNotFound:     "Category not found",
	CategoryProtected:    "The Uncategorised category cannot be removed",
	CategorySaveFailed:   "Categories could not be saved",

	StatementMissingFile:   "A statement file is required",
	StatementUnsupported:   "Unsupported statement format",
	StatementMissingColumn: "Statement is missing a required column",
	StatementUnreadable:    "Statement file could not be read",
	StatementInvalidRow:    "Statement contains an invalid row",
	StatementTooLarge:      "Statement file is too large",
	StatementNotLoaded:     "No statement loaded for this session",
	StatementRowNotFound:   "Transaction row not found",

	AssistantUnavailable: "Categorization unavailable",
	AssistantNoInput:     "No transaction descriptions to categorize",

	BankFeedUnavailable:   "Bank feed unavailable",
	BankFeedNoConnections: "No bank connections found",
	BankFeedNotConfigured: "Bank feed is not configured",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database connection error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
