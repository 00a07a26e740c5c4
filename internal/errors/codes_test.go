package errors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"
)

// CodesTestSuite defines the test suite for error codes
type CodesTestSuite struct {
	suite.Suite
}

// TestCodesTestSuite runs the test suite
func TestCodesTestSuite(t *testing.T) {
	suite.Run(t, new(CodesTestSuite))
}

func allCodes() []ErrorCode {
	codes := make([]ErrorCode, 0, len(errorMessages))
	for code := range errorMessages {
		codes = append(codes, code)
	}
	return codes
}

func (s *CodesTestSuite) TestGetErrorMessage_ValidCode() {
	testCases := []struct {
		name     string
		code     ErrorCode
		expected string
	}{
		{"Auth Invalid Credentials", AuthInvalidCredentials, "Invalid username or password"},
		{"Auth Username Taken", AuthUsernameTaken, "Username already exists"},
		{"Category Blank Keyword", CategoryBlankKeyword, "Keyword cannot be empty"},
		{"Statement Missing Column", StatementMissingColumn, "Statement is missing a required column"},
		{"Assistant Unavailable", AssistantUnavailable, "Categorization unavailable"},
		{"System Internal Error", SystemInternalError, "An unexpected error occurred. Please contact support with trace ID"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			s.Equal(tc.expected, GetErrorMessage(tc.code))
		})
	}
}

func (s *CodesTestSuite) TestGetErrorMessage_InvalidCode() {
	s.Equal("An error occurred", GetErrorMessage("INVALID_CODE"))
}

func (s *CodesTestSuite) TestIsValidErrorCode() {
	for _, code := range []ErrorCode{AuthMissingToken, CategoryNotFound, StatementNotLoaded, BankFeedUnavailable} {
		s.True(IsValidErrorCode(code), "expected %s to be valid", code)
	}
	for _, code := range []ErrorCode{"", "AUTH_999", "UNKNOWN_CODE"} {
		s.False(IsValidErrorCode(code), "expected %s to be invalid", code)
	}
}

// Every registered code carries one of the known domain prefixes and a
// non-empty message.
func (s *CodesTestSuite) TestErrorCodeConstants_Format() {
	prefixes := []string{"AUTH_", "VALIDATION_", "CATEGORY_", "STATEMENT_", "ASSISTANT_", "BANKFEED_", "SYSTEM_"}

	for _, code := range allCodes() {
		matched := false
		for _, prefix := range prefixes {
			if strings.HasPrefix(string(code), prefix) {
				matched = true
				break
			}
		}
		s.True(matched, "unexpected prefix on %s", code)
		s.NotEmpty(GetErrorMessage(code))
	}
}
