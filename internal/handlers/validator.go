package handlers

import (
	"finance-dashboard/internal/validation"

	"github.com/labstack/echo/v4"
)

// CustomValidator implements echo.Validator interface
type CustomValidator struct {
	validator *validation.Validator
}

// NewValidator creates a validator with the application's custom rules
func NewValidator() echo.Validator {
	return &CustomValidator{validator: validation.GetValidator()}
}

// Validate implements the echo.Validator interface
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
