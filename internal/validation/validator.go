package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"unicode/utf8"

	"finance-dashboard/internal/models"

	"github.com/go-playground/validator/v10"
)

const (
	MaxCategoryNameLength = 64
	MaxKeywordLength      = 255
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

var (
	instance *Validator
	once     sync.Once
)

// GetValidator returns the shared validator instance
func GetValidator() *Validator {
	once.Do(func() {
		instance = NewValidator()
	})
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("username", validateUsername)
	_ = v.RegisterValidation("category_name", validateCategoryName)
	_ = v.RegisterValidation("keyword", validateKeyword)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("query"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// validateUsername applies the same rules as account creation.
func validateUsername(fl validator.FieldLevel) bool {
	return models.ValidateUsername(fl.Field().String()) == nil
}

// validateCategoryName accepts a non-blank name of at most
// MaxCategoryNameLength characters without control characters.
func validateCategoryName(fl validator.FieldLevel) bool {
	name := strings.TrimSpace(fl.Field().String())
	if name == "" || utf8.RuneCountInString(name) > MaxCategoryNameLength {
		return false
	}
	return !strings.ContainsFunc(name, isControl)
}

func validateKeyword(fl validator.FieldLevel) bool {
	keyword := strings.TrimSpace(fl.Field().String())
	if keyword == "" || utf8.RuneCountInString(keyword) > MaxKeywordLength {
		return false
	}
	return !strings.ContainsFunc(keyword, isControl)
}

func isControl(r rune) bool {
	return r < 0x20 || r == 0x7f
}

// FieldErrors maps each failing field to a readable message. Errors that are
// not validation errors yield nil.
func FieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}

	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		out[fieldPath(fe)] = message(fe)
	}
	return out
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "datetime":
		return fmt.Sprintf("must be a date in the format %s", fe.Param())
	case "username":
		return fmt.Sprintf("must be %d-%d letters, numbers or underscores", models.UsernameMinLength, models.UsernameMaxLength)
	case "category_name":
		return fmt.Sprintf("must be a non-blank name of at most %d characters", MaxCategoryNameLength)
	case "keyword":
		return fmt.Sprintf("must be non-blank text of at most %d characters", MaxKeywordLength)
	default:
		return fmt.Sprintf("failed the %s check", fe.Tag())
	}
}
