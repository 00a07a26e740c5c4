package services

import (
	"errors"
	"fmt"
	"regexp"

	"golang.org/x/crypto/bcrypt"
)

const (
	DefaultBCryptCost        = 12
	DefaultMinPasswordLength = 8
	MaxPasswordLength        = 72 // bcrypt ignores bytes past 72
)

var (
	ErrPasswordEmpty    = errors.New("password cannot be empty")
	ErrPasswordTooShort = errors.New("password is too short")
	ErrPasswordTooLong  = fmt.Errorf("password must not exceed %d characters", MaxPasswordLength)
	ErrPasswordMismatch = errors.New("passwords do not match")

	uppercaseRegex = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex = regexp.MustCompile(`[a-z]`)
	numberRegex    = regexp.MustCompile(`[0-9]`)
	specialRegex   = regexp.MustCompile(`[^a-zA-Z0-9]`)
)

// PasswordService hashes and checks local account passwords.
type PasswordService struct {
	cost      int
	minLength int
}

func NewPasswordService(cost, minLength int) PasswordServiceInterface {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultBCryptCost
	}
	if minLength <= 0 {
		minLength = DefaultMinPasswordLength
	}
	return &PasswordService{
		cost:      cost,
		minLength: minLength,
	}
}

func (ps *PasswordService) ValidatePassword(password string) error {
	if password == "" {
		return ErrPasswordEmpty
	}
	if len(password) < ps.minLength {
		return fmt.Errorf("%w: must be at least %d characters", ErrPasswordTooShort, ps.minLength)
	}
	if len(password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}

func (ps *PasswordService) ValidateConfirmation(password, confirmation string) error {
	if password != confirmation {
		return ErrPasswordMismatch
	}
	return nil
}

// HashPassword validates and hashes a password using bcrypt.
func (ps *PasswordService) HashPassword(password string) (string, error) {
	if err := ps.ValidatePassword(password); err != nil {
		return "", fmt.Errorf("password validation failed: %w", err)
	}

	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), ps.cost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hashedBytes), nil
}

func (ps *PasswordService) ComparePassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// PasswordStrength returns a score from 0-100. It is advisory; only
// ValidatePassword gates registration.
func (ps *PasswordService) PasswordStrength(password string) int {
	if password == "" {
		return 0
	}

	score := 0
	for _, threshold := range []int{8, 12, 16, 20} {
		if len(password) >= threshold {
			score += 10
		}
	}

	for _, re := range []*regexp.Regexp{uppercaseRegex, lowercaseRegex, numberRegex, specialRegex} {
		if re.MatchString(password) {
			score += 15
		}
	}

	unique := make(map[rune]struct{})
	for _, r := range password {
		unique[r] = struct{}{}
	}
	switch {
	case len(unique) > len(password)*3/4:
		score += 10
	case len(unique) > len(password)/2:
		score += 5
	}

	if score > 100 {
		score = 100
	}
	return score
}
