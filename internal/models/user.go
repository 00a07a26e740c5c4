package models

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ProviderLocal  = "local"
	ProviderGoogle = "google"

	UsernameMinLength = 3
	UsernameMaxLength = 50
)

var (
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	emailRegex    = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
)

// User is the per-user document: identity plus the embedded category map.
type User struct {
	ID           uuid.UUID   `gorm:"type:uuid;primary_key" json:"id"`
	Username     string      `gorm:"type:varchar(50);uniqueIndex;not null" json:"username"`
	Email        string      `gorm:"type:varchar(255);index" json:"email,omitempty"`
	PasswordHash string      `gorm:"type:varchar(255)" json:"-"`
	GoogleID     *string     `gorm:"type:varchar(255);uniqueIndex" json:"-"`
	DisplayName  string      `gorm:"type:varchar(255)" json:"display_name,omitempty"`
	AvatarURL    string      `gorm:"type:text" json:"avatar_url,omitempty"`
	Provider     string      `gorm:"type:varchar(20);not null;default:'local'" json:"provider"`
	Categories   CategoryMap `gorm:"type:text" json:"categories"`
	LastLoginAt  *time.Time  `json:"last_login_at,omitempty"`
	CreatedAt    time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt    time.Time   `gorm:"not null" json:"updated_at"`

	RefreshTokens     []RefreshToken     `gorm:"foreignKey:UserID" json:"-"`
	BlacklistedTokens []BlacklistedToken `gorm:"foreignKey:UserID" json:"-"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}

	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}
	if u.Provider == "" {
		u.Provider = ProviderLocal
	}
	if u.Categories.IsEmpty() {
		u.Categories = DefaultCategoryMap()
	}

	return u.Validate()
}

func (u *User) BeforeUpdate(tx *gorm.DB) error {
	// Map-based updates carry only the changed columns.
	if tx.Statement.Dest != nil {
		if _, ok := tx.Statement.Dest.(map[string]interface{}); ok {
			return nil
		}
	}
	return u.Validate()
}

func (u *User) Validate() error {
	if err := ValidateUsername(u.Username); err != nil {
		return err
	}

	if u.Email != "" && !emailRegex.MatchString(u.Email) {
		return errors.New("invalid email format")
	}

	switch u.Provider {
	case ProviderLocal:
		if u.PasswordHash == "" {
			return errors.New("password hash is required for local users")
		}
	case ProviderGoogle:
		if u.GoogleID == nil || *u.GoogleID == "" {
			return errors.New("google id is required for google users")
		}
	default:
		return fmt.Errorf("invalid provider: %s", u.Provider)
	}

	return nil
}

func ValidateUsername(username string) error {
	if len(username) < UsernameMinLength || len(username) > UsernameMaxLength {
		return fmt.Errorf("username must be between %d and %d characters", UsernameMinLength, UsernameMaxLength)
	}
	if !usernameRegex.MatchString(username) {
		return errors.New("username can only contain letters, numbers, and underscores")
	}
	return nil
}

// UsernameFromName derives a valid username from a display name, e.g. for a
// first external sign-in. suffix disambiguates users with the same name.
func UsernameFromName(name, suffix string) string {
	base := strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '_':
			return r
		case r == ' ' || r == '-' || r == '.':
			return '_'
		default:
			return -1
		}
	}, strings.TrimSpace(name))

	if base == "" {
		base = "user"
	}
	if suffix != "" {
		if limit := UsernameMaxLength - len(suffix) - 1; len(base) > limit {
			base = base[:limit]
		}
		base = base + "_" + suffix
	} else if len(base) > UsernameMaxLength {
		base = base[:UsernameMaxLength]
	}
	for len(base) < UsernameMinLength {
		base += "_"
	}
	return base
}

func (u *User) UpdateLastLogin() {
	now := time.Now()
	u.LastLoginAt = &now
}

func (u *User) IsExternal() bool {
	return u.Provider != ProviderLocal
}

func (u *User) TableName() string {
	return "users"
}
