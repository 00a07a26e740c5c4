package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// RefreshToken is stored hashed. A token is single use: refreshing revokes it
// and records its successor.
type RefreshToken struct {
	ID           uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	TokenHash    string     `gorm:"type:varchar(255);not null;uniqueIndex" json:"-"`
	ExpiresAt    time.Time  `gorm:"not null;index" json:"expires_at"`
	RevokedAt    *time.Time `gorm:"index" json:"revoked_at,omitempty"`
	ReplacedByID *uuid.UUID `gorm:"type:uuid" json:"replaced_by_id,omitempty"`
	CreatedAt    time.Time  `gorm:"not null" json:"created_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (rt *RefreshToken) IsExpired() bool {
	return time.Now().After(rt.ExpiresAt)
}

func (rt *RefreshToken) IsRevoked() bool {
	return rt.RevokedAt != nil
}

func (rt *RefreshToken) IsValid() bool {
	return !rt.IsExpired() && !rt.IsRevoked()
}

func (rt *RefreshToken) Revoke() {
	now := time.Now()
	rt.RevokedAt = &now
}

func (rt *RefreshToken) TableName() string {
	return "refresh_tokens"
}

func (rt *RefreshToken) BeforeCreate(tx *gorm.DB) error {
	if rt.ID == uuid.Nil {
		rt.ID = uuid.New()
	}
	if rt.CreatedAt.IsZero() {
		rt.CreatedAt = time.Now()
	}
	return nil
}

// BlacklistedToken records the jti of a logged-out access token until it
// would have expired anyway.
type BlacklistedToken struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	JTI           string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"jti"`
	UserID        uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	ExpiresAt     time.Time `gorm:"not null;index" json:"expires_at"`
	BlacklistedAt time.Time `gorm:"not null" json:"blacklisted_at"`

	User User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}

func (bt *BlacklistedToken) IsExpired() bool {
	return time.Now().After(bt.ExpiresAt)
}

func (bt *BlacklistedToken) TableName() string {
	return "blacklisted_tokens"
}

func (bt *BlacklistedToken) BeforeCreate(tx *gorm.DB) error {
	if bt.ID == uuid.Nil {
		bt.ID = uuid.New()
	}
	if bt.BlacklistedAt.IsZero() {
		bt.BlacklistedAt = time.Now()
	}
	return nil
}
