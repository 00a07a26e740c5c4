package dto

import "time"

// Auth Request DTOs

// RegisterRequest contains local account registration data
type RegisterRequest struct {
	Username        string `json:"username" validate:"required,username"`
	Email           string `json:"email,omitempty" validate:"omitempty,email"`
	Password        string `json:"password" validate:"required,min=8,max=72"`
	ConfirmPassword string `json:"confirmPassword" validate:"required"`
}

// LoginRequest contains login credentials
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RefreshTokenRequest contains refresh token for renewal
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken" validate:"required"`
}

// Auth Response DTOs

// TokenResponse contains authentication tokens
type TokenResponse struct {
	AccessToken  string    `json:"accessToken"`
	RefreshToken string    `json:"refreshToken"`
	TokenType    string    `json:"tokenType"`
	ExpiresAt    time.Time `json:"expiresAt"`
}

// UserProfileResponse represents the authenticated user's profile
type UserProfileResponse struct {
	ID          string     `json:"id"`
	Username    string     `json:"username"`
	Email       string     `json:"email,omitempty"`
	DisplayName string     `json:"displayName,omitempty"`
	AvatarURL   string     `json:"avatarUrl,omitempty"`
	Provider    string     `json:"provider"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
}

// GoogleLoginResponse is returned when the client asks for JSON instead of a
// redirect.
type GoogleLoginResponse struct {
	AuthURL string `json:"authUrl"`
}
