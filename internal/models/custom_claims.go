package models

import "github.com/golang-jwt/jwt/v5"

const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// CustomClaims are the claims of tokens issued by this service.
type CustomClaims struct {
	jwt.RegisteredClaims
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Provider  string `json:"provider,omitempty"`
	TokenType string `json:"token_type"`
}
