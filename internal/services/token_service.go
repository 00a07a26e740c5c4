package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken      = errors.New("invalid token")
	ErrExpiredToken      = errors.New("token is expired")
	ErrInvalidIssuer     = errors.New("invalid issuer")
	ErrInvalidTokenType  = errors.New("invalid token type")
	ErrEmptyToken        = errors.New("empty token")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
)

// TokenService issues and checks RS256 access and refresh tokens.
type TokenService struct {
	config.JWTConfig
}

func NewTokenService(jwtConfig *config.JWTConfig) TokenServiceInterface {
	return &TokenService{
		JWTConfig: *jwtConfig,
	}
}

func (ts *TokenService) GenerateAccessToken(user *models.User) (string, time.Time, error) {
	if user == nil {
		return "", time.Time{}, errors.New("user cannot be nil")
	}

	now := time.Now()
	expiresAt := now.Add(ts.AccessTokenDuration)

	claims := ts.newClaims(user.ID, now, expiresAt, models.TokenTypeAccess)
	claims.Username = user.Username
	claims.Provider = user.Provider

	return ts.sign(claims, expiresAt)
}

func (ts *TokenService) GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error) {
	if userID == uuid.Nil {
		return "", time.Time{}, errors.New("user ID cannot be nil")
	}

	now := time.Now()
	expiresAt := now.Add(ts.RefreshTokenDuration)

	return ts.sign(ts.newClaims(userID, now, expiresAt, models.TokenTypeRefresh), expiresAt)
}

func (ts *TokenService) ValidateAccessToken(tokenString string) (*models.CustomClaims, error) {
	return ts.validateToken(tokenString, models.TokenTypeAccess)
}

func (ts *TokenService) ValidateRefreshToken(tokenString string) (*models.CustomClaims, error) {
	return ts.validateToken(tokenString, models.TokenTypeRefresh)
}

// ExtractTokenFromHeader returns the token of a "Bearer <token>" header. The
// scheme is case-insensitive.
func (ts *TokenService) ExtractTokenFromHeader(authHeader string) (string, error) {
	scheme, token, ok := strings.Cut(strings.TrimSpace(authHeader), " ")
	if !ok || !strings.EqualFold(scheme, "bearer") {
		return "", ErrInvalidAuthHeader
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", ErrInvalidAuthHeader
	}
	return token, nil
}

// GetJTI reads the token id without checking the signature.
func (ts *TokenService) GetJTI(tokenString string) (string, error) {
	claims, err := ts.unverifiedClaims(tokenString)
	if err != nil {
		return "", err
	}
	return claims.ID, nil
}

func (ts *TokenService) GetTokenExpiry(tokenString string) (time.Time, error) {
	claims, err := ts.unverifiedClaims(tokenString)
	if err != nil {
		return time.Time{}, err
	}
	if claims.ExpiresAt == nil {
		return time.Time{}, ErrInvalidToken
	}
	return claims.ExpiresAt.Time, nil
}

func (ts *TokenService) newClaims(userID uuid.UUID, issuedAt, expiresAt time.Time, tokenType string) models.CustomClaims {
	return models.CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    ts.Issuer,
			Subject:   userID.String(),
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
		UserID:    userID.String(),
		TokenType: tokenType,
	}
}

func (ts *TokenService) sign(claims models.CustomClaims, expiresAt time.Time) (string, time.Time, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodRS256, claims)

	tokenString, err := token.SignedString(ts.PrivateKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign %s token: %w", claims.TokenType, err)
	}
	return tokenString, expiresAt, nil
}

func (ts *TokenService) validateToken(tokenString, expectedType string) (*models.CustomClaims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	token, err := jwt.ParseWithClaims(tokenString, &models.CustomClaims{}, ts.keyFunc,
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*models.CustomClaims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Issuer != ts.Issuer {
		return nil, ErrInvalidIssuer
	}
	if claims.TokenType != expectedType {
		return nil, ErrInvalidTokenType
	}
	if _, err := uuid.Parse(claims.UserID); err != nil {
		return nil, fmt.Errorf("%w: bad user id", ErrInvalidToken)
	}

	return claims, nil
}

func (ts *TokenService) keyFunc(token *jwt.Token) (interface{}, error) {
	if _, ok := token.Method.(*jwt.SigningMethodRSA); !ok {
		return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
	}
	return ts.PublicKey, nil
}

func (ts *TokenService) unverifiedClaims(tokenString string) (*models.CustomClaims, error) {
	if tokenString == "" {
		return nil, ErrEmptyToken
	}

	token, _, err := jwt.NewParser().ParseUnverified(tokenString, &models.CustomClaims{})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*models.CustomClaims)
	if !ok {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
