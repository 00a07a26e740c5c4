package middleware

import (
	"errors"

	apperrors "finance-dashboard/internal/errors"
	"finance-dashboard/internal/handlers"
	"finance-dashboard/internal/repositories"
	"finance-dashboard/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequireAuth creates a middleware that requires a valid access token
// and checks that the token has not been blacklisted by a logout
func RequireAuth(tokenService services.TokenServiceInterface, blacklistedTokenRepo repositories.BlacklistedTokenRepositoryInterface) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return handlers.SendError(c, apperrors.AuthMissingToken)
			}

			token, err := tokenService.ExtractTokenFromHeader(authHeader)
			if err != nil {
				return handlers.SendError(c, apperrors.AuthInvalidTokenFormat)
			}

			claims, err := tokenService.ValidateAccessToken(token)
			if err != nil {
				if errors.Is(err, services.ErrExpiredToken) {
					return handlers.SendError(c, apperrors.AuthExpiredToken)
				}
				return handlers.SendError(c, apperrors.AuthInvalidTokenFormat)
			}

			revoked, err := blacklistedTokenRepo.IsBlacklisted(claims.ID)
			if err != nil {
				return handlers.SendError(c, apperrors.SystemServiceUnavailable)
			}
			if revoked {
				return handlers.SendError(c, apperrors.AuthInvalidTokenFormat, apperrors.WithDetails("Token has been revoked"))
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				return handlers.SendError(c, apperrors.AuthInvalidTokenFormat, apperrors.WithDetails("Invalid user ID in token"))
			}

			c.Set("user_id", userID)
			c.Set("username", claims.Username)
			c.Set("provider", claims.Provider)
			c.Set("token_jti", claims.ID)
			c.Set("access_token", token)

			return next(c)
		}
	}
}
