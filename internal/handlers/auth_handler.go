package handlers

import (
	"log/slog"
	"net/http"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services"
	"finance-dashboard/internal/session"

	"github.com/labstack/echo/v4"
)

// AuthHandler handles local account endpoints
type AuthHandler struct {
	authService services.AuthServiceInterface
	sessions    *session.Store
	logger      *slog.Logger
}

func NewAuthHandler(authService services.AuthServiceInterface, sessions *session.Store, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		sessions:    sessions,
		logger:      logger,
	}
}

// Register handles user registration
// @Summary Register a new local user
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RegisterRequest true "Registration details"
// @Success 201 {object} SuccessResponse{data=dto.UserProfileResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001, AUTH_006 or AUTH_007"
// @Failure 409 {object} errors.ErrorResponse "AUTH_005"
// @Router /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req dto.RegisterRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	user, err := h.authService.Register(&req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    ProfileFromUser(user),
		Message: "User registered successfully",
	})
}

// Login handles username and password sign-in
// @Summary Login user
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.LoginRequest true "Login credentials"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} errors.ErrorResponse "AUTH_001"
// @Failure 429 {object} errors.ErrorResponse "SYSTEM_006"
// @Router /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	tokens, err := h.authService.Login(&req, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, tokens)
}

// RefreshToken rotates a refresh token
// @Summary Refresh access token
// @Tags Authentication
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} errors.ErrorResponse "AUTH_003 or AUTH_004"
// @Router /auth/refresh [post]
func (h *AuthHandler) RefreshToken(c echo.Context) error {
	var req dto.RefreshTokenRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	tokens, err := h.authService.RefreshTokens(req.RefreshToken, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, tokens)
}

// Logout blacklists the presented access token and drops the session.
// @Summary Logout user
// @Tags Authentication
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	accessToken, _ := c.Get("access_token").(string)

	if err := h.authService.Logout(accessToken, getClientIP(c), c.Request().UserAgent()); err != nil {
		// The token stays valid until expiry; the client is logged out either way.
		h.logger.WarnContext(c.Request().Context(), "logout could not revoke token", "error", err)
	}

	if userID, err := getUserIDFromContext(c); err == nil {
		h.sessions.Delete(userID)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Message: "Logout successful",
	})
}

func ProfileFromUser(user *models.User) dto.UserProfileResponse {
	return dto.UserProfileResponse{
		ID:          user.ID.String(),
		Username:    user.Username,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		AvatarURL:   user.AvatarURL,
		Provider:    user.Provider,
		LastLoginAt: user.LastLoginAt,
		CreatedAt:   user.CreatedAt,
		UpdatedAt:   user.UpdatedAt,
	}
}
