package handlers

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"finance-dashboard/internal/dto"
	apperrors "finance-dashboard/internal/errors"
	"finance-dashboard/internal/services"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	oauthStateCookie = "oauth_state"
	oauthStateTTL    = 10 * time.Minute
)

// GoogleAuthHandler runs the Google sign-in redirect flow.
type GoogleAuthHandler struct {
	identity     services.GoogleIdentityServiceInterface
	secureCookie bool
}

func NewGoogleAuthHandler(identity services.GoogleIdentityServiceInterface, secureCookie bool) *GoogleAuthHandler {
	return &GoogleAuthHandler{identity: identity, secureCookie: secureCookie}
}

// Login starts sign-in. Browsers are redirected to Google; clients that ask
// for JSON get the URL instead.
// @Summary Start Google sign-in
// @Tags Authentication
// @Success 302
// @Success 200 {object} dto.GoogleLoginResponse
// @Failure 503 {object} errors.ErrorResponse "AUTH_009"
// @Router /auth/google/login [get]
func (h *GoogleAuthHandler) Login(c echo.Context) error {
	if !h.identity.Enabled() {
		return SendError(c, apperrors.AuthExternalSignInDisabled)
	}

	state := uuid.NewString()
	c.SetCookie(h.stateCookie(state, int(oauthStateTTL.Seconds())))
	authURL := h.identity.AuthCodeURL(state)

	if strings.Contains(c.Request().Header.Get(echo.HeaderAccept), echo.MIMEApplicationJSON) {
		return c.JSON(http.StatusOK, dto.GoogleLoginResponse{AuthURL: authURL})
	}
	return c.Redirect(http.StatusFound, authURL)
}

// Callback completes sign-in and returns this service's tokens.
// @Summary Google sign-in callback
// @Tags Authentication
// @Param state query string true "state issued by login"
// @Param code query string true "authorisation code"
// @Success 200 {object} SuccessResponse{data=dto.TokenResponse}
// @Failure 401 {object} errors.ErrorResponse "AUTH_008"
// @Router /auth/google/callback [get]
func (h *GoogleAuthHandler) Callback(c echo.Context) error {
	if !h.identity.Enabled() {
		return SendError(c, apperrors.AuthExternalSignInDisabled)
	}

	cookie, err := c.Cookie(oauthStateCookie)
	c.SetCookie(h.stateCookie("", -1))

	if reason := c.QueryParam("error"); reason != "" {
		return SendError(c, apperrors.AuthExternalSignInFailed, apperrors.WithDetails(reason))
	}

	state := c.QueryParam("state")
	if err != nil || state == "" || subtle.ConstantTimeCompare([]byte(cookie.Value), []byte(state)) != 1 {
		return SendError(c, apperrors.AuthExternalSignInFailed, apperrors.WithDetails("Sign-in state mismatch"))
	}

	code := c.QueryParam("code")
	if code == "" {
		return SendError(c, apperrors.AuthExternalSignInFailed, apperrors.WithDetails("Missing authorisation code"))
	}

	ctx := c.Request().Context()
	identity, err := h.identity.Exchange(ctx, code)
	if err != nil {
		return SendServiceError(c, err)
	}

	user, tokens, err := h.identity.SignIn(ctx, identity, getClientIP(c), c.Request().UserAgent())
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: tokens,
		Meta: ProfileFromUser(user),
	})
}

func (h *GoogleAuthHandler) stateCookie(value string, maxAge int) *http.Cookie {
	return &http.Cookie{
		Name:     oauthStateCookie,
		Value:    value,
		Path:     "/api/v1/auth/google",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}
