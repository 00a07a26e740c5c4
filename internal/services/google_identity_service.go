package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

var (
	ErrExternalSignInDisabled = errors.New("google sign-in is not configured")
	ErrExternalSignInFailed   = errors.New("google sign-in failed")
)

var googleIssuers = map[string]bool{
	"accounts.google.com":         true,
	"https://accounts.google.com": true,
}

type googleIDClaims struct {
	jwt.RegisteredClaims
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

type googleIdentityService struct {
	oauth        *oauth2.Config
	userRepo     repositories.UserRepositoryInterface
	authService  AuthServiceInterface
	auditService AuditServiceInterface
	logger       *slog.Logger
}

func NewGoogleIdentityService(
	cfg *config.GoogleConfig,
	userRepo repositories.UserRepositoryInterface,
	authService AuthServiceInterface,
	auditService AuditServiceInterface,
	logger *slog.Logger,
) GoogleIdentityServiceInterface {
	return &googleIdentityService{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
		userRepo:     userRepo,
		authService:  authService,
		auditService: auditService,
		logger:       logger,
	}
}

func (s *googleIdentityService) Enabled() bool {
	return s.oauth.ClientID != ""
}

func (s *googleIdentityService) AuthCodeURL(state string) string {
	return s.oauth.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// Exchange trades an authorisation code for the signed-in identity. The
// id_token comes straight from Google's token endpoint over TLS, so its claims
// are read without fetching signing keys; audience and issuer are still checked.
func (s *googleIdentityService) Exchange(ctx context.Context, code string) (*models.ExternalIdentity, error) {
	if !s.Enabled() {
		return nil, ErrExternalSignInDisabled
	}

	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("%w: code exchange: %v", ErrExternalSignInFailed, err)
	}

	rawIDToken, ok := token.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		return nil, fmt.Errorf("%w: token response has no id_token", ErrExternalSignInFailed)
	}

	claims := &googleIDClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(rawIDToken, claims); err != nil {
		return nil, fmt.Errorf("%w: parse id_token: %v", ErrExternalSignInFailed, err)
	}

	if !googleIssuers[claims.Issuer] {
		return nil, fmt.Errorf("%w: unexpected issuer %q", ErrExternalSignInFailed, claims.Issuer)
	}
	if !audienceContains(claims.Audience, s.oauth.ClientID) {
		return nil, fmt.Errorf("%w: id_token audience mismatch", ErrExternalSignInFailed)
	}
	if claims.ExpiresAt != nil && claims.ExpiresAt.Before(time.Now()) {
		return nil, fmt.Errorf("%w: id_token expired", ErrExternalSignInFailed)
	}
	if claims.Subject == "" {
		return nil, fmt.Errorf("%w: id_token has no subject", ErrExternalSignInFailed)
	}

	return &models.ExternalIdentity{
		Subject:       claims.Subject,
		Email:         claims.Email,
		EmailVerified: claims.EmailVerified,
		Name:          claims.Name,
		Picture:       claims.Picture,
	}, nil
}

// SignIn finds the user by Google subject, creating it on first sign-in, and
// issues our own tokens. Profile fields are refreshed but never used to find
// the user.
func (s *googleIdentityService) SignIn(ctx context.Context, identity *models.ExternalIdentity, ipAddress, userAgent string) (*models.User, *dto.TokenResponse, error) {
	if identity == nil || identity.Subject == "" {
		return nil, nil, fmt.Errorf("%w: missing subject", ErrExternalSignInFailed)
	}

	created := false
	user, err := s.userRepo.GetByGoogleID(identity.Subject)
	switch {
	case err == nil:
		fields := map[string]interface{}{
			"email":        identity.Email,
			"display_name": identity.Name,
			"avatar_url":   identity.Picture,
		}
		if err := s.userRepo.UpdateFields(user.ID, fields); err != nil {
			s.logger.WarnContext(ctx, "failed to refresh google profile", "user_id", user.ID, "error", err)
		} else {
			user.Email = identity.Email
			user.DisplayName = identity.Name
			user.AvatarURL = identity.Picture
		}
	case errors.Is(err, repositories.ErrUserNotFound):
		user, err = s.createUser(identity)
		if err != nil {
			return nil, nil, err
		}
		created = true
	default:
		return nil, nil, fmt.Errorf("failed to look up google user: %w", err)
	}

	tokens, err := s.authService.IssueTokens(user)
	if err != nil {
		return nil, nil, err
	}

	log := models.NewAuditLog(&user.ID, models.AuditActionExternalSignIn, models.AuditResourceUser, user.ID.String()).
		WithClient(ipAddress, userAgent).
		SetMetadata("provider", models.ProviderGoogle).
		SetMetadata("created", created)
	if err := s.auditService.Record(ctx, log); err != nil {
		s.logger.ErrorContext(ctx, "failed to record external sign-in", "user_id", user.ID, "error", err)
	}

	return user, tokens, nil
}

func (s *googleIdentityService) createUser(identity *models.ExternalIdentity) (*models.User, error) {
	name := identity.Name
	if name == "" {
		name, _, _ = strings.Cut(identity.Email, "@")
	}

	username := models.UsernameFromName(name, "")
	exists, err := s.userRepo.ExistsByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		suffix := identity.Subject
		if len(suffix) > 6 {
			suffix = suffix[len(suffix)-6:]
		}
		username = models.UsernameFromName(name, suffix)
	}

	subject := identity.Subject
	user := &models.User{
		Username:    username,
		Email:       identity.Email,
		GoogleID:    &subject,
		DisplayName: identity.Name,
		AvatarURL:   identity.Picture,
		Provider:    models.ProviderGoogle,
		Categories:  models.DefaultCategoryMap(),
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create google user: %w", err)
	}
	return user, nil
}

func audienceContains(audience jwt.ClaimStrings, clientID string) bool {
	for _, a := range audience {
		if a == clientID {
			return true
		}
	}
	return false
}
