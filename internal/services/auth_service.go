package services

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"

	"github.com/google/uuid"
)

const (
	maxFailedLogins    = 5
	failedLoginsWindow = 15 * time.Minute
)

var (
	ErrInvalidCredentials  = errors.New("invalid username or password")
	ErrTooManyAttempts     = errors.New("too many failed login attempts")
	ErrUserAlreadyExists   = errors.New("username already exists")
	ErrInvalidRefreshToken = errors.New("invalid refresh token")
)

// AuthService handles local accounts and the token lifecycle shared with
// external sign-in.
type AuthService struct {
	userRepo             repositories.UserRepositoryInterface
	refreshTokenRepo     repositories.RefreshTokenRepositoryInterface
	auditRepo            repositories.AuditLogRepositoryInterface
	blacklistedTokenRepo repositories.BlacklistedTokenRepositoryInterface
	passwordService      PasswordServiceInterface
	tokenService         TokenServiceInterface
	metrics              MetricsRecorderInterface
	logger               *slog.Logger
}

func NewAuthService(
	userRepo repositories.UserRepositoryInterface,
	refreshTokenRepo repositories.RefreshTokenRepositoryInterface,
	auditRepo repositories.AuditLogRepositoryInterface,
	blacklistedTokenRepo repositories.BlacklistedTokenRepositoryInterface,
	passwordService PasswordServiceInterface,
	tokenService TokenServiceInterface,
	metrics MetricsRecorderInterface,
	logger *slog.Logger,
) AuthServiceInterface {
	return &AuthService{
		userRepo:             userRepo,
		refreshTokenRepo:     refreshTokenRepo,
		auditRepo:            auditRepo,
		blacklistedTokenRepo: blacklistedTokenRepo,
		passwordService:      passwordService,
		tokenService:         tokenService,
		metrics:              metrics,
		logger:               logger,
	}
}

// Register creates a local user with the default category map.
func (s *AuthService) Register(req *dto.RegisterRequest, ipAddress, userAgent string) (*models.User, error) {
	username := strings.TrimSpace(req.Username)
	if err := models.ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := s.passwordService.ValidateConfirmation(req.Password, req.ConfirmPassword); err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByUsername(username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		s.audit(nil, models.AuditActionRegister, "", ipAddress, userAgent, map[string]interface{}{
			"username": username,
			"reason":   "username_taken",
		})
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := s.passwordService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     username,
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: hashedPassword,
		Provider:     models.ProviderLocal,
		Categories:   models.DefaultCategoryMap(),
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, ErrUserAlreadyExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.audit(&user.ID, models.AuditActionRegister, user.ID.String(), ipAddress, userAgent, nil)
	s.event("register")
	return user, nil
}

// Login checks a username and password and issues a token pair.
func (s *AuthService) Login(req *dto.LoginRequest, ipAddress, userAgent string) (*dto.TokenResponse, error) {
	username := strings.TrimSpace(req.Username)

	failures, err := s.auditRepo.CountFailedLogins(username, time.Now().Add(-failedLoginsWindow))
	if err != nil {
		s.logger.Warn("failed to count failed logins", "error", err, "username", username)
	} else if failures >= maxFailedLogins {
		s.event("login_throttled")
		return nil, ErrTooManyAttempts
	}

	user, err := s.userRepo.GetByUsername(username)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			s.auditFailedLogin(username, ipAddress, userAgent, "user_not_found")
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if user.PasswordHash == "" || !s.passwordService.ComparePassword(req.Password, user.PasswordHash) {
		s.auditFailedLogin(username, ipAddress, userAgent, "invalid_password")
		return nil, ErrInvalidCredentials
	}

	tokens, err := s.IssueTokens(user)
	if err != nil {
		return nil, err
	}

	s.audit(&user.ID, models.AuditActionLogin, user.ID.String(), ipAddress, userAgent, nil)
	s.event("login")
	return tokens, nil
}

// RefreshTokens exchanges a refresh token for a new pair. Each refresh token
// works once; presenting a revoked one revokes every token of the user.
func (s *AuthService) RefreshTokens(refreshToken, ipAddress, userAgent string) (*dto.TokenResponse, error) {
	claims, err := s.tokenService.ValidateRefreshToken(refreshToken)
	if err != nil {
		s.audit(nil, models.AuditActionTokenRefresh, "", ipAddress, userAgent, map[string]interface{}{"reason": "invalid_token"})
		return nil, ErrInvalidRefreshToken
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, ErrInvalidRefreshToken
	}

	storedToken, err := s.refreshTokenRepo.GetByTokenHash(hashToken(refreshToken))
	if err != nil {
		s.audit(&userID, models.AuditActionTokenRefresh, "", ipAddress, userAgent, map[string]interface{}{"reason": "token_not_found"})
		return nil, ErrInvalidRefreshToken
	}

	if storedToken.IsRevoked() {
		return nil, s.rejectReuse(userID, storedToken, ipAddress, userAgent)
	}
	if storedToken.IsExpired() {
		s.audit(&userID, models.AuditActionTokenRefresh, storedToken.ID.String(), ipAddress, userAgent, map[string]interface{}{"reason": "token_expired"})
		return nil, ErrInvalidRefreshToken
	}

	user, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, ErrInvalidRefreshToken
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	successorID := uuid.New()
	storedToken.Revoke()
	storedToken.ReplacedByID = &successorID
	if err := s.refreshTokenRepo.Rotate(storedToken); err != nil {
		if errors.Is(err, repositories.ErrRefreshTokenRotated) {
			return nil, s.rejectReuse(userID, storedToken, ipAddress, userAgent)
		}
		return nil, fmt.Errorf("failed to rotate refresh token: %w", err)
	}

	tokens, err := s.issueTokens(user, successorID)
	if err != nil {
		return nil, err
	}

	s.audit(&user.ID, models.AuditActionTokenRefresh, storedToken.ID.String(), ipAddress, userAgent, nil)
	s.event("token_refresh")
	return tokens, nil
}

// Logout blacklists the access token and revokes the user's refresh tokens.
// An already invalid token is not an error.
func (s *AuthService) Logout(accessToken, ipAddress, userAgent string) error {
	claims, err := s.tokenService.ValidateAccessToken(accessToken)
	if err != nil {
		return nil
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil
	}

	expiry := time.Now().Add(24 * time.Hour)
	if claims.ExpiresAt != nil {
		expiry = claims.ExpiresAt.Time
	}
	if err := s.blacklistedTokenRepo.Create(&models.BlacklistedToken{
		JTI:       claims.ID,
		UserID:    userID,
		ExpiresAt: expiry,
	}); err != nil {
		return fmt.Errorf("failed to blacklist token: %w", err)
	}

	if err := s.refreshTokenRepo.RevokeAllForUser(userID); err != nil {
		s.logger.Warn("failed to revoke refresh tokens", "error", err, "user_id", userID)
	}

	s.audit(&userID, models.AuditActionLogout, userID.String(), ipAddress, userAgent, nil)
	s.event("logout")
	return nil
}

// IssueTokens creates an access token and a stored refresh token for user.
func (s *AuthService) IssueTokens(user *models.User) (*dto.TokenResponse, error) {
	return s.issueTokens(user, uuid.Nil)
}

// PruneTokens deletes expired refresh tokens, revoked ones older than
// revokedRetention and expired blacklist entries.
func (s *AuthService) PruneTokens(revokedRetention time.Duration) error {
	expired, err := s.refreshTokenRepo.DeleteExpired()
	if err != nil {
		return err
	}
	revoked, err := s.refreshTokenRepo.DeleteRevokedOlderThan(revokedRetention)
	if err != nil {
		return err
	}
	blacklisted, err := s.blacklistedTokenRepo.DeleteExpired()
	if err != nil {
		return err
	}

	s.logger.Info("pruned tokens",
		"expired_refresh", expired,
		"revoked_refresh", revoked,
		"blacklisted", blacklisted)
	return nil
}

// rejectReuse handles a refresh token presented after it was rotated: the
// whole chain is treated as compromised.
func (s *AuthService) rejectReuse(userID uuid.UUID, token *models.RefreshToken, ipAddress, userAgent string) error {
	if err := s.refreshTokenRepo.RevokeAllForUser(userID); err != nil {
		s.logger.Error("failed to revoke tokens after reuse", "error", err, "user_id", userID)
	}
	s.audit(&userID, models.AuditActionTokenRefresh, token.ID.String(), ipAddress, userAgent, map[string]interface{}{"reason": "token_reused"})
	s.event("refresh_token_reused")
	return ErrInvalidRefreshToken
}

func (s *AuthService) issueTokens(user *models.User, refreshID uuid.UUID) (*dto.TokenResponse, error) {
	accessToken, expiresAt, err := s.tokenService.GenerateAccessToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to generate access token: %w", err)
	}

	refreshToken, refreshExpiresAt, err := s.tokenService.GenerateRefreshToken(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to generate refresh token: %w", err)
	}

	stored := &models.RefreshToken{
		ID:        refreshID,
		UserID:    user.ID,
		TokenHash: hashToken(refreshToken),
		ExpiresAt: refreshExpiresAt,
	}
	if err := s.refreshTokenRepo.Create(stored); err != nil {
		return nil, fmt.Errorf("failed to store refresh token: %w", err)
	}

	if err := s.userRepo.UpdateFields(user.ID, map[string]interface{}{"last_login_at": time.Now()}); err != nil {
		s.logger.Warn("failed to update last login", "error", err, "user_id", user.ID)
	}

	return &dto.TokenResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
		ExpiresAt:    expiresAt,
	}, nil
}

func hashToken(token string) string {
	return fmt.Sprintf("%x", sha256.Sum256([]byte(token)))
}

func (s *AuthService) auditFailedLogin(username, ipAddress, userAgent, reason string) {
	s.audit(nil, models.AuditActionFailedLogin, username, ipAddress, userAgent, map[string]interface{}{"reason": reason})
	s.event("failed_login")
}

func (s *AuthService) audit(userID *uuid.UUID, action, resourceID, ipAddress, userAgent string, metadata map[string]interface{}) {
	log := models.NewAuditLog(userID, action, models.AuditResourceUser, resourceID).WithClient(ipAddress, userAgent)
	for k, v := range metadata {
		log.SetMetadata(k, v)
	}

	if err := s.auditRepo.Create(log); err != nil {
		s.logger.Error("failed to create audit log",
			"error", err,
			"action", action,
			"resource_id", resourceID)
	}
}

func (s *AuthService) event(eventType string) {
	s.metrics.IncrementCounter("authentication_event", map[string]string{"event_type": eventType})
}
