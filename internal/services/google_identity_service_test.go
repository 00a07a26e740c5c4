package services

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/logging"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"
	"finance-dashboard/internal/repositories/repository_mocks"
	"finance-dashboard/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang-jwt/jwt/v5"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"golang.org/x/oauth2"
)

type GoogleIdentityServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	userRepo     *repository_mocks.MockUserRepositoryInterface
	authService  *service_mocks.MockAuthServiceInterface
	auditService *service_mocks.MockAuditServiceInterface
	service      GoogleIdentityServiceInterface
	server       *httptest.Server
	idToken      string
	ctx          context.Context
}

func (s *GoogleIdentityServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.userRepo = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.authService = service_mocks.NewMockAuthServiceInterface(s.ctrl)
	s.auditService = service_mocks.NewMockAuditServiceInterface(s.ctrl)
	s.ctx = context.Background()

	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.Require().NoError(r.ParseForm())
		if r.PostForm.Get("code") != "good-code" {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = w.Write([]byte(`{"error":"invalid_grant"}`))
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token": "google-access",
			"token_type":   "Bearer",
			"expires_in":   3600,
			"id_token":     s.idToken,
		})
	}))

	s.service = NewGoogleIdentityService(&config.GoogleConfig{
		ClientID:     "client-123",
		ClientSecret: "secret",
		RedirectURL:  "http://localhost:8080/api/v1/auth/google/callback",
	}, s.userRepo, s.authService, s.auditService, logging.Discard())
	s.service.(*googleIdentityService).oauth.Endpoint = oauth2.Endpoint{
		AuthURL:  s.server.URL + "/auth",
		TokenURL: s.server.URL + "/token",
	}
}

func (s *GoogleIdentityServiceTestSuite) TearDownTest() {
	s.server.Close()
	s.ctrl.Finish()
}

func TestGoogleIdentityServiceSuite(t *testing.T) {
	suite.Run(t, new(GoogleIdentityServiceTestSuite))
}

func (s *GoogleIdentityServiceTestSuite) signIDToken(claims googleIDClaims) string {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("unused"))
	s.Require().NoError(err)
	return token
}

func (s *GoogleIdentityServiceTestSuite) validClaims() googleIDClaims {
	return googleIDClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "https://accounts.google.com",
			Subject:   "1234567890",
			Audience:  jwt.ClaimStrings{"client-123"},
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		Email:         "jane@example.com",
		EmailVerified: true,
		Name:          "Jane Doe",
		Picture:       "https://example.com/jane.png",
	}
}

func (s *GoogleIdentityServiceTestSuite) TestAuthCodeURL() {
	s.True(s.service.Enabled())

	raw := s.service.AuthCodeURL("state-xyz")
	u, err := url.Parse(raw)
	s.Require().NoError(err)
	s.Equal("state-xyz", u.Query().Get("state"))
	s.Equal("client-123", u.Query().Get("client_id"))
	s.Contains(u.Query().Get("scope"), "openid")
}

func (s *GoogleIdentityServiceTestSuite) TestExchange_Success() {
	s.idToken = s.signIDToken(s.validClaims())

	identity, err := s.service.Exchange(s.ctx, "good-code")
	s.Require().NoError(err)
	s.Equal("1234567890", identity.Subject)
	s.Equal("jane@example.com", identity.Email)
	s.True(identity.EmailVerified)
	s.Equal("Jane Doe", identity.Name)
}

func (s *GoogleIdentityServiceTestSuite) TestExchange_BadCode() {
	_, err := s.service.Exchange(s.ctx, "bad-code")
	s.ErrorIs(err, ErrExternalSignInFailed)
}

func (s *GoogleIdentityServiceTestSuite) TestExchange_WrongAudience() {
	claims := s.validClaims()
	claims.Audience = jwt.ClaimStrings{"someone-else"}
	s.idToken = s.signIDToken(claims)

	_, err := s.service.Exchange(s.ctx, "good-code")
	s.ErrorIs(err, ErrExternalSignInFailed)
	s.Contains(err.Error(), "audience")
}

func (s *GoogleIdentityServiceTestSuite) TestExchange_WrongIssuer() {
	claims := s.validClaims()
	claims.Issuer = "https://evil.example.com"
	s.idToken = s.signIDToken(claims)

	_, err := s.service.Exchange(s.ctx, "good-code")
	s.ErrorIs(err, ErrExternalSignInFailed)
}

func (s *GoogleIdentityServiceTestSuite) TestExchange_Expired() {
	claims := s.validClaims()
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Hour))
	s.idToken = s.signIDToken(claims)

	_, err := s.service.Exchange(s.ctx, "good-code")
	s.ErrorIs(err, ErrExternalSignInFailed)
}

func (s *GoogleIdentityServiceTestSuite) TestExchange_Disabled() {
	disabled := NewGoogleIdentityService(&config.GoogleConfig{}, s.userRepo, s.authService, s.auditService, logging.Discard())
	s.False(disabled.Enabled())

	_, err := disabled.Exchange(s.ctx, "good-code")
	s.ErrorIs(err, ErrExternalSignInDisabled)
}

func (s *GoogleIdentityServiceTestSuite) TestSignIn_ExistingUser() {
	googleID := "1234567890"
	user := &models.User{ID: uuid.New(), Username: "jane_doe", GoogleID: &googleID, Provider: models.ProviderGoogle}
	identity := &models.ExternalIdentity{Subject: googleID, Email: gofakeit.Email(), Name: gofakeit.Name()}
	tokens := &dto.TokenResponse{AccessToken: "a", RefreshToken: "r", TokenType: "Bearer"}

	s.userRepo.EXPECT().GetByGoogleID(googleID).Return(user, nil).Times(1)
	s.userRepo.EXPECT().UpdateFields(user.ID, map[string]interface{}{
		"email":        identity.Email,
		"display_name": identity.Name,
		"avatar_url":   "",
	}).Return(nil).Times(1)
	s.authService.EXPECT().IssueTokens(user).Return(tokens, nil).Times(1)
	s.auditService.EXPECT().Record(s.ctx, gomock.Any()).DoAndReturn(func(_ context.Context, log *models.AuditLog) error {
		s.Equal(models.AuditActionExternalSignIn, log.Action)
		s.Equal(false, log.Metadata["created"])
		return nil
	}).Times(1)

	got, gotTokens, err := s.service.SignIn(s.ctx, identity, "127.0.0.1", "test")
	s.Require().NoError(err)
	s.Equal(user.ID, got.ID)
	s.Equal(identity.Email, got.Email)
	s.Equal(tokens, gotTokens)
}

func (s *GoogleIdentityServiceTestSuite) TestSignIn_CreatesUser() {
	identity := &models.ExternalIdentity{Subject: "99887766554433", Email: "jane@example.com", Name: "Jane Doe"}

	s.userRepo.EXPECT().GetByGoogleID(identity.Subject).Return(nil, repositories.ErrUserNotFound).Times(1)
	s.userRepo.EXPECT().ExistsByUsername("Jane_Doe").Return(true, nil).Times(1)
	s.userRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(user *models.User) error {
		s.Equal("Jane_Doe_554433", user.Username)
		s.Equal(models.ProviderGoogle, user.Provider)
		s.Equal(identity.Subject, *user.GoogleID)
		s.Empty(user.PasswordHash)
		user.ID = uuid.New()
		return nil
	}).Times(1)
	s.authService.EXPECT().IssueTokens(gomock.Any()).Return(&dto.TokenResponse{}, nil).Times(1)
	s.auditService.EXPECT().Record(s.ctx, gomock.Any()).Return(errors.New("ignored")).Times(1)

	user, _, err := s.service.SignIn(s.ctx, identity, "", "")
	s.Require().NoError(err)
	s.Equal("Jane_Doe_554433", user.Username)
}

func (s *GoogleIdentityServiceTestSuite) TestSignIn_NameFromEmail() {
	identity := &models.ExternalIdentity{Subject: "42", Email: "j.doe@example.com"}

	s.userRepo.EXPECT().GetByGoogleID("42").Return(nil, repositories.ErrUserNotFound).Times(1)
	s.userRepo.EXPECT().ExistsByUsername("j_doe").Return(false, nil).Times(1)
	s.userRepo.EXPECT().Create(gomock.Any()).Return(nil).Times(1)
	s.authService.EXPECT().IssueTokens(gomock.Any()).Return(&dto.TokenResponse{}, nil).Times(1)
	s.auditService.EXPECT().Record(s.ctx, gomock.Any()).Return(nil).Times(1)

	user, _, err := s.service.SignIn(s.ctx, identity, "", "")
	s.Require().NoError(err)
	s.Equal("j_doe", user.Username)
}

func (s *GoogleIdentityServiceTestSuite) TestSignIn_MissingSubject() {
	_, _, err := s.service.SignIn(s.ctx, &models.ExternalIdentity{}, "", "")
	s.ErrorIs(err, ErrExternalSignInFailed)
}
