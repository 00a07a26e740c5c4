package services

import (
	"crypto/rsa"
	"testing"
	"time"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/models"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type TokenServiceTestSuite struct {
	suite.Suite
	privateKey      *rsa.PrivateKey
	publicKey       *rsa.PublicKey
	service         TokenServiceInterface
	issuer          string
	accessDuration  time.Duration
	refreshDuration time.Duration
}

func (s *TokenServiceTestSuite) SetupTest() {
	var err error
	s.privateKey, s.publicKey, err = config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	s.issuer = "test-issuer"
	s.accessDuration = 15 * time.Minute
	s.refreshDuration = 7 * 24 * time.Hour

	s.service = s.newService(s.issuer, s.accessDuration, s.refreshDuration)
}

func (s *TokenServiceTestSuite) newService(issuer string, access, refresh time.Duration) TokenServiceInterface {
	return NewTokenService(&config.JWTConfig{
		PrivateKey:           s.privateKey,
		PublicKey:            s.publicKey,
		Issuer:               issuer,
		AccessTokenDuration:  access,
		RefreshTokenDuration: refresh,
	})
}

func TestTokenServiceSuite(t *testing.T) {
	suite.Run(t, new(TokenServiceTestSuite))
}

func testUser() *models.User {
	return &models.User{
		ID:       uuid.New(),
		Username: "jane_doe",
		Provider: models.ProviderLocal,
	}
}

func (s *TokenServiceTestSuite) TestGenerateAccessToken() {
	token, expiresAt, err := s.service.GenerateAccessToken(testUser())
	s.NoError(err)
	s.NotEmpty(token)
	s.True(expiresAt.After(time.Now()))
	s.True(expiresAt.Before(time.Now().Add(16 * time.Minute)))
}

func (s *TokenServiceTestSuite) TestGenerateAccessToken_NilUser() {
	token, _, err := s.service.GenerateAccessToken(nil)
	s.Error(err)
	s.Empty(token)
}

func (s *TokenServiceTestSuite) TestGenerateRefreshToken() {
	token, expiresAt, err := s.service.GenerateRefreshToken(uuid.New())
	s.NoError(err)
	s.NotEmpty(token)
	s.True(expiresAt.After(time.Now()))
	s.True(expiresAt.Before(time.Now().Add(8 * 24 * time.Hour)))
}

func (s *TokenServiceTestSuite) TestGenerateRefreshToken_NilUserID() {
	token, _, err := s.service.GenerateRefreshToken(uuid.Nil)
	s.Error(err)
	s.Empty(token)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_Success() {
	user := testUser()

	token, _, err := s.service.GenerateAccessToken(user)
	s.Require().NoError(err)

	claims, err := s.service.ValidateAccessToken(token)
	s.NoError(err)
	s.Require().NotNil(claims)
	s.Equal(user.ID.String(), claims.UserID)
	s.Equal(user.ID.String(), claims.Subject)
	s.Equal(user.Username, claims.Username)
	s.Equal(models.ProviderLocal, claims.Provider)
	s.Equal(models.TokenTypeAccess, claims.TokenType)
	s.Equal(s.issuer, claims.Issuer)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_EmptyToken() {
	claims, err := s.service.ValidateAccessToken("")
	s.ErrorIs(err, ErrEmptyToken)
	s.Nil(claims)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_InvalidFormat() {
	claims, err := s.service.ValidateAccessToken("invalid.token.format")
	s.ErrorIs(err, ErrInvalidToken)
	s.Nil(claims)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_RejectsRefreshToken() {
	token, _, err := s.service.GenerateRefreshToken(uuid.New())
	s.Require().NoError(err)

	claims, err := s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrInvalidTokenType)
	s.Nil(claims)
}

func (s *TokenServiceTestSuite) TestValidateAccessToken_RejectsHMAC() {
	claims := models.CustomClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
		UserID:    uuid.New().String(),
		TokenType: models.TokenTypeAccess,
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	s.Require().NoError(err)

	got, err := s.service.ValidateAccessToken(token)
	s.ErrorIs(err, ErrInvalidToken)
	s.Nil(got)
}

func (s *TokenServiceTestSuite) TestValidateRefreshToken_Success() {
	userID := uuid.New()

	token, _, err := s.service.GenerateRefreshToken(userID)
	s.Require().NoError(err)

	claims, err := s.service.ValidateRefreshToken(token)
	s.NoError(err)
	s.Require().NotNil(claims)
	s.Equal(userID.String(), claims.UserID)
	s.Equal(models.TokenTypeRefresh, claims.TokenType)
}

func (s *TokenServiceTestSuite) TestExpiredToken() {
	expired := s.newService(s.issuer, -time.Minute, -time.Minute)

	token, _, err := expired.GenerateAccessToken(testUser())
	s.Require().NoError(err)

	claims, err := expired.ValidateAccessToken(token)
	s.ErrorIs(err, ErrExpiredToken)
	s.Nil(claims)
}

func (s *TokenServiceTestSuite) TestWrongIssuer() {
	token, _, err := s.newService("issuer1", time.Hour, time.Hour).GenerateAccessToken(testUser())
	s.Require().NoError(err)

	claims, err := s.newService("issuer2", time.Hour, time.Hour).ValidateAccessToken(token)
	s.ErrorIs(err, ErrInvalidIssuer)
	s.Nil(claims)
}

func (s *TokenServiceTestSuite) TestDifferentKeys() {
	privateKey2, publicKey2, err := config.GenerateRSAKeyPair()
	s.Require().NoError(err)

	other := NewTokenService(&config.JWTConfig{
		PrivateKey:           privateKey2,
		PublicKey:            publicKey2,
		Issuer:               s.issuer,
		AccessTokenDuration:  time.Hour,
		RefreshTokenDuration: time.Hour,
	})

	token, _, err := s.service.GenerateAccessToken(testUser())
	s.Require().NoError(err)

	claims, err := other.ValidateAccessToken(token)
	s.ErrorIs(err, ErrInvalidToken)
	s.Nil(claims)
}

func (s *TokenServiceTestSuite) TestExtractTokenFromHeader() {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr bool
	}{
		{name: "bearer", header: "Bearer abc.def", want: "abc.def"},
		{name: "lowercase scheme", header: "bearer abc.def", want: "abc.def"},
		{name: "no scheme", header: "abc.def", wantErr: true},
		{name: "empty", header: "", wantErr: true},
		{name: "scheme only", header: "Bearer", wantErr: true},
		{name: "scheme and space", header: "Bearer ", wantErr: true},
		{name: "basic auth", header: "Basic dXNlcjpwYXNz", wantErr: true},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			token, err := s.service.ExtractTokenFromHeader(tt.header)
			if tt.wantErr {
				s.ErrorIs(err, ErrInvalidAuthHeader)
				s.Empty(token)
				return
			}
			s.NoError(err)
			s.Equal(tt.want, token)
		})
	}
}

func (s *TokenServiceTestSuite) TestGetJTI() {
	token, _, err := s.service.GenerateAccessToken(testUser())
	s.Require().NoError(err)

	jti, err := s.service.GetJTI(token)
	s.NoError(err)
	_, err = uuid.Parse(jti)
	s.NoError(err)
}

func (s *TokenServiceTestSuite) TestGetJTI_UniquePerToken() {
	user := testUser()
	first, _, err := s.service.GenerateAccessToken(user)
	s.Require().NoError(err)
	second, _, err := s.service.GenerateAccessToken(user)
	s.Require().NoError(err)

	jti1, err := s.service.GetJTI(first)
	s.Require().NoError(err)
	jti2, err := s.service.GetJTI(second)
	s.Require().NoError(err)
	s.NotEqual(jti1, jti2)
}

func (s *TokenServiceTestSuite) TestGetTokenExpiry() {
	token, expiresAt, err := s.service.GenerateAccessToken(testUser())
	s.Require().NoError(err)

	got, err := s.service.GetTokenExpiry(token)
	s.NoError(err)
	s.WithinDuration(expiresAt, got, time.Second)

	_, err = s.service.GetTokenExpiry("")
	s.ErrorIs(err, ErrEmptyToken)
}

func BenchmarkTokenService_ValidateAccessToken(b *testing.B) {
	privateKey, publicKey, err := config.GenerateRSAKeyPair()
	if err != nil {
		b.Fatal(err)
	}

	ts := NewTokenService(&config.JWTConfig{
		PrivateKey:           privateKey,
		PublicKey:            publicKey,
		Issuer:               "test-issuer",
		AccessTokenDuration:  time.Hour,
		RefreshTokenDuration: time.Hour,
	})

	token, _, err := ts.GenerateAccessToken(testUser())
	if err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := ts.ValidateAccessToken(token); err != nil {
			b.Fatal(err)
		}
	}
}
