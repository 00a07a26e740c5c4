package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigTestSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestLoad_Defaults() {
	s.T().Setenv("APP_ENV", "testing")
	s.T().Setenv("JWT_PRIVATE_KEY", "")
	s.T().Setenv("JWT_PUBLIC_KEY", "")

	cfg, err := Load()
	s.Require().NoError(err)

	s.Equal("8080", cfg.Server.Port)
	s.Equal(DriverPostgres, cfg.Database.Driver)
	s.Equal(8, cfg.Security.PasswordMinLength)
	s.Equal(15*time.Minute, cfg.JWT.AccessTokenDuration)
	s.Equal(ProviderOpenAI, cfg.Assistant.Provider)
	s.Equal("https://api.x.ai/v1", cfg.Assistant.BaseURL)
	s.Equal("grok-3-mini-fast-beta", cfg.Assistant.Model)
	s.Equal([]string{"*"}, cfg.Server.CORSAllowOrigins)
	s.NotNil(cfg.JWT.PrivateKey)
	s.NotNil(cfg.JWT.PublicKey)
	s.False(cfg.GoogleEnabled())
}

func (s *ConfigTestSuite) TestLoad_GeminiDefaultModel() {
	s.T().Setenv("APP_ENV", "testing")
	s.T().Setenv("ASSISTANT_PROVIDER", "Gemini")

	cfg, err := Load()
	s.Require().NoError(err)
	s.Equal(ProviderGemini, cfg.Assistant.Provider)
	s.Equal("gemini-2.5-flash", cfg.Assistant.Model)
}

func (s *ConfigTestSuite) TestLoad_ProductionRequiresKeys() {
	s.T().Setenv("APP_ENV", "production")
	s.T().Setenv("JWT_PRIVATE_KEY", "")
	s.T().Setenv("JWT_PUBLIC_KEY", "")

	cfg, err := Load()
	s.Error(err)
	s.Nil(cfg)
}

func (s *ConfigTestSuite) TestLoad_CORSOrigins() {
	s.T().Setenv("APP_ENV", "testing")
	s.T().Setenv("CORS_ALLOW_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	s.Require().NoError(err)
	s.Equal([]string{"https://a.example", "https://b.example"}, cfg.Server.CORSAllowOrigins)
}

func (s *ConfigTestSuite) TestValidate() {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr string
	}{
		{
			name:   "valid",
			mutate: func(c *Config) {},
		},
		{
			name:    "bad port",
			mutate:  func(c *Config) { c.Server.Port = "http" },
			wantErr: "SERVER_PORT",
		},
		{
			name:    "unknown driver",
			mutate:  func(c *Config) { c.Database.Driver = "mysql" },
			wantErr: "DB_DRIVER",
		},
		{
			name: "sqlite without path",
			mutate: func(c *Config) {
				c.Database.Driver = DriverSQLite
				c.Database.SQLitePath = ""
			},
			wantErr: "SQLITE_DB_PATH",
		},
		{
			name:    "unknown provider",
			mutate:  func(c *Config) { c.Assistant.Provider = "claude" },
			wantErr: "ASSISTANT_PROVIDER",
		},
		{
			name:    "google without secret",
			mutate:  func(c *Config) { c.Google.ClientID = "client" },
			wantErr: "GOOGLE_CLIENT_SECRET",
		},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				s.NoError(err)
				return
			}
			s.Error(err)
			s.Contains(err.Error(), tt.wantErr)
		})
	}
}

func (s *ConfigTestSuite) TestDSN() {
	db := DatabaseConfig{Driver: DriverSQLite, SQLitePath: "/tmp/f.db"}
	s.Equal("/tmp/f.db", db.DSN())

	db = DatabaseConfig{Driver: DriverPostgres, Host: "h", Port: "1", User: "u", Password: "p", Name: "n", SSLMode: "disable"}
	s.Equal("host=h port=1 user=u password=p dbname=n sslmode=disable", db.DSN())
}

func TestKeyPairRoundTrip(t *testing.T) {
	privateKey, _, err := GenerateRSAKeyPair()
	require.NoError(t, err)

	privB64, pubB64, err := EncodeKeyPair(privateKey)
	require.NoError(t, err)

	decodedPriv, decodedPub, err := DecodeKeyPair(privB64, pubB64)
	require.NoError(t, err)
	assert.True(t, privateKey.Equal(decodedPriv))
	assert.True(t, privateKey.PublicKey.Equal(decodedPub))
}

func TestDecodeKeyPair_Mismatch(t *testing.T) {
	first, _, err := GenerateRSAKeyPair()
	require.NoError(t, err)
	second, _, err := GenerateRSAKeyPair()
	require.NoError(t, err)

	privB64, _, err := EncodeKeyPair(first)
	require.NoError(t, err)
	_, pubB64, err := EncodeKeyPair(second)
	require.NoError(t, err)

	_, _, err = DecodeKeyPair(privB64, pubB64)
	assert.Error(t, err)
}

func TestDecodeKeyPair_NotBase64(t *testing.T) {
	_, _, err := DecodeKeyPair("!!!", "!!!")
	assert.Error(t, err)
}

func validConfig() *Config {
	return &Config{
		Server:    ServerConfig{Port: "8080"},
		Database:  DatabaseConfig{Driver: DriverPostgres},
		Assistant: AssistantConfig{Provider: ProviderOpenAI, BaseURL: "https://api.x.ai/v1"},
		Session:   SessionConfig{MaxSessions: 10},
	}
}
