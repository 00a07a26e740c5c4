package config

import (
	"crypto/rsa"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

type Config struct {
	Server    ServerConfig
	Database  DatabaseConfig
	JWT       JWTConfig
	Security  SecurityConfig
	Google    GoogleConfig
	Assistant AssistantConfig
	Storage   StorageConfig
	BankFeed  BankFeedConfig
	Log       LogConfig
	Session   SessionConfig
}

type ServerConfig struct {
	Port             string
	Host             string
	Environment      string
	ReadTimeout      time.Duration
	WriteTimeout     time.Duration
	ShutdownTimeout  time.Duration
	MaxUploadBytes   int64
	CORSAllowOrigins []string
}

type DatabaseConfig struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	Name            string
	SSLMode         string
	SQLitePath      string
	MaxConnections  int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	AutoMigrate     bool
	MigrationsPath  string
	SeedDatabase    bool
	SeedsPath       string
}

type JWTConfig struct {
	AccessTokenDuration  time.Duration
	RefreshTokenDuration time.Duration
	PrivateKey           *rsa.PrivateKey
	PublicKey            *rsa.PublicKey
	Issuer               string
}

type SecurityConfig struct {
	BCryptCost         int
	RateLimitPerSecond int
	PasswordMinLength  int
}

// GoogleConfig holds the OAuth client used for Google sign-in. Sign-in is
// disabled when ClientID is empty.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

type AssistantConfig struct {
	Provider string
	APIKey   string
	BaseURL  string
	Model    string
	Timeout  time.Duration
}

// StorageConfig configures the raw statement archive. Archiving is off when
// Bucket is empty.
type StorageConfig struct {
	Bucket string
	Prefix string
}

type BankFeedConfig struct {
	APIKey  string
	BaseURL string
	Timeout time.Duration
}

type LogConfig struct {
	Level      string
	Dir        string
	MaxSizeMB  int
	MaxBackups int
}

type SessionConfig struct {
	MaxSessions int
	TTL         time.Duration
}

func Load() (*Config, error) {
	config := &Config{
		Server: ServerConfig{
			Port:            getEnv("SERVER_PORT", "8080"),
			Host:            getEnv("SERVER_HOST", "localhost"),
			Environment:     getEnv("APP_ENV", "development"),
			ReadTimeout:     getDurationEnv("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout:    getDurationEnv("SERVER_WRITE_TIMEOUT", 60*time.Second),
			ShutdownTimeout: getDurationEnv("SERVER_SHUTDOWN_TIMEOUT", 10*time.Second),
			MaxUploadBytes:  int64(getIntEnv("MAX_UPLOAD_BYTES", 10<<20)),
		},
		Database: DatabaseConfig{
			Driver:          getEnv("DB_DRIVER", DriverPostgres),
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnv("DB_PORT", "5432"),
			User:            getEnv("DB_USER", "finance_user"),
			Password:        getEnv("DB_PASSWORD", "finance_password"),
			Name:            getEnv("DB_NAME", "finance_db"),
			SSLMode:         getEnv("DB_SSL_MODE", "disable"),
			SQLitePath:      getEnv("SQLITE_DB_PATH", "./data/finance.db"),
			MaxConnections:  getIntEnv("DB_MAX_CONNECTIONS", 25),
			MaxIdleConns:    getIntEnv("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			AutoMigrate:     getBoolEnv("AUTO_MIGRATE", true),
			MigrationsPath:  getEnv("MIGRATIONS_PATH", "db/migrations"),
			SeedDatabase:    getBoolEnv("SEED_DATABASE", false),
			SeedsPath:       getEnv("SEEDS_PATH", "db/seeds"),
		},
		Security: SecurityConfig{
			BCryptCost:         getIntEnv("BCRYPT_COST", 12),
			RateLimitPerSecond: getIntEnv("RATE_LIMIT_PER_SECOND", 10),
			PasswordMinLength:  getIntEnv("PASSWORD_MIN_LENGTH", 8),
		},
		JWT: JWTConfig{
			AccessTokenDuration:  getDurationEnv("JWT_ACCESS_TOKEN_DURATION", 15*time.Minute),
			RefreshTokenDuration: getDurationEnv("JWT_REFRESH_TOKEN_DURATION", 7*24*time.Hour),
			Issuer:               getEnv("JWT_ISSUER", "finance-dashboard"),
		},
		Google: GoogleConfig{
			ClientID:     getEnv("GOOGLE_CLIENT_ID", ""),
			ClientSecret: getEnv("GOOGLE_CLIENT_SECRET", ""),
			RedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "http://localhost:8080/api/v1/auth/google/callback"),
		},
		Assistant: AssistantConfig{
			Provider: strings.ToLower(getEnv("ASSISTANT_PROVIDER", ProviderOpenAI)),
			APIKey:   getEnv("ASSISTANT_API_KEY", ""),
			BaseURL:  getEnv("ASSISTANT_BASE_URL", "https://api.x.ai/v1"),
			Model:    getEnv("ASSISTANT_MODEL", "grok-3-mini-fast-beta"),
			Timeout:  getDurationEnv("ASSISTANT_TIMEOUT", 60*time.Second),
		},
		Storage: StorageConfig{
			Bucket: getEnv("STATEMENT_ARCHIVE_BUCKET", ""),
			Prefix: getEnv("STATEMENT_ARCHIVE_PREFIX", "statements"),
		},
		BankFeed: BankFeedConfig{
			APIKey:  getEnv("BANKFEED_API_KEY", ""),
			BaseURL: getEnv("BANKFEED_BASE_URL", "https://bankaccountdata-sandbox.gocardless.com/api/v2"),
			Timeout: getDurationEnv("BANKFEED_TIMEOUT", 30*time.Second),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Dir:        getEnv("LOG_DIR", ""),
			MaxSizeMB:  getIntEnv("LOG_MAX_SIZE_MB", 100),
			MaxBackups: getIntEnv("LOG_MAX_BACKUPS", 3),
		},
		Session: SessionConfig{
			MaxSessions: getIntEnv("SESSION_MAX", 1000),
			TTL:         getDurationEnv("SESSION_TTL", 2*time.Hour),
		},
	}

	if config.Assistant.Provider == ProviderGemini && os.Getenv("ASSISTANT_MODEL") == "" {
		config.Assistant.Model = "gemini-2.5-flash"
	}

	config.Server.CORSAllowOrigins = config.loadCORSAllowOrigins()

	var err error
	config.JWT.PrivateKey, config.JWT.PublicKey, err = config.loadJWTKeys()
	if err != nil {
		return nil, fmt.Errorf("failed to load RSA keys: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks the settings that would otherwise fail late, at first use.
func (c *Config) Validate() error {
	var problems []string

	if port, err := strconv.Atoi(c.Server.Port); err != nil || port < 1 || port > 65535 {
		problems = append(problems, fmt.Sprintf("invalid SERVER_PORT %q", c.Server.Port))
	}

	switch c.Database.Driver {
	case DriverPostgres:
	case DriverSQLite:
		if c.Database.SQLitePath == "" {
			problems = append(problems, "SQLITE_DB_PATH cannot be empty with the sqlite driver")
		}
	default:
		problems = append(problems, fmt.Sprintf("invalid DB_DRIVER %q: must be %s or %s", c.Database.Driver, DriverPostgres, DriverSQLite))
	}

	switch c.Assistant.Provider {
	case ProviderOpenAI:
		if _, err := url.ParseRequestURI(c.Assistant.BaseURL); err != nil {
			problems = append(problems, fmt.Sprintf("invalid ASSISTANT_BASE_URL %q", c.Assistant.BaseURL))
		}
	case ProviderGemini:
	default:
		problems = append(problems, fmt.Sprintf("invalid ASSISTANT_PROVIDER %q: must be %s or %s", c.Assistant.Provider, ProviderOpenAI, ProviderGemini))
	}

	if c.Google.ClientID != "" && c.Google.ClientSecret == "" {
		problems = append(problems, "GOOGLE_CLIENT_SECRET is required when GOOGLE_CLIENT_ID is set")
	}

	if c.Session.MaxSessions <= 0 {
		problems = append(problems, "SESSION_MAX must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}
	return nil
}

func (c *DatabaseConfig) DSN() string {
	if c.Driver == DriverSQLite {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode)
}

func (c *Config) IsDevelopment() bool {
	return c.Server.Environment == "development"
}

func (c *Config) IsProduction() bool {
	return c.Server.Environment == "production"
}

func (c *Config) IsTesting() bool {
	return c.Server.Environment == "testing"
}

func (c *Config) GoogleEnabled() bool {
	return c.Google.ClientID != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func (c *Config) loadCORSAllowOrigins() []string {
	corsOrigins := os.Getenv("CORS_ALLOW_ORIGINS")
	if corsOrigins == "" {
		if c.IsProduction() {
			slog.Warn("CORS_ALLOW_ORIGINS not set in production, allowing all origins")
		}
		return []string{"*"}
	}

	origins := strings.Split(corsOrigins, ",")
	for i, origin := range origins {
		origins[i] = strings.TrimSpace(origin)
	}
	return origins
}
