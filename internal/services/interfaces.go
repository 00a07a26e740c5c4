package services

import (
	"context"
	"io"
	"time"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"

	"github.com/google/uuid"
)

// CategoryStoreInterface persists one category map per user.
type CategoryStoreInterface interface {
	// Get never fails; a missing record or a read error yields the default map
	Get(ctx context.Context, userID uuid.UUID) models.CategoryMap
	Put(ctx context.Context, userID uuid.UUID, categories models.CategoryMap) error
	AddCategory(ctx context.Context, userID uuid.UUID, name string) error
	AddKeyword(ctx context.Context, userID uuid.UUID, category, keyword string) error
	RemoveKeyword(ctx context.Context, userID uuid.UUID, category, keyword string) error
	DeleteCategory(ctx context.Context, userID uuid.UUID, name string) error
	Merge(ctx context.Context, userID uuid.UUID, suggestion models.CategoryMap) (models.CategoryMap, error)
}

type StatementLoaderInterface interface {
	// Load parses a statement and classifies it against snapshot
	Load(ctx context.Context, fileName string, r io.Reader, snapshot models.CategoryMap) (*models.LoadResult, error)
}

type ClassifierInterface interface {
	Classify(transactions []models.Transaction, snapshot models.CategoryMap) []models.Transaction
	Override(ctx context.Context, userID uuid.UUID, transaction models.Transaction, newCategory string) (models.Transaction, error)
	ApplyChanges(ctx context.Context, userID uuid.UUID, transactions []models.Transaction, changes []models.CategoryChange) (*models.ApplyResult, error)
}

type LedgerInterface interface {
	Filter(transactions []models.Transaction, filter models.LedgerFilter) []models.Transaction
	Partition(transactions []models.Transaction) (debits, credits, unknown []models.Transaction)
	TotalsByCategory(transactions []models.Transaction) []models.CategoryTotal
	RunningBalance(transactions []models.Transaction) []models.BalancePoint
	Summary(transactions []models.Transaction) models.LedgerSummary
}

// AssistantClientInterface is a text-in, text-out language model call.
type AssistantClientInterface interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (string, error)
	Name() string
}

type AssistantServiceInterface interface {
	Suggest(ctx context.Context, userID uuid.UUID, descriptions []string, habits string) (models.CategoryMap, error)
	Amend(ctx context.Context, userID uuid.UUID, descriptions []string, habits string) (models.CategoryMap, error)
}

type BankFeedServiceInterface interface {
	Link(ctx context.Context, institutionID, redirectURL string) (*dto.BankFeedLinkResponse, error)
	Accounts(ctx context.Context, connectionID string) ([]models.FeedAccount, error)
	Transactions(ctx context.Context, accountID string) ([]models.Transaction, error)
	Import(ctx context.Context, connectionID string) ([]models.Transaction, error)
}

// StatementArchiveInterface keeps a copy of every uploaded statement.
type StatementArchiveInterface interface {
	Store(ctx context.Context, userID uuid.UUID, fileName string, content []byte) (string, error)
	Close() error
}

type GoogleIdentityServiceInterface interface {
	Enabled() bool
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*models.ExternalIdentity, error)
	SignIn(ctx context.Context, identity *models.ExternalIdentity, ipAddress, userAgent string) (*models.User, *dto.TokenResponse, error)
}

type AuditServiceInterface interface {
	Record(ctx context.Context, log *models.AuditLog) error
	GetUserActivity(userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
	LogCategoryChange(ctx context.Context, userID uuid.UUID, action, category string, metadata map[string]interface{})
	LogStatementLoaded(ctx context.Context, userID uuid.UUID, fileName string, rows, unknownTypes int)
	LogBankFeedImported(ctx context.Context, userID uuid.UUID, connectionID string, rows int)
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}

type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest, ipAddress, userAgent string) (*models.User, error)
	Login(req *dto.LoginRequest, ipAddress, userAgent string) (*dto.TokenResponse, error)
	RefreshTokens(refreshToken, ipAddress, userAgent string) (*dto.TokenResponse, error)
	Logout(accessToken, ipAddress, userAgent string) error
	IssueTokens(user *models.User) (*dto.TokenResponse, error)
	PruneTokens(revokedRetention time.Duration) error
}

type TokenServiceInterface interface {
	GenerateAccessToken(user *models.User) (string, time.Time, error)
	GenerateRefreshToken(userID uuid.UUID) (string, time.Time, error)
	ValidateAccessToken(tokenString string) (*models.CustomClaims, error)
	ValidateRefreshToken(tokenString string) (*models.CustomClaims, error)
	ExtractTokenFromHeader(authHeader string) (string, error)
	GetJTI(tokenString string) (string, error)
	GetTokenExpiry(tokenString string) (time.Time, error)
}

type PasswordServiceInterface interface {
	ValidatePassword(password string) error
	ValidateConfirmation(password, confirmation string) error
	HashPassword(password string) (string, error)
	ComparePassword(password, hash string) bool
	PasswordStrength(password string) int
}

type CircuitBreakerInterface interface {
	IsOpen() bool
	RecordSuccess()
	RecordFailure()
	GetState() models.CircuitBreakerState
	Reset()
	GetFailureCount() int
}
