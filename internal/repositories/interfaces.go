package repositories

import (
	"time"

	"finance-dashboard/internal/models"

	"github.com/google/uuid"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	GetByGoogleID(googleID string) (*models.User, error)
	ExistsByUsername(username string) (bool, error)
	Update(user *models.User) error
	UpdateFields(userID uuid.UUID, fields map[string]interface{}) error
	GetCategories(userID uuid.UUID) (models.CategoryMap, error)
	SaveCategories(userID uuid.UUID, categories models.CategoryMap) error
	Delete(userID uuid.UUID) error
	ListUsers(offset, limit int) ([]*models.User, int64, error)
}

// AuditLogRepositoryInterface defines the contract for audit log repository operations
type AuditLogRepositoryInterface interface {
	Create(log *models.AuditLog) error
	GetByID(id uuid.UUID) (*models.AuditLog, error)
	GetByUserID(userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error)
	GetByAction(action string, offset, limit int) ([]*models.AuditLog, int64, error)
	GetByResource(resource, resourceID string, offset, limit int) ([]*models.AuditLog, int64, error)
	GetByTimeRange(startTime, endTime time.Time, offset, limit int) ([]*models.AuditLog, int64, error)
	CountFailedLogins(username string, since time.Time) (int64, error)
	DeleteOlderThan(duration time.Duration) (int64, error)
}

type RefreshTokenRepositoryInterface interface {
	Create(token *models.RefreshToken) error
	GetByTokenHash(tokenHash string) (*models.RefreshToken, error)
	Rotate(token *models.RefreshToken) error
	RevokeAllForUser(userID uuid.UUID) error
	DeleteExpired() (int64, error)
	DeleteRevokedOlderThan(retention time.Duration) (int64, error)
}

// BlacklistedTokenRepositoryInterface defines the contract for blacklisted token repository operations
type BlacklistedTokenRepositoryInterface interface {
	Create(token *models.BlacklistedToken) error
	GetByJTI(jti string) (*models.BlacklistedToken, error)
	IsBlacklisted(jti string) (bool, error)
	DeleteExpired() (int64, error)
}
