package repositories

import (
	"errors"
	"time"

	"finance-dashboard/internal/models"

	"gorm.io/gorm"
)

var (
	ErrTokenNotFound = errors.New("token not found")
)

type blacklistedTokenRepository struct {
	db *gorm.DB
}

// NewBlacklistedTokenRepository creates a new blacklisted token repository
func NewBlacklistedTokenRepository(db *gorm.DB) BlacklistedTokenRepositoryInterface {
	return &blacklistedTokenRepository{db: db}
}

// Create adds a token to the blacklist
func (r *blacklistedTokenRepository) Create(token *models.BlacklistedToken) error {
	if token == nil {
		return errors.New("blacklisted token cannot be nil")
	}
	token.BlacklistedAt = time.Now()
	if err := r.db.Create(token).Error; err != nil {
		if isDuplicateKeyError(err) {
			return nil
		}
		return err
	}
	return nil
}

// GetByJTI retrieves a blacklisted token by its JTI
func (r *blacklistedTokenRepository) GetByJTI(jti string) (*models.BlacklistedToken, error) {
	var token models.BlacklistedToken
	err := r.db.Where("jti = ?", jti).First(&token).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTokenNotFound
		}
		return nil, err
	}
	return &token, nil
}

func (r *blacklistedTokenRepository) IsBlacklisted(jti string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.BlacklistedToken{}).Where("jti = ?", jti).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// DeleteExpired removes expired tokens from the blacklist
func (r *blacklistedTokenRepository) DeleteExpired() (int64, error) {
	result := r.db.Where("expires_at < ?", time.Now()).Delete(&models.BlacklistedToken{})
	return result.RowsAffected, result.Error
}
