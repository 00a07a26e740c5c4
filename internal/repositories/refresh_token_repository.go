package repositories

import (
	"errors"
	"fmt"
	"time"

	"finance-dashboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrRefreshTokenNotFound = errors.New("refresh token not found")
	// ErrRefreshTokenRotated means another request rotated the token first.
	ErrRefreshTokenRotated = errors.New("refresh token already rotated")
)

type refreshTokenRepository struct {
	db *gorm.DB
}

func NewRefreshTokenRepository(db *gorm.DB) RefreshTokenRepositoryInterface {
	return &refreshTokenRepository{db: db}
}

func (r *refreshTokenRepository) Create(token *models.RefreshToken) error {
	if token == nil {
		return errors.New("refresh token cannot be nil")
	}
	if err := r.db.Create(token).Error; err != nil {
		return fmt.Errorf("failed to store refresh token for user %s: %w", token.UserID, err)
	}
	return nil
}

// GetByTokenHash returns the stored token whether or not it is still usable;
// callers decide between reuse, expiry and rotation.
func (r *refreshTokenRepository) GetByTokenHash(tokenHash string) (*models.RefreshToken, error) {
	var token models.RefreshToken
	err := r.db.Where("token_hash = ?", tokenHash).Take(&token).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return nil, ErrRefreshTokenNotFound
	case err != nil:
		return nil, fmt.Errorf("failed to look up refresh token: %w", err)
	}
	return &token, nil
}

// Rotate persists token.RevokedAt and token.ReplacedByID, but only while the
// stored row is still unrevoked, so one token yields at most one successor.
func (r *refreshTokenRepository) Rotate(token *models.RefreshToken) error {
	if token == nil || token.RevokedAt == nil || token.ReplacedByID == nil {
		return errors.New("rotation needs a revoked token with a successor")
	}

	res := r.db.Model(&models.RefreshToken{}).
		Where("id = ? AND revoked_at IS NULL", token.ID).
		Updates(map[string]interface{}{
			"revoked_at":     *token.RevokedAt,
			"replaced_by_id": *token.ReplacedByID,
		})
	if res.Error != nil {
		return fmt.Errorf("failed to rotate refresh token %s: %w", token.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrRefreshTokenRotated
	}
	return nil
}

// RevokeAllForUser ends every session chain of the user. Used on logout and
// when a rotated token is presented again.
func (r *refreshTokenRepository) RevokeAllForUser(userID uuid.UUID) error {
	err := r.db.Model(&models.RefreshToken{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", time.Now()).Error
	if err != nil {
		return fmt.Errorf("failed to revoke refresh tokens for user %s: %w", userID, err)
	}
	return nil
}

func (r *refreshTokenRepository) DeleteExpired() (int64, error) {
	res := r.db.Where("expires_at < ?", time.Now()).Delete(&models.RefreshToken{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete expired refresh tokens: %w", res.Error)
	}
	return res.RowsAffected, nil
}

// DeleteRevokedOlderThan drops rotated and revoked rows once they are past
// the reuse-detection window.
func (r *refreshTokenRepository) DeleteRevokedOlderThan(retention time.Duration) (int64, error) {
	res := r.db.Where("revoked_at IS NOT NULL AND revoked_at < ?", time.Now().Add(-retention)).
		Delete(&models.RefreshToken{})
	if res.Error != nil {
		return 0, fmt.Errorf("failed to delete revoked refresh tokens: %w", res.Error)
	}
	return res.RowsAffected, nil
}
