package repositories

import (
	"errors"
	"fmt"
	"strings"

	"finance-dashboard/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var (
	ErrUserNotFound      = errors.New("user not found")
	ErrUserAlreadyExists = errors.New("user already exists")
)

// UserRepository handles database operations for users
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) UserRepositoryInterface {
	return &UserRepository{
		db: db,
	}
}

// Create creates a new user in the database
func (r *UserRepository) Create(user *models.User) error {
	if user == nil {
		return errors.New("user cannot be nil")
	}

	if err := r.db.Create(user).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	return nil
}

// GetByID retrieves a user by their ID
func (r *UserRepository) GetByID(id uuid.UUID) (*models.User, error) {
	var user models.User
	if err := r.db.Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID: %w", err)
	}

	return &user, nil
}

// GetByUsername looks a user up case-insensitively.
func (r *UserRepository) GetByUsername(username string) (*models.User, error) {
	var user models.User

	if err := r.db.Where("LOWER(username) = LOWER(?)", username).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by username: %w", err)
	}

	return &user, nil
}

func (r *UserRepository) GetByGoogleID(googleID string) (*models.User, error) {
	var user models.User

	if err := r.db.Where("google_id = ?", googleID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user by google id: %w", err)
	}

	return &user, nil
}

func (r *UserRepository) ExistsByUsername(username string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).
		Where("LOWER(username) = LOWER(?)", username).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return count > 0, nil
}

// Update updates a user in the database
func (r *UserRepository) Update(user *models.User) error {
	if user == nil {
		return errors.New("user cannot be nil")
	}

	if err := r.db.Save(user).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

// UpdateFields updates specific fields of a user
func (r *UserRepository) UpdateFields(userID uuid.UUID, fields map[string]interface{}) error {
	result := r.db.Model(&models.User{ID: userID}).
		Updates(fields)

	if result.Error != nil {
		if isDuplicateKeyError(result.Error) {
			return ErrUserAlreadyExists
		}
		return fmt.Errorf("failed to update user fields: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// GetCategories reads only the categories column.
func (r *UserRepository) GetCategories(userID uuid.UUID) (models.CategoryMap, error) {
	var user models.User
	err := r.db.Model(&models.User{}).
		Select("categories").
		Where("id = ?", userID).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.CategoryMap{}, ErrUserNotFound
		}
		return models.CategoryMap{}, fmt.Errorf("failed to get categories: %w", err)
	}
	return user.Categories, nil
}

// SaveCategories replaces the user's category map. The row is locked for the
// duration so concurrent writers for one user serialise.
func (r *UserRepository) SaveCategories(userID uuid.UUID, categories models.CategoryMap) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Select("id").
			Where("id = ?", userID).
			First(&user).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return fmt.Errorf("failed to lock user: %w", err)
		}

		if err := tx.Model(&models.User{ID: userID}).
			Updates(map[string]interface{}{"categories": categories}).Error; err != nil {
			return fmt.Errorf("failed to save categories: %w", err)
		}
		return nil
	})
}

// Delete removes a user; tokens cascade.
func (r *UserRepository) Delete(userID uuid.UUID) error {
	result := r.db.Delete(&models.User{ID: userID})
	if result.Error != nil {
		return fmt.Errorf("failed to delete user: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// ListUsers lists users with pagination
func (r *UserRepository) ListUsers(offset, limit int) ([]*models.User, int64, error) {
	var users []*models.User
	var total int64

	if err := r.db.Model(&models.User{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count users: %w", err)
	}

	if err := r.db.Order("username ASC").Offset(offset).Limit(limit).Find(&users).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list users: %w", err)
	}

	return users, total, nil
}

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	errStr := err.Error()
	return strings.Contains(errStr, "duplicate key") ||
		strings.Contains(errStr, "UNIQUE constraint") ||
		strings.Contains(errStr, "23505")
}
