package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrCategoryProtected = errors.New("the Uncategorised category cannot be removed")
	ErrCategoryNotFound  = errors.New("category not found")
	ErrKeywordNotFound   = errors.New("keyword not found")
)

type categoryStore struct {
	userRepo repositories.UserRepositoryInterface
	metrics  MetricsRecorderInterface
	logger   *slog.Logger

	locks sync.Map // uuid.UUID -> *sync.Mutex
}

// NewCategoryStore returns a store backed by the categories column of the
// users table. Writes for one user are serialised so concurrent keyword
// additions do not overwrite each other.
func NewCategoryStore(userRepo repositories.UserRepositoryInterface, metrics MetricsRecorderInterface, logger *slog.Logger) CategoryStoreInterface {
	return &categoryStore{
		userRepo: userRepo,
		metrics:  metrics,
		logger:   logger,
	}
}

func (s *categoryStore) Get(ctx context.Context, userID uuid.UUID) models.CategoryMap {
	categories, err := s.userRepo.GetCategories(userID)
	if err != nil {
		if !errors.Is(err, repositories.ErrUserNotFound) {
			s.logger.ErrorContext(ctx, "failed to read categories, using defaults",
				"user_id", userID,
				"error", err,
			)
			s.count("category.read.failed", "get")
		}
		return models.DefaultCategoryMap()
	}
	if categories.IsEmpty() {
		return models.DefaultCategoryMap()
	}
	return categories
}

// Put replaces the user's whole mapping. Categories live on the user row, so
// an unknown user id is ErrUserNotFound rather than a new record.
func (s *categoryStore) Put(ctx context.Context, userID uuid.UUID, categories models.CategoryMap) error {
	unlock := s.lock(userID)
	defer unlock()

	return s.save(ctx, userID, categories, "put")
}

func (s *categoryStore) AddCategory(ctx context.Context, userID uuid.UUID, name string) error {
	if strings.TrimSpace(name) == "" {
		return models.ErrEmptyCategoryName
	}

	return s.update(ctx, userID, "add_category", func(m *models.CategoryMap) (bool, error) {
		return m.AddCategory(name)
	})
}

func (s *categoryStore) AddKeyword(ctx context.Context, userID uuid.UUID, category, keyword string) error {
	if strings.TrimSpace(keyword) == "" {
		return models.ErrBlankKeyword
	}
	if strings.TrimSpace(category) == "" {
		return models.ErrEmptyCategoryName
	}

	return s.update(ctx, userID, "add_keyword", func(m *models.CategoryMap) (bool, error) {
		return m.AddKeyword(category, keyword)
	})
}

func (s *categoryStore) RemoveKeyword(ctx context.Context, userID uuid.UUID, category, keyword string) error {
	return s.update(ctx, userID, "remove_keyword", func(m *models.CategoryMap) (bool, error) {
		if !m.Has(category) {
			return false, ErrCategoryNotFound
		}
		if !m.RemoveKeyword(category, keyword) {
			return false, ErrKeywordNotFound
		}
		return true, nil
	})
}

func (s *categoryStore) DeleteCategory(ctx context.Context, userID uuid.UUID, name string) error {
	if strings.TrimSpace(name) == models.UncategorisedCategory {
		return ErrCategoryProtected
	}

	return s.update(ctx, userID, "delete_category", func(m *models.CategoryMap) (bool, error) {
		if !m.Delete(name) {
			return false, ErrCategoryNotFound
		}
		return true, nil
	})
}

// Merge adds a suggested mapping to the stored one and returns the result.
func (s *categoryStore) Merge(ctx context.Context, userID uuid.UUID, suggestion models.CategoryMap) (models.CategoryMap, error) {
	unlock := s.lock(userID)
	defer unlock()

	merged := s.Get(ctx, userID).Clone()
	merged.Merge(suggestion)
	merged = merged.WithUncategorised()

	if err := s.save(ctx, userID, merged, "merge"); err != nil {
		return models.CategoryMap{}, err
	}
	return merged, nil
}

// update runs a read-modify-write under the user's lock. mutate reports
// whether anything changed; unchanged maps are not written.
func (s *categoryStore) update(ctx context.Context, userID uuid.UUID, op string, mutate func(*models.CategoryMap) (bool, error)) error {
	unlock := s.lock(userID)
	defer unlock()

	current := s.Get(ctx, userID).Clone()
	changed, err := mutate(&current)
	if err != nil {
		return err
	}
	if !changed {
		return nil
	}
	return s.save(ctx, userID, current, op)
}

func (s *categoryStore) save(ctx context.Context, userID uuid.UUID, categories models.CategoryMap, op string) error {
	if err := s.userRepo.SaveCategories(userID, categories); err != nil {
		s.logger.ErrorContext(ctx, "failed to save categories",
			"user_id", userID,
			"operation", op,
			"error", err,
		)
		s.count("category.write.failed", op)
		return fmt.Errorf("failed to save categories: %w", err)
	}

	s.count("category.write.success", op)
	return nil
}

func (s *categoryStore) lock(userID uuid.UUID) func() {
	v, _ := s.locks.LoadOrStore(userID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

func (s *categoryStore) count(name, op string) {
	s.metrics.IncrementCounter(name, map[string]string{"operation": op})
}
