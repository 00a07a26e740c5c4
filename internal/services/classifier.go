package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"finance-dashboard/internal/models"

	"github.com/google/uuid"
)

var ErrRowNotFound = errors.New("transaction row not found")

type classifier struct {
	store   CategoryStoreInterface
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

func NewClassifier(store CategoryStoreInterface, metrics MetricsRecorderInterface, logger *slog.Logger) ClassifierInterface {
	return &classifier{
		store:   store,
		metrics: metrics,
		logger:  logger,
	}
}

// Classify returns a copy of transactions with categories assigned from the
// snapshot. A description matches a keyword only when the whole trimmed,
// lower-cased strings are equal. Categories are visited in insertion order and
// the last match wins.
func (c *classifier) Classify(transactions []models.Transaction, snapshot models.CategoryMap) []models.Transaction {
	out := make([]models.Transaction, len(transactions))
	copy(out, transactions)
	for i := range out {
		out[i].Category = models.UncategorisedCategory
	}

	for _, entry := range snapshot.Entries() {
		if entry.Name == models.UncategorisedCategory || len(entry.Keywords) == 0 {
			continue
		}

		keywords := make(map[string]struct{}, len(entry.Keywords))
		for _, k := range entry.Keywords {
			keywords[models.NormalizeKeyword(k)] = struct{}{}
		}

		for i := range out {
			if _, ok := keywords[models.NormalizeKeyword(out[i].Description)]; ok {
				out[i].Category = entry.Name
			}
		}
	}

	return out
}

// Override moves one transaction to newCategory and teaches the store its
// description. The returned transaction carries the new category even when
// the keyword could not be stored.
func (c *classifier) Override(ctx context.Context, userID uuid.UUID, transaction models.Transaction, newCategory string) (models.Transaction, error) {
	newCategory = strings.TrimSpace(newCategory)
	if newCategory == "" {
		return transaction, models.ErrEmptyCategoryName
	}

	transaction.Category = newCategory

	if err := c.store.AddKeyword(ctx, userID, newCategory, transaction.Description); err != nil {
		c.logger.WarnContext(ctx, "override applied but keyword not stored",
			"user_id", userID,
			"row", transaction.Row,
			"category", newCategory,
			"error", err,
		)
		c.metrics.IncrementCounter("category.override", map[string]string{"status": "keyword_failed"})
		return transaction, fmt.Errorf("failed to store keyword for row %d: %w", transaction.Row, err)
	}

	c.metrics.IncrementCounter("category.override", map[string]string{"status": "success"})
	return transaction, nil
}

// ApplyChanges overrides every row whose category actually changes. Unknown
// rows reject the whole batch before anything is touched; keyword failures are
// collected per row.
func (c *classifier) ApplyChanges(ctx context.Context, userID uuid.UUID, transactions []models.Transaction, changes []models.CategoryChange) (*models.ApplyResult, error) {
	out := make([]models.Transaction, len(transactions))
	copy(out, transactions)

	index := make(map[int]int, len(out))
	for i, txn := range out {
		index[txn.Row] = i
	}
	for _, change := range changes {
		if _, ok := index[change.Row]; !ok {
			return nil, fmt.Errorf("%w: %d", ErrRowNotFound, change.Row)
		}
	}

	result := &models.ApplyResult{
		Applied: []models.CategoryChange{},
	}

	for _, change := range changes {
		i := index[change.Row]
		category := strings.TrimSpace(change.Category)
		if category == "" {
			result.Failures = append(result.Failures, models.ChangeFailure{Row: change.Row, Category: change.Category, Error: models.ErrEmptyCategoryName.Error()})
			continue
		}
		if out[i].Category == category {
			result.Unchanged++
			continue
		}

		updated, err := c.Override(ctx, userID, out[i], category)
		out[i] = updated
		result.Applied = append(result.Applied, models.CategoryChange{Row: change.Row, Category: category})
		if err != nil {
			result.Failures = append(result.Failures, models.ChangeFailure{Row: change.Row, Category: category, Error: err.Error()})
		}
	}

	result.Transactions = out
	c.logger.InfoContext(ctx, "category changes applied",
		"user_id", userID,
		"applied", len(result.Applied),
		"unchanged", result.Unchanged,
		"failures", len(result.Failures),
	)
	return result, nil
}
