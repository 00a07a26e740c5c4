package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"finance-dashboard/internal/logging"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"

	"github.com/google/uuid"
)

var (
	ErrInvalidUserID   = errors.New("invalid user ID")
	ErrInvalidAuditLog = errors.New("invalid audit log")
)

var validActions = map[string]bool{
	models.AuditActionRegister:         true,
	models.AuditActionLogin:            true,
	models.AuditActionFailedLogin:      true,
	models.AuditActionLogout:           true,
	models.AuditActionTokenRefresh:     true,
	models.AuditActionExternalSignIn:   true,
	models.AuditActionCategoriesPut:    true,
	models.AuditActionCategoryAdded:    true,
	models.AuditActionCategoryDeleted:  true,
	models.AuditActionKeywordAdded:     true,
	models.AuditActionKeywordRemoved:   true,
	models.AuditActionStatementLoaded:  true,
	models.AuditActionOverride:         true,
	models.AuditActionAssistantMerged:  true,
	models.AuditActionAssistantAmended: true,
	models.AuditActionBankFeedImported: true,
}

// ValidateActivityType rejects actions that are not part of the audit vocabulary.
func ValidateActivityType(action string) error {
	if !validActions[action] {
		return fmt.Errorf("invalid activity type: %s", action)
	}
	return nil
}

// AuditService stores audit entries and mirrors each one to the structured
// log. Storage failures are logged and never fail the caller's operation.
type AuditService struct {
	repo   repositories.AuditLogRepositoryInterface
	logger *slog.Logger
}

func NewAuditService(repo repositories.AuditLogRepositoryInterface, logger *slog.Logger) AuditServiceInterface {
	return &AuditService{
		repo:   repo,
		logger: logger,
	}
}

func (s *AuditService) Record(ctx context.Context, log *models.AuditLog) error {
	if log == nil {
		return ErrInvalidAuditLog
	}
	if err := ValidateActivityType(log.Action); err != nil {
		return err
	}

	s.logger.InfoContext(ctx, "audit event",
		slog.String("event_type", log.Action),
		slog.String("resource", log.Resource),
		slog.String("resource_id", log.ResourceID),
		slog.Any("metadata", map[string]interface{}(log.Metadata)),
		slog.Time("timestamp", time.Now()),
		slog.String("correlation_id", logging.TraceIDFromContext(ctx)),
	)

	if err := s.repo.Create(log); err != nil {
		return fmt.Errorf("failed to create audit log: %w", err)
	}
	return nil
}

func (s *AuditService) GetUserActivity(userID uuid.UUID, offset, limit int) ([]*models.AuditLog, int64, error) {
	if userID == uuid.Nil {
		return nil, 0, ErrInvalidUserID
	}
	return s.repo.GetByUserID(userID, offset, limit)
}

// LogCategoryChange records a change to a user's category map. category may
// be empty for whole-map changes.
func (s *AuditService) LogCategoryChange(ctx context.Context, userID uuid.UUID, action, category string, metadata map[string]interface{}) {
	log := models.NewAuditLog(&userID, action, models.AuditResourceCategories, category)
	for k, v := range metadata {
		log.SetMetadata(k, v)
	}
	s.record(ctx, log)
}

func (s *AuditService) LogStatementLoaded(ctx context.Context, userID uuid.UUID, fileName string, rows, unknownTypes int) {
	log := models.NewAuditLog(&userID, models.AuditActionStatementLoaded, models.AuditResourceStatement, fileName).
		SetMetadata("rows", rows).
		SetMetadata("unknown_types", unknownTypes)
	s.record(ctx, log)
}

func (s *AuditService) LogBankFeedImported(ctx context.Context, userID uuid.UUID, connectionID string, rows int) {
	log := models.NewAuditLog(&userID, models.AuditActionBankFeedImported, models.AuditResourceStatement, connectionID).
		SetMetadata("rows", rows)
	s.record(ctx, log)
}

func (s *AuditService) record(ctx context.Context, log *models.AuditLog) {
	if err := s.Record(ctx, log); err != nil {
		s.logger.ErrorContext(ctx, "failed to record audit event",
			"error", err,
			"action", log.Action,
			"resource_id", log.ResourceID,
		)
	}
}
