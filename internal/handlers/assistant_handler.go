package handlers

import (
	"context"
	"log/slog"
	"net/http"

	"finance-dashboard/internal/dto"
	apperrors "finance-dashboard/internal/errors"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services"
	"finance-dashboard/internal/session"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// AssistantHandler asks the language model to categorise the loaded
// statement.
type AssistantHandler struct {
	assistant services.AssistantServiceInterface
	audit     services.AuditServiceInterface
	sync      sessionSync
	provider  string
	logger    *slog.Logger
}

func NewAssistantHandler(
	assistant services.AssistantServiceInterface,
	classifier services.ClassifierInterface,
	audit services.AuditServiceInterface,
	sessions *session.Store,
	provider string,
	logger *slog.Logger,
) *AssistantHandler {
	return &AssistantHandler{
		assistant: assistant,
		audit:     audit,
		sync:      sessionSync{sessions: sessions, classifier: classifier},
		provider:  provider,
		logger:    logger,
	}
}

type assistantCall func(ctx context.Context, userID uuid.UUID, descriptions []string, habits string) (models.CategoryMap, error)

// Suggest merges a suggested mapping for the loaded descriptions into the
// caller's categories.
// @Summary Suggest categories
// @Tags Assistant
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.AssistantRequest false "spending habits"
// @Success 200 {object} SuccessResponse{data=dto.AssistantResponse}
// @Failure 503 {object} errors.ErrorResponse "ASSISTANT_001"
// @Router /assistant/suggest [post]
func (h *AssistantHandler) Suggest(c echo.Context) error {
	return h.run(c, h.assistant.Suggest, models.AuditActionAssistantMerged)
}

// Amend asks the model to rework the whole mapping so that as few rows as
// possible stay Uncategorised, and replaces the stored mapping with it.
// @Summary Amend categories
// @Tags Assistant
// @Security BearerAuth
// @Router /assistant/amend [post]
func (h *AssistantHandler) Amend(c echo.Context) error {
	return h.run(c, h.assistant.Amend, models.AuditActionAssistantAmended)
}

func (h *AssistantHandler) run(c echo.Context, call assistantCall, action string) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	var req dto.AssistantRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	st, err := h.sync.loaded(userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	ctx := c.Request().Context()
	categories, err := call(ctx, userID, st.Descriptions(), req.Habits)
	if err != nil {
		h.logger.WarnContext(ctx, "assistant request failed", "user_id", userID, "action", action, "error", err)
		return SendServiceError(c, err)
	}

	h.sync.reclassify(userID, categories)
	h.audit.LogCategoryChange(ctx, userID, action, "", map[string]interface{}{
		"provider":   h.provider,
		"categories": categories.Len(),
	})

	resp := dto.AssistantResponse{Provider: h.provider, Categories: categories}
	if updated, ok := h.sync.sessions.Get(userID); ok {
		resp.Transactions = updated.Transactions
	}
	return SendData(c, http.StatusOK, resp)
}
