package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"finance-dashboard/internal/dto"
	apperrors "finance-dashboard/internal/errors"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services"
	"finance-dashboard/internal/session"
	"finance-dashboard/internal/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// CategoryHandler edits the caller's category map. Every successful write is
// reflected in the loaded statement.
type CategoryHandler struct {
	store  services.CategoryStoreInterface
	audit  services.AuditServiceInterface
	sync   sessionSync
	logger *slog.Logger
}

func NewCategoryHandler(
	store services.CategoryStoreInterface,
	classifier services.ClassifierInterface,
	audit services.AuditServiceInterface,
	sessions *session.Store,
	logger *slog.Logger,
) *CategoryHandler {
	return &CategoryHandler{
		store:  store,
		audit:  audit,
		sync:   sessionSync{sessions: sessions, classifier: classifier},
		logger: logger,
	}
}

// List returns the category map in insertion order
// @Summary List categories
// @Tags Categories
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.CategoriesResponse}
// @Router /categories [get]
func (h *CategoryHandler) List(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	return h.respond(c, http.StatusOK, h.store.Get(c.Request().Context(), userID))
}

// Replace stores a whole new map
// @Summary Replace categories
// @Tags Categories
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.ReplaceCategoriesRequest true "Categories"
// @Success 200 {object} SuccessResponse{data=dto.CategoriesResponse}
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_001 or CATEGORY_001"
// @Failure 500 {object} errors.ErrorResponse "CATEGORY_005"
// @Router /categories [put]
func (h *CategoryHandler) Replace(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	var req dto.ReplaceCategoriesRequest
	if err := c.Bind(&req); err != nil {
		return SendError(c, apperrors.ValidationGeneral, apperrors.WithDetails("categories must be an object of string arrays"))
	}
	for _, name := range req.Categories.Names() {
		if len([]rune(name)) > validation.MaxCategoryNameLength {
			return SendError(c, apperrors.CategoryInvalidName, apperrors.WithDetails(name))
		}
	}

	categories := req.Categories.WithUncategorised()
	ctx := c.Request().Context()
	if err := h.store.Put(ctx, userID, categories); err != nil {
		h.logger.ErrorContext(ctx, "categories not saved", "user_id", userID, "error", err)
		return SendError(c, apperrors.CategorySaveFailed)
	}

	h.audit.LogCategoryChange(ctx, userID, models.AuditActionCategoriesPut, "", map[string]interface{}{
		"categories": categories.Len(),
	})
	return h.changed(c, userID)
}

// Create adds an empty category. An existing name is not an error.
func (h *CategoryHandler) Create(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	var req dto.CreateCategoryRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	ctx := c.Request().Context()
	name := strings.TrimSpace(req.Name)
	if err := h.store.AddCategory(ctx, userID, name); err != nil {
		return h.writeFailed(c, userID, err)
	}

	h.audit.LogCategoryChange(ctx, userID, models.AuditActionCategoryAdded, name, nil)
	return h.changed(c, userID)
}

// Delete removes a category and its keywords. Uncategorised is protected.
func (h *CategoryHandler) Delete(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	ctx := c.Request().Context()
	name := c.Param("name")
	if err := h.store.DeleteCategory(ctx, userID, name); err != nil {
		return h.writeFailed(c, userID, err)
	}

	h.audit.LogCategoryChange(ctx, userID, models.AuditActionCategoryDeleted, name, nil)
	return h.changed(c, userID)
}

// AddKeyword teaches a category a description, creating the category when
// needed.
func (h *CategoryHandler) AddKeyword(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	var req dto.KeywordRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	ctx := c.Request().Context()
	name := c.Param("name")
	if err := h.store.AddKeyword(ctx, userID, name, req.Keyword); err != nil {
		return h.writeFailed(c, userID, err)
	}

	h.audit.LogCategoryChange(ctx, userID, models.AuditActionKeywordAdded, name, map[string]interface{}{
		"keyword": strings.TrimSpace(req.Keyword),
	})
	return h.changed(c, userID)
}

// RemoveKeyword takes the keyword from the query string.
func (h *CategoryHandler) RemoveKeyword(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	keyword := strings.TrimSpace(c.QueryParam("keyword"))
	if keyword == "" {
		return SendError(c, apperrors.CategoryBlankKeyword)
	}

	ctx := c.Request().Context()
	name := c.Param("name")
	if err := h.store.RemoveKeyword(ctx, userID, name, keyword); err != nil {
		return h.writeFailed(c, userID, err)
	}

	h.audit.LogCategoryChange(ctx, userID, models.AuditActionKeywordRemoved, name, map[string]interface{}{
		"keyword": keyword,
	})
	return h.changed(c, userID)
}

// changed reloads the map, refreshes the session and responds with the map.
func (h *CategoryHandler) changed(c echo.Context, userID uuid.UUID) error {
	categories := h.store.Get(c.Request().Context(), userID)
	h.sync.reclassify(userID, categories)
	return h.respond(c, http.StatusOK, categories)
}

func (h *CategoryHandler) writeFailed(c echo.Context, userID uuid.UUID, err error) error {
	if code, ok := ErrorCodeFor(err); ok {
		return SendError(c, code)
	}
	h.logger.ErrorContext(c.Request().Context(), "category write failed", "user_id", userID, "error", err)
	return SendError(c, apperrors.CategorySaveFailed)
}

func (h *CategoryHandler) respond(c echo.Context, status int, categories models.CategoryMap) error {
	return SendData(c, status, dto.CategoriesResponse{Categories: categories})
}
