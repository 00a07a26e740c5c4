package handlers

import (
	"errors"
	"net/http"

	apperrors "finance-dashboard/internal/errors"
	"finance-dashboard/internal/repositories"
	"finance-dashboard/internal/services"

	"github.com/labstack/echo/v4"
)

// ProfileHandler serves the caller's own account.
type ProfileHandler struct {
	userRepo     repositories.UserRepositoryInterface
	auditService services.AuditServiceInterface
}

func NewProfileHandler(userRepo repositories.UserRepositoryInterface, auditService services.AuditServiceInterface) *ProfileHandler {
	return &ProfileHandler{userRepo: userRepo, auditService: auditService}
}

// Me returns the signed-in user
// @Summary Current user
// @Tags Profile
// @Security BearerAuth
// @Produce json
// @Success 200 {object} SuccessResponse{data=dto.UserProfileResponse}
// @Router /me [get]
func (h *ProfileHandler) Me(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	user, err := h.userRepo.GetByID(userID)
	if errors.Is(err, repositories.ErrUserNotFound) {
		return SendError(c, apperrors.AuthInvalidTokenFormat, apperrors.WithDetails("User no longer exists"))
	}
	if err != nil {
		return SendSystemError(c, err)
	}

	return SendData(c, http.StatusOK, ProfileFromUser(user))
}

// Activity lists the caller's audit trail, newest first.
//
// Query parameters:
//   - offset: default 0
//   - limit: default 20, max 100
func (h *ProfileHandler) Activity(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	offset := getIntParam(c, "offset", 0)
	if offset < 0 {
		offset = 0
	}
	limit := getIntParam(c, "limit", 20)
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	logs, total, err := h.auditService.GetUserActivity(userID, offset, limit)
	if err != nil {
		return SendSystemError(c, err)
	}

	return c.JSON(http.StatusOK, SuccessResponse{
		Data: logs,
		Meta: map[string]interface{}{
			"offset": offset,
			"limit":  limit,
			"total":  total,
		},
	})
}
