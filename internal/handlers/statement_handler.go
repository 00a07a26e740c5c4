package handlers

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"finance-dashboard/internal/dto"
	apperrors "finance-dashboard/internal/errors"
	"finance-dashboard/internal/services"
	"finance-dashboard/internal/session"

	"github.com/labstack/echo/v4"
)

const (
	statementFormField    = "file"
	defaultMaxUploadBytes = 10 << 20
)

// StatementHandler loads uploaded statements into the caller's session.
type StatementHandler struct {
	loader         services.StatementLoaderInterface
	archive        services.StatementArchiveInterface
	store          services.CategoryStoreInterface
	ledger         services.LedgerInterface
	audit          services.AuditServiceInterface
	sessions       *session.Store
	maxUploadBytes int64
	logger         *slog.Logger
}

func NewStatementHandler(
	loader services.StatementLoaderInterface,
	archive services.StatementArchiveInterface,
	store services.CategoryStoreInterface,
	ledger services.LedgerInterface,
	audit services.AuditServiceInterface,
	sessions *session.Store,
	maxUploadBytes int64,
	logger *slog.Logger,
) *StatementHandler {
	if maxUploadBytes <= 0 {
		maxUploadBytes = defaultMaxUploadBytes
	}
	return &StatementHandler{
		loader:         loader,
		archive:        archive,
		store:          store,
		ledger:         ledger,
		audit:          audit,
		sessions:       sessions,
		maxUploadBytes: maxUploadBytes,
		logger:         logger,
	}
}

// Upload parses a .csv or .xlsx statement and classifies it with the caller's
// categories. The previous statement of the session is replaced.
// @Summary Upload a statement
// @Tags Statements
// @Security BearerAuth
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Statement (.csv or .xlsx)"
// @Success 201 {object} SuccessResponse{data=dto.StatementResponse}
// @Failure 400 {object} errors.ErrorResponse "STATEMENT_001"
// @Failure 413 {object} errors.ErrorResponse "STATEMENT_006"
// @Failure 422 {object} errors.ErrorResponse "STATEMENT_002 to STATEMENT_005"
// @Router /statements [post]
func (h *StatementHandler) Upload(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	file, err := c.FormFile(statementFormField)
	if err != nil {
		return SendError(c, apperrors.StatementMissingFile)
	}
	if file.Size > h.maxUploadBytes {
		return SendError(c, apperrors.StatementTooLarge)
	}

	src, err := file.Open()
	if err != nil {
		return SendError(c, apperrors.StatementUnreadable)
	}
	defer src.Close()

	content, err := io.ReadAll(io.LimitReader(src, h.maxUploadBytes+1))
	if err != nil {
		return SendError(c, apperrors.StatementUnreadable)
	}
	if int64(len(content)) > h.maxUploadBytes {
		return SendError(c, apperrors.StatementTooLarge)
	}

	ctx := c.Request().Context()

	archivedAs, err := h.archive.Store(ctx, userID, file.Filename, content)
	if err != nil {
		h.logger.WarnContext(ctx, "statement not archived", "user_id", userID, "file", file.Filename, "error", err)
	}

	snapshot := h.store.Get(ctx, userID)
	result, err := h.loader.Load(ctx, file.Filename, bytes.NewReader(content), snapshot)
	if err != nil {
		var stmtErr *services.StatementError
		if errors.As(err, &stmtErr) {
			return SendServiceError(c, err, apperrors.WithDetails(stmtErr.Error()))
		}
		return SendServiceError(c, err)
	}

	st := h.sessions.GetOrCreate(userID, getUsernameFromContext(c))
	st.Load(result, session.SourceStatement, snapshot)
	st.ArchivedAs = archivedAs
	h.sessions.Put(st)

	h.audit.LogStatementLoaded(ctx, userID, result.FileName, len(result.Transactions), len(result.UnknownTypes))

	resp := h.describe(st)
	resp.Skipped = result.Skipped
	return c.JSON(http.StatusCreated, SuccessResponse{
		Data:    resp,
		Message: "Statement loaded",
	})
}

// Current describes the statement held in the session.
func (h *StatementHandler) Current(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	st, ok := h.sessions.Get(userID)
	if !ok || st.Source == session.SourceNone {
		return SendError(c, apperrors.StatementNotLoaded)
	}
	return SendData(c, http.StatusOK, h.describe(st))
}

// Clear forgets the loaded statement.
func (h *StatementHandler) Clear(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	h.sessions.Delete(userID)
	return c.NoContent(http.StatusNoContent)
}

func (h *StatementHandler) describe(st session.State) dto.StatementResponse {
	debits, credits, _ := h.ledger.Partition(st.Transactions)
	return dto.StatementResponse{
		FileName:     st.FileName,
		Rows:         len(st.Transactions),
		Debits:       len(debits),
		Credits:      len(credits),
		UnknownTypes: st.UnknownTypes,
		ArchivedAs:   st.ArchivedAs,
		LoadedAt:     st.LoadedAt,
	}
}
