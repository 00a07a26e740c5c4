package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"finance-dashboard/internal/dto"
	apperrors "finance-dashboard/internal/errors"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services"
	"finance-dashboard/internal/session"

	"github.com/labstack/echo/v4"
)

// BankFeedHandler links bank connections and imports their transactions in
// place of an uploaded statement.
type BankFeedHandler struct {
	feed       services.BankFeedServiceInterface
	classifier services.ClassifierInterface
	store      services.CategoryStoreInterface
	ledger     services.LedgerInterface
	audit      services.AuditServiceInterface
	sessions   *session.Store
	logger     *slog.Logger
	now        func() time.Time
}

func NewBankFeedHandler(
	feed services.BankFeedServiceInterface,
	classifier services.ClassifierInterface,
	store services.CategoryStoreInterface,
	ledger services.LedgerInterface,
	audit services.AuditServiceInterface,
	sessions *session.Store,
	logger *slog.Logger,
) *BankFeedHandler {
	return &BankFeedHandler{
		feed:       feed,
		classifier: classifier,
		store:      store,
		ledger:     ledger,
		audit:      audit,
		sessions:   sessions,
		logger:     logger,
		now:        time.Now,
	}
}

// Link starts a bank connection and returns where to send the user.
// @Summary Link a bank
// @Tags BankFeed
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.BankFeedLinkRequest true "institution and redirect"
// @Success 201 {object} SuccessResponse{data=dto.BankFeedLinkResponse}
// @Failure 503 {object} errors.ErrorResponse "BANKFEED_001 or BANKFEED_003"
// @Router /bankfeed/connections [post]
func (h *BankFeedHandler) Link(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	var req dto.BankFeedLinkRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	link, err := h.feed.Link(c.Request().Context(), req.InstitutionID, req.RedirectURL)
	if err != nil {
		return SendServiceError(c, err)
	}
	return SendData(c, http.StatusCreated, link)
}

// Accounts lists the accounts behind a connection.
func (h *BankFeedHandler) Accounts(c echo.Context) error {
	if _, err := getUserIDFromContext(c); err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	accounts, err := h.feed.Accounts(c.Request().Context(), c.Param("id"))
	if err != nil {
		return SendServiceError(c, err)
	}
	return SendData(c, http.StatusOK, accounts)
}

// Import loads the booked transactions of every account of a connection into
// the session, classified like an uploaded statement.
// @Summary Import bank transactions
// @Tags BankFeed
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.BankFeedImportRequest true "connection"
// @Success 201 {object} SuccessResponse{data=dto.StatementResponse}
// @Failure 422 {object} errors.ErrorResponse "BANKFEED_002"
// @Router /bankfeed/import [post]
func (h *BankFeedHandler) Import(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	var req dto.BankFeedImportRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	ctx := c.Request().Context()
	rows, err := h.feed.Import(ctx, req.ConnectionID)
	if err != nil {
		return SendServiceError(c, err)
	}

	snapshot := h.store.Get(ctx, userID)
	result := &models.LoadResult{
		FileName:     "bankfeed:" + req.ConnectionID,
		Transactions: h.classifier.Classify(rows, snapshot),
		UnknownTypes: []models.UnknownType{},
		LoadedAt:     h.now().UTC(),
	}
	for _, txn := range result.Transactions {
		if !txn.Flow.IsKnown() {
			result.UnknownTypes = append(result.UnknownTypes, models.UnknownType{Row: txn.Row, Type: txn.Type})
		}
	}

	st := h.sessions.GetOrCreate(userID, getUsernameFromContext(c))
	st.Load(result, session.SourceBankFeed, snapshot)
	h.sessions.Put(st)

	h.audit.LogBankFeedImported(ctx, userID, req.ConnectionID, len(result.Transactions))

	debits, credits, _ := h.ledger.Partition(result.Transactions)
	return c.JSON(http.StatusCreated, SuccessResponse{
		Data: dto.StatementResponse{
			FileName:     result.FileName,
			Rows:         len(result.Transactions),
			Debits:       len(debits),
			Credits:      len(credits),
			UnknownTypes: result.UnknownTypes,
			LoadedAt:     result.LoadedAt,
		},
		Message: "Bank transactions imported",
	})
}
