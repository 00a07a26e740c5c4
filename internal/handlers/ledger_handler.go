package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"finance-dashboard/internal/dto"
	apperrors "finance-dashboard/internal/errors"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services"
	"finance-dashboard/internal/session"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const queryDateLayout = "2006-01-02"

// LedgerHandler serves the views of the loaded statement and the category
// overrides made from them.
//
// A request with filter parameters replaces the session's active filter; a
// request without any reuses it.
type LedgerHandler struct {
	ledger     services.LedgerInterface
	classifier services.ClassifierInterface
	audit      services.AuditServiceInterface
	sync       sessionSync
	logger     *slog.Logger
}

func NewLedgerHandler(
	ledger services.LedgerInterface,
	classifier services.ClassifierInterface,
	audit services.AuditServiceInterface,
	sessions *session.Store,
	logger *slog.Logger,
) *LedgerHandler {
	return &LedgerHandler{
		ledger:     ledger,
		classifier: classifier,
		audit:      audit,
		sync:       sessionSync{sessions: sessions, classifier: classifier},
		logger:     logger,
	}
}

// Transactions lists the filtered rows in file order
// @Summary Filtered transactions
// @Tags Ledger
// @Security BearerAuth
// @Produce json
// @Param from query string false "first day, YYYY-MM-DD"
// @Param to query string false "last day, YYYY-MM-DD"
// @Param category query []string false "categories" collectionFormat(multi)
// @Param search query string false "description substring"
// @Param flow query string false "debit, credit or unknown"
// @Success 200 {object} SuccessResponse{data=dto.TransactionsResponse}
// @Failure 404 {object} errors.ErrorResponse "STATEMENT_007"
// @Router /ledger/transactions [get]
func (h *LedgerHandler) Transactions(c echo.Context) error {
	st, filtered, ok, err := h.filtered(c)
	if !ok {
		return err
	}

	return SendData(c, http.StatusOK, dto.TransactionsResponse{
		Transactions: filtered,
		Total:        len(st.Transactions),
		Shown:        len(filtered),
	})
}

// Totals sums the filtered rows per category, largest first.
func (h *LedgerHandler) Totals(c echo.Context) error {
	_, filtered, ok, err := h.filtered(c)
	if !ok {
		return err
	}
	return SendData(c, http.StatusOK, dto.TotalsResponse{Totals: h.ledger.TotalsByCategory(filtered)})
}

// Waterfall is the running balance of the filtered rows by date.
func (h *LedgerHandler) Waterfall(c echo.Context) error {
	_, filtered, ok, err := h.filtered(c)
	if !ok {
		return err
	}
	return SendData(c, http.StatusOK, dto.WaterfallResponse{Points: h.ledger.RunningBalance(filtered)})
}

// Summary reports total expenses, total payments and row counts.
func (h *LedgerHandler) Summary(c echo.Context) error {
	_, filtered, ok, err := h.filtered(c)
	if !ok {
		return err
	}
	return SendData(c, http.StatusOK, h.ledger.Summary(filtered))
}

// Override moves one row to a category and stores its description as a
// keyword. The row keeps the new category when the keyword cannot be stored;
// the response then carries a warning.
// @Summary Override one row
// @Tags Ledger
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param row path int true "row number"
// @Param request body dto.OverrideRequest true "new category"
// @Success 200 {object} SuccessResponse{data=dto.OverrideResponse}
// @Failure 404 {object} errors.ErrorResponse "STATEMENT_007 or STATEMENT_008"
// @Router /ledger/transactions/{row} [patch]
func (h *LedgerHandler) Override(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	row, err := strconv.Atoi(c.Param("row"))
	if err != nil || row < 1 {
		return SendError(c, apperrors.ValidationInvalidFormat, apperrors.WithDetails("row must be a positive integer"))
	}

	var req dto.OverrideRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	st, err := h.sync.loaded(userID)
	if err != nil {
		return SendServiceError(c, err)
	}
	txn, found := st.Row(row)
	if !found {
		return SendError(c, apperrors.StatementRowNotFound)
	}

	ctx := c.Request().Context()
	updated, overrideErr := h.classifier.Override(ctx, userID, txn, req.Category)
	if errors.Is(overrideErr, models.ErrEmptyCategoryName) {
		return SendError(c, apperrors.CategoryInvalidName)
	}

	h.setCategories(userID, []models.Transaction{updated})

	resp := dto.OverrideResponse{Transaction: updated}
	if overrideErr != nil {
		resp.Warning = "category applied but the keyword could not be saved"
	} else {
		h.audit.LogCategoryChange(ctx, userID, models.AuditActionOverride, updated.Category, map[string]interface{}{
			"row":         row,
			"description": updated.Description,
		})
	}
	return SendData(c, http.StatusOK, resp)
}

// ApplyChanges overrides a batch of rows. Rows whose category does not change
// are left alone; an unknown row rejects the whole batch.
func (h *LedgerHandler) ApplyChanges(c echo.Context) error {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return SendError(c, apperrors.AuthMissingToken)
	}

	var req dto.ApplyChangesRequest
	if ok, err := bindAndValidate(c, &req); !ok {
		return err
	}

	st, err := h.sync.loaded(userID)
	if err != nil {
		return SendServiceError(c, err)
	}

	ctx := c.Request().Context()
	result, err := h.classifier.ApplyChanges(ctx, userID, st.Transactions, req.Changes)
	if err != nil {
		return SendServiceError(c, err, apperrors.WithDetails(err.Error()))
	}

	changed := make([]models.Transaction, 0, len(result.Applied))
	for _, applied := range result.Applied {
		for _, txn := range result.Transactions {
			if txn.Row == applied.Row {
				changed = append(changed, txn)
				break
			}
		}
	}
	h.setCategories(userID, changed)

	if len(result.Applied) > 0 {
		h.audit.LogCategoryChange(ctx, userID, models.AuditActionOverride, "", map[string]interface{}{
			"applied":  len(result.Applied),
			"failures": len(result.Failures),
		})
	}
	return SendData(c, http.StatusOK, result)
}

// setCategories writes the categories of changed rows into the session
// without touching other rows, which may have changed concurrently.
func (h *LedgerHandler) setCategories(userID uuid.UUID, changed []models.Transaction) {
	if len(changed) == 0 {
		return
	}
	byRow := make(map[int]string, len(changed))
	for _, txn := range changed {
		byRow[txn.Row] = txn.Category
	}

	_, _ = h.sync.sessions.Update(userID, func(st *session.State) error {
		for i := range st.Transactions {
			if category, ok := byRow[st.Transactions[i].Row]; ok {
				st.Transactions[i].Category = category
			}
		}
		return nil
	})
}

// filtered resolves the filter of the request and applies it. When ok is
// false the error response has been written and err is its result.
func (h *LedgerHandler) filtered(c echo.Context) (session.State, []models.Transaction, bool, error) {
	userID, err := getUserIDFromContext(c)
	if err != nil {
		return session.State{}, nil, false, SendError(c, apperrors.AuthMissingToken)
	}

	st, err := h.sync.loaded(userID)
	if err != nil {
		return session.State{}, nil, false, SendServiceError(c, err)
	}

	filter := st.Filter
	if len(c.QueryParams()) > 0 {
		var q dto.LedgerQuery
		if ok, err := bindAndValidate(c, &q); !ok {
			return session.State{}, nil, false, err
		}
		filter, err = FilterFromQuery(q)
		if err != nil {
			return session.State{}, nil, false, SendError(c, apperrors.ValidationInvalidDate, apperrors.WithDetails(err.Error()))
		}
		_, _ = h.sync.sessions.Update(userID, func(s *session.State) error {
			s.Filter = filter
			return nil
		})
	}

	return st, h.ledger.Filter(st.Transactions, filter), true, nil
}

// FilterFromQuery converts validated query parameters into a filter.
func FilterFromQuery(q dto.LedgerQuery) (models.LedgerFilter, error) {
	var filter models.LedgerFilter

	if q.From != "" {
		from, err := time.Parse(queryDateLayout, q.From)
		if err != nil {
			return filter, err
		}
		filter.From = &from
	}
	if q.To != "" {
		to, err := time.Parse(queryDateLayout, q.To)
		if err != nil {
			return filter, err
		}
		filter.To = &to
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return filter, errors.New("to must not be before from")
	}

	for _, category := range q.Categories {
		if category = strings.TrimSpace(category); category != "" {
			filter.Categories = append(filter.Categories, category)
		}
	}
	filter.Search = strings.TrimSpace(q.Search)

	if q.Flow != "" {
		var flow models.Flow
		switch strings.ToLower(q.Flow) {
		case "debit":
			flow = models.FlowDebit
		case "credit":
			flow = models.FlowCredit
		default:
			flow = models.FlowUnknown
		}
		filter.Flow = &flow
	}

	return filter, nil
}
