package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

var (
	ErrBankFeedNotConfigured = errors.New("bank feed is not configured")
	ErrBankFeedUnavailable   = errors.New("bank feed unavailable")
	ErrNoBankAccounts        = errors.New("bank connection has no accounts")
)

// BankFeedService reads transactions from the Bank Account Data API.
type BankFeedService struct {
	config  *config.BankFeedConfig
	client  *http.Client
	metrics MetricsRecorderInterface
	logger  *slog.Logger
}

// NewBankFeedService creates the service. base may be nil to use
// http.DefaultTransport.
func NewBankFeedService(cfg *config.BankFeedConfig, base http.RoundTripper, metrics MetricsRecorderInterface, logger *slog.Logger) BankFeedServiceInterface {
	return &BankFeedService{
		config: cfg,
		client: &http.Client{
			Transport: NewAuthTransport(cfg.APIKey, base),
			Timeout:   cfg.Timeout,
		},
		metrics: metrics,
		logger:  logger,
	}
}

func (s *BankFeedService) Link(ctx context.Context, institutionID, redirectURL string) (*dto.BankFeedLinkResponse, error) {
	var conn dto.BankConnection
	err := s.call(ctx, "link", http.MethodPost, "/bank-connections/", dto.BankConnectionRequest{
		InstitutionID: institutionID,
		Redirect:      redirectURL,
	}, &conn)
	if err != nil {
		return nil, err
	}
	if conn.AuthorisationURL == "" {
		return nil, fmt.Errorf("%w: connection has no authorisation url", ErrBankFeedUnavailable)
	}

	return &dto.BankFeedLinkResponse{
		ConnectionID:     conn.ID,
		AuthorisationURL: conn.AuthorisationURL,
	}, nil
}

func (s *BankFeedService) Accounts(ctx context.Context, connectionID string) ([]models.FeedAccount, error) {
	var resp dto.BankAccountsResponse
	path := "/bank-connections/" + url.PathEscape(connectionID) + "/accounts"
	if err := s.call(ctx, "accounts", http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	accounts := make([]models.FeedAccount, 0, len(resp.Accounts))
	for _, a := range resp.Accounts {
		accounts = append(accounts, models.FeedAccount{ID: a.ID, Name: a.Name, Currency: a.Currency})
	}
	return accounts, nil
}

// Transactions returns the booked transactions of one account. Pending ones
// have no settled date and are left out, like pending statement rows.
func (s *BankFeedService) Transactions(ctx context.Context, accountID string) ([]models.Transaction, error) {
	var resp dto.BankTransactionsResponse
	path := "/accounts/" + url.PathEscape(accountID) + "/transactions"
	if err := s.call(ctx, "transactions", http.MethodGet, path, nil, &resp); err != nil {
		return nil, err
	}

	out := make([]models.Transaction, 0, len(resp.Transactions.Booked))
	for _, bt := range resp.Transactions.Booked {
		txn, err := convertBankTransaction(bt)
		if err != nil {
			s.logger.WarnContext(ctx, "skipping bank transaction",
				"account_id", accountID,
				"transaction_id", bt.TransactionID,
				"error", err,
			)
			continue
		}
		txn.Row = len(out) + 1
		out = append(out, txn)
	}
	return out, nil
}

// Import reads every account of a connection. Rows are numbered across the
// whole import.
func (s *BankFeedService) Import(ctx context.Context, connectionID string) ([]models.Transaction, error) {
	accounts, err := s.Accounts(ctx, connectionID)
	if err != nil {
		return nil, err
	}
	if len(accounts) == 0 {
		return nil, ErrNoBankAccounts
	}

	var all []models.Transaction
	for _, account := range accounts {
		txns, err := s.Transactions(ctx, account.ID)
		if err != nil {
			return nil, err
		}
		for _, txn := range txns {
			txn.Row = len(all) + 1
			all = append(all, txn)
		}
	}

	s.logger.InfoContext(ctx, "bank feed imported",
		"connection_id", connectionID,
		"accounts", len(accounts),
		"transactions", len(all),
	)
	return all, nil
}

func (s *BankFeedService) call(ctx context.Context, operation, method, path string, body, out any) error {
	if s.config.APIKey == "" {
		return ErrBankFeedNotConfigured
	}

	start := time.Now()
	err := s.do(ctx, method, path, body, out)
	s.metrics.RecordProcessingTime("bankfeed.request", time.Since(start))

	status := "success"
	if err != nil {
		status = "failed"
		s.logger.ErrorContext(ctx, "bank feed request failed",
			"operation", operation,
			"method", method,
			"path", path,
			"error", err,
		)
	}
	s.metrics.IncrementCounter("bankfeed.request", map[string]string{"operation": operation, "status": status})
	return err
}

func (s *BankFeedService) do(ctx context.Context, method, path string, body, out any) error {
	var buf io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, strings.TrimRight(s.config.BaseURL, "/")+path, buf)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBankFeedUnavailable, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 16<<20))
	if err != nil {
		return fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr dto.BankErrorResponse
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Summary != "" {
			return fmt.Errorf("%w: %d %s: %s", ErrBankFeedUnavailable, resp.StatusCode, apiErr.Summary, apiErr.Detail)
		}
		return fmt.Errorf("%w: status %d", ErrBankFeedUnavailable, resp.StatusCode)
	}

	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decode response: %v", ErrBankFeedUnavailable, err)
	}
	return nil
}

func convertBankTransaction(bt dto.BankTransaction) (models.Transaction, error) {
	dateStr := bt.BookingDate
	if dateStr == "" {
		dateStr = bt.ValueDate
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid booking date %q", dateStr)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(bt.TransactionAmount.Amount))
	if err != nil {
		return models.Transaction{}, fmt.Errorf("invalid amount %q", bt.TransactionAmount.Amount)
	}

	description := strings.TrimSpace(bt.RemittanceInformationUnstructured)
	for _, alt := range []string{bt.CreditorName, bt.DebtorName} {
		if description != "" {
			break
		}
		description = strings.TrimSpace(alt)
	}

	txnType := strings.TrimSpace(bt.ProprietaryBankTransactionCode)
	flow, known := models.FlowForType(txnType)
	if !known {
		switch amount.Sign() {
		case -1:
			flow = models.FlowDebit
		case 1:
			flow = models.FlowCredit
		}
	}

	return models.Transaction{
		CompletedDate: date.UTC(),
		Description:   description,
		Amount:        amount,
		Type:          txnType,
		Flow:          flow,
		Category:      models.UncategorisedCategory,
	}, nil
}
