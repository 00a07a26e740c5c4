package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"finance-dashboard/internal/models"
	"finance-dashboard/internal/session"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

// newJSONContext builds a context for an authenticated request. A nil body
// sends no body.
func newJSONContext(e *echo.Echo, method, target string, body interface{}, userID uuid.UUID) (echo.Context, *httptest.ResponseRecorder) {
	var reader io.Reader
	if body != nil {
		raw, _ := json.Marshal(body)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set(TraceIDContextKey, "test-trace")
	if userID != uuid.Nil {
		c.Set("user_id", userID)
		c.Set("username", "jane_doe")
	}
	return c, rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) ErrorResponse {
	t.Helper()
	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), rec.Body.String())
	return resp
}

// decodeData unmarshals the data field of a SuccessResponse into out.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope), rec.Body.String())
	require.NoError(t, json.Unmarshal(envelope.Data, out), string(envelope.Data))
}

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{Row: 1, CompletedDate: day("2024-03-01"), Description: "Salary", Amount: decimal.NewFromInt(1000), Type: models.TypeTopUp, Flow: models.FlowCredit, Category: models.UncategorisedCategory},
		{Row: 2, CompletedDate: day("2024-03-02"), Description: "Tesco", Amount: decimal.NewFromInt(-20), Type: models.TypeCardPayment, Flow: models.FlowDebit, Category: "Groceries"},
		{Row: 3, CompletedDate: day("2024-03-05"), Description: "Uber", Amount: decimal.NewFromInt(-12), Type: models.TypeCardPayment, Flow: models.FlowDebit, Category: models.UncategorisedCategory},
		{Row: 4, CompletedDate: day("2024-03-07"), Description: "Tesco", Amount: decimal.NewFromInt(-8), Type: models.TypeCardPayment, Flow: models.FlowDebit, Category: "Groceries"},
	}
}

func sampleCategories(t *testing.T) models.CategoryMap {
	t.Helper()
	m, err := models.NewCategoryMap(
		models.CategoryEntry{Name: models.UncategorisedCategory, Keywords: []string{}},
		models.CategoryEntry{Name: "Groceries", Keywords: []string{"Tesco"}},
	)
	require.NoError(t, err)
	return m
}

func newSessions() *session.Store {
	return session.NewStore(100, time.Hour, nil)
}

// loadSession stores a session with the sample statement for userID.
func loadSession(t *testing.T, sessions *session.Store, userID uuid.UUID) {
	t.Helper()
	st := session.New(userID, "jane_doe")
	st.Load(&models.LoadResult{
		FileName:     "march.csv",
		Transactions: sampleTransactions(),
		UnknownTypes: []models.UnknownType{},
		LoadedAt:     day("2024-03-31"),
	}, session.SourceStatement, sampleCategories(t))
	sessions.Put(st)
}

func newRawRequest(method, target, body string) *http.Request {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	return req
}

func newRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
