package services

import (
	"testing"
	"time"

	"finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func mustCategories(t *testing.T, entries ...models.CategoryEntry) models.CategoryMap {
	t.Helper()
	m, err := models.NewCategoryMap(entries...)
	require.NoError(t, err)
	return m
}

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return d
}

func newTxn(row int, date, description, amount string, flow models.Flow, category string) models.Transaction {
	t := models.Transaction{
		Row:           row,
		CompletedDate: day(date),
		Description:   description,
		Amount:        decimal.RequireFromString(amount),
		Flow:          flow,
		Category:      category,
	}
	switch flow {
	case models.FlowDebit:
		t.Type = models.TypeCardPayment
	case models.FlowCredit:
		t.Type = models.TypeTopUp
	default:
		t.Type = "FEE"
	}
	return t
}
