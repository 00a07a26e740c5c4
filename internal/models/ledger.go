package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerFilter narrows a transaction list. Zero fields do not filter.
type LedgerFilter struct {
	From       *time.Time `json:"from,omitempty"`
	To         *time.Time `json:"to,omitempty"`
	Categories []string   `json:"categories,omitempty"`
	Search     string     `json:"search,omitempty"`
	Flow       *Flow      `json:"flow,omitempty"`
}

func (f LedgerFilter) IsEmpty() bool {
	return f.From == nil && f.To == nil && len(f.Categories) == 0 && f.Search == "" && f.Flow == nil
}

type CategoryTotal struct {
	Category string          `json:"category"`
	Total    decimal.Decimal `json:"total"`
	Count    int             `json:"count"`
}

// BalancePoint is one step of the waterfall series.
type BalancePoint struct {
	Date         time.Time       `json:"date"`
	Description  string          `json:"description"`
	Category     string          `json:"category"`
	SignedAmount decimal.Decimal `json:"signed_amount"`
	Balance      decimal.Decimal `json:"balance"`
}

type LedgerSummary struct {
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	TotalPayments decimal.Decimal `json:"total_payments"`
	Net           decimal.Decimal `json:"net"`
	DebitCount    int             `json:"debit_count"`
	CreditCount   int             `json:"credit_count"`
	UnknownCount  int             `json:"unknown_count"`
}
