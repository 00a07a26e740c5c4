package services

import (
	"sort"
	"strings"

	"finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
)

type ledger struct{}

// NewLedger returns the aggregator for a session's transactions. Every method
// is a pure function of its input.
func NewLedger() LedgerInterface {
	return ledger{}
}

// Filter keeps the transactions that pass every set field of filter. Date
// bounds are inclusive and compare calendar dates.
func (ledger) Filter(transactions []models.Transaction, filter models.LedgerFilter) []models.Transaction {
	var categories map[string]struct{}
	if len(filter.Categories) > 0 {
		categories = make(map[string]struct{}, len(filter.Categories))
		for _, c := range filter.Categories {
			categories[strings.TrimSpace(c)] = struct{}{}
		}
	}
	search := strings.ToLower(strings.TrimSpace(filter.Search))

	out := make([]models.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		day := truncateDay(txn.CompletedDate)
		if filter.From != nil && day.Before(truncateDay(*filter.From)) {
			continue
		}
		if filter.To != nil && day.After(truncateDay(*filter.To)) {
			continue
		}
		if categories != nil {
			if _, ok := categories[txn.Category]; !ok {
				continue
			}
		}
		if search != "" && !strings.Contains(strings.ToLower(txn.Description), search) {
			continue
		}
		if filter.Flow != nil && txn.Flow != *filter.Flow {
			continue
		}
		out = append(out, txn)
	}
	return out
}

func (ledger) Partition(transactions []models.Transaction) (debits, credits, unknown []models.Transaction) {
	debits = []models.Transaction{}
	credits = []models.Transaction{}
	unknown = []models.Transaction{}

	for _, txn := range transactions {
		switch txn.Flow {
		case models.FlowDebit:
			debits = append(debits, txn)
		case models.FlowCredit:
			credits = append(credits, txn)
		default:
			unknown = append(unknown, txn)
		}
	}
	return debits, credits, unknown
}

// TotalsByCategory sums amounts per category and reports the absolute value
// of each sum, largest first. Equal totals are ordered by name.
func (ledger) TotalsByCategory(transactions []models.Transaction) []models.CategoryTotal {
	byCategory := make(map[string]*models.CategoryTotal)
	for _, txn := range transactions {
		category := txn.Category
		if category == "" {
			category = models.UncategorisedCategory
		}
		total, ok := byCategory[category]
		if !ok {
			total = &models.CategoryTotal{Category: category, Total: decimal.Zero}
			byCategory[category] = total
		}
		total.Total = total.Total.Add(txn.Amount)
		total.Count++
	}

	totals := make([]models.CategoryTotal, 0, len(byCategory))
	for _, total := range byCategory {
		total.Total = total.Total.Abs()
		totals = append(totals, *total)
	}

	sort.Slice(totals, func(i, j int) bool {
		if c := totals[i].Total.Cmp(totals[j].Total); c != 0 {
			return c > 0
		}
		return totals[i].Category < totals[j].Category
	})
	return totals
}

// RunningBalance orders known-flow transactions by date, keeping file order
// for equal dates, and accumulates their signed amounts.
func (ledger) RunningBalance(transactions []models.Transaction) []models.BalancePoint {
	known := make([]models.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if txn.Flow.IsKnown() {
			known = append(known, txn)
		}
	}
	sort.SliceStable(known, func(i, j int) bool {
		return known[i].CompletedDate.Before(known[j].CompletedDate)
	})

	points := make([]models.BalancePoint, len(known))
	balance := decimal.Zero
	for i, txn := range known {
		signed := txn.SignedAmount()
		balance = balance.Add(signed)
		points[i] = models.BalancePoint{
			Date:         txn.CompletedDate,
			Description:  txn.Description,
			Category:     txn.Category,
			SignedAmount: signed,
			Balance:      balance,
		}
	}
	return points
}

// Summary reports total expenses as the sum of the debit category totals and
// total payments as the plain sum of credit amounts.
func (l ledger) Summary(transactions []models.Transaction) models.LedgerSummary {
	debits, credits, unknown := l.Partition(transactions)

	expenses := decimal.Zero
	for _, total := range l.TotalsByCategory(debits) {
		expenses = expenses.Add(total.Total)
	}

	payments := decimal.Zero
	for _, txn := range credits {
		payments = payments.Add(txn.Amount)
	}

	return models.LedgerSummary{
		TotalExpenses: expenses,
		TotalPayments: payments,
		Net:           payments.Sub(expenses),
		DebitCount:    len(debits),
		CreditCount:   len(credits),
		UnknownCount:  len(unknown),
	}
}
