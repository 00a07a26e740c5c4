package dto

import "finance-dashboard/internal/models"

// LedgerQuery is bound from the query string of the ledger endpoints.
type LedgerQuery struct {
	From       string   `query:"from" validate:"omitempty,datetime=2006-01-02"`
	To         string   `query:"to" validate:"omitempty,datetime=2006-01-02"`
	Categories []string `query:"category"`
	Search     string   `query:"search" validate:"max=200"`
	Flow       string   `query:"flow" validate:"omitempty,oneof=debit credit unknown Debit Credit Unknown"`
}

type TransactionsResponse struct {
	Transactions []models.Transaction `json:"transactions"`
	Total        int                  `json:"total"`
	Shown        int                  `json:"shown"`
}

type TotalsResponse struct {
	Totals []models.CategoryTotal `json:"totals"`
}

type WaterfallResponse struct {
	Points []models.BalancePoint `json:"points"`
}

type OverrideRequest struct {
	Category string `json:"category" validate:"required,category_name"`
}

type OverrideResponse struct {
	Transaction models.Transaction `json:"transaction"`
	Warning     string             `json:"warning,omitempty"`
}

type ApplyChangesRequest struct {
	Changes []models.CategoryChange `json:"changes" validate:"required,min=1,dive"`
}
