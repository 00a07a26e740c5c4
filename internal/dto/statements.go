package dto

import (
	"time"

	"finance-dashboard/internal/models"
)

// StatementResponse describes a loaded statement. Transactions are served by
// the ledger endpoints.
type StatementResponse struct {
	FileName     string               `json:"fileName"`
	Rows         int                  `json:"rows"`
	Debits       int                  `json:"debits"`
	Credits      int                  `json:"credits"`
	UnknownTypes []models.UnknownType `json:"unknownTypes"`
	Skipped      int                  `json:"skipped"`
	ArchivedAs   string               `json:"archivedAs,omitempty"`
	LoadedAt     time.Time            `json:"loadedAt"`
}
