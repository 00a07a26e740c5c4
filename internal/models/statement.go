package models

import "time"

// Statement column headers.
const (
	ColumnDescription   = "Description"
	ColumnAmount        = "Amount"
	ColumnType          = "Type"
	ColumnCompletedDate = "Completed Date"
)

// RequiredColumns must be present in every statement.
var RequiredColumns = []string{ColumnDescription, ColumnAmount, ColumnType, ColumnCompletedDate}

// UnknownType marks a kept row whose Type has no flow.
type UnknownType struct {
	Row  int    `json:"row"`
	Type string `json:"type"`
}

// LoadResult is a parsed and classified statement.
type LoadResult struct {
	FileName     string        `json:"file_name"`
	Transactions []Transaction `json:"transactions"`
	UnknownTypes []UnknownType `json:"unknown_types"`
	Skipped      int           `json:"skipped"`
	LoadedAt     time.Time     `json:"loaded_at"`
}

// CategoryChange asks for one row to be moved to a category.
type CategoryChange struct {
	Row      int    `json:"row" validate:"required,min=1"`
	Category string `json:"category" validate:"required,category_name"`
}

// ChangeFailure is a change whose keyword could not be stored. The row itself
// was still updated.
type ChangeFailure struct {
	Row      int    `json:"row"`
	Category string `json:"category"`
	Error    string `json:"error"`
}

// ApplyResult reports a batch of category changes.
type ApplyResult struct {
	Transactions []Transaction    `json:"-"`
	Applied      []CategoryChange `json:"applied"`
	Unchanged    int              `json:"unchanged"`
	Failures     []ChangeFailure  `json:"failures,omitempty"`
}

// FeedAccount is one account behind a bank connection.
type FeedAccount struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Currency string `json:"currency"`
}
