package session

import (
	"time"

	"finance-dashboard/internal/models"

	"github.com/google/uuid"
)

// Source records where the loaded transactions came from.
type Source string

const (
	SourceNone      Source = ""
	SourceStatement Source = "statement"
	SourceBankFeed  Source = "bankfeed"
)

// State is everything the dashboard holds for one signed-in user between
// requests. Zero values mean "nothing loaded": no transactions, an empty
// filter and no file.
type State struct {
	UserID       uuid.UUID
	Username     string
	Categories   models.CategoryMap
	Transactions []models.Transaction
	UnknownTypes []models.UnknownType
	Filter       models.LedgerFilter
	Source       Source
	FileName     string
	ArchivedAs   string
	LoadedAt     time.Time
}

func New(userID uuid.UUID, username string) State {
	return State{UserID: userID, Username: username}
}

func (s State) HasTransactions() bool {
	return len(s.Transactions) > 0
}

// Descriptions lists the description of every loaded row in file order.
func (s State) Descriptions() []string {
	out := make([]string, len(s.Transactions))
	for i, t := range s.Transactions {
		out[i] = t.Description
	}
	return out
}

// Row returns the transaction with the given row number.
func (s State) Row(row int) (models.Transaction, bool) {
	for _, t := range s.Transactions {
		if t.Row == row {
			return t, true
		}
	}
	return models.Transaction{}, false
}

// Load replaces the loaded transactions with a parsed statement and resets
// the filter.
func (s *State) Load(result *models.LoadResult, source Source, categories models.CategoryMap) {
	s.Transactions = result.Transactions
	s.UnknownTypes = result.UnknownTypes
	s.FileName = result.FileName
	s.LoadedAt = result.LoadedAt
	s.Source = source
	s.Categories = categories
	s.Filter = models.LedgerFilter{}
	s.ArchivedAs = ""
}

// Clone returns a copy that shares no slices with s.
func (s State) Clone() State {
	out := s
	out.Categories = s.Categories.Clone()
	out.Transactions = append([]models.Transaction(nil), s.Transactions...)
	out.UnknownTypes = append([]models.UnknownType(nil), s.UnknownTypes...)
	out.Filter.Categories = append([]string(nil), s.Filter.Categories...)
	if s.Filter.From != nil {
		from := *s.Filter.From
		out.Filter.From = &from
	}
	if s.Filter.To != nil {
		to := *s.Filter.To
		out.Filter.To = &to
	}
	if s.Filter.Flow != nil {
		flow := *s.Filter.Flow
		out.Filter.Flow = &flow
	}
	return out
}
