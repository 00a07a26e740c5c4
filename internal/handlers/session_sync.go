package handlers

import (
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services"
	"finance-dashboard/internal/session"

	"github.com/google/uuid"
)

// sessionSync keeps a loaded statement in step with the stored categories.
type sessionSync struct {
	sessions   *session.Store
	classifier services.ClassifierInterface
}

// reclassify replaces the session snapshot with categories and classifies the
// loaded rows again. Users without a session are ignored.
func (s sessionSync) reclassify(userID uuid.UUID, categories models.CategoryMap) {
	_, _ = s.sessions.Update(userID, func(st *session.State) error {
		st.Categories = categories
		st.Transactions = s.classifier.Classify(st.Transactions, categories)
		return nil
	})
}

// loaded returns the caller's session, or ErrNoSession when nothing has been
// loaded yet. A loaded statement may hold zero rows.
func (s sessionSync) loaded(userID uuid.UUID) (session.State, error) {
	st, ok := s.sessions.Get(userID)
	if !ok || st.Source == session.SourceNone {
		return session.State{}, session.ErrNoSession
	}
	return st, nil
}
