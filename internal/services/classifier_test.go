package services

import (
	"context"
	"errors"
	"testing"

	"finance-dashboard/internal/logging"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

type ClassifierTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	store      *service_mocks.MockCategoryStoreInterface
	classifier ClassifierInterface
	userID     uuid.UUID
	ctx        context.Context
}

func (s *ClassifierTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.store = service_mocks.NewMockCategoryStoreInterface(s.ctrl)
	s.classifier = NewClassifier(s.store, NewNoopMetrics(), logging.Discard())
	s.userID = uuid.New()
	s.ctx = context.Background()
}

func (s *ClassifierTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestClassifierSuite(t *testing.T) {
	suite.Run(t, new(ClassifierTestSuite))
}

func (s *ClassifierTestSuite) transactions() []models.Transaction {
	return []models.Transaction{
		newTxn(1, "2024-03-01", "Tesco", "-10", models.FlowDebit, ""),
		newTxn(2, "2024-03-02", "  TESCO  ", "-5", models.FlowDebit, ""),
		newTxn(3, "2024-03-03", "Tesco Express", "-3", models.FlowDebit, ""),
		newTxn(4, "2024-03-04", "Uber", "-8", models.FlowDebit, "Stale"),
	}
}

func (s *ClassifierTestSuite) TestClassify_ExactNormalisedMatch() {
	snapshot := mustCategories(s.T(),
		models.CategoryEntry{Name: models.UncategorisedCategory},
		models.CategoryEntry{Name: "Groceries", Keywords: []string{"tesco"}},
	)

	got := s.classifier.Classify(s.transactions(), snapshot)

	s.Equal("Groceries", got[0].Category)
	s.Equal("Groceries", got[1].Category)
	s.Equal(models.UncategorisedCategory, got[2].Category, "substring must not match")
	s.Equal(models.UncategorisedCategory, got[3].Category, "previous category is reset")
}

func (s *ClassifierTestSuite) TestClassify_LastCategoryWins() {
	snapshot := mustCategories(s.T(),
		models.CategoryEntry{Name: "Groceries", Keywords: []string{"Tesco"}},
		models.CategoryEntry{Name: "Shopping", Keywords: []string{"Tesco"}},
	)

	got := s.classifier.Classify(s.transactions(), snapshot)
	s.Equal("Shopping", got[0].Category)
}

func (s *ClassifierTestSuite) TestClassify_DoesNotMutateInput() {
	input := s.transactions()
	snapshot := mustCategories(s.T(), models.CategoryEntry{Name: "Groceries", Keywords: []string{"Tesco"}})

	_ = s.classifier.Classify(input, snapshot)
	s.Equal("", input[0].Category)
	s.Equal("Stale", input[3].Category)
}

func (s *ClassifierTestSuite) TestClassify_UncategorisedKeywordsIgnored() {
	snapshot := mustCategories(s.T(), models.CategoryEntry{Name: models.UncategorisedCategory, Keywords: []string{"Tesco"}})

	got := s.classifier.Classify(s.transactions(), snapshot)
	for _, t := range got {
		s.Equal(models.UncategorisedCategory, t.Category)
	}
}

func (s *ClassifierTestSuite) TestOverride() {
	original := s.transactions()[2]
	s.store.EXPECT().AddKeyword(s.ctx, s.userID, "Groceries", "Tesco Express").Return(nil).Times(1)

	got, err := s.classifier.Override(s.ctx, s.userID, original, " Groceries ")
	s.NoError(err)
	s.Equal("Groceries", got.Category)
	s.Equal(original.Row, got.Row)
}

func (s *ClassifierTestSuite) TestOverride_BlankCategory() {
	got, err := s.classifier.Override(s.ctx, s.userID, s.transactions()[0], "  ")
	s.ErrorIs(err, models.ErrEmptyCategoryName)
	s.Equal("", got.Category)
}

func (s *ClassifierTestSuite) TestOverride_StoreFailureStillApplies() {
	s.store.EXPECT().AddKeyword(s.ctx, s.userID, "Groceries", "Tesco").Return(errors.New("db down")).Times(1)

	got, err := s.classifier.Override(s.ctx, s.userID, s.transactions()[0], "Groceries")
	s.Error(err)
	s.Contains(err.Error(), "row 1")
	s.Equal("Groceries", got.Category)
}

func (s *ClassifierTestSuite) TestApplyChanges() {
	input := s.transactions()
	input[0].Category = "Groceries"

	s.store.EXPECT().AddKeyword(s.ctx, s.userID, "Groceries", "Tesco Express").Return(nil).Times(1)
	s.store.EXPECT().AddKeyword(s.ctx, s.userID, "Transport", "Uber").Return(errors.New("db down")).Times(1)

	result, err := s.classifier.ApplyChanges(s.ctx, s.userID, input, []models.CategoryChange{
		{Row: 1, Category: "Groceries"},
		{Row: 3, Category: "Groceries"},
		{Row: 4, Category: "Transport"},
	})
	s.Require().NoError(err)

	s.Equal(1, result.Unchanged)
	s.Equal([]models.CategoryChange{{Row: 3, Category: "Groceries"}, {Row: 4, Category: "Transport"}}, result.Applied)
	s.Require().Len(result.Failures, 1)
	s.Equal(4, result.Failures[0].Row)

	s.Equal("Groceries", result.Transactions[2].Category)
	s.Equal("Transport", result.Transactions[3].Category)
	s.Equal("", input[2].Category, "input is not modified")
}

func (s *ClassifierTestSuite) TestApplyChanges_UnknownRowRejectsBatch() {
	result, err := s.classifier.ApplyChanges(s.ctx, s.userID, s.transactions(), []models.CategoryChange{
		{Row: 1, Category: "Groceries"},
		{Row: 99, Category: "Groceries"},
	})
	s.ErrorIs(err, ErrRowNotFound)
	s.Nil(result)
}

func (s *ClassifierTestSuite) TestApplyChanges_BlankCategoryIsFailure() {
	result, err := s.classifier.ApplyChanges(s.ctx, s.userID, s.transactions(), []models.CategoryChange{
		{Row: 1, Category: " "},
	})
	s.Require().NoError(err)
	s.Empty(result.Applied)
	s.Require().Len(result.Failures, 1)
	s.Equal("", result.Transactions[0].Category)
}

func (s *ClassifierTestSuite) TestApplyChanges_BlankCategoryKeepsCurrent() {
	result, err := s.classifier.ApplyChanges(s.ctx, s.userID, s.transactions(), []models.CategoryChange{
		{Row: 4, Category: ""},
		{Row: 1, Category: "\t"},
	})
	s.Require().NoError(err)
	s.Empty(result.Applied)
	s.Zero(result.Unchanged)
	s.Require().Len(result.Failures, 2)
	s.Equal(4, result.Failures[0].Row)
	s.Equal(models.ErrEmptyCategoryName.Error(), result.Failures[0].Error)
	s.Equal("Stale", result.Transactions[3].Category)
}
