package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"finance-dashboard/internal/logging"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services/service_mocks"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type AssistantServiceTestSuite struct {
	suite.Suite
	ctrl    *gomock.Controller
	client  *service_mocks.MockAssistantClientInterface
	breaker *service_mocks.MockCircuitBreakerInterface
	store   *service_mocks.MockCategoryStoreInterface
	service AssistantServiceInterface
	userID  uuid.UUID
	ctx     context.Context
}

func (s *AssistantServiceTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.client = service_mocks.NewMockAssistantClientInterface(s.ctrl)
	s.breaker = service_mocks.NewMockCircuitBreakerInterface(s.ctrl)
	s.store = service_mocks.NewMockCategoryStoreInterface(s.ctrl)
	s.service = NewAssistantService(s.client, s.breaker, s.store, NewNoopMetrics(), logging.Discard(), time.Second)
	s.userID = uuid.New()
	s.ctx = context.Background()

	s.client.EXPECT().Name().Return("openai").AnyTimes()
}

func (s *AssistantServiceTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestAssistantServiceSuite(t *testing.T) {
	suite.Run(t, new(AssistantServiceTestSuite))
}

func (s *AssistantServiceTestSuite) expectCompletion(answer string, err error) {
	s.breaker.EXPECT().IsOpen().Return(false).Times(1)
	s.client.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, system, user string) (string, error) {
			_, hasDeadline := ctx.Deadline()
			s.True(hasDeadline)
			s.Contains(system, "financial advisor")
			return answer, err
		}).Times(1)
	if err != nil {
		s.breaker.EXPECT().RecordFailure().Times(1)
	} else {
		s.breaker.EXPECT().RecordSuccess().Times(1)
	}
}

func (s *AssistantServiceTestSuite) TestSuggest_MergesValidMapping() {
	s.expectCompletion("```json\n{\"Groceries\":[\"Tesco\"],\"Transport\":[\"Uber\"]}\n```", nil)
	s.store.EXPECT().Merge(s.ctx, s.userID, gomock.Any()).DoAndReturn(func(_ context.Context, _ uuid.UUID, m models.CategoryMap) (models.CategoryMap, error) {
		s.Equal([]string{"Groceries", "Transport"}, m.Names())
		return m.WithUncategorised(), nil
	}).Times(1)

	got, err := s.service.Suggest(s.ctx, s.userID, []string{"Tesco", "tesco ", "Uber", ""}, "I cycle to work")
	s.NoError(err)
	s.True(got.Has(models.UncategorisedCategory))
	s.True(got.Has("Transport"))
}

func (s *AssistantServiceTestSuite) TestSuggest_MissingDescriptionRejected() {
	s.expectCompletion(`{"Groceries":["Tesco"]}`, nil)

	_, err := s.service.Suggest(s.ctx, s.userID, []string{"Tesco", "Uber"}, "")
	s.ErrorIs(err, ErrAssistantUnavailable)
	s.ErrorIs(err, ErrInvalidSuggestion)
}

func (s *AssistantServiceTestSuite) TestSuggest_DuplicateDescriptionRejected() {
	s.expectCompletion(`{"Groceries":["Tesco"],"Shopping":["tesco"]}`, nil)

	_, err := s.service.Suggest(s.ctx, s.userID, []string{"Tesco"}, "")
	s.ErrorIs(err, ErrInvalidSuggestion)
}

func (s *AssistantServiceTestSuite) TestSuggest_MalformedJSON() {
	s.expectCompletion("I'm sorry, I can't do that.", nil)

	_, err := s.service.Suggest(s.ctx, s.userID, []string{"Tesco"}, "")
	s.ErrorIs(err, ErrAssistantUnavailable)
	s.ErrorIs(err, ErrInvalidSuggestion)
}

func (s *AssistantServiceTestSuite) TestSuggest_UpstreamError() {
	s.expectCompletion("", errors.New("connection refused"))

	_, err := s.service.Suggest(s.ctx, s.userID, []string{"Tesco"}, "")
	s.ErrorIs(err, ErrAssistantUnavailable)
}

func (s *AssistantServiceTestSuite) TestSuggest_BreakerOpen() {
	s.breaker.EXPECT().IsOpen().Return(true).Times(1)

	_, err := s.service.Suggest(s.ctx, s.userID, []string{"Tesco"}, "")
	s.ErrorIs(err, ErrAssistantUnavailable)
	s.ErrorIs(err, ErrCircuitBreakerOpen)
}

func (s *AssistantServiceTestSuite) TestSuggest_NoDescriptions() {
	_, err := s.service.Suggest(s.ctx, s.userID, []string{" ", ""}, "")
	s.ErrorIs(err, ErrNoDescriptions)
}

func (s *AssistantServiceTestSuite) TestAmend_ReplacesStoredMapping() {
	stored := mustCategories(s.T(),
		models.CategoryEntry{Name: models.UncategorisedCategory, Keywords: []string{"Pret"}},
		models.CategoryEntry{Name: "Groceries", Keywords: []string{"Tesco"}},
	)
	s.store.EXPECT().Get(s.ctx, s.userID).Return(stored).Times(1)

	s.breaker.EXPECT().IsOpen().Return(false).Times(1)
	s.client.EXPECT().Complete(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _, user string) (string, error) {
			s.Contains(user, `"Uncategorised":["Pret","Uber"]`)
			return `{"Groceries":["Tesco"],"Eating Out":["Pret"],"Transport":["Uber"]}`, nil
		}).Times(1)
	s.breaker.EXPECT().RecordSuccess().Times(1)
	s.store.EXPECT().Put(s.ctx, s.userID, gomock.Any()).DoAndReturn(func(_ context.Context, _ uuid.UUID, m models.CategoryMap) error {
		s.Equal([]string{models.UncategorisedCategory, "Groceries", "Eating Out", "Transport"}, m.Names())
		return nil
	}).Times(1)

	got, err := s.service.Amend(s.ctx, s.userID, []string{"Tesco", "Uber"}, "")
	s.NoError(err)
	s.True(got.Has("Eating Out"))
}

func (s *AssistantServiceTestSuite) TestAmend_OverlapRejected() {
	stored := mustCategories(s.T(), models.CategoryEntry{Name: "Groceries", Keywords: []string{"Tesco"}})
	s.store.EXPECT().Get(s.ctx, s.userID).Return(stored).Times(1)
	s.expectCompletion(`{"Groceries":["Tesco"],"Shopping":["Tesco"]}`, nil)

	_, err := s.service.Amend(s.ctx, s.userID, nil, "")
	s.ErrorIs(err, ErrInvalidSuggestion)
}

func (s *AssistantServiceTestSuite) TestAmend_NothingToAmend() {
	s.store.EXPECT().Get(s.ctx, s.userID).Return(models.DefaultCategoryMap()).Times(1)

	_, err := s.service.Amend(s.ctx, s.userID, nil, "")
	s.ErrorIs(err, ErrNoDescriptions)
}

func TestUniqueDescriptions(t *testing.T) {
	got := UniqueDescriptions([]string{" Tesco ", "TESCO", "", "Uber", "  ", "uber"})
	assert.Equal(t, []string{"Tesco", "Uber"}, got)
	assert.Empty(t, UniqueDescriptions(nil))
}

func TestValidateCoverage(t *testing.T) {
	m := mustCategories(t,
		models.CategoryEntry{Name: "Groceries", Keywords: []string{"Tesco"}},
		models.CategoryEntry{Name: "Transport", Keywords: []string{"Uber"}},
	)

	assert.NoError(t, ValidateCoverage(m, []string{"tesco", "UBER"}, true))
	assert.ErrorIs(t, ValidateCoverage(m, []string{"Tesco", "Pret"}, true), ErrInvalidSuggestion)
	assert.NoError(t, ValidateCoverage(m, []string{"Tesco", "Pret"}, false))
	assert.ErrorIs(t, ValidateCoverage(models.CategoryMap{}, nil, false), ErrInvalidSuggestion)

	overlap := mustCategories(t,
		models.CategoryEntry{Name: "Groceries", Keywords: []string{"Tesco"}},
		models.CategoryEntry{Name: "Shopping", Keywords: []string{"Tesco"}},
	)
	err := ValidateCoverage(overlap, []string{"Tesco"}, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Groceries, Shopping")
}

func TestCleanModelJSON(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{name: "plain", raw: `{"a":["b"]}`, want: `{"a":["b"]}`},
		{name: "fenced", raw: "```json\n{\"a\":[\"b\"]}\n```", want: `{"a":["b"]}`},
		{name: "bare fence", raw: "```\n{\"a\":[]}\n```", want: `{"a":[]}`},
		{name: "surrounding text", raw: "Here you go: {\"a\":[\"b\"]} Enjoy!", want: `{"a":["b"]}`},
		{name: "no object", raw: "  nothing  ", want: "nothing"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanModelJSON(tt.raw))
		})
	}
}

func TestSystemPromptNamesSchema(t *testing.T) {
	assert.True(t, strings.Contains(systemPromptTemplate, "{ [key: string]: string[] }"))
}
