package handlers

import (
	"net/http"
	"testing"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/logging"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/services"
	"finance-dashboard/internal/services/service_mocks"
	"finance-dashboard/internal/session"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestAssistantHandler(t *testing.T) {
	suite.Run(t, new(AssistantHandlerSuite))
}

type AssistantHandlerSuite struct {
	suite.Suite
	ctrl      *gomock.Controller
	assistant *service_mocks.MockAssistantServiceInterface
	audit     *service_mocks.MockAuditServiceInterface
	sessions  *session.Store
	handler   *AssistantHandler
	e         *echo.Echo
	userID    uuid.UUID
}

func (s *AssistantHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.assistant = service_mocks.NewMockAssistantServiceInterface(s.ctrl)
	s.audit = service_mocks.NewMockAuditServiceInterface(s.ctrl)
	s.sessions = newSessions()
	classifier := services.NewClassifier(nil, services.NewNoopMetrics(), logging.Discard())
	s.handler = NewAssistantHandler(s.assistant, classifier, s.audit, s.sessions, "gemini", logging.Discard())
	s.e = newEcho()
	s.userID = uuid.New()
}

func (s *AssistantHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *AssistantHandlerSuite) suggestion() models.CategoryMap {
	m := sampleCategories(s.T())
	_, err := m.AddKeyword("Transport", "Uber")
	s.Require().NoError(err)
	_, err = m.AddKeyword("Income", "Salary")
	s.Require().NoError(err)
	return m
}

func (s *AssistantHandlerSuite) TestSuggest() {
	loadSession(s.T(), s.sessions, s.userID)
	suggestion := s.suggestion()

	s.assistant.EXPECT().Suggest(gomock.Any(), s.userID, []string{"Salary", "Tesco", "Uber", "Tesco"}, "I commute by taxi").
		Return(suggestion, nil)
	s.audit.EXPECT().LogCategoryChange(gomock.Any(), s.userID, models.AuditActionAssistantMerged, "",
		map[string]interface{}{"provider": "gemini", "categories": 4})

	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/assistant/suggest", dto.AssistantRequest{Habits: "I commute by taxi"}, s.userID)
	s.NoError(s.handler.Suggest(c))

	s.Equal(http.StatusOK, rec.Code)
	var resp dto.AssistantResponse
	decodeData(s.T(), rec, &resp)
	s.Equal("gemini", resp.Provider)
	s.True(resp.Categories.Has("Transport"))
	s.Require().Len(resp.Transactions, 4)
	s.Equal("Income", resp.Transactions[0].Category)
	s.Equal("Transport", resp.Transactions[2].Category)

	st, _ := s.sessions.Get(s.userID)
	s.True(st.Categories.Has("Income"))
}

func (s *AssistantHandlerSuite) TestAmend() {
	loadSession(s.T(), s.sessions, s.userID)

	s.assistant.EXPECT().Amend(gomock.Any(), s.userID, gomock.Any(), "").Return(s.suggestion(), nil)
	s.audit.EXPECT().LogCategoryChange(gomock.Any(), s.userID, models.AuditActionAssistantAmended, "", gomock.Any())

	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/assistant/amend", nil, s.userID)
	s.NoError(s.handler.Amend(c))

	s.Equal(http.StatusOK, rec.Code)
}

func (s *AssistantHandlerSuite) TestSuggest_NothingLoaded() {
	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/assistant/suggest", nil, s.userID)
	s.NoError(s.handler.Suggest(c))

	s.Equal(http.StatusNotFound, rec.Code)
	s.Equal("STATEMENT_007", decodeError(s.T(), rec).Error.Code)
}

func (s *AssistantHandlerSuite) TestSuggest_Unavailable() {
	loadSession(s.T(), s.sessions, s.userID)
	s.assistant.EXPECT().Suggest(gomock.Any(), s.userID, gomock.Any(), gomock.Any()).Return(models.CategoryMap{}, services.ErrCircuitBreakerOpen)

	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/assistant/suggest", nil, s.userID)
	s.NoError(s.handler.Suggest(c))

	s.Equal(http.StatusServiceUnavailable, rec.Code)
	s.Equal("ASSISTANT_001", decodeError(s.T(), rec).Error.Code)

	st, _ := s.sessions.Get(s.userID)
	s.Equal(models.UncategorisedCategory, st.Transactions[2].Category)
}

func (s *AssistantHandlerSuite) TestSuggest_HabitsTooLong() {
	loadSession(s.T(), s.sessions, s.userID)
	long := make([]byte, 1001)
	for i := range long {
		long[i] = 'a'
	}

	c, rec := newJSONContext(s.e, http.MethodPost, "/api/v1/assistant/suggest", dto.AssistantRequest{Habits: string(long)}, s.userID)
	s.NoError(s.handler.Suggest(c))

	s.Equal(http.StatusBadRequest, rec.Code)
}
