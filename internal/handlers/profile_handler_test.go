package handlers

import (
	"errors"
	"net/http"
	"testing"

	"finance-dashboard/internal/dto"
	"finance-dashboard/internal/models"
	"finance-dashboard/internal/repositories"
	"finance-dashboard/internal/repositories/repository_mocks"
	"finance-dashboard/internal/services/service_mocks"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

func TestProfileHandler(t *testing.T) {
	suite.Run(t, new(ProfileHandlerSuite))
}

type ProfileHandlerSuite struct {
	suite.Suite
	ctrl     *gomock.Controller
	userRepo *repository_mocks.MockUserRepositoryInterface
	audit    *service_mocks.MockAuditServiceInterface
	handler  *ProfileHandler
	e        *echo.Echo
	userID   uuid.UUID
}

func (s *ProfileHandlerSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.userRepo = repository_mocks.NewMockUserRepositoryInterface(s.ctrl)
	s.audit = service_mocks.NewMockAuditServiceInterface(s.ctrl)
	s.handler = NewProfileHandler(s.userRepo, s.audit)
	s.e = newEcho()
	s.userID = uuid.New()
}

func (s *ProfileHandlerSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *ProfileHandlerSuite) TestMe() {
	email := gofakeit.Email()
	s.userRepo.EXPECT().GetByID(s.userID).Return(&models.User{
		ID:       s.userID,
		Username: "jane_doe",
		Email:    email,
		Provider: models.ProviderLocal,
	}, nil)

	c, rec := newJSONContext(s.e, http.MethodGet, "/api/v1/me", nil, s.userID)
	s.NoError(s.handler.Me(c))

	s.Equal(http.StatusOK, rec.Code)
	var profile dto.UserProfileResponse
	decodeData(s.T(), rec, &profile)
	s.Equal(s.userID.String(), profile.ID)
	s.Equal(email, profile.Email)
	s.Equal(models.ProviderLocal, profile.Provider)
}

func (s *ProfileHandlerSuite) TestMe_UserGone() {
	s.userRepo.EXPECT().GetByID(s.userID).Return(nil, repositories.ErrUserNotFound)

	c, rec := newJSONContext(s.e, http.MethodGet, "/api/v1/me", nil, s.userID)
	s.NoError(s.handler.Me(c))

	s.Equal(http.StatusUnauthorized, rec.Code)
	s.Equal("AUTH_004", decodeError(s.T(), rec).Error.Code)
}

func (s *ProfileHandlerSuite) TestMe_DatabaseError() {
	s.userRepo.EXPECT().GetByID(s.userID).Return(nil, errors.New("connection refused"))

	c, rec := newJSONContext(s.e, http.MethodGet, "/api/v1/me", nil, s.userID)
	s.NoError(s.handler.Me(c))

	s.Equal(http.StatusInternalServerError, rec.Code)
	s.NotContains(rec.Body.String(), "connection refused")
}

func (s *ProfileHandlerSuite) TestActivity_Defaults() {
	userID := s.userID
	logs := []*models.AuditLog{
		models.NewAuditLog(&userID, models.AuditActionStatementLoaded, models.AuditResourceStatement, "march.csv"),
	}
	s.audit.EXPECT().GetUserActivity(s.userID, 0, 20).Return(logs, int64(1), nil)

	c, rec := newJSONContext(s.e, http.MethodGet, "/api/v1/me/activity", nil, s.userID)
	s.NoError(s.handler.Activity(c))

	s.Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"total":1`)
	s.Contains(rec.Body.String(), models.AuditActionStatementLoaded)
}

func (s *ProfileHandlerSuite) TestActivity_ClampsLimit() {
	s.audit.EXPECT().GetUserActivity(s.userID, 40, 20).Return([]*models.AuditLog{}, int64(0), nil)

	c, rec := newJSONContext(s.e, http.MethodGet, "/api/v1/me/activity?offset=40&limit=500", nil, s.userID)
	s.NoError(s.handler.Activity(c))

	s.Equal(http.StatusOK, rec.Code)
}
