package repositories

import (
	"testing"
	"time"

	"finance-dashboard/internal/database"
	"finance-dashboard/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestBlacklistedTokenRepository(t *testing.T) {
	suite.Run(t, new(BlacklistedTokenRepositorySuite))
}

type BlacklistedTokenRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo BlacklistedTokenRepositoryInterface
}

func (s *BlacklistedTokenRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewBlacklistedTokenRepository(s.db.DB)
}

func (s *BlacklistedTokenRepositorySuite) TestCreateAndLookup() {
	token := &models.BlacklistedToken{
		JTI:       uuid.NewString(),
		UserID:    uuid.New(),
		ExpiresAt: time.Now().Add(15 * time.Minute),
	}
	s.Require().NoError(s.repo.Create(token))
	s.NotZero(token.BlacklistedAt)

	found, err := s.repo.GetByJTI(token.JTI)
	s.NoError(err)
	s.Equal(token.UserID, found.UserID)

	listed, err := s.repo.IsBlacklisted(token.JTI)
	s.NoError(err)
	s.True(listed)

	listed, err = s.repo.IsBlacklisted("other")
	s.NoError(err)
	s.False(listed)

	_, err = s.repo.GetByJTI("other")
	s.ErrorIs(err, ErrTokenNotFound)
}

func (s *BlacklistedTokenRepositorySuite) TestCreate_SameJTITwice() {
	jti := uuid.NewString()
	userID := uuid.New()

	s.NoError(s.repo.Create(&models.BlacklistedToken{JTI: jti, UserID: userID, ExpiresAt: time.Now().Add(time.Minute)}))
	s.NoError(s.repo.Create(&models.BlacklistedToken{JTI: jti, UserID: userID, ExpiresAt: time.Now().Add(time.Minute)}))
}

func (s *BlacklistedTokenRepositorySuite) TestDeleteExpired() {
	s.Require().NoError(s.repo.Create(&models.BlacklistedToken{JTI: "expired", UserID: uuid.New(), ExpiresAt: time.Now().Add(-time.Minute)}))
	s.Require().NoError(s.repo.Create(&models.BlacklistedToken{JTI: "live", UserID: uuid.New(), ExpiresAt: time.Now().Add(time.Minute)}))

	count, err := s.repo.DeleteExpired()
	s.NoError(err)
	s.Equal(int64(1), count)

	listed, err := s.repo.IsBlacklisted("live")
	s.NoError(err)
	s.True(listed)
}
