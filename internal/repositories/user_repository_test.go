package repositories

import (
	"fmt"
	"testing"

	"finance-dashboard/internal/database"
	"finance-dashboard/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

func TestUserRepository(t *testing.T) {
	suite.Run(t, new(UserRepositorySuite))
}

type UserRepositorySuite struct {
	suite.Suite
	db   *database.DB
	repo UserRepositoryInterface
}

func (s *UserRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewUserRepository(s.db.DB)
}

func (s *UserRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *UserRepositorySuite) newLocalUser(username string) *models.User {
	return &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hashed_password",
	}
}

func (s *UserRepositorySuite) TestUserRepository_Create() {
	user := s.newLocalUser("alice")

	err := s.repo.Create(user)
	s.NoError(err)
	s.NotEqual(uuid.Nil, user.ID)
	s.NotZero(user.CreatedAt)
	s.Equal(models.ProviderLocal, user.Provider)
	s.Equal([]string{models.UncategorisedCategory}, user.Categories.Names())
}

func (s *UserRepositorySuite) TestUserRepository_Create_DuplicateUsername() {
	s.Require().NoError(s.repo.Create(s.newLocalUser("alice")))

	err := s.repo.Create(s.newLocalUser("alice"))
	s.ErrorIs(err, ErrUserAlreadyExists)
}

func (s *UserRepositorySuite) TestUserRepository_Create_Nil() {
	s.Error(s.repo.Create(nil))
}

func (s *UserRepositorySuite) TestUserRepository_GetByUsername() {
	user := s.newLocalUser("Alice_1")
	s.Require().NoError(s.repo.Create(user))

	found, err := s.repo.GetByUsername("alice_1")
	s.NoError(err)
	s.Equal(user.ID, found.ID)

	_, err = s.repo.GetByUsername("nobody")
	s.Equal(ErrUserNotFound, err)
}

func (s *UserRepositorySuite) TestUserRepository_ExistsByUsername() {
	s.Require().NoError(s.repo.Create(s.newLocalUser("alice")))

	exists, err := s.repo.ExistsByUsername("ALICE")
	s.NoError(err)
	s.True(exists)

	exists, err = s.repo.ExistsByUsername("bob")
	s.NoError(err)
	s.False(exists)
}

func (s *UserRepositorySuite) TestUserRepository_GetByGoogleID() {
	user := database.CreateTestGoogleUser(s.T(), s.db, "gina", "google-sub-1")

	found, err := s.repo.GetByGoogleID("google-sub-1")
	s.NoError(err)
	s.Equal(user.ID, found.ID)
	s.Equal(models.ProviderGoogle, found.Provider)

	_, err = s.repo.GetByGoogleID("missing")
	s.Equal(ErrUserNotFound, err)
}

func (s *UserRepositorySuite) TestUserRepository_Update() {
	user := s.newLocalUser("alice")
	s.Require().NoError(s.repo.Create(user))

	user.DisplayName = "Alice A."
	s.NoError(s.repo.Update(user))

	updated, err := s.repo.GetByID(user.ID)
	s.NoError(err)
	s.Equal("Alice A.", updated.DisplayName)
}

func (s *UserRepositorySuite) TestUserRepository_UpdateFields() {
	user := s.newLocalUser("alice")
	s.Require().NoError(s.repo.Create(user))

	s.NoError(s.repo.UpdateFields(user.ID, map[string]interface{}{"avatar_url": "https://example.com/a.png"}))

	updated, err := s.repo.GetByID(user.ID)
	s.NoError(err)
	s.Equal("https://example.com/a.png", updated.AvatarURL)

	err = s.repo.UpdateFields(uuid.New(), map[string]interface{}{"avatar_url": "x"})
	s.Equal(ErrUserNotFound, err)
}

func (s *UserRepositorySuite) TestUserRepository_SaveAndGetCategories() {
	user := s.newLocalUser("alice")
	s.Require().NoError(s.repo.Create(user))

	categories, err := models.NewCategoryMap(
		models.CategoryEntry{Name: models.UncategorisedCategory},
		models.CategoryEntry{Name: "Groceries", Keywords: []string{"tesco"}},
		models.CategoryEntry{Name: "Transport", Keywords: []string{"tfl travel charge", "uber"}},
	)
	s.Require().NoError(err)

	s.NoError(s.repo.SaveCategories(user.ID, categories))

	loaded, err := s.repo.GetCategories(user.ID)
	s.NoError(err)
	s.Equal([]string{models.UncategorisedCategory, "Groceries", "Transport"}, loaded.Names())
	keywords, ok := loaded.Keywords("Transport")
	s.True(ok)
	s.Equal([]string{"tfl travel charge", "uber"}, keywords)
}

func (s *UserRepositorySuite) TestUserRepository_Categories_UnknownUser() {
	_, err := s.repo.GetCategories(uuid.New())
	s.Equal(ErrUserNotFound, err)

	err = s.repo.SaveCategories(uuid.New(), models.DefaultCategoryMap())
	s.Equal(ErrUserNotFound, err)
}

func (s *UserRepositorySuite) TestUserRepository_Delete() {
	user := s.newLocalUser("alice")
	s.Require().NoError(s.repo.Create(user))

	s.NoError(s.repo.Delete(user.ID))

	_, err := s.repo.GetByID(user.ID)
	s.Equal(ErrUserNotFound, err)

	s.Equal(ErrUserNotFound, s.repo.Delete(user.ID))
}

func (s *UserRepositorySuite) TestUserRepository_ListUsers() {
	for i := 0; i < 5; i++ {
		s.Require().NoError(s.repo.Create(s.newLocalUser(fmt.Sprintf("user%d", i))))
	}

	users, total, err := s.repo.ListUsers(0, 3)
	s.NoError(err)
	s.Equal(int64(5), total)
	s.Len(users, 3)
	s.Equal("user0", users[0].Username)

	users, total, err = s.repo.ListUsers(3, 3)
	s.NoError(err)
	s.Equal(int64(5), total)
	s.Len(users, 2)
}
