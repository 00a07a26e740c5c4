package database

import (
	"fmt"
	"testing"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/logging"
	"finance-dashboard/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SetupTestDB returns a migrated in-memory sqlite database.
func SetupTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	// Every pooled connection to ":memory:" is a separate database.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	testDB := &DB{
		DB:     db,
		config: &config.DatabaseConfig{Driver: config.DriverSQLite, SQLitePath: ":memory:"},
		logger: logging.Discard(),
	}

	if err := testDB.AutoMigrate(); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() { _ = testDB.Close() })
	return testDB
}

func CreateTestUser(t *testing.T, db *DB, username string) *models.User {
	t.Helper()

	user := &models.User{
		Username:     username,
		Email:        username + "@example.com",
		PasswordHash: "hashed_password",
		Provider:     models.ProviderLocal,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}

	return user
}

func CreateTestGoogleUser(t *testing.T, db *DB, username, googleID string) *models.User {
	t.Helper()

	user := &models.User{
		Username: username,
		Email:    username + "@gmail.com",
		GoogleID: &googleID,
		Provider: models.ProviderGoogle,
	}

	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test google user: %v", err)
	}

	return user
}

func CleanupTestDB(t *testing.T, db *DB) {
	t.Helper()

	for _, table := range []string{"audit_logs", "blacklisted_tokens", "refresh_tokens", "users"} {
		if err := db.Exec(fmt.Sprintf("DELETE FROM %s", table)).Error; err != nil {
			t.Logf("failed to cleanup table %s: %v", table, err)
		}
	}
}
