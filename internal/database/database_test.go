package database

import (
	"testing"

	"finance-dashboard/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupTestDB_Migrates(t *testing.T) {
	db := SetupTestDB(t)

	for _, table := range []string{"users", "refresh_tokens", "blacklisted_tokens", "audit_logs"} {
		assert.True(t, db.Migrator().HasTable(table), table)
	}
	assert.NoError(t, db.HealthCheck())
}

func TestCreateTestUser_DefaultCategories(t *testing.T) {
	db := SetupTestDB(t)
	user := CreateTestUser(t, db, "alice")

	var loaded models.User
	require.NoError(t, db.First(&loaded, "id = ?", user.ID).Error)
	assert.Equal(t, []string{models.UncategorisedCategory}, loaded.Categories.Names())
}
