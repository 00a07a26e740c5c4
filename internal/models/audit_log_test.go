package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAuditLog(t *testing.T) {
	userID := uuid.New()
	log := NewAuditLog(&userID, AuditActionKeywordAdded, AuditResourceCategories, "Groceries").
		SetMetadata("keyword", "tesco").
		WithClient("10.0.0.1", "curl/8")

	assert.Equal(t, &userID, log.UserID)
	assert.Equal(t, AuditActionKeywordAdded, log.Action)
	assert.Equal(t, AuditResourceCategories, log.Resource)
	assert.Equal(t, "Groceries", log.ResourceID)
	assert.Equal(t, JSONBMap{"keyword": "tesco"}, log.Metadata)
	assert.Equal(t, "10.0.0.1", log.IPAddress)
	assert.Equal(t, "curl/8", log.UserAgent)
}

func TestAuditLog_String(t *testing.T) {
	log := NewAuditLog(nil, AuditActionFailedLogin, AuditResourceUser, "bob")
	assert.Contains(t, log.String(), "User: anonymous")
	assert.Contains(t, log.String(), "Action: failed_login")
}

func TestJSONBMap_ValueScan(t *testing.T) {
	tests := []struct {
		name  string
		input JSONBMap
	}{
		{name: "nil map", input: nil},
		{name: "populated map", input: JSONBMap{"rows": float64(12), "file": "jan.xlsx"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			value, err := tt.input.Value()
			require.NoError(t, err)

			var out JSONBMap
			require.NoError(t, out.Scan(value))
			if tt.input == nil {
				assert.Nil(t, out)
				return
			}
			assert.Equal(t, tt.input, out)
		})
	}
}

func TestJSONBMap_ScanInvalidType(t *testing.T) {
	var m JSONBMap
	assert.Error(t, m.Scan(42))
}
