package services

import (
	"context"
	"testing"
	"time"

	"finance-dashboard/internal/config"
	"finance-dashboard/internal/logging"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveObjectName(t *testing.T) {
	userID := uuid.MustParse("7f1c3f5e-54d5-4c1b-9a53-3d3c8a0f2b11")
	at := time.Date(2024, 3, 2, 9, 15, 30, 0, time.FixedZone("BST", 3600))

	tests := []struct {
		name     string
		prefix   string
		fileName string
		want     string
	}{
		{name: "prefixed", prefix: "statements", fileName: "march.xlsx", want: "statements/7f1c3f5e-54d5-4c1b-9a53-3d3c8a0f2b11/20240302T081530Z-march.xlsx"},
		{name: "no prefix", fileName: "march.csv", want: "7f1c3f5e-54d5-4c1b-9a53-3d3c8a0f2b11/20240302T081530Z-march.csv"},
		{name: "strips client path", prefix: "s", fileName: `C:\Users\jane\march.xlsx`, want: "s/7f1c3f5e-54d5-4c1b-9a53-3d3c8a0f2b11/20240302T081530Z-march.xlsx"},
		{name: "traversal", prefix: "s", fileName: "../../etc/passwd", want: "s/7f1c3f5e-54d5-4c1b-9a53-3d3c8a0f2b11/20240302T081530Z-passwd"},
		{name: "empty name", prefix: "s", fileName: "", want: "s/7f1c3f5e-54d5-4c1b-9a53-3d3c8a0f2b11/20240302T081530Z-statement"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ArchiveObjectName(tt.prefix, userID, tt.fileName, at))
		})
	}
}

func TestNewStatementArchive_DisabledWithoutBucket(t *testing.T) {
	archive, err := NewStatementArchive(context.Background(), &config.StorageConfig{}, NewNoopMetrics(), logging.Discard())
	require.NoError(t, err)

	uri, err := archive.Store(context.Background(), uuid.New(), "march.xlsx", []byte("data"))
	assert.NoError(t, err)
	assert.Empty(t, uri)
	assert.NoError(t, archive.Close())
}
