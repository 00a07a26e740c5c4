package services

import (
	"context"
	"fmt"
	"log/slog"
	"mime"
	"path"
	"path/filepath"
	"strings"
	"time"

	"finance-dashboard/internal/config"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// GCSStatementArchive keeps uploaded statements in a Cloud Storage bucket. It
// uses Application Default Credentials.
type GCSStatementArchive struct {
	client  *storage.Client
	bucket  string
	prefix  string
	metrics MetricsRecorderInterface
	logger  *slog.Logger
	now     func() time.Time
}

// NewStatementArchive returns a GCS archive when a bucket is configured and a
// no-op archive otherwise.
func NewStatementArchive(ctx context.Context, cfg *config.StorageConfig, metrics MetricsRecorderInterface, logger *slog.Logger) (StatementArchiveInterface, error) {
	if cfg.Bucket == "" {
		return noopArchive{}, nil
	}

	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("create storage client: %w", err)
	}

	return &GCSStatementArchive{
		client:  client,
		bucket:  cfg.Bucket,
		prefix:  strings.Trim(cfg.Prefix, "/"),
		metrics: metrics,
		logger:  logger,
		now:     time.Now,
	}, nil
}

// Store writes content and returns its gs:// URI.
func (a *GCSStatementArchive) Store(ctx context.Context, userID uuid.UUID, fileName string, content []byte) (string, error) {
	object := ArchiveObjectName(a.prefix, userID, fileName, a.now())

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := a.client.Bucket(a.bucket).Object(object).NewWriter(ctx)
	w.ContentType = mime.TypeByExtension(filepath.Ext(fileName))
	w.Metadata = map[string]string{"user_id": userID.String(), "file_name": fileName}

	if _, err := w.Write(content); err != nil {
		_ = w.Close()
		a.metrics.IncrementCounter("archive.write", map[string]string{"status": "failed"})
		return "", fmt.Errorf("write statement to gcs: %w", err)
	}
	if err := w.Close(); err != nil {
		a.metrics.IncrementCounter("archive.write", map[string]string{"status": "failed"})
		return "", fmt.Errorf("finalize upload: %w", err)
	}

	a.metrics.IncrementCounter("archive.write", map[string]string{"status": "success"})
	uri := fmt.Sprintf("gs://%s/%s", a.bucket, object)
	a.logger.InfoContext(ctx, "statement archived", "uri", uri, "bytes", len(content))
	return uri, nil
}

func (a *GCSStatementArchive) Close() error {
	return a.client.Close()
}

// ArchiveObjectName is <prefix>/<user>/<UTC timestamp>-<base name>.
func ArchiveObjectName(prefix string, userID uuid.UUID, fileName string, at time.Time) string {
	base := path.Base(strings.ReplaceAll(fileName, "\\", "/"))
	if base == "." || base == "/" || base == "" {
		base = "statement"
	}
	name := fmt.Sprintf("%s-%s", at.UTC().Format("20060102T150405Z"), base)
	if prefix == "" {
		return path.Join(userID.String(), name)
	}
	return path.Join(prefix, userID.String(), name)
}

type noopArchive struct{}

func (noopArchive) Store(context.Context, uuid.UUID, string, []byte) (string, error) {
	return "", nil
}

func (noopArchive) Close() error {
	return nil
}
