package sync

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"subscription-sync/core/storage"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// archivePrefix is the object key prefix for archived session logs.
const archivePrefix = "sessions/"

// ArchiveEntry describes one archived session log object.
type ArchiveEntry struct {
	// Name is the log filename (without the storage prefix).
	Name string `json:"name"`
	// Size is the object size in bytes.
	Size int64 `json:"size"`
	// LastModified is the upload timestamp.
	LastModified time.Time `json:"last_modified"`
}

// Archiver uploads completed session logs to object storage so they survive
// host redeployments, and serves them back for the archive endpoints.
type Archiver struct {
	client storage.Client
	bucket string
	logger *zap.Logger
}

// NewArchiver creates an archiver for the given bucket.
func NewArchiver(client storage.Client, bucket string, logger *zap.Logger) *Archiver {
	return &Archiver{client: client, bucket: bucket, logger: logger}
}

// EnsureBucket creates the archive bucket if it does not exist yet.
func (a *Archiver) EnsureBucket(ctx context.Context) error {
	exists, err := a.client.BucketExists(ctx, a.bucket)
	if err != nil {
		return fmt.Errorf("failed to check archive bucket: %w", err)
	}
	if exists {
		return nil
	}
	if err := a.client.MakeBucket(ctx, a.bucket, minio.MakeBucketOptions{}); err != nil {
		return fmt.Errorf("failed to create archive bucket: %w", err)
	}
	return nil
}

// ArchiveFile uploads a local log file under the archive prefix.
// A missing file is not an error; there is simply nothing to archive.
func (a *Archiver) ArchiveFile(ctx context.Context, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read log file: %w", err)
	}

	objectName := archivePrefix + filepath.Base(path)
	_, err = a.client.PutObject(ctx, a.bucket, objectName,
		bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "text/plain"})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", objectName, err)
	}

	a.logger.Info("Archived session log", zap.String("object", objectName), zap.Int("bytes", len(data)))
	return nil
}

// List returns the archived session logs, newest first by name ordering left
// to the caller.
func (a *Archiver) List(ctx context.Context) ([]ArchiveEntry, error) {
	entries := make([]ArchiveEntry, 0)

	for obj := range a.client.ListObjects(ctx, a.bucket, minio.ListObjectsOptions{Prefix: archivePrefix, Recursive: true}) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list archive: %w", obj.Err)
		}
		entries = append(entries, ArchiveEntry{
			Name:         strings.TrimPrefix(obj.Key, archivePrefix),
			Size:         obj.Size,
			LastModified: obj.LastModified,
		})
	}

	return entries, nil
}

// Fetch returns the content of one archived session log.
func (a *Archiver) Fetch(ctx context.Context, name string) (string, error) {
	if name == "" || strings.Contains(name, "/") || strings.Contains(name, "..") {
		return "", fmt.Errorf("invalid archive name")
	}

	reader, err := a.client.GetObject(ctx, a.bucket, archivePrefix+name, minio.GetObjectOptions{})
	if err != nil {
		return "", fmt.Errorf("failed to fetch archived log: %w", err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read archived log: %w", err)
	}
	return string(data), nil
}
