// Package storage provides the object storage client used for log archival.
//
// Audit logs and pre-change backups are written to the local logs directory
// first; when archiving is enabled, completed session logs are uploaded to an
// S3-compatible bucket so they survive host redeployments.
//
// The Client interface wraps the subset of minio operations the archiver
// needs, keeping it mockable in tests (see the mocks sub-package).
package storage
