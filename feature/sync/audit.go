package sync

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"subscription-sync/feature/sync/models"

	"go.uber.org/zap"
)

// AuditLog is the append-only, human-readable log of one reconciliation
// session. Writes are best-effort: a failed append is logged and dropped, it
// never blocks the pipeline or affects decision outcomes.
type AuditLog struct {
	dir       string
	sessionID string
	logger    *zap.Logger
}

// NewAuditLog creates the audit log handle for a session. The logs directory
// is created on the first write.
func NewAuditLog(dir, sessionID string, logger *zap.Logger) *AuditLog {
	return &AuditLog{dir: dir, sessionID: sessionID, logger: logger}
}

// Filename returns the session's log filename.
func (a *AuditLog) Filename() string {
	return "sync-" + a.sessionID + ".log"
}

// Path returns the full path of the session's log file.
func (a *AuditLog) Path() string {
	return filepath.Join(a.dir, a.Filename())
}

// backupPath returns the session's pre-change backup file path.
func (a *AuditLog) backupPath() string {
	return filepath.Join(a.dir, "backup-"+a.sessionID+".log")
}

// WriteHeader starts a fresh log file with the session parameters.
func (a *AuditLog) WriteHeader(dryRun bool, mode Mode, modifiedAfter string) {
	dateFilter := modifiedAfter
	if dateFilter == "" {
		dateFilter = "None"
	}

	header := fmt.Sprintf(
		"=== Subscription Sync Log ===\n"+
			"Mode: %s\n"+
			"Sync Type: %s\n"+
			"Date Filter: %s\n"+
			"Date: %s\n"+
			"===\n\n",
		modeTag(dryRun),
		mode.Label(),
		dateFilter,
		time.Now().UTC().Format(expirationLayout),
	)

	if err := a.write(a.Path(), header, false); err != nil {
		a.logger.Warn("Failed to initialize audit log", zap.Error(err))
	}
}

// Record appends one structured block for a processed record.
func (a *AuditLog) Record(entry models.ResultEntry, dryRun bool) {
	block := fmt.Sprintf(
		"[%s] %s\n"+
			"  ID: %d\n"+
			"  Profile ID: %s\n"+
			"  Current Status: %s | Current Expiration: %s\n"+
			"  Stripe Status: %s | Stripe Expiration: %s\n"+
			"  Action: %s\n"+
			"  Message: %s\n"+
			"  Success: %s\n"+
			"---\n",
		modeTag(dryRun),
		time.Now().UTC().Format(expirationLayout),
		entry.ID,
		entry.ProfileID,
		entry.CurrentStatus,
		entry.CurrentExpiration,
		orNA(entry.StripeStatus),
		orNA(entry.StripeExpiration),
		entry.Action,
		entry.Message,
		yesNo(entry.Success),
	)

	if err := a.write(a.Path(), block, true); err != nil {
		a.logger.Warn("Failed to append audit log entry", zap.Int64("id", entry.ID), zap.Error(err))
	}
}

// WriteBackup appends a pre-change line for a record about to be mutated.
// Called before the store update so that every live mutation has a recovery
// line even if the update itself fails halfway.
func (a *AuditLog) WriteBackup(sub models.Subscription) error {
	line := fmt.Sprintf(
		"[Backup] ID: %d | Status: %s | Expiration: %s | Profile: %s\n",
		sub.ID,
		sub.Status,
		formatExpiration(sub.Expiration),
		sub.ProfileID,
	)
	return a.write(a.backupPath(), line, true)
}

// Contents returns the full current log text.
func (a *AuditLog) Contents() (string, error) {
	data, err := os.ReadFile(a.Path())
	if err != nil {
		return "", fmt.Errorf("failed to read audit log: %w", err)
	}
	return string(data), nil
}

func (a *AuditLog) write(path, content string, appendMode bool) error {
	if err := os.MkdirAll(a.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	flags := os.O_CREATE | os.O_WRONLY
	if appendMode {
		flags |= os.O_APPEND
	} else {
		flags |= os.O_TRUNC
	}

	f, err := os.OpenFile(path, flags, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	if _, err := f.WriteString(content); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func modeTag(dryRun bool) string {
	if dryRun {
		return "DRY RUN"
	}
	return "LIVE SYNC"
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "NO"
}
