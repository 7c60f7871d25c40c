package sync

import (
	"context"
	"fmt"
	"regexp"
	"time"

	"subscription-sync/core/gateway"
	"subscription-sync/core/transient"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
	"gorm.io/gorm"
)

// dateFilterPattern validates the optional modified-after filter. Malformed
// dates are silently discarded rather than rejected.
var dateFilterPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// sessionIDLayout names sessions after their start time; the audit log
// filename is derived from it.
const sessionIDLayout = "2006-01-02-150405"

// Service owns the reconciliation pipeline: session lifecycle, chunk
// processing, statistics and log access. One instance is constructed at
// process start and shared by the HTTP handler and the CLI command.
type Service struct {
	db         *gorm.DB
	gateway    gateway.Client
	sessions   *Sessions
	archiver   *Archiver
	logger     *zap.Logger
	cfg        Config
	statsCache *transient.MemoryStore
	statsSF    singleflight.Group
}

// NewService wires the reconciliation service. The archiver may be nil when
// log archiving is disabled.
func NewService(db *gorm.DB, gw gateway.Client, store transient.Store, archiver *Archiver, logger *zap.Logger, cfg Config) *Service {
	return &Service{
		db:         db,
		gateway:    gw,
		sessions:   NewSessions(store, sessionTTL(cfg)),
		archiver:   archiver,
		logger:     logger,
		cfg:        cfg,
		statsCache: transient.NewMemoryStore(),
	}
}

func sessionTTL(cfg Config) time.Duration {
	if cfg.SessionTTLMinutes <= 0 {
		return time.Hour
	}
	return time.Duration(cfg.SessionTTLMinutes) * time.Minute
}

// ChunkSize returns the fixed per-chunk record count announced to clients.
func (s *Service) ChunkSize() int {
	if s.cfg.ChunkSize <= 0 {
		return 10
	}
	return s.cfg.ChunkSize
}

// auditLog returns the audit log handle for a session ID.
func (s *Service) auditLog(sessionID string) *AuditLog {
	return NewAuditLog(s.cfg.LogsDir, sessionID, s.logger)
}

// Initialize begins a new reconciliation session: it validates the inputs,
// freezes the matching identifier list in one query, persists the session
// state with a bounded TTL and opens a fresh audit log. The previous
// session's log, if any, is archived first (best-effort).
//
// It returns the new session's audit log filename.
func (s *Service) Initialize(ctx context.Context, dryRun bool, modeValue, modifiedAfter string) (string, error) {
	mode := ParseMode(modeValue)

	if !dateFilterPattern.MatchString(modifiedAfter) {
		modifiedAfter = ""
	}
	if !mode.AllowsDateFilter() {
		modifiedAfter = ""
	}

	if prev, ok := s.sessions.Current(); ok && s.archiver != nil {
		if err := s.archiver.ArchiveFile(ctx, s.auditLog(prev.ID).Path()); err != nil {
			s.logger.Warn("Failed to archive previous session log", zap.String("session", prev.ID), zap.Error(err))
		}
	}

	now := time.Now().UTC()
	sessionID := now.Format(sessionIDLayout)

	// The one and only filtered query of the session. Count and chunk
	// slicing both derive from this list from here on.
	ids, err := s.subscriptionIDs(ctx, mode, modifiedAfter)
	if err != nil {
		return "", err
	}

	s.sessions.Begin(SessionState{
		ID:            sessionID,
		Mode:          mode,
		ModifiedAfter: modifiedAfter,
		DryRun:        dryRun,
		FrozenIDs:     ids,
		StartedAt:     now,
	})

	audit := s.auditLog(sessionID)
	audit.WriteHeader(dryRun, mode, modifiedAfter)

	s.logger.Info("Sync session initialized",
		zap.String("session", sessionID),
		zap.String("mode", string(mode)),
		zap.Bool("dry_run", dryRun),
		zap.Int("total", len(ids)),
	)

	if mode == ModeAllActive && !dryRun {
		if err := s.setLastRun(ctx, formatExpiration(now)); err != nil {
			s.logger.Warn("Failed to record last full sync", zap.Error(err))
		}
	}

	return audit.Filename(), nil
}

// Count returns the frozen identifier list length for the active session,
// zero when none is active.
func (s *Service) Count() int {
	return s.sessions.Count()
}

// LogContents returns the active session's audit log text and filename.
func (s *Service) LogContents() (content, filename string, err error) {
	state, ok := s.sessions.Current()
	if !ok {
		return "", "", fmt.Errorf("no log file found")
	}

	audit := s.auditLog(state.ID)
	content, err = audit.Contents()
	if err != nil {
		return "", "", fmt.Errorf("no log file found")
	}
	return content, audit.Filename(), nil
}
