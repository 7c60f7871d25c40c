package sync

import (
	"context"
	"time"

	"subscription-sync/feature/sync/models"

	"go.uber.org/zap"
)

// ProcessChunk reconciles the next slice of the session's frozen identifier
// list. Offsets advance by the configured chunk size; a zero-record result
// signals either a missing/expired session or an offset past the end, both of
// which callers treat as end-of-data rather than an error.
//
// Per-record failures (remote lookup, persistence) are recovered here and
// surface as failed result entries; a single bad record never aborts a chunk.
func (s *Service) ProcessChunk(ctx context.Context, offset int, dryRun bool) (*models.ChunkResult, error) {
	result := &models.ChunkResult{Results: make([]models.ResultEntry, 0)}

	state, ok := s.sessions.Current()
	if !ok {
		return result, nil
	}

	chunkIDs := s.sessions.Slice(offset, s.ChunkSize())
	if len(chunkIDs) == 0 {
		return result, nil
	}

	subs, err := s.fetchByIDs(ctx, chunkIDs)
	if err != nil {
		return nil, err
	}

	mode := state.Mode
	if mode == "" {
		mode = DefaultMode
	}

	audit := s.auditLog(state.ID)

	s.logger.Debug("Processing chunk",
		zap.Int("offset", offset),
		zap.Int("requested", len(chunkIDs)),
		zap.Int("fetched", len(subs)),
		zap.String("mode", string(mode)),
		zap.Bool("dry_run", dryRun),
	)

	for _, sub := range subs {
		entry := s.processOne(ctx, sub, mode, dryRun, audit)
		result.Processed++
		if entry.Success {
			result.Succeeded++
		} else {
			result.Errors++
		}
		result.Results = append(result.Results, entry)
	}

	return result, nil
}

// processOne reconciles a single subscription and records the outcome in the
// audit log regardless of how it went.
func (s *Service) processOne(ctx context.Context, sub models.Subscription, mode Mode, dryRun bool, audit *AuditLog) models.ResultEntry {
	entry := models.ResultEntry{
		ID:                sub.ID,
		ProfileID:         sub.ProfileID,
		CurrentStatus:     sub.Status,
		CurrentExpiration: formatExpiration(sub.Expiration),
		Action:            models.ActionNone,
	}

	remote, err := s.gateway.RetrieveSubscription(ctx, sub.ProfileID)
	if err != nil {
		entry.Message = "Error: " + err.Error()
		audit.Record(entry, dryRun)
		return entry
	}

	entry.StripeStatus = remote.Status

	d := Decide(sub, remote, mode, dryRun)
	entry.StripeExpiration = d.NewExpiration
	entry.NewStatus = d.NewStatus
	entry.NewExpiration = d.NewExpiration

	if !d.NeedsUpdate() {
		entry.Action = models.ActionSkip
		entry.Success = true
		entry.Message = "Already in sync: " + d.Summary()
		audit.Record(entry, dryRun)
		return entry
	}

	entry.Action = models.ActionUpdate

	if dryRun {
		entry.Success = true
		entry.Message = "Would update: " + d.Summary()
		audit.Record(entry, dryRun)
		return entry
	}

	// Back up the pre-change record before touching the store.
	if err := audit.WriteBackup(sub); err != nil {
		s.logger.Warn("Failed to write backup line", zap.Int64("id", sub.ID), zap.Error(err))
	}

	fields := make(map[string]any)
	if d.UpdateStatus {
		fields["status"] = d.NewStatus
	}
	if d.UpdateExpiration && mode.MutatesExpiration() {
		if t, err := time.ParseInLocation(expirationLayout, d.NewExpiration, time.UTC); err == nil {
			fields["expiration"] = t
		}
	}

	if err := s.updateSubscription(ctx, sub.ID, fields); err != nil {
		s.logger.Error("Subscription update failed", zap.Int64("id", sub.ID), zap.Error(err))
		entry.Message = "Failed to update subscription in database"
		audit.Record(entry, dryRun)
		return entry
	}

	entry.Applied = true
	entry.Success = true
	entry.Message = "Updated: " + d.Summary()

	if err := s.addNote(ctx, sub.ID, "Subscription synced with Stripe. Changes: "+d.Summary()); err != nil {
		// The update itself succeeded; a missing note is not a record failure.
		s.logger.Warn("Failed to add subscription note", zap.Int64("id", sub.ID), zap.Error(err))
	}

	audit.Record(entry, dryRun)
	return entry
}
