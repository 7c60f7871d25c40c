package sync

import (
	"time"

	"subscription-sync/core/transient"
)

// sessionKey is the transient store key holding the active session.
// The design assumes exactly one concurrent session per deployment.
const sessionKey = "sync_session"

// SessionState is the frozen state of one reconciliation session.
// FrozenIDs is captured exactly once, at session start, and is the single
// source of truth for both the total count and per-chunk slicing. It is never
// recomputed from a live filter query: records mutated mid-session keep their
// original slot and are visited exactly once.
type SessionState struct {
	// ID names the session and derives the audit log filename.
	ID string
	// Mode is the filter/mutation policy selected at session start.
	Mode Mode
	// ModifiedAfter is the optional date filter (YYYY-MM-DD), empty if unset.
	ModifiedAfter string
	// DryRun records whether the session was started as a preview.
	DryRun bool
	// FrozenIDs is the complete ordered list of matching record IDs.
	FrozenIDs []int64
	// StartedAt is the session creation time.
	StartedAt time.Time
}

// Sessions manages the single active reconciliation session on top of the
// expiring key/value store. An expired session is indistinguishable from no
// session, which callers treat as a normal "nothing to do" condition.
type Sessions struct {
	store transient.Store
	ttl   time.Duration
}

// NewSessions creates a session manager with the given TTL.
func NewSessions(store transient.Store, ttl time.Duration) *Sessions {
	return &Sessions{store: store, ttl: ttl}
}

// Begin replaces any existing session with the given state.
func (s *Sessions) Begin(state SessionState) {
	s.store.Delete(sessionKey)
	s.store.Set(sessionKey, state, s.ttl)
}

// Current returns the active session, if one exists and has not expired.
func (s *Sessions) Current() (SessionState, bool) {
	v, ok := s.store.Get(sessionKey)
	if !ok {
		return SessionState{}, false
	}
	state, ok := v.(SessionState)
	return state, ok
}

// Count returns the frozen ID list length, or zero without a session.
// It never re-queries the database; see SessionState.FrozenIDs.
func (s *Sessions) Count() int {
	state, ok := s.Current()
	if !ok {
		return 0
	}
	return len(state.FrozenIDs)
}

// Mode returns the active session's mode, falling back to DefaultMode when
// the session has expired mid-run.
func (s *Sessions) Mode() Mode {
	state, ok := s.Current()
	if !ok || state.Mode == "" {
		return DefaultMode
	}
	return state.Mode
}

// Slice returns the sub-sequence of frozen IDs for one chunk. The result is
// empty when no session is active or the offset is past the end.
func (s *Sessions) Slice(offset, limit int) []int64 {
	state, ok := s.Current()
	if !ok || offset < 0 || limit <= 0 {
		return nil
	}
	if offset >= len(state.FrozenIDs) {
		return nil
	}
	end := offset + limit
	if end > len(state.FrozenIDs) {
		end = len(state.FrozenIDs)
	}
	return state.FrozenIDs[offset:end]
}
