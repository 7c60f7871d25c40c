package sync

import (
	"time"

	"gorm.io/gorm"
)

// Mode selects which subscriptions a session targets and which fields a live
// sync may mutate. It is a closed set; unknown inputs coerce to the default.
type Mode string

const (
	// ModeExpiredFuture targets expired subscriptions whose local expiration
	// still lies in the future. The mode exists to correct wrong expirations,
	// so it is the only one allowed to mutate the expiration column.
	ModeExpiredFuture Mode = "expired_future"
	// ModeFailing targets subscriptions stuck in the failing status.
	ModeFailing Mode = "failing"
	// ModeAllActive targets every subscription regardless of status (full
	// audit). Expiration discrepancies are reported but never mutated.
	ModeAllActive Mode = "all_active"
)

// DefaultMode is applied when a request carries an unknown mode and when a
// session's stored mode is lost mid-run.
const DefaultMode = ModeExpiredFuture

// ParseMode validates a client-supplied mode string.
// Unknown values silently coerce to DefaultMode.
func ParseMode(s string) Mode {
	switch Mode(s) {
	case ModeExpiredFuture, ModeFailing, ModeAllActive:
		return Mode(s)
	default:
		return DefaultMode
	}
}

// Label returns the human-readable name used in log headers.
func (m Mode) Label() string {
	switch m {
	case ModeFailing:
		return "Failing Subscriptions"
	case ModeAllActive:
		return "All Subscriptions (Full Audit)"
	default:
		return "Expired with Future Dates"
	}
}

// AllowsDateFilter reports whether the modified-after filter applies.
// The expired-future query is already narrow; the filter only makes sense for
// the broad modes.
func (m Mode) AllowsDateFilter() bool {
	return m == ModeFailing || m == ModeAllActive
}

// MutatesExpiration reports whether a live sync in this mode may write the
// expiration column.
func (m Mode) MutatesExpiration() bool {
	return m == ModeExpiredFuture
}

// Scope applies the mode's record filter to a query. Every mode requires a
// stripe gateway record with a non-empty profile ID; modifiedAfter further
// restricts by modification date where the mode permits it.
func (m Mode) Scope(db *gorm.DB, now time.Time, modifiedAfter string) *gorm.DB {
	q := db.Where("gateway = ?", "stripe").Where("profile_id != ?", "")

	switch m {
	case ModeExpiredFuture:
		q = q.Where("status = ?", "expired").Where("expiration > ?", now)
	case ModeFailing:
		q = q.Where("status = ?", "failing")
	}

	if m.AllowsDateFilter() && modifiedAfter != "" {
		if t, err := time.Parse("2006-01-02", modifiedAfter); err == nil {
			q = q.Where("date_modified >= ?", t)
		}
	}

	return q
}
