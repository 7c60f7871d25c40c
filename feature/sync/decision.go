package sync

import (
	"fmt"
	"time"

	"subscription-sync/core/gateway"
	"subscription-sync/feature/sync/models"
)

// GracePeriod is added to the processor's billing period end when computing
// the local expiration, absorbing clock and payment processing skew.
const GracePeriod = 90 * time.Minute

// expirationLayout is the local expiration representation.
const expirationLayout = "2006-01-02 15:04:05"

// formatExpiration renders a timestamp in the local expiration representation.
// Zero times render as the empty string.
func formatExpiration(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(expirationLayout)
}

// Decision is the outcome of comparing one local record against the remote
// snapshot. It only describes the required changes; applying them is the
// chunk processor's job.
type Decision struct {
	// NewStatus is the proposed local status (mapped from the remote one).
	NewStatus string
	// NewExpiration is the proposed local expiration, empty when the remote
	// subscription carries no billing cycle.
	NewExpiration string
	// UpdateStatus flags a required status change.
	UpdateStatus bool
	// UpdateExpiration flags a required expiration change. Only set when the
	// mode (or a dry run) permits flagging it.
	UpdateExpiration bool
	// Changes describes every field comparison, including "no change" notes,
	// for the result message and the audit log.
	Changes []string
}

// NeedsUpdate reports whether any change was flagged.
func (d Decision) NeedsUpdate() bool {
	return d.UpdateStatus || d.UpdateExpiration
}

// Summary joins the per-field change descriptions.
func (d Decision) Summary() string {
	out := ""
	for i, c := range d.Changes {
		if i > 0 {
			out += ", "
		}
		out += c
	}
	return out
}

// Decide compares a local subscription against the processor's snapshot and
// computes the required changes under the given mode and dry-run flag.
//
// Status and expiration are evaluated independently and both surfaced in
// Changes. The status comparison is mode-independent. The expiration
// comparison differs: a dry run always flags a drift so the preview shows the
// full picture; a live sync flags it only in the expired-future mode, and
// otherwise reports the drift without marking it for mutation.
func Decide(sub models.Subscription, remote *gateway.Subscription, mode Mode, dryRun bool) Decision {
	d := Decision{
		NewStatus: MapRemoteStatus(remote.Status),
	}

	if remote.CurrentPeriodEnd != 0 {
		d.NewExpiration = formatExpiration(time.Unix(remote.CurrentPeriodEnd, 0).Add(GracePeriod))
	}

	// Always surface the status, even when identical, for auditability.
	if d.NewStatus != sub.Status {
		d.UpdateStatus = true
		d.Changes = append(d.Changes, fmt.Sprintf("status: %s → %s", sub.Status, d.NewStatus))
	} else {
		d.Changes = append(d.Changes, fmt.Sprintf("status: %s (no change)", sub.Status))
	}

	currentExpiration := formatExpiration(sub.Expiration)
	if d.NewExpiration != "" && d.NewExpiration != currentExpiration {
		switch {
		case dryRun:
			d.UpdateExpiration = true
			d.Changes = append(d.Changes, fmt.Sprintf("expiration: %s → %s", currentExpiration, d.NewExpiration))
		case mode.MutatesExpiration():
			d.UpdateExpiration = true
			d.Changes = append(d.Changes, fmt.Sprintf("expiration: %s → %s", currentExpiration, d.NewExpiration))
		default:
			d.Changes = append(d.Changes, fmt.Sprintf("expiration: %s → %s (not synced in full audit mode)", currentExpiration, d.NewExpiration))
		}
	}

	return d
}
