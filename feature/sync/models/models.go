package models

import "time"

// Subscription is a recurring subscription record in the platform database.
// The table is owned by the e-commerce platform; this service only reads it
// and corrects the status and expiration columns.
type Subscription struct {
	// ID is the immutable primary key.
	ID int64 `gorm:"column:id;primaryKey" json:"id"`
	// ProfileID is the subscription identifier at the payment processor.
	// Records with an empty profile ID are never in scope for a sync.
	ProfileID string `gorm:"column:profile_id" json:"profile_id"`
	// Gateway is the payment gateway the subscription was created with.
	Gateway string `gorm:"column:gateway" json:"gateway"`
	// Status is the local subscription status (active, trialling, cancelled,
	// failing, pending, expired, ...).
	Status string `gorm:"column:status" json:"status"`
	// Expiration is the local end of the current billing period.
	Expiration time.Time `gorm:"column:expiration" json:"expiration"`
	// DateModified is the last modification timestamp, used only as an
	// optional lower bound when selecting records for a session.
	DateModified time.Time `gorm:"column:date_modified" json:"date_modified"`
}

// TableName maps the model onto the platform's subscriptions table.
func (Subscription) TableName() string {
	return "edd_subscriptions"
}

// SubscriptionNote is an audit note attached to a subscription, mirroring the
// platform's own note mechanism. One note is appended per live update.
type SubscriptionNote struct {
	ID             int64     `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	SubscriptionID int64     `gorm:"column:subscription_id;index" json:"subscription_id"`
	Note           string    `gorm:"column:note" json:"note"`
	DateCreated    time.Time `gorm:"column:date_created;autoCreateTime" json:"date_created"`
}

// TableName maps the model onto the notes table.
func (SubscriptionNote) TableName() string {
	return "edd_subscription_notes"
}

// SyncOption is a persistent key/value setting owned by this service,
// e.g. the timestamp of the last completed full live sync.
type SyncOption struct {
	Name  string `gorm:"column:option_name;primaryKey" json:"name"`
	Value string `gorm:"column:option_value" json:"value"`
}

// TableName maps the model onto the sync options table.
func (SyncOption) TableName() string {
	return "edd_sync_options"
}

// ResultEntry is the outcome of reconciling a single subscription within a
// chunk. It is returned to the client and written to the audit log, but never
// persisted beyond that.
type ResultEntry struct {
	// ID is the local subscription ID.
	ID int64 `json:"id"`
	// ProfileID is the processor-side subscription identifier.
	ProfileID string `json:"profile_id"`
	// CurrentStatus is the local status before processing.
	CurrentStatus string `json:"current_status"`
	// CurrentExpiration is the local expiration before processing.
	CurrentExpiration string `json:"current_expiration"`
	// StripeStatus is the status reported by the payment processor.
	StripeStatus string `json:"stripe_status"`
	// StripeExpiration is the processor's billing period end plus the grace
	// period, formatted as a local expiration. Empty when the remote record
	// carries no billing cycle.
	StripeExpiration string `json:"stripe_expiration"`
	// NewStatus is the proposed local status.
	NewStatus string `json:"new_status"`
	// NewExpiration is the proposed local expiration.
	NewExpiration string `json:"new_expiration"`
	// Action is the classification: none, update or skip.
	Action string `json:"action"`
	// Applied reports whether a live update was persisted.
	Applied bool `json:"applied"`
	// Success is false for remote lookup and persistence failures.
	Success bool `json:"success"`
	// Message describes the outcome, including per-field changes.
	Message string `json:"message"`
}

// Result actions.
const (
	ActionNone   = "none"
	ActionUpdate = "update"
	ActionSkip   = "skip"
)

// ChunkResult aggregates the outcome of a single chunk call.
// Skipped is derived by callers as Processed - Succeeded - Errors.
type ChunkResult struct {
	// Processed is the number of records visited in this chunk.
	Processed int `json:"processed"`
	// Succeeded counts records processed without a failure.
	Succeeded int `json:"succeeded"`
	// Errors counts records whose remote lookup or persistence failed.
	Errors int `json:"errors"`
	// Results holds the per-record outcomes in ascending ID order.
	Results []ResultEntry `json:"results"`
}

// Statistics summarizes the records a mode currently matches.
type Statistics struct {
	// Total is the number of matching subscriptions.
	Total int `json:"total"`
	// ByDaysFuture buckets expired-with-future-date records by how far in
	// the future their expiration lies. Only populated for that mode.
	ByDaysFuture map[string]int `json:"by_days_future"`
	// LastRun is the timestamp of the last completed full live sync, empty
	// if none has run yet.
	LastRun string `json:"last_run,omitempty"`
}
