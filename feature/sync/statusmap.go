package sync

// statusMap translates the payment processor's status vocabulary into the
// platform's. Unpaid maps to failing rather than expired: it means a failed
// payment, not an ended subscription.
var statusMap = map[string]string{
	"active":             "active",
	"trialing":           "trialling",
	"canceled":           "cancelled",
	"past_due":           "failing",
	"unpaid":             "failing",
	"incomplete":         "pending",
	"incomplete_expired": "expired",
}

// MapRemoteStatus maps a processor status to the local status vocabulary.
// Unrecognized statuses pass through unchanged so that new processor statuses
// surface as-is instead of failing the record.
func MapRemoteStatus(remoteStatus string) string {
	if local, ok := statusMap[remoteStatus]; ok {
		return local
	}
	return remoteStatus
}
