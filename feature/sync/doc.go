// Package sync implements the chunked subscription reconciliation pipeline.
//
// The pipeline corrects local subscription records whose status or expiration
// drifted from the payment processor's authoritative state, typically after
// missed webhook events. A reconciliation run is a session:
//
//  1. Initialize freezes the complete ordered list of matching record IDs in
//     one query and stores it, with the selected mode and optional date
//     filter, in an expiring session store (~1 hour TTL).
//  2. The client polls the record count, then repeatedly calls ProcessChunk
//     with advancing offsets. Each chunk slices the frozen list, fetches the
//     current rows by ID, asks the payment processor for each record's state
//     and applies the decision policy (update / skip / per-record error).
//  3. The client stops once its cumulative processed count reaches the frozen
//     total, or a chunk comes back empty.
//
// The frozen list is the load-bearing invariant: both the total count and
// every chunk's slice derive from it, so records mutated mid-session keep
// their slot and are visited exactly once. Re-deriving either side from a
// live filtered query would skip records whose status no longer matches.
//
// Dry-run sessions compute and log every decision without writing to the
// record store. Live sessions back up each record to a session-scoped backup
// file before mutating it and append a note to the subscription. Every
// processed record lands in the session's append-only audit log either way.
package sync
