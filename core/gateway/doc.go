// Package gateway provides the client for the remote payment processor.
//
// The reconciliation pipeline treats the processor as the source of truth for
// subscription status and billing period end. The Client interface exposes the
// single lookup the pipeline needs; the HTTP implementation talks to a
// Stripe-compatible REST API using a bearer secret key.
//
// Lookup failures are per-record concerns: a transient fault or an unknown
// profile ID (ErrNotFound) is reported back to the decision layer and never
// aborts a chunk.
package gateway
