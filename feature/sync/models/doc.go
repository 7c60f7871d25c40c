// Package models defines the database models and transport types for the
// subscription sync feature.
//
// Subscription maps the platform's recurring subscriptions table; the service
// treats it as externally owned and touches only the status and expiration
// columns. ResultEntry and ChunkResult are the per-record and per-chunk
// reconciliation outcomes exchanged with the admin client.
package models
