// Package database manages the connection to the e-commerce platform's database.
//
// It wraps GORM with sane pool settings and supports two drivers:
//   - mysql: the production database shared with the host platform
//   - sqlite: local development and in-memory test databases
//
// # Schema Inspection
//
// The subscription tables are owned by the host platform, not by this service,
// so the package ships a small inspector (GetTableColumns, VerifyTableColumns)
// used at startup to detect a missing or incompatible subscriptions table and
// warn instead of failing later on the first sync.
package database
