package sync

// Config holds configuration for the reconciliation feature.
type Config struct {
	// LogsDir is the directory holding session audit logs and backups.
	LogsDir string `mapstructure:"logs_dir" default:"logs"`
	// ChunkSize is the number of records processed per chunk request.
	ChunkSize int `mapstructure:"chunk_size" default:"10"`
	// SessionTTLMinutes bounds the lifetime of a reconciliation session.
	SessionTTLMinutes int `mapstructure:"session_ttl_minutes" default:"60"`
	// StatsCacheSeconds is the TTL for cached statistics queries.
	StatsCacheSeconds int `mapstructure:"stats_cache_seconds" default:"60"`
}
