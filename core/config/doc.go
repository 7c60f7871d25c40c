// Package config provides configuration management for the subscription sync service.
//
// It utilizes Viper for loading configuration from environment variables and
// .env files via godotenv.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP server settings (port, API key)
//   - Database: platform database connection details
//   - Gateway: payment processor API endpoint and secret key
//   - Storage: S3/MinIO credentials for log archiving
//   - Sync: reconciliation feature settings (logs directory, session TTL)
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
//
// Defaults are declared on the struct fields via the `default` tag and bound
// reflectively, so SERVER_PORT=9090 in the environment overrides server.port.
package config
