// Package config provides configuration management for the bookmark service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults come from `default` struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: HTTP port, API key, request timeout, body limit
//   - Database: MySQL or SQLite connection details
//   - Storage: S3/MinIO credentials for bookmark snapshots (optional)
//   - Cache: Redis address for the identity cache (optional)
//   - Log: Logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
