// Package config provides configuration management for the backoffice service.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file (loaded via godotenv).
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings,
// divided into subsections:
//   - Server: HTTP server settings (port, API key, reporting currency)
//   - Database: MySQL connection details (sqlite for tests)
//   - Storage: S3/MinIO credentials and export bucket settings
//   - Log: Logging level and format
//
// Defaults are declared as struct tags on the partial configs and bound
// recursively, so every key is also reachable through AutomaticEnv.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Server.Port)
package config
