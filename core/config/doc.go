// Package config provides configuration management for the launcher.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file. Defaults live next to each field in a `default` tag.
//
// # Configuration Structure
//
//   - Chroma: data directory, server executable, readiness timeout
//   - Server: admin API host, port and API key
//   - Storage: S3/MinIO credentials and snapshot bucket
//   - Database: launch registry connection (sqlite or mysql)
//   - Log: logging level and format
//
// The Chroma bind host, port and telemetry flag are not configurable.
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Chroma.DataDir)
package config
