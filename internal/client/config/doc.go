// Package config loads runtime configuration for the facecam client.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the camera service
//	-d string   path of the local SQLite database
//	-r int      background feed refresh interval (seconds, 0 = off)
//	-l string   log level
//
// # JSON schema
//
//	{
//	  "server_url": "http://127.0.0.1:5000",
//	  "database_path": "facecam.db",
//	  "refresh_interval": "30s",
//	  "log_level": "info"
//	}
//
// Keys missing from the file keep their earlier value.
package config
