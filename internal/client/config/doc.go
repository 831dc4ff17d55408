// Package config loads runtime configuration for the VidWave CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. Command-line flags, which override earlier values.
//
// Supported flags
//
//	-auth string        base URL of the auth service
//	-dashboard string   base URL of the dashboard service
//	-thumbnail string   base URL of the thumbnail service
//	-d string           data directory for the local database
//	-t int              request timeout in seconds (0 = none)
//	-l string           log level
//
// # JSON schema
//
// Keys left out of the file keep their previous value. The timeout may be a
// duration string or integer nanoseconds:
//
//	{
//	  "auth_url": "https://auth.example",
//	  "dashboard_url": "https://dashboard.example",
//	  "thumbnail_url": "https://thumbs.example",
//	  "data_dir": ".vidwave",
//	  "request_timeout": "30s",
//	  "log_level": "debug"
//	}
package config
