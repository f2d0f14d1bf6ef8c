// Package config loads runtime configuration for the Voyage CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file selected with -c or -config.
//  3. VOYAGE_* environment variables.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-d string   directory for the durable session database
//	-l string   log level
//
// # JSON schema
//
// Delays accept strings like "1.5s" or integer nanoseconds:
//
//	{
//	  "data_dir": "voyage-data",
//	  "log_level": "info",
//	  "login_delay": "1s",
//	  "register_delay": "1.5s",
//	  "logout_delay": "500ms",
//	  "update_delay": "1s"
//	}
//
// # Environment
//
//	VOYAGE_DATA_DIR, VOYAGE_LOG_LEVEL, VOYAGE_LOGIN_DELAY,
//	VOYAGE_REGISTER_DELAY, VOYAGE_LOGOUT_DELAY, VOYAGE_UPDATE_DELAY
package config
