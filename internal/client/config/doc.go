// Package config loads runtime configuration for the shopkeeper CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. SHOP_* environment variables (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   API base URL
//	-d string   local database file
//	-i int      online status check interval (seconds)
//	-l string   log level
//	-o string   log file (JSON lines)
//
// # Environment
//
//	SHOP_API_BASE_URL, SHOP_DATABASE_PATH, SHOP_ONLINE_CHECK_INTERVAL,
//	SHOP_REQUEST_TIMEOUT, SHOP_LOG_LEVEL, SHOP_LOG_FILE
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:3000",
//	  "database_path": "shopkeeper.db",
//	  "online_check_interval": "3s",
//	  "request_timeout": "10s",
//	  "log_level": "info",
//	  "log_file": "shopkeeper.log"
//	}
package config
