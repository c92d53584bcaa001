package config

import "time"

// Config holds runtime settings for the shopkeeper CLI.
//
// Fields:
//   - APIBaseURL: base URL of the Shopping World API (scheme and host, optional path prefix).
//   - DatabasePath: SQLite file holding the session token.
//   - OnlineCheckInterval: how often the client probes server reachability.
//   - RequestTimeout: per-request timeout for API calls; 0 disables it.
//   - LogLevel: level name (debug, info, warn, error).
//   - LogFile: when set, logs are appended to this file as JSON lines instead
//     of going to stderr.
type Config struct {
	APIBaseURL          string        `env:"API_BASE_URL"`
	DatabasePath        string        `env:"DATABASE_PATH"`
	OnlineCheckInterval time.Duration `env:"ONLINE_CHECK_INTERVAL"`
	RequestTimeout      time.Duration `env:"REQUEST_TIMEOUT"`
	LogLevel            string        `env:"LOG_LEVEL"`
	LogFile             string        `env:"LOG_FILE"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000"
	c.DatabasePath = "shopkeeper.db"
	c.OnlineCheckInterval = 3 * time.Second
	c.RequestTimeout = 0
	c.LogLevel = "warn"
	c.LogFile = ""
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
