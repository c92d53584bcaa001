package config

import "github.com/caarlos0/env/v11"

// EnvPrefix is prepended to every variable name read by parseEnv.
const EnvPrefix = "SHOP_"

// parseEnv overlays Config with SHOP_* environment variables. Variables that
// are not set leave the corresponding field untouched. Durations use Go
// syntax ("5s", "250ms"). Panics on malformed values.
func parseEnv(cfg *Config) {
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		panic(err)
	}
}
