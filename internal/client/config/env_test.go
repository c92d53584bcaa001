package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEnv(t *testing.T) {
	t.Run("overlays set variables only", func(t *testing.T) {
		t.Setenv("SHOP_API_BASE_URL", "https://env.example.com")
		t.Setenv("SHOP_REQUEST_TIMEOUT", "5s")

		cfg := &Config{DatabasePath: "keep.db", OnlineCheckInterval: time.Second}
		parseEnv(cfg)

		want := &Config{
			APIBaseURL:          "https://env.example.com",
			DatabasePath:        "keep.db",
			OnlineCheckInterval: time.Second,
			RequestTimeout:      5 * time.Second,
		}
		assert.Empty(t, cmp.Diff(want, cfg))
	})

	t.Run("malformed duration panics", func(t *testing.T) {
		t.Setenv("SHOP_ONLINE_CHECK_INTERVAL", "soon")

		require.Panics(t, func() { parseEnv(&Config{}) })
	})
}
