package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("empty path returns defaults", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		require.Equal(t, 3009, cfg.Server.Port)
		require.Equal(t, time.Hour, cfg.Cache.TTL)
	})

	t.Run("file values override defaults", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "config.yaml")
		require.NoError(t, os.WriteFile(path, []byte(`
environment: dev
server:
  port: 8080
cache:
  ttl: 10m
`), 0o644))

		cfg, err := Load(path)
		require.NoError(t, err)
		require.Equal(t, "dev", cfg.Environment)
		require.Equal(t, 8080, cfg.Server.Port)
		require.Equal(t, 10*time.Minute, cfg.Cache.TTL)
		require.Equal(t, 30*time.Second, cfg.Fetch.Timeout)
	})

	t.Run("missing file is an error", func(t *testing.T) {
		_, err := Load("/does/not/exist.yaml")
		require.Error(t, err)
	})
}
