package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "http://127.0.0.1:8080", c.ServerBaseURL)
	assert.Equal(t, "skillswap.db", c.DatabasePath)
	assert.Equal(t, 10*time.Second, c.RequestTimeout)
}

func writeTempJSON(t *testing.T, data map[string]any) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cfg.json")
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("loads from the -config flag", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"server_base_url": "http://api.example:9000",
			"database_path":   "/tmp/test.db",
			"request_timeout": "30s",
		})
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "http://api.example:9000", cfg.ServerBaseURL)
		assert.Equal(t, "/tmp/test.db", cfg.DatabasePath)
		assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	})

	t.Run("absent fields keep defaults", func(t *testing.T) {
		path := writeTempJSON(t, map[string]any{
			"server_base_url": "http://api.example:9000",
		})
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "http://api.example:9000", cfg.ServerBaseURL)
		assert.Equal(t, "skillswap.db", cfg.DatabasePath)
		assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	})

	t.Run("no flag leaves config untouched", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{ServerBaseURL: "http://kept:1"}
		parseJson(cfg)
		assert.Equal(t, "http://kept:1", cfg.ServerBaseURL)
	})
}

func Test_parseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-s", "http://flagged:7000", "-f", "other.db"}

	cfg := &Config{}
	cfg.LoadDefaults()
	parseFlags(cfg)

	assert.Equal(t, "http://flagged:7000", cfg.ServerBaseURL)
	assert.Equal(t, "other.db", cfg.DatabasePath)
}
