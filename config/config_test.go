package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-tracker/internal/naturallanguage"
)

func newViper(t *testing.T, yaml string) *viper.Viper {
	t.Helper()
	dir := t.TempDir()
	if yaml != "" {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))
	}
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(dir)
	return v
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := load(newViper(t, ""))
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.HTTPServer.Port)
	assert.Equal(t, naturallanguage.EngineDatemath, cfg.NaturalLanguage.Engine)
	assert.Equal(t, "UTC", cfg.NaturalLanguage.Timezone)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 120, cfg.RateLimit.RequestsPerMin)
}

func TestLoad_File(t *testing.T) {
	cfg, err := load(newViper(t, `
http_server:
  port: 9090
natural_language:
  engine: When
  timezone: Asia/Ho_Chi_Minh
storage:
  driver: sqlite
  sqlite_path: /tmp/todos.db
rate_limit:
  enabled: false
`))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTPServer.Port)
	assert.Equal(t, naturallanguage.EngineWhen, cfg.NaturalLanguage.Engine)
	assert.Equal(t, "Asia/Ho_Chi_Minh", cfg.NaturalLanguage.Timezone)
	assert.Equal(t, DriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/todos.db", cfg.Storage.SQLitePath)
	assert.False(t, cfg.RateLimit.Enabled)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("NATURAL_LANGUAGE_ENGINE", "when")
	t.Setenv("HTTP_SERVER_PORT", "7070")

	cfg, err := load(newViper(t, ""))
	require.NoError(t, err)
	assert.Equal(t, naturallanguage.EngineWhen, cfg.NaturalLanguage.Engine)
	assert.Equal(t, 7070, cfg.HTTPServer.Port)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown engine", "natural_language:\n  engine: chrono\n"},
		{"bad timezone", "natural_language:\n  timezone: Mars/Olympus\n"},
		{"unknown driver", "storage:\n  driver: postgres\n"},
		{"sqlite without path", "storage:\n  driver: sqlite\n  sqlite_path: \"\"\n"},
		{"bad port", "http_server:\n  port: 70000\n"},
		{"rate limit without budget", "rate_limit:\n  enabled: true\n  requests_per_min: 0\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := load(newViper(t, tt.yaml))
			assert.Error(t, err)
		})
	}
}
