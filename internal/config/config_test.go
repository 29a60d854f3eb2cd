package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every TERMINUS_* variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{"TERMINUS_DB", "TERMINUS_KEY", "TERMINUS_LOG_LEVEL", "TERMINUS_LOG_FORMAT"} {
		t.Setenv(name, "") // registers restore on cleanup
		require.NoError(t, os.Unsetenv(name))
	}
}

func missingEnvFile(t *testing.T) string {
	return filepath.Join(t.TempDir(), "absent.env")
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, DefaultDBPath(), cfg.DBPath)
	assert.Equal(t, "life_terminal_station", cfg.Key)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.Equal(t, "console", cfg.LogFormat)
}

func TestLoad_Environment(t *testing.T) {
	clearEnv(t)
	t.Setenv("TERMINUS_DB", "/tmp/station.db")
	t.Setenv("TERMINUS_KEY", "alice")
	t.Setenv("TERMINUS_LOG_LEVEL", "DEBUG")
	t.Setenv("TERMINUS_LOG_FORMAT", "json")

	cfg, err := Load(missingEnvFile(t))
	require.NoError(t, err)

	assert.Equal(t, &Config{DBPath: "/tmp/station.db", Key: "alice", LogLevel: "debug", LogFormat: "json"}, cfg)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("TERMINUS_LOG_LEVEL", "error")

	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("TERMINUS_KEY=from-file\nTERMINUS_LOG_LEVEL=debug\n"), 0644))

	cfg, err := Load(envFile)
	require.NoError(t, err)

	assert.Equal(t, "from-file", cfg.Key)
	assert.Equal(t, "error", cfg.LogLevel, "process environment wins over .env")
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"log level", map[string]string{"TERMINUS_LOG_LEVEL": "loud"}, "TERMINUS_LOG_LEVEL"},
		{"log format", map[string]string{"TERMINUS_LOG_FORMAT": "xml"}, "TERMINUS_LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := Load(missingEnvFile(t))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_EmptyValues(t *testing.T) {
	cfg := &Config{DBPath: "x.db", Key: "", LogLevel: "warn", LogFormat: "console"}
	assert.ErrorContains(t, cfg.Validate(), "TERMINUS_KEY")

	cfg = &Config{DBPath: "", Key: "k", LogLevel: "warn", LogFormat: "console"}
	assert.ErrorContains(t, cfg.Validate(), "TERMINUS_DB")
}

func TestDefaultDBPath(t *testing.T) {
	assert.Equal(t, "terminus.db", filepath.Base(DefaultDBPath()))
}
