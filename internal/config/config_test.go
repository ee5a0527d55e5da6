package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sortscope.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault_IsValid(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, ":7070", cfg.Server.Addr)
	assert.Equal(t, "*", cfg.Server.AllowedOrigin)
	assert.Equal(t, "bubble", cfg.Server.DefaultAlgorithm)
	assert.Equal(t, 2000, cfg.Server.MaxArraySize)
	assert.Equal(t, 10000, cfg.Server.GenerateMax)
	assert.Empty(t, cfg.Store.Path)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_MergesOverDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  addr: "127.0.0.1:8080"
  max_array_size: 50
store:
  path: /tmp/runs.db
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr)
	assert.Equal(t, 50, cfg.Server.MaxArraySize)
	assert.Equal(t, "*", cfg.Server.AllowedOrigin, "absent key keeps default")
	assert.Equal(t, "bubble", cfg.Server.DefaultAlgorithm)
	assert.Equal(t, "/tmp/runs.db", cfg.Store.Path)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoad_EmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errLike string
	}{
		{"unknown key", "server:\n  port: 80\n", "field port not found"},
		{"bad level", "log:\n  level: loud\n", "Log.Level"},
		{"zero max array size", "server:\n  max_array_size: 0\n", "MaxArraySize"},
		{"bad addr", "server:\n  addr: nowhere\n", "Addr"},
		{"not yaml", "server: [", "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errLike)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestSlogLevel(t *testing.T) {
	for level, want := range map[string]slog.Level{
		"debug": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"":      slog.LevelInfo,
	} {
		cfg := Default()
		cfg.Log.Level = level
		assert.Equal(t, want, cfg.SlogLevel(), level)
	}
}
