package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
logLevel: "DEBUG"
logFormat: json
banner: "Corner Books"
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "Corner Books", cfg.Banner)
}

func TestLoadPartialFileKeepsDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "logLevel: info\n"))
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.Banner)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("BOOKSTORE_LOG_LEVEL", "error")
	t.Setenv("BOOKSTORE_LOG_FORMAT", "json")
	t.Setenv("BOOKSTORE_BANNER", "Night Shift")

	cfg, err := Load(writeConfig(t, "logLevel: debug\nlogFormat: text\n"))
	require.NoError(t, err)
	assert.Equal(t, "error", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "Night Shift", cfg.Banner)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "read config")

	_, err = Load(writeConfig(t, "logLevel: [unterminated\n"))
	assert.ErrorContains(t, err, "parse config")

	_, err = Load(writeConfig(t, "logFormat: xml\n"))
	assert.ErrorContains(t, err, "logFormat")
}
