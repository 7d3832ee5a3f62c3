package gsi_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hapix/coorkit/gsi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears key for the duration of the test.
func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	require.NoError(t, os.Unsetenv(key))
}

func clearEnv(t *testing.T) {
	for _, k := range []string{gsi.EnvURL, gsi.EnvZone, gsi.EnvInterval, gsi.EnvTimeout, gsi.EnvAttempts} {
		unsetEnv(t, k)
	}
}

func writeDotenv(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := gsi.DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, gsi.DefaultURL, cfg.BaseURL)
	assert.Equal(t, 9, cfg.Zone)
	assert.Equal(t, 2, cfg.RefFrame)
	assert.Equal(t, 1500*time.Millisecond, cfg.Interval)
}

func TestLoadConfigMissingFile(t *testing.T) {
	clearEnv(t)
	cfg, err := gsi.LoadConfig(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)
	assert.Equal(t, gsi.DefaultConfig(), cfg)
}

func TestLoadConfigFromDotenv(t *testing.T) {
	clearEnv(t)
	path := writeDotenv(t, "COORKIT_GSI_URL=http://localhost:8080\n"+
		"COORKIT_GSI_ZONE=4\n"+
		"COORKIT_GSI_INTERVAL=2s\n"+
		"COORKIT_GSI_TIMEOUT=30s\n"+
		"COORKIT_GSI_ATTEMPTS=1\n")

	cfg, err := gsi.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, 4, cfg.Zone)
	assert.Equal(t, 2*time.Second, cfg.Interval)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 1, cfg.Attempts)
}

func TestEnvironmentWinsOverDotenv(t *testing.T) {
	clearEnv(t)
	path := writeDotenv(t, "COORKIT_GSI_ZONE=4\n")
	t.Setenv(gsi.EnvZone, "12")

	cfg, err := gsi.LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Zone)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	for key, val := range map[string]string{
		gsi.EnvZone:     "nine",
		gsi.EnvInterval: "soon",
		gsi.EnvTimeout:  "10",
		gsi.EnvAttempts: "0",
		gsi.EnvURL:      "",
	} {
		clearEnv(t)
		t.Setenv(key, val)
		_, err := gsi.LoadConfig(filepath.Join(t.TempDir(), "absent.env"))
		assert.Error(t, err, "%s=%q", key, val)
	}
}
