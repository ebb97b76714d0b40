package servermanager

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig(map[string]any{
		"host":     "panel.example.com",
		"username": "admin",
		"password": "secret",
	})
	require.NoError(t, err)

	assert.Equal(t, "panel.example.com", cfg.Host)
	assert.Equal(t, "", cfg.Port)
	assert.False(t, cfg.VerifyTLS)
	assert.True(t, cfg.SkipTLSVerify())
	assert.Equal(t, 30*time.Second, cfg.Timeout())
	assert.Equal(t, "info", cfg.LogLevel)
}

func TestLoadConfigAcceptsNumericPort(t *testing.T) {
	cfg, err := LoadConfig(map[string]any{"port": 8443})
	require.NoError(t, err)
	assert.Equal(t, "8443", cfg.Port)
}

func TestLoadConfigEnvOverridesSettings(t *testing.T) {
	t.Setenv("OLSPANEL_HOST", "env.example.com")
	t.Setenv("OLSPANEL_VERIFY_TLS", "true")

	cfg, err := LoadConfig(map[string]any{"host": "settings.example.com"})
	require.NoError(t, err)
	assert.Equal(t, "env.example.com", cfg.Host)
	assert.True(t, cfg.VerifyTLS)
	assert.False(t, cfg.SkipTLSVerify())
}

func TestLoadConfigReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("OLSPANEL_USERNAME=from-file\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("OLSPANEL_USERNAME") })

	cfg, err := LoadConfig(nil, path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Username)
}

func TestLoadConfigRejectsNonPositiveTimeout(t *testing.T) {
	_, err := LoadConfig(map[string]any{"timeout_seconds": 0})
	require.Error(t, err)
}

func TestConfigStringHidesPassword(t *testing.T) {
	cfg := Config{Host: "h", Username: "u", Password: "hunter2"}
	assert.NotContains(t, cfg.String(), "hunter2")
}

func TestConfigLiteralSkipsTLSVerification(t *testing.T) {
	cfg := Config{Host: "h", Username: "u", Password: "p"}
	assert.True(t, cfg.SkipTLSVerify())

	cfg.VerifyTLS = true
	assert.False(t, cfg.SkipTLSVerify())
}
