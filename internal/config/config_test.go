package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.test.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `
server:
  port: 9000
  env: production
remote:
  base_url: http://community.internal/
  timeout: 3s
session:
  secret: s3cret
redis:
  enabled: true
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "http://community.internal", cfg.Remote.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Remote.Timeout)
	assert.Equal(t, "community_session", cfg.Session.CookieName)
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, 6379, cfg.Redis.Port)
	assert.False(t, cfg.IsDevelopment())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 10*time.Minute, cfg.Cache.FileTTL)
	assert.Equal(t, 24*time.Hour, cfg.Session.TTL)
}

func TestLoad_ExpandsEnv(t *testing.T) {
	t.Setenv("TEST_REMOTE_HOST", "remote.example")
	path := writeConfig(t, `
remote:
  base_url: http://${TEST_REMOTE_HOST}:8090
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://remote.example:8090", cfg.Remote.BaseURL)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("COMMUNITY_PORT", "7777")
	t.Setenv("COMMUNITY_REMOTE_BASE_URL", "http://override:1")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 7777, cfg.Server.Port)
	assert.Equal(t, "http://override:1", cfg.Remote.BaseURL)
}

func TestLoad_SecretRequiredInProduction(t *testing.T) {
	path := writeConfig(t, "server:\n  env: production\n")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := writeConfig(t, "server: [")
	_, err := Load(path)
	assert.Error(t, err)
}

func TestAllowOrigins(t *testing.T) {
	cfg := Default()
	cfg.CORS.AllowOrigins = "http://a.com, http://b.com,,"
	assert.Equal(t, []string{"http://a.com", "http://b.com"}, cfg.AllowOrigins())
}
