package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleYAML = `
server:
  port: 9090
  mode: release
  timezone: Asia/Shanghai
database:
  driver: mysql
  host: db
  port: 3306
entitlement:
  backend: redis
  preview_unlocked: true
ai:
  temperature: 0.5
`

func writeConfig(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	path := writeConfig(t, t.TempDir(), "config.yaml", sampleYAML)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "release", cfg.Server.Mode)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, "redis", cfg.Entitlement.Backend)
	assert.True(t, cfg.Entitlement.PreviewUnlocked)
	assert.InDelta(t, 0.5, cfg.AI.Temperature, 0.001)
	assert.Equal(t, "sk-test", cfg.AI.APIKey)

	// 默认值
	assert.Equal(t, "gpt-4o", cfg.AI.Model)
	assert.Equal(t, 800, cfg.AI.MaxTokens)
	assert.Equal(t, 30*time.Second, cfg.AI.Timeout())
	assert.Equal(t, 168, cfg.JWT.ExpireHours)

	loc, err := cfg.Server.Location()
	require.NoError(t, err)
	assert.Equal(t, "Asia/Shanghai", loc.String())
}

func TestLoad_PrefersLocalFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, "config.yaml", sampleYAML)
	writeConfig(t, dir, "config.local.yaml", "server:\n  port: 7070\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7070, cfg.Server.Port)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "6060")
	path := writeConfig(t, t.TempDir(), "config.yaml", sampleYAML)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 6060, cfg.Server.Port)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_NoAPIKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	path := writeConfig(t, t.TempDir(), "config.yaml", sampleYAML)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Empty(t, cfg.AI.APIKey)
}
