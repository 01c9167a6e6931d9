package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithoutConfigFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Address())
	assert.Equal(t, "./data/netcoach.db", cfg.Database.Path)
	assert.Equal(t, "gpt-4.1-mini", cfg.LLM.Model)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.TitleModel)
	assert.Equal(t, "omni-moderation-latest", cfg.Moderation.Model)
	assert.Empty(t, cfg.Moderation.APIKey)
	assert.Equal(t, 2*time.Second, cfg.Probe.DNSTimeout)
	assert.Equal(t, 2*time.Second, cfg.Probe.TCPTimeout)
	assert.Equal(t, 3*time.Second, cfg.Probe.HTTPTimeout)
}

func TestLoad_FromFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	content := `
server:
  host: 127.0.0.1
  port: 9090
database:
  path: /tmp/coach.db
llm:
  model: gpt-4o
probe:
  http_timeout: 5s
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Address())
	assert.Equal(t, "/tmp/coach.db", cfg.Database.Path)
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	// untouched keys keep their defaults
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.TitleModel)
	assert.Equal(t, 5*time.Second, cfg.Probe.HTTPTimeout)
	assert.Equal(t, 2*time.Second, cfg.Probe.DNSTimeout)
}
