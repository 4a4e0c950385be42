package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("valid config", func(t *testing.T) {
		path := writeConfig(t, `
server:
  listen: ":9090"
  timeout: 45s
  default_user: editor
database:
  dsn: "file:test.db"
llm:
  endpoint: http://localhost:11434/v1
  model: llama3
  temperature: 0.7
  use_json_mode: true
history:
  retention: 48h
  max_items: 20
`)
		cfg, err := Load(path)
		require.NoError(t, err)

		assert.Equal(t, ":9090", cfg.Server.Listen)
		assert.Equal(t, 45*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "editor", cfg.Server.DefaultUser)
		assert.Equal(t, "file:test.db", cfg.Database.DSN)
		assert.Equal(t, "http://localhost:11434/v1", cfg.LLM.Endpoint)
		assert.Equal(t, "llama3", cfg.LLM.Model)
		assert.InDelta(t, 0.7, cfg.LLM.Temperature, 0.001)
		assert.True(t, cfg.LLM.UseJSONMode)
		assert.Equal(t, 48*time.Hour, cfg.History.Retention)
		assert.Equal(t, 20, cfg.History.MaxItems)
	})

	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load(writeConfig(t, "llm:\n  model: gpt-4o-mini\n"))
		require.NoError(t, err)

		assert.Equal(t, ":8080", cfg.Server.Listen)
		assert.Equal(t, 30*time.Second, cfg.Server.Timeout)
		assert.Equal(t, "default_user", cfg.Server.DefaultUser)
		assert.Contains(t, cfg.Database.DSN, "newsdesk.db")
		assert.Equal(t, 10, cfg.Database.MaxOpenConns)
		assert.Equal(t, "https://api.openai.com/v1", cfg.LLM.Endpoint)
		assert.InDelta(t, 0.4, cfg.LLM.Temperature, 0.001)
		assert.Equal(t, 2000, cfg.LLM.MaxTokens)
		assert.Equal(t, 60*time.Second, cfg.LLM.Timeout)
		assert.Equal(t, 3, cfg.LLM.Attempts)
		assert.Equal(t, 720*time.Hour, cfg.History.Retention)
		assert.Equal(t, time.Hour, cfg.History.CleanupInterval)
		assert.Equal(t, 100, cfg.History.MaxItems)
	})

	t.Run("environment expansion", func(t *testing.T) {
		t.Setenv("NEWSDESK_TEST_KEY", "secret-key")
		cfg, err := Load(writeConfig(t, "llm:\n  model: m\n  api_key: ${NEWSDESK_TEST_KEY}\n"))
		require.NoError(t, err)
		assert.Equal(t, "secret-key", cfg.LLM.APIKey)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load("/nonexistent/config.yml")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "read config file")
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Load(writeConfig(t, "server: [unclosed"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse config")
	})
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{name: "no model", content: "llm:\n  endpoint: http://x\n", errMsg: "llm.model is required"},
		{name: "temperature too high", content: "llm:\n  model: m\n  temperature: 3\n", errMsg: "llm.temperature"},
		{name: "negative attempts", content: "llm:\n  model: m\n  attempts: -1\n", errMsg: "llm.attempts"},
		{name: "short server timeout", content: "server:\n  timeout: 10ms\nllm:\n  model: m\n", errMsg: "server timeout"},
		{name: "negative max items", content: "llm:\n  model: m\nhistory:\n  max_items: -5\n", errMsg: "history.max_items"},
		{name: "short cleanup interval", content: "llm:\n  model: m\nhistory:\n  cleanup_interval: 5s\n", errMsg: "history.cleanup_interval"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}
