package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.LLM.Model = "test-model"
	cfg.setDefaults()
	return cfg
}

func TestVerifyAgainstEmbeddedSchema(t *testing.T) {
	cfg := validConfig()
	require.NoError(t, VerifyAgainstEmbeddedSchema(cfg))

	cfg.LLM.Temperature = 2.5
	err := VerifyAgainstEmbeddedSchema(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "llm.temperature: 2.5 is greater than 2")

	cfg = validConfig()
	cfg.History.MaxItems = 0
	err = VerifyAgainstEmbeddedSchema(cfg)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "history.max_items")
}

func TestVerify_SchemaMismatch(t *testing.T) {
	cfg := validConfig()

	t.Run("unknown property", func(t *testing.T) {
		schema := `{"$ref":"#/$defs/Config","$defs":{"Config":{"type":"object",
			"properties":{"server":{"type":"object","properties":{}}}}}}`
		err := verify(cfg, []byte(schema))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "database is not allowed by schema")
		assert.Contains(t, err.Error(), "server.listen is not allowed by schema")
	})

	t.Run("wrong type", func(t *testing.T) {
		schema := `{"type":"object","properties":{"server":{"type":"string"},"database":{},"llm":{},"history":{}}}`
		err := verify(cfg, []byte(schema))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "server: expected string")
	})

	t.Run("missing required and bad ref", func(t *testing.T) {
		schema := `{"type":"object","required":["extra"],
			"properties":{"server":{"$ref":"#/$defs/Missing"},"database":{},"llm":{},"history":{}}}`
		err := verify(cfg, []byte(schema))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "extra is required")
		assert.Contains(t, err.Error(), "unknown schema reference #/$defs/Missing")
	})

	t.Run("broken schema", func(t *testing.T) {
		err := verify(cfg, []byte("{"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse schema")
	})
}

func TestGenerateSchema(t *testing.T) {
	schema := GenerateSchema()
	require.NotNil(t, schema)
	data, err := json.Marshal(schema)
	require.NoError(t, err)
	assert.Contains(t, string(data), "LLMConfig")
	assert.Contains(t, string(data), "cleanup_interval")
}
