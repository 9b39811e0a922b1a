// Copyright 2025 BestBox Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetDefaults(t *testing.T) {
	var cfg Config
	cfg.SetDefaults()

	assert.Equal(t, "0.0.0.0:8080", cfg.Server.Address())
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, 32768, cfg.LLM.ContextTokens)
	assert.Equal(t, 10, cfg.Limits.MaxToolCallsPerTurn)
	assert.Equal(t, 60, cfg.Limits.TurnDeadlineSeconds)
	assert.Equal(t, 180, cfg.Limits.ComplexTurnDeadlineSeconds)
	assert.Equal(t, 6, cfg.Context.KeepRecentPairs)
	assert.Equal(t, 0.75, cfg.Context.SummarizeAtFraction)
	assert.Equal(t, 2000, cfg.Context.MaxToolResultTokens)
	assert.Equal(t, 0.6, cfg.Retriever.Weights.Dense)
	assert.Equal(t, 0.4, cfg.Retriever.Weights.Sparse)
	assert.Equal(t, 0.5, cfg.Retriever.Weights.Structured)
	assert.Equal(t, "sqlite3", cfg.Database.Driver)
	assert.Equal(t, 86400, cfg.Checkpoint.GraceSeconds)
}

func TestSetDefaultsPreservesExplicitValues(t *testing.T) {
	cfg := Config{
		Server: ServerConfig{Port: 9090},
		Limits: LimitsConfig{MaxToolCallsPerTurn: 3},
		Retriever: RetrieverConfig{
			Weights: FusionWeights{Dense: 0.8, Sparse: 0.2},
		},
	}
	cfg.SetDefaults()

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, 3, cfg.Limits.MaxToolCallsPerTurn)
	assert.Equal(t, 0.8, cfg.Retriever.Weights.Dense)
	assert.Equal(t, 0.2, cfg.Retriever.Weights.Sparse)
}

func TestParse(t *testing.T) {
	t.Setenv("TEST_LLM_URL", "http://vllm.internal:8000/v1")

	cfg, err := Parse([]byte(`
llm:
  base_url: ${TEST_LLM_URL}
  model: qwen2.5-72b-instruct
  api_key_env: VLLM_API_KEY
database:
  driver: sqlite3
  dsn: /tmp/bestbox.db
integrations:
  erp:
    backend: demo
`))
	require.NoError(t, err)
	assert.Equal(t, "http://vllm.internal:8000/v1", cfg.LLM.BaseURL)
	assert.Equal(t, "qwen2.5-72b-instruct", cfg.LLM.Model)
	assert.Equal(t, "demo", cfg.Integrations["erp"].Backend)
	// Defaults applied on top of the parsed file.
	assert.Equal(t, 8080, cfg.Server.Port)
}

func TestParseEnvDefault(t *testing.T) {
	cfg, err := Parse([]byte(`
llm:
  base_url: ${UNSET_TEST_VAR:-http://localhost:8000/v1}
  model: qwen2.5-72b-instruct
`))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8000/v1", cfg.LLM.BaseURL)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		cfg := Config{
			LLM: LLMConfig{BaseURL: "http://localhost:8000/v1", Model: "qwen2.5-72b-instruct"},
		}
		cfg.SetDefaults()
		return cfg
	}

	t.Run("valid", func(t *testing.T) {
		cfg := base()
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing_model", func(t *testing.T) {
		cfg := base()
		cfg.LLM.Model = ""
		assert.Error(t, cfg.Validate())
	})

	t.Run("unknown_backend_family", func(t *testing.T) {
		cfg := base()
		cfg.Integrations = map[string]IntegrationConfig{
			"erp": {Backend: "sap-hana"},
		}
		assert.Error(t, cfg.Validate())
	})

	t.Run("duplicate_gpu_ids", func(t *testing.T) {
		cfg := base()
		cfg.GPU.Devices = []GPUDevice{{ID: "gpu0"}, {ID: "gpu0"}}
		assert.Error(t, cfg.Validate())
	})

	t.Run("zero_fusion_weights", func(t *testing.T) {
		cfg := base()
		cfg.Retriever.Weights = FusionWeights{}
		assert.Error(t, cfg.Validate())
	})
}

func TestSecretsResolvedFromEnv(t *testing.T) {
	t.Setenv("TEST_VLLM_KEY", "sk-test")

	llm := LLMConfig{APIKeyEnv: "TEST_VLLM_KEY"}
	assert.Equal(t, "sk-test", llm.APIKey())

	llm.APIKeyEnv = ""
	assert.Equal(t, "", llm.APIKey())

	db := DatabaseConfig{DSNEnv: "TEST_UNSET_DSN", DSN: "fallback.db"}
	assert.Equal(t, "fallback.db", db.ResolveDSN())
}
