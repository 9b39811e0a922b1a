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

// Package config defines the per-deployment configuration schema and loader.
//
// Secrets are referenced by environment variable name only (auth_env,
// api_key_env, dsn_env); values are never inlined in config files.
package config

import (
	"fmt"
	"os"
)

// Config is the root configuration.
type Config struct {
	Server       ServerConfig                 `yaml:"server"`
	Logging      LoggingConfig                `yaml:"logging"`
	Auth         AuthConfig                   `yaml:"auth"`
	LLM          LLMConfig                    `yaml:"llm"`
	Limits       LimitsConfig                 `yaml:"limits"`
	Context      ContextConfig                `yaml:"context"`
	Retriever    RetrieverConfig              `yaml:"retriever"`
	Embedder     EndpointConfig               `yaml:"embedder"`
	Reranker     EndpointConfig               `yaml:"reranker"`
	VectorStore  VectorStoreConfig            `yaml:"vector_store"`
	Database     DatabaseConfig               `yaml:"database"`
	Integrations map[string]IntegrationConfig `yaml:"integrations"`
	GPU          GPUConfig                    `yaml:"gpu"`
	Checkpoint   CheckpointConfig             `yaml:"checkpoint"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Host string `yaml:"host"`
	Port int    `yaml:"port"`
}

func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// LoggingConfig configures the default logger.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// AuthConfig configures bearer-token validation.
type AuthConfig struct {
	Enabled      bool   `yaml:"enabled"`
	JWKSURL      string `yaml:"jwks_url"`
	SharedKeyEnv string `yaml:"shared_key_env"` // HMAC key env var (dev deployments)
	Issuer       string `yaml:"issuer"`
}

// LLMConfig selects the OpenAI-compatible inference endpoint.
type LLMConfig struct {
	BaseURL        string  `yaml:"base_url"`
	Model          string  `yaml:"model"`
	APIKeyEnv      string  `yaml:"api_key_env"`
	ContextTokens  int     `yaml:"context_tokens"`
	MaxTokens      int     `yaml:"max_tokens"`
	Temperature    float64 `yaml:"temperature"`
	TimeoutSeconds int     `yaml:"timeout_seconds"`
}

// APIKey resolves the API key from the configured environment variable.
func (c *LLMConfig) APIKey() string {
	if c.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(c.APIKeyEnv)
}

// LimitsConfig caps per-turn behavior.
type LimitsConfig struct {
	MaxToolCallsPerTurn        int `yaml:"max_tool_calls_per_turn"`
	TurnDeadlineSeconds        int `yaml:"turn_deadline_seconds"`
	ComplexTurnDeadlineSeconds int `yaml:"complex_turn_deadline_seconds"`
}

// ContextConfig tunes the turn context manager.
type ContextConfig struct {
	KeepRecentPairs     int     `yaml:"keep_recent_pairs"`
	SummarizeAtFraction float64 `yaml:"summarize_at_fraction"`
	MaxToolResultTokens int     `yaml:"max_tool_result_tokens"`
}

// RetrieverConfig tunes the hybrid retrieval pipeline.
type RetrieverConfig struct {
	TopK        int           `yaml:"top_k"`
	TopN        int           `yaml:"top_n"`
	Weights     FusionWeights `yaml:"weights"`
	LexiconPath string        `yaml:"lexicon_path"`
	Collection  string        `yaml:"collection"`
}

// FusionWeights control reciprocal-rank fusion between the dense and sparse
// legs, plus structured SQL merging.
type FusionWeights struct {
	Dense      float64 `yaml:"dense"`
	Sparse     float64 `yaml:"sparse"`
	Structured float64 `yaml:"structured"`
}

// EndpointConfig points at an auxiliary HTTP service (embedder, reranker).
type EndpointConfig struct {
	URL            string `yaml:"url"`
	APIKeyEnv      string `yaml:"api_key_env"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

func (c *EndpointConfig) APIKey() string {
	if c.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(c.APIKeyEnv)
}

// VectorStoreConfig configures the qdrant connection.
type VectorStoreConfig struct {
	Host      string `yaml:"host"`
	Port      int    `yaml:"port"`
	APIKeyEnv string `yaml:"api_key_env"`
	EnableTLS bool   `yaml:"enable_tls"`
}

func (c *VectorStoreConfig) APIKey() string {
	if c.APIKeyEnv == "" {
		return ""
	}
	return os.Getenv(c.APIKeyEnv)
}

// DatabaseConfig configures the relational store (checkpoints, sessions,
// audit, structured fusion).
type DatabaseConfig struct {
	Driver string `yaml:"driver"` // postgres or sqlite3
	DSNEnv string `yaml:"dsn_env"`
	DSN    string `yaml:"dsn"` // non-secret DSNs (e.g. sqlite file path) may be inline
}

func (c *DatabaseConfig) ResolveDSN() string {
	if c.DSNEnv != "" {
		if v := os.Getenv(c.DSNEnv); v != "" {
			return v
		}
	}
	return c.DSN
}

// IntegrationConfig declares one backend adapter binding.
type IntegrationConfig struct {
	Backend   string   `yaml:"backend"` // erp-modern, erp-legacy, crm, itops, oa, demo
	URL       string   `yaml:"url"`
	AuthEnv   string   `yaml:"auth_env"`
	Allowlist []string `yaml:"allowlist"`
}

// GPUConfig declares schedulable GPU resources.
type GPUConfig struct {
	Devices               []GPUDevice `yaml:"devices"`
	AcquireTimeoutSeconds int         `yaml:"acquire_timeout_seconds"`
}

// GPUDevice is one GPU and the job classes allowed on it.
type GPUDevice struct {
	ID      string   `yaml:"id"`
	Classes []string `yaml:"classes"`
}

// CheckpointConfig tunes checkpoint retention.
type CheckpointConfig struct {
	GraceSeconds int `yaml:"grace_seconds"`
}

// SetDefaults fills unset fields with documented defaults.
func (c *Config) SetDefaults() {
	if c.Server.Host == "" {
		c.Server.Host = "0.0.0.0"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Logging.Level == "" {
		c.Logging.Level = "info"
	}
	if c.Logging.Format == "" {
		c.Logging.Format = "text"
	}
	if c.LLM.ContextTokens == 0 {
		c.LLM.ContextTokens = 32768
	}
	if c.LLM.MaxTokens == 0 {
		c.LLM.MaxTokens = 4096
	}
	if c.LLM.TimeoutSeconds == 0 {
		c.LLM.TimeoutSeconds = 120
	}
	if c.Limits.MaxToolCallsPerTurn == 0 {
		c.Limits.MaxToolCallsPerTurn = 10
	}
	if c.Limits.TurnDeadlineSeconds == 0 {
		c.Limits.TurnDeadlineSeconds = 60
	}
	if c.Limits.ComplexTurnDeadlineSeconds == 0 {
		c.Limits.ComplexTurnDeadlineSeconds = 180
	}
	if c.Context.KeepRecentPairs == 0 {
		c.Context.KeepRecentPairs = 6
	}
	if c.Context.SummarizeAtFraction == 0 {
		c.Context.SummarizeAtFraction = 0.75
	}
	if c.Context.MaxToolResultTokens == 0 {
		c.Context.MaxToolResultTokens = 2000
	}
	if c.Retriever.TopK == 0 {
		c.Retriever.TopK = 25
	}
	if c.Retriever.TopN == 0 {
		c.Retriever.TopN = 5
	}
	if c.Retriever.Weights.Dense == 0 && c.Retriever.Weights.Sparse == 0 {
		c.Retriever.Weights.Dense = 0.6
		c.Retriever.Weights.Sparse = 0.4
	}
	if c.Retriever.Weights.Structured == 0 {
		c.Retriever.Weights.Structured = 0.5
	}
	if c.Retriever.Collection == "" {
		c.Retriever.Collection = "bestbox_kb"
	}
	if c.VectorStore.Host == "" {
		c.VectorStore.Host = "localhost"
	}
	if c.VectorStore.Port == 0 {
		c.VectorStore.Port = 6334
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite3"
	}
	if c.Database.DSN == "" && c.Database.DSNEnv == "" {
		c.Database.DSN = "bestbox.db"
	}
	if c.GPU.AcquireTimeoutSeconds == 0 {
		c.GPU.AcquireTimeoutSeconds = 60
	}
	if c.Checkpoint.GraceSeconds == 0 {
		c.Checkpoint.GraceSeconds = 86400
	}
	if c.Embedder.TimeoutSeconds == 0 {
		c.Embedder.TimeoutSeconds = 30
	}
	if c.Reranker.TimeoutSeconds == 0 {
		c.Reranker.TimeoutSeconds = 30
	}
}

// Validate checks invariants that would otherwise fail at runtime.
func (c *Config) Validate() error {
	if c.LLM.BaseURL == "" {
		return fmt.Errorf("llm.base_url is required")
	}
	if c.LLM.Model == "" {
		return fmt.Errorf("llm.model is required")
	}
	if c.Limits.MaxToolCallsPerTurn < 1 {
		return fmt.Errorf("limits.max_tool_calls_per_turn must be >= 1")
	}
	if w := c.Retriever.Weights; w.Dense < 0 || w.Sparse < 0 || w.Dense+w.Sparse == 0 {
		return fmt.Errorf("retriever.weights must be non-negative and not both zero")
	}
	for domain, ic := range c.Integrations {
		switch ic.Backend {
		case "erp-modern", "erp-legacy", "crm", "itops", "oa", "demo":
		default:
			return fmt.Errorf("integrations.%s: unknown backend family %q", domain, ic.Backend)
		}
		if ic.Backend != "demo" && ic.URL == "" && ic.AuthEnv == "" {
			return fmt.Errorf("integrations.%s: url is required for backend %q", domain, ic.Backend)
		}
	}
	seen := map[string]bool{}
	for _, dev := range c.GPU.Devices {
		if dev.ID == "" {
			return fmt.Errorf("gpu.devices[].id is required")
		}
		if seen[dev.ID] {
			return fmt.Errorf("gpu.devices: duplicate id %q", dev.ID)
		}
		seen[dev.ID] = true
	}
	return nil
}
