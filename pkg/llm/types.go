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

// Package llm provides the client for OpenAI-compatible completion
// endpoints (vLLM and similar inference servers).
package llm

import (
	"context"

	"github.com/bestbox/bestbox/pkg/protocol"
)

// ToolDefinition describes one callable tool in the request payload.
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// StreamChunk is one unit of streaming output.
type StreamChunk struct {
	Type     string // "text", "thinking", "tool_call", "done", "error"
	Text     string
	ToolCall *protocol.ToolCall
	Tokens   int
	Error    error
}

// StructuredConfig requests schema-constrained JSON output, used by the
// router step.
type StructuredConfig struct {
	Name   string
	Schema map[string]any
}

// Provider is the completion interface the runtime consumes.
type Provider interface {
	// Generate runs a non-streaming completion.
	Generate(ctx context.Context, messages []*protocol.Message, tools []ToolDefinition) (string, []*protocol.ToolCall, int, error)

	// GenerateStreaming runs a streaming completion. The channel is closed
	// after a terminal "done" or "error" chunk.
	GenerateStreaming(ctx context.Context, messages []*protocol.Message, tools []ToolDefinition) (<-chan StreamChunk, error)

	// GenerateStructured runs a completion constrained to a JSON schema.
	GenerateStructured(ctx context.Context, messages []*protocol.Message, structured *StructuredConfig) (string, int, error)

	// ContextWindow returns the model's context window in tokens.
	ContextWindow() int

	ModelName() string
}
