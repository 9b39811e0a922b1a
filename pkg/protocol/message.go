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

// Package protocol defines the message and error types shared across the
// runtime, tools and transport layers.
package protocol

import "time"

// Role is the author of a message.
type Role string

const (
	RoleUser       Role = "user"
	RoleAssistant  Role = "assistant"
	RoleSystem     Role = "system"
	RoleToolResult Role = "tool_result"
)

// ToolCall is one tool invocation requested by the model.
type ToolCall struct {
	ID   string         `json:"id"`
	Name string         `json:"name"`
	Args map[string]any `json:"args,omitempty"`
}

// StepKind labels a reasoning step streamed to the client.
type StepKind string

const (
	StepThink   StepKind = "think"
	StepAct     StepKind = "act"
	StepObserve StepKind = "observe"
	StepAnswer  StepKind = "answer"
)

// ReasoningStep is one entry in a turn's visible reasoning trace. Steps
// are appended in execution order with monotonic timestamps.
type ReasoningStep struct {
	Kind StepKind  `json:"kind"`
	Text string    `json:"text"`
	At   time.Time `json:"at,omitempty"`
}

// Message is one conversation entry.
type Message struct {
	Role       Role             `json:"role"`
	Content    string           `json:"content"`
	ToolName   string           `json:"tool_name,omitempty"`
	ToolArgs   map[string]any   `json:"tool_args,omitempty"`
	ToolCallID string           `json:"tool_call_id,omitempty"`
	ToolCalls  []*ToolCall      `json:"tool_calls,omitempty"`
	Reasoning  []*ReasoningStep `json:"reasoning,omitempty"`
	CreatedAt  time.Time        `json:"created_at,omitempty"`
}

// NewUserMessage builds a user message.
func NewUserMessage(content string) *Message {
	return &Message{Role: RoleUser, Content: content, CreatedAt: time.Now().UTC()}
}

// NewSystemMessage builds a system message.
func NewSystemMessage(content string) *Message {
	return &Message{Role: RoleSystem, Content: content, CreatedAt: time.Now().UTC()}
}

// NewAssistantMessage builds an assistant message, optionally carrying tool
// calls.
func NewAssistantMessage(content string, toolCalls []*ToolCall) *Message {
	return &Message{Role: RoleAssistant, Content: content, ToolCalls: toolCalls, CreatedAt: time.Now().UTC()}
}

// NewToolResultMessage builds the tool-result message answering one call.
func NewToolResultMessage(toolCallID, toolName, content string) *Message {
	return &Message{
		Role:       RoleToolResult,
		Content:    content,
		ToolName:   toolName,
		ToolCallID: toolCallID,
		CreatedAt:  time.Now().UTC(),
	}
}
