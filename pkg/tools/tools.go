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

// Package tools defines the tool catalog: typed tool specs with permission
// tags and side-effect classes, a registry that gates execution, and the
// built-in tools backed by business adapters and the knowledge base.
package tools

import (
	"context"
	"encoding/json"

	"github.com/invopop/jsonschema"

	"github.com/bestbox/bestbox/pkg/protocol"
)

// SideEffectClass partitions tools by whether executing them mutates
// anything. Write-class tools require human approval before execution.
type SideEffectClass string

const (
	SideEffectReadOnly SideEffectClass = "read_only"
	SideEffectWrite    SideEffectClass = "write"
)

// Spec describes one tool in the catalog. Domain scopes the tool to one
// specialist; an empty domain makes it available to every specialist.
type Spec struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Domain        string          `json:"domain,omitempty"`
	ArgSchema     map[string]any  `json:"arg_schema"`
	PermissionTag string          `json:"permission_tag"`
	SideEffect    SideEffectClass `json:"side_effect"`
}

// Result is the outcome of a tool execution. Failures are results, not Go
// errors, so the model sees them and can adjust.
type Result struct {
	OK        bool               `json:"ok"`
	Data      map[string]any     `json:"data,omitempty"`
	ErrorKind protocol.ErrorKind `json:"error_kind,omitempty"`
	Message   string             `json:"message,omitempty"`
}

// Content renders the result as the JSON string fed back to the model.
func (r *Result) Content() string {
	raw, err := json.Marshal(r)
	if err != nil {
		return `{"ok":false,"error_kind":"internal","message":"result serialization failed"}`
	}
	return string(raw)
}

// PendingApproval is returned instead of a Result when a write-class tool
// needs a human decision. The turn parks in awaiting_human until the
// approval endpoint resolves it.
type PendingApproval struct {
	ToolCallID    string         `json:"tool_call_id"`
	ToolName      string         `json:"tool_name"`
	Args          map[string]any `json:"args"`
	PermissionTag string         `json:"permission_tag"`
	Summary       string         `json:"summary"`
}

// Tool is one executable catalog entry.
type Tool interface {
	Spec() Spec
	Execute(ctx context.Context, args map[string]any) *Result
}

// failure builds an error-carrying result.
func failure(kind protocol.ErrorKind, message string) *Result {
	return &Result{OK: false, ErrorKind: kind, Message: message}
}

// reflectSchema converts a typed args struct into the JSON-schema map the
// model receives in the tool definition.
func reflectSchema(v any) map[string]any {
	reflector := jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	schema := reflector.Reflect(v)

	raw, err := json.Marshal(schema)
	if err != nil {
		return map[string]any{"type": "object"}
	}
	var out map[string]any
	if err := json.Unmarshal(raw, &out); err != nil {
		return map[string]any{"type": "object"}
	}
	delete(out, "$schema")
	return out
}
