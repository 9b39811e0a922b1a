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

package tools

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/bestbox/bestbox/pkg/auth"
	"github.com/bestbox/bestbox/pkg/llm"
	"github.com/bestbox/bestbox/pkg/protocol"
)

// Registry holds the tool catalog and enforces the permission gate and the
// write-approval gate on every execution.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool. Duplicate names are a wiring bug.
func (r *Registry) Register(tool Tool) error {
	spec := tool.Spec()
	if spec.Name == "" {
		return fmt.Errorf("tool name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tools[spec.Name]; exists {
		return fmt.Errorf("tool %s already registered", spec.Name)
	}
	r.tools[spec.Name] = tool
	return nil
}

// Get returns the named tool.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	tool, ok := r.tools[name]
	return tool, ok
}

// Specs lists all registered specs, sorted by name.
func (r *Registry) Specs() []Spec {
	r.mu.RLock()
	defer r.mu.RUnlock()

	specs := make([]Spec, 0, len(r.tools))
	for _, tool := range r.tools {
		specs = append(specs, tool.Spec())
	}
	sort.Slice(specs, func(i, j int) bool { return specs[i].Name < specs[j].Name })
	return specs
}

// Definitions renders the catalog as model tool definitions, restricted to
// the given specialist domain and to the tools the caller may invoke. The
// model never sees tools it cannot use.
func (r *Registry) Definitions(uc *auth.UserContext, domain string) []llm.ToolDefinition {
	var defs []llm.ToolDefinition
	for _, spec := range r.Specs() {
		if spec.Domain != "" && spec.Domain != domain {
			continue
		}
		if uc != nil && !uc.HasPermission(spec.PermissionTag) {
			continue
		}
		defs = append(defs, llm.ToolDefinition{
			Name:        spec.Name,
			Description: spec.Description,
			Parameters:  spec.ArgSchema,
		})
	}
	return defs
}

// Execute runs one tool call through the gates. A non-nil PendingApproval
// means the call is a write-class operation awaiting a human decision;
// callers retry with approved=true once the approval endpoint resolves it.
// Gate denials and tool failures come back as Results so the model can
// react; only infrastructure bugs surface as Go errors.
func (r *Registry) Execute(ctx context.Context, uc *auth.UserContext, call *protocol.ToolCall, approved bool) (*Result, *PendingApproval) {
	tracer := otel.Tracer("bestbox.tools")
	ctx, span := tracer.Start(ctx, "tools.execute")
	span.SetAttributes(attribute.String("tool.name", call.Name))
	defer span.End()

	tool, ok := r.Get(call.Name)
	if !ok {
		return failure(protocol.KindOperationUnsupported, fmt.Sprintf("unknown tool: %s", call.Name)), nil
	}
	spec := tool.Spec()

	if uc == nil || !uc.HasPermission(spec.PermissionTag) {
		slog.Warn("Tool call denied by permission gate",
			"tool", call.Name,
			"permission", spec.PermissionTag,
			"user", userID(uc))
		return failure(protocol.KindPermissionDenied,
			fmt.Sprintf("permission %s required for tool %s", spec.PermissionTag, call.Name)), nil
	}

	if spec.SideEffect == SideEffectWrite && !approved {
		return nil, &PendingApproval{
			ToolCallID:    call.ID,
			ToolName:      call.Name,
			Args:          call.Args,
			PermissionTag: spec.PermissionTag,
			Summary:       fmt.Sprintf("%s requests approval to run %s", userID(uc), call.Name),
		}
	}

	result := tool.Execute(ctx, call.Args)
	span.SetAttributes(attribute.Bool("tool.ok", result.OK))
	return result, nil
}

func userID(uc *auth.UserContext) string {
	if uc == nil {
		return "anonymous"
	}
	return uc.UserID
}
