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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestbox/bestbox/pkg/auth"
	"github.com/bestbox/bestbox/pkg/protocol"
)

type stubTool struct {
	spec     Spec
	executed bool
}

func (s *stubTool) Spec() Spec { return s.spec }

func (s *stubTool) Execute(ctx context.Context, args map[string]any) *Result {
	s.executed = true
	return &Result{OK: true, Data: map[string]any{"echo": args["q"]}}
}

func readTool() *stubTool {
	return &stubTool{spec: Spec{
		Name:          "erp_get_inventory",
		Description:   "Inventory lookup.",
		Domain:        "erp",
		PermissionTag: "erp:read",
		SideEffect:    SideEffectReadOnly,
	}}
}

func writeTool() *stubTool {
	return &stubTool{spec: Spec{
		Name:          "oa_send_email",
		Description:   "Send an email.",
		Domain:        "oa",
		PermissionTag: "oa:write",
		SideEffect:    SideEffectWrite,
	}}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(readTool()))
	assert.Error(t, reg.Register(readTool()))
	assert.Error(t, reg.Register(&stubTool{spec: Spec{Name: ""}}))
}

func TestDefinitionsFilteredByPermission(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(readTool()))
	require.NoError(t, reg.Register(writeTool()))

	uc := &auth.UserContext{UserID: "w.chen", Permissions: []string{"erp:read"}}
	defs := reg.Definitions(uc, "erp")
	require.Len(t, defs, 1)
	assert.Equal(t, "erp_get_inventory", defs[0].Name)
}

func TestDefinitionsScopedToDomain(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(readTool()))
	require.NoError(t, reg.Register(writeTool()))
	// Domainless tools are offered to every specialist.
	require.NoError(t, reg.Register(&stubTool{spec: Spec{
		Name:          "search_kb",
		Description:   "Knowledge base search.",
		PermissionTag: "kb:read",
		SideEffect:    SideEffectReadOnly,
	}}))

	uc := &auth.UserContext{UserID: "w.chen", Permissions: []string{"erp:read", "oa:write", "kb:read"}}

	erp := reg.Definitions(uc, "erp")
	require.Len(t, erp, 2)
	assert.Equal(t, "erp_get_inventory", erp[0].Name)
	assert.Equal(t, "search_kb", erp[1].Name)

	general := reg.Definitions(uc, "general")
	require.Len(t, general, 1)
	assert.Equal(t, "search_kb", general[0].Name)
}

func TestExecutePermissionGate(t *testing.T) {
	reg := NewRegistry()
	tool := readTool()
	require.NoError(t, reg.Register(tool))

	uc := &auth.UserContext{UserID: "w.chen", Permissions: []string{"crm:read"}}
	result, pending := reg.Execute(context.Background(), uc, &protocol.ToolCall{ID: "call_1", Name: "erp_get_inventory"}, false)

	require.Nil(t, pending)
	require.NotNil(t, result)
	assert.False(t, result.OK)
	assert.Equal(t, protocol.KindPermissionDenied, result.ErrorKind)
	assert.False(t, tool.executed, "denied tool must not run")
}

func TestExecuteUnknownTool(t *testing.T) {
	reg := NewRegistry()
	uc := &auth.UserContext{UserID: "w.chen", Permissions: []string{"erp:read"}}

	result, pending := reg.Execute(context.Background(), uc, &protocol.ToolCall{ID: "call_1", Name: "nope"}, false)
	require.Nil(t, pending)
	assert.Equal(t, protocol.KindOperationUnsupported, result.ErrorKind)
}

func TestExecuteWriteNeedsApproval(t *testing.T) {
	reg := NewRegistry()
	tool := writeTool()
	require.NoError(t, reg.Register(tool))

	uc := &auth.UserContext{UserID: "w.chen", Permissions: []string{"oa:write"}}
	call := &protocol.ToolCall{ID: "call_9", Name: "oa_send_email", Args: map[string]any{"to": "vendor@example.com"}}

	result, pending := reg.Execute(context.Background(), uc, call, false)
	require.Nil(t, result)
	require.NotNil(t, pending)
	assert.Equal(t, "call_9", pending.ToolCallID)
	assert.Equal(t, "oa:write", pending.PermissionTag)
	assert.False(t, tool.executed, "write tool must not run before approval")

	// Approved retry executes for real.
	result, pending = reg.Execute(context.Background(), uc, call, true)
	require.Nil(t, pending)
	require.NotNil(t, result)
	assert.True(t, result.OK)
	assert.True(t, tool.executed)
}

func TestResultContent(t *testing.T) {
	r := &Result{OK: true, Data: map[string]any{"count": 7}}
	assert.JSONEq(t, `{"ok":true,"data":{"count":7}}`, r.Content())

	f := failure(protocol.KindResourceBusy, "no capacity")
	assert.JSONEq(t, `{"ok":false,"error_kind":"resource_busy","message":"no capacity"}`, f.Content())
}
