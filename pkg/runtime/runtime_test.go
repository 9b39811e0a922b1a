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

package runtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestbox/bestbox/pkg/audit"
	"github.com/bestbox/bestbox/pkg/auth"
	"github.com/bestbox/bestbox/pkg/checkpoint"
	"github.com/bestbox/bestbox/pkg/config"
	"github.com/bestbox/bestbox/pkg/contextmgr"
	"github.com/bestbox/bestbox/pkg/llm"
	"github.com/bestbox/bestbox/pkg/protocol"
	"github.com/bestbox/bestbox/pkg/retriever"
	"github.com/bestbox/bestbox/pkg/scheduler"
	"github.com/bestbox/bestbox/pkg/session"
	"github.com/bestbox/bestbox/pkg/storage"
	"github.com/bestbox/bestbox/pkg/tools"
)

// scriptedProvider plays back canned routing and streaming responses.
type scriptedProvider struct {
	mu      sync.Mutex
	route   string
	scripts [][]llm.StreamChunk
	call    int
}

func (p *scriptedProvider) Generate(ctx context.Context, messages []*protocol.Message, defs []llm.ToolDefinition) (string, []*protocol.ToolCall, int, error) {
	return "", nil, 0, nil
}

func (p *scriptedProvider) GenerateStructured(ctx context.Context, messages []*protocol.Message, structured *llm.StructuredConfig) (string, int, error) {
	return fmt.Sprintf(`{"next": %q}`, p.route), 0, nil
}

func (p *scriptedProvider) GenerateStreaming(ctx context.Context, messages []*protocol.Message, defs []llm.ToolDefinition) (<-chan llm.StreamChunk, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.call >= len(p.scripts) {
		return nil, errors.New("no scripted response left")
	}
	script := p.scripts[p.call]
	p.call++

	ch := make(chan llm.StreamChunk, len(script)+1)
	for _, chunk := range script {
		ch <- chunk
	}
	ch <- llm.StreamChunk{Type: "done"}
	close(ch)
	return ch, nil
}

func (p *scriptedProvider) ContextWindow() int { return 32768 }
func (p *scriptedProvider) ModelName() string  { return "test-model" }

type countTool struct {
	spec  tools.Spec
	calls int
}

func (c *countTool) Spec() tools.Spec { return c.spec }

func (c *countTool) Execute(ctx context.Context, args map[string]any) *tools.Result {
	c.calls++
	return &tools.Result{OK: true, Data: map[string]any{"count": 7}}
}

type testRig struct {
	runtime     *Runtime
	sessions    *session.Store
	checkpoints *checkpoint.Store
	catalog     *tools.Registry
}

func newTestRig(t *testing.T, provider llm.Provider) *testRig {
	return newTestRigLimits(t, provider, config.LimitsConfig{
		MaxToolCallsPerTurn: 10, TurnDeadlineSeconds: 60, ComplexTurnDeadlineSeconds: 180,
	})
}

func newTestRigLimits(t *testing.T, provider llm.Provider, limits config.LimitsConfig) *testRig {
	t.Helper()

	db, err := storage.Open(config.DatabaseConfig{
		Driver: "sqlite3",
		DSN:    filepath.Join(t.TempDir(), "runtime_test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	checkpoints, err := checkpoint.NewStore(db)
	require.NoError(t, err)
	sessions, err := session.NewStore(db)
	require.NoError(t, err)
	auditLog, err := audit.NewLogger(db)
	require.NoError(t, err)
	t.Cleanup(auditLog.Close)

	lexicon, err := retriever.LoadLexicon("")
	require.NoError(t, err)

	catalog := tools.NewRegistry()
	contexts := contextmgr.New(
		config.ContextConfig{KeepRecentPairs: 6, SummarizeAtFraction: 0.75, MaxToolResultTokens: 2000},
		provider.ContextWindow(),
		contextmgr.NewTokenCounter("test-model"),
		nil,
	)

	rt := New(Deps{
		Limits:      limits,
		Provider:    provider,
		Catalog:     catalog,
		Contexts:    contexts,
		Checkpoints: checkpoints,
		Sessions:    sessions,
		Audit:       auditLog,
		GPUs:        scheduler.New(config.GPUConfig{AcquireTimeoutSeconds: 5}),
		Lexicon:     lexicon,
	})

	return &testRig{runtime: rt, sessions: sessions, checkpoints: checkpoints, catalog: catalog}
}

func callerContext(perms ...string) context.Context {
	return auth.WithUserContext(context.Background(), &auth.UserContext{
		UserID: "w.chen", OrgID: "org-7", Permissions: perms,
	})
}

func collect(events <-chan Event) []Event {
	var out []Event
	for e := range events {
		out = append(out, e)
	}
	return out
}

func eventTypes(events []Event) []string {
	types := make([]string, 0, len(events))
	for _, e := range events {
		types = append(types, e.Type)
	}
	return types
}

func TestExecuteTurnRequiresIdentity(t *testing.T) {
	rig := newTestRig(t, &scriptedProvider{route: "general"})

	_, _, err := rig.runtime.ExecuteTurn(context.Background(), "", "hello")
	require.Error(t, err)
	assert.Equal(t, protocol.KindPermissionDenied, protocol.KindOf(err))
}

func TestExecuteTurnDirectAnswer(t *testing.T) {
	provider := &scriptedProvider{
		route: "general",
		scripts: [][]llm.StreamChunk{
			{{Type: "text", Text: "你好，"}, {Type: "text", Text: "有什么可以帮忙？"}},
		},
	}
	rig := newTestRig(t, provider)
	ctx := callerContext()

	events, turn, err := rig.runtime.ExecuteTurn(ctx, "", "你好")
	require.NoError(t, err)

	got := collect(events)
	assert.Contains(t, eventTypes(got), "answer")
	assert.Equal(t, "done", got[len(got)-1].Type)

	loaded, err := rig.sessions.GetTurn(ctx, turn.ID)
	require.NoError(t, err)
	assert.Equal(t, session.TurnDone, loaded.Status)
	assert.Equal(t, "general", loaded.Domain)

	messages, err := rig.sessions.Messages(ctx, turn.ThreadID)
	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, "你好，有什么可以帮忙？", messages[1].Content)

	snap, err := rig.checkpoints.Latest(ctx, turn.ThreadID, turn.ID)
	require.NoError(t, err)
	require.NotNil(t, snap)
}

func TestExecuteTurnWithToolCall(t *testing.T) {
	provider := &scriptedProvider{
		route: "erp",
		scripts: [][]llm.StreamChunk{
			{{Type: "tool_call", ToolCall: &protocol.ToolCall{
				ID: "call_1", Name: "erp_count_purchase_orders",
				Args: map[string]any{"vendor": "V-001", "status": "open"},
			}}},
			{{Type: "text", Text: "供应商V-001有7张未结采购订单。"}},
		},
	}
	rig := newTestRig(t, provider)
	tool := &countTool{spec: tools.Spec{
		Name: "erp_count_purchase_orders", Description: "Count POs.",
		PermissionTag: "erp:read", SideEffect: tools.SideEffectReadOnly,
	}}
	require.NoError(t, rig.catalog.Register(tool))

	ctx := callerContext("erp:read")
	events, turn, err := rig.runtime.ExecuteTurn(ctx, "", "供应商V-001有几张未结采购订单")
	require.NoError(t, err)

	got := collect(events)
	types := eventTypes(got)
	assert.Contains(t, types, "act")
	assert.Contains(t, types, "observe")
	assert.Equal(t, "done", types[len(types)-1])
	assert.Equal(t, 1, tool.calls)

	// The invocation is recorded for replay, untruncated.
	recorded, found, err := rig.checkpoints.LookupToolResult(ctx, turn.ThreadID, "call_1")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Contains(t, string(recorded), `"count":7`)

	loaded, err := rig.sessions.GetTurn(ctx, turn.ID)
	require.NoError(t, err)
	assert.Equal(t, session.TurnDone, loaded.Status)
	assert.Equal(t, "erp", loaded.Domain)
}

func TestWriteToolParksAndApprovalResumes(t *testing.T) {
	provider := &scriptedProvider{
		route: "oa",
		scripts: [][]llm.StreamChunk{
			{{Type: "tool_call", ToolCall: &protocol.ToolCall{
				ID: "call_9", Name: "oa_send_email",
				Args: map[string]any{"to": "vendor@example.com", "subject": "催货"},
			}}},
			{{Type: "text", Text: "邮件已发送。"}},
		},
	}
	rig := newTestRig(t, provider)
	tool := &countTool{spec: tools.Spec{
		Name: "oa_send_email", Description: "Send an email.",
		PermissionTag: "oa:write", SideEffect: tools.SideEffectWrite,
	}}
	require.NoError(t, rig.catalog.Register(tool))

	ctx := callerContext("oa:write")
	events, turn, err := rig.runtime.ExecuteTurn(ctx, "", "给供应商发催货邮件")
	require.NoError(t, err)

	collect(events) // channel closes when the turn parks
	assert.Equal(t, 0, tool.calls, "write tool must not run before approval")

	loaded, err := rig.sessions.GetTurn(ctx, turn.ID)
	require.NoError(t, err)
	require.Equal(t, session.TurnAwaitingHuman, loaded.Status)

	resumed, err := rig.runtime.Approve(ctx, turn.ThreadID, true, "供应商已确认")
	require.NoError(t, err)
	assert.Equal(t, turn.ID, resumed.ID)

	waitForStatus(t, rig.sessions, turn.ID, session.TurnDone)
	assert.Equal(t, 1, tool.calls)

	messages, err := rig.sessions.Messages(ctx, turn.ThreadID)
	require.NoError(t, err)
	last := messages[len(messages)-1]
	assert.Equal(t, "邮件已发送。", last.Content)
}

func TestRejectionFeedsDenialToModel(t *testing.T) {
	provider := &scriptedProvider{
		route: "oa",
		scripts: [][]llm.StreamChunk{
			{{Type: "tool_call", ToolCall: &protocol.ToolCall{
				ID: "call_9", Name: "oa_send_email", Args: map[string]any{"to": "vendor@example.com"},
			}}},
			{{Type: "text", Text: "好的，邮件未发送。"}},
		},
	}
	rig := newTestRig(t, provider)
	tool := &countTool{spec: tools.Spec{
		Name: "oa_send_email", Description: "Send an email.",
		PermissionTag: "oa:write", SideEffect: tools.SideEffectWrite,
	}}
	require.NoError(t, rig.catalog.Register(tool))

	ctx := callerContext("oa:write")
	events, turn, err := rig.runtime.ExecuteTurn(ctx, "", "给供应商发邮件")
	require.NoError(t, err)
	collect(events)

	_, err = rig.runtime.Approve(ctx, turn.ThreadID, false, "")
	require.NoError(t, err)

	waitForStatus(t, rig.sessions, turn.ID, session.TurnDone)
	assert.Equal(t, 0, tool.calls, "rejected tool must never run")
}

func TestApproveWithoutParkedTurn(t *testing.T) {
	rig := newTestRig(t, &scriptedProvider{route: "general"})
	ctx := callerContext()

	_, err := rig.runtime.Approve(ctx, "no-such-thread", true, "")
	require.Error(t, err)
	assert.Equal(t, protocol.KindOperationUnsupported, protocol.KindOf(err))
}

func TestToolBudgetForcesAnswer(t *testing.T) {
	provider := &scriptedProvider{
		route: "erp",
		scripts: [][]llm.StreamChunk{
			{{Type: "tool_call", ToolCall: &protocol.ToolCall{
				ID: "call_1", Name: "erp_count_purchase_orders", Args: map[string]any{"vendor": "V-001"},
			}}},
			{{Type: "tool_call", ToolCall: &protocol.ToolCall{
				ID: "call_2", Name: "erp_count_purchase_orders", Args: map[string]any{"vendor": "V-002"},
			}}},
			{{Type: "text", Text: "两家供应商各有7张未结订单。"}},
		},
	}
	rig := newTestRigLimits(t, provider, config.LimitsConfig{
		MaxToolCallsPerTurn: 2, TurnDeadlineSeconds: 60, ComplexTurnDeadlineSeconds: 180,
	})
	tool := &countTool{spec: tools.Spec{
		Name: "erp_count_purchase_orders", Description: "Count POs.",
		PermissionTag: "erp:read", SideEffect: tools.SideEffectReadOnly,
	}}
	require.NoError(t, rig.catalog.Register(tool))

	ctx := callerContext("erp:read")
	events, turn, err := rig.runtime.ExecuteTurn(ctx, "", "对比V-001和V-002的未结订单")
	require.NoError(t, err)

	got := collect(events)
	assert.Equal(t, "done", got[len(got)-1].Type)
	assert.Equal(t, 2, tool.calls, "budget of two must stop the third call")

	loaded, err := rig.sessions.GetTurn(ctx, turn.ID)
	require.NoError(t, err)
	assert.Equal(t, session.TurnDone, loaded.Status)
	assert.Equal(t, 2, loaded.ToolCallCount)
	assert.Equal(t, "两家供应商各有7张未结订单。", loaded.FinalAnswer)
}

func TestResumeReplaysRecordedToolCall(t *testing.T) {
	provider := &scriptedProvider{
		route: "erp",
		scripts: [][]llm.StreamChunk{
			{{Type: "text", Text: "库存还有120件。"}},
		},
	}
	rig := newTestRig(t, provider)
	tool := &countTool{spec: tools.Spec{
		Name: "erp_get_inventory", Description: "Inventory lookup.",
		PermissionTag: "erp:read", SideEffect: tools.SideEffectReadOnly,
	}}
	require.NoError(t, rig.catalog.Register(tool))

	ctx := callerContext("erp:read")
	thread, err := rig.sessions.GetOrCreateThread(ctx, "", "w.chen", "org-7")
	require.NoError(t, err)
	turn, err := rig.sessions.CreateTurn(ctx, thread.ID, "物料M-88还有多少库存")
	require.NoError(t, err)

	userMsg := protocol.NewUserMessage("物料M-88还有多少库存")
	require.NoError(t, rig.sessions.AppendMessage(ctx, thread.ID, turn.ID, userMsg))

	// The process died after the tool ran and its result was recorded, but
	// before the result message reached the state.
	call := &protocol.ToolCall{ID: "call_7", Name: "erp_get_inventory", Args: map[string]any{"item": "M-88"}}
	require.NoError(t, rig.checkpoints.RecordToolResult(ctx, thread.ID, turn.ID, call.ID, call.Name,
		[]byte(`{"ok":true,"data":{"on_hand":120}}`)))

	state := &TurnState{
		ThreadID:     thread.ID,
		TurnID:       turn.ID,
		Query:        "物料M-88还有多少库存",
		Domain:       "erp",
		State:        StateAwaitingTool,
		StepIndex:    1,
		UserContext:  &auth.UserContext{UserID: "w.chen", OrgID: "org-7", Permissions: []string{"erp:read"}},
		Messages:     []*protocol.Message{userMsg, protocol.NewAssistantMessage("", []*protocol.ToolCall{call})},
		PendingCalls: []*protocol.ToolCall{call},
	}
	raw, err := json.Marshal(state)
	require.NoError(t, err)
	require.NoError(t, rig.checkpoints.Save(ctx, &checkpoint.Snapshot{
		ThreadID: thread.ID, TurnID: turn.ID, StepIndex: 1, State: raw,
	}))

	events, resumed, err := rig.runtime.ResumeTurn(context.Background(), thread.ID)
	require.NoError(t, err)
	assert.Equal(t, turn.ID, resumed.ID)

	got := collect(events)
	types := eventTypes(got)
	assert.Contains(t, types, "observe")
	assert.Equal(t, "done", types[len(types)-1])
	assert.Equal(t, 0, tool.calls, "recorded call must replay, not re-execute")

	loaded, err := rig.sessions.GetTurn(ctx, turn.ID)
	require.NoError(t, err)
	assert.Equal(t, session.TurnDone, loaded.Status)
	assert.Equal(t, 1, loaded.ToolCallCount)
	assert.Equal(t, "库存还有120件。", loaded.FinalAnswer)
}

func TestResumeRefusesParkedTurn(t *testing.T) {
	provider := &scriptedProvider{
		route: "oa",
		scripts: [][]llm.StreamChunk{
			{{Type: "tool_call", ToolCall: &protocol.ToolCall{
				ID: "call_9", Name: "oa_send_email", Args: map[string]any{"to": "vendor@example.com"},
			}}},
		},
	}
	rig := newTestRig(t, provider)
	tool := &countTool{spec: tools.Spec{
		Name: "oa_send_email", Description: "Send an email.",
		PermissionTag: "oa:write", SideEffect: tools.SideEffectWrite,
	}}
	require.NoError(t, rig.catalog.Register(tool))

	ctx := callerContext("oa:write")
	events, turn, err := rig.runtime.ExecuteTurn(ctx, "", "给供应商发邮件")
	require.NoError(t, err)
	collect(events)

	waitForStatus(t, rig.sessions, turn.ID, session.TurnAwaitingHuman)

	_, _, err = rig.runtime.ResumeTurn(ctx, turn.ThreadID)
	require.Error(t, err)
	assert.Equal(t, protocol.KindOperationUnsupported, protocol.KindOf(err))
}

func TestUpstreamFailureProducesApology(t *testing.T) {
	// No scripted responses: the first streaming call errors out.
	provider := &scriptedProvider{route: "general"}
	rig := newTestRig(t, provider)
	ctx := callerContext()

	events, turn, err := rig.runtime.ExecuteTurn(ctx, "", "你好")
	require.NoError(t, err)

	got := collect(events)
	types := eventTypes(got)
	require.NotEmpty(t, types)
	assert.Equal(t, "error", types[len(types)-1])
	assert.Contains(t, types, "answer", "the client still gets a readable answer")

	waitForStatus(t, rig.sessions, turn.ID, session.TurnFailed)
	loaded, err := rig.sessions.GetTurn(ctx, turn.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, loaded.Error)

	messages, err := rig.sessions.Messages(ctx, turn.ThreadID)
	require.NoError(t, err)
	last := messages[len(messages)-1]
	assert.Equal(t, protocol.RoleAssistant, last.Role)
	assert.Contains(t, last.Content, "抱歉")
}

func waitForStatus(t *testing.T, sessions *session.Store, turnID, want string) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		turn, err := sessions.GetTurn(context.Background(), turnID)
		require.NoError(t, err)
		if turn != nil && turn.Status == want {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("turn %s never reached status %s", turnID, want)
}
