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

package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestbox/bestbox/pkg/adapters"
	"github.com/bestbox/bestbox/pkg/audit"
	"github.com/bestbox/bestbox/pkg/checkpoint"
	"github.com/bestbox/bestbox/pkg/config"
	"github.com/bestbox/bestbox/pkg/contextmgr"
	"github.com/bestbox/bestbox/pkg/llm"
	"github.com/bestbox/bestbox/pkg/protocol"
	"github.com/bestbox/bestbox/pkg/retriever"
	"github.com/bestbox/bestbox/pkg/runtime"
	"github.com/bestbox/bestbox/pkg/scheduler"
	"github.com/bestbox/bestbox/pkg/session"
	"github.com/bestbox/bestbox/pkg/storage"
	"github.com/bestbox/bestbox/pkg/tools"
)

// answerProvider routes to a fixed domain and answers with a fixed string,
// optionally emitting one tool call on the first streaming turn.
type answerProvider struct {
	mu       sync.Mutex
	answer   string
	route    string
	toolCall *protocol.ToolCall
	calls    int
}

func (p *answerProvider) Generate(ctx context.Context, messages []*protocol.Message, defs []llm.ToolDefinition) (string, []*protocol.ToolCall, int, error) {
	return p.answer, nil, 0, nil
}

func (p *answerProvider) GenerateStructured(ctx context.Context, messages []*protocol.Message, structured *llm.StructuredConfig) (string, int, error) {
	route := p.route
	if route == "" {
		route = "general"
	}
	return `{"next": "` + route + `"}`, 0, nil
}

func (p *answerProvider) GenerateStreaming(ctx context.Context, messages []*protocol.Message, defs []llm.ToolDefinition) (<-chan llm.StreamChunk, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++

	ch := make(chan llm.StreamChunk, 2)
	if p.toolCall != nil && p.calls == 1 {
		ch <- llm.StreamChunk{Type: "tool_call", ToolCall: p.toolCall}
	} else {
		ch <- llm.StreamChunk{Type: "text", Text: p.answer}
	}
	ch <- llm.StreamChunk{Type: "done"}
	close(ch)
	return ch, nil
}

func (p *answerProvider) ContextWindow() int { return 32768 }
func (p *answerProvider) ModelName() string  { return "test-model" }

type stubTool struct {
	spec  tools.Spec
	calls int
}

func (s *stubTool) Spec() tools.Spec { return s.spec }

func (s *stubTool) Execute(ctx context.Context, args map[string]any) *tools.Result {
	s.calls++
	return &tools.Result{OK: true, Data: map[string]any{"sent": true}}
}

type serverRig struct {
	server   *Server
	sessions *session.Store
	catalog  *tools.Registry
	provider *answerProvider
}

func newTestServer(t *testing.T) *serverRig {
	t.Helper()

	db, err := storage.Open(config.DatabaseConfig{
		Driver: "sqlite3",
		DSN:    filepath.Join(t.TempDir(), "server_test.db"),
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
	backends, err := adapters.NewRegistry(nil)
	require.NoError(t, err)
	lexicon, err := retriever.LoadLexicon("")
	require.NoError(t, err)

	provider := &answerProvider{answer: "The answer."}
	catalog := tools.NewRegistry()
	rt := runtime.New(runtime.Deps{
		Limits:      config.LimitsConfig{MaxToolCallsPerTurn: 10, TurnDeadlineSeconds: 60, ComplexTurnDeadlineSeconds: 180},
		Provider:    provider,
		Catalog:     catalog,
		Contexts:    contextmgr.New(config.ContextConfig{KeepRecentPairs: 6, SummarizeAtFraction: 0.75}, 32768, contextmgr.NewTokenCounter("test-model"), nil),
		Checkpoints: checkpoints,
		Sessions:    sessions,
		Audit:       auditLog,
		GPUs:        scheduler.New(config.GPUConfig{AcquireTimeoutSeconds: 5}),
		Lexicon:     lexicon,
	})

	gpus := scheduler.New(config.GPUConfig{AcquireTimeoutSeconds: 5})
	return &serverRig{
		server:   New(rt, sessions, backends, gpus, auditLog, nil),
		sessions: sessions,
		catalog:  catalog,
		provider: provider,
	}
}

func TestHealthz(t *testing.T) {
	rig := newTestServer(t)
	ts := httptest.NewServer(rig.server.Router())
	defer ts.Close()

	resp, err := http.Get(ts.URL + "/healthz")
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Status   string          `json:"status"`
		Backends map[string]bool `json:"backends"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body.Status)
	assert.True(t, body.Backends["erp"])
}

func TestChatStreamsSSE(t *testing.T) {
	rig := newTestServer(t)
	ts := httptest.NewServer(rig.server.Router())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/v1/chat/completions", "application/json",
		strings.NewReader(`{"messages": [{"role": "user", "content": "hello"}], "stream": true}`))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))
	assert.NotEmpty(t, resp.Header.Get("X-Turn-Id"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	body := string(raw)
	assert.Contains(t, body, `"text":"The answer."`)
	assert.Contains(t, body, `"done":true`)
}

func TestChatCompletionJSON(t *testing.T) {
	rig := newTestServer(t)
	ts := httptest.NewServer(rig.server.Router())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/v1/chat/completions", "application/json",
		strings.NewReader(`{"messages": [{"role": "user", "content": "hello"}]}`))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var body struct {
		Object   string `json:"object"`
		Model    string `json:"model"`
		ThreadID string `json:"thread_id"`
		Choices  []struct {
			Message struct {
				Role    string `json:"role"`
				Content string `json:"content"`
			} `json:"message"`
			FinishReason string `json:"finish_reason"`
		} `json:"choices"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "chat.completion", body.Object)
	assert.Equal(t, "test-model", body.Model)
	assert.NotEmpty(t, body.ThreadID)
	require.Len(t, body.Choices, 1)
	assert.Equal(t, "assistant", body.Choices[0].Message.Role)
	assert.Equal(t, "The answer.", body.Choices[0].Message.Content)
	assert.Equal(t, "stop", body.Choices[0].FinishReason)
}

func TestChatAwaitingApprovalReturns202(t *testing.T) {
	rig := newTestServer(t)
	rig.provider.route = "oa"
	rig.provider.toolCall = &protocol.ToolCall{
		ID: "call_1", Name: "oa_send_email",
		Args: map[string]any{"to": "vendor@example.com"},
	}
	tool := &stubTool{spec: tools.Spec{
		Name: "oa_send_email", Description: "Send an email.",
		PermissionTag: "oa:write", SideEffect: tools.SideEffectWrite, Domain: "oa",
	}}
	require.NoError(t, rig.catalog.Register(tool))

	ts := httptest.NewServer(rig.server.Router())
	defer ts.Close()

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/v1/chat/completions",
		strings.NewReader(`{"messages": [{"role": "user", "content": "给供应商发邮件"}]}`))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-BestBox-Permissions", "oa:write")

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusAccepted, resp.StatusCode)

	var body struct {
		ThreadID string `json:"thread_id"`
		TurnID   string `json:"turn_id"`
		Status   string `json:"status"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, session.TurnAwaitingHuman, body.Status)
	assert.NotEmpty(t, body.ThreadID)
	assert.Equal(t, 0, tool.calls, "write tool must wait for approval")
}

func TestChatRejectsMissingUserMessage(t *testing.T) {
	rig := newTestServer(t)
	ts := httptest.NewServer(rig.server.Router())
	defer ts.Close()

	for _, body := range []string{
		`{"messages": []}`,
		`{"messages": [{"role": "assistant", "content": "hi"}]}`,
		`{"messages": [{"role": "user", "content": "   "}]}`,
	} {
		resp, err := http.Post(ts.URL+"/v1/chat/completions", "application/json", strings.NewReader(body))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "body: %s", body)
	}
}

func TestGetThreadOwnership(t *testing.T) {
	rig := newTestServer(t)
	ts := httptest.NewServer(rig.server.Router())
	defer ts.Close()

	ctx := context.Background()
	mine, err := rig.sessions.GetOrCreateThread(ctx, "th-mine", "demo", "")
	require.NoError(t, err)
	theirs, err := rig.sessions.GetOrCreateThread(ctx, "th-theirs", "someone-else", "other-org")
	require.NoError(t, err)

	// Header identity defaults to user "demo".
	resp, err := http.Get(ts.URL + "/v1/threads/" + mine.ID)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/v1/threads/" + theirs.ID)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp, err = http.Get(ts.URL + "/v1/threads/no-such-thread")
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestApproveRequiresDecision(t *testing.T) {
	rig := newTestServer(t)
	ts := httptest.NewServer(rig.server.Router())
	defer ts.Close()

	resp, err := http.Post(ts.URL+"/v1/threads/th1/approve", "application/json",
		strings.NewReader(`{"note": "looks fine"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestRatingEndpoint(t *testing.T) {
	rig := newTestServer(t)
	ts := httptest.NewServer(rig.server.Router())
	defer ts.Close()

	ctx := context.Background()
	thread, err := rig.sessions.GetOrCreateThread(ctx, "th1", "demo", "")
	require.NoError(t, err)
	turn, err := rig.sessions.CreateTurn(ctx, thread.ID, "帮我查一下库存")
	require.NoError(t, err)

	resp, err := http.Post(ts.URL+"/v1/turns/"+turn.ID+"/rating", "application/json",
		strings.NewReader(`{"rating": "good"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	loaded, err := rig.sessions.GetTurn(ctx, turn.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Rating)
	assert.Equal(t, session.RatingGood, *loaded.Rating)

	resp, err = http.Post(ts.URL+"/v1/turns/"+turn.ID+"/rating", "application/json",
		strings.NewReader(`{"rating": "excellent"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, err = http.Post(ts.URL+"/v1/turns/no-such-turn/rating", "application/json",
		strings.NewReader(`{"rating": "good"}`))
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
