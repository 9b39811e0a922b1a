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

// Package runtime executes turns through the agent graph: route the query
// to a domain, loop the model against the tool catalog under the per-turn
// budget, park on human approval for write-class tools, and checkpoint
// after every transition so interrupted turns resume instead of replaying
// side effects.
package runtime

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/bestbox/bestbox/pkg/audit"
	"github.com/bestbox/bestbox/pkg/auth"
	"github.com/bestbox/bestbox/pkg/checkpoint"
	"github.com/bestbox/bestbox/pkg/config"
	"github.com/bestbox/bestbox/pkg/contextmgr"
	"github.com/bestbox/bestbox/pkg/llm"
	"github.com/bestbox/bestbox/pkg/observability"
	"github.com/bestbox/bestbox/pkg/protocol"
	"github.com/bestbox/bestbox/pkg/retriever"
	"github.com/bestbox/bestbox/pkg/scheduler"
	"github.com/bestbox/bestbox/pkg/session"
	"github.com/bestbox/bestbox/pkg/tools"
)

// Event is one streamed unit of turn progress.
type Event struct {
	Type     string             `json:"type"` // think, act, observe, answer, status, error, done
	Text     string             `json:"text,omitempty"`
	ToolCall *protocol.ToolCall `json:"tool_call,omitempty"`
	TurnID   string             `json:"turn_id,omitempty"`
	Kind     protocol.ErrorKind `json:"kind,omitempty"`
}

const (
	llmRetryAttempts = 3
	llmRetryBase     = 200 * time.Millisecond
	llmRetryCap      = 4 * time.Second

	// persistTimeout bounds terminal-state writes that run after the turn
	// deadline has already fired.
	persistTimeout = 10 * time.Second
)

const failureApology = "抱歉，处理这个请求时出了问题，请稍后重试。如果持续失败请联系管理员。"

// Deps wires the runtime's collaborators.
type Deps struct {
	Limits      config.LimitsConfig
	Provider    llm.Provider
	Catalog     *tools.Registry
	Contexts    *contextmgr.Manager
	Checkpoints *checkpoint.Store
	Sessions    *session.Store
	Audit       *audit.Logger
	GPUs        *scheduler.Scheduler
	Lexicon     *retriever.Lexicon
}

// Runtime drives the turn graph.
type Runtime struct {
	deps   Deps
	router *router
}

func New(deps Deps) *Runtime {
	return &Runtime{
		deps:   deps,
		router: &router{provider: deps.Provider, lexicon: deps.Lexicon},
	}
}

// ModelName reports the configured chat model, for API responses.
func (r *Runtime) ModelName() string {
	return r.deps.Provider.ModelName()
}

// ExecuteTurn starts a turn and streams its events. The channel closes when
// the turn finishes, fails, or parks awaiting approval. The turn keeps
// running on a detached context, so a dropped client connection does not
// cancel checkpointed work.
func (r *Runtime) ExecuteTurn(ctx context.Context, threadID, query string) (<-chan Event, *session.Turn, error) {
	uc := auth.FromContext(ctx)
	if uc == nil {
		return nil, nil, protocol.NewError(protocol.KindPermissionDenied, "no caller identity")
	}

	thread, err := r.deps.Sessions.GetOrCreateThread(ctx, threadID, uc.UserID, uc.OrgID)
	if err != nil {
		return nil, nil, err
	}
	if !ownsThread(thread, uc) {
		return nil, nil, protocol.NewError(protocol.KindPermissionDenied, "thread belongs to another user")
	}

	turn, err := r.deps.Sessions.CreateTurn(ctx, thread.ID, query)
	if err != nil {
		return nil, nil, err
	}

	userMsg := protocol.NewUserMessage(query)
	if err := r.deps.Sessions.AppendMessage(ctx, thread.ID, turn.ID, userMsg); err != nil {
		return nil, nil, err
	}

	history, err := r.historyBefore(ctx, thread.ID)
	if err != nil {
		return nil, nil, err
	}

	state := &TurnState{
		ThreadID:    thread.ID,
		TurnID:      turn.ID,
		Query:       query,
		State:       StateRouting,
		UserContext: uc,
		Messages:    []*protocol.Message{userMsg},
	}

	r.deps.Audit.Record(audit.Event{
		ThreadID: thread.ID, TurnID: turn.ID, UserID: uc.UserID, OrgID: uc.OrgID,
		Action: "turn_start", Detail: map[string]any{"query_len": len(query)},
	})

	events := make(chan Event, 64)
	runCtx := context.WithoutCancel(ctx)
	go func() {
		defer close(events)
		r.run(runCtx, state, history, events, nil)
	}()
	return events, turn, nil
}

// ResumeTurn picks up a turn whose process died mid-execution. The latest
// checkpoint is reloaded and any tool calls that already ran replay through
// their recorded results instead of executing again.
func (r *Runtime) ResumeTurn(ctx context.Context, threadID string) (<-chan Event, *session.Turn, error) {
	snap, err := r.deps.Checkpoints.LatestForThread(ctx, threadID)
	if err != nil {
		return nil, nil, err
	}
	if snap == nil {
		return nil, nil, protocol.NewError(protocol.KindOperationUnsupported, "thread has no checkpointed turn")
	}

	var state TurnState
	if err := json.Unmarshal(snap.State, &state); err != nil {
		return nil, nil, fmt.Errorf("failed to decode checkpoint: %w", err)
	}
	switch state.State {
	case StateDone, StateFailed:
		return nil, nil, protocol.NewError(protocol.KindOperationUnsupported, "turn is already terminal")
	case StateAwaitingHuman:
		return nil, nil, protocol.NewError(protocol.KindOperationUnsupported, "turn is awaiting approval; resolve it through the approval endpoint")
	}

	turn, err := r.deps.Sessions.GetTurn(ctx, state.TurnID)
	if err != nil {
		return nil, nil, err
	}
	if turn == nil {
		return nil, nil, protocol.NewError(protocol.KindOperationUnsupported, "checkpoint references a missing turn")
	}

	history, err := r.historyBefore(ctx, threadID)
	if err != nil {
		return nil, nil, err
	}

	slog.Info("Resuming interrupted turn", "thread_id", threadID, "turn_id", state.TurnID, "step", snap.StepIndex)

	events := make(chan Event, 64)
	runCtx := context.WithoutCancel(ctx)
	go func() {
		defer close(events)
		r.run(runCtx, &state, history, events, nil)
	}()
	return events, turn, nil
}

// Approve resolves a parked write-class tool call and resumes the turn in
// the background. approved=false rejects the call; the model then answers
// with the denial in hand. The tool itself runs under the identity that
// started the turn, while the approver goes to the audit trail.
func (r *Runtime) Approve(ctx context.Context, threadID string, approved bool, note string) (*session.Turn, error) {
	uc := auth.FromContext(ctx)

	snap, err := r.deps.Checkpoints.LatestForThread(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if snap == nil {
		return nil, protocol.NewError(protocol.KindOperationUnsupported, "thread has no checkpointed turn")
	}

	var state TurnState
	if err := json.Unmarshal(snap.State, &state); err != nil {
		return nil, fmt.Errorf("failed to decode checkpoint: %w", err)
	}
	if state.State != StateAwaitingHuman || state.PendingApproval == nil {
		return nil, protocol.NewError(protocol.KindOperationUnsupported, "turn is not awaiting approval")
	}

	turn, err := r.deps.Sessions.GetTurn(ctx, state.TurnID)
	if err != nil {
		return nil, err
	}
	if turn == nil || turn.Status != session.TurnAwaitingHuman {
		return nil, protocol.NewError(protocol.KindCheckpointConflict, "turn state diverged from checkpoint")
	}

	detail := map[string]any{"tool": state.PendingApproval.ToolName, "approved": approved}
	if note != "" {
		detail["note"] = note
	}
	r.deps.Audit.Record(audit.Event{
		ThreadID: threadID, TurnID: state.TurnID, UserID: userIDOf(uc), OrgID: orgIDOf(uc),
		Action: "approval_resolved", Detail: detail,
	})

	history, err := r.historyBefore(ctx, threadID)
	if err != nil {
		return nil, err
	}

	if state.UserContext == nil {
		// Snapshot written before identities were persisted; fall back to
		// the approver.
		state.UserContext = uc
	}

	runCtx := context.WithoutCancel(ctx)
	go func() {
		events := make(chan Event, 64)
		go func() {
			for range events {
			}
		}()
		defer close(events)

		r.run(runCtx, &state, history, events, &approvalDecision{
			toolCallID: state.PendingApproval.ToolCallID,
			approved:   approved,
		})
	}()
	return turn, nil
}

type approvalDecision struct {
	toolCallID string
	approved   bool
}

// historyBefore loads the thread transcript minus the trailing user message,
// which lives in the turn state.
func (r *Runtime) historyBefore(ctx context.Context, threadID string) ([]*protocol.Message, error) {
	history, err := r.deps.Sessions.Messages(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if n := len(history); n > 0 && history[n-1].Role == protocol.RoleUser {
		history = history[:n-1]
	}
	return history, nil
}

// run drives the state machine to a terminal or parked state.
func (r *Runtime) run(ctx context.Context, state *TurnState, history []*protocol.Message, events chan<- Event, decision *approvalDecision) {
	started := time.Now()
	uc := state.UserContext
	ctx = auth.WithUserContext(ctx, uc)

	if state.State == StateRouting {
		state.Domain = r.router.route(ctx, state.Query)
		state.State = StateExecuting
		events <- Event{Type: "status", Text: "routed to " + state.Domain, TurnID: state.TurnID}
		if err := r.save(ctx, state); err != nil {
			r.fail(ctx, state, events, started, err)
			return
		}
	}

	deadline := time.Duration(r.deps.Limits.TurnDeadlineSeconds) * time.Second
	if state.Domain == "mold" {
		// The document-heavy domain gets the long budget.
		deadline = time.Duration(r.deps.Limits.ComplexTurnDeadlineSeconds) * time.Second
	}
	ctx, cancel := context.WithTimeout(ctx, deadline)
	defer cancel()

	// An interruption after the answer was composed only needs the
	// terminal bookkeeping, not another model call.
	if state.State == StateAnswering {
		r.finish(ctx, state, events, started, state.Answer)
		return
	}

	forcedAnswer := false

	// An approval decision re-enters the loop by settling the parked call;
	// a crash resume re-enters by finishing the interrupted batch.
	if decision != nil {
		parked, err := r.settleApproval(ctx, state, events, decision)
		if err != nil {
			r.fail(ctx, state, events, started, err)
			return
		}
		if parked {
			return
		}
		forcedAnswer = r.applyToolBudget(state)
		if err := r.save(ctx, state); err != nil {
			r.fail(ctx, state, events, started, err)
			return
		}
	} else if len(state.PendingCalls) > 0 {
		parked, err := r.runToolCalls(ctx, state, events)
		if err != nil {
			r.fail(ctx, state, events, started, err)
			return
		}
		if parked {
			return
		}
		state.State = StateExecuting
		forcedAnswer = r.applyToolBudget(state)
		if err := r.save(ctx, state); err != nil {
			r.fail(ctx, state, events, started, err)
			return
		}
	}

	system := protocol.NewSystemMessage(systemPrompt(state.Domain))

	for {
		if err := ctx.Err(); err != nil {
			r.fail(ctx, state, events, started,
				protocol.WrapError(protocol.KindDeadlineExceeded, "turn deadline exceeded", err))
			return
		}

		window := append(append([]*protocol.Message{}, history...), state.Messages...)
		prompt, err := r.deps.Contexts.Prepare(ctx, system, window)
		if err != nil {
			r.fail(ctx, state, events, started, err)
			return
		}

		defs := r.deps.Catalog.Definitions(uc, state.Domain)
		if forcedAnswer {
			defs = nil
		}

		gen, err := r.generate(ctx, prompt, defs, events)
		if err != nil {
			if errors.Is(err, llm.ErrMalformedToolCall) && !forcedAnswer {
				// One corrective re-prompt without tools.
				slog.Warn("Malformed tool call, re-prompting without tools", "turn_id", state.TurnID)
				state.Messages = append(state.Messages, protocol.NewSystemMessage(
					"The previous tool call was malformed. Answer directly without calling tools."))
				forcedAnswer = true
				continue
			}
			r.fail(ctx, state, events, started, err)
			return
		}
		if gen.thinking != "" {
			appendStep(state, protocol.StepThink, gen.thinking)
		}

		if len(gen.toolCalls) == 0 || forcedAnswer {
			r.finish(ctx, state, events, started, gen.text)
			return
		}

		state.State = StateAwaitingTool
		state.Messages = append(state.Messages, protocol.NewAssistantMessage(gen.text, gen.toolCalls))
		state.PendingCalls = gen.toolCalls
		if err := r.save(ctx, state); err != nil {
			r.fail(ctx, state, events, started, err)
			return
		}

		parked, err := r.runToolCalls(ctx, state, events)
		if err != nil {
			r.fail(ctx, state, events, started, err)
			return
		}
		if parked {
			return
		}

		state.State = StateExecuting
		forcedAnswer = r.applyToolBudget(state)
		if err := r.save(ctx, state); err != nil {
			r.fail(ctx, state, events, started, err)
			return
		}
	}
}

// applyToolBudget injects the forced-answer instruction once the per-turn
// tool budget is spent.
func (r *Runtime) applyToolBudget(state *TurnState) bool {
	if state.ToolCallsUsed < r.deps.Limits.MaxToolCallsPerTurn {
		return false
	}
	state.Messages = append(state.Messages, protocol.NewSystemMessage(
		"Tool budget exhausted. Answer now with the information gathered so far."))
	return true
}

// runToolCalls executes the pending calls in order. Returns parked=true
// when a write-class call needs approval; earlier results in this batch are
// kept and the remaining calls stay queued in the state.
func (r *Runtime) runToolCalls(ctx context.Context, state *TurnState, events chan<- Event) (bool, error) {
	for len(state.PendingCalls) > 0 {
		call := state.PendingCalls[0]

		if state.ToolCallsUsed >= r.deps.Limits.MaxToolCallsPerTurn {
			state.Messages = append(state.Messages, protocol.NewToolResultMessage(call.ID, call.Name,
				`{"ok":false,"error_kind":"resource_busy","message":"tool budget for this turn is exhausted"}`))
			state.PendingCalls = state.PendingCalls[1:]
			continue
		}

		events <- Event{Type: "act", ToolCall: call, TurnID: state.TurnID}
		appendStep(state, protocol.StepAct, actText(call))

		// Replay short-circuit: a call already recorded for this thread ran
		// before an interruption; reuse its result instead of re-executing.
		if recorded, ok, err := r.deps.Checkpoints.LookupToolResult(ctx, state.ThreadID, call.ID); err != nil {
			return false, err
		} else if ok {
			r.replayResult(state, events, call, string(recorded))
			state.PendingCalls = state.PendingCalls[1:]
			if err := r.save(ctx, state); err != nil {
				return false, err
			}
			continue
		}

		result, pending := r.deps.Catalog.Execute(ctx, state.UserContext, call, false)
		if pending != nil {
			state.State = StateAwaitingHuman
			state.PendingApproval = pending
			if err := r.save(ctx, state); err != nil {
				return false, err
			}
			if err := r.deps.Sessions.UpdateTurnStatus(ctx, state.TurnID, session.TurnAwaitingHuman, state.Domain, ""); err != nil {
				return false, err
			}
			r.deps.Audit.Record(audit.Event{
				ThreadID: state.ThreadID, TurnID: state.TurnID,
				UserID: userIDOf(state.UserContext), OrgID: orgIDOf(state.UserContext),
				Action: "approval_requested",
				Detail: map[string]any{"tool": pending.ToolName, "tool_call_id": pending.ToolCallID},
			})
			events <- Event{Type: "status", Text: "awaiting human approval for " + pending.ToolName, TurnID: state.TurnID}
			return true, nil
		}

		r.recordResult(ctx, state, events, call, result)
		state.PendingCalls = state.PendingCalls[1:]
		if err := r.save(ctx, state); err != nil {
			return false, err
		}
	}
	return false, nil
}

// settleApproval executes or rejects the parked call, clears the park, and
// finishes the rest of the batch.
func (r *Runtime) settleApproval(ctx context.Context, state *TurnState, events chan<- Event, decision *approvalDecision) (bool, error) {
	pending := state.PendingApproval
	if pending == nil || pending.ToolCallID != decision.toolCallID {
		return false, protocol.NewError(protocol.KindCheckpointConflict, "approval does not match the parked tool call")
	}

	call := &protocol.ToolCall{ID: pending.ToolCallID, Name: pending.ToolName, Args: pending.Args}
	if decision.approved {
		result, _ := r.deps.Catalog.Execute(ctx, state.UserContext, call, true)
		r.recordResult(ctx, state, events, call, result)
	} else {
		denied := &tools.Result{OK: false, ErrorKind: protocol.KindPermissionDenied, Message: "the user rejected this action"}
		r.recordResult(ctx, state, events, call, denied)
	}

	state.PendingApproval = nil
	if len(state.PendingCalls) > 0 && state.PendingCalls[0].ID == call.ID {
		state.PendingCalls = state.PendingCalls[1:]
	}
	state.State = StateAwaitingTool
	if err := r.save(ctx, state); err != nil {
		return false, err
	}
	if err := r.deps.Sessions.UpdateTurnStatus(ctx, state.TurnID, session.TurnRunning, state.Domain, ""); err != nil {
		return false, err
	}

	parked, err := r.runToolCalls(ctx, state, events)
	if err != nil || parked {
		return parked, err
	}
	state.State = StateExecuting
	return false, nil
}

// recordResult persists, audits and surfaces one executed tool result. The
// replay record and the audit trail keep the full payload; only the
// model-facing message is truncated.
func (r *Runtime) recordResult(ctx context.Context, state *TurnState, events chan<- Event, call *protocol.ToolCall, result *tools.Result) {
	full := result.Content()

	if err := r.deps.Checkpoints.RecordToolResult(ctx, state.ThreadID, state.TurnID, call.ID, call.Name, json.RawMessage(full)); err != nil {
		slog.Warn("Failed to record tool invocation", "tool", call.Name, "error", err)
	}

	action := "tool_call"
	if result.ErrorKind == protocol.KindPermissionDenied {
		action = "tool_denied"
	}
	r.deps.Audit.Record(audit.Event{
		ThreadID: state.ThreadID, TurnID: state.TurnID,
		UserID: userIDOf(state.UserContext), OrgID: orgIDOf(state.UserContext),
		Action: action,
		Detail: map[string]any{"tool": call.Name, "ok": result.OK, "result": json.RawMessage(full)},
	})
	observability.RecordToolCall(call.Name, result.OK)

	r.keepRetrieved(state, call, result)

	content := r.deps.Contexts.TruncateToolResult(full)
	state.Messages = append(state.Messages, protocol.NewToolResultMessage(call.ID, call.Name, content))
	state.ToolCallsUsed++
	appendStep(state, protocol.StepObserve, content)
	events <- Event{Type: "observe", Text: content, ToolCall: call, TurnID: state.TurnID}
}

// replayResult feeds a previously recorded result back to the model without
// re-executing the tool or double-counting audit and metrics.
func (r *Runtime) replayResult(state *TurnState, events chan<- Event, call *protocol.ToolCall, recorded string) {
	content := r.deps.Contexts.TruncateToolResult(recorded)
	state.Messages = append(state.Messages, protocol.NewToolResultMessage(call.ID, call.Name, content))
	state.ToolCallsUsed++
	appendStep(state, protocol.StepObserve, content)
	events <- Event{Type: "observe", Text: content, ToolCall: call, TurnID: state.TurnID}
}

// keepRetrieved caches knowledge-base passages on the state, keyed by the
// domain that fetched them, so later steps and resumed turns keep the
// grounding that produced the answer.
func (r *Runtime) keepRetrieved(state *TurnState, call *protocol.ToolCall, result *tools.Result) {
	if call.Name != "search_kb" || !result.OK || result.Data == nil {
		return
	}
	passages, ok := result.Data["passages"]
	if !ok {
		return
	}
	domain := state.Domain
	if d, ok := call.Args["domain"].(string); ok && d != "" {
		domain = d
	}
	if state.RetrievedContext == nil {
		state.RetrievedContext = make(map[string]any)
	}
	state.RetrievedContext[domain] = passages
}

// generation is the outcome of one streaming model call.
type generation struct {
	text      string
	thinking  string
	toolCalls []*protocol.ToolCall
	// emitted flips once any token reached the caller; a retry after that
	// would deliver duplicate text.
	emitted bool
}

// generate streams one model call under a GPU lease, retrying transient
// upstream failures with jittered backoff as long as nothing has been
// emitted to the caller yet.
func (r *Runtime) generate(ctx context.Context, prompt []*protocol.Message, defs []llm.ToolDefinition, events chan<- Event) (*generation, error) {
	var lastErr error
	for attempt := 0; attempt < llmRetryAttempts; attempt++ {
		if attempt > 0 {
			delay := llmRetryBase << (attempt - 1)
			if delay > llmRetryCap {
				delay = llmRetryCap
			}
			delay = time.Duration(rand.Int63n(int64(delay))) + delay/2
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, protocol.WrapError(protocol.KindDeadlineExceeded, "turn deadline exceeded", ctx.Err())
			}
		}

		gen, err := r.streamOnce(ctx, prompt, defs, events)
		if err == nil {
			return gen, nil
		}
		lastErr = err

		if kind := protocol.KindOf(err); kind != protocol.KindUpstreamUnavailable || errors.Is(err, llm.ErrMalformedToolCall) {
			return nil, err
		}
		if gen.emitted {
			return nil, err
		}
		slog.Warn("Model call failed, retrying", "attempt", attempt+1, "error", err)
	}
	return nil, lastErr
}

func (r *Runtime) streamOnce(ctx context.Context, prompt []*protocol.Message, defs []llm.ToolDefinition, events chan<- Event) (*generation, error) {
	gen := &generation{}

	lease, err := r.deps.GPUs.Acquire(ctx, scheduler.JobLLMPrimary, 1)
	if err != nil {
		return gen, err
	}
	defer lease.Release()

	stream, err := r.deps.Provider.GenerateStreaming(ctx, prompt, defs)
	if err != nil {
		return gen, err
	}

	var text, thinking strings.Builder
	for chunk := range stream {
		switch chunk.Type {
		case "thinking":
			thinking.WriteString(chunk.Text)
			gen.emitted = true
			events <- Event{Type: "think", Text: chunk.Text}
		case "text":
			text.WriteString(chunk.Text)
			gen.emitted = true
			events <- Event{Type: "answer", Text: chunk.Text}
		case "tool_call":
			gen.toolCalls = append(gen.toolCalls, chunk.ToolCall)
		case "error":
			gen.text = llm.StripReasoningPreamble(text.String())
			gen.thinking = thinking.String()
			return gen, chunk.Error
		}
	}
	gen.text = llm.StripReasoningPreamble(text.String())
	gen.thinking = thinking.String()
	return gen, nil
}

func (r *Runtime) finish(ctx context.Context, state *TurnState, events chan<- Event, started time.Time, answer string) {
	state.State = StateAnswering
	state.Answer = answer
	if n := len(state.Trace); n == 0 || state.Trace[n-1].Kind != protocol.StepAnswer {
		appendStep(state, protocol.StepAnswer, answer)
	}
	if err := r.save(ctx, state); err != nil {
		r.fail(ctx, state, events, started, err)
		return
	}

	// The answer is already streamed; terminal persistence must not be
	// starved by whatever is left of the turn budget.
	pctx, cancel := detachedCtx(ctx)
	defer cancel()

	assistant := protocol.NewAssistantMessage(answer, nil)
	assistant.Reasoning = state.Trace
	state.Messages = append(state.Messages, assistant)

	state.State = StateDone
	if err := r.save(pctx, state); err != nil {
		r.fail(ctx, state, events, started, err)
		return
	}

	// Persist the turn's messages into the thread transcript.
	for _, msg := range state.Messages[1:] { // user message was stored at turn start
		if err := r.deps.Sessions.AppendMessage(pctx, state.ThreadID, state.TurnID, msg); err != nil {
			slog.Warn("Failed to persist turn message", "turn_id", state.TurnID, "error", err)
		}
	}

	if err := r.deps.Sessions.CompleteTurn(pctx, state.TurnID, session.TurnDone, state.Domain, "", answer, state.ToolCallsUsed); err != nil {
		slog.Warn("Failed to close turn", "turn_id", state.TurnID, "error", err)
	}
	if err := r.deps.Checkpoints.MarkTerminal(pctx, state.ThreadID, state.TurnID); err != nil {
		slog.Warn("Failed to mark checkpoints terminal", "turn_id", state.TurnID, "error", err)
	}

	r.deps.Audit.Record(audit.Event{
		ThreadID: state.ThreadID, TurnID: state.TurnID,
		UserID: userIDOf(state.UserContext), OrgID: orgIDOf(state.UserContext),
		Action: "turn_end", Detail: map[string]any{"status": "done", "tool_calls": state.ToolCallsUsed},
	})
	observability.RecordTurn("done", state.Domain, time.Since(started))
	events <- Event{Type: "done", TurnID: state.TurnID}
}

func (r *Runtime) fail(ctx context.Context, state *TurnState, events chan<- Event, started time.Time, err error) {
	kind := protocol.KindOf(err)
	slog.Error("Turn failed", "turn_id", state.TurnID, "kind", string(kind), "error", err)

	// The failure may be the turn deadline itself; persist the terminal
	// state on a context that outlives it.
	pctx, cancel := detachedCtx(ctx)
	defer cancel()

	state.State = StateFailed
	if saveErr := r.save(pctx, state); saveErr != nil {
		slog.Warn("Failed to checkpoint failed turn", "turn_id", state.TurnID, "error", saveErr)
	}
	if dbErr := r.deps.Sessions.CompleteTurn(pctx, state.TurnID, session.TurnFailed, state.Domain, err.Error(), "", state.ToolCallsUsed); dbErr != nil {
		slog.Warn("Failed to record turn failure", "turn_id", state.TurnID, "error", dbErr)
	}
	if mtErr := r.deps.Checkpoints.MarkTerminal(pctx, state.ThreadID, state.TurnID); mtErr != nil {
		slog.Warn("Failed to mark checkpoints terminal", "turn_id", state.TurnID, "error", mtErr)
	}

	// The client still gets a usable message plus the partial trace.
	apology := protocol.NewAssistantMessage(failureApology, nil)
	apology.Reasoning = state.Trace
	if dbErr := r.deps.Sessions.AppendMessage(pctx, state.ThreadID, state.TurnID, apology); dbErr != nil {
		slog.Warn("Failed to persist failure message", "turn_id", state.TurnID, "error", dbErr)
	}

	r.deps.Audit.Record(audit.Event{
		ThreadID: state.ThreadID, TurnID: state.TurnID,
		UserID: userIDOf(state.UserContext), OrgID: orgIDOf(state.UserContext),
		Action: "turn_end", Detail: map[string]any{"status": "failed", "kind": string(kind)},
	})
	observability.RecordTurn("failed", state.Domain, time.Since(started))
	events <- Event{Type: "answer", Text: failureApology, TurnID: state.TurnID}
	events <- Event{Type: "error", Text: err.Error(), Kind: kind, TurnID: state.TurnID}
}

// save checkpoints the state at the next step index. A conflict means
// another writer advanced the head; reload it and retry once, then give up
// so concurrent owners cannot interleave silently.
func (r *Runtime) save(ctx context.Context, state *TurnState) error {
	err := r.trySave(ctx, state, state.StepIndex+1)
	if err == nil || protocol.KindOf(err) != protocol.KindCheckpointConflict {
		return err
	}

	head, headErr := r.deps.Checkpoints.Latest(ctx, state.ThreadID, state.TurnID)
	if headErr != nil || head == nil {
		return err
	}
	slog.Warn("Checkpoint conflict, retrying at reloaded head",
		"turn_id", state.TurnID, "head", head.StepIndex)
	return r.trySave(ctx, state, head.StepIndex+1)
}

func (r *Runtime) trySave(ctx context.Context, state *TurnState, step int) error {
	prev := state.StepIndex
	state.StepIndex = step
	raw, err := json.Marshal(state)
	if err != nil {
		state.StepIndex = prev
		return fmt.Errorf("failed to serialize turn state: %w", err)
	}
	if err := r.deps.Checkpoints.Save(ctx, &checkpoint.Snapshot{
		ThreadID:  state.ThreadID,
		TurnID:    state.TurnID,
		StepIndex: step,
		State:     raw,
	}); err != nil {
		state.StepIndex = prev
		return err
	}
	return nil
}

// appendStep records one entry of the turn's visible reasoning trace.
func appendStep(state *TurnState, kind protocol.StepKind, text string) {
	state.Trace = append(state.Trace, &protocol.ReasoningStep{
		Kind: kind, Text: text, At: time.Now().UTC(),
	})
}

func actText(call *protocol.ToolCall) string {
	if len(call.Args) == 0 {
		return call.Name
	}
	args, err := json.Marshal(call.Args)
	if err != nil {
		return call.Name
	}
	return call.Name + " " + string(args)
}

// detachedCtx keeps the context's values but drops its deadline.
func detachedCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), persistTimeout)
}

func ownsThread(thread *session.Thread, uc *auth.UserContext) bool {
	if thread.UserID == uc.UserID {
		return true
	}
	return thread.OrgID != "" && thread.OrgID == uc.OrgID
}

func userIDOf(uc *auth.UserContext) string {
	if uc == nil {
		return "anonymous"
	}
	return uc.UserID
}

func orgIDOf(uc *auth.UserContext) string {
	if uc == nil {
		return ""
	}
	return uc.OrgID
}

func systemPrompt(domain string) string {
	base := "You are BestBox, the on-premise assistant for manufacturing operations. " +
		"Answer in the user's language. Cite knowledge-base passages by their [C#] tags. " +
		"Use tools for live business data instead of guessing."

	switch domain {
	case "erp":
		return base + " Focus on purchasing, inventory, vendors and finance. Quote exact figures from tool results."
	case "crm":
		return base + " Focus on customers, leads and opportunities."
	case "it":
		return base + " Focus on incidents, tickets and host health."
	case "oa":
		return base + " Focus on approvals, calendars and email. Drafting is free; sending requires approval."
	case "mold":
		return base + " Focus on injection molding defects, mold cases and surface finishing. Search the knowledge base for similar cases before answering."
	default:
		return base
	}
}
