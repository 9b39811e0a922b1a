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

// Package server exposes the HTTP API: an OpenAI-compatible chat surface,
// thread inspection, approval resolution, turn ratings, health and metrics.
package server

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/bestbox/bestbox"
	"github.com/bestbox/bestbox/pkg/adapters"
	"github.com/bestbox/bestbox/pkg/audit"
	"github.com/bestbox/bestbox/pkg/auth"
	"github.com/bestbox/bestbox/pkg/observability"
	"github.com/bestbox/bestbox/pkg/protocol"
	"github.com/bestbox/bestbox/pkg/runtime"
	"github.com/bestbox/bestbox/pkg/scheduler"
	"github.com/bestbox/bestbox/pkg/session"
)

// Server holds the API dependencies.
type Server struct {
	runtime   *runtime.Runtime
	sessions  *session.Store
	backends  *adapters.Registry
	gpus      *scheduler.Scheduler
	audit     *audit.Logger
	validator auth.TokenValidator
}

// New builds the server. validator may be nil in dev deployments; header
// identity applies then.
func New(rt *runtime.Runtime, sessions *session.Store, backends *adapters.Registry, gpus *scheduler.Scheduler, auditLog *audit.Logger, validator auth.TokenValidator) *Server {
	return &Server{runtime: rt, sessions: sessions, backends: backends, gpus: gpus, audit: auditLog, validator: validator}
}

// Router assembles the chi routing tree.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Get("/metrics", observability.Handler().ServeHTTP)

	r.Route("/v1", func(r chi.Router) {
		r.Use(auth.Middleware(s.validator))

		r.Post("/chat/completions", s.handleChat)
		r.Route("/threads/{thread_id}", func(r chi.Router) {
			r.Get("/", s.handleGetThread)
			r.Post("/approve", s.handleApprove)
		})
		r.Post("/turns/{turn_id}/rating", s.handleRating)
	})
	return r
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	ThreadID string        `json:"thread_id,omitempty"`
	Messages []chatMessage `json:"messages"`
	Stream   bool          `json:"stream,omitempty"`
	Model    string        `json:"model,omitempty"`
}

// chatDelta is one SSE frame of a streamed completion.
type chatDelta struct {
	Text          string                  `json:"text,omitempty"`
	ReasoningStep *protocol.ReasoningStep `json:"reasoning_step,omitempty"`
	Status        string                  `json:"status,omitempty"`
	TurnID        string                  `json:"turn_id,omitempty"`
	Error         *deltaError             `json:"error,omitempty"`
	Done          bool                    `json:"done,omitempty"`
}

type deltaError struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

type approveRequest struct {
	Approved *bool  `json:"approved"`
	Note     string `json:"note,omitempty"`
}

type ratingRequest struct {
	Rating string `json:"rating"`
}

// handleChat runs one turn against the thread. The transcript is
// server-side state, so only the trailing user message of the submitted
// conversation becomes new input.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, protocol.NewError(protocol.KindOperationUnsupported, "invalid request body"))
		return
	}
	query := lastUserMessage(req.Messages)
	if query == "" {
		writeError(w, protocol.NewError(protocol.KindOperationUnsupported, "messages must contain a user message"))
		return
	}

	events, turn, err := s.runtime.ExecuteTurn(r.Context(), req.ThreadID, query)
	if err != nil {
		writeError(w, err)
		return
	}

	if req.Stream {
		s.streamChat(w, turn, events)
		return
	}
	s.completeChat(r.Context(), w, turn, events)
}

// streamChat relays turn events as SSE deltas.
func (s *Server) streamChat(w http.ResponseWriter, turn *session.Turn, events <-chan runtime.Event) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		go drain(events)
		writeError(w, protocol.NewError(protocol.KindInternal, "streaming unsupported"))
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("X-Turn-Id", turn.ID)
	w.WriteHeader(http.StatusOK)
	flusher.Flush()

	for event := range events {
		delta, ok := toDelta(event)
		if !ok {
			continue
		}
		payload, err := json.Marshal(delta)
		if err != nil {
			continue
		}
		if _, err := w.Write([]byte("data: " + string(payload) + "\n\n")); err != nil {
			// Client went away; the turn keeps running and checkpointing.
			slog.Debug("SSE client disconnected", "turn_id", turn.ID, "error", err)
			go drain(events)
			return
		}
		flusher.Flush()
	}
}

// completeChat waits for the turn and answers with a single completion
// object. A parked turn acknowledges with 202 so the client knows an
// approval is outstanding.
func (s *Server) completeChat(ctx context.Context, w http.ResponseWriter, turn *session.Turn, events <-chan runtime.Event) {
	var answer strings.Builder
	var lastErr *deltaError
	for event := range events {
		switch event.Type {
		case "answer":
			answer.WriteString(event.Text)
		case "error":
			lastErr = &deltaError{Kind: string(event.Kind), Message: event.Text}
		}
	}

	loaded, err := s.sessions.GetTurn(ctx, turn.ID)
	if err != nil {
		writeError(w, err)
		return
	}
	if loaded == nil {
		writeError(w, protocol.NewError(protocol.KindInternal, "turn record missing"))
		return
	}

	switch loaded.Status {
	case session.TurnAwaitingHuman:
		writeJSON(w, http.StatusAccepted, map[string]any{
			"thread_id": loaded.ThreadID,
			"turn_id":   loaded.ID,
			"status":    session.TurnAwaitingHuman,
		})
	case session.TurnFailed:
		if lastErr == nil {
			lastErr = &deltaError{Kind: string(protocol.KindInternal), Message: loaded.Error}
		}
		writeJSON(w, protocol.HTTPStatus(protocol.ErrorKind(lastErr.Kind)), map[string]any{
			"error": map[string]any{"kind": lastErr.Kind, "message": lastErr.Message},
		})
	default:
		content := loaded.FinalAnswer
		if content == "" {
			content = answer.String()
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"id":        loaded.ID,
			"object":    "chat.completion",
			"created":   time.Now().Unix(),
			"model":     s.runtime.ModelName(),
			"thread_id": loaded.ThreadID,
			"choices": []map[string]any{{
				"index":         0,
				"message":       map[string]any{"role": "assistant", "content": content},
				"finish_reason": "stop",
			}},
		})
	}
}

// toDelta maps a runtime event onto the wire delta. Unknown event types are
// dropped rather than leaked.
func toDelta(event runtime.Event) (chatDelta, bool) {
	switch event.Type {
	case "answer":
		return chatDelta{Text: event.Text}, true
	case "think":
		return chatDelta{ReasoningStep: &protocol.ReasoningStep{Kind: protocol.StepThink, Text: event.Text, At: time.Now().UTC()}}, true
	case "act":
		text := event.Text
		if event.ToolCall != nil {
			text = event.ToolCall.Name
		}
		return chatDelta{ReasoningStep: &protocol.ReasoningStep{Kind: protocol.StepAct, Text: text, At: time.Now().UTC()}}, true
	case "observe":
		return chatDelta{ReasoningStep: &protocol.ReasoningStep{Kind: protocol.StepObserve, Text: event.Text, At: time.Now().UTC()}}, true
	case "status":
		return chatDelta{Status: event.Text, TurnID: event.TurnID}, true
	case "error":
		return chatDelta{Error: &deltaError{Kind: string(event.Kind), Message: event.Text}, TurnID: event.TurnID}, true
	case "done":
		return chatDelta{Done: true, TurnID: event.TurnID}, true
	default:
		return chatDelta{}, false
	}
}

func lastUserMessage(messages []chatMessage) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == "user" {
			return strings.TrimSpace(messages[i].Content)
		}
	}
	return ""
}

func drain(events <-chan runtime.Event) {
	for range events {
	}
}

// handleGetThread returns the thread, its last turns and transcript.
func (s *Server) handleGetThread(w http.ResponseWriter, r *http.Request) {
	threadID := chi.URLParam(r, "thread_id")
	uc := auth.FromContext(r.Context())

	thread, err := s.sessions.GetThread(r.Context(), threadID)
	if err != nil {
		writeError(w, err)
		return
	}
	if thread == nil {
		http.NotFound(w, r)
		return
	}
	sameOrg := thread.OrgID != "" && uc != nil && thread.OrgID == uc.OrgID
	if uc == nil || (thread.UserID != uc.UserID && !sameOrg) {
		writeError(w, protocol.NewError(protocol.KindPermissionDenied, "thread belongs to another caller"))
		return
	}

	turns, err := s.sessions.Turns(r.Context(), threadID)
	if err != nil {
		writeError(w, err)
		return
	}
	if limit := parseLimit(r.URL.Query().Get("limit")); limit > 0 && len(turns) > limit {
		turns = turns[len(turns)-limit:]
	}
	messages, err := s.sessions.Messages(r.Context(), threadID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"thread":   thread,
		"turns":    turns,
		"messages": messages,
	})
}

func parseLimit(raw string) int {
	if raw == "" {
		return 0
	}
	limit, err := strconv.Atoi(raw)
	if err != nil || limit < 0 {
		return 0
	}
	return limit
}

// handleApprove resolves a parked write-class tool call. The turn resumes
// in the background; 202 acknowledges the decision.
func (s *Server) handleApprove(w http.ResponseWriter, r *http.Request) {
	threadID := chi.URLParam(r, "thread_id")

	var req approveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Approved == nil {
		writeError(w, protocol.NewError(protocol.KindOperationUnsupported, "approved is required"))
		return
	}

	turn, err := s.runtime.Approve(r.Context(), threadID, *req.Approved, req.Note)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusAccepted, map[string]any{
		"turn_id": turn.ID,
		"status":  "resuming",
	})
}

// handleRating records user feedback on a turn.
func (s *Server) handleRating(w http.ResponseWriter, r *http.Request) {
	turnID := chi.URLParam(r, "turn_id")

	var req ratingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, protocol.NewError(protocol.KindOperationUnsupported, "invalid rating body"))
		return
	}

	if err := s.sessions.RateTurn(r.Context(), turnID, req.Rating); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			http.NotFound(w, r)
			return
		}
		writeError(w, protocol.NewError(protocol.KindOperationUnsupported, err.Error()))
		return
	}

	event := audit.Event{TurnID: turnID, Action: "rating", Detail: map[string]any{"rating": req.Rating}}
	if uc := auth.FromContext(r.Context()); uc != nil {
		event.UserID = uc.UserID
		event.OrgID = uc.OrgID
	}
	if turn, err := s.sessions.GetTurn(r.Context(), turnID); err == nil && turn != nil {
		event.ThreadID = turn.ThreadID
	}
	s.audit.Record(event)

	writeJSON(w, http.StatusNoContent, nil)
}

// handleHealth reports backend and GPU status.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	writeJSON(w, http.StatusOK, map[string]any{
		"status":   "ok",
		"version":  bestbox.Version,
		"backends": s.backends.Health(ctx),
		"gpus":     s.gpus.Status(),
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	if body == nil {
		w.WriteHeader(status)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		slog.Warn("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, err error) {
	kind := protocol.KindOf(err)
	writeJSON(w, protocol.HTTPStatus(kind), map[string]any{
		"error": map[string]any{
			"kind":    string(kind),
			"message": err.Error(),
		},
	})
}
