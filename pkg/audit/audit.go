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

// Package audit appends turn events to a write-only log. Writes are
// batched off the request path and are best-effort: a failed flush is
// logged and dropped, never propagated to the turn.
package audit

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/bestbox/bestbox/pkg/storage"
)

// Event is one audit record.
type Event struct {
	ThreadID string         `json:"thread_id"`
	TurnID   string         `json:"turn_id"`
	UserID   string         `json:"user_id"`
	OrgID    string         `json:"org_id,omitempty"`
	Action   string         `json:"action"` // turn_start, tool_call, tool_denied, approval_requested, approval_resolved, turn_end, rating
	Detail   map[string]any `json:"detail,omitempty"`
	At       time.Time      `json:"at"`
}

const (
	flushInterval = time.Second
	maxBatch      = 128
	queueSize     = 1024
)

// Logger batches events into the audit_events table. The queue channel is
// never closed: producers may be detached goroutines (approval resumes,
// crash recovery) that outlive the caller that built the logger, so
// shutdown is signalled through stop instead.
type Logger struct {
	db     *storage.DB
	queue  chan Event
	stop   chan struct{}
	done   chan struct{}
	closed sync.Once
}

// NewLogger initializes the schema and starts the flush loop.
func NewLogger(db *storage.DB) (*Logger, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	schema := fmt.Sprintf(`CREATE TABLE IF NOT EXISTS audit_events (
    id %s,
    thread_id VARCHAR(64) NOT NULL,
    turn_id VARCHAR(64) NOT NULL,
    user_id VARCHAR(255) NOT NULL,
    org_id VARCHAR(255),
    action VARCHAR(64) NOT NULL,
    detail TEXT,
    at TIMESTAMP NOT NULL
)`, db.AutoIncrement())
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return nil, fmt.Errorf("failed to initialize audit schema: %w", err)
	}
	if _, err := db.ExecContext(ctx, `CREATE INDEX IF NOT EXISTS idx_audit_turn ON audit_events(thread_id, turn_id)`); err != nil {
		return nil, fmt.Errorf("failed to initialize audit index: %w", err)
	}

	l := &Logger{
		db:    db,
		queue: make(chan Event, queueSize),
		stop:  make(chan struct{}),
		done:  make(chan struct{}),
	}
	go l.run()
	return l, nil
}

// Record enqueues an event. Never blocks; events are dropped when the queue
// is full or the logger is shutting down.
func (l *Logger) Record(event Event) {
	if event.At.IsZero() {
		event.At = time.Now().UTC()
	}
	select {
	case <-l.stop:
		return
	default:
	}
	select {
	case l.queue <- event:
	default:
		slog.Warn("Audit queue full, dropping event", "action", event.Action, "turn_id", event.TurnID)
	}
}

// Close flushes pending events and stops the loop. Record calls racing
// Close are dropped, never panic.
func (l *Logger) Close() {
	l.closed.Do(func() {
		close(l.stop)
		<-l.done
	})
}

func (l *Logger) run() {
	defer close(l.done)

	ticker := time.NewTicker(flushInterval)
	defer ticker.Stop()

	batch := make([]Event, 0, maxBatch)
	for {
		select {
		case event := <-l.queue:
			batch = append(batch, event)
			if len(batch) >= maxBatch {
				l.flush(batch)
				batch = batch[:0]
			}
		case <-ticker.C:
			if len(batch) > 0 {
				l.flush(batch)
				batch = batch[:0]
			}
		case <-l.stop:
			// Drain whatever made it into the queue, then flush and exit.
			for {
				select {
				case event := <-l.queue:
					batch = append(batch, event)
				default:
					l.flush(batch)
					return
				}
			}
		}
	}
}

func (l *Logger) flush(batch []Event) {
	if len(batch) == 0 {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		slog.Warn("Audit flush failed to begin transaction", "error", err, "events", len(batch))
		return
	}
	defer func() {
		_ = tx.Rollback()
	}()

	insert := l.db.Bind(`INSERT INTO audit_events (thread_id, turn_id, user_id, org_id, action, detail, at) VALUES (?, ?, ?, ?, ?, ?, ?)`)
	for _, event := range batch {
		detail := ""
		if event.Detail != nil {
			if raw, err := json.Marshal(event.Detail); err == nil {
				detail = string(raw)
			}
		}
		if _, err := tx.ExecContext(ctx, insert, event.ThreadID, event.TurnID, event.UserID, event.OrgID, event.Action, detail, event.At); err != nil {
			slog.Warn("Audit flush failed", "error", err, "events", len(batch))
			return
		}
	}
	if err := tx.Commit(); err != nil {
		slog.Warn("Audit flush failed to commit", "error", err, "events", len(batch))
	}
}
