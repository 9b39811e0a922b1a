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

// Package checkpoint persists turn state snapshots so interrupted or
// approval-parked turns can resume. Snapshots are raw JSON; fields written
// by newer builds survive a round trip through older ones.
package checkpoint

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bestbox/bestbox/pkg/protocol"
	"github.com/bestbox/bestbox/pkg/storage"
)

// Snapshot is one persisted turn state.
type Snapshot struct {
	ThreadID  string          `json:"thread_id"`
	TurnID    string          `json:"turn_id"`
	StepIndex int             `json:"step_index"`
	State     json.RawMessage `json:"state"`
	CreatedAt time.Time       `json:"created_at"`
}

// Store persists snapshots and tool invocation records.
type Store struct {
	db *storage.DB
}

// NewStore initializes the schema and returns the store.
func NewStore(db *storage.DB) (*Store, error) {
	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize checkpoint schema: %w", err)
	}
	return s, nil
}

func (s *Store) initSchema() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS checkpoints (
    thread_id VARCHAR(64) NOT NULL,
    turn_id VARCHAR(64) NOT NULL,
    step_index INTEGER NOT NULL,
    state TEXT NOT NULL,
    terminal_at TIMESTAMP NULL,
    created_at TIMESTAMP NOT NULL,
    PRIMARY KEY (thread_id, turn_id, step_index)
)`,
		`CREATE INDEX IF NOT EXISTS idx_checkpoints_turn ON checkpoints(thread_id, turn_id)`,
		`CREATE TABLE IF NOT EXISTS tool_invocations (
    thread_id VARCHAR(64) NOT NULL,
    turn_id VARCHAR(64) NOT NULL,
    tool_call_id VARCHAR(64) NOT NULL,
    tool_name VARCHAR(128) NOT NULL,
    result TEXT NOT NULL,
    created_at TIMESTAMP NOT NULL,
    PRIMARY KEY (thread_id, tool_call_id)
)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// Save writes a snapshot. Step indices start at 1 and must advance by
// exactly one per (thread, turn); a stale writer, a concurrent writer and a
// writer that skips ahead all get CheckpointConflict and must reload the
// head before retrying.
func (s *Store) Save(ctx context.Context, snap *Snapshot) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var maxStep int
	query := s.db.Bind(`SELECT COALESCE(MAX(step_index), 0) FROM checkpoints WHERE thread_id = ? AND turn_id = ?`)
	if err := tx.QueryRowContext(ctx, query, snap.ThreadID, snap.TurnID).Scan(&maxStep); err != nil {
		return fmt.Errorf("failed to read checkpoint head: %w", err)
	}
	if snap.StepIndex != maxStep+1 {
		return protocol.NewError(protocol.KindCheckpointConflict,
			fmt.Sprintf("checkpoint step %d is not head %d + 1 for turn %s", snap.StepIndex, maxStep, snap.TurnID))
	}

	insert := s.db.Bind(`INSERT INTO checkpoints (thread_id, turn_id, step_index, state, created_at) VALUES (?, ?, ?, ?, ?)`)
	if _, err := tx.ExecContext(ctx, insert, snap.ThreadID, snap.TurnID, snap.StepIndex, string(snap.State), time.Now().UTC()); err != nil {
		if isDuplicateKey(err) {
			return protocol.WrapError(protocol.KindCheckpointConflict,
				fmt.Sprintf("concurrent checkpoint write at step %d for turn %s", snap.StepIndex, snap.TurnID), err)
		}
		return fmt.Errorf("failed to insert checkpoint: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit checkpoint: %w", err)
	}
	return nil
}

// Latest returns the newest snapshot for the turn, or nil when none exists.
func (s *Store) Latest(ctx context.Context, threadID, turnID string) (*Snapshot, error) {
	query := s.db.Bind(`SELECT step_index, state, created_at FROM checkpoints
WHERE thread_id = ? AND turn_id = ? ORDER BY step_index DESC LIMIT 1`)

	snap := &Snapshot{ThreadID: threadID, TurnID: turnID}
	var state string
	err := s.db.QueryRowContext(ctx, query, threadID, turnID).Scan(&snap.StepIndex, &state, &snap.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load checkpoint: %w", err)
	}
	snap.State = json.RawMessage(state)
	return snap, nil
}

// LatestForThread returns the newest snapshot across all turns of a thread.
// Startup recovery uses it to find parked turns.
func (s *Store) LatestForThread(ctx context.Context, threadID string) (*Snapshot, error) {
	query := s.db.Bind(`SELECT turn_id, step_index, state, created_at FROM checkpoints
WHERE thread_id = ? ORDER BY created_at DESC, step_index DESC LIMIT 1`)

	snap := &Snapshot{ThreadID: threadID}
	var state string
	err := s.db.QueryRowContext(ctx, query, threadID).Scan(&snap.TurnID, &snap.StepIndex, &state, &snap.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load checkpoint: %w", err)
	}
	snap.State = json.RawMessage(state)
	return snap, nil
}

// RecordToolResult stores a completed tool invocation keyed by its call ID.
// Replays short-circuit through these records so side effects never run
// twice. Recording the same call ID again is a no-op.
func (s *Store) RecordToolResult(ctx context.Context, threadID, turnID, toolCallID, toolName string, result json.RawMessage) error {
	insert := s.db.Bind(`INSERT INTO tool_invocations (thread_id, turn_id, tool_call_id, tool_name, result, created_at)
VALUES (?, ?, ?, ?, ?, ?)`)
	_, err := s.db.ExecContext(ctx, insert, threadID, turnID, toolCallID, toolName, string(result), time.Now().UTC())
	if err != nil {
		if isDuplicateKey(err) {
			return nil
		}
		return fmt.Errorf("failed to record tool invocation: %w", err)
	}
	return nil
}

// LookupToolResult returns the recorded result for a tool call, if any.
func (s *Store) LookupToolResult(ctx context.Context, threadID, toolCallID string) (json.RawMessage, bool, error) {
	query := s.db.Bind(`SELECT result FROM tool_invocations WHERE thread_id = ? AND tool_call_id = ?`)

	var result string
	err := s.db.QueryRowContext(ctx, query, threadID, toolCallID).Scan(&result)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to look up tool invocation: %w", err)
	}
	return json.RawMessage(result), true, nil
}

// MarkTerminal stamps the turn's checkpoints as terminal, starting the
// retention clock.
func (s *Store) MarkTerminal(ctx context.Context, threadID, turnID string) error {
	update := s.db.Bind(`UPDATE checkpoints SET terminal_at = ? WHERE thread_id = ? AND turn_id = ? AND terminal_at IS NULL`)
	if _, err := s.db.ExecContext(ctx, update, time.Now().UTC(), threadID, turnID); err != nil {
		return fmt.Errorf("failed to mark checkpoints terminal: %w", err)
	}
	return nil
}

// GC deletes checkpoints and tool invocation records for turns that have
// been terminal longer than the grace period. Returns the number of
// checkpoints removed.
func (s *Store) GC(ctx context.Context, grace time.Duration) (int64, error) {
	cutoff := time.Now().UTC().Add(-grace)

	delInvocations := s.db.Bind(`DELETE FROM tool_invocations WHERE (thread_id, turn_id) IN
(SELECT thread_id, turn_id FROM checkpoints WHERE terminal_at IS NOT NULL AND terminal_at < ?)`)
	if s.db.Dialect == "sqlite" {
		// sqlite has no row-value IN over subqueries before 3.15; EXISTS is portable.
		delInvocations = `DELETE FROM tool_invocations WHERE EXISTS
(SELECT 1 FROM checkpoints c WHERE c.thread_id = tool_invocations.thread_id
 AND c.turn_id = tool_invocations.turn_id AND c.terminal_at IS NOT NULL AND c.terminal_at < ?)`
	}
	if _, err := s.db.ExecContext(ctx, delInvocations, cutoff); err != nil {
		return 0, fmt.Errorf("failed to collect tool invocations: %w", err)
	}

	delCheckpoints := s.db.Bind(`DELETE FROM checkpoints WHERE terminal_at IS NOT NULL AND terminal_at < ?`)
	res, err := s.db.ExecContext(ctx, delCheckpoints, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to collect checkpoints: %w", err)
	}
	n, _ := res.RowsAffected()
	return n, nil
}

func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique") || strings.Contains(msg, "duplicate")
}
