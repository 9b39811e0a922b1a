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

// Package session persists threads, turns and messages.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bestbox/bestbox/pkg/protocol"
	"github.com/bestbox/bestbox/pkg/storage"
)

// Turn statuses. A turn parks in awaiting_human until the approval endpoint
// resolves it; done and failed are terminal.
const (
	TurnRunning       = "running"
	TurnAwaitingHuman = "awaiting_human"
	TurnDone          = "done"
	TurnFailed        = "failed"
)

// Turn ratings.
const (
	RatingGood = "good"
	RatingBad  = "bad"
)

// Thread is one conversation.
type Thread struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	OrgID     string    `json:"org_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Turn is one user request and the work done to answer it.
type Turn struct {
	ID            string    `json:"id"`
	ThreadID      string    `json:"thread_id"`
	Status        string    `json:"status"`
	Domain        string    `json:"domain,omitempty"`
	InputText     string    `json:"input_text,omitempty"`
	ToolCallCount int       `json:"tool_call_count"`
	FinalAnswer   string    `json:"final_answer,omitempty"`
	Error         string    `json:"error,omitempty"`
	Rating        *string   `json:"rating,omitempty"` // good or bad, set by the rating endpoint
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Store is the SQL-backed session store.
type Store struct {
	db *storage.DB
}

// NewStore initializes the schema and returns the store.
func NewStore(db *storage.DB) (*Store, error) {
	s := &Store{db: db}
	if err := s.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize session schema: %w", err)
	}
	return s, nil
}

func (s *Store) initSchema() error {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	statements := []string{
		`CREATE TABLE IF NOT EXISTS threads (
    id VARCHAR(64) PRIMARY KEY,
    user_id VARCHAR(255) NOT NULL,
    org_id VARCHAR(255),
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
)`,
		`CREATE INDEX IF NOT EXISTS idx_threads_user ON threads(user_id)`,
		`CREATE TABLE IF NOT EXISTS turns (
    id VARCHAR(64) PRIMARY KEY,
    thread_id VARCHAR(64) NOT NULL,
    status VARCHAR(32) NOT NULL,
    domain VARCHAR(32),
    input_text TEXT,
    tool_call_count INTEGER NOT NULL DEFAULT 0,
    final_answer TEXT,
    error TEXT,
    rating VARCHAR(8) NULL,
    created_at TIMESTAMP NOT NULL,
    updated_at TIMESTAMP NOT NULL
)`,
		`CREATE INDEX IF NOT EXISTS idx_turns_thread ON turns(thread_id)`,
		fmt.Sprintf(`CREATE TABLE IF NOT EXISTS thread_messages (
    id %s,
    thread_id VARCHAR(64) NOT NULL,
    turn_id VARCHAR(64) NOT NULL,
    role VARCHAR(32) NOT NULL,
    message_json TEXT NOT NULL,
    sequence_num INTEGER NOT NULL,
    created_at TIMESTAMP NOT NULL
)`, s.db.AutoIncrement()),
		`CREATE INDEX IF NOT EXISTS idx_messages_thread ON thread_messages(thread_id, sequence_num)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}

// GetOrCreateThread loads the thread, creating it on first use.
func (s *Store) GetOrCreateThread(ctx context.Context, threadID, userID, orgID string) (*Thread, error) {
	if threadID == "" {
		threadID = uuid.NewString()
	}

	thread, err := s.GetThread(ctx, threadID)
	if err != nil {
		return nil, err
	}
	if thread != nil {
		return thread, nil
	}

	now := time.Now().UTC()
	insert := s.db.Bind(`INSERT INTO threads (id, user_id, org_id, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`)
	if _, err := s.db.ExecContext(ctx, insert, threadID, userID, orgID, now, now); err != nil {
		return nil, fmt.Errorf("failed to create thread: %w", err)
	}
	return &Thread{ID: threadID, UserID: userID, OrgID: orgID, CreatedAt: now, UpdatedAt: now}, nil
}

// GetThread returns the thread or nil.
func (s *Store) GetThread(ctx context.Context, threadID string) (*Thread, error) {
	query := s.db.Bind(`SELECT id, user_id, org_id, created_at, updated_at FROM threads WHERE id = ?`)

	var t Thread
	var orgID sql.NullString
	err := s.db.QueryRowContext(ctx, query, threadID).Scan(&t.ID, &t.UserID, &orgID, &t.CreatedAt, &t.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load thread: %w", err)
	}
	t.OrgID = orgID.String
	return &t, nil
}

const turnColumns = `id, thread_id, status, domain, input_text, tool_call_count, final_answer, error, rating, created_at, updated_at`

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanTurn(row scanner) (*Turn, error) {
	var t Turn
	var domain, inputText, finalAnswer, errMsg, rating sql.NullString
	err := row.Scan(&t.ID, &t.ThreadID, &t.Status, &domain, &inputText, &t.ToolCallCount,
		&finalAnswer, &errMsg, &rating, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, err
	}
	t.Domain = domain.String
	t.InputText = inputText.String
	t.FinalAnswer = finalAnswer.String
	t.Error = errMsg.String
	if rating.Valid {
		r := rating.String
		t.Rating = &r
	}
	return &t, nil
}

// CreateTurn opens a running turn on the thread.
func (s *Store) CreateTurn(ctx context.Context, threadID, inputText string) (*Turn, error) {
	now := time.Now().UTC()
	turn := &Turn{
		ID:        uuid.NewString(),
		ThreadID:  threadID,
		Status:    TurnRunning,
		InputText: inputText,
		CreatedAt: now,
		UpdatedAt: now,
	}

	insert := s.db.Bind(`INSERT INTO turns (id, thread_id, status, input_text, created_at, updated_at) VALUES (?, ?, ?, ?, ?, ?)`)
	if _, err := s.db.ExecContext(ctx, insert, turn.ID, threadID, turn.Status, inputText, now, now); err != nil {
		return nil, fmt.Errorf("failed to create turn: %w", err)
	}
	return turn, nil
}

// GetTurn returns the turn or nil.
func (s *Store) GetTurn(ctx context.Context, turnID string) (*Turn, error) {
	query := s.db.Bind(`SELECT ` + turnColumns + ` FROM turns WHERE id = ?`)

	turn, err := scanTurn(s.db.QueryRowContext(ctx, query, turnID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load turn: %w", err)
	}
	return turn, nil
}

// Turns lists a thread's turns, oldest first.
func (s *Store) Turns(ctx context.Context, threadID string) ([]*Turn, error) {
	query := s.db.Bind(`SELECT ` + turnColumns + ` FROM turns WHERE thread_id = ? ORDER BY created_at ASC`)
	return s.listTurns(ctx, query, threadID)
}

// AwaitingTurns lists turns parked in awaiting_human, for startup recovery.
func (s *Store) AwaitingTurns(ctx context.Context) ([]*Turn, error) {
	query := s.db.Bind(`SELECT ` + turnColumns + ` FROM turns WHERE status = ? ORDER BY created_at ASC`)
	return s.listTurns(ctx, query, TurnAwaitingHuman)
}

// RunningTurns lists turns still marked running. After a restart these are
// orphans of a crashed process and get resumed from their checkpoints.
func (s *Store) RunningTurns(ctx context.Context) ([]*Turn, error) {
	query := s.db.Bind(`SELECT ` + turnColumns + ` FROM turns WHERE status = ? ORDER BY created_at ASC`)
	return s.listTurns(ctx, query, TurnRunning)
}

func (s *Store) listTurns(ctx context.Context, query string, args ...any) ([]*Turn, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list turns: %w", err)
	}
	defer rows.Close()

	var turns []*Turn
	for rows.Next() {
		t, err := scanTurn(rows)
		if err != nil {
			return nil, err
		}
		turns = append(turns, t)
	}
	return turns, rows.Err()
}

// UpdateTurnStatus transitions the turn, recording the domain as it becomes
// known.
func (s *Store) UpdateTurnStatus(ctx context.Context, turnID, status, domain, errMsg string) error {
	update := s.db.Bind(`UPDATE turns SET status = ?, domain = ?, error = ?, updated_at = ? WHERE id = ?`)
	if _, err := s.db.ExecContext(ctx, update, status, domain, errMsg, time.Now().UTC(), turnID); err != nil {
		return fmt.Errorf("failed to update turn: %w", err)
	}
	return nil
}

// CompleteTurn records the terminal outcome of a turn: status done or
// failed, the tool calls spent and the final answer (empty on failure).
func (s *Store) CompleteTurn(ctx context.Context, turnID, status, domain, errMsg, finalAnswer string, toolCalls int) error {
	update := s.db.Bind(`UPDATE turns SET status = ?, domain = ?, error = ?, final_answer = ?, tool_call_count = ?, updated_at = ? WHERE id = ?`)
	if _, err := s.db.ExecContext(ctx, update, status, domain, errMsg, finalAnswer, toolCalls, time.Now().UTC(), turnID); err != nil {
		return fmt.Errorf("failed to complete turn: %w", err)
	}
	return nil
}

// RateTurn records user feedback on a finished turn.
func (s *Store) RateTurn(ctx context.Context, turnID, rating string) error {
	if rating != RatingGood && rating != RatingBad {
		return fmt.Errorf("rating must be %q or %q", RatingGood, RatingBad)
	}
	update := s.db.Bind(`UPDATE turns SET rating = ?, updated_at = ? WHERE id = ?`)
	res, err := s.db.ExecContext(ctx, update, rating, time.Now().UTC(), turnID)
	if err != nil {
		return fmt.Errorf("failed to rate turn: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// AppendMessage stores one message at the next sequence number.
func (s *Store) AppendMessage(ctx context.Context, threadID, turnID string, msg *protocol.Message) error {
	raw, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	var seq int64
	seqQuery := s.db.Bind(`SELECT COALESCE(MAX(sequence_num), 0) FROM thread_messages WHERE thread_id = ?`)
	if err := tx.QueryRowContext(ctx, seqQuery, threadID).Scan(&seq); err != nil {
		return fmt.Errorf("failed to get sequence number: %w", err)
	}

	insert := s.db.Bind(`INSERT INTO thread_messages (thread_id, turn_id, role, message_json, sequence_num, created_at)
VALUES (?, ?, ?, ?, ?, ?)`)
	if _, err := tx.ExecContext(ctx, insert, threadID, turnID, string(msg.Role), string(raw), seq+1, time.Now().UTC()); err != nil {
		return fmt.Errorf("failed to insert message: %w", err)
	}
	return tx.Commit()
}

// Messages returns the thread's messages in order.
func (s *Store) Messages(ctx context.Context, threadID string) ([]*protocol.Message, error) {
	query := s.db.Bind(`SELECT message_json FROM thread_messages WHERE thread_id = ? ORDER BY sequence_num ASC`)

	rows, err := s.db.QueryContext(ctx, query, threadID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	defer rows.Close()

	var messages []*protocol.Message
	for rows.Next() {
		var raw string
		if err := rows.Scan(&raw); err != nil {
			return nil, err
		}
		var msg protocol.Message
		if err := json.Unmarshal([]byte(raw), &msg); err != nil {
			return nil, fmt.Errorf("failed to unmarshal message: %w", err)
		}
		messages = append(messages, &msg)
	}
	return messages, rows.Err()
}
