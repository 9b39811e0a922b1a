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

package audit

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestbox/bestbox/pkg/config"
	"github.com/bestbox/bestbox/pkg/storage"
)

func TestLoggerFlushesOnClose(t *testing.T) {
	db, err := storage.Open(config.DatabaseConfig{
		Driver: "sqlite3",
		DSN:    filepath.Join(t.TempDir(), "audit_test.db"),
	})
	require.NoError(t, err)
	defer db.Close()

	logger, err := NewLogger(db)
	require.NoError(t, err)

	logger.Record(Event{ThreadID: "th1", TurnID: "tu1", UserID: "w.chen", OrgID: "org-7", Action: "turn_start"})
	logger.Record(Event{
		ThreadID: "th1", TurnID: "tu1", UserID: "w.chen", OrgID: "org-7", Action: "tool_call",
		Detail: map[string]any{"tool": "search_kb", "ok": true},
	})
	logger.Close()
	logger.Close() // idempotent

	var count int
	row := db.QueryRowContext(context.Background(),
		db.Bind(`SELECT COUNT(*) FROM audit_events WHERE thread_id = ?`), "th1")
	require.NoError(t, row.Scan(&count))
	assert.Equal(t, 2, count)

	var detail, orgID string
	row = db.QueryRowContext(context.Background(),
		db.Bind(`SELECT detail, org_id FROM audit_events WHERE action = ?`), "tool_call")
	require.NoError(t, row.Scan(&detail, &orgID))
	assert.JSONEq(t, `{"tool":"search_kb","ok":true}`, detail)
	assert.Equal(t, "org-7", orgID)
}

func TestRecordAfterCloseIsDropped(t *testing.T) {
	db, err := storage.Open(config.DatabaseConfig{
		Driver: "sqlite3",
		DSN:    filepath.Join(t.TempDir(), "audit_test.db"),
	})
	require.NoError(t, err)
	defer db.Close()

	logger, err := NewLogger(db)
	require.NoError(t, err)
	logger.Close()

	// Detached goroutines (approval resumes) can outlive the server
	// shutdown; their records must be dropped silently, not panic.
	assert.NotPanics(t, func() {
		logger.Record(Event{ThreadID: "th1", TurnID: "tu1", UserID: "w.chen", Action: "turn_end"})
	})

	var count int
	row := db.QueryRowContext(context.Background(), `SELECT COUNT(*) FROM audit_events`)
	require.NoError(t, row.Scan(&count))
	assert.Equal(t, 0, count)
}
