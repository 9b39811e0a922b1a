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

package checkpoint

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestbox/bestbox/pkg/config"
	"github.com/bestbox/bestbox/pkg/protocol"
	"github.com/bestbox/bestbox/pkg/storage"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := storage.Open(config.DatabaseConfig{
		Driver: "sqlite3",
		DSN:    filepath.Join(t.TempDir(), "checkpoint_test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store, err := NewStore(db)
	require.NoError(t, err)
	return store
}

func TestSaveRequiresExactStepSequence(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &Snapshot{
		ThreadID: "th1", TurnID: "tu1", StepIndex: 1, State: json.RawMessage(`{"state":"routing"}`),
	}))
	require.NoError(t, store.Save(ctx, &Snapshot{
		ThreadID: "th1", TurnID: "tu1", StepIndex: 2, State: json.RawMessage(`{"state":"executing"}`),
	}))

	// Replaying an already-persisted step must conflict, not overwrite.
	err := store.Save(ctx, &Snapshot{
		ThreadID: "th1", TurnID: "tu1", StepIndex: 2, State: json.RawMessage(`{"state":"stale"}`),
	})
	require.Error(t, err)
	assert.Equal(t, protocol.KindCheckpointConflict, protocol.KindOf(err))

	// Skipping ahead conflicts too; a writer that lost track of the head
	// must reload it rather than invent step indices.
	err = store.Save(ctx, &Snapshot{
		ThreadID: "th1", TurnID: "tu1", StepIndex: 5, State: json.RawMessage(`{"state":"answering"}`),
	})
	require.Error(t, err)
	assert.Equal(t, protocol.KindCheckpointConflict, protocol.KindOf(err))

	require.NoError(t, store.Save(ctx, &Snapshot{
		ThreadID: "th1", TurnID: "tu1", StepIndex: 3, State: json.RawMessage(`{"state":"answering"}`),
	}))
}

func TestSaveIsolatedPerTurn(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &Snapshot{
		ThreadID: "th1", TurnID: "tu1", StepIndex: 1, State: json.RawMessage(`{}`),
	}))
	require.NoError(t, store.Save(ctx, &Snapshot{
		ThreadID: "th1", TurnID: "tu1", StepIndex: 2, State: json.RawMessage(`{}`),
	}))
	// A different turn starts its own step sequence at 1.
	require.NoError(t, store.Save(ctx, &Snapshot{
		ThreadID: "th1", TurnID: "tu2", StepIndex: 1, State: json.RawMessage(`{}`),
	}))
}

func TestLatest(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	snap, err := store.Latest(ctx, "th1", "missing")
	require.NoError(t, err)
	assert.Nil(t, snap)

	require.NoError(t, store.Save(ctx, &Snapshot{
		ThreadID: "th1", TurnID: "tu1", StepIndex: 1, State: json.RawMessage(`{"step":"first"}`),
	}))
	require.NoError(t, store.Save(ctx, &Snapshot{
		ThreadID: "th1", TurnID: "tu1", StepIndex: 2, State: json.RawMessage(`{"step":"second"}`),
	}))

	snap, err = store.Latest(ctx, "th1", "tu1")
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, 2, snap.StepIndex)
	assert.JSONEq(t, `{"step":"second"}`, string(snap.State))
}

func TestLatestForThread(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &Snapshot{
		ThreadID: "th1", TurnID: "tu1", StepIndex: 1, State: json.RawMessage(`{"turn":1}`),
	}))
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, store.Save(ctx, &Snapshot{
		ThreadID: "th1", TurnID: "tu2", StepIndex: 1, State: json.RawMessage(`{"turn":2}`),
	}))

	snap, err := store.LatestForThread(ctx, "th1")
	require.NoError(t, err)
	require.NotNil(t, snap)
	assert.Equal(t, "tu2", snap.TurnID)
}

func TestToolResultReplay(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	_, found, err := store.LookupToolResult(ctx, "th1", "call_1")
	require.NoError(t, err)
	assert.False(t, found)

	first := json.RawMessage(`{"ok":true,"data":{"count":7}}`)
	require.NoError(t, store.RecordToolResult(ctx, "th1", "tu1", "call_1", "erp_count_purchase_orders", first))

	// Re-recording the same call ID is a no-op; the original result wins.
	require.NoError(t, store.RecordToolResult(ctx, "th1", "tu1", "call_1", "erp_count_purchase_orders",
		json.RawMessage(`{"ok":true,"data":{"count":99}}`)))

	result, found, err := store.LookupToolResult(ctx, "th1", "call_1")
	require.NoError(t, err)
	require.True(t, found)
	assert.JSONEq(t, string(first), string(result))
}

func TestGCKeepsLiveTurns(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, &Snapshot{
		ThreadID: "th1", TurnID: "done", StepIndex: 1, State: json.RawMessage(`{}`),
	}))
	require.NoError(t, store.RecordToolResult(ctx, "th1", "done", "call_1", "search_kb", json.RawMessage(`{}`)))
	require.NoError(t, store.Save(ctx, &Snapshot{
		ThreadID: "th1", TurnID: "parked", StepIndex: 1, State: json.RawMessage(`{}`),
	}))

	require.NoError(t, store.MarkTerminal(ctx, "th1", "done"))
	time.Sleep(10 * time.Millisecond)

	removed, err := store.GC(ctx, time.Millisecond)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	// Terminal turn and its invocation records are gone.
	snap, err := store.Latest(ctx, "th1", "done")
	require.NoError(t, err)
	assert.Nil(t, snap)
	_, found, err := store.LookupToolResult(ctx, "th1", "call_1")
	require.NoError(t, err)
	assert.False(t, found)

	// The parked turn survives; it is not terminal.
	snap, err = store.Latest(ctx, "th1", "parked")
	require.NoError(t, err)
	assert.NotNil(t, snap)
}
