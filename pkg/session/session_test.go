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

package session

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

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
		DSN:    filepath.Join(t.TempDir(), "session_test.db"),
	})
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	store, err := NewStore(db)
	require.NoError(t, err)
	return store
}

func TestGetOrCreateThread(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	created, err := store.GetOrCreateThread(ctx, "", "w.chen", "org-7")
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "w.chen", created.UserID)
	assert.Equal(t, "org-7", created.OrgID)

	// Same ID comes back instead of a duplicate insert.
	again, err := store.GetOrCreateThread(ctx, created.ID, "someone-else", "")
	require.NoError(t, err)
	assert.Equal(t, created.ID, again.ID)
	assert.Equal(t, "w.chen", again.UserID)
}

func TestTurnLifecycle(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	thread, err := store.GetOrCreateThread(ctx, "th1", "w.chen", "")
	require.NoError(t, err)

	turn, err := store.CreateTurn(ctx, thread.ID, "帮我发邮件给供应商")
	require.NoError(t, err)
	assert.Equal(t, TurnRunning, turn.Status)

	running, err := store.RunningTurns(ctx)
	require.NoError(t, err)
	require.Len(t, running, 1)
	assert.Equal(t, "帮我发邮件给供应商", running[0].InputText)

	require.NoError(t, store.UpdateTurnStatus(ctx, turn.ID, TurnAwaitingHuman, "oa", ""))

	awaiting, err := store.AwaitingTurns(ctx)
	require.NoError(t, err)
	require.Len(t, awaiting, 1)
	assert.Equal(t, turn.ID, awaiting[0].ID)
	assert.Equal(t, "oa", awaiting[0].Domain)

	require.NoError(t, store.CompleteTurn(ctx, turn.ID, TurnDone, "oa", "", "邮件已发送。", 2))

	loaded, err := store.GetTurn(ctx, turn.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, TurnDone, loaded.Status)
	assert.Equal(t, "邮件已发送。", loaded.FinalAnswer)
	assert.Equal(t, 2, loaded.ToolCallCount)

	awaiting, err = store.AwaitingTurns(ctx)
	require.NoError(t, err)
	assert.Empty(t, awaiting)
	running, err = store.RunningTurns(ctx)
	require.NoError(t, err)
	assert.Empty(t, running)
}

func TestRateTurn(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	thread, err := store.GetOrCreateThread(ctx, "th1", "w.chen", "")
	require.NoError(t, err)
	turn, err := store.CreateTurn(ctx, thread.ID, "查询库存")
	require.NoError(t, err)

	assert.Error(t, store.RateTurn(ctx, turn.ID, "excellent"))
	assert.Error(t, store.RateTurn(ctx, turn.ID, ""))
	require.NoError(t, store.RateTurn(ctx, turn.ID, RatingGood))

	loaded, err := store.GetTurn(ctx, turn.ID)
	require.NoError(t, err)
	require.NotNil(t, loaded.Rating)
	assert.Equal(t, RatingGood, *loaded.Rating)

	// Re-rating overwrites.
	require.NoError(t, store.RateTurn(ctx, turn.ID, RatingBad))
	loaded, err = store.GetTurn(ctx, turn.ID)
	require.NoError(t, err)
	assert.Equal(t, RatingBad, *loaded.Rating)

	err = store.RateTurn(ctx, "no-such-turn", RatingGood)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestMessagesKeepOrder(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	thread, err := store.GetOrCreateThread(ctx, "th1", "w.chen", "")
	require.NoError(t, err)
	turn, err := store.CreateTurn(ctx, thread.ID, "查询供应商V-001的采购订单")
	require.NoError(t, err)

	require.NoError(t, store.AppendMessage(ctx, thread.ID, turn.ID, protocol.NewUserMessage("查询供应商V-001的采购订单")))
	require.NoError(t, store.AppendMessage(ctx, thread.ID, turn.ID, protocol.NewAssistantMessage("共有7张未结采购订单。", nil)))
	require.NoError(t, store.AppendMessage(ctx, thread.ID, turn.ID, protocol.NewUserMessage("第一张的金额是多少")))

	messages, err := store.Messages(ctx, thread.ID)
	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, protocol.RoleUser, messages[0].Role)
	assert.Equal(t, protocol.RoleAssistant, messages[1].Role)
	assert.Equal(t, "第一张的金额是多少", messages[2].Content)
}
