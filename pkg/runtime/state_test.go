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
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestbox/bestbox/pkg/auth"
	"github.com/bestbox/bestbox/pkg/protocol"
	"github.com/bestbox/bestbox/pkg/tools"
)

func TestTurnStateRoundTrip(t *testing.T) {
	state := &TurnState{
		ThreadID:      "th1",
		TurnID:        "tu1",
		Query:         "供应商V-001有几张未结采购订单",
		State:         StateAwaitingHuman,
		Domain:        "erp",
		StepIndex:     4,
		ToolCallsUsed: 2,
		Messages: []*protocol.Message{
			protocol.NewUserMessage("供应商V-001有几张未结采购订单"),
		},
		PendingApproval: &tools.PendingApproval{
			ToolCallID: "call_9",
			ToolName:   "oa_send_email",
			Args:       map[string]any{"to": "vendor@example.com"},
		},
	}

	raw, err := json.Marshal(state)
	require.NoError(t, err)

	var loaded TurnState
	require.NoError(t, json.Unmarshal(raw, &loaded))
	assert.Equal(t, state.TurnID, loaded.TurnID)
	assert.Equal(t, StateAwaitingHuman, loaded.State)
	assert.Equal(t, 4, loaded.StepIndex)
	require.NotNil(t, loaded.PendingApproval)
	assert.Equal(t, "call_9", loaded.PendingApproval.ToolCallID)
}

func TestTurnStateCarriesIdentityAndTrace(t *testing.T) {
	at := time.Date(2025, 6, 2, 9, 30, 0, 0, time.UTC)
	state := &TurnState{
		ThreadID:  "th1",
		TurnID:    "tu1",
		Query:     "T-1022缩水怎么处理",
		State:     StateExecuting,
		Domain:    "mold",
		StepIndex: 2,
		UserContext: &auth.UserContext{
			UserID: "w.chen", OrgID: "org-7", Permissions: []string{"kb:read"},
		},
		Trace: []*protocol.ReasoningStep{
			{Kind: protocol.StepThink, Text: "先查历史案例", At: at},
			{Kind: protocol.StepAct, Text: `search_kb {"query":"缩水"}`, At: at.Add(time.Second)},
		},
		RetrievedContext: map[string]any{"mold": []any{"[C1] 保压不足导致缩水"}},
	}

	raw, err := json.Marshal(state)
	require.NoError(t, err)

	var loaded TurnState
	require.NoError(t, json.Unmarshal(raw, &loaded))
	require.NotNil(t, loaded.UserContext)
	assert.Equal(t, "w.chen", loaded.UserContext.UserID)
	assert.Equal(t, []string{"kb:read"}, loaded.UserContext.Permissions)
	require.Len(t, loaded.Trace, 2)
	assert.Equal(t, protocol.StepThink, loaded.Trace[0].Kind)
	assert.True(t, loaded.Trace[0].At.Before(loaded.Trace[1].At))
	assert.Contains(t, loaded.RetrievedContext, "mold")
}

func TestTurnStatePreservesUnknownKeys(t *testing.T) {
	// A snapshot written by a newer build carries fields this build does not
	// know; they must survive a load/save cycle.
	raw := []byte(`{
		"thread_id": "th1",
		"turn_id": "tu1",
		"query": "q",
		"state": "executing",
		"step_index": 2,
		"tool_calls_used": 0,
		"messages": [],
		"experimental_plan": {"steps": ["a", "b"]},
		"future_flag": true
	}`)

	var state TurnState
	require.NoError(t, json.Unmarshal(raw, &state))
	assert.Equal(t, StateExecuting, state.State)

	out, err := json.Marshal(&state)
	require.NoError(t, err)

	var merged map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(out, &merged))
	assert.JSONEq(t, `{"steps":["a","b"]}`, string(merged["experimental_plan"]))
	assert.JSONEq(t, `true`, string(merged["future_flag"]))
	assert.JSONEq(t, `"executing"`, string(merged["state"]))
}

func TestParseRoute(t *testing.T) {
	tests := []struct {
		name   string
		raw    string
		want   string
		wantOK bool
	}{
		{"plain", `{"next": "erp"}`, "erp", true},
		{"uppercase_normalized", `{"next": "MOLD"}`, "mold", true},
		{"reasoning_preamble", "<think>erp or crm?</think>{\"next\":\"crm\"}", "crm", true},
		{"unknown_domain", `{"next": "warehouse"}`, "", false},
		{"not_json", "the domain is erp", "", false},
		{"missing_key", `{"domain": "erp"}`, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseRoute(tt.raw)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSpecialistFor(t *testing.T) {
	assert.Equal(t, "erp", specialistFor("erp"))
	assert.Equal(t, "mold", specialistFor("finish"), "finishing docs belong to the molding specialist")
	assert.Equal(t, "", specialistFor("warehouse"))
	assert.Equal(t, "", specialistFor(""))
}
