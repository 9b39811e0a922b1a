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

	"github.com/bestbox/bestbox/pkg/auth"
	"github.com/bestbox/bestbox/pkg/protocol"
	"github.com/bestbox/bestbox/pkg/tools"
)

// GraphState is the turn's position in the execution graph.
type GraphState string

const (
	StateRouting       GraphState = "routing"
	StateExecuting     GraphState = "executing"
	StateAwaitingTool  GraphState = "awaiting_tool"
	StateAwaitingHuman GraphState = "awaiting_human"
	StateAnswering     GraphState = "answering"
	StateDone          GraphState = "done"
	StateFailed        GraphState = "failed"
)

// TurnState is the serializable execution state checkpointed after every
// transition. StepIndex is the index of the last persisted snapshot, zero
// before the first save. Unknown JSON keys written by other builds are
// preserved across a load/save round trip.
type TurnState struct {
	ThreadID         string                    `json:"thread_id"`
	TurnID           string                    `json:"turn_id"`
	Query            string                    `json:"query"`
	State            GraphState                `json:"state"`
	Domain           string                    `json:"domain,omitempty"`
	StepIndex        int                       `json:"step_index"`
	ToolCallsUsed    int                       `json:"tool_calls_used"`
	UserContext      *auth.UserContext         `json:"user_context,omitempty"`
	Messages         []*protocol.Message       `json:"messages"`
	Trace            []*protocol.ReasoningStep `json:"trace,omitempty"`
	RetrievedContext map[string]any            `json:"retrieved_context,omitempty"`
	PendingApproval  *tools.PendingApproval    `json:"pending_approval,omitempty"`
	PendingCalls     []*protocol.ToolCall      `json:"pending_calls,omitempty"`
	Answer           string                    `json:"answer,omitempty"`

	extra map[string]json.RawMessage
}

// knownStateKeys lists the fields TurnState itself owns; everything else in
// a loaded snapshot rides along in extra.
var knownStateKeys = map[string]bool{
	"thread_id": true, "turn_id": true, "query": true, "state": true,
	"domain": true, "step_index": true, "tool_calls_used": true,
	"user_context": true, "messages": true, "trace": true,
	"retrieved_context": true, "pending_approval": true,
	"pending_calls": true, "answer": true,
}

type turnStateAlias TurnState

// UnmarshalJSON keeps unrecognized keys so snapshots survive round trips
// between builds with different state shapes.
func (s *TurnState) UnmarshalJSON(data []byte) error {
	var alias turnStateAlias
	if err := json.Unmarshal(data, &alias); err != nil {
		return err
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	for key := range raw {
		if knownStateKeys[key] {
			delete(raw, key)
		}
	}

	*s = TurnState(alias)
	if len(raw) > 0 {
		s.extra = raw
	}
	return nil
}

// MarshalJSON merges the preserved unknown keys back into the output.
func (s *TurnState) MarshalJSON() ([]byte, error) {
	known, err := json.Marshal((*turnStateAlias)(s))
	if err != nil {
		return nil, err
	}
	if len(s.extra) == 0 {
		return known, nil
	}

	var merged map[string]json.RawMessage
	if err := json.Unmarshal(known, &merged); err != nil {
		return nil, err
	}
	for key, value := range s.extra {
		merged[key] = value
	}
	return json.Marshal(merged)
}
