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

package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripReasoningPreamble(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"no_tag", "plain answer", "plain answer"},
		{"tag_with_preamble", "<think>let me reason about this</think>\n\nThe answer is 7.", "The answer is 7."},
		{"nested_tags_keep_last", "<think>a</think> middle <think>b</think>final", "final"},
		{"tag_only", "<think>all reasoning</think>", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, StripReasoningPreamble(tt.in))
		})
	}
}

func TestRepairToolArgs(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want map[string]any
	}{
		{
			name: "valid_json",
			raw:  `{"query":"披锋","domain":"mold"}`,
			want: map[string]any{"query": "披锋", "domain": "mold"},
		},
		{
			name: "empty_means_no_args",
			raw:  "   ",
			want: map[string]any{},
		},
		{
			name: "code_fenced",
			raw:  "```json\n{\"vendor\":\"V-001\"}\n```",
			want: map[string]any{"vendor": "V-001"},
		},
		{
			name: "surrounding_prose",
			raw:  `Here are the arguments: {"item":"M-7733"} as requested.`,
			want: map[string]any{"item": "M-7733"},
		},
		{
			name: "trailing_comma",
			raw:  `{"status":"open","vendor":"V-001",}`,
			want: map[string]any{"status": "open", "vendor": "V-001"},
		},
		{
			name: "braces_inside_strings",
			raw:  `text before {"note":"use {curly} braces","n":1} text after`,
			want: map[string]any{"note": "use {curly} braces", "n": float64(1)},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := RepairToolArgs(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRepairToolArgsGivesUp(t *testing.T) {
	_, err := RepairToolArgs("this is not json at all")
	require.Error(t, err)

	_, err = RepairToolArgs(`{"unclosed": "object"`)
	require.Error(t, err)
}
