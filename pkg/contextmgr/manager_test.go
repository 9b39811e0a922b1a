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

package contextmgr

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestbox/bestbox/pkg/config"
	"github.com/bestbox/bestbox/pkg/protocol"
)

// heuristicCounter avoids the tiktoken model table so tests never touch the
// network; local model names take the estimate path.
func heuristicCounter() *TokenCounter {
	return NewTokenCounter("qwen2.5-72b-instruct")
}

type fixedSummarizer struct {
	digest string
	err    error
	calls  int
}

func (f *fixedSummarizer) Summarize(ctx context.Context, messages []*protocol.Message) (string, error) {
	f.calls++
	return f.digest, f.err
}

func TestTruncateToolResult(t *testing.T) {
	m := New(config.ContextConfig{MaxToolResultTokens: 20}, 32768, heuristicCounter(), nil)

	short := "row 1: PO-2025-0107"
	assert.Equal(t, short, m.TruncateToolResult(short))

	long := strings.Repeat("purchase order row with vendor and amount fields. ", 50)
	truncated := m.TruncateToolResult(long)
	assert.Less(t, len(truncated), len(long))
	assert.Contains(t, truncated, "[output truncated: 20 of")
	assert.True(t, utf8.ValidString(truncated))
}

func TestTruncateToolResultRuneBoundary(t *testing.T) {
	m := New(config.ContextConfig{MaxToolResultTokens: 10}, 32768, heuristicCounter(), nil)

	long := strings.Repeat("模具披锋飞边排气", 30)
	truncated := m.TruncateToolResult(long)
	assert.True(t, utf8.ValidString(truncated), "truncation must not split a rune")
	assert.Contains(t, truncated, "[output truncated:")
}

func TestPrepareFitsWithoutCompaction(t *testing.T) {
	m := New(config.ContextConfig{KeepRecentPairs: 6, SummarizeAtFraction: 0.75}, 32768, heuristicCounter(), nil)
	system := protocol.NewSystemMessage("You are an assistant.")
	history := []*protocol.Message{
		protocol.NewUserMessage("hello"),
		protocol.NewAssistantMessage("hi", nil),
	}

	prompt, err := m.Prepare(context.Background(), system, history)
	require.NoError(t, err)
	require.Len(t, prompt, 3)
	assert.Equal(t, protocol.RoleSystem, prompt[0].Role)
	assert.Equal(t, "hello", prompt[1].Content)
}

func TestPrepareSummarizesOlderSpan(t *testing.T) {
	sum := &fixedSummarizer{digest: "User asked about PO-2025-0107 and inventory for M-7733."}
	// Tiny window forces compaction; keep only the last exchange verbatim.
	m := New(config.ContextConfig{KeepRecentPairs: 1, SummarizeAtFraction: 0.75}, 400, heuristicCounter(), sum)

	system := protocol.NewSystemMessage("You are an assistant.")
	var history []*protocol.Message
	for i := 0; i < 8; i++ {
		history = append(history,
			protocol.NewUserMessage(fmt.Sprintf("question %d: %s", i, strings.Repeat("detail ", 30))),
			protocol.NewAssistantMessage(strings.Repeat("answer ", 30), nil),
		)
	}

	prompt, err := m.Prepare(context.Background(), system, history)
	require.NoError(t, err)
	assert.Positive(t, sum.calls)

	// The digest lands in the system message; the final exchange survives
	// verbatim.
	assert.Contains(t, prompt[0].Content, "Earlier conversation (summarized)")
	assert.Contains(t, prompt[0].Content, "PO-2025-0107")
	last := prompt[len(prompt)-1]
	assert.Equal(t, protocol.RoleAssistant, last.Role)
}

func TestPrepareDropsOldestOnSummarizerFailure(t *testing.T) {
	sum := &fixedSummarizer{err: errors.New("summarizer down")}
	m := New(config.ContextConfig{KeepRecentPairs: 1, SummarizeAtFraction: 0.75}, 400, heuristicCounter(), sum)

	system := protocol.NewSystemMessage("You are an assistant.")
	var history []*protocol.Message
	for i := 0; i < 8; i++ {
		history = append(history,
			protocol.NewUserMessage(fmt.Sprintf("question %d: %s", i, strings.Repeat("detail ", 30))),
			protocol.NewAssistantMessage(strings.Repeat("answer ", 30), nil),
		)
	}

	prompt, err := m.Prepare(context.Background(), system, history)
	require.NoError(t, err)
	assert.NotContains(t, prompt[0].Content, "summarized")

	// The newest user message always survives.
	var sawNewest bool
	for _, msg := range prompt {
		if strings.HasPrefix(msg.Content, "question 7") {
			sawNewest = true
		}
	}
	assert.True(t, sawNewest)
}

func TestPrepareTerminatesWhenDigestNeverFits(t *testing.T) {
	// A digest larger than the remaining budget must not re-summarize
	// forever once the verbatim span is down to the final exchange.
	sum := &fixedSummarizer{digest: strings.Repeat("huge digest ", 200)}
	m := New(config.ContextConfig{KeepRecentPairs: 1, SummarizeAtFraction: 0.75}, 300, heuristicCounter(), sum)

	system := protocol.NewSystemMessage("You are an assistant.")
	var history []*protocol.Message
	for i := 0; i < 6; i++ {
		history = append(history,
			protocol.NewUserMessage(fmt.Sprintf("question %d: %s", i, strings.Repeat("detail ", 20))),
			protocol.NewAssistantMessage(strings.Repeat("answer ", 20), nil),
		)
	}

	prompt, err := m.Prepare(context.Background(), system, history)
	require.NoError(t, err)
	assert.LessOrEqual(t, sum.calls, len(history), "summarizer calls must be bounded")

	// The oversized digest is abandoned; the final exchange survives.
	assert.NotContains(t, prompt[0].Content, "huge digest")
	assert.Equal(t, protocol.RoleAssistant, prompt[len(prompt)-1].Role)
}

func TestPrepareKeepsRecentWindowVerbatim(t *testing.T) {
	sum := &fixedSummarizer{digest: "digest of earlier turns"}
	m := New(config.ContextConfig{KeepRecentPairs: 2, SummarizeAtFraction: 0.75}, 600, heuristicCounter(), sum)

	system := protocol.NewSystemMessage("You are an assistant.")
	var history []*protocol.Message
	for i := 0; i < 8; i++ {
		history = append(history,
			protocol.NewUserMessage(fmt.Sprintf("question %d: %s", i, strings.Repeat("detail ", 25))),
			protocol.NewAssistantMessage(fmt.Sprintf("answer %d: %s", i, strings.Repeat("filler ", 25)), nil),
		)
	}

	prompt, err := m.Prepare(context.Background(), system, history)
	require.NoError(t, err)
	require.Positive(t, sum.calls)

	// Post-compaction the system prompt survives as a prefix and the last
	// two exchanges are byte-identical to their originals.
	assert.True(t, strings.HasPrefix(prompt[0].Content, system.Content))
	require.GreaterOrEqual(t, len(prompt), 5)
	tail := prompt[len(prompt)-4:]
	for i, msg := range history[len(history)-4:] {
		assert.Equal(t, msg.Role, tail[i].Role)
		assert.Equal(t, msg.Content, tail[i].Content)
	}
}

func TestPrepareOverflowError(t *testing.T) {
	m := New(config.ContextConfig{KeepRecentPairs: 1, SummarizeAtFraction: 0.75}, 50, heuristicCounter(), nil)

	system := protocol.NewSystemMessage("You are an assistant.")
	history := []*protocol.Message{
		protocol.NewUserMessage(strings.Repeat("very long question ", 200)),
		protocol.NewAssistantMessage("ok", nil),
	}

	_, err := m.Prepare(context.Background(), system, history)
	require.Error(t, err)
	assert.Equal(t, protocol.KindContextOverflow, protocol.KindOf(err))
}

func TestEstimateTokensCJKAware(t *testing.T) {
	counter := heuristicCounter()

	// Pure CJK runs near 1.5 chars per token, not byte length over 4.
	cjk := strings.Repeat("模", 30)
	assert.InDelta(t, 20, counter.Count(cjk), 2)

	latin := strings.Repeat("word", 30) // 120 bytes
	assert.InDelta(t, 30, counter.Count(latin), 2)

	assert.Equal(t, 0, counter.Count(""))
}
