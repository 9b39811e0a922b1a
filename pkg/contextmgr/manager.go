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

// Package contextmgr assembles model prompts under the context-window
// budget: recent turns verbatim, older turns compacted into a digest, and
// oversized tool results truncated in place.
package contextmgr

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bestbox/bestbox/pkg/config"
	"github.com/bestbox/bestbox/pkg/protocol"
)

// Summarizer condenses a span of older conversation into a short digest.
// The runtime wires an LLM-backed implementation.
type Summarizer interface {
	Summarize(ctx context.Context, messages []*protocol.Message) (string, error)
}

// Manager prepares prompts for the model. Compaction is conservative: the
// system prompt and the most recent exchange always survive verbatim, and
// summarization failures degrade to dropping the oldest pair rather than
// corrupting the window.
type Manager struct {
	cfg        config.ContextConfig
	window     int // model context window in tokens
	counter    *TokenCounter
	summarizer Summarizer
}

// New builds a manager. summarizer may be nil, in which case compaction
// always drops oldest pairs.
func New(cfg config.ContextConfig, window int, counter *TokenCounter, summarizer Summarizer) *Manager {
	return &Manager{cfg: cfg, window: window, counter: counter, summarizer: summarizer}
}

// Counter exposes the token counter for callers that budget their own text.
func (m *Manager) Counter() *TokenCounter { return m.counter }

// TruncateToolResult caps a tool result at the configured token limit,
// replacing the removed tail with an explicit marker so the model knows the
// output is partial.
func (m *Manager) TruncateToolResult(content string) string {
	limit := m.cfg.MaxToolResultTokens
	if limit <= 0 {
		return content
	}
	total := m.counter.Count(content)
	if total <= limit {
		return content
	}

	// Binary search the longest prefix within the limit. Token counts are
	// monotone in prefix length.
	lo, hi := 0, len(content)
	for lo < hi {
		mid := (lo + hi + 1) / 2
		if m.counter.Count(content[:mid]) <= limit {
			lo = mid
		} else {
			hi = mid - 1
		}
	}
	// Back off to a rune boundary.
	for lo > 0 && !isRuneStart(content[lo]) {
		lo--
	}
	return content[:lo] + fmt.Sprintf("\n[output truncated: %d of %d tokens shown]", limit, total)
}

func isRuneStart(b byte) bool { return b&0xC0 != 0x80 }

// Prepare assembles the prompt from the system message and history,
// compacting as needed to stay under the summarize threshold of the context
// window. History is not mutated.
func (m *Manager) Prepare(ctx context.Context, system *protocol.Message, history []*protocol.Message) ([]*protocol.Message, error) {
	budget := int(float64(m.window) * m.cfg.SummarizeAtFraction)

	sys := *system
	prompt := assemble(&sys, history)
	if m.counter.CountMessages(prompt) <= budget {
		return prompt, nil
	}

	older, recent := m.split(history)

	// Compact the older span. Prefer an LLM digest; fall back to dropping
	// oldest pairs when summarization is unavailable or fails.
	for len(older) > 0 {
		if m.summarizer != nil {
			digest, err := m.summarizer.Summarize(ctx, older)
			if err == nil {
				withDigest := sys
				withDigest.Content = sys.Content + "\n\n## Earlier conversation (summarized)\n" + digest
				prompt = assemble(&withDigest, recent)
				if m.counter.CountMessages(prompt) <= budget {
					return prompt, nil
				}
				// Digest alone did not fit; shrink the verbatim window too.
				var moved bool
				older, recent, moved = m.shrink(older, recent)
				if moved {
					continue
				}
				// Only the final exchange remains verbatim and the digest
				// still does not fit. Abandon the digest and fall through
				// to the aggressive path.
				break
			}
			slog.Warn("Context summarization failed, dropping oldest exchange instead", "error", err)
		}
		older = dropOldestPair(older)
		prompt = assemble(&sys, append(append([]*protocol.Message{}, older...), recent...))
		if m.counter.CountMessages(prompt) <= budget {
			return prompt, nil
		}
	}

	// Only the system message and the recent window remain.
	prompt = assemble(&sys, recent)
	if m.counter.CountMessages(prompt) <= m.window {
		return prompt, nil
	}

	// Drop recent pairs too, keeping at least the final exchange.
	for len(recent) > 2 {
		recent = dropOldestPair(recent)
		prompt = assemble(&sys, recent)
		if m.counter.CountMessages(prompt) <= m.window {
			return prompt, nil
		}
	}

	return nil, protocol.NewError(protocol.KindContextOverflow,
		fmt.Sprintf("prompt exceeds the %d-token context window even after compaction", m.window))
}

// split divides history into an older span and the recent verbatim window
// of the last KeepRecentPairs user exchanges.
func (m *Manager) split(history []*protocol.Message) (older, recent []*protocol.Message) {
	keep := m.cfg.KeepRecentPairs
	if keep <= 0 {
		keep = 1
	}

	userSeen := 0
	cut := 0
	for i := len(history) - 1; i >= 0; i-- {
		if history[i].Role == protocol.RoleUser {
			userSeen++
			if userSeen == keep {
				cut = i
				break
			}
		}
	}
	return history[:cut], history[cut:]
}

// shrink moves the oldest recent exchange into the older span. The final
// exchange is never moved; moved=false signals the caller that no further
// progress is possible.
func (m *Manager) shrink(older, recent []*protocol.Message) ([]*protocol.Message, []*protocol.Message, bool) {
	next := 0
	for i := 1; i < len(recent); i++ {
		if recent[i].Role == protocol.RoleUser {
			next = i
			break
		}
	}
	if next == 0 {
		return older, recent, false
	}
	return append(older, recent[:next]...), recent[next:], true
}

// dropOldestPair removes the first user message and everything up to the
// next user message.
func dropOldestPair(messages []*protocol.Message) []*protocol.Message {
	if len(messages) == 0 {
		return messages
	}
	for i := 1; i < len(messages); i++ {
		if messages[i].Role == protocol.RoleUser {
			return messages[i:]
		}
	}
	return nil
}

func assemble(system *protocol.Message, history []*protocol.Message) []*protocol.Message {
	prompt := make([]*protocol.Message, 0, len(history)+1)
	prompt = append(prompt, system)
	return append(prompt, history...)
}

// LLMSummarizer implements Summarizer on top of a completion provider.
type LLMSummarizer struct {
	Generate func(ctx context.Context, messages []*protocol.Message) (string, error)
}

const summaryPrompt = "Summarize the following conversation in at most 200 words. " +
	"Preserve concrete facts: order numbers, part numbers, quantities, decisions made and tool results. " +
	"Write in the language the conversation uses."

// Summarize renders the span as a transcript and asks the model for a
// compact digest.
func (s *LLMSummarizer) Summarize(ctx context.Context, messages []*protocol.Message) (string, error) {
	var sb strings.Builder
	for _, msg := range messages {
		sb.WriteString(string(msg.Role))
		sb.WriteString(": ")
		sb.WriteString(msg.Content)
		sb.WriteString("\n")
	}

	return s.Generate(ctx, []*protocol.Message{
		protocol.NewSystemMessage(summaryPrompt),
		protocol.NewUserMessage(sb.String()),
	})
}
