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
	"sync"
	"unicode"

	"github.com/pkoukk/tiktoken-go"

	"github.com/bestbox/bestbox/pkg/protocol"
)

// TokenCounter counts tokens with a tiktoken encoding when one is available
// for the model, falling back to a CJK-aware heuristic otherwise. Local
// models (Qwen family and similar) are not in tiktoken's model table, so the
// heuristic is the common path on-prem.
type TokenCounter struct {
	encoding *tiktoken.Tiktoken
	model    string
}

var (
	encodingCache   = make(map[string]*tiktoken.Tiktoken)
	encodingCacheMu sync.Mutex
)

// NewTokenCounter builds a counter for the model. Never fails; a model with
// no known encoding gets the heuristic counter.
func NewTokenCounter(model string) *TokenCounter {
	encodingCacheMu.Lock()
	defer encodingCacheMu.Unlock()

	if cached, ok := encodingCache[model]; ok {
		return &TokenCounter{encoding: cached, model: model}
	}

	encoding, err := tiktoken.EncodingForModel(model)
	if err != nil {
		// Heuristic path for models tiktoken does not know.
		encodingCache[model] = nil
		return &TokenCounter{model: model}
	}
	encodingCache[model] = encoding
	return &TokenCounter{encoding: encoding, model: model}
}

// Count returns the token count for text.
func (tc *TokenCounter) Count(text string) int {
	if tc.encoding != nil {
		return len(tc.encoding.Encode(text, nil, nil))
	}
	return estimateTokens(text)
}

// CountMessage includes per-message framing overhead.
func (tc *TokenCounter) CountMessage(msg *protocol.Message) int {
	// <|start|>role ... <|end|> framing.
	const tokensPerMessage = 3
	n := tokensPerMessage + tc.Count(msg.Content)
	for _, tcall := range msg.ToolCalls {
		n += tc.Count(tcall.Name) + 8
	}
	return n
}

// CountMessages counts a whole prompt, including the assistant reply primer.
func (tc *TokenCounter) CountMessages(messages []*protocol.Message) int {
	total := 3
	for _, msg := range messages {
		total += tc.CountMessage(msg)
	}
	return total
}

// estimateTokens approximates token counts for mixed Chinese/English text:
// CJK runs at roughly 1.5 characters per token, everything else at about 4
// bytes per token.
func estimateTokens(text string) int {
	cjk := 0
	other := 0
	for _, r := range text {
		if unicode.Is(unicode.Han, r) || unicode.Is(unicode.Hiragana, r) || unicode.Is(unicode.Katakana, r) || unicode.Is(unicode.Hangul, r) {
			cjk++
		} else {
			other += len(string(r))
		}
	}
	return (cjk*2+2)/3 + (other+3)/4
}
