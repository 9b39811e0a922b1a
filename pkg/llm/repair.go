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
	"encoding/json"
	"errors"
	"strings"
)

// ErrMalformedToolCall marks tool-call payloads that could not be parsed
// even after repair. The runtime responds by re-prompting once without
// tools rather than failing the turn.
var ErrMalformedToolCall = errors.New("malformed tool call")

// maxRepairAttempts bounds how many times repairJSON mutates the payload
// before giving up.
const maxRepairAttempts = 3

// StripReasoningPreamble removes a leading reasoning block from model
// output. Local reasoning models (QwQ, DeepSeek-R1 style) emit their chain
// of thought before a closing </think> tag; only the text after the tag is
// the answer. Output with no such tag passes through unchanged.
func StripReasoningPreamble(text string) string {
	const closeTag = "</think>"
	idx := strings.LastIndex(text, closeTag)
	if idx < 0 {
		return text
	}
	return strings.TrimLeft(text[idx+len(closeTag):], " \t\r\n")
}

// RepairToolArgs parses a tool-call arguments string, applying a bounded
// sequence of mechanical repairs when the raw payload is not valid JSON.
// Models running on small local hardware occasionally emit arguments with
// a trailing comma, markdown fencing, or text around the JSON object.
func RepairToolArgs(raw string) (map[string]any, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return map[string]any{}, nil
	}

	candidate := raw
	for attempt := 0; attempt <= maxRepairAttempts; attempt++ {
		var args map[string]any
		if err := json.Unmarshal([]byte(candidate), &args); err == nil {
			return args, nil
		}

		switch attempt {
		case 0:
			candidate = stripCodeFence(candidate)
		case 1:
			candidate = extractObject(candidate)
		case 2:
			candidate = removeTrailingCommas(candidate)
		}
	}
	return nil, errors.New("arguments are not valid JSON after repair")
}

// stripCodeFence drops markdown fencing like ```json ... ```.
func stripCodeFence(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if nl := strings.IndexByte(s, '\n'); nl >= 0 && !strings.ContainsAny(s[:nl], "{}") {
		s = s[nl+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}

// extractObject returns the first balanced {...} span, ignoring braces
// inside string literals.
func extractObject(s string) string {
	start := strings.IndexByte(s, '{')
	if start < 0 {
		return s
	}

	depth := 0
	inString := false
	escaped := false
	for i := start; i < len(s); i++ {
		c := s[i]
		if inString {
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		switch c {
		case '"':
			inString = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return s[start : i+1]
			}
		}
	}
	return s[start:]
}

// removeTrailingCommas deletes commas that directly precede a closing
// bracket, outside string literals.
func removeTrailingCommas(s string) string {
	var out strings.Builder
	out.Grow(len(s))

	inString := false
	escaped := false
	for i := 0; i < len(s); i++ {
		c := s[i]
		if inString {
			out.WriteByte(c)
			switch {
			case escaped:
				escaped = false
			case c == '\\':
				escaped = true
			case c == '"':
				inString = false
			}
			continue
		}
		if c == '"' {
			inString = true
			out.WriteByte(c)
			continue
		}
		if c == ',' {
			j := i + 1
			for j < len(s) && (s[j] == ' ' || s[j] == '\t' || s[j] == '\n' || s[j] == '\r') {
				j++
			}
			if j < len(s) && (s[j] == '}' || s[j] == ']') {
				continue
			}
		}
		out.WriteByte(c)
	}
	return out.String()
}
