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
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bestbox/bestbox/pkg/llm"
	"github.com/bestbox/bestbox/pkg/protocol"
	"github.com/bestbox/bestbox/pkg/retriever"
)

// Domains the router may select. "general" answers from the model alone.
var routableDomains = []string{"erp", "crm", "it", "oa", "mold", "general"}

const routerPrompt = `You route user requests to a business domain.
Domains:
- erp: purchase orders, inventory, vendors, finance figures
- crm: customers, leads, opportunities, contacts
- it: incidents, tickets, host status
- oa: approvals, calendar, email
- mold: injection molding defects, mold cases, tooling, surface finishing
- general: anything else

Respond with JSON only: {"next": "<domain>"}`

var routerSchema = map[string]any{
	"type": "object",
	"properties": map[string]any{
		"next": map[string]any{
			"type": "string",
			"enum": routableDomains,
		},
	},
	"required":             []string{"next"},
	"additionalProperties": false,
}

// router selects the domain for a query with a schema-constrained model
// call. Two parse failures fall back to the lexicon hint, then to general.
type router struct {
	provider llm.Provider
	lexicon  *retriever.Lexicon
}

func (r *router) route(ctx context.Context, query string) string {
	messages := []*protocol.Message{
		protocol.NewSystemMessage(routerPrompt),
		protocol.NewUserMessage(query),
	}
	structured := &llm.StructuredConfig{Name: "route", Schema: routerSchema}

	for attempt := 0; attempt < 2; attempt++ {
		raw, _, err := r.provider.GenerateStructured(ctx, messages, structured)
		if err != nil {
			slog.Warn("Router call failed", "attempt", attempt+1, "error", err)
			continue
		}
		if domain, ok := parseRoute(raw); ok {
			return domain
		}
		slog.Warn("Router output did not parse", "attempt", attempt+1, "output", truncateForLog(raw))
		// Corrective re-prompt on the retry.
		messages = append(messages,
			protocol.NewAssistantMessage(raw, nil),
			protocol.NewUserMessage(`Invalid. Respond with exactly {"next": "<domain>"} and nothing else.`))
	}

	if hint := specialistFor(r.lexicon.DomainOf(query)); hint != "" {
		slog.Info("Router fell back to lexicon hint", "domain", hint)
		return hint
	}
	return "general"
}

// specialistFor maps a lexicon domain hint onto a routable specialist.
// Knowledge-base partitions without a dedicated specialist go to the
// closest one; unknown hints route nowhere.
func specialistFor(hint string) string {
	if hint == "finish" {
		// Surface-finishing documents form their own retrieval partition
		// but the molding specialist handles them.
		return "mold"
	}
	for _, domain := range routableDomains {
		if hint == domain {
			return hint
		}
	}
	return ""
}

func parseRoute(raw string) (string, bool) {
	raw = strings.TrimSpace(llm.StripReasoningPreamble(raw))
	var parsed struct {
		Next string `json:"next"`
	}
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return "", false
	}
	next := strings.ToLower(strings.TrimSpace(parsed.Next))
	for _, domain := range routableDomains {
		if next == domain {
			return next, true
		}
	}
	return "", false
}

func truncateForLog(s string) string {
	if len(s) > 200 {
		return fmt.Sprintf("%s... (%d bytes)", s[:200], len(s))
	}
	return s
}
