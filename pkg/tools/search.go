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

package tools

import (
	"context"

	"github.com/mitchellh/mapstructure"

	"github.com/bestbox/bestbox/pkg/auth"
	"github.com/bestbox/bestbox/pkg/protocol"
	"github.com/bestbox/bestbox/pkg/retriever"
)

// searchArgs are the model-facing arguments of search_kb.
type searchArgs struct {
	Query  string `json:"query" jsonschema:"required,description=The search query in the user's language"`
	Domain string `json:"domain,omitempty" jsonschema:"description=Knowledge domain to search: erp crm it oa mold. Empty searches all domains."`
}

// SearchTool retrieves knowledge-base passages for the model. Results carry
// citation tags so answers can reference their sources.
type SearchTool struct {
	retriever *retriever.Retriever
	spec      Spec
}

func NewSearchTool(rt *retriever.Retriever) *SearchTool {
	return &SearchTool{
		retriever: rt,
		spec: Spec{
			Name:          "search_kb",
			Description:   "Search the company knowledge base: manuals, SOPs, mold defect cases and policy documents.",
			ArgSchema:     reflectSchema(&searchArgs{}),
			PermissionTag: "kb:read",
			SideEffect:    SideEffectReadOnly,
		},
	}
}

func (t *SearchTool) Spec() Spec { return t.spec }

func (t *SearchTool) Execute(ctx context.Context, args map[string]any) *Result {
	var parsed searchArgs
	if err := mapstructure.Decode(args, &parsed); err != nil {
		return failure(protocol.KindInternal, "invalid search arguments: "+err.Error())
	}
	if parsed.Query == "" {
		return failure(protocol.KindOperationUnsupported, "query is required")
	}

	uc := auth.FromContext(ctx)
	query := retriever.Query{Text: parsed.Query, Domain: parsed.Domain}
	if uc != nil {
		query.OrgID = uc.OrgID
	}

	result, err := t.retriever.Search(ctx, query)
	if err != nil {
		return failure(protocol.KindOf(err), err.Error())
	}

	passages := make([]map[string]any, len(result.Passages))
	for i, p := range result.Passages {
		passages[i] = map[string]any{
			"citation": p.CitationTag,
			"doc_id":   p.DocID,
			"source":   p.Source,
			"text":     p.Text,
		}
	}

	data := map[string]any{"passages": passages}
	if result.Degraded {
		data["degraded"] = true
	}
	return &Result{OK: true, Data: data}
}
