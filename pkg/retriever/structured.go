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

package retriever

import (
	"context"
	"database/sql"
	"fmt"
	"regexp"
	"strings"
)

// structuredCatalog holds the deterministic SQL templates used when a query
// is classifiable as structured (counts, filters by part/material/severity).
// Templates are fixed; only bound parameters come from the query, so no LLM
// output ever reaches the SQL layer.
type structuredTemplate struct {
	name    string
	pattern *regexp.Regexp
	sql     string
	// param extracts the bound value from the regexp match.
	param func(match []string) []any
}

var structuredTemplates = []structuredTemplate{
	{
		name:    "defect_count_by_part",
		pattern: regexp.MustCompile(`(?i)how many .*defects?.* part[- ]?(?:no\.?|number)?\s*([A-Za-z0-9-]+)`),
		sql:     `SELECT COUNT(*) AS n, part_no FROM mold_defects WHERE part_no = ? GROUP BY part_no`,
		param:   func(m []string) []any { return []any{m[1]} },
	},
	{
		name:    "defect_count_by_severity",
		pattern: regexp.MustCompile(`(?i)(?:count|how many).*(critical|major|minor)\s+defects`),
		sql:     `SELECT COUNT(*) AS n, severity FROM mold_defects WHERE severity = ? GROUP BY severity`,
		param:   func(m []string) []any { return []any{strings.ToLower(m[1])} },
	},
	{
		name:    "cases_by_material",
		pattern: regexp.MustCompile(`(?i)cases?.*material\s+([A-Za-z0-9-]+)`),
		sql:     `SELECT case_id, part_no, defect_type, resolution FROM mold_cases WHERE material = ? LIMIT 10`,
		param:   func(m []string) []any { return []any{strings.ToUpper(m[1])} },
	},
}

// structuredFusion resolves structured queries against the relational store
// and merges the rows with vector hits.
type structuredFusion struct {
	db     *sql.DB
	weight float64
}

// classify returns the first matching template and its bound args, or nil.
func classify(query string) (*structuredTemplate, []any) {
	for i := range structuredTemplates {
		t := &structuredTemplates[i]
		if m := t.pattern.FindStringSubmatch(query); m != nil {
			return t, t.param(m)
		}
	}
	return nil, nil
}

// run executes the template and converts rows to passages. The structured
// weight is applied to the fused score so SQL hits interleave with vector
// hits rather than dominating them.
func (f *structuredFusion) run(ctx context.Context, t *structuredTemplate, args []any) ([]Passage, error) {
	rows, err := f.db.QueryContext(ctx, t.sql, args...)
	if err != nil {
		return nil, fmt.Errorf("structured query %s failed: %w", t.name, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}

	var passages []Passage
	i := 0
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for j := range values {
			ptrs[j] = &values[j]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}

		var sb strings.Builder
		for j, col := range cols {
			if j > 0 {
				sb.WriteString(", ")
			}
			v := values[j]
			if b, ok := v.([]byte); ok {
				v = string(b)
			}
			fmt.Fprintf(&sb, "%s=%v", col, v)
		}

		passages = append(passages, Passage{
			DocID:      fmt.Sprintf("sql:%s", t.name),
			ChunkID:    fmt.Sprintf("sql:%s:%d", t.name, i),
			Text:       sb.String(),
			Source:     "structured",
			FusedScore: f.weight / float64(rrfK+i+1),
		})
		i++
	}
	return passages, rows.Err()
}
