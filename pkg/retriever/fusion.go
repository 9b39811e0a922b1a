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
	"sort"

	"github.com/bestbox/bestbox/pkg/vectorstore"
)

// rrfK is the standard reciprocal-rank-fusion smoothing constant.
const rrfK = 60

// Passage is one retrieved chunk after fusion (and optionally reranking).
type Passage struct {
	DocID       string  `json:"doc_id"`
	ChunkID     string  `json:"chunk_id"`
	Text        string  `json:"text"`
	Source      string  `json:"source"`
	Domain      string  `json:"domain"`
	DenseScore  float64 `json:"dense_score"`
	SparseScore float64 `json:"sparse_score"`
	FusedScore  float64 `json:"fused_score"`
	RerankScore float64 `json:"rerank_score"`
	CitationTag string  `json:"citation_tag"`
}

// fuse merges the dense and sparse result lists by weighted reciprocal rank.
// Ties break lexicographically on (doc_id, chunk_id) so results are
// deterministic across runs.
func fuse(dense, sparse []vectorstore.Hit, wDense, wSparse float64) []Passage {
	byID := make(map[string]*Passage)

	materialize := func(h vectorstore.Hit) *Passage {
		if p, ok := byID[h.ID]; ok {
			return p
		}
		p := &Passage{
			ChunkID: h.ID,
			DocID:   payloadString(h.Payload, "doc_id"),
			Text:    payloadString(h.Payload, "text"),
			Source:  payloadString(h.Payload, "source"),
			Domain:  payloadString(h.Payload, "domain"),
		}
		byID[h.ID] = p
		return p
	}

	for rank, h := range dense {
		p := materialize(h)
		p.DenseScore = float64(h.Score)
		p.FusedScore += wDense / float64(rrfK+rank+1)
	}
	for rank, h := range sparse {
		p := materialize(h)
		p.SparseScore = float64(h.Score)
		p.FusedScore += wSparse / float64(rrfK+rank+1)
	}

	out := make([]Passage, 0, len(byID))
	for _, p := range byID {
		out = append(out, *p)
	}
	sortPassages(out, func(p Passage) float64 { return p.FusedScore })
	return out
}

// sortPassages orders by the given score descending, then (doc_id, chunk_id)
// ascending.
func sortPassages(ps []Passage, score func(Passage) float64) {
	sort.Slice(ps, func(i, j int) bool {
		si, sj := score(ps[i]), score(ps[j])
		if si != sj {
			return si > sj
		}
		if ps[i].DocID != ps[j].DocID {
			return ps[i].DocID < ps[j].DocID
		}
		return ps[i].ChunkID < ps[j].ChunkID
	})
}

func payloadString(payload map[string]any, key string) string {
	if v, ok := payload[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
