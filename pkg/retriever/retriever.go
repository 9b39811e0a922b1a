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

// Package retriever composes hybrid retrieval over the knowledge store:
// lexicon expansion, dense+sparse vector search with payload filters,
// reciprocal-rank fusion, optional structured SQL fusion, cross-encoder
// reranking and citation tagging.
package retriever

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/bestbox/bestbox/pkg/config"
	"github.com/bestbox/bestbox/pkg/embedder"
	"github.com/bestbox/bestbox/pkg/observability"
	"github.com/bestbox/bestbox/pkg/reranker"
	"github.com/bestbox/bestbox/pkg/vectorstore"
)

// Query is one retrieval request.
type Query struct {
	Text       string
	Domain     string
	OrgID      string
	Visibility string
}

// Result carries the ranked passages plus degradation flags the runtime
// logs and the audit trail records.
type Result struct {
	Passages []Passage
	Degraded bool // embeddings unavailable, sparse-only search was used
	Reranked bool // false when the reranker was down and fused order stands
}

// Retriever is the hybrid retrieval pipeline.
type Retriever struct {
	cfg      config.RetrieverConfig
	store    vectorstore.Store
	embedder embedder.Embedder
	reranker reranker.Reranker
	lexicon  *Lexicon
	sqlf     *structuredFusion
}

// Option configures optional pipeline stages.
type Option func(*Retriever)

// WithStructuredFusion enables templated SQL fusion against db.
func WithStructuredFusion(db *sql.DB, weight float64) Option {
	return func(r *Retriever) {
		r.sqlf = &structuredFusion{db: db, weight: weight}
	}
}

// New builds a retriever. The lexicon may be empty; reranker may be nil to
// disable reranking entirely.
func New(cfg config.RetrieverConfig, store vectorstore.Store, emb embedder.Embedder, rr reranker.Reranker, lex *Lexicon, opts ...Option) *Retriever {
	r := &Retriever{
		cfg:      cfg,
		store:    store,
		embedder: emb,
		reranker: rr,
		lexicon:  lex,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Lexicon exposes the domain lexicon (the router fallback consults it).
func (r *Retriever) Lexicon() *Lexicon { return r.lexicon }

// Search runs the full pipeline. Empty results are returned as an empty
// slice, never an error.
func (r *Retriever) Search(ctx context.Context, q Query) (*Result, error) {
	tracer := otel.Tracer("bestbox.retriever")
	ctx, span := tracer.Start(ctx, "retriever.search")
	span.SetAttributes(attribute.String("retriever.domain", q.Domain))
	defer span.End()

	expanded := r.lexicon.Expand(q.Text)
	filter := vectorstore.Filter{Domain: q.Domain, OrgID: q.OrgID, Visibility: q.Visibility}

	// Sparse leg always runs; it is also the degraded fallback.
	indices, values := SparseEncode(expanded)
	var sparseHits []vectorstore.Hit
	if len(indices) > 0 {
		var err error
		sparseHits, err = r.store.SearchSparse(ctx, r.cfg.Collection, indices, values, r.cfg.TopK, filter)
		if err != nil {
			slog.Warn("Sparse search failed", "error", err)
		}
	}

	degraded := false
	var denseHits []vectorstore.Hit
	vectors, err := r.embedder.Embed(ctx, []string{expanded})
	if err != nil {
		slog.Warn("Embedding failed, falling back to sparse-only search", "error", err)
		degraded = true
	} else if len(vectors) == 1 {
		denseHits, err = r.store.SearchDense(ctx, r.cfg.Collection, vectors[0], r.cfg.TopK, filter)
		if err != nil {
			slog.Warn("Dense search failed, falling back to sparse-only search", "error", err)
			degraded = true
		}
	}
	if degraded {
		observability.RecordRetrievalDegraded()
	}

	passages := fuse(denseHits, sparseHits, r.cfg.Weights.Dense, r.cfg.Weights.Sparse)

	// Structured fusion, when the query classifies.
	if r.sqlf != nil {
		if tpl, args := classify(q.Text); tpl != nil {
			sqlPassages, err := r.sqlf.run(ctx, tpl, args)
			if err != nil {
				slog.Warn("Structured fusion failed", "template", tpl.name, "error", err)
			} else {
				passages = append(passages, sqlPassages...)
				sortPassages(passages, func(p Passage) float64 { return p.FusedScore })
			}
		}
	}

	if len(passages) == 0 {
		return &Result{Passages: []Passage{}, Degraded: degraded}, nil
	}

	if len(passages) > r.cfg.TopK {
		passages = passages[:r.cfg.TopK]
	}

	reranked := r.rerank(ctx, q.Text, passages)

	final := passages
	if len(final) > r.cfg.TopN {
		final = final[:r.cfg.TopN]
	}
	for i := range final {
		final[i].CitationTag = fmt.Sprintf("[C%d]", i+1)
	}

	return &Result{Passages: final, Degraded: degraded, Reranked: reranked}, nil
}

// rerank re-scores passages in place and resorts them. Returns false (and
// leaves the fused order intact) when the reranker is unavailable.
func (r *Retriever) rerank(ctx context.Context, query string, passages []Passage) bool {
	if r.reranker == nil {
		return false
	}

	texts := make([]string, len(passages))
	for i, p := range passages {
		texts[i] = p.Text
	}

	scores, err := r.reranker.Score(ctx, query, texts)
	if err != nil {
		slog.Warn("Reranker unavailable, keeping fused order", "error", err)
		return false
	}

	for i := range passages {
		passages[i].RerankScore = scores[i]
	}
	sortPassages(passages, func(p Passage) float64 { return p.RerankScore })
	return true
}
