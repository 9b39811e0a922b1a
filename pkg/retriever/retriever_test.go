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
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestbox/bestbox/pkg/config"
	"github.com/bestbox/bestbox/pkg/vectorstore"
)

type fakeStore struct {
	dense     []vectorstore.Hit
	sparse    []vectorstore.Hit
	denseErr  error
	sparseErr error

	lastFilter vectorstore.Filter
}

func (f *fakeStore) SearchDense(ctx context.Context, collection string, vector []float32, topK int, filter vectorstore.Filter) ([]vectorstore.Hit, error) {
	f.lastFilter = filter
	return f.dense, f.denseErr
}

func (f *fakeStore) SearchSparse(ctx context.Context, collection string, indices []uint32, values []float32, topK int, filter vectorstore.Filter) ([]vectorstore.Hit, error) {
	f.lastFilter = filter
	return f.sparse, f.sparseErr
}

type fakeEmbedder struct {
	err error
}

func (f *fakeEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if f.err != nil {
		return nil, f.err
	}
	out := make([][]float32, len(texts))
	for i := range texts {
		out[i] = make([]float32, 8)
	}
	return out, nil
}

type fakeReranker struct {
	scores []float64
	err    error
}

func (f *fakeReranker) Score(ctx context.Context, query string, passages []string) ([]float64, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.scores[:len(passages)], nil
}

func hit(id, docID, text string, score float32) vectorstore.Hit {
	return vectorstore.Hit{
		ID:    id,
		Score: score,
		Payload: map[string]any{
			"doc_id": docID,
			"text":   text,
			"source": "kb/" + docID,
			"domain": "mold",
		},
	}
}

func testConfig() config.RetrieverConfig {
	return config.RetrieverConfig{
		TopK:       10,
		TopN:       3,
		Collection: "kb_test",
		Weights:    config.FusionWeights{Dense: 0.6, Sparse: 0.4},
	}
}

func emptyLexicon(t *testing.T) *Lexicon {
	t.Helper()
	lex, err := LoadLexicon("")
	require.NoError(t, err)
	return lex
}

func TestSearchFusesAndTags(t *testing.T) {
	store := &fakeStore{
		dense:  []vectorstore.Hit{hit("c1", "d1", "披锋产生原因", 0.9), hit("c2", "d2", "合模力不足", 0.8)},
		sparse: []vectorstore.Hit{hit("c2", "d2", "合模力不足", 7.0), hit("c3", "d3", "排气不良", 5.0)},
	}
	rt := New(testConfig(), store, &fakeEmbedder{}, nil, emptyLexicon(t))

	res, err := rt.Search(context.Background(), Query{Text: "披锋", Domain: "mold", OrgID: "org-7"})
	require.NoError(t, err)
	assert.False(t, res.Degraded)
	assert.False(t, res.Reranked)
	require.Len(t, res.Passages, 3)

	// c2 appears in both legs, so it fuses highest.
	assert.Equal(t, "c2", res.Passages[0].ChunkID)
	assert.Equal(t, "[C1]", res.Passages[0].CitationTag)
	assert.Equal(t, "[C2]", res.Passages[1].CitationTag)
	assert.Equal(t, "[C3]", res.Passages[2].CitationTag)

	// Org isolation rides in the payload filter.
	assert.Equal(t, "org-7", store.lastFilter.OrgID)
	assert.Equal(t, "mold", store.lastFilter.Domain)
}

func TestSearchDegradesToSparseOnly(t *testing.T) {
	store := &fakeStore{
		sparse: []vectorstore.Hit{hit("c1", "d1", "披锋产生原因", 7.0)},
	}
	rt := New(testConfig(), store, &fakeEmbedder{err: errors.New("embedder down")}, nil, emptyLexicon(t))

	res, err := rt.Search(context.Background(), Query{Text: "披锋"})
	require.NoError(t, err)
	assert.True(t, res.Degraded)
	require.Len(t, res.Passages, 1)
	assert.Equal(t, "c1", res.Passages[0].ChunkID)
}

func TestSearchKeepsFusedOrderWhenRerankerDown(t *testing.T) {
	store := &fakeStore{
		dense: []vectorstore.Hit{hit("c1", "d1", "a", 0.9), hit("c2", "d2", "b", 0.8)},
	}
	rt := New(testConfig(), store, &fakeEmbedder{}, &fakeReranker{err: errors.New("reranker down")}, emptyLexicon(t))

	res, err := rt.Search(context.Background(), Query{Text: "flash defect"})
	require.NoError(t, err)
	assert.False(t, res.Reranked)
	assert.Equal(t, "c1", res.Passages[0].ChunkID)
	assert.Equal(t, "c2", res.Passages[1].ChunkID)
}

func TestSearchRerankReorders(t *testing.T) {
	store := &fakeStore{
		dense: []vectorstore.Hit{hit("c1", "d1", "a", 0.9), hit("c2", "d2", "b", 0.8)},
	}
	// Reranker scores the fused runner-up higher.
	rt := New(testConfig(), store, &fakeEmbedder{}, &fakeReranker{scores: []float64{0.1, 0.95}}, emptyLexicon(t))

	res, err := rt.Search(context.Background(), Query{Text: "flash defect"})
	require.NoError(t, err)
	assert.True(t, res.Reranked)
	assert.Equal(t, "c2", res.Passages[0].ChunkID)
	assert.Equal(t, "[C1]", res.Passages[0].CitationTag)
}

func TestSearchEmptyIsNotAnError(t *testing.T) {
	rt := New(testConfig(), &fakeStore{}, &fakeEmbedder{}, nil, emptyLexicon(t))

	res, err := rt.Search(context.Background(), Query{Text: "nothing matches this"})
	require.NoError(t, err)
	assert.NotNil(t, res.Passages)
	assert.Empty(t, res.Passages)
}

func TestFuseIsDeterministicOnTies(t *testing.T) {
	// Two hits at the same rank in one leg only tie on fused score and must
	// break on (doc_id, chunk_id).
	a := []vectorstore.Hit{hit("c9", "d2", "x", 0.5)}
	b := []vectorstore.Hit{hit("c1", "d2", "y", 0.5)}

	first := fuse(a, b, 0.5, 0.5)
	second := fuse(b, a, 0.5, 0.5)

	require.Len(t, first, 2)
	assert.Equal(t, first[0].ChunkID, second[0].ChunkID)
	assert.Equal(t, "c1", first[0].ChunkID)
}
