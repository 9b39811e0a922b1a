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

// Package vectorstore wraps the qdrant client with the hybrid dense+sparse
// filtered search the knowledge base uses.
//
// KB chunks are stored with a named dense vector ("dense", 1024-d cosine)
// and a named sparse vector ("sparse", BM25 term weights). Payload fields
// domain, org_id, visibility and file_hash are filterable; org isolation is
// enforced here at the payload filter, not post-hoc in the retriever.
package vectorstore

import (
	"context"
	"fmt"

	"github.com/qdrant/go-client/qdrant"

	"github.com/bestbox/bestbox/pkg/config"
)

const (
	denseVectorName  = "dense"
	sparseVectorName = "sparse"
)

// Hit is one scored chunk returned by a search leg.
type Hit struct {
	ID      string
	Score   float32
	Payload map[string]any
}

// Filter restricts search to matching payloads. Zero-valued fields are not
// applied. Visibility "org" chunks additionally require a matching OrgID.
type Filter struct {
	Domain     string
	OrgID      string
	Visibility string
	FileHash   string
}

// Store is the hybrid search surface the retriever depends on.
type Store interface {
	SearchDense(ctx context.Context, collection string, vector []float32, topK int, filter Filter) ([]Hit, error)
	SearchSparse(ctx context.Context, collection string, indices []uint32, values []float32, topK int, filter Filter) ([]Hit, error)
}

type qdrantStore struct {
	client *qdrant.Client
}

// New connects to qdrant per config.
func New(cfg *config.VectorStoreConfig) (Store, error) {
	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   cfg.Host,
		Port:   cfg.Port,
		APIKey: cfg.APIKey(),
		UseTLS: cfg.EnableTLS,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create qdrant client: %w", err)
	}
	return &qdrantStore{client: client}, nil
}

func (s *qdrantStore) SearchDense(ctx context.Context, collection string, vector []float32, topK int, filter Filter) ([]Hit, error) {
	points, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: collection,
		Query:          qdrant.NewQueryDense(vector),
		Using:          qdrant.PtrOf(denseVectorName),
		Limit:          qdrant.PtrOf(uint64(topK)),
		Filter:         buildFilter(filter),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("dense search failed: %w", err)
	}
	return convertPoints(points), nil
}

func (s *qdrantStore) SearchSparse(ctx context.Context, collection string, indices []uint32, values []float32, topK int, filter Filter) ([]Hit, error) {
	points, err := s.client.Query(ctx, &qdrant.QueryPoints{
		CollectionName: collection,
		Query:          qdrant.NewQuerySparse(indices, values),
		Using:          qdrant.PtrOf(sparseVectorName),
		Limit:          qdrant.PtrOf(uint64(topK)),
		Filter:         buildFilter(filter),
		WithPayload:    qdrant.NewWithPayload(true),
	})
	if err != nil {
		return nil, fmt.Errorf("sparse search failed: %w", err)
	}
	return convertPoints(points), nil
}

func buildFilter(f Filter) *qdrant.Filter {
	var must []*qdrant.Condition
	if f.Domain != "" {
		must = append(must, qdrant.NewMatch("domain", f.Domain))
	}
	if f.FileHash != "" {
		must = append(must, qdrant.NewMatch("file_hash", f.FileHash))
	}
	if f.Visibility != "" {
		must = append(must, qdrant.NewMatch("visibility", f.Visibility))
	}
	if f.OrgID != "" {
		// A chunk is visible when public or owned by the caller's org.
		must = append(must, &qdrant.Condition{
			ConditionOneOf: &qdrant.Condition_Filter{
				Filter: &qdrant.Filter{
					Should: []*qdrant.Condition{
						qdrant.NewMatch("visibility", "public"),
						qdrant.NewMatch("org_id", f.OrgID),
					},
				},
			},
		})
	}
	if len(must) == 0 {
		return nil
	}
	return &qdrant.Filter{Must: must}
}

func convertPoints(points []*qdrant.ScoredPoint) []Hit {
	hits := make([]Hit, 0, len(points))
	for _, p := range points {
		hit := Hit{Score: p.Score, Payload: make(map[string]any, len(p.Payload))}

		if p.Id != nil {
			switch id := p.Id.PointIdOptions.(type) {
			case *qdrant.PointId_Uuid:
				hit.ID = id.Uuid
			case *qdrant.PointId_Num:
				hit.ID = fmt.Sprintf("%d", id.Num)
			}
		}

		for key, value := range p.Payload {
			switch v := value.Kind.(type) {
			case *qdrant.Value_StringValue:
				hit.Payload[key] = v.StringValue
			case *qdrant.Value_IntegerValue:
				hit.Payload[key] = v.IntegerValue
			case *qdrant.Value_DoubleValue:
				hit.Payload[key] = v.DoubleValue
			case *qdrant.Value_BoolValue:
				hit.Payload[key] = v.BoolValue
			default:
				hit.Payload[key] = value
			}
		}

		hits = append(hits, hit)
	}
	return hits
}
