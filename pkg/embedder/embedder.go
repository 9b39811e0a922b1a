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

// Package embedder is the client for the embedding service
// (POST /embed, texts in, 1024-d L2-normalized vectors out).
package embedder

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bestbox/bestbox/pkg/config"
	"github.com/bestbox/bestbox/pkg/httpclient"
)

// Dimensions is the vector size the embedding service produces.
const Dimensions = 1024

// Embedder converts texts to dense vectors.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}

// Client is the HTTP embedder client.
type Client struct {
	url    string
	apiKey string
	client *httpclient.Client
}

// New creates a client from endpoint config.
func New(cfg *config.EndpointConfig) *Client {
	return &Client{
		url:    cfg.URL,
		apiKey: cfg.APIKey(),
		client: httpclient.New(
			httpclient.WithHTTPClient(&http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second}),
			httpclient.WithMaxRetries(3),
		),
	}
}

type embedRequest struct {
	Texts []string `json:"texts"`
}

type embedResponse struct {
	Vectors [][]float32 `json:"vectors"`
}

// Embed returns one vector per input text, in order.
func (c *Client) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return nil, nil
	}

	body, err := json.Marshal(embedRequest{Texts: texts})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal embed request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+"/embed", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create embed request: %w", err)
	}
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(body)), nil
	}
	req.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.client.Do(req)
	if resp != nil {
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			raw, _ := io.ReadAll(resp.Body)
			return nil, fmt.Errorf("embed service returned %d: %s", resp.StatusCode, string(raw))
		}
	}
	if err != nil {
		return nil, fmt.Errorf("embed request failed: %w", err)
	}
	if resp == nil {
		return nil, fmt.Errorf("no response from embed service")
	}

	var out embedResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("failed to decode embed response: %w", err)
	}

	if len(out.Vectors) != len(texts) {
		return nil, fmt.Errorf("embed service returned %d vectors for %d texts", len(out.Vectors), len(texts))
	}
	for i, v := range out.Vectors {
		if len(v) != Dimensions {
			return nil, fmt.Errorf("vector %d has %d dimensions, want %d", i, len(v), Dimensions)
		}
	}

	return out.Vectors, nil
}
