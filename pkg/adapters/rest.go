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

package adapters

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/bestbox/bestbox/pkg/httpclient"
)

// restAdapter serves the erp-modern, crm, itops and oa families. All four
// expose the same operation envelope (POST /api/ops/{operation}); only the
// operation sets and the normalized record kinds differ.
type restAdapter struct {
	domain     string
	family     string
	baseURL    string
	authEnv    string
	operations []string
	client     *httpclient.Client
}

// declaredOps is the operation set per REST backend family.
var declaredOps = map[string][]string{
	"erp-modern": {
		"count_purchase_orders", "list_purchase_orders", "get_purchase_order",
		"get_inventory", "get_vendor", "finance_summary",
	},
	"crm": {
		"get_customer", "list_opportunities", "count_open_leads", "get_contact",
	},
	"itops": {
		"list_incidents", "get_incident", "count_open_tickets", "get_host_status",
	},
	"oa": {
		"list_pending_approvals", "get_calendar", "draft_email", "send_email",
	},
}

func newRESTAdapter(domain, family, baseURL, authEnv string, allowlist []string) *restAdapter {
	ops := make([]string, 0)
	for _, op := range declaredOps[family] {
		if allowed(op, allowlist) {
			ops = append(ops, op)
		}
	}

	return &restAdapter{
		domain:     domain,
		family:     family,
		baseURL:    baseURL,
		authEnv:    authEnv,
		operations: ops,
		client: httpclient.New(
			httpclient.WithHTTPClient(&http.Client{Timeout: 15 * time.Second}),
			httpclient.WithMaxRetries(3),
			httpclient.WithHeaderParser(httpclient.ParseRetryAfterHeader),
		),
	}
}

func (a *restAdapter) Operations() []string { return a.operations }

func (a *restAdapter) Available(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.baseURL+"/api/health", nil)
	if err != nil {
		return false
	}
	a.setAuth(req)

	resp, _ := a.client.Do(req)
	if resp == nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// remoteEnvelope is the uniform response shape of the integration gateways.
type remoteEnvelope struct {
	Kind   string           `json:"kind"`
	Fields map[string]any   `json:"fields"`
	Rows   []map[string]any `json:"rows"`
	Error  *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

func (a *restAdapter) Query(ctx context.Context, operation string, params map[string]any) (*Record, error) {
	if !a.supports(operation) {
		return nil, ErrUnsupported(operation)
	}

	body, err := json.Marshal(params)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal params: %w", err)
	}

	url := fmt.Sprintf("%s/api/ops/%s", a.baseURL, operation)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.GetBody = func() (io.ReadCloser, error) {
		return io.NopCloser(bytes.NewReader(body)), nil
	}
	req.Header.Set("Content-Type", "application/json")
	a.setAuth(req)

	resp, err := a.client.Do(req)
	if resp == nil {
		return nil, ErrUnavailable(a.domain, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, ErrUnavailable(a.domain, err)
	}

	var envelope remoteEnvelope
	if err := json.Unmarshal(raw, &envelope); err != nil {
		if resp.StatusCode != http.StatusOK {
			return nil, ErrBackend(fmt.Sprintf("http_%d", resp.StatusCode), "remote error")
		}
		return nil, ErrBackend("bad_response", fmt.Sprintf("undecodable response from %s", a.family))
	}

	if envelope.Error != nil {
		return nil, ErrBackend(envelope.Error.Code, envelope.Error.Message)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, ErrBackend(fmt.Sprintf("http_%d", resp.StatusCode), "remote error")
	}

	return &Record{
		Kind:    envelope.Kind,
		Fields:  envelope.Fields,
		Rows:    envelope.Rows,
		Source:  a.family,
		Fetched: time.Now(),
	}, nil
}

func (a *restAdapter) supports(op string) bool {
	for _, o := range a.operations {
		if o == op {
			return true
		}
	}
	return false
}

func (a *restAdapter) setAuth(req *http.Request) {
	if a.authEnv == "" {
		return
	}
	if token := os.Getenv(a.authEnv); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}
