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
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/bestbox/bestbox/pkg/config"
)

// Registry holds one shared adapter instance per domain. It is built once at
// startup; hot-reload is out of scope.
type Registry struct {
	byDomain map[string]Adapter
}

// NewRegistry constructs adapters from the integrations config. Domains
// without an integration entry get the demo adapter so the system still
// answers end-to-end.
func NewRegistry(integrations map[string]config.IntegrationConfig) (*Registry, error) {
	r := &Registry{byDomain: make(map[string]Adapter)}

	for domain, ic := range integrations {
		adapter, err := build(domain, ic)
		if err != nil {
			return nil, fmt.Errorf("integrations.%s: %w", domain, err)
		}
		r.byDomain[domain] = adapter
		slog.Info("Registered backend adapter",
			"domain", domain,
			"family", ic.Backend,
			"operations", len(adapter.Operations()))
	}

	for _, domain := range []string{"erp", "crm", "it", "oa"} {
		if _, ok := r.byDomain[domain]; !ok {
			r.byDomain[domain] = NewDemoAdapter(domain, nil)
			slog.Info("Registered demo fallback adapter", "domain", domain)
		}
	}

	return r, nil
}

func build(domain string, ic config.IntegrationConfig) (Adapter, error) {
	switch ic.Backend {
	case "erp-modern", "crm", "itops", "oa":
		return newRESTAdapter(domain, ic.Backend, ic.URL, ic.AuthEnv, ic.Allowlist), nil
	case "erp-legacy":
		return newERPLegacyAdapter(domain, ic.AuthEnv, ic.Allowlist)
	case "demo":
		return NewDemoAdapter(domain, ic.Allowlist), nil
	default:
		return nil, fmt.Errorf("unknown backend family %q", ic.Backend)
	}
}

// Get returns the adapter for a domain, or nil when none is registered.
func (r *Registry) Get(domain string) Adapter {
	return r.byDomain[domain]
}

// Domains lists registered domains in stable order.
func (r *Registry) Domains() []string {
	out := make([]string, 0, len(r.byDomain))
	for d := range r.byDomain {
		out = append(out, d)
	}
	sort.Strings(out)
	return out
}

// Health reports per-domain availability.
func (r *Registry) Health(ctx context.Context) map[string]bool {
	out := make(map[string]bool, len(r.byDomain))
	for domain, a := range r.byDomain {
		out[domain] = a.Available(ctx)
	}
	return out
}
