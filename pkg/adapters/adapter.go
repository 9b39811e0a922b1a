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

// Package adapters provides a uniform facade over heterogeneous ERP, CRM,
// IT-ops and office-automation backends.
//
// Every adapter normalizes its backend's responses to the canonical Record
// schema so prompts do not change per deployment. Adapters own their
// authentication, retries and connection pools; callers never share raw
// connections.
package adapters

import (
	"context"
	"time"

	"github.com/bestbox/bestbox/pkg/protocol"
)

// Record is the canonical result schema returned by all adapter families.
type Record struct {
	Kind    string           `json:"kind"`              // e.g. "purchase_order_count", "ticket", "customer"
	Fields  map[string]any   `json:"fields"`            // normalized field set for the kind
	Rows    []map[string]any `json:"rows,omitempty"`    // list results
	Source  string           `json:"source"`            // backend family that produced it
	Fetched time.Time        `json:"fetched_at"`
}

// Adapter is the capability set every backend family implements.
type Adapter interface {
	// Available reports whether the backend is reachable. Query fails with
	// BackendUnavailable when this is false.
	Available(ctx context.Context) bool

	// Query executes a named operation. Fails with OperationUnsupported when
	// the operation is not in the adapter's declared set, BackendUnavailable
	// on transport errors, and BackendError on remote errors.
	Query(ctx context.Context, operation string, params map[string]any) (*Record, error)

	// Operations returns the operations this adapter supports, after
	// allowlist filtering.
	Operations() []string
}

// ErrUnavailable builds the canonical BackendUnavailable failure.
func ErrUnavailable(domain string, cause error) error {
	return protocol.WrapError(protocol.KindBackendUnavailable, "backend for "+domain+" unavailable", cause)
}

// ErrUnsupported builds the canonical OperationUnsupported failure.
func ErrUnsupported(operation string) error {
	return protocol.NewError(protocol.KindOperationUnsupported, "operation not supported: "+operation)
}

// ErrBackend builds the canonical BackendError failure with a remote code.
func ErrBackend(code, message string) error {
	return protocol.NewError(protocol.KindBackendError, code+": "+message)
}

// allowed reports whether op passes the allowlist. An empty allowlist
// permits every declared operation.
func allowed(op string, allowlist []string) bool {
	if len(allowlist) == 0 {
		return true
	}
	for _, a := range allowlist {
		if a == op {
			return true
		}
	}
	return false
}
