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
	"fmt"

	"github.com/bestbox/bestbox/pkg/adapters"
	"github.com/bestbox/bestbox/pkg/protocol"
)

// writeOperations lists adapter operations that mutate backend state. They
// register as write-class tools and require approval.
var writeOperations = map[string]bool{
	"send_email": true,
}

// operationDescriptions gives the model something better than the bare
// operation name.
var operationDescriptions = map[string]string{
	"count_purchase_orders":  "Count purchase orders, optionally filtered by vendor, status or date range.",
	"list_purchase_orders":   "List purchase orders matching the given filters.",
	"get_purchase_order":     "Fetch one purchase order by its PO number.",
	"get_inventory":          "Fetch stock levels for a part number or warehouse.",
	"get_vendor":             "Fetch vendor master data by vendor code.",
	"finance_summary":        "Summarize ledger figures for a period.",
	"get_customer":           "Fetch a customer record by customer code or name.",
	"list_opportunities":     "List sales opportunities matching the given filters.",
	"count_open_leads":       "Count open leads, optionally filtered by owner.",
	"get_contact":            "Fetch a contact by name or email.",
	"list_incidents":         "List IT incidents matching the given filters.",
	"get_incident":           "Fetch one IT incident by its ticket ID.",
	"count_open_tickets":     "Count open IT tickets, optionally filtered by priority.",
	"get_host_status":        "Fetch monitoring status for a host.",
	"list_pending_approvals": "List office-automation approvals waiting on the caller.",
	"get_calendar":           "Fetch calendar entries for a date range.",
	"draft_email":            "Draft an email without sending it.",
	"send_email":             "Send an email through the office-automation system.",
}

// adapterTool exposes one backend operation as a catalog tool.
type adapterTool struct {
	domain    string
	operation string
	adapter   adapters.Adapter
	spec      Spec
}

func newAdapterTool(domain, operation string, adapter adapters.Adapter) *adapterTool {
	sideEffect := SideEffectReadOnly
	permission := domain + ":read"
	if writeOperations[operation] {
		sideEffect = SideEffectWrite
		permission = domain + ":write"
	}

	description := operationDescriptions[operation]
	if description == "" {
		description = fmt.Sprintf("Run the %s operation on the %s backend.", operation, domain)
	}

	return &adapterTool{
		domain:    domain,
		operation: operation,
		adapter:   adapter,
		spec: Spec{
			Name:        domain + "_" + operation,
			Description: description,
			Domain:      domain,
			ArgSchema: map[string]any{
				"type":                 "object",
				"additionalProperties": true,
				"description":          "Operation parameters, e.g. filters and identifiers.",
			},
			PermissionTag: permission,
			SideEffect:    sideEffect,
		},
	}
}

func (t *adapterTool) Spec() Spec { return t.spec }

func (t *adapterTool) Execute(ctx context.Context, args map[string]any) *Result {
	record, err := t.adapter.Query(ctx, t.operation, args)
	if err != nil {
		return failure(protocol.KindOf(err), err.Error())
	}

	data := map[string]any{
		"kind":   record.Kind,
		"source": record.Source,
	}
	if len(record.Fields) > 0 {
		data["fields"] = record.Fields
	}
	if len(record.Rows) > 0 {
		data["rows"] = record.Rows
	}
	return &Result{OK: true, Data: data}
}

// RegisterAdapterTools populates the registry with one tool per backend
// operation across all configured domains.
func RegisterAdapterTools(reg *Registry, backends *adapters.Registry) error {
	for _, domain := range backends.Domains() {
		adapter := backends.Get(domain)
		if adapter == nil {
			continue
		}
		for _, operation := range adapter.Operations() {
			if err := reg.Register(newAdapterTool(domain, operation, adapter)); err != nil {
				return fmt.Errorf("failed to register %s_%s: %w", domain, operation, err)
			}
		}
	}
	return nil
}
