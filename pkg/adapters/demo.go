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
	"time"
)

// DemoAdapter serves canned records so a deployment runs end-to-end with no
// live backends. It is the fallback family for any domain.
type DemoAdapter struct {
	domain     string
	operations []string
	records    map[string]*Record
}

// NewDemoAdapter builds a demo adapter for the given domain. It answers
// every operation in the union of the REST families' declared sets.
func NewDemoAdapter(domain string, allowlist []string) *DemoAdapter {
	var ops []string
	for _, family := range []string{"erp-modern", "crm", "itops", "oa"} {
		for _, op := range declaredOps[family] {
			if allowed(op, allowlist) {
				ops = append(ops, op)
			}
		}
	}

	return &DemoAdapter{
		domain:     domain,
		operations: ops,
		records:    demoRecords(),
	}
}

func demoRecords() map[string]*Record {
	return map[string]*Record{
		"count_purchase_orders": {
			Kind:   "purchase_order_count",
			Fields: map[string]any{"count": 7, "vendor": "V-001", "status": "open"},
		},
		"list_purchase_orders": {
			Kind: "purchase_order_list",
			Rows: []map[string]any{
				{"po_no": "PO-2025-0107", "vendor": "V-001", "status": "open", "amount": 12400.50},
				{"po_no": "PO-2025-0093", "vendor": "V-001", "status": "open", "amount": 8300.00},
			},
		},
		"get_inventory": {
			Kind:   "inventory_level",
			Fields: map[string]any{"item": "M-7733", "warehouse": "WH1", "qty_on_hand": 412},
		},
		"finance_summary": {
			Kind:   "finance_summary",
			Fields: map[string]any{"period": "2025-07", "debit": 918223.10, "credit": 905114.92},
		},
		"get_customer": {
			Kind:   "customer",
			Fields: map[string]any{"customer_id": "C-1009", "name": "Acme Tooling", "tier": "gold"},
		},
		"count_open_leads": {
			Kind:   "lead_count",
			Fields: map[string]any{"count": 14},
		},
		"list_incidents": {
			Kind: "incident_list",
			Rows: []map[string]any{
				{"incident_id": "INC-551", "severity": "P2", "summary": "VPN gateway flapping"},
			},
		},
		"count_open_tickets": {
			Kind:   "ticket_count",
			Fields: map[string]any{"count": 3},
		},
		"list_pending_approvals": {
			Kind: "approval_list",
			Rows: []map[string]any{
				{"approval_id": "AP-88", "type": "leave_request", "requester": "w.chen"},
			},
		},
		"draft_email": {
			Kind:   "email_draft",
			Fields: map[string]any{"draft_id": "D-17", "subject": "Follow-up", "status": "draft"},
		},
		"send_email": {
			Kind:   "email_sent",
			Fields: map[string]any{"message_id": "M-4410", "status": "sent"},
		},
	}
}

func (a *DemoAdapter) Operations() []string { return a.operations }

func (a *DemoAdapter) Available(ctx context.Context) bool { return true }

func (a *DemoAdapter) Query(ctx context.Context, operation string, params map[string]any) (*Record, error) {
	supported := false
	for _, o := range a.operations {
		if o == operation {
			supported = true
			break
		}
	}
	if !supported {
		return nil, ErrUnsupported(operation)
	}

	rec, ok := a.records[operation]
	if !ok {
		return nil, ErrUnsupported(operation)
	}

	out := &Record{
		Kind:    rec.Kind,
		Fields:  make(map[string]any, len(rec.Fields)+len(params)),
		Rows:    rec.Rows,
		Source:  "demo",
		Fetched: time.Now(),
	}
	for k, v := range rec.Fields {
		out.Fields[k] = v
	}
	// Echo request params so answers reference what was asked.
	for k, v := range params {
		if _, exists := out.Fields[k]; !exists {
			out.Fields[k] = v
		}
	}
	return out, nil
}
