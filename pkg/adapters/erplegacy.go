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
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/go-sql-driver/mysql"
)

// erpLegacyAdapter queries the legacy ERP's MySQL schema directly. The old
// system has no API surface; these statements mirror the reports its
// operators run by hand.
type erpLegacyAdapter struct {
	domain     string
	db         *sql.DB
	operations []string
}

// legacyQueries maps operations to parameterized SQL. Only operations with a
// template here are declared.
var legacyQueries = map[string]struct {
	kind string
	sql  string
	args []string // param names, in placeholder order
}{
	"count_purchase_orders": {
		kind: "purchase_order_count",
		sql:  `SELECT COUNT(*) AS count FROM po_header WHERE vendor_code = ? AND status = ?`,
		args: []string{"vendor", "status"},
	},
	"list_purchase_orders": {
		kind: "purchase_order_list",
		sql:  `SELECT po_no, vendor_code, status, amount, created_dt FROM po_header WHERE vendor_code = ? ORDER BY created_dt DESC LIMIT 50`,
		args: []string{"vendor"},
	},
	"get_inventory": {
		kind: "inventory_level",
		sql:  `SELECT item_code, warehouse, qty_on_hand FROM inv_stock WHERE item_code = ?`,
		args: []string{"item"},
	},
	"finance_summary": {
		kind: "finance_summary",
		sql:  `SELECT period, SUM(debit) AS debit, SUM(credit) AS credit FROM gl_entry WHERE period = ? GROUP BY period`,
		args: []string{"period"},
	},
}

func newERPLegacyAdapter(domain, dsnEnv string, allowlist []string) (*erpLegacyAdapter, error) {
	dsn := os.Getenv(dsnEnv)
	if dsn == "" {
		return nil, fmt.Errorf("erp-legacy: dsn env %s is empty", dsnEnv)
	}

	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("erp-legacy: failed to open connection: %w", err)
	}
	db.SetMaxOpenConns(4)
	db.SetConnMaxLifetime(5 * time.Minute)

	ops := make([]string, 0, len(legacyQueries))
	for op := range legacyQueries {
		if allowed(op, allowlist) {
			ops = append(ops, op)
		}
	}

	return &erpLegacyAdapter{domain: domain, db: db, operations: ops}, nil
}

func (a *erpLegacyAdapter) Operations() []string { return a.operations }

func (a *erpLegacyAdapter) Available(ctx context.Context) bool {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	return a.db.PingContext(ctx) == nil
}

func (a *erpLegacyAdapter) Query(ctx context.Context, operation string, params map[string]any) (*Record, error) {
	if !a.supports(operation) {
		return nil, ErrUnsupported(operation)
	}
	tpl := legacyQueries[operation]

	args := make([]any, 0, len(tpl.args))
	for _, name := range tpl.args {
		v, ok := params[name]
		if !ok {
			return nil, ErrBackend("missing_param", "missing parameter: "+name)
		}
		args = append(args, v)
	}

	rows, err := a.db.QueryContext(ctx, tpl.sql, args...)
	if err != nil {
		return nil, ErrUnavailable(a.domain, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, ErrUnavailable(a.domain, err)
	}

	var out []map[string]any
	for rows.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, ErrBackend("scan_failed", err.Error())
		}
		row := make(map[string]any, len(cols))
		for i, col := range cols {
			if b, ok := values[i].([]byte); ok {
				row[col] = string(b)
			} else {
				row[col] = values[i]
			}
		}
		out = append(out, row)
	}
	if err := rows.Err(); err != nil {
		return nil, ErrUnavailable(a.domain, err)
	}

	rec := &Record{
		Kind:    tpl.kind,
		Fields:  map[string]any{},
		Rows:    out,
		Source:  "erp-legacy",
		Fetched: time.Now(),
	}
	// Single-row aggregates are promoted into Fields for prompt friendliness.
	if len(out) == 1 {
		rec.Fields = out[0]
	}
	return rec, nil
}

func (a *erpLegacyAdapter) supports(op string) bool {
	for _, o := range a.operations {
		if o == op {
			return true
		}
	}
	return false
}
