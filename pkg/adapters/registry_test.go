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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestbox/bestbox/pkg/config"
	"github.com/bestbox/bestbox/pkg/protocol"
)

func TestRegistryFillsDemoFallbacks(t *testing.T) {
	reg, err := NewRegistry(nil)
	require.NoError(t, err)

	assert.Equal(t, []string{"crm", "erp", "it", "oa"}, reg.Domains())
	for _, domain := range reg.Domains() {
		assert.NotNil(t, reg.Get(domain))
	}
	assert.Nil(t, reg.Get("warehouse"))
}

func TestRegistryRejectsUnknownFamily(t *testing.T) {
	_, err := NewRegistry(map[string]config.IntegrationConfig{
		"erp": {Backend: "sap-hana"},
	})
	assert.Error(t, err)
}

func TestDemoAdapterQuery(t *testing.T) {
	a := NewDemoAdapter("erp", nil)
	ctx := context.Background()

	assert.True(t, a.Available(ctx))

	rec, err := a.Query(ctx, "count_purchase_orders", map[string]any{"vendor": "V-002"})
	require.NoError(t, err)
	assert.Equal(t, "purchase_order_count", rec.Kind)
	assert.Equal(t, "demo", rec.Source)
	// Canned fields win over echoed params on collision.
	assert.Equal(t, "V-001", rec.Fields["vendor"])
	assert.Equal(t, 7, rec.Fields["count"])

	// Params not in the canned record are echoed back.
	rec, err = a.Query(ctx, "get_inventory", map[string]any{"warehouse_note": "main"})
	require.NoError(t, err)
	assert.Equal(t, "main", rec.Fields["warehouse_note"])
}

func TestDemoAdapterUnsupportedOperation(t *testing.T) {
	a := NewDemoAdapter("erp", nil)

	_, err := a.Query(context.Background(), "drop_all_tables", nil)
	require.Error(t, err)
	assert.Equal(t, protocol.KindOperationUnsupported, protocol.KindOf(err))
}

func TestDemoAdapterAllowlist(t *testing.T) {
	a := NewDemoAdapter("erp", []string{"get_inventory"})

	assert.Equal(t, []string{"get_inventory"}, a.Operations())

	_, err := a.Query(context.Background(), "count_purchase_orders", nil)
	require.Error(t, err)
	assert.Equal(t, protocol.KindOperationUnsupported, protocol.KindOf(err))

	_, err = a.Query(context.Background(), "get_inventory", nil)
	assert.NoError(t, err)
}
