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

package scheduler

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestbox/bestbox/pkg/protocol"
)

type fixedVL struct {
	blocks []OCRBlock
	calls  int
}

func (v *fixedVL) Recognize(ctx context.Context, page Page) ([]OCRBlock, error) {
	v.calls++
	return v.blocks, nil
}

func TestGatePassesCleanPagesWithoutEscalation(t *testing.T) {
	vl := &fixedVL{}
	esc := NewEscalator(singleDevice(1), vl)

	clean := []OCRBlock{{Text: "模具编号 T-1022 型腔数 4", Confidence: 0.93}}
	blocks, quality, err := esc.Gate(context.Background(), Page{DocID: "d1", Number: 1}, clean)
	require.NoError(t, err)
	assert.True(t, quality.OK)
	assert.Equal(t, clean, blocks)
	assert.Equal(t, 0, vl.calls, "clean pages must not touch the contended GPU")
}

func TestGateEscalatesFailedPages(t *testing.T) {
	vl := &fixedVL{blocks: []OCRBlock{{Text: "材质 NAK80 硬度 HRC40", Confidence: 0.91}}}
	esc := NewEscalator(singleDevice(1), vl)

	garbled := []OCRBlock{{Text: "", Confidence: 0.1}}
	blocks, quality, err := esc.Gate(context.Background(), Page{DocID: "d1", Number: 3}, garbled)
	require.NoError(t, err)
	assert.True(t, quality.OK)
	assert.Equal(t, vl.blocks, blocks)
	assert.Equal(t, 1, vl.calls)
}

func TestGateYieldsToHeldGPU(t *testing.T) {
	sched := singleDevice(1)
	vl := &fixedVL{blocks: []OCRBlock{{Text: "ok", Confidence: 0.9}}}
	esc := NewEscalator(sched, vl)

	// An interactive turn holds the device; escalation times out with
	// ResourceBusy and keeps the classical read.
	lease, err := sched.Acquire(context.Background(), JobLLMPrimary, 1)
	require.NoError(t, err)
	defer lease.Release()

	garbled := []OCRBlock{{Text: "", Confidence: 0.1}}
	blocks, quality, err := esc.Gate(context.Background(), Page{DocID: "d1", Number: 5}, garbled)
	require.Error(t, err)
	assert.Equal(t, protocol.KindResourceBusy, protocol.KindOf(err))
	assert.False(t, quality.OK)
	assert.Equal(t, garbled, blocks)
	assert.Equal(t, 0, vl.calls)
}

func TestGateWithoutRecognizerKeepsVerdict(t *testing.T) {
	esc := NewEscalator(singleDevice(1), nil)

	garbled := []OCRBlock{{Text: "", Confidence: 0.1}}
	blocks, quality, err := esc.Gate(context.Background(), Page{DocID: "d1", Number: 2}, garbled)
	require.NoError(t, err)
	assert.False(t, quality.OK)
	assert.Equal(t, garbled, blocks)
}
