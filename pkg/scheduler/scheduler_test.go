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
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bestbox/bestbox/pkg/config"
	"github.com/bestbox/bestbox/pkg/protocol"
)

func singleDevice(timeoutSeconds int) *Scheduler {
	return New(config.GPUConfig{
		Devices:               []config.GPUDevice{{ID: "gpu0", Classes: []string{"llm-primary", "ocr-vl"}}},
		AcquireTimeoutSeconds: timeoutSeconds,
	})
}

func TestAcquireIsExclusive(t *testing.T) {
	s := singleDevice(1)
	ctx := context.Background()

	lease, err := s.Acquire(ctx, JobLLMPrimary, 0)
	require.NoError(t, err)
	assert.Equal(t, "gpu0", lease.DeviceID)

	// Device is held; the second acquire times out with ResourceBusy.
	_, err = s.Acquire(ctx, JobOCRVL, 0)
	require.Error(t, err)
	assert.Equal(t, protocol.KindResourceBusy, protocol.KindOf(err))

	lease.Release()

	lease2, err := s.Acquire(ctx, JobOCRVL, 0)
	require.NoError(t, err)
	lease2.Release()
}

func TestReleaseIsIdempotent(t *testing.T) {
	s := singleDevice(1)

	lease, err := s.Acquire(context.Background(), JobLLMPrimary, 0)
	require.NoError(t, err)
	lease.Release()
	lease.Release() // second release must not free the device twice

	lease2, err := s.Acquire(context.Background(), JobLLMPrimary, 0)
	require.NoError(t, err)
	lease2.Release()
}

func TestGrantOrderPriorityThenFIFO(t *testing.T) {
	s := singleDevice(5)
	ctx := context.Background()

	holder, err := s.Acquire(ctx, JobLLMPrimary, 0)
	require.NoError(t, err)

	grants := make(chan string, 3)
	acquire := func(name string, class JobClass, priority int) {
		lease, err := s.Acquire(ctx, class, priority)
		require.NoError(t, err)
		grants <- name
		lease.Release()
	}

	go acquire("low-first", JobOCRVL, 0)
	waitForQueue(t, s, 1)
	go acquire("high", JobLLMPrimary, 10)
	waitForQueue(t, s, 2)
	go acquire("low-second", JobOCRVL, 0)
	waitForQueue(t, s, 3)

	holder.Release()

	assert.Equal(t, "high", <-grants)
	assert.Equal(t, "low-first", <-grants)
	assert.Equal(t, "low-second", <-grants)
}

func TestCancelledContextYieldsResourceBusy(t *testing.T) {
	s := singleDevice(30)

	holder, err := s.Acquire(context.Background(), JobLLMPrimary, 0)
	require.NoError(t, err)
	defer holder.Release()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		waitForQueue(t, s, 1)
		cancel()
	}()

	_, err = s.Acquire(ctx, JobLLMPrimary, 0)
	require.Error(t, err)
	assert.Equal(t, protocol.KindResourceBusy, protocol.KindOf(err))
}

func TestUnknownClassRejected(t *testing.T) {
	s := New(config.GPUConfig{
		Devices:               []config.GPUDevice{{ID: "gpu0", Classes: []string{"llm-primary"}}},
		AcquireTimeoutSeconds: 1,
	})

	_, err := s.Acquire(context.Background(), JobOCRVL, 0)
	require.Error(t, err)
	assert.Equal(t, protocol.KindOperationUnsupported, protocol.KindOf(err))
}

func TestDefaultVirtualDevice(t *testing.T) {
	s := New(config.GPUConfig{AcquireTimeoutSeconds: 1})

	lease, err := s.Acquire(context.Background(), JobOCRVL, 0)
	require.NoError(t, err)
	assert.Equal(t, "gpu0", lease.DeviceID)
	lease.Release()

	status := s.Status()
	require.Len(t, status, 1)
	assert.False(t, status[0].Busy)
}

func waitForQueue(t *testing.T, s *Scheduler, depth int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		s.mu.Lock()
		n := len(s.waiters)
		s.mu.Unlock()
		if n >= depth {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("queue never reached depth %d", depth)
}
