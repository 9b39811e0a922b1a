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

// Package scheduler arbitrates exclusive GPU leases between job classes.
// A device runs one job at a time; waiters queue FIFO within priority and
// running jobs are never preempted.
package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bestbox/bestbox/pkg/config"
	"github.com/bestbox/bestbox/pkg/observability"
	"github.com/bestbox/bestbox/pkg/protocol"
)

// JobClass identifies the workload a lease is for.
type JobClass string

const (
	JobLLMPrimary JobClass = "llm-primary"
	JobOCRVL      JobClass = "ocr-vl"
)

// Lease is an exclusive hold on one device. Release exactly once.
type Lease struct {
	DeviceID string
	Class    JobClass

	scheduler *Scheduler
	device    *device
	once      sync.Once
}

// Release frees the device and hands it to the next eligible waiter.
func (l *Lease) Release() {
	l.once.Do(func() {
		l.scheduler.release(l.device)
	})
}

type waiter struct {
	class    JobClass
	priority int
	seq      uint64
	grant    chan *device
}

type device struct {
	id      string
	classes map[JobClass]bool
	busy    bool
	holder  JobClass
	since   time.Time
}

// DeviceStatus is one row of Status output.
type DeviceStatus struct {
	ID        string        `json:"id"`
	Busy      bool          `json:"busy"`
	Holder    JobClass      `json:"holder,omitempty"`
	HeldFor   time.Duration `json:"held_for,omitempty"`
	QueueSize int           `json:"queue_size"`
}

// Scheduler owns the devices and the wait queue.
type Scheduler struct {
	mu             sync.Mutex
	devices        []*device
	waiters        []*waiter
	seq            uint64
	acquireTimeout time.Duration
}

// New builds a scheduler from config. A deployment with no devices gets a
// single virtual device that admits every class, so single-GPU boxes need
// no gpu section at all.
func New(cfg config.GPUConfig) *Scheduler {
	s := &Scheduler{
		acquireTimeout: time.Duration(cfg.AcquireTimeoutSeconds) * time.Second,
	}

	for _, dev := range cfg.Devices {
		classes := make(map[JobClass]bool, len(dev.Classes))
		for _, c := range dev.Classes {
			classes[JobClass(c)] = true
		}
		s.devices = append(s.devices, &device{id: dev.ID, classes: classes})
	}
	if len(s.devices) == 0 {
		s.devices = []*device{{
			id:      "gpu0",
			classes: map[JobClass]bool{JobLLMPrimary: true, JobOCRVL: true},
		}}
	}
	return s
}

// Acquire obtains an exclusive lease for the class, waiting up to the
// configured timeout behind earlier requests. Timing out or a cancelled
// context yields ResourceBusy so the API layer answers 429.
func (s *Scheduler) Acquire(ctx context.Context, class JobClass, priority int) (*Lease, error) {
	start := time.Now()

	s.mu.Lock()
	if dev := s.freeDevice(class); dev != nil {
		dev.busy = true
		dev.holder = class
		dev.since = time.Now()
		s.mu.Unlock()
		observability.ObserveSchedulerWait(string(class), time.Since(start))
		return &Lease{DeviceID: dev.id, Class: class, scheduler: s, device: dev}, nil
	}

	if !s.admits(class) {
		s.mu.Unlock()
		return nil, protocol.NewError(protocol.KindOperationUnsupported,
			fmt.Sprintf("no device admits job class %s", class))
	}

	w := &waiter{class: class, priority: priority, seq: s.seq, grant: make(chan *device, 1)}
	s.seq++
	s.waiters = append(s.waiters, w)
	s.mu.Unlock()

	timeout := s.acquireTimeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	select {
	case dev := <-w.grant:
		observability.ObserveSchedulerWait(string(class), time.Since(start))
		return &Lease{DeviceID: dev.id, Class: class, scheduler: s, device: dev}, nil
	case <-timer.C:
		s.abandon(w)
		return nil, protocol.NewError(protocol.KindResourceBusy,
			fmt.Sprintf("no %s capacity within %s", class, timeout))
	case <-ctx.Done():
		s.abandon(w)
		return nil, protocol.WrapError(protocol.KindResourceBusy,
			fmt.Sprintf("gave up waiting for %s capacity", class), ctx.Err())
	}
}

// Status reports per-device occupancy and total queue depth per device
// eligibility.
func (s *Scheduler) Status() []DeviceStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]DeviceStatus, len(s.devices))
	for i, dev := range s.devices {
		queued := 0
		for _, w := range s.waiters {
			if dev.classes[w.class] {
				queued++
			}
		}
		out[i] = DeviceStatus{ID: dev.id, Busy: dev.busy, QueueSize: queued}
		if dev.busy {
			out[i].Holder = dev.holder
			out[i].HeldFor = time.Since(dev.since)
		}
	}
	return out
}

// freeDevice returns an idle device admitting the class. Caller holds mu.
func (s *Scheduler) freeDevice(class JobClass) *device {
	for _, dev := range s.devices {
		if !dev.busy && dev.classes[class] {
			return dev
		}
	}
	return nil
}

// admits reports whether any device can ever serve the class. Caller holds mu.
func (s *Scheduler) admits(class JobClass) bool {
	for _, dev := range s.devices {
		if dev.classes[class] {
			return true
		}
	}
	return false
}

// release frees the device and grants it to the best waiter: highest
// priority first, then arrival order.
func (s *Scheduler) release(dev *device) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var best *waiter
	bestIdx := -1
	for i, w := range s.waiters {
		if !dev.classes[w.class] {
			continue
		}
		if best == nil || w.priority > best.priority || (w.priority == best.priority && w.seq < best.seq) {
			best = w
			bestIdx = i
		}
	}

	if best == nil {
		dev.busy = false
		dev.holder = ""
		return
	}

	s.waiters = append(s.waiters[:bestIdx], s.waiters[bestIdx+1:]...)
	dev.holder = best.class
	dev.since = time.Now()
	best.grant <- dev
}

// abandon removes a timed-out waiter. A grant racing the timeout is handed
// back so the device is not leaked.
func (s *Scheduler) abandon(w *waiter) {
	s.mu.Lock()
	for i, cand := range s.waiters {
		if cand == w {
			s.waiters = append(s.waiters[:i], s.waiters[i+1:]...)
			s.mu.Unlock()
			return
		}
	}
	s.mu.Unlock()

	// Not in the queue anymore, so the grant was already delivered to the
	// buffered channel under the lock. Take it and pass the device on.
	dev := <-w.grant
	s.release(dev)
}
