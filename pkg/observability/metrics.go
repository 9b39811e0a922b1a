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

// Package observability exposes the prometheus metrics the runtime and
// scheduler record.
package observability

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	turnsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bestbox_turns_total",
		Help: "Turns processed, by final status and routed domain.",
	}, []string{"status", "domain"})

	turnDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bestbox_turn_duration_seconds",
		Help:    "End-to-end turn latency.",
		Buckets: prometheus.ExponentialBuckets(0.25, 2, 10),
	}, []string{"domain"})

	toolCallsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "bestbox_tool_calls_total",
		Help: "Tool executions, by tool name and outcome.",
	}, []string{"tool", "outcome"})

	schedulerWait = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "bestbox_scheduler_wait_seconds",
		Help:    "Time spent waiting for a GPU lease, by job class.",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 12),
	}, []string{"class"})

	retrievalDegraded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bestbox_retrieval_degraded_total",
		Help: "Retrievals that fell back to sparse-only search.",
	})
)

// RecordTurn counts a finished turn.
func RecordTurn(status, domain string, duration time.Duration) {
	if domain == "" {
		domain = "unknown"
	}
	turnsTotal.WithLabelValues(status, domain).Inc()
	turnDuration.WithLabelValues(domain).Observe(duration.Seconds())
}

// RecordToolCall counts one tool execution.
func RecordToolCall(tool string, ok bool) {
	outcome := "ok"
	if !ok {
		outcome = "error"
	}
	toolCallsTotal.WithLabelValues(tool, outcome).Inc()
}

// ObserveSchedulerWait records GPU lease wait time.
func ObserveSchedulerWait(class string, wait time.Duration) {
	schedulerWait.WithLabelValues(class).Observe(wait.Seconds())
}

// RecordRetrievalDegraded counts a sparse-only fallback.
func RecordRetrievalDegraded() {
	retrievalDegraded.Inc()
}

// Handler serves the /metrics endpoint.
func Handler() http.Handler {
	return promhttp.Handler()
}
