// Copyright 2025 The Nexavolt Authors.
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

// Package metrics is C11: the Prometheus instrumentation surface for a
// vehiclecore instance. Unlike a standalone service, this is an embeddable
// library, so every metric is registered against a caller-supplied
// prometheus.Registerer rather than the global default registry.
package metrics

import "github.com/prometheus/client_golang/prometheus"

// Metrics bundles every counter/histogram this core instance emits.
type Metrics struct {
	RequestsTotal      *prometheus.CounterVec
	RequestDuration    *prometheus.HistogramVec
	PushMessagesTotal  *prometheus.CounterVec
	CommandOutcomes    *prometheus.CounterVec
	SessionInvalidated prometheus.Counter
}

// New creates and registers the metrics against reg. Passing nil is valid
// and yields unregistered collectors that still count but are never
// exported, for callers that do not want Prometheus wired in at all.
func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vehiclecore_requests_total",
			Help: "Total number of endpoint requests, by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "vehiclecore_request_duration_seconds",
			Help:    "Latency of endpoint requests, by endpoint.",
			Buckets: prometheus.DefBuckets,
		}, []string{"endpoint"}),
		PushMessagesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vehiclecore_push_messages_total",
			Help: "Total number of MQTT push messages received, by envelope type and outcome.",
		}, []string{"type", "outcome"}),
		CommandOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "vehiclecore_command_outcomes_total",
			Help: "Total number of command attempts resolved, by command code and outcome.",
		}, []string{"code", "outcome"}),
		SessionInvalidated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "vehiclecore_session_invalidations_total",
			Help: "Total number of times the session was invalidated by a server-signaled expiry.",
		}),
	}

	if reg == nil {
		return m
	}
	reg.MustRegister(m.RequestsTotal, m.RequestDuration, m.PushMessagesTotal, m.CommandOutcomes, m.SessionInvalidated)
	return m
}
