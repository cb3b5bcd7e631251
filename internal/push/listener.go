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

package push

import (
	"context"
	"fmt"
	"time"

	"github.com/go-logr/logr"

	"github.com/nexavolt/vehiclecore/internal/metrics"
	"github.com/nexavolt/vehiclecore/internal/session"
	"github.com/nexavolt/vehiclecore/internal/state"
	"github.com/nexavolt/vehiclecore/pkg/mqtt"
	"github.com/nexavolt/vehiclecore/pkg/mqtt/topic"
)

// Listener owns the MQTT subscription for one user's push topic and routes
// decoded messages to the state store or a waiting command attempt.
type Listener struct {
	client  mqtt.Client
	holder  *session.Holder
	store   *state.Store
	waiters *Waiters
	metrics *metrics.Metrics
	log     logr.Logger
}

// NewListener wires an already-constructed MQTT client to the store and
// waiter registry. The client is not started; call Start.
func NewListener(client mqtt.Client, holder *session.Holder, store *state.Store, waiters *Waiters, m *metrics.Metrics, log logr.Logger) *Listener {
	if m == nil {
		m = metrics.New(nil)
	}
	return &Listener{client: client, holder: holder, store: store, waiters: waiters, metrics: m, log: log}
}

// Start connects the underlying MQTT client and subscribes to the push
// topic for userID. It blocks only long enough to send the subscribe
// packet; use AwaitConnection separately to wait for connectivity.
func (l *Listener) Start(ctx context.Context, userID string) error {
	if err := l.client.Start(ctx); err != nil {
		return fmt.Errorf("push: starting mqtt client: %w", err)
	}

	pushTopic := topic.NewBuilder().PushTopic(userID)
	if err := l.client.Subscribe(ctx, pushTopic, 1, l.handle); err != nil {
		return fmt.Errorf("push: subscribing to %s: %w", pushTopic, err)
	}
	return nil
}

// Stop disconnects the underlying MQTT client.
func (l *Listener) Stop(ctx context.Context) {
	l.client.Disconnect(ctx)
}

// AwaitConnection blocks until the underlying MQTT client is connected.
func (l *Listener) AwaitConnection(ctx context.Context) error {
	return l.client.AwaitConnection(ctx)
}

// handle is the mqtt.MessageHandler passed to Subscribe. A malformed
// envelope is dropped, never fatal to the listener: the caller (pkg/mqtt's
// dispatch) already recovers from a panicking handler, but decode errors
// here are handled explicitly so they can be logged and counted.
func (l *Listener) handle(_ context.Context, _ string, payload []byte) {
	sess, ok := l.holder.Get()
	if !ok {
		l.log.V(1).Info("push message received with no active session, dropping")
		return
	}

	msg, err := decodeMessage(payload, sess.ContentKey)
	if err != nil {
		l.log.V(1).Info("dropping undecodable push message", "error", err.Error())
		l.metrics.PushMessagesTotal.WithLabelValues("unknown", "decode_error").Inc()
		return
	}

	switch msg.Type {
	case typeVehicleInfo:
		l.routeVehicleInfo(msg.Fields)
	case typeRemoteControl:
		l.routeRemoteControl(msg.Fields)
	default:
		l.log.V(1).Info("dropping push message of unhandled type", "type", msg.Type)
		l.metrics.PushMessagesTotal.WithLabelValues("unknown", "dropped").Inc()
	}
}

func (l *Listener) routeVehicleInfo(fields map[string]any) {
	vin, _ := fields["vin"].(string)
	if vin == "" {
		l.log.V(1).Info("dropping vehicleInfo push with no vin")
		l.metrics.PushMessagesTotal.WithLabelValues(typeVehicleInfo, "no_vin").Inc()
		return
	}

	l.store.Apply(state.ApplyEvent{
		VIN:        vin,
		Section:    state.SectionRealtime,
		Origin:     state.OriginPush,
		ObservedAt: time.Now(),
		Fields:     fields,
	})
	l.metrics.PushMessagesTotal.WithLabelValues(typeVehicleInfo, "applied").Inc()
}

func (l *Listener) routeRemoteControl(fields map[string]any) {
	serial, _ := fields["requestSerial"].(string)
	if serial == "" {
		l.log.V(1).Info("dropping remoteControl push with no requestSerial")
		l.metrics.PushMessagesTotal.WithLabelValues(typeRemoteControl, "no_serial").Inc()
		return
	}

	if _, resolved := l.waiters.Resolve(serial, Result{Fields: fields}); resolved {
		l.metrics.PushMessagesTotal.WithLabelValues(typeRemoteControl, "resolved").Inc()
		return
	}
	l.metrics.PushMessagesTotal.WithLabelValues(typeRemoteControl, "unmatched").Inc()
}
