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

package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/nexavolt/vehiclecore/internal/state"
)

func isOnline(fields map[string]any) bool {
	n, ok := asFloat64(fields["onlineState"])
	return ok && n == 1
}

// observedAtOf reads the response's "time" field (epoch seconds) as the
// event's observedAt, falling back to now if the field is absent -- a stale
// (onlineState=0) response still needs a timestamp to compete fairly in the
// store's merge order.
func observedAtOf(fields map[string]any, fallback time.Time) time.Time {
	n, ok := asFloat64(fields["time"])
	if !ok {
		return fallback
	}
	return time.Unix(int64(n), 0)
}

// FetchRealtime drives the realtime trigger+poll pair and merges the
// resulting fields into the vehicle's realtime section. The response is
// applied to the store even when the vehicle stayed offline through every
// poll attempt, since a caller reading the section afterward should see the
// dropped-sentinel-normalized snapshot the server actually returned.
func (a *Adapters) FetchRealtime(ctx context.Context, vin string) (map[string]any, error) {
	fields, err := a.pollUntilReady(ctx, EndpointRealtimeTrigger, EndpointRealtimePoll,
		map[string]string{"vin": vin}, isOnline)
	if err != nil {
		return nil, fmt.Errorf("adapters: fetch realtime %s: %w", vin, err)
	}

	if !isOnline(fields) {
		a.log.V(1).Info("realtime poll exhausted with vehicle still offline", "vin", vin)
	}

	normalized := normalizeFields(fields, realtimeSentinels)
	a.store.Apply(state.ApplyEvent{
		VIN:        vin,
		Section:    state.SectionRealtime,
		Origin:     state.OriginREST,
		ObservedAt: observedAtOf(fields, time.Now()),
		Fields:     normalized,
	})
	return normalized, nil
}
