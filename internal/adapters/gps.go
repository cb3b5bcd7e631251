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

// isGPSReady reports whether a GPS poll response carries anything beyond
// the bare requestSerial echo -- an empty result still round-trips the
// serial while the fix is pending.
func isGPSReady(fields map[string]any) bool {
	if len(fields) == 0 {
		return false
	}
	for k := range fields {
		if k != requestSerialField {
			return true
		}
	}
	return false
}

// FetchGPS drives the GPS trigger+poll pair and merges the result into the
// vehicle's gps section.
func (a *Adapters) FetchGPS(ctx context.Context, vin string) (map[string]any, error) {
	fields, err := a.pollUntilReady(ctx, EndpointGPSTrigger, EndpointGPSPoll,
		map[string]string{"vin": vin}, isGPSReady)
	if err != nil {
		return nil, fmt.Errorf("adapters: fetch gps %s: %w", vin, err)
	}

	normalized := normalizeFields(fields, nil)
	a.store.Apply(state.ApplyEvent{
		VIN:        vin,
		Section:    state.SectionGPS,
		Origin:     state.OriginREST,
		ObservedAt: observedAtOf(fields, time.Now()),
		Fields:     normalized,
	})
	return normalized, nil
}
