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

// FetchCharging retrieves the smart-charging home page and merges it into
// the vehicle's charging section. fullHour/fullMinute of -1 mean "no
// estimate available" and are normalized to absent per §6.
func (a *Adapters) FetchCharging(ctx context.Context, vin string) (map[string]any, error) {
	body, err := a.poster.PostAuthenticated(ctx, EndpointChargingHomePage, map[string]string{"vin": vin})
	if err != nil {
		return nil, fmt.Errorf("adapters: fetch charging %s: %w", vin, err)
	}

	fields, _, err := decodeWithSerial(body)
	if err != nil {
		return nil, fmt.Errorf("adapters: fetch charging %s: %w", vin, err)
	}

	normalized := normalizeFields(fields, chargingSentinels)
	a.store.Apply(state.ApplyEvent{
		VIN:        vin,
		Section:    state.SectionCharging,
		Origin:     state.OriginREST,
		ObservedAt: time.Now(),
		Fields:     normalized,
	})
	return normalized, nil
}
