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

// FetchEnergyConsumption retrieves consumption statistics and merges them
// into the vehicle's energy section.
func (a *Adapters) FetchEnergyConsumption(ctx context.Context, vin string) (map[string]any, error) {
	body, err := a.poster.PostAuthenticated(ctx, EndpointEnergyConsumption, map[string]string{"vin": vin})
	if err != nil {
		return nil, fmt.Errorf("adapters: fetch energy consumption %s: %w", vin, err)
	}

	fields, _, err := decodeWithSerial(body)
	if err != nil {
		return nil, fmt.Errorf("adapters: fetch energy consumption %s: %w", vin, err)
	}

	normalized := normalizeFields(fields, nil)
	a.store.Apply(state.ApplyEvent{
		VIN:        vin,
		Section:    state.SectionEnergy,
		Origin:     state.OriginREST,
		ObservedAt: time.Now(),
		Fields:     normalized,
	})
	return normalized, nil
}
