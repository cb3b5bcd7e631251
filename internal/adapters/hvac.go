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

// unwrapStatusNow returns the "statusNow" object the endpoint nests its
// payload in, falling back to the top-level fields for a response that
// (for whatever reason) didn't nest it.
func unwrapStatusNow(fields map[string]any) map[string]any {
	if inner, ok := fields["statusNow"].(map[string]any); ok {
		return inner
	}
	return fields
}

// FetchHVAC retrieves the vehicle's current climate control status and
// merges it into the hvac section. Like realtime, tempInCar reports -129
// when the interior sensor reading is unavailable.
func (a *Adapters) FetchHVAC(ctx context.Context, vin string) (map[string]any, error) {
	body, err := a.poster.PostAuthenticated(ctx, EndpointStatusNow, map[string]string{"vin": vin})
	if err != nil {
		return nil, fmt.Errorf("adapters: fetch hvac %s: %w", vin, err)
	}

	fields, _, err := decodeWithSerial(body)
	if err != nil {
		return nil, fmt.Errorf("adapters: fetch hvac %s: %w", vin, err)
	}

	normalized := normalizeFields(unwrapStatusNow(fields), hvacSentinels)
	a.store.Apply(state.ApplyEvent{
		VIN:        vin,
		Section:    state.SectionHVAC,
		Origin:     state.OriginREST,
		ObservedAt: time.Now(),
		Fields:     normalized,
	})
	return normalized, nil
}
