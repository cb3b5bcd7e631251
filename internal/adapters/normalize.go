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
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/nexavolt/vehiclecore/internal/state"
)

const requestSerialField = "requestSerial"

// decodeWithSerial unmarshals a response body into a generic field map and
// extracts its requestSerial, if any, for callers that need to carry it
// into a follow-up poll call.
func decodeWithSerial(body []byte) (map[string]any, string, error) {
	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return nil, "", fmt.Errorf("adapters: decoding response: %w", err)
	}
	serial, _ := fields[requestSerialField].(string)
	return fields, serial, nil
}

// normalizeFields copies raw into a new map, dropping keys whose value is
// one of the generic absent-sentinels (state.IsAbsent) or one of the
// endpoint-specific sentinels named in sentinelFields, and parsing numeric
// strings into float64 along the way. sentinelFields maps a field name to
// the raw numeric value that means "not available" for that field alone --
// tempInCar's -129 is meaningless for any other field, so it is never
// treated as generic.
func normalizeFields(raw map[string]any, sentinelFields map[string]float64) map[string]any {
	out := make(map[string]any, len(raw))
	for k, v := range raw {
		v = coerceNumericString(v)
		if state.IsAbsent(v) {
			continue
		}
		if want, ok := sentinelFields[k]; ok {
			if n, ok := asFloat64(v); ok && n == want {
				continue
			}
		}
		out[k] = v
	}
	return out
}

// coerceNumericString parses a string value that looks like a plain integer
// or float into a float64, leaving anything else (including non-numeric
// strings) untouched.
func coerceNumericString(v any) any {
	s, ok := v.(string)
	if !ok {
		return v
	}
	if s == "" || s == "--" {
		return v
	}
	if n, err := strconv.ParseFloat(s, 64); err == nil {
		return n
	}
	return v
}

func asFloat64(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	}
	return 0, false
}

// realtimeSentinels, chargingSentinels and hvacSentinels hold the
// endpoint-specific absent-value markers (cabin temperature -129,
// time-to-full -1), keyed by the raw field they apply to.
var (
	realtimeSentinels = map[string]float64{"tempInCar": -129}
	chargingSentinels = map[string]float64{"fullHour": -1, "fullMinute": -1}
	hvacSentinels     = map[string]float64{"tempInCar": -129}
)
