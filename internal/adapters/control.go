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
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/nexavolt/vehiclecore/internal/sign"
)

// VerifyControlPassword checks pin against the server before the caller
// bothers running a full remote command, surfacing a wrong-password error
// early rather than after a trigger round-trip.
func (a *Adapters) VerifyControlPassword(ctx context.Context, vin, pin string) (bool, error) {
	body, err := a.poster.PostAuthenticated(ctx, EndpointVerifyControlPwd, map[string]string{
		"vin":        vin,
		"commandPwd": sign.SignKeyFromToken(pin),
	})
	if err != nil {
		return false, fmt.Errorf("adapters: verify control password %s: %w", vin, err)
	}

	fields, _, err := decodeWithSerial(body)
	if err != nil {
		return false, fmt.Errorf("adapters: verify control password %s: %w", vin, err)
	}
	if len(fields) == 0 {
		return true, nil
	}
	if ok, present := fields["result"]; present {
		if s, isStr := ok.(string); isStr {
			return strings.EqualFold(s, "ok") || s == "1", nil
		}
	}
	return true, nil
}

type brokerResponse struct {
	EmqBroker string `json:"emqBroker"`
	// EmqBorker is the misspelled key the reference deployment actually
	// emits; kept alongside the corrected spelling since either may appear.
	EmqBorker string `json:"emqBorker"`
}

// DiscoverBroker retrieves the MQTT broker address for this session and
// returns it as host, port.
func (a *Adapters) DiscoverBroker(ctx context.Context) (string, int, error) {
	body, err := a.poster.PostAuthenticated(ctx, EndpointBrokerDiscovery, nil)
	if err != nil {
		return "", 0, fmt.Errorf("adapters: discover broker: %w", err)
	}

	var resp brokerResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", 0, fmt.Errorf("adapters: discover broker: decoding response: %w", err)
	}

	raw := resp.EmqBroker
	if raw == "" {
		raw = resp.EmqBorker
	}
	if raw == "" {
		return "", 0, fmt.Errorf("adapters: discover broker: response missing emqBroker/emqBorker")
	}
	return parseBrokerAddress(raw)
}

// parseBrokerAddress accepts a bare "host:port", a "host" with no port
// (defaulting to the standard TLS MQTT port 8883), or a "scheme://host:port"
// URL, tolerating a trailing path component.
func parseBrokerAddress(raw string) (string, int, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return "", 0, fmt.Errorf("adapters: empty broker address")
	}
	if idx := strings.Index(value, "://"); idx >= 0 {
		value = value[idx+3:]
	}
	if idx := strings.Index(value, "/"); idx >= 0 {
		value = value[:idx]
	}

	host, port, found := strings.Cut(value, ":")
	if !found {
		return value, 8883, nil
	}
	p, err := strconv.Atoi(port)
	if err != nil {
		return "", 0, fmt.Errorf("adapters: invalid broker port %q: %w", port, err)
	}
	return host, p, nil
}
