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

// Package push is the MQTT push listener (C7): it decrypts push envelopes
// through the same codec stack the HTTP transport uses, then routes decoded
// payloads to either the state store or a waiting command attempt.
package push

import (
	"encoding/json"
	"fmt"

	"github.com/nexavolt/vehiclecore/internal/envelope"
	"github.com/nexavolt/vehiclecore/internal/innercipher"
	"github.com/nexavolt/vehiclecore/internal/wbcodec"
)

// typeVehicleInfo and typeRemoteControl name the push payload kinds this listener knows how to
// route. Anything else is logged at debug level and dropped.
const (
	typeVehicleInfo  = "vehicleInfo"
	typeRemoteControl = "remoteControl"
)

// wireMessage mirrors the outer MQTT publish body: a white-box-encoded blob
// carrying a payload envelope whose data field holds the inner-encrypted
// respondData, same shape as an HTTP response but reached over MQTT.
type wireMessage struct {
	Type    string `json:"type"`
	Payload struct {
		Data struct {
			RespondData string `json:"respondData"`
		} `json:"data"`
	} `json:"payload"`
}

// decoded is one routable push message: its declared type, and the
// plaintext fields carried in respondData.
type decoded struct {
	Type   string
	Fields map[string]any
}

// decodeMessage reverses the wb-encode + inner-encrypt applied to every push
// publish, using the same primitives BuildRequest/ParseResponse use for HTTP.
func decodeMessage(raw []byte, contentKey string) (decoded, error) {
	outerJSON, err := wbcodec.DecodeFromWire(string(raw))
	if err != nil {
		return decoded{}, fmt.Errorf("push: white-box decode: %w", err)
	}

	var wm wireMessage
	if err := json.Unmarshal(outerJSON, &wm); err != nil {
		return decoded{}, fmt.Errorf("push: unmarshal envelope: %w", err)
	}

	if wm.Payload.Data.RespondData == "" {
		return decoded{Type: wm.Type}, nil
	}

	plain, err := innercipher.DecryptHex(envelope.ContentKeyBytes(contentKey), wm.Payload.Data.RespondData)
	if err != nil {
		return decoded{}, fmt.Errorf("push: decrypt respondData: %w", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(plain, &fields); err != nil {
		return decoded{}, fmt.Errorf("push: unmarshal respondData: %w", err)
	}

	return decoded{Type: wm.Type, Fields: fields}, nil
}
