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

package wbcodec

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// wirePrefix marks every on-the-wire artifact string. Consistent with the
// vendor's own framing, a bare base64 payload without this marker is
// rejected rather than guessed at.
const wirePrefix = "F"

// EncodeToWire runs Encode and text-encodes the result as "F" + standard
// base64, so it is both self-identifying and safe to embed as a JSON string
// value.
func EncodeToWire(plain []byte) (string, error) {
	cipherBytes, err := Encode(plain)
	if err != nil {
		return "", err
	}
	return wirePrefix + base64.StdEncoding.EncodeToString(cipherBytes), nil
}

// DecodeFromWire reverses EncodeToWire. It tolerates incidental whitespace
// and URL-safe base64 alphabet substitutions, since intermediary transports
// occasionally introduce both.
func DecodeFromWire(wire string) ([]byte, error) {
	cleaned := normalizeWire(wire)
	if !strings.HasPrefix(cleaned, wirePrefix) {
		return nil, fmt.Errorf("wbcodec: wire payload must start with %q", wirePrefix)
	}
	cleaned = cleaned[len(wirePrefix):]

	if rem := len(cleaned) % 4; rem != 0 {
		cleaned += strings.Repeat("=", 4-rem)
	}

	cipherBytes, err := base64.StdEncoding.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("wbcodec: invalid base64 wire payload: %w", err)
	}
	return Decode(cipherBytes)
}

func normalizeWire(s string) string {
	replacer := strings.NewReplacer(" ", "", "\t", "", "\n", "", "\r", "", "-", "+", "_", "/")
	return replacer.Replace(strings.TrimSpace(s))
}
