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

// Package envelope assembles and parses the outer wire envelope: the
// white-box-encoded JSON object carrying the signed, inner-encrypted
// payload. It is the one place the codec (wbcodec), the inner cipher
// (innercipher), and the signer (sign) are used together.
package envelope

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nexavolt/vehiclecore/internal/innercipher"
	"github.com/nexavolt/vehiclecore/internal/sign"
	"github.com/nexavolt/vehiclecore/internal/wbcodec"
)

// DeviceIdentity carries the device fields the outer envelope reports on
// every request. These are fixed per client instance.
type DeviceIdentity struct {
	OSType string
	IMEI   string
	MAC    string
	Model  string
	SDK    string
	Mod    string
}

// Identity carries everything about "who is calling" that does not change
// between requests: locale and device.
type Identity struct {
	CountryCode string
	Language    string
	Device      DeviceIdentity
}

// imeiMD5 hashes the device IMEI; it is recomputed on each call.
func (id Identity) imeiMD5() string {
	return sign.SignKeyFromToken(id.Device.IMEI)
}

// AuthKeys is the pair of derived keys a request signs and encrypts with.
// For an authenticated call these come from the session; for login they are
// both derived from the password.
type AuthKeys struct {
	Identifier string
	SignKey    string
	ContentKey string
}

// Builder constructs outer envelopes. Clock and RandomHex are overridable
// for deterministic tests.
type Builder struct {
	Identity  Identity
	Clock     func() time.Time
	RandomHex func() (string, error)
}

// NewBuilder returns a Builder using the real clock and crypto/rand source.
func NewBuilder(identity Identity) *Builder {
	return &Builder{
		Identity:  identity,
		Clock:     time.Now,
		RandomHex: randomHex32,
	}
}

func randomHex32() (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("envelope: generating random field: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// outer mirrors the wire JSON object exactly; field order does not matter
// for JSON but the tags must match the server's expected keys.
type outer struct {
	CountryCode  string `json:"countryCode"`
	Identifier   string `json:"identifier"`
	IMEIMD5      string `json:"imeiMD5"`
	Language     string `json:"language"`
	ReqTimestamp string `json:"reqTimestamp"`
	OSType       string `json:"ostype"`
	IMEI         string `json:"imei"`
	MAC          string `json:"mac"`
	Model        string `json:"model"`
	SDK          string `json:"sdk"`
	Mod          string `json:"mod"`
	ServiceTime  string `json:"serviceTime"`
	Sign         string `json:"sign"`
	Checkcode    string `json:"checkcode"`
	EncryData    string `json:"encryData"`
}

type requestWire struct {
	Request string `json:"request"`
}

type responseWire struct {
	Response string `json:"response"`
}

type innerResponse struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	RespondData string `json:"respondData"`
}

const (
	stdDeviceType   = "1"
	stdNetworkType  = "wifi"
	stdVersion      = "1"
	requestSerialFn = "requestSerial"
)

// BuildRequest assembles the wire string for a single call: standard inner
// fields plus innerExtras, encrypted under keys.ContentKey, then signed and
// wrapped in the white-box outer envelope.
func (b *Builder) BuildRequest(keys AuthKeys, innerExtras map[string]string) (string, error) {
	now := b.Clock()
	reqTimestamp := fmt.Sprintf("%d", now.UnixMilli())
	serviceTime := fmt.Sprintf("%d", now.Unix())

	random, err := b.RandomHex()
	if err != nil {
		return "", err
	}

	inner := make(map[string]string, len(innerExtras)+6)
	for k, v := range innerExtras {
		inner[k] = v
	}
	inner["deviceType"] = stdDeviceType
	inner["imeiMD5"] = b.Identity.imeiMD5()
	inner["networkType"] = stdNetworkType
	inner["random"] = random
	inner["timeStamp"] = reqTimestamp
	inner["version"] = stdVersion

	innerJSON, err := json.Marshal(inner)
	if err != nil {
		return "", fmt.Errorf("envelope: marshal inner payload: %w", err)
	}

	encryData, err := innercipher.EncryptHex(deriveContentKeyBytes(keys.ContentKey), innerJSON)
	if err != nil {
		return "", fmt.Errorf("envelope: encrypt inner payload: %w", err)
	}

	outerFields := sign.OuterFields{
		CountryCode:  b.Identity.CountryCode,
		Identifier:   keys.Identifier,
		IMEIMD5:      b.Identity.imeiMD5(),
		Language:     b.Identity.Language,
		ReqTimestamp: reqTimestamp,
		ServiceTime:  serviceTime,
	}

	o := outer{
		CountryCode:  outerFields.CountryCode,
		Identifier:   outerFields.Identifier,
		IMEIMD5:      outerFields.IMEIMD5,
		Language:     outerFields.Language,
		ReqTimestamp: outerFields.ReqTimestamp,
		OSType:       b.Identity.Device.OSType,
		IMEI:         b.Identity.Device.IMEI,
		MAC:          b.Identity.Device.MAC,
		Model:        b.Identity.Device.Model,
		SDK:          b.Identity.Device.SDK,
		Mod:          b.Identity.Device.Mod,
		ServiceTime:  outerFields.ServiceTime,
		Sign:         sign.Sign(inner, outerFields, keys.SignKey),
		Checkcode:    sign.Checkcode(outerFields, keys.SignKey),
		EncryData:    encryData,
	}

	outerJSON, err := json.Marshal(o)
	if err != nil {
		return "", fmt.Errorf("envelope: marshal outer payload: %w", err)
	}

	wbEncoded, err := wbcodec.EncodeToWire(outerJSON)
	if err != nil {
		return "", fmt.Errorf("envelope: white-box encode: %w", err)
	}

	wireJSON, err := json.Marshal(requestWire{Request: wbEncoded})
	if err != nil {
		return "", fmt.Errorf("envelope: marshal request wire: %w", err)
	}
	return string(wireJSON), nil
}

// ParseResponse reverses BuildRequest's wrapping: white-box decode, JSON
// parse, then (if respondData is non-empty) inner-AES decrypt with
// contentKey. respondData is nil, not an error, when the server sent none.
func (b *Builder) ParseResponse(wire string, contentKey string) (code, message string, respondData []byte, err error) {
	var rw responseWire
	if err := json.Unmarshal([]byte(wire), &rw); err != nil {
		return "", "", nil, fmt.Errorf("envelope: unmarshal response wire: %w", err)
	}

	outerJSON, err := wbcodec.DecodeFromWire(rw.Response)
	if err != nil {
		return "", "", nil, fmt.Errorf("envelope: white-box decode: %w", err)
	}

	var ir innerResponse
	if err := json.Unmarshal(outerJSON, &ir); err != nil {
		return "", "", nil, fmt.Errorf("envelope: unmarshal response body: %w", err)
	}

	if ir.RespondData == "" {
		return ir.Code, ir.Message, nil, nil
	}

	plain, err := innercipher.DecryptHex(deriveContentKeyBytes(contentKey), ir.RespondData)
	if err != nil {
		return "", "", nil, fmt.Errorf("envelope: decrypt respondData: %w", err)
	}
	return ir.Code, ir.Message, plain, nil
}

// ContentKeyBytes exposes deriveContentKeyBytes for callers outside this
// package that decrypt inner payloads without going through ParseResponse --
// namely the push listener, which decrypts MQTT-delivered payloads under the
// same session content key but never sees an HTTP response wire.
func ContentKeyBytes(hexKey string) [16]byte {
	return deriveContentKeyBytes(hexKey)
}

// deriveContentKeyBytes converts the 32-hex-char upper-hex content key
// string into the raw 16 bytes innercipher operates on.
func deriveContentKeyBytes(hexKey string) [16]byte {
	var out [16]byte
	raw, err := hex.DecodeString(hexKey)
	if err != nil || len(raw) != 16 {
		// contentKey is always MD5 output (16 bytes, 32 hex chars) by
		// construction; a mismatch here means a caller passed something
		// that was never derived through session.New or sign.SignKeyFromToken.
		return out
	}
	copy(out[:], raw)
	return out
}
