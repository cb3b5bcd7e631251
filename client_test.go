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

package vehiclecore

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-logr/logr"

	"github.com/nexavolt/vehiclecore/internal/apierr"
	"github.com/nexavolt/vehiclecore/internal/envelope"
	"github.com/nexavolt/vehiclecore/internal/innercipher"
	"github.com/nexavolt/vehiclecore/internal/sign"
	"github.com/nexavolt/vehiclecore/internal/wbcodec"
)

const (
	testUsername   = "alice"
	testPassword   = "hunter2"
	testUserID     = "U1"
	testSignToken  = "SIGN-TOKEN-1"
	testEncryToken = "ENCRY-TOKEN-1"
	testVIN        = "VIN1"
)

type fakeInnerResponse struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	RespondData string `json:"respondData"`
}

type fakeResponseWire struct {
	Response string `json:"response"`
}

// respond writes a fully wrapped wire response (inner-encrypted and
// white-box-encoded; responses carry no signature), the way
// transport_test.go builds its fixtures, but
// with a real respondData payload encrypted under contentKeyHex -- the
// content key an authenticated caller of this endpoint would actually hold.
func respond(t *testing.T, w http.ResponseWriter, contentKeyHex string, payload any) {
	t.Helper()

	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal payload: %v", err)
	}
	respondData, err := innercipher.EncryptHex(envelope.ContentKeyBytes(contentKeyHex), payloadJSON)
	if err != nil {
		t.Fatalf("encrypt respondData: %v", err)
	}
	inner, err := json.Marshal(fakeInnerResponse{Code: "0", Message: "ok", RespondData: respondData})
	if err != nil {
		t.Fatalf("marshal inner: %v", err)
	}
	wbEncoded, err := wbcodec.EncodeToWire(inner)
	if err != nil {
		t.Fatalf("wbcodec encode: %v", err)
	}
	out, err := json.Marshal(fakeResponseWire{Response: wbEncoded})
	if err != nil {
		t.Fatalf("marshal wire: %v", err)
	}
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write(out)
}

// newFakeServer serves the three endpoints a Login plus one realtime fetch
// touches: login itself, the vehicle listing fetched concurrently with the
// push listener during Login, and the realtime trigger. The realtime
// response reports the vehicle online on the first trigger so the adapter
// never needs to poll.
func newFakeServer(t *testing.T) *httptest.Server {
	t.Helper()
	loginContentKey := sign.SignKeyFromToken(testPassword)
	sessionContentKey := sign.SignKeyFromToken(testEncryToken)

	mux := http.NewServeMux()
	mux.HandleFunc("/account/login", func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, loginContentKey, map[string]any{
			"token": map[string]string{
				"userId":     testUserID,
				"signToken":  testSignToken,
				"encryToken": testEncryToken,
			},
		})
	})
	mux.HandleFunc("/account/getAllListByUserId", func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, sessionContentKey, map[string]any{
			"list": []map[string]any{
				{
					"vin": testVIN,
					"rangeDetailList": []map[string]any{
						{"code": "control", "name": "Control", "children": []map[string]any{
							{"code": "full", "name": "Full control"},
						}},
					},
				},
			},
		})
	})
	mux.HandleFunc("/vehicleRealTimeRequest", func(w http.ResponseWriter, r *http.Request) {
		respond(t, w, sessionContentKey, map[string]any{
			"onlineState":   1,
			"time":          1700000000,
			"tempInCar":     22,
			"requestSerial": "S1",
		})
	})
	return httptest.NewServer(mux)
}

func newTestClient(srv *httptest.Server) *Client {
	return New(Config{
		Username:    testUsername,
		Password:    testPassword,
		CountryCode: "GB",
		Language:    "en",
		BaseURL:     srv.URL,
		DisableMQTT: true,
		Logger:      logr.Discard(),
	})
}

func TestClientLoginFetchesPermissionsAndRealtime(t *testing.T) {
	srv := newFakeServer(t)
	defer srv.Close()

	c := newTestClient(srv)
	ctx := context.Background()

	if err := c.Login(ctx); err != nil {
		t.Fatalf("Login: %v", err)
	}
	defer c.Close(ctx)

	if err := c.checkPermission(testVIN, BatteryHeat); err != nil {
		t.Fatalf("expected full control entitlement from login, got %v", err)
	}

	fields, err := c.FetchRealtime(ctx, testVIN)
	if err != nil {
		t.Fatalf("FetchRealtime: %v", err)
	}
	if online, _ := fields["onlineState"].(float64); online != 1 {
		t.Fatalf("expected onlineState 1, got %v", fields["onlineState"])
	}

	section := c.Section(testVIN, SectionRealtime)
	if online, _ := section["onlineState"].(float64); online != 1 {
		t.Fatalf("expected realtime section to hold the fetched fields, got %v", section)
	}
}

func TestClientVehiclesRefreshesPermissionSnapshot(t *testing.T) {
	srv := newFakeServer(t)
	defer srv.Close()

	c := newTestClient(srv)
	ctx := context.Background()

	if err := c.Login(ctx); err != nil {
		t.Fatalf("Login: %v", err)
	}
	defer c.Close(ctx)

	vehicles, err := c.Vehicles(ctx)
	if err != nil {
		t.Fatalf("Vehicles: %v", err)
	}
	if len(vehicles) != 1 || vehicles[0].VIN != testVIN {
		t.Fatalf("unexpected vehicle list: %+v", vehicles)
	}
}

// TestClientExecuteDeniedWithoutEntitlement checks that a command requiring
// full control fails locally against the cached permission snapshot,
// without ever reaching the network -- there is no remoteControl handler
// registered on this fake server, so a network attempt would fail the test
// with a 404 rather than the entitlement error being asserted for.
func TestClientExecuteDeniedWithoutEntitlement(t *testing.T) {
	srv := newFakeServer(t)
	defer srv.Close()

	c := newTestClient(srv)
	c.permMu.Lock()
	c.perms = map[string]Permission{testVIN: {HasFullControl: false}}
	c.permMu.Unlock()

	outcome, err := c.Execute(context.Background(), testVIN, BatteryHeat, nil)
	if outcome != Failure {
		t.Fatalf("expected Failure outcome, got %v", outcome)
	}
	var notSupported *apierr.EndpointNotSupportedError
	if !errors.As(err, &notSupported) {
		t.Fatalf("expected EndpointNotSupportedError, got %v", err)
	}
}
