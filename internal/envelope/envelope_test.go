package envelope

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/nexavolt/vehiclecore/internal/sign"
	"github.com/nexavolt/vehiclecore/internal/wbcodec"
)

func encodeForTest(plain []byte) (string, error) {
	return wbcodec.EncodeToWire(plain)
}

func testBuilder() *Builder {
	b := NewBuilder(Identity{
		CountryCode: "GB",
		Language:    "en",
		Device: DeviceIdentity{
			OSType: "android",
			IMEI:   "IMEI123",
			MAC:    "AA:BB:CC:DD:EE:FF",
			Model:  "Pixel",
			SDK:    "34",
			Mod:    "google",
		},
	})
	b.Clock = func() time.Time { return time.Unix(1770817900, 0) }
	b.RandomHex = func() (string, error) { return "deadbeefdeadbeefdeadbeefdeadbeef", nil }
	return b
}

func TestBuildRequestProducesRequestEnvelope(t *testing.T) {
	b := testBuilder()
	keys := AuthKeys{
		Identifier: "1434",
		SignKey:    "SIGNKEY",
		ContentKey: sign.SignKeyFromToken("password"),
	}

	wire, err := b.BuildRequest(keys, map[string]string{"vin": "LSJA1234567890"})
	if err != nil {
		t.Fatalf("BuildRequest: %v", err)
	}

	var rw requestWire
	if err := json.Unmarshal([]byte(wire), &rw); err != nil {
		t.Fatalf("unmarshal wire: %v", err)
	}
	if rw.Request == "" {
		t.Fatalf("expected non-empty request field")
	}
	if rw.Request[0] != 'F' {
		t.Fatalf("expected white-box wire prefix F, got %q", rw.Request[:1])
	}
}

func TestParseResponseNoRespondData(t *testing.T) {
	b := testBuilder()
	contentKey := sign.SignKeyFromToken("password")

	// Build a response envelope by hand, mirroring what BuildRequest does
	// for a request but for the response shape.
	inner := innerResponse{Code: "0", Message: "ok"}
	innerJSON, _ := json.Marshal(inner)

	wbEncoded, err := encodeForTest(innerJSON)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	wire, _ := json.Marshal(responseWire{Response: wbEncoded})

	code, message, data, err := b.ParseResponse(string(wire), contentKey)
	if err != nil {
		t.Fatalf("ParseResponse: %v", err)
	}
	if code != "0" || message != "ok" {
		t.Fatalf("unexpected code/message: %s/%s", code, message)
	}
	if data != nil {
		t.Fatalf("expected nil respondData, got %v", data)
	}
}
