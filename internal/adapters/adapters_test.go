package adapters

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/go-logr/logr"

	"github.com/nexavolt/vehiclecore/internal/envelope"
	"github.com/nexavolt/vehiclecore/internal/state"
)

type fakePoster struct {
	authenticated func(ctx context.Context, endpoint string, innerExtras map[string]string) ([]byte, error)
	login         func(ctx context.Context, endpoint string, innerExtras map[string]string, keys envelope.AuthKeys) ([]byte, error)
}

func (f *fakePoster) PostAuthenticated(ctx context.Context, endpoint string, innerExtras map[string]string) ([]byte, error) {
	return f.authenticated(ctx, endpoint, innerExtras)
}

func (f *fakePoster) PostLogin(ctx context.Context, endpoint string, innerExtras map[string]string, keys envelope.AuthKeys) ([]byte, error) {
	return f.login(ctx, endpoint, innerExtras, keys)
}

func jsonBody(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}

func TestLoginDerivesKeysFromPassword(t *testing.T) {
	var gotKeys envelope.AuthKeys
	poster := &fakePoster{
		login: func(_ context.Context, endpoint string, extras map[string]string, keys envelope.AuthKeys) ([]byte, error) {
			if endpoint != EndpointLogin {
				t.Fatalf("unexpected endpoint %s", endpoint)
			}
			if len(extras) != 0 {
				t.Fatalf("expected no inner extras for login, got %v", extras)
			}
			gotKeys = keys
			return jsonBody(t, loginResponse{Token: struct {
				UserID     string `json:"userId"`
				SignToken  string `json:"signToken"`
				EncryToken string `json:"encryToken"`
			}{UserID: "1434", SignToken: "S", EncryToken: "E"}}), nil
		},
	}

	a := New(poster, state.New(), Config{}, nil, logr.Discard())
	sess, err := a.Login(context.Background(), "u@x", "p", 12*time.Hour)
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if sess.UserID != "1434" {
		t.Fatalf("unexpected userID: %s", sess.UserID)
	}
	if gotKeys.Identifier != "u@x" {
		t.Fatalf("expected identifier to carry the username, got %s", gotKeys.Identifier)
	}
	if gotKeys.SignKey != gotKeys.ContentKey {
		t.Fatalf("expected login sign key and content key to both derive from the password")
	}
}

func TestFetchRealtimePollsUntilOnline(t *testing.T) {
	calls := 0
	poster := &fakePoster{
		authenticated: func(_ context.Context, endpoint string, extras map[string]string) ([]byte, error) {
			calls++
			switch endpoint {
			case EndpointRealtimeTrigger:
				return jsonBody(t, map[string]any{"onlineState": 0, "requestSerial": "ABC"}), nil
			case EndpointRealtimePoll:
				if extras["requestSerial"] != "ABC" {
					t.Fatalf("expected poll to carry the trigger's serial, got %v", extras)
				}
				if calls < 3 {
					return jsonBody(t, map[string]any{"onlineState": 0}), nil
				}
				return jsonBody(t, map[string]any{"onlineState": 1, "elecPercent": 70, "tempInCar": -129, "time": 1770817900}), nil
			default:
				t.Fatalf("unexpected endpoint %s", endpoint)
				return nil, nil
			}
		},
	}

	store := state.New()
	a := New(poster, store, Config{PollAttempts: 5, PollInterval: time.Millisecond}, nil, logr.Discard())

	fields, err := a.FetchRealtime(context.Background(), "VIN1")
	if err != nil {
		t.Fatalf("FetchRealtime: %v", err)
	}
	if fields["elecPercent"] != float64(70) {
		t.Fatalf("expected elecPercent=70, got %v", fields["elecPercent"])
	}
	if _, present := fields["tempInCar"]; present {
		t.Fatalf("expected tempInCar sentinel -129 to be normalized to absent")
	}

	snap := store.GetSection("VIN1", state.SectionRealtime)
	if snap["elecPercent"] != float64(70) {
		t.Fatalf("expected store to carry elecPercent, got %v", snap)
	}
}

func TestFetchGPSTreatsBareSerialAsNotReady(t *testing.T) {
	calls := 0
	poster := &fakePoster{
		authenticated: func(_ context.Context, endpoint string, extras map[string]string) ([]byte, error) {
			calls++
			switch endpoint {
			case EndpointGPSTrigger:
				return jsonBody(t, map[string]any{"requestSerial": "G1"}), nil
			case EndpointGPSPoll:
				if calls < 3 {
					return jsonBody(t, map[string]any{"requestSerial": "G1"}), nil
				}
				return jsonBody(t, map[string]any{"requestSerial": "G1", "lat": 1.23, "lng": 4.56}), nil
			default:
				t.Fatalf("unexpected endpoint %s", endpoint)
				return nil, nil
			}
		},
	}

	a := New(poster, state.New(), Config{PollAttempts: 5, PollInterval: time.Millisecond}, nil, logr.Discard())
	fields, err := a.FetchGPS(context.Background(), "VIN1")
	if err != nil {
		t.Fatalf("FetchGPS: %v", err)
	}
	if fields["lat"] != 1.23 {
		t.Fatalf("expected lat to be present once the fix resolves, got %v", fields)
	}
}

func TestFetchChargingNormalizesFullTimeSentinels(t *testing.T) {
	poster := &fakePoster{
		authenticated: func(_ context.Context, endpoint string, _ map[string]string) ([]byte, error) {
			return jsonBody(t, map[string]any{"fullHour": -1, "fullMinute": -1, "socPercent": 55}), nil
		},
	}

	a := New(poster, state.New(), Config{}, nil, logr.Discard())
	fields, err := a.FetchCharging(context.Background(), "VIN1")
	if err != nil {
		t.Fatalf("FetchCharging: %v", err)
	}
	if _, present := fields["fullHour"]; present {
		t.Fatalf("expected fullHour=-1 to normalize to absent")
	}
	if fields["socPercent"] != float64(55) {
		t.Fatalf("expected socPercent to survive normalization, got %v", fields)
	}
}

func TestFetchHVACUnwrapsStatusNowAndNormalizesTempSentinel(t *testing.T) {
	poster := &fakePoster{
		authenticated: func(_ context.Context, endpoint string, _ map[string]string) ([]byte, error) {
			if endpoint != EndpointStatusNow {
				t.Fatalf("unexpected endpoint %s", endpoint)
			}
			return jsonBody(t, map[string]any{
				"statusNow": map[string]any{"acSwitch": 1, "tempInCar": -129, "tempOutCar": 21.5},
			}), nil
		},
	}

	store := state.New()
	a := New(poster, store, Config{}, nil, logr.Discard())
	fields, err := a.FetchHVAC(context.Background(), "VIN1")
	if err != nil {
		t.Fatalf("FetchHVAC: %v", err)
	}
	if fields["acSwitch"] != float64(1) {
		t.Fatalf("expected acSwitch to be unwrapped from statusNow, got %v", fields)
	}
	if _, present := fields["tempInCar"]; present {
		t.Fatalf("expected tempInCar=-129 to normalize to absent")
	}
	if fields["tempOutCar"] != 21.5 {
		t.Fatalf("expected tempOutCar to survive normalization, got %v", fields)
	}

	snap := store.GetSection("VIN1", state.SectionHVAC)
	if snap["acSwitch"] != float64(1) {
		t.Fatalf("expected store to carry the hvac section, got %v", snap)
	}
}

func TestDerivePermissionRequiresFullControlChild(t *testing.T) {
	basicOnly := VehicleSummary{
		VIN: "VIN1",
		RangeDetailList: []EmpowerRange{
			{Code: "2", Name: "Control", Children: []EmpowerRange{{Name: "Basic control"}}},
		},
	}
	fullControl := VehicleSummary{
		VIN: "VIN2",
		RangeDetailList: []EmpowerRange{
			{Code: "2", Name: "Control", Children: []EmpowerRange{{Name: "Basic control"}, {Name: "Full control"}}},
		},
	}

	if derivePermission(basicOnly).HasFullControl {
		t.Fatalf("expected basic-only vehicle to lack full control")
	}
	if !derivePermission(fullControl).HasFullControl {
		t.Fatalf("expected full-control vehicle to be entitled")
	}
}

func TestDiscoverBrokerParsesHostPort(t *testing.T) {
	poster := &fakePoster{
		authenticated: func(_ context.Context, endpoint string, _ map[string]string) ([]byte, error) {
			if endpoint != EndpointBrokerDiscovery {
				t.Fatalf("unexpected endpoint %s", endpoint)
			}
			return jsonBody(t, brokerResponse{EmqBorker: "mqtt.example.com:8883"}), nil
		},
	}

	a := New(poster, state.New(), Config{}, nil, logr.Discard())
	host, port, err := a.DiscoverBroker(context.Background())
	if err != nil {
		t.Fatalf("DiscoverBroker: %v", err)
	}
	if host != "mqtt.example.com" || port != 8883 {
		t.Fatalf("unexpected host/port: %s:%d", host, port)
	}
}

func TestDiscoverBrokerDefaultsPortWhenAbsent(t *testing.T) {
	poster := &fakePoster{
		authenticated: func(context.Context, string, map[string]string) ([]byte, error) {
			return jsonBody(t, brokerResponse{EmqBroker: "mqtt.example.com"}), nil
		},
	}

	a := New(poster, state.New(), Config{}, nil, logr.Discard())
	_, port, err := a.DiscoverBroker(context.Background())
	if err != nil {
		t.Fatalf("DiscoverBroker: %v", err)
	}
	if port != 8883 {
		t.Fatalf("expected default TLS port 8883, got %d", port)
	}
}
