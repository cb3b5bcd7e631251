package command

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/go-logr/logr"

	"github.com/nexavolt/vehiclecore/internal/apierr"
	"github.com/nexavolt/vehiclecore/internal/push"
	"github.com/nexavolt/vehiclecore/internal/state"
)

func jsonBody(t *testing.T, v any) []byte {
	t.Helper()
	b, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	return b
}

func TestExecuteImmediateSuccessAppliesOverlay(t *testing.T) {
	store := state.New()
	waiters := push.NewWaiters()

	trigger := func(_ context.Context, endpoint string, _ map[string]string) ([]byte, error) {
		if endpoint != triggerEndpoint {
			t.Fatalf("unexpected endpoint %s", endpoint)
		}
		return jsonBody(t, triggerResponse{ControlState: 1, RequestSerial: "S1"}), nil
	}

	o := New(Config{ControlPIN: "1234", MQTTTimeout: 10 * time.Millisecond, PollInterval: time.Millisecond, PollAttempts: 1}, trigger, waiters, store, nil, nil, logr.Discard())

	outcome, err := o.Execute(context.Background(), "VIN1", Lock, nil)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if outcome != Success {
		t.Fatalf("expected Success, got %v", outcome)
	}

	snap := store.GetSection("VIN1", state.SectionRealtime)
	if snap["doorLock"] != "Locked" {
		t.Fatalf("expected optimistic doorLock=Locked, got %v", snap["doorLock"])
	}
}

func TestExecuteMQTTFastPath(t *testing.T) {
	store := state.New()
	waiters := push.NewWaiters()

	trigger := func(context.Context, string, map[string]string) ([]byte, error) {
		return jsonBody(t, triggerResponse{ControlState: 0, RequestSerial: "X1"}), nil
	}

	o := New(Config{ControlPIN: "1234", MQTTTimeout: time.Second, PollInterval: time.Millisecond, PollAttempts: 1}, trigger, waiters, store, nil, nil, logr.Discard())

	done := make(chan struct{})
	go func() {
		outcome, err := o.Execute(context.Background(), "VIN1", Lock, nil)
		if err != nil {
			t.Errorf("Execute: %v", err)
		}
		if outcome != Success {
			t.Errorf("expected Success, got %v", outcome)
		}
		close(done)
	}()

	// Give Execute a moment to register the waiter before resolving it.
	time.Sleep(20 * time.Millisecond)
	if resolved, ok := waiters.Resolve("X1", push.Result{Fields: map[string]any{"controlState": 1.0}}); !ok {
		t.Fatalf("expected a waiter to be registered")
	} else if resolved.VIN != "VIN1" {
		t.Fatalf("unexpected waiter key: %+v", resolved)
	}

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for Execute to resolve")
	}
}

func TestExecutePollFallback(t *testing.T) {
	store := state.New()
	waiters := push.NewWaiters()

	pollCount := 0
	trigger := func(_ context.Context, endpoint string, extras map[string]string) ([]byte, error) {
		if endpoint == triggerEndpoint {
			return jsonBody(t, triggerResponse{ControlState: 0, RequestSerial: "X2"}), nil
		}
		pollCount++
		if pollCount < 2 {
			return jsonBody(t, map[string]any{"controlState": 0}), nil
		}
		return jsonBody(t, map[string]any{"controlState": 1}), nil
	}

	o := New(Config{ControlPIN: "1234", MQTTTimeout: 10 * time.Millisecond, PollInterval: time.Millisecond, PollAttempts: 5}, trigger, waiters, store, nil, nil, logr.Discard())

	outcome, err := o.Execute(context.Background(), "VIN1", Unlock, nil)
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if outcome != Success {
		t.Fatalf("expected Success, got %v", outcome)
	}
	if pollCount < 2 {
		t.Fatalf("expected at least 2 polls, got %d", pollCount)
	}
}

func TestExecuteRemoteControlFailure(t *testing.T) {
	store := state.New()
	waiters := push.NewWaiters()

	trigger := func(context.Context, string, map[string]string) ([]byte, error) {
		return jsonBody(t, triggerResponse{ControlState: 2, RequestSerial: "X3"}), nil
	}

	o := New(Config{ControlPIN: "1234", MQTTTimeout: 10 * time.Millisecond, PollInterval: time.Millisecond, PollAttempts: 1}, trigger, waiters, store, nil, nil, logr.Discard())

	outcome, err := o.Execute(context.Background(), "VIN1", FlashLights, nil)
	if outcome != Failure {
		t.Fatalf("expected Failure, got %v", outcome)
	}
	var rcErr *apierr.RemoteControlFailureError
	if !errors.As(err, &rcErr) {
		t.Fatalf("expected RemoteControlFailureError, got %T: %v", err, err)
	}
}

func TestExecuteUnknownCodeIsUnsupported(t *testing.T) {
	store := state.New()
	waiters := push.NewWaiters()
	trigger := func(context.Context, string, map[string]string) ([]byte, error) {
		t.Fatalf("trigger should not be called for an unmapped code")
		return nil, nil
	}

	o := New(Config{ControlPIN: "1234"}, trigger, waiters, store, nil, nil, logr.Discard())

	_, err := o.Execute(context.Background(), "VIN1", Code("NOT_A_REAL_CODE"), nil)
	var notSupported *apierr.EndpointNotSupportedError
	if !errors.As(err, &notSupported) {
		t.Fatalf("expected EndpointNotSupportedError, got %T: %v", err, err)
	}
}

func TestExecuteWrongPINLocksOutSubsequentAttempts(t *testing.T) {
	store := state.New()
	waiters := push.NewWaiters()
	calls := 0
	trigger := func(context.Context, string, map[string]string) ([]byte, error) {
		calls++
		return nil, &apierr.ControlPasswordWrongError{Endpoint: triggerEndpoint}
	}

	o := New(Config{ControlPIN: "1234", RateLimitTries: 1}, trigger, waiters, store, nil, nil, logr.Discard())

	_, err := o.Execute(context.Background(), "VIN1", Lock, nil)
	var wrong *apierr.ControlPasswordWrongError
	if !errors.As(err, &wrong) {
		t.Fatalf("expected ControlPasswordWrongError, got %T: %v", err, err)
	}
	if calls != 1 {
		t.Fatalf("expected exactly one network call before the wrong-PIN response, got %d", calls)
	}

	_, err = o.Execute(context.Background(), "VIN1", Lock, nil)
	var locked *apierr.ControlPasswordLockedError
	if !errors.As(err, &locked) {
		t.Fatalf("expected the next Execute to short-circuit with ControlPasswordLockedError, got %T: %v", err, err)
	}
	if calls != 1 {
		t.Fatalf("expected no network call once locked out, got %d total calls", calls)
	}
}

func TestExecuteLockedPINRejectsWithoutNetworkCall(t *testing.T) {
	store := state.New()
	waiters := push.NewWaiters()
	calls := 0
	trigger := func(context.Context, string, map[string]string) ([]byte, error) {
		calls++
		return nil, &apierr.ControlPasswordLockedError{Endpoint: triggerEndpoint}
	}

	o := New(Config{ControlPIN: "1234", RateLimitTries: 1}, trigger, waiters, store, nil, nil, logr.Discard())

	if _, err := o.Execute(context.Background(), "VIN1", Lock, nil); err == nil {
		t.Fatalf("expected an error from the locked-PIN response")
	}
	if _, err := o.Execute(context.Background(), "VIN1", Lock, nil); !errors.As(err, new(*apierr.ControlPasswordLockedError)) {
		t.Fatalf("expected the second Execute to short-circuit locally, got %v", err)
	}
	if calls != 1 {
		t.Fatalf("expected the second Execute not to touch the network, got %d total calls", calls)
	}
}

func TestExecuteRateLimitPersistenceBecomesEndpointNotSupported(t *testing.T) {
	store := state.New()
	waiters := push.NewWaiters()
	calls := 0
	trigger := func(context.Context, string, map[string]string) ([]byte, error) {
		calls++
		return nil, &apierr.RateLimitedError{Endpoint: triggerEndpoint}
	}

	o := New(Config{ControlPIN: "1234", RateLimitTries: 2}, trigger, waiters, store, nil, nil, logr.Discard())

	outcome, err := o.Execute(context.Background(), "VIN1", Lock, nil)
	if outcome != Failure {
		t.Fatalf("expected Failure, got %v", outcome)
	}
	var notSupported *apierr.EndpointNotSupportedError
	if !errors.As(err, &notSupported) {
		t.Fatalf("expected persistent rate limiting to convert to EndpointNotSupportedError, got %T: %v", err, err)
	}
	if calls != 3 {
		t.Fatalf("expected 1 initial attempt + 2 retries = 3 calls, got %d", calls)
	}
}

func TestExecuteCancelledContextReportsCancelled(t *testing.T) {
	store := state.New()
	waiters := push.NewWaiters()
	trigger := func(context.Context, string, map[string]string) ([]byte, error) {
		return jsonBody(t, triggerResponse{ControlState: 0, RequestSerial: "X4"}), nil
	}

	o := New(Config{ControlPIN: "1234", MQTTTimeout: time.Second, PollInterval: time.Millisecond, PollAttempts: 1}, trigger, waiters, store, nil, nil, logr.Discard())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	var outcome Outcome
	var err error
	go func() {
		outcome, err = o.Execute(ctx, "VIN1", Lock, nil)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for Execute to resolve after cancellation")
	}
	if outcome != Cancelled {
		t.Fatalf("expected Cancelled, got %v (err=%v)", outcome, err)
	}
}

func TestExecutePermissionDenied(t *testing.T) {
	store := state.New()
	waiters := push.NewWaiters()
	trigger := func(context.Context, string, map[string]string) ([]byte, error) {
		t.Fatalf("trigger should not be called when permission check fails")
		return nil, nil
	}
	deny := func(vin string, code Code) error {
		return &apierr.EndpointNotSupportedError{Endpoint: triggerEndpoint, Reason: "not entitled"}
	}

	o := New(Config{ControlPIN: "1234"}, trigger, waiters, store, deny, nil, logr.Discard())

	_, err := o.Execute(context.Background(), "VIN1", BatteryHeat, nil)
	var notSupported *apierr.EndpointNotSupportedError
	if !errors.As(err, &notSupported) {
		t.Fatalf("expected EndpointNotSupportedError, got %T: %v", err, err)
	}
}
