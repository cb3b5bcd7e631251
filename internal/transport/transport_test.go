package transport

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-logr/logr"

	"github.com/nexavolt/vehiclecore/internal/apierr"
	"github.com/nexavolt/vehiclecore/internal/envelope"
	"github.com/nexavolt/vehiclecore/internal/metrics"
	"github.com/nexavolt/vehiclecore/internal/session"
	"github.com/nexavolt/vehiclecore/internal/sign"
	"github.com/nexavolt/vehiclecore/internal/wbcodec"
)

type innerResponseWire struct {
	Code        string `json:"code"`
	Message     string `json:"message"`
	RespondData string `json:"respondData"`
}

type responseWireEnvelope struct {
	Response string `json:"response"`
}

func newServerReturningCode(t *testing.T, code string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := json.Marshal(innerResponseWire{Code: code, Message: "ok"})
		wbEncoded, err := wbcodec.EncodeToWire(body)
		if err != nil {
			t.Fatalf("encode: %v", err)
		}
		out, _ := json.Marshal(responseWireEnvelope{Response: wbEncoded})
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(out)
	}))
}

func testTransport(t *testing.T, srv *httptest.Server, classify ErrorClassifier) (*Transport, *session.Holder) {
	t.Helper()
	holder := session.NewHolder()
	builder := envelope.NewBuilder(envelope.Identity{CountryCode: "GB", Language: "en"})

	tr, err := New(Config{BaseURL: srv.URL}, builder, holder, classify, func(error) bool { return false }, metrics.New(nil), logr.Discard())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return tr, holder
}

func TestPostAuthenticatedRequiresSession(t *testing.T) {
	srv := newServerReturningCode(t, "0")
	defer srv.Close()

	tr, _ := testTransport(t, srv, func(string, string, string) error { return nil })
	if _, err := tr.PostAuthenticated(context.Background(), "control/getStatusNow", nil); err != ErrSessionRequired {
		t.Fatalf("expected ErrSessionRequired, got %v", err)
	}
}

func TestPostAuthenticatedSuccess(t *testing.T) {
	srv := newServerReturningCode(t, "0")
	defer srv.Close()

	tr, holder := testTransport(t, srv, func(code, _, _ string) error {
		if code == "0" || code == "" {
			return nil
		}
		return errAPIStub{code}
	})
	holder.Replace(session.New("1434", "S", "E", time.Hour, time.Now()))

	data, err := tr.PostAuthenticated(context.Background(), "control/getStatusNow", map[string]string{"vin": "V1"})
	if err != nil {
		t.Fatalf("PostAuthenticated: %v", err)
	}
	if data != nil {
		t.Fatalf("expected nil respondData, got %v", data)
	}
}

func TestPostAuthenticatedWrapsExhaustedNetworkRetriesAsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	holder := session.NewHolder()
	builder := envelope.NewBuilder(envelope.Identity{CountryCode: "GB", Language: "en"})
	tr, err := New(Config{BaseURL: srv.URL, MaxNetworkRetries: 1}, builder, holder, func(string, string, string) error { return nil },
		func(error) bool { return false }, metrics.New(nil), logr.Discard())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	holder.Replace(session.New("1434", "S", "E", time.Hour, time.Now()))

	_, err = tr.PostAuthenticated(context.Background(), "control/getStatusNow", map[string]string{"vin": "V1"})
	if err == nil {
		t.Fatalf("expected exhausted 5xx retries to return an error")
	}
	var netErr *apierr.NetworkError
	if !errors.As(err, &netErr) {
		t.Fatalf("expected *apierr.NetworkError, got %T: %v", err, err)
	}
	if netErr.Endpoint != "control/getStatusNow" {
		t.Fatalf("unexpected endpoint on NetworkError: %s", netErr.Endpoint)
	}
}

func TestPostAuthenticatedInvalidatesSessionOnClassifiedError(t *testing.T) {
	srv := newServerReturningCode(t, "1002")
	defer srv.Close()

	holder := session.NewHolder()
	builder := envelope.NewBuilder(envelope.Identity{})
	invalidated := false

	tr, err := New(Config{BaseURL: srv.URL}, builder, holder, func(code, _, _ string) error {
		if code == "1002" {
			return errAPIStub{code}
		}
		return nil
	}, func(error) bool { invalidated = true; return true }, metrics.New(nil), logr.Discard())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	holder.Replace(session.New("1434", "S", "E", time.Hour, time.Now()))

	if _, err := tr.PostAuthenticated(context.Background(), "control/getStatusNow", nil); err == nil {
		t.Fatalf("expected error")
	}
	if !invalidated {
		t.Fatalf("expected session invalidation to be signaled")
	}
	if _, ok := holder.Get(); ok {
		t.Fatalf("expected session to be cleared")
	}
}

func TestPostLoginUsesExplicitKeys(t *testing.T) {
	srv := newServerReturningCode(t, "0")
	defer srv.Close()

	tr, _ := testTransport(t, srv, func(string, string, string) error { return nil })
	keys := envelope.AuthKeys{Identifier: "u@x", SignKey: sign.SignKeyFromToken("p"), ContentKey: sign.SignKeyFromToken("p")}

	if _, err := tr.PostLogin(context.Background(), "account/login", map[string]string{}, keys); err != nil {
		t.Fatalf("PostLogin: %v", err)
	}
}

type errAPIStub struct{ code string }

func (e errAPIStub) Error() string { return "api error " + e.code }
