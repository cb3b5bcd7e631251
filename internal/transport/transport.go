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

// Package transport is the secure HTTP transport (C6): it wraps the
// envelope builder/parser with a retrying POST, a shared cookie jar, and
// the mapping from raw server response codes to the vehiclecore error
// taxonomy.
package transport

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-logr/logr"

	"github.com/nexavolt/vehiclecore/internal/apierr"
	"github.com/nexavolt/vehiclecore/internal/envelope"
	"github.com/nexavolt/vehiclecore/internal/metrics"
	"github.com/nexavolt/vehiclecore/internal/session"
)

// ErrorClassifier maps a raw server (code, message) to a concrete error, or
// nil for success. Injected from the root package rather than imported
// directly, since the root package is the one that wires transport up and
// depending on it here would form an import cycle.
type ErrorClassifier func(code, message, endpoint string) error

// SessionInvalidator reports whether err signals that the session backing
// this call should be invalidated.
type SessionInvalidator func(err error) bool

// ErrSessionRequired is returned when an authenticated call is attempted
// with no session established yet.
var ErrSessionRequired = errors.New("transport: session required")

// Config configures the transport's fixed, request-independent behavior.
type Config struct {
	BaseURL     string
	UserAgent   string
	HTTPTimeout time.Duration

	// MaxNetworkRetries bounds the exponential backoff retry loop for
	// network-level failures and 5xx responses (base 0.5s, factor 2, ±20%
	// jitter). It counts retries after the first attempt; the default of 2
	// gives 3 attempts in all.
	MaxNetworkRetries uint64
}

func (c Config) withDefaults() Config {
	if c.UserAgent == "" {
		c.UserAgent = "okhttp/4.12.0"
	}
	if c.HTTPTimeout == 0 {
		c.HTTPTimeout = 30 * time.Second
	}
	if c.MaxNetworkRetries == 0 {
		c.MaxNetworkRetries = 2
	}
	return c
}

// Transport is the secure HTTP transport described in §4.6.
type Transport struct {
	cfg      Config
	client   *http.Client
	builder  *envelope.Builder
	holder   *session.Holder
	classify ErrorClassifier
	invalid  SessionInvalidator
	metrics  *metrics.Metrics
	log      logr.Logger
}

// New builds a Transport with its own cookie jar, shared across every call
// made through this instance. A nil m is replaced with an unregistered
// metrics.Metrics so callers that do not care about observability do not
// have to construct one.
func New(cfg Config, builder *envelope.Builder, holder *session.Holder, classify ErrorClassifier, invalid SessionInvalidator, m *metrics.Metrics, log logr.Logger) (*Transport, error) {
	cfg = cfg.withDefaults()

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("transport: creating cookie jar: %w", err)
	}
	if m == nil {
		m = metrics.New(nil)
	}

	return &Transport{
		cfg:      cfg,
		client:   &http.Client{Timeout: cfg.HTTPTimeout, Jar: jar},
		builder:  builder,
		holder:   holder,
		classify: classify,
		invalid:  invalid,
		metrics:  m,
		log:      log,
	}, nil
}

// PostAuthenticated posts innerExtras to endpoint using the current session.
// It fails locally with ErrSessionRequired if no session has been established.
func (t *Transport) PostAuthenticated(ctx context.Context, endpoint string, innerExtras map[string]string) ([]byte, error) {
	sess, ok := t.holder.Get()
	if !ok {
		return nil, ErrSessionRequired
	}
	keys := envelope.AuthKeys{Identifier: sess.UserID, SignKey: sess.SignKey, ContentKey: sess.ContentKey}
	return t.post(ctx, endpoint, innerExtras, keys)
}

// PostLogin posts innerExtras to endpoint using explicit, caller-supplied
// keys, for the one call (login) that precedes having a session.
func (t *Transport) PostLogin(ctx context.Context, endpoint string, innerExtras map[string]string, keys envelope.AuthKeys) ([]byte, error) {
	return t.post(ctx, endpoint, innerExtras, keys)
}

func (t *Transport) post(ctx context.Context, endpoint string, innerExtras map[string]string, keys envelope.AuthKeys) ([]byte, error) {
	start := time.Now()
	outcome := "error"
	defer func() {
		t.metrics.RequestsTotal.WithLabelValues(endpoint, outcome).Inc()
		t.metrics.RequestDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
	}()

	wireBody, err := t.builder.BuildRequest(keys, innerExtras)
	if err != nil {
		return nil, fmt.Errorf("transport: build request: %w", err)
	}

	respBody, err := t.postWithRetry(ctx, endpoint, wireBody)
	if err != nil {
		return nil, err
	}

	code, message, data, err := t.builder.ParseResponse(string(respBody), keys.ContentKey)
	if err != nil {
		return nil, fmt.Errorf("transport: parse response: %w", err)
	}

	if classErr := t.classify(code, message, endpoint); classErr != nil {
		if t.invalid != nil && t.invalid(classErr) {
			t.holder.Invalidate()
			t.metrics.SessionInvalidated.Inc()
			t.log.Info("session invalidated", "endpoint", endpoint, "code", code)
		}
		return nil, classErr
	}

	outcome = "success"
	return data, nil
}

func (t *Transport) postWithRetry(ctx context.Context, endpoint string, body string) ([]byte, error) {
	url := t.cfg.BaseURL + "/" + endpoint

	var result []byte
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = 500 * time.Millisecond
	bo.Multiplier = 2
	bo.RandomizationFactor = 0.2
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, t.cfg.MaxNetworkRetries), ctx)

	op := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader([]byte(body)))
		if err != nil {
			return backoff.Permanent(fmt.Errorf("transport: building http request: %w", err))
		}
		req.Header.Set("Content-Type", "application/json; charset=UTF-8")
		req.Header.Set("User-Agent", t.cfg.UserAgent)
		req.Header.Set("Accept-Encoding", "identity")

		resp, err := t.client.Do(req)
		if err != nil {
			t.log.V(1).Info("network error, will retry", "endpoint", endpoint, "error", err.Error())
			return &apierr.NetworkError{Endpoint: endpoint, Err: err}
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return &apierr.NetworkError{Endpoint: endpoint, Err: err}
		}
		if resp.StatusCode >= 500 {
			return &apierr.NetworkError{Endpoint: endpoint, Err: fmt.Errorf("server error %d", resp.StatusCode)}
		}
		if resp.StatusCode >= 400 {
			return backoff.Permanent(fmt.Errorf("transport: http %d from %s", resp.StatusCode, endpoint))
		}
		result = data
		return nil
	}

	if err := backoff.Retry(op, policy); err != nil {
		return nil, err
	}
	return result, nil
}
