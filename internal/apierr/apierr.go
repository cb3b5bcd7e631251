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

// Package apierr defines the error taxonomy shared by every internal
// component that talks to the server: transport, the push listener, and the
// command orchestrator. It lives here, rather than in the root package,
// specifically so internal/command and internal/transport can type-assert
// against these errors without importing the root package and creating an
// import cycle; the root package re-exports each type as its own public
// error via a type alias.
package apierr

import "fmt"

// NetworkError wraps a low-level transport failure (DNS, TCP, TLS). It is
// retried inside the transport before ever reaching a caller.
type NetworkError struct {
	Endpoint string
	Err      error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("vehiclecore: network error calling %s: %v", e.Endpoint, e.Err)
}

func (e *NetworkError) Unwrap() error { return e.Err }

// ProtocolError signals a malformed envelope: bad padding, invalid JSON, or
// any other shape the wire protocol does not allow. Never retried.
type ProtocolError struct {
	Reason string
	Err    error
}

func (e *ProtocolError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("vehiclecore: protocol error: %s: %v", e.Reason, e.Err)
	}
	return fmt.Sprintf("vehiclecore: protocol error: %s", e.Reason)
}

func (e *ProtocolError) Unwrap() error { return e.Err }

// SessionExpiredError is returned when the server reports one of the
// session-expiry codes. The transport has already invalidated the session
// by the time this reaches the caller.
type SessionExpiredError struct {
	Code string
}

func (e *SessionExpiredError) Error() string {
	return fmt.Sprintf("vehiclecore: session expired (code %s)", e.Code)
}

// APIError represents any non-zero server response code that does not map
// to one of the more specific error types below.
type APIError struct {
	Code     string
	Endpoint string
	Message  string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("vehiclecore: api error %s from %s: %s", e.Code, e.Endpoint, e.Message)
}

// ControlPasswordWrongError corresponds to server code 5005: the supplied
// control PIN did not match.
type ControlPasswordWrongError struct {
	Endpoint string
}

func (e *ControlPasswordWrongError) Error() string {
	return fmt.Sprintf("vehiclecore: control password wrong (endpoint %s)", e.Endpoint)
}

// ControlPasswordLockedError corresponds to server code 5006: too many wrong
// PIN attempts. It is terminal for the owning client instance -- further
// command attempts are rejected locally without a network round trip.
type ControlPasswordLockedError struct {
	Endpoint string
}

func (e *ControlPasswordLockedError) Error() string {
	return fmt.Sprintf("vehiclecore: control password locked (endpoint %s)", e.Endpoint)
}

// RateLimitedError corresponds to server code 6024. The orchestrator retries
// it a bounded number of times before giving up.
type RateLimitedError struct {
	Endpoint string
	Attempt  int
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("vehiclecore: rate limited on %s (attempt %d)", e.Endpoint, e.Attempt)
}

// EndpointNotSupportedError is returned when the permission profile for a
// VIN does not include the requested command, or the server rejects it with
// code 1001.
type EndpointNotSupportedError struct {
	Endpoint string
	Reason   string
}

func (e *EndpointNotSupportedError) Error() string {
	return fmt.Sprintf("vehiclecore: endpoint %s not supported: %s", e.Endpoint, e.Reason)
}

// TimeoutError is returned when a command deadline or HTTP timeout elapses
// before a terminal outcome is reached.
type TimeoutError struct {
	Op string
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("vehiclecore: timed out waiting for %s", e.Op)
}

// RemoteControlFailureError is returned when the server reports
// controlState=2 for a triggered command: the vehicle itself rejected it.
type RemoteControlFailureError struct {
	Code string
}

func (e *RemoteControlFailureError) Error() string {
	return fmt.Sprintf("vehiclecore: remote control command %s failed (controlState=2)", e.Code)
}

// sessionExpiredCodes are recognized regardless of endpoint, per the wire
// protocol's error taxonomy.
var sessionExpiredCodes = map[string]bool{
	"1002": true,
	"1005": true,
	"1010": true,
}

// ClassifyCode maps a raw server response code to a concrete error, or nil
// if the code indicates success (empty or "0").
func ClassifyCode(code, message, endpoint string) error {
	switch {
	case code == "" || code == "0":
		return nil
	case sessionExpiredCodes[code]:
		return &SessionExpiredError{Code: code}
	case code == "5005":
		return &ControlPasswordWrongError{Endpoint: endpoint}
	case code == "5006":
		return &ControlPasswordLockedError{Endpoint: endpoint}
	case code == "6024":
		return &RateLimitedError{Endpoint: endpoint}
	case code == "1001":
		return &EndpointNotSupportedError{Endpoint: endpoint, Reason: "server rejected endpoint (1001)"}
	default:
		return &APIError{Code: code, Endpoint: endpoint, Message: message}
	}
}
