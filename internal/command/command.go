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

// Package command is the command orchestrator (C9): trigger a remote
// command, race an MQTT-delivered result against HTTP polling, and apply
// the optimistic state overlay on success. Each attempt's lifecycle is an
// explicit finite-state machine so the single-assignment/terminal outcome
// invariant is enforced by the transition table, not by ad hoc flags.
package command

import (
	"context"
	"crypto/md5" //nolint:gosec // required by the vendor protocol
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/go-logr/logr"
	"github.com/google/uuid"

	"github.com/nexavolt/vehiclecore/internal/apierr"
	"github.com/nexavolt/vehiclecore/internal/metrics"
	"github.com/nexavolt/vehiclecore/internal/push"
	"github.com/nexavolt/vehiclecore/internal/state"
)

// Code names an application-level remote command.
type Code string

const (
	Lock            Code = "LOCK"
	Unlock          Code = "UNLOCK"
	StartClimate    Code = "START_CLIMATE"
	StopClimate     Code = "STOP_CLIMATE"
	ScheduleClimate Code = "SCHEDULE_CLIMATE"
	FindCar         Code = "FIND_CAR"
	FlashLights     Code = "FLASH_LIGHTS"
	CloseWindows    Code = "CLOSE_WINDOWS"
	SeatClimate     Code = "SEAT_CLIMATE"
	BatteryHeat     Code = "BATTERY_HEAT"
)

// wireCommandType maps an application command to the server's commandType.
var wireCommandType = map[Code]string{
	Lock:            "LOCKDOOR",
	Unlock:          "OPENDOOR",
	StartClimate:    "OPENAIR",
	StopClimate:     "CLOSEAIR",
	ScheduleClimate: "BOOKINGAIR",
	FindCar:         "FINDCAR",
	FlashLights:     "FLASHLIGHTNOWHISTLE",
	CloseWindows:    "CLOSEWINDOW",
	SeatClimate:     "VENTILATIONHEATING",
	BatteryHeat:     "BATTERYHEAT",
}

// Outcome is the terminal (or pending) state of a command attempt.
type Outcome string

const (
	Pending   Outcome = "pending"
	Success   Outcome = "success"
	Failure   Outcome = "failure"
	Timeout   Outcome = "timeout"
	Cancelled Outcome = "cancelled"
)

// Trigger issues the remoteControl trigger request and returns its parsed
// body. It is the seam the orchestrator uses instead of importing
// internal/transport directly, so this package stays agnostic of how the
// request actually reaches the server.
type Trigger func(ctx context.Context, endpoint string, innerExtras map[string]string) ([]byte, error)

// PermissionCheck reports whether the authenticated user is allowed to run
// code against vin, returning an *apierr.EndpointNotSupportedError when not.
// A nil PermissionCheck allows everything.
type PermissionCheck func(vin string, code Code) error

const (
	triggerEndpoint = "control/remoteControl"
	pollEndpoint    = "control/remoteControlResult"
	overlayTTL      = 120 * time.Second
)

// Config bounds an Orchestrator's timing and retry behavior.
type Config struct {
	ControlPIN    string
	MQTTTimeout   time.Duration
	PollInterval  time.Duration
	PollAttempts  int
	RateLimitTries uint64
}

func (c Config) withDefaults() Config {
	if c.MQTTTimeout == 0 {
		c.MQTTTimeout = 10 * time.Second
	}
	if c.PollInterval == 0 {
		c.PollInterval = 1500 * time.Millisecond
	}
	if c.PollAttempts == 0 {
		c.PollAttempts = 10
	}
	if c.RateLimitTries == 0 {
		c.RateLimitTries = 3
	}
	return c
}

// Orchestrator drives Execute for every command attempt against one core
// instance. It holds no vehicle-specific state itself; that lives in the
// state store it writes optimistic overlays into.
type Orchestrator struct {
	cfg        Config
	trigger    Trigger
	waiters    *push.Waiters
	store      *state.Store
	permission PermissionCheck
	metrics    *metrics.Metrics
	log        logr.Logger

	locked bool // set permanently once a ControlPasswordWrongError or ControlPasswordLockedError is observed
}

// New builds an Orchestrator. trigger performs the authenticated POST for
// both the trigger and poll calls; waiters and store are shared with the
// push listener and the rest of the core.
func New(cfg Config, trigger Trigger, waiters *push.Waiters, store *state.Store, permission PermissionCheck, m *metrics.Metrics, log logr.Logger) *Orchestrator {
	if m == nil {
		m = metrics.New(nil)
	}
	return &Orchestrator{
		cfg:        cfg.withDefaults(),
		trigger:    trigger,
		waiters:    waiters,
		store:      store,
		permission: permission,
		metrics:    m,
		log:        log,
	}
}

type triggerResponse struct {
	ControlState  int    `json:"controlState"`
	Res           int    `json:"res"`
	RequestSerial string `json:"requestSerial"`
}

// Execute runs one command attempt to completion or to a terminal failure.
func (o *Orchestrator) Execute(ctx context.Context, vin string, code Code, params map[string]any) (Outcome, error) {
	if o.locked {
		return Failure, &apierr.ControlPasswordLockedError{Endpoint: triggerEndpoint}
	}

	if o.permission != nil {
		if err := o.permission(vin, code); err != nil {
			return Failure, err
		}
	}

	wireType, ok := wireCommandType[code]
	if !ok {
		return Failure, &apierr.EndpointNotSupportedError{Endpoint: triggerEndpoint, Reason: fmt.Sprintf("unknown command code %q", code)}
	}

	inner := map[string]string{
		"vin":         vin,
		"commandType": wireType,
		"commandPwd":  md5Upper(o.cfg.ControlPIN),
	}
	if len(params) > 0 {
		paramsJSON, err := json.Marshal(params)
		if err != nil {
			return Failure, fmt.Errorf("command: marshal control params: %w", err)
		}
		inner["controlParamsMap"] = string(paramsJSON)
	}

	body, err := o.triggerWithRetry(ctx, inner)
	if err != nil {
		var locked *apierr.ControlPasswordLockedError
		var wrong *apierr.ControlPasswordWrongError
		if errors.As(err, &locked) || errors.As(err, &wrong) {
			o.locked = true
		}
		var rateLimited *apierr.RateLimitedError
		if errors.As(err, &rateLimited) {
			return Failure, &apierr.EndpointNotSupportedError{
				Endpoint: triggerEndpoint,
				Reason:   fmt.Sprintf("rate limited past %d retries: %v", o.cfg.RateLimitTries, err),
			}
		}
		return Failure, err
	}

	var trig triggerResponse
	if err := json.Unmarshal(body, &trig); err != nil {
		return Failure, &apierr.ProtocolError{Reason: "invalid remoteControl trigger response", Err: err}
	}

	at := newAttempt(uuid.NewString(), vin, code, trig.RequestSerial, params, o.log, o.metrics)

	if trig.ControlState == 1 || trig.Res == 2 {
		return o.settle(ctx, at, map[string]any{"controlState": float64(1)})
	}

	return o.race(ctx, at)
}

func (o *Orchestrator) triggerWithRetry(ctx context.Context, inner map[string]string) ([]byte, error) {
	var body []byte
	attemptN := 0

	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = time.Second
	bo.Multiplier = 2
	policy := backoff.WithContext(backoff.WithMaxRetries(bo, o.cfg.RateLimitTries), ctx)

	op := func() error {
		attemptN++
		var err error
		body, err = o.trigger(ctx, triggerEndpoint, inner)
		if err == nil {
			return nil
		}
		var rateLimited *apierr.RateLimitedError
		if errors.As(err, &rateLimited) {
			rateLimited.Attempt = attemptN
			return err
		}
		return backoff.Permanent(err)
	}

	if err := backoff.Retry(op, policy); err != nil {
		return nil, err
	}
	return body, nil
}

// race waits up to MQTTTimeout for a push-delivered result before falling
// back to HTTP polling.
func (o *Orchestrator) race(ctx context.Context, at *attempt) (Outcome, error) {
	waitCh := o.waiters.Register(push.WaiterKey{VIN: at.vin, Code: string(at.code), Serial: at.serial})
	defer o.waiters.Forget(at.serial)

	timer := time.NewTimer(o.cfg.MQTTTimeout)
	defer timer.Stop()

	select {
	case res := <-waitCh:
		return o.settle(ctx, at, res.Fields)
	case <-ctx.Done():
		_ = at.fire(ctx, eventCancel)
		return Cancelled, ctx.Err()
	case <-timer.C:
	}

	return o.poll(ctx, at)
}

func (o *Orchestrator) poll(ctx context.Context, at *attempt) (Outcome, error) {
	ticker := time.NewTicker(o.cfg.PollInterval)
	defer ticker.Stop()

	for i := 0; i < o.cfg.PollAttempts; i++ {
		select {
		case <-ctx.Done():
			_ = at.fire(ctx, eventCancel)
			return Cancelled, ctx.Err()
		case <-ticker.C:
		}

		body, err := o.trigger(ctx, pollEndpoint, map[string]string{"vin": at.vin, "requestSerial": at.serial})
		if err != nil {
			o.log.V(1).Info("remoteControlResult poll failed, retrying", "vin", at.vin, "serial", at.serial, "error", err.Error())
			continue
		}

		var fields map[string]any
		if err := json.Unmarshal(body, &fields); err != nil {
			continue
		}

		if outcome, done, err := at.interpret(fields); done {
			return o.finish(ctx, at, outcome, err)
		}
	}

	_ = at.fire(ctx, eventTimeout)
	return Timeout, &apierr.TimeoutError{Op: fmt.Sprintf("remoteControlResult poll for serial %s", at.serial)}
}

// settle interprets a single result payload (from MQTT or an immediate
// trigger success) without a polling loop around it.
func (o *Orchestrator) settle(ctx context.Context, at *attempt, fields map[string]any) (Outcome, error) {
	outcome, done, err := at.interpret(fields)
	if !done {
		// An MQTT push or an immediate trigger response that doesn't
		// resolve to success or failure is treated the same as a
		// non-terminal poll reading: fall back to polling.
		return o.poll(ctx, at)
	}
	return o.finish(ctx, at, outcome, err)
}

func (o *Orchestrator) finish(ctx context.Context, at *attempt, outcome Outcome, err error) (Outcome, error) {
	var event string
	switch outcome {
	case Success:
		event = eventSucceed
	case Failure:
		event = eventFail
	default:
		return outcome, err
	}
	if fireErr := at.fire(ctx, event); fireErr != nil {
		return at.outcome(), fireErr
	}
	if outcome == Success {
		o.applyOverlay(at.vin, at.code, at.params)
	}
	return outcome, err
}

func (o *Orchestrator) applyOverlay(vin string, code Code, params map[string]any) {
	fields := overlayFields(code, params)
	if len(fields) == 0 {
		return
	}
	o.store.Overlay(vin, state.SectionRealtime, fields, overlayTTL)
}

// overlayFields returns the optimistic state to apply on a successful
// command, per the command-to-field table.
func overlayFields(code Code, params map[string]any) map[string]any {
	switch code {
	case Lock:
		return map[string]any{"doorLock": "Locked"}
	case Unlock:
		return map[string]any{"doorLock": "Unlocked"}
	case StartClimate:
		out := map[string]any{"acSwitch": "on"}
		if t, ok := params["mainSettingTemp"]; ok {
			out["mainSettingTemp"] = t
		}
		return out
	case StopClimate:
		return map[string]any{"acSwitch": "off"}
	case CloseWindows:
		return map[string]any{"windows": "Closed"}
	case SeatClimate:
		out := map[string]any{}
		for k, v := range params {
			out[k] = v
		}
		return out
	case BatteryHeat:
		out := map[string]any{}
		if v, ok := params["batteryHeatState"]; ok {
			out["batteryHeatState"] = v
		}
		return out
	default:
		// FLASH_LIGHTS, FIND_CAR, SCHEDULE_CLIMATE: no state to overlay.
		return nil
	}
}

func md5Upper(s string) string {
	sum := md5.Sum([]byte(s)) //nolint:gosec // required by the vendor protocol
	return strings.ToUpper(hex.EncodeToString(sum[:]))
}
