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

package command

import (
	"context"

	"github.com/go-logr/logr"
	"github.com/looplab/fsm"

	"github.com/nexavolt/vehiclecore/internal/apierr"
	"github.com/nexavolt/vehiclecore/internal/metrics"
)

// wrapEvent adapts a fallible callback to fsm.Callback: an error returned
// from fn is recorded on the event instead of being silently dropped,
// so a callback failure surfaces through Event's return value.
func wrapEvent(fn func(ctx context.Context, event *fsm.Event) error) fsm.Callback {
	return func(ctx context.Context, event *fsm.Event) {
		if err := fn(ctx, event); err != nil {
			event.Err = err
		}
	}
}

const (
	eventSucceed = "succeed"
	eventFail    = "fail"
	eventTimeout = "timeout"
	eventCancel  = "cancel"
)

// attempt is one in-flight command's lifecycle, modeled as an explicit FSM
// so the single-assignment/terminal outcome invariant is enforced by
// looplab/fsm's transition table: firing an event from an already-terminal
// state returns an error instead of silently overwriting the outcome.
type attempt struct {
	id     string
	vin    string
	code   Code
	serial string
	params map[string]any

	machine *fsm.FSM
}

func newAttempt(id, vin string, code Code, serial string, params map[string]any, log logr.Logger, m *metrics.Metrics) *attempt {
	a := &attempt{id: id, vin: vin, code: code, serial: serial, params: params}

	a.machine = fsm.NewFSM(
		string(Pending),
		fsm.Events{
			{Name: eventSucceed, Src: []string{string(Pending)}, Dst: string(Success)},
			{Name: eventFail, Src: []string{string(Pending)}, Dst: string(Failure)},
			{Name: eventTimeout, Src: []string{string(Pending)}, Dst: string(Timeout)},
			{Name: eventCancel, Src: []string{string(Pending)}, Dst: string(Cancelled)},
		},
		fsm.Callbacks{
			"enter_state": wrapEvent(func(_ context.Context, e *fsm.Event) error {
				log.V(1).Info("command attempt resolved", "attemptID", id, "vin", vin, "code", code, "serial", serial, "outcome", e.Dst)
				m.CommandOutcomes.WithLabelValues(string(code), e.Dst).Inc()
				return nil
			}),
		},
	)
	return a
}

// fire transitions the attempt. Firing an event that does not apply to the
// current state (i.e. the attempt already resolved) returns fsm's
// InvalidEventError rather than changing the outcome.
func (a *attempt) fire(ctx context.Context, event string) error {
	return a.machine.Event(ctx, event)
}

func (a *attempt) outcome() Outcome {
	return Outcome(a.machine.Current())
}

// interpret reads a result payload's controlState and reports the outcome
// it implies, and whether that outcome is terminal. controlState absent or
// 0 means "still pending"; the caller decides whether to keep waiting.
func (a *attempt) interpret(fields map[string]any) (Outcome, bool, error) {
	switch controlStateOf(fields) {
	case 1:
		return Success, true, nil
	case 2:
		return Failure, true, &apierr.RemoteControlFailureError{Code: string(a.code)}
	default:
		return Pending, false, nil
	}
}

func controlStateOf(fields map[string]any) int {
	v, ok := fields["controlState"]
	if !ok {
		return -1
	}
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	default:
		return -1
	}
}
