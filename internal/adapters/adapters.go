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

// Package adapters is the endpoint adapter layer (C10): one function per
// server endpoint, each building the inner payload, calling the transport,
// normalizing the returned fields, and (for reads) emitting an apply-event
// into the state store.
package adapters

import (
	"context"
	"time"

	"github.com/go-logr/logr"

	"github.com/nexavolt/vehiclecore/internal/envelope"
	"github.com/nexavolt/vehiclecore/internal/metrics"
	"github.com/nexavolt/vehiclecore/internal/state"
)

// Poster is the subset of internal/transport.Transport the adapters need.
// Depending on this interface rather than the concrete type keeps this
// package testable with a fake transport.
type Poster interface {
	PostAuthenticated(ctx context.Context, endpoint string, innerExtras map[string]string) ([]byte, error)
	PostLogin(ctx context.Context, endpoint string, innerExtras map[string]string, keys envelope.AuthKeys) ([]byte, error)
}

// Endpoint paths, per the reference deployment's wire contract.
const (
	EndpointLogin             = "account/login"
	EndpointVehicleList       = "account/getAllListByUserId"
	EndpointRealtimeTrigger   = "vehicleRealTimeRequest"
	EndpointRealtimePoll      = "vehicleRealTimeResult"
	EndpointStatusNow         = "control/getStatusNow"
	EndpointGPSTrigger        = "control/getGpsInfo"
	EndpointGPSPoll           = "control/getGpsInfoResult"
	EndpointChargingHomePage  = "control/smartCharge/homePage"
	EndpointEnergyConsumption = "vehicleInfo/vehicle/getEnergyConsumption"
	EndpointVerifyControlPwd  = "vehicle/vehicleswitch/verifyControlPassword"
	EndpointBrokerDiscovery   = "app/emqAuth/getEmqBrokerIp"
)

// Config bounds an Adapters instance's trigger+poll behavior (§5's default
// "10 attempts x 1.5s").
type Config struct {
	PollAttempts int
	PollInterval time.Duration
}

func (c Config) withDefaults() Config {
	if c.PollAttempts == 0 {
		c.PollAttempts = 10
	}
	if c.PollInterval == 0 {
		c.PollInterval = 1500 * time.Millisecond
	}
	return c
}

// Adapters wires the endpoint functions to a shared transport, state store,
// metrics, and logger, mirroring the way the teacher's Service groups
// per-domain operations behind one receiver.
type Adapters struct {
	poster  Poster
	store   *state.Store
	metrics *metrics.Metrics
	log     logr.Logger
	cfg     Config
}

// New builds an Adapters instance.
func New(poster Poster, store *state.Store, cfg Config, m *metrics.Metrics, log logr.Logger) *Adapters {
	if m == nil {
		m = metrics.New(nil)
	}
	return &Adapters{poster: poster, store: store, metrics: m, log: log, cfg: cfg.withDefaults()}
}

// pollUntilReady calls the trigger endpoint once, then polls pollEndpoint
// with the trigger's requestSerial until ready reports true or the attempt
// budget is exhausted, returning the last response either way (§4.10: "the
// first response whose readiness fields indicate fresh data, else the last
// response").
func (a *Adapters) pollUntilReady(
	ctx context.Context,
	triggerEndpoint, pollEndpoint string,
	innerExtras map[string]string,
	ready func(fields map[string]any) bool,
) (map[string]any, error) {
	triggerBody, err := a.poster.PostAuthenticated(ctx, triggerEndpoint, innerExtras)
	if err != nil {
		return nil, err
	}

	fields, serial, err := decodeWithSerial(triggerBody)
	if err != nil {
		return nil, err
	}
	if ready(fields) || serial == "" {
		return fields, nil
	}

	pollExtras := make(map[string]string, len(innerExtras)+1)
	for k, v := range innerExtras {
		pollExtras[k] = v
	}
	pollExtras[requestSerialField] = serial

	last := fields
	for attempt := 1; attempt < a.cfg.PollAttempts; attempt++ {
		select {
		case <-ctx.Done():
			return last, ctx.Err()
		case <-time.After(a.cfg.PollInterval):
		}

		body, err := a.poster.PostAuthenticated(ctx, pollEndpoint, pollExtras)
		if err != nil {
			return last, err
		}
		fields, _, err := decodeWithSerial(body)
		if err != nil {
			return last, err
		}
		last = fields
		if ready(fields) {
			break
		}
	}
	return last, nil
}
