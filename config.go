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
	"time"

	"github.com/go-logr/logr"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/nexavolt/vehiclecore/internal/envelope"
)

// DeviceIdentity is the device fingerprint the vendor's outer envelope
// reports on every request; see envelope.DeviceIdentity for field meaning.
type DeviceIdentity = envelope.DeviceIdentity

// Config is the full set of knobs a Client needs, per §6's enumerated
// configuration list. Username/Password are read on every Login, including
// automatic re-authentication; ControlPIN is handed to the command
// orchestrator when the Client is built. None of them is logged.
type Config struct {
	Username    string
	Password    string
	ControlPIN  string
	CountryCode string
	Language    string

	BaseURL   string
	UserAgent string

	DeviceIdentity DeviceIdentity

	HTTPTimeout       time.Duration
	SessionTTLSeconds int

	// DisableMQTT skips the push listener entirely, leaving REST polling as
	// the only source of state updates. Push is on by default, matching a
	// full deployment, so the zero Config enables it.
	DisableMQTT   bool
	MQTTKeepAlive time.Duration
	MQTTTimeout   time.Duration

	PollAttempts int
	PollInterval time.Duration

	// MetricsRegisterer is where the client registers its Prometheus
	// collectors. Nil is accepted and yields unregistered, still-usable
	// collectors -- a library must never default to the global registry.
	MetricsRegisterer prometheus.Registerer

	// Logger is the base logr.Logger every component derives its own
	// component-scoped logger from. The zero value is a working no-op
	// logger (logr.Discard's underlying behavior).
	Logger logr.Logger
}

const (
	defaultBaseURL           = "https://dilinkappoversea-eu.byd.auto"
	defaultUserAgent         = "okhttp/4.12.0"
	defaultHTTPTimeout       = 30 * time.Second
	defaultSessionTTLSeconds = 12 * 60 * 60
	defaultMQTTKeepAlive     = 60 * time.Second
	defaultMQTTTimeout       = 10 * time.Second
	defaultPollAttempts      = 10
	defaultPollInterval      = 1500 * time.Millisecond
)

func (c Config) withDefaults() Config {
	if c.BaseURL == "" {
		c.BaseURL = defaultBaseURL
	}
	if c.UserAgent == "" {
		c.UserAgent = defaultUserAgent
	}
	if c.HTTPTimeout == 0 {
		c.HTTPTimeout = defaultHTTPTimeout
	}
	if c.SessionTTLSeconds == 0 {
		c.SessionTTLSeconds = defaultSessionTTLSeconds
	}
	if c.MQTTKeepAlive == 0 {
		c.MQTTKeepAlive = defaultMQTTKeepAlive
	}
	if c.MQTTTimeout == 0 {
		c.MQTTTimeout = defaultMQTTTimeout
	}
	if c.PollAttempts == 0 {
		c.PollAttempts = defaultPollAttempts
	}
	if c.PollInterval == 0 {
		c.PollInterval = defaultPollInterval
	}
	return c
}
