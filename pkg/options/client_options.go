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

package options

import (
	"fmt"
	"time"

	"github.com/spf13/pflag"

	"github.com/nexavolt/vehiclecore"
	"github.com/nexavolt/vehiclecore/pkg/log"
)

var _ IOptions = (*ClientOptions)(nil)

// DeviceOptions carries the fixed device fingerprint fields the outer
// envelope reports on every request.
type DeviceOptions struct {
	IMEI  string `json:"imei" mapstructure:"imei"`
	MAC   string `json:"mac" mapstructure:"mac"`
	Model string `json:"model" mapstructure:"model"`
	SDK   string `json:"sdk" mapstructure:"sdk"`
	Mod   string `json:"mod" mapstructure:"mod"`
}

// AddFlags binds command-line flags to the DeviceOptions fields.
func (o *DeviceOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.IMEI, "device.imei", o.IMEI, "Device IMEI reported in the outer envelope.")
	fs.StringVar(&o.MAC, "device.mac", o.MAC, "Device MAC address reported in the outer envelope.")
	fs.StringVar(&o.Model, "device.model", o.Model, "Device model string reported in the outer envelope.")
	fs.StringVar(&o.SDK, "device.sdk", o.SDK, "Device SDK version string reported in the outer envelope.")
	fs.StringVar(&o.Mod, "device.mod", o.Mod, "Device mod string reported in the outer envelope.")
}

// ClientOptions is the full flag/env-bindable configuration surface for a
// vehiclecore.Client, aggregating the account credentials, protocol tuning,
// and the MQTT and logging sub-options.
type ClientOptions struct {
	Username    string `json:"username" mapstructure:"username"`
	Password    string `json:"password" mapstructure:"password"`
	ControlPin  string `json:"control-pin" mapstructure:"control-pin"`
	CountryCode string `json:"country-code" mapstructure:"country-code"`
	Language    string `json:"language" mapstructure:"language"`

	BaseURL   string `json:"base-url" mapstructure:"base-url"`
	UserAgent string `json:"user-agent" mapstructure:"user-agent"`

	HTTPTimeout       time.Duration `json:"http-timeout" mapstructure:"http-timeout"`
	SessionTTLSeconds int           `json:"session-ttl-seconds" mapstructure:"session-ttl-seconds"`
	PollAttempts      int           `json:"poll-attempts" mapstructure:"poll-attempts"`
	PollInterval      time.Duration `json:"poll-interval" mapstructure:"poll-interval"`

	Device *DeviceOptions `json:"device" mapstructure:"device"`
	Mqtt   *MqttOptions   `json:"mqtt" mapstructure:"mqtt"`
	Log    *log.Options   `json:"log" mapstructure:"log"`
}

// NewClientOptions creates a new ClientOptions with the library's defaults.
func NewClientOptions() *ClientOptions {
	return &ClientOptions{
		CountryCode:       "GB",
		Language:          "en",
		UserAgent:         "okhttp/4.12.0",
		HTTPTimeout:       30 * time.Second,
		SessionTTLSeconds: 12 * 60 * 60,
		PollAttempts:      10,
		PollInterval:      1500 * time.Millisecond,
		Device:            &DeviceOptions{},
		Mqtt:              NewMqttOptions(),
		Log:               log.NewOptions(),
	}
}

// Validate checks that the options and their nested groups are internally
// consistent and that the account credentials required to call Login were
// actually supplied.
func (o *ClientOptions) Validate() []error {
	var errs []error
	if o.Username == "" {
		errs = append(errs, fmt.Errorf("username is required"))
	}
	if o.Password == "" {
		errs = append(errs, fmt.Errorf("password is required"))
	}
	if o.HTTPTimeout <= 0 {
		errs = append(errs, errFieldMustBePositive("http-timeout"))
	}
	if o.PollAttempts <= 0 {
		errs = append(errs, fmt.Errorf("poll-attempts must be positive"))
	}
	if o.PollInterval <= 0 {
		errs = append(errs, errFieldMustBePositive("poll-interval"))
	}
	errs = append(errs, o.Mqtt.Validate()...)
	errs = append(errs, o.Log.Validate()...)
	return errs
}

// AddFlags binds command-line flags for every field, including the nested
// device, MQTT, and logging option groups.
func (o *ClientOptions) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.Username, "username", o.Username, "Account username.")
	fs.StringVar(&o.Password, "password", o.Password, "Account password.")
	fs.StringVar(&o.ControlPin, "control-pin", o.ControlPin, "Remote-control PIN used to authorize commands.")
	fs.StringVar(&o.CountryCode, "country-code", o.CountryCode, "Account country code, e.g. GB.")
	fs.StringVar(&o.Language, "language", o.Language, "Account language, e.g. en.")
	fs.StringVar(&o.BaseURL, "base-url", o.BaseURL, "Cloud API base URL.")
	fs.StringVar(&o.UserAgent, "user-agent", o.UserAgent, "HTTP User-Agent sent with every request.")
	fs.DurationVar(&o.HTTPTimeout, "http-timeout", o.HTTPTimeout, "Per-request HTTP timeout.")
	fs.IntVar(&o.SessionTTLSeconds, "session-ttl-seconds", o.SessionTTLSeconds, "Session lifetime in seconds before proactive re-authentication.")
	fs.IntVar(&o.PollAttempts, "poll-attempts", o.PollAttempts, "Maximum poll attempts for trigger+poll endpoints.")
	fs.DurationVar(&o.PollInterval, "poll-interval", o.PollInterval, "Delay between poll attempts.")

	o.Device.AddFlags(fs)
	o.Mqtt.AddFlags(fs)
	o.Log.AddFlags(fs)
}

// ToConfig builds a vehiclecore.Config from these options, building the
// logger from the Log options. The metrics registerer is not
// flag/env-bindable and is left nil; set Config.MetricsRegisterer on the
// result to register the collectors.
func (o *ClientOptions) ToConfig() vehiclecore.Config {
	return vehiclecore.Config{
		Username:    o.Username,
		Password:    o.Password,
		ControlPIN:  o.ControlPin,
		CountryCode: o.CountryCode,
		Language:    o.Language,
		BaseURL:     o.BaseURL,
		UserAgent:   o.UserAgent,
		DeviceIdentity: vehiclecore.DeviceIdentity{
			IMEI:  o.Device.IMEI,
			MAC:   o.Device.MAC,
			Model: o.Device.Model,
			SDK:   o.Device.SDK,
			Mod:   o.Device.Mod,
		},
		HTTPTimeout:       o.HTTPTimeout,
		SessionTTLSeconds: o.SessionTTLSeconds,
		DisableMQTT:       !o.Mqtt.Enabled,
		MQTTKeepAlive:     o.Mqtt.KeepAlive,
		MQTTTimeout:       o.Mqtt.WaitTimeout,
		PollAttempts:      o.PollAttempts,
		PollInterval:      o.PollInterval,
		Logger:            log.NewLogger(o.Log),
	}
}
