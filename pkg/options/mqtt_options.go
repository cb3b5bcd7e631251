package options

import (
	"time"

	"github.com/spf13/pflag"

	"github.com/nexavolt/vehiclecore/pkg/mqtt"
)

var _ IOptions = (*MqttOptions)(nil)

// MqttOptions contains configuration for the push listener's MQTT client.
// Broker address, username, and password are not configured statically --
// the broker is discovered per session (see the app/emqAuth endpoint) and
// the credentials come from the authenticated session -- so this type only
// carries client *behavior*.
type MqttOptions struct {
	Enabled  bool   `json:"enabled" mapstructure:"enabled"`
	ClientID string `json:"client-id" mapstructure:"client-id"`

	KeepAlive      time.Duration `json:"keep-alive" mapstructure:"keep-alive"`
	ConnectTimeout time.Duration `json:"connect-timeout" mapstructure:"connect-timeout"`
	SessionExpiry  uint32        `json:"session-expiry" mapstructure:"session-expiry"`
	CleanStart     bool          `json:"clean-start" mapstructure:"clean-start"`

	// WaitTimeout bounds how long the command orchestrator waits for a
	// push-delivered result before falling back to HTTP polling.
	WaitTimeout time.Duration `json:"wait-timeout" mapstructure:"wait-timeout"`

	// InsecureSkipVerify should only ever be true in local testing against
	// a broker without a trusted certificate.
	InsecureSkipVerify bool `json:"insecure-skip-verify" mapstructure:"insecure-skip-verify"`
}

// NewMqttOptions creates a new MqttOptions with the library's defaults.
func NewMqttOptions() *MqttOptions {
	return &MqttOptions{
		Enabled:        true,
		KeepAlive:      60 * time.Second,
		ConnectTimeout: 5 * time.Second,
		SessionExpiry:  3600,
		CleanStart:     false,
		WaitTimeout:    10 * time.Second,
	}
}

// Validate checks that the options are internally consistent.
func (o *MqttOptions) Validate() []error {
	if o == nil || !o.Enabled {
		return nil
	}

	var errs []error
	if o.WaitTimeout <= 0 {
		errs = append(errs, errFieldMustBePositive("mqtt.wait-timeout"))
	}
	if o.KeepAlive <= 0 {
		errs = append(errs, errFieldMustBePositive("mqtt.keep-alive"))
	}
	return errs
}

// AddFlags binds command-line flags to the MqttOptions fields.
func (o *MqttOptions) AddFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&o.Enabled, "mqtt.enabled", o.Enabled, "Enable the MQTT push listener alongside REST polling.")
	fs.StringVar(&o.ClientID, "mqtt.client-id", o.ClientID, "MQTT client id passed through ToClientConfig; vehiclecore.Client derives its own from the device IMEI.")
	fs.DurationVar(&o.KeepAlive, "mqtt.keep-alive", o.KeepAlive, "MQTT keep-alive interval.")
	fs.DurationVar(&o.ConnectTimeout, "mqtt.connect-timeout", o.ConnectTimeout, "Timeout for establishing the MQTT connection.")
	fs.Uint32Var(&o.SessionExpiry, "mqtt.session-expiry", o.SessionExpiry, "MQTT v5 session expiry interval in seconds.")
	fs.DurationVar(&o.WaitTimeout, "mqtt.wait-timeout", o.WaitTimeout, "How long the command orchestrator waits for a push result before polling.")
	fs.BoolVar(&o.InsecureSkipVerify, "mqtt.insecure-skip-verify", o.InsecureSkipVerify, "Skip TLS certificate verification (testing only).")
}

// ToClientConfig builds a mqtt.ClientConfig from these options plus the
// per-session values that are not static configuration.
func (o *MqttOptions) ToClientConfig(broker, username, password string) *mqtt.ClientConfig {
	return &mqtt.ClientConfig{
		BrokerURL:          broker,
		Username:           username,
		Password:           password,
		ClientID:           o.ClientID,
		KeepAlive:          uint16(o.KeepAlive.Seconds()),
		SessionExpiry:      o.SessionExpiry,
		ConnectTimeout:     o.ConnectTimeout,
		CleanStart:         o.CleanStart,
		InsecureSkipVerify: o.InsecureSkipVerify,
	}
}
