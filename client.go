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

// Package vehiclecore is the core of a client library for a proprietary
// vehicle telematics cloud service: it drives the vendor's encrypted
// envelope protocol, merges REST and MQTT telemetry into one per-vehicle
// state model, and orchestrates remote commands across the MQTT-first,
// HTTP-poll-fallback race.
package vehiclecore

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/go-logr/logr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/nexavolt/vehiclecore/internal/adapters"
	"github.com/nexavolt/vehiclecore/internal/apierr"
	"github.com/nexavolt/vehiclecore/internal/command"
	"github.com/nexavolt/vehiclecore/internal/envelope"
	"github.com/nexavolt/vehiclecore/internal/metrics"
	"github.com/nexavolt/vehiclecore/internal/push"
	"github.com/nexavolt/vehiclecore/internal/session"
	"github.com/nexavolt/vehiclecore/internal/sign"
	"github.com/nexavolt/vehiclecore/internal/state"
	"github.com/nexavolt/vehiclecore/internal/transport"
	"github.com/nexavolt/vehiclecore/pkg/mqtt"
)

// Command re-exports the orchestrator's vocabulary, and VehicleSummary,
// Permission, EmpowerRange, and Section re-export the adapters/state types
// that appear in this package's public signatures, so callers never need to
// import an internal package to name a type they already hold a value of.
type (
	Command        = command.Code
	Outcome        = command.Outcome
	VehicleSummary = adapters.VehicleSummary
	Permission     = adapters.Permission
	EmpowerRange   = adapters.EmpowerRange
	Section        = state.Section
)

// The state sections a vehicle carries.
const (
	SectionRealtime = state.SectionRealtime
	SectionHVAC     = state.SectionHVAC
	SectionCharging = state.SectionCharging
	SectionGPS      = state.SectionGPS
	SectionEnergy   = state.SectionEnergy
)

// The full set of remote commands this client can execute.
const (
	Lock            = command.Lock
	Unlock          = command.Unlock
	StartClimate    = command.StartClimate
	StopClimate     = command.StopClimate
	ScheduleClimate = command.ScheduleClimate
	FindCar         = command.FindCar
	FlashLights     = command.FlashLights
	CloseWindows    = command.CloseWindows
	SeatClimate     = command.SeatClimate
	BatteryHeat     = command.BatteryHeat
)

// Outcomes a command Execute call can resolve to.
const (
	Pending   = command.Pending
	Success   = command.Success
	Failure   = command.Failure
	Timeout   = command.Timeout
	Cancelled = command.Cancelled
)

// Client is the top-level handle applications embed: one Client owns one
// authenticated session, one MQTT connection, and one state store, for one
// vehicle account.
type Client struct {
	cfg Config
	log logr.Logger

	holder    *session.Holder
	store     *state.Store
	metrics   *metrics.Metrics
	transport *transport.Transport
	adapters  *adapters.Adapters
	waiters   *push.Waiters
	commands  *command.Orchestrator

	mqttClient mqtt.Client
	listener   *push.Listener

	permMu sync.RWMutex
	perms  map[string]adapters.Permission

	locked bool // permanent lockout after ControlPasswordLockedError, mirrors internal/command's

	reauth singleflight.Group
}

// New builds a Client from cfg. It does not contact the network; call Login
// to authenticate.
func New(cfg Config) *Client {
	cfg = cfg.withDefaults()
	log := cfg.Logger

	holder := session.NewHolder()
	store := state.New()
	m := metrics.New(cfg.MetricsRegisterer)

	identity := envelope.Identity{
		CountryCode: cfg.CountryCode,
		Language:    cfg.Language,
		Device:      cfg.DeviceIdentity,
	}
	builder := envelope.NewBuilder(identity)

	c := &Client{
		cfg:     cfg,
		log:     log,
		holder:  holder,
		store:   store,
		metrics: m,
		waiters: push.NewWaiters(),
		perms:   make(map[string]adapters.Permission),
	}

	tr, err := transport.New(transport.Config{
		BaseURL:     cfg.BaseURL,
		UserAgent:   cfg.UserAgent,
		HTTPTimeout: cfg.HTTPTimeout,
	}, builder, holder, c.classify, c.sessionInvalidated, m, log.WithName("transport"))
	if err != nil {
		// transport.New only fails building the cookie jar, which never
		// fails on a supported platform; a panic here would only ever fire
		// under a broken Go installation.
		panic(fmt.Sprintf("vehiclecore: building transport: %v", err))
	}
	c.transport = tr
	c.adapters = adapters.New(tr, store, adapters.Config{
		PollAttempts: cfg.PollAttempts,
		PollInterval: cfg.PollInterval,
	}, m, log.WithName("adapters"))

	c.commands = command.New(command.Config{
		ControlPIN:     cfg.ControlPIN,
		MQTTTimeout:    cfg.MQTTTimeout,
		PollInterval:   cfg.PollInterval,
		PollAttempts:   cfg.PollAttempts,
		RateLimitTries: 3,
	}, c.trigger, c.waiters, store, c.checkPermission, m, log.WithName("command"))

	return c
}

// classify wraps apierr.ClassifyCode as a transport.ErrorClassifier; it
// cannot live in internal/apierr itself, since that package has no
// knowledge of endpoints beyond the (code, message, endpoint) triple it
// already accepts, and is kept here only so this package -- the one place
// allowed to depend on both transport and apierr -- owns the wiring.
func (c *Client) classify(code, message, endpoint string) error {
	return apierr.ClassifyCode(code, message, endpoint)
}

func (c *Client) sessionInvalidated(err error) bool {
	var expired *apierr.SessionExpiredError
	return errors.As(err, &expired)
}

// trigger adapts transport.PostAuthenticated to command.Trigger's signature,
// which is identical but kept as a distinct named type so internal/command
// never imports internal/transport directly.
func (c *Client) trigger(ctx context.Context, endpoint string, innerExtras map[string]string) ([]byte, error) {
	return c.transport.PostAuthenticated(ctx, endpoint, innerExtras)
}

func (c *Client) checkPermission(vin string, code command.Code) error {
	return adapters.PermissionCheck(c.permissionSnapshot())(vin, code)
}

func (c *Client) permissionSnapshot() map[string]adapters.Permission {
	c.permMu.RLock()
	defer c.permMu.RUnlock()
	snap := make(map[string]adapters.Permission, len(c.perms))
	for k, v := range c.perms {
		snap[k] = v
	}
	return snap
}

// Login authenticates, fetches the account's vehicles and permissions, and
// -- if MQTT is enabled -- starts the push listener, all concurrently once
// the session is established, via golang.org/x/sync/errgroup.
func (c *Client) Login(ctx context.Context) error {
	sess, err := c.adapters.Login(ctx, c.cfg.Username, c.cfg.Password, time.Duration(c.cfg.SessionTTLSeconds)*time.Second)
	if err != nil {
		return fmt.Errorf("vehiclecore: login: %w", err)
	}
	c.holder.Replace(sess)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return c.refreshPermissions(gctx) })
	if !c.cfg.DisableMQTT {
		g.Go(func() error { return c.startPush(gctx, sess) })
	}
	return g.Wait()
}

func (c *Client) refreshPermissions(ctx context.Context) error {
	_, perms, err := c.adapters.FetchVehicles(ctx)
	if err != nil {
		return fmt.Errorf("vehiclecore: fetching vehicle permissions: %w", err)
	}
	c.permMu.Lock()
	c.perms = perms
	c.permMu.Unlock()
	return nil
}

func (c *Client) startPush(ctx context.Context, sess session.Session) error {
	host, port, err := c.adapters.DiscoverBroker(ctx)
	if err != nil {
		return fmt.Errorf("vehiclecore: discovering mqtt broker: %w", err)
	}

	clientID := mqttClientID(c.cfg.DeviceIdentity.IMEI)
	brokerURL := fmt.Sprintf("tls://%s:%d", host, port)
	now := time.Now()

	mqttClient, err := mqtt.NewClient(&mqtt.ClientConfig{
		BrokerURL: brokerURL,
		ClientID:  clientID,
		Username:  sess.UserID,
		Password:  mqttPassword(sess, clientID, now),
		KeepAlive: uint16(c.cfg.MQTTKeepAlive.Seconds()),
	}, c.log.WithName("mqtt"))
	if err != nil {
		return fmt.Errorf("vehiclecore: building mqtt client: %w", err)
	}

	c.mqttClient = mqttClient
	c.listener = push.NewListener(mqttClient, c.holder, c.store, c.waiters, c.metrics, c.log.WithName("push"))
	if err := c.listener.Start(ctx, sess.UserID); err != nil {
		return fmt.Errorf("vehiclecore: starting push listener: %w", err)
	}
	return nil
}

// mqttClientID mirrors the reference deployment's client id derivation: a
// fixed "oversea_" prefix over the device's upper-hex IMEI hash.
func mqttClientID(imei string) string {
	return "oversea_" + sign.SignKeyFromToken(imei)
}

// mqttPassword derives the broker password the reference deployment expects:
// "<ts><MD5(signToken+clientID+userID+ts)>", upper-hex.
func mqttPassword(sess session.Session, clientID string, now time.Time) string {
	ts := fmt.Sprintf("%d", now.Unix())
	return ts + sign.SignKeyFromToken(sess.SignToken+clientID+sess.UserID+ts)
}

// Close disconnects the push listener, if one was started. It does not
// invalidate the session; a Client is reusable after Close only if Login is
// called again.
func (c *Client) Close(ctx context.Context) {
	if c.listener != nil {
		c.listener.Stop(ctx)
	}
}

// FetchRealtime reads the vehicle's realtime section via trigger+poll.
func (c *Client) FetchRealtime(ctx context.Context, vin string) (map[string]any, error) {
	return c.ensureSessionThen(ctx, func(ctx context.Context) (map[string]any, error) {
		return c.adapters.FetchRealtime(ctx, vin)
	})
}

// FetchGPS reads the vehicle's gps section via trigger+poll.
func (c *Client) FetchGPS(ctx context.Context, vin string) (map[string]any, error) {
	return c.ensureSessionThen(ctx, func(ctx context.Context) (map[string]any, error) {
		return c.adapters.FetchGPS(ctx, vin)
	})
}

// FetchHVAC reads the vehicle's hvac (climate control) section.
func (c *Client) FetchHVAC(ctx context.Context, vin string) (map[string]any, error) {
	return c.ensureSessionThen(ctx, func(ctx context.Context) (map[string]any, error) {
		return c.adapters.FetchHVAC(ctx, vin)
	})
}

// FetchCharging reads the vehicle's charging section.
func (c *Client) FetchCharging(ctx context.Context, vin string) (map[string]any, error) {
	return c.ensureSessionThen(ctx, func(ctx context.Context) (map[string]any, error) {
		return c.adapters.FetchCharging(ctx, vin)
	})
}

// FetchEnergyConsumption reads the vehicle's energy section.
func (c *Client) FetchEnergyConsumption(ctx context.Context, vin string) (map[string]any, error) {
	return c.ensureSessionThen(ctx, func(ctx context.Context) (map[string]any, error) {
		return c.adapters.FetchEnergyConsumption(ctx, vin)
	})
}

// Vehicles returns the account's vehicle list and refreshes the cached
// permission snapshot used by Execute's entitlement check.
func (c *Client) Vehicles(ctx context.Context) ([]VehicleSummary, error) {
	list, perms, err := c.ensureSessionThenPair(ctx, c.adapters.FetchVehicles)
	if err != nil {
		return nil, err
	}
	c.permMu.Lock()
	c.perms = perms
	c.permMu.Unlock()
	return list, nil
}

// Section returns the current merged snapshot for vin/section without
// contacting the network -- the last value any Fetch* call or push message
// wrote.
func (c *Client) Section(vin string, section Section) map[string]any {
	return c.store.GetSection(vin, section)
}

// Execute runs a remote command and returns once it reaches a terminal
// outcome or ctx is done. A permanent PIN lockout short-circuits without
// touching the network, per §7's "terminal for the core instance" rule.
func (c *Client) Execute(ctx context.Context, vin string, code Command, params map[string]any) (Outcome, error) {
	if c.locked {
		return Failure, &apierr.ControlPasswordLockedError{Endpoint: "control/remoteControl"}
	}

	outcome, err := c.commands.Execute(ctx, vin, code, params)

	var locked *apierr.ControlPasswordLockedError
	if errors.As(err, &locked) {
		c.locked = true
	}
	return outcome, err
}

// VerifyControlPassword checks pin against the server ahead of an Execute
// call.
func (c *Client) VerifyControlPassword(ctx context.Context, vin, pin string) (bool, error) {
	return c.ensureSessionThenPairArg(ctx, vin, func(ctx context.Context, vin string) (bool, error) {
		return c.adapters.VerifyControlPassword(ctx, vin, pin)
	})
}

// ensureSessionThen runs fn, and on a SessionExpiredError re-authenticates
// exactly once (collapsing concurrent re-auths via singleflight) before
// retrying fn exactly once more, per §7's "caller re-authenticates once and
// retries once" propagation policy.
func (c *Client) ensureSessionThen(ctx context.Context, fn func(context.Context) (map[string]any, error)) (map[string]any, error) {
	result, err := fn(ctx)
	if !c.sessionInvalidated(err) {
		return result, err
	}
	if _, reErr, _ := c.reauth.Do("login", func() (any, error) { return nil, c.Login(ctx) }); reErr != nil {
		return nil, fmt.Errorf("vehiclecore: re-authenticating after session expiry: %w", reErr)
	}
	return fn(ctx)
}

func (c *Client) ensureSessionThenPair(ctx context.Context, fn func(context.Context) ([]adapters.VehicleSummary, map[string]adapters.Permission, error)) ([]adapters.VehicleSummary, map[string]adapters.Permission, error) {
	list, perms, err := fn(ctx)
	if !c.sessionInvalidated(err) {
		return list, perms, err
	}
	if _, reErr, _ := c.reauth.Do("login", func() (any, error) { return nil, c.Login(ctx) }); reErr != nil {
		return nil, nil, fmt.Errorf("vehiclecore: re-authenticating after session expiry: %w", reErr)
	}
	return fn(ctx)
}

func (c *Client) ensureSessionThenPairArg(ctx context.Context, vin string, fn func(context.Context, string) (bool, error)) (bool, error) {
	ok, err := fn(ctx, vin)
	if !c.sessionInvalidated(err) {
		return ok, err
	}
	if _, reErr, _ := c.reauth.Do("login", func() (any, error) { return nil, c.Login(ctx) }); reErr != nil {
		return false, fmt.Errorf("vehiclecore: re-authenticating after session expiry: %w", reErr)
	}
	return fn(ctx, vin)
}
