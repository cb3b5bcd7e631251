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

// Command vehiclecore-demo is a runnable demonstration harness for the
// vehiclecore client: it logs in, reads one vehicle's realtime section, and
// optionally issues one remote command. It is not part of the library's own
// scope; it exists to give the configuration and CLI layer (C13) a real
// entry point, the way the fleet's other commands each wrap a single
// options-driven run function.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/automaxprocs/maxprocs"

	"github.com/nexavolt/vehiclecore"
	"github.com/nexavolt/vehiclecore/pkg/log"
	"github.com/nexavolt/vehiclecore/pkg/options"
)

const envPrefix = "VEHICLECORE"

func main() {
	if _, err := maxprocs.Set(); err != nil {
		fmt.Fprintf(os.Stderr, "vehiclecore-demo: adjusting GOMAXPROCS: %v\n", err)
	}

	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := options.NewClientOptions()
	v := viper.New()

	var vin, command string

	cmd := &cobra.Command{
		Use:   "vehiclecore-demo",
		Short: "Log in, read realtime state, and optionally run one remote command",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := v.Unmarshal(opts); err != nil {
				return fmt.Errorf("unmarshal configuration: %w", err)
			}
			if errs := opts.Validate(); len(errs) > 0 {
				return fmt.Errorf("invalid configuration: %v", errs)
			}
			return run(setupSignalContext(), opts, vin, command)
		},
	}

	opts.AddFlags(cmd.Flags())
	cmd.Flags().StringVar(&vin, "vin", "", "VIN to read and, if --command is set, to control.")
	cmd.Flags().StringVar(&command, "command", "", "Remote command to issue, e.g. LOCK, UNLOCK, FIND_CAR (optional).")
	bindEnv(v, cmd.Flags())

	return cmd
}

// bindEnv wires viper's automatic env lookup with the VEHICLECORE_ prefix
// spec.md §6 names, translating flag dashes to the underscores env vars use.
func bindEnv(v *viper.Viper, fs *pflag.FlagSet) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	_ = v.BindPFlags(fs)
}

func setupSignalContext() context.Context {
	ctx, cancel := context.WithCancel(context.Background())
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sig
		cancel()
	}()
	return ctx
}

func run(ctx context.Context, opts *options.ClientOptions, vin, commandName string) error {
	logger := log.NewLogger(opts.Log)
	cfg := opts.ToConfig()

	client := vehiclecore.New(cfg)
	if err := client.Login(ctx); err != nil {
		return fmt.Errorf("login: %w", err)
	}
	defer client.Close(ctx)

	if vin == "" {
		vehicles, err := client.Vehicles(ctx)
		if err != nil {
			return fmt.Errorf("fetching vehicles: %w", err)
		}
		if len(vehicles) == 0 {
			return fmt.Errorf("account has no vehicles")
		}
		vin = vehicles[0].VIN
	}

	realtime, err := client.FetchRealtime(ctx, vin)
	if err != nil {
		return fmt.Errorf("fetching realtime state for %s: %w", vin, err)
	}
	logger.Info("realtime state", "vin", vin, "fields", realtime)

	if commandName == "" {
		return nil
	}

	outcome, err := client.Execute(ctx, vin, vehiclecore.Command(commandName), nil)
	if err != nil {
		return fmt.Errorf("executing %s on %s: %w", commandName, vin, err)
	}
	logger.Info("command outcome", "vin", vin, "command", commandName, "outcome", outcome)
	return nil
}
