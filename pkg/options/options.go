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

// Package options collects the flag/env-bindable configuration surface for
// vehiclecore, following the same Options pattern used throughout the rest
// of the fleet codebase: each concern owns a struct with defaults, its own
// Validate, and its own AddFlags.
package options

import (
	"fmt"

	"github.com/spf13/pflag"
)

// IOptions is the contract every options group in this package satisfies,
// so a binary wiring several of them together can validate and register
// flags for all of them uniformly.
type IOptions interface {
	Validate() []error
	AddFlags(fs *pflag.FlagSet)
}

func errFieldMustBePositive(field string) error {
	return fmt.Errorf("%s must be a positive duration", field)
}
