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

import "github.com/nexavolt/vehiclecore/internal/apierr"

// The error taxonomy lives in internal/apierr so that internal/transport and
// internal/command can type-assert against it without importing this
// package (which imports them). These aliases are the public surface: a
// caller writes vehiclecore.SessionExpiredError, never the internal path.
type (
	NetworkError               = apierr.NetworkError
	ProtocolError              = apierr.ProtocolError
	SessionExpiredError        = apierr.SessionExpiredError
	APIError                   = apierr.APIError
	ControlPasswordWrongError  = apierr.ControlPasswordWrongError
	ControlPasswordLockedError = apierr.ControlPasswordLockedError
	RateLimitedError           = apierr.RateLimitedError
	EndpointNotSupportedError  = apierr.EndpointNotSupportedError
	TimeoutError               = apierr.TimeoutError
	RemoteControlFailureError  = apierr.RemoteControlFailureError
)
