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

package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/nexavolt/vehiclecore/internal/envelope"
	"github.com/nexavolt/vehiclecore/internal/session"
	"github.com/nexavolt/vehiclecore/internal/sign"
)

type loginResponse struct {
	Token struct {
		UserID     string `json:"userId"`
		SignToken  string `json:"signToken"`
		EncryToken string `json:"encryToken"`
	} `json:"token"`
}

// Login exchanges username/password for a Session. The login call is unlike
// every other call this package makes: it precedes having a session, so both
// the sign key and the content key are derived from the password itself
// rather than from server-issued tokens, and the inner payload carries no
// account or password field at all -- the username travels only in the
// outer envelope's identifier field.
func (a *Adapters) Login(ctx context.Context, username, password string, ttl time.Duration) (session.Session, error) {
	keys := envelope.AuthKeys{
		Identifier: username,
		SignKey:    sign.SignKeyFromToken(password),
		ContentKey: sign.SignKeyFromToken(password),
	}

	body, err := a.poster.PostLogin(ctx, EndpointLogin, nil, keys)
	if err != nil {
		return session.Session{}, fmt.Errorf("adapters: login: %w", err)
	}

	var resp loginResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return session.Session{}, fmt.Errorf("adapters: login: decoding response: %w", err)
	}

	return session.New(resp.Token.UserID, resp.Token.SignToken, resp.Token.EncryToken, ttl, time.Now()), nil
}
