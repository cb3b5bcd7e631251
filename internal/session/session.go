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

// Package session holds the single authenticated session for a core
// instance: the user id and the two derived keys used by the signer and
// inner cipher. Mutation is serialized behind a mutex so concurrent
// requests always see a self-consistent session.
package session

import (
	"sync"
	"time"

	"github.com/nexavolt/vehiclecore/internal/sign"
)

// Session is the immutable snapshot returned to callers. Once obtained, a
// Session value never changes; a re-authentication produces a new one.
type Session struct {
	UserID     string
	SignToken  string
	EncryToken string

	// SignKey = MD5(SignToken), ContentKey = MD5(EncryToken), both computed
	// once at construction time since they never change for this session.
	SignKey    string
	ContentKey string

	CreatedAt time.Time
	TTL       time.Duration
}

// Expired reports whether the session is past its TTL as of now.
func (s Session) Expired(now time.Time) bool {
	if s.TTL <= 0 {
		return false
	}
	return now.After(s.CreatedAt.Add(s.TTL))
}

// New builds a Session from the login response's token triple.
func New(userID, signToken, encryToken string, ttl time.Duration, now time.Time) Session {
	return Session{
		UserID:     userID,
		SignToken:  signToken,
		EncryToken: encryToken,
		SignKey:    sign.SignKeyFromToken(signToken),
		ContentKey: sign.SignKeyFromToken(encryToken),
		CreatedAt:  now,
		TTL:        ttl,
	}
}

// Holder is the thread-safe, single-slot session store shared by the
// transport, envelope builder, and push listener.
type Holder struct {
	mu      sync.RWMutex
	current *Session
}

// NewHolder returns an empty Holder.
func NewHolder() *Holder {
	return &Holder{}
}

// Get returns the current session and true, or the zero Session and false
// if no session has been established yet.
func (h *Holder) Get() (Session, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.current == nil {
		return Session{}, false
	}
	return *h.current, true
}

// Replace atomically installs a new session, discarding any prior one.
func (h *Holder) Replace(s Session) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.current = &s
}

// Invalidate clears the current session. Subsequent Get calls report
// absent until Replace is called again.
func (h *Holder) Invalidate() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.current = nil
}
