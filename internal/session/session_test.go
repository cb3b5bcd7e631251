package session

import (
	"testing"
	"time"
)

func TestNewDerivesKeys(t *testing.T) {
	s := New("1434", "S", "E", time.Hour, time.Unix(0, 0))
	if s.SignKey == "" || s.ContentKey == "" {
		t.Fatalf("expected derived keys to be populated: %+v", s)
	}
	if s.SignKey != s.SignKey {
		t.Fatalf("sanity")
	}
}

func TestHolderGetAbsentInitially(t *testing.T) {
	h := NewHolder()
	if _, ok := h.Get(); ok {
		t.Fatalf("expected no session initially")
	}
}

func TestHolderReplaceAndInvalidate(t *testing.T) {
	h := NewHolder()
	s := New("1434", "S", "E", time.Hour, time.Now())
	h.Replace(s)

	got, ok := h.Get()
	if !ok || got.UserID != "1434" {
		t.Fatalf("expected replaced session, got %+v ok=%v", got, ok)
	}

	h.Invalidate()
	if _, ok := h.Get(); ok {
		t.Fatalf("expected session to be absent after invalidate")
	}
}

func TestExpired(t *testing.T) {
	now := time.Now()
	s := New("u", "S", "E", time.Minute, now)
	if s.Expired(now.Add(30 * time.Second)) {
		t.Fatalf("should not be expired yet")
	}
	if !s.Expired(now.Add(2 * time.Minute)) {
		t.Fatalf("should be expired")
	}
}

func TestExpiredZeroTTLNeverExpires(t *testing.T) {
	s := New("u", "S", "E", 0, time.Now())
	if s.Expired(time.Now().Add(24 * time.Hour)) {
		t.Fatalf("zero TTL session should never expire")
	}
}
