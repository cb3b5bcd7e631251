package state

import (
	"math"
	"testing"
)

func TestIsAbsent(t *testing.T) {
	cases := []struct {
		v    any
		want bool
	}{
		{nil, true},
		{"", true},
		{"--", true},
		{"70", false},
		{math.NaN(), true},
		{0.0, false},
		{-129.0, false}, // caller-specific, not handled generically
	}
	for _, c := range cases {
		if got := IsAbsent(c.v); got != c.want {
			t.Errorf("IsAbsent(%v) = %v, want %v", c.v, got, c.want)
		}
	}
}
