package sign

import (
	"regexp"
	"testing"
)

var hex40 = regexp.MustCompile(`^[0-9A-F]{40}$`)
var hex32 = regexp.MustCompile(`^[0-9A-F]{32}$`)

func TestSignIsDeterministicAndUpperHex(t *testing.T) {
	inner := map[string]string{
		"vin":     "LSJA1234567890",
		"random":  "abcd1234",
		"version": "1",
	}
	outer := OuterFields{
		CountryCode:  "GB",
		Identifier:   "1434",
		IMEIMD5:      "deadbeef",
		Language:     "en",
		ReqTimestamp: "1770817900000",
		ServiceTime:  "1770817900",
	}

	s1 := Sign(inner, outer, "SIGNKEY")
	s2 := Sign(inner, outer, "SIGNKEY")

	if s1 != s2 {
		t.Fatalf("signature not deterministic: %s vs %s", s1, s2)
	}
	if !hex40.MatchString(s1) {
		t.Fatalf("signature is not 40 uppercase hex chars: %s", s1)
	}
}

func TestSignChangesWithInput(t *testing.T) {
	outer := OuterFields{Identifier: "1", IMEIMD5: "a", ReqTimestamp: "1", ServiceTime: "1"}
	a := Sign(map[string]string{"x": "1"}, outer, "K")
	b := Sign(map[string]string{"x": "2"}, outer, "K")
	if a == b {
		t.Fatalf("expected different signatures for different input")
	}
}

func TestCheckcodeIsUpperHex32(t *testing.T) {
	outer := OuterFields{
		Identifier:   "1434",
		IMEIMD5:      "deadbeef",
		ReqTimestamp: "1770817900000",
		ServiceTime:  "1770817900",
	}
	c := Checkcode(outer, "SIGNKEY")
	if !hex32.MatchString(c) {
		t.Fatalf("checkcode is not 32 uppercase hex chars: %s", c)
	}
}

func TestSignKeyFromTokenUpperHex(t *testing.T) {
	k := SignKeyFromToken("some-sign-token")
	if !hex32.MatchString(k) {
		t.Fatalf("sign key is not 32 uppercase hex chars: %s", k)
	}
}
