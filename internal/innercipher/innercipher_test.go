package innercipher

import (
	"bytes"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	key := DeriveKey("s3cr3t-token")
	cases := [][]byte{
		nil,
		[]byte(""),
		[]byte("a"),
		[]byte(`{"vin":"LSJA1234567890","requestSerial":"ABC"}`),
		bytes.Repeat([]byte("x"), 512),
	}

	for _, plain := range cases {
		hexCipher, err := EncryptHex(key, plain)
		if err != nil {
			t.Fatalf("encrypt: %v", err)
		}
		got, err := DecryptHex(key, hexCipher)
		if err != nil {
			t.Fatalf("decrypt: %v", err)
		}
		if !bytes.Equal(got, plain) && !(len(got) == 0 && len(plain) == 0) {
			t.Fatalf("round trip mismatch: got %q want %q", got, plain)
		}
	}
}

func TestDecryptEmptyIsNilNotError(t *testing.T) {
	key := DeriveKey("k")
	got, err := DecryptHex(key, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != nil {
		t.Fatalf("expected nil, got %v", got)
	}
}

func TestEncryptHexIsUppercase(t *testing.T) {
	key := DeriveKey("k")
	hexCipher, err := EncryptHex(key, []byte("payload"))
	if err != nil {
		t.Fatalf("encrypt: %v", err)
	}
	for _, r := range hexCipher {
		if r >= 'a' && r <= 'f' {
			t.Fatalf("expected uppercase hex, got %q", hexCipher)
		}
	}
}
