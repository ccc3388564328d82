package authcookie

import (
	"testing"
	"time"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	c := New([]byte("test-secret"), "auth", false, time.Hour)

	issued := time.Now().Truncate(time.Second)
	got, err := c.decode(c.encode(issued))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if !got.Equal(issued) {
		t.Fatalf("issuedAt = %v, want %v", got, issued)
	}
}

func TestDecodeRejectsTampering(t *testing.T) {
	c := New([]byte("test-secret"), "auth", false, time.Hour)
	val := c.encode(time.Now())

	for name, tampered := range map[string]string{
		"payload edited": "9" + val,
		"no separator":   "justonepart",
		"wrong key":      New([]byte("other-secret"), "auth", false, time.Hour).encode(time.Now()),
	} {
		if name == "wrong key" {
			if _, err := c.decode(tampered); err == nil {
				t.Errorf("%s: decode accepted a foreign signature", name)
			}
			continue
		}
		if _, err := c.decode(tampered); err == nil {
			t.Errorf("%s: decode accepted tampered value %q", name, tampered)
		}
	}
}
