package otp

import (
	"testing"

	"github.com/nekitdev/otp-std/secret"
)

// rfc4226Secret is the shared key from RFC 4226 appendix D.
var rfc4226Secret = []byte("12345678901234567890")

// rfc4226Codes are the expected 6-digit codes for counters 0 through 9.
var rfc4226Codes = []uint32{
	755224, 287082, 359152, 969429, 338314,
	254676, 287922, 162583, 399871, 520489,
}

func TestHOTPVectors(t *testing.T) {
	key, err := secret.New(rfc4226Secret)
	if err != nil {
		t.Fatalf("New secret: unexpected error: %v", err)
	}

	h := &HOTP{Base: Base{Secret: key}}
	for counter, want := range rfc4226Codes {
		if got := h.Generate(); got != want {
			t.Errorf("Generate(counter=%d): got %d, want %d", counter, got, want)
		}
		wantStr := Digits(6).Format(want)
		if got := h.GenerateString(); got != wantStr {
			t.Errorf("GenerateString(counter=%d): got %q, want %q", counter, got, wantStr)
		}
		if !h.Verify(want) {
			t.Errorf("Verify(counter=%d, %d): got false, want true", counter, want)
		}
		if !h.VerifyString(wantStr) {
			t.Errorf("VerifyString(counter=%d, %q): got false, want true", counter, wantStr)
		}
		h.Increment()
	}
	if got, want := h.Counter, Counter(10); got != want {
		t.Errorf("Counter after increments: got %v, want %v", got, want)
	}
}

func TestHOTPMismatch(t *testing.T) {
	key, err := secret.New(rfc4226Secret)
	if err != nil {
		t.Fatalf("New secret: unexpected error: %v", err)
	}
	h := &HOTP{Base: Base{Secret: key}}

	if h.Verify(rfc4226Codes[1]) {
		t.Error("Verify with next counter's code: got true, want false")
	}
	if h.VerifyString("000000") {
		t.Error(`VerifyString("000000"): got true, want false`)
	}
	if h.VerifyString("75522") { // right code, wrong width
		t.Error(`VerifyString("75522"): got true, want false`)
	}
}
