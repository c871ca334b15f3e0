package otp

import (
	"errors"
	"math"
	"testing"

	"github.com/creachadair/mds/mtest"
	gocmp "github.com/google/go-cmp/cmp"
)

func TestDigits(t *testing.T) {
	for _, bad := range []int{-1, 0, 5, 9, 100} {
		if d, err := NewDigits(bad); !errors.Is(err, ErrInvalidDigits) {
			t.Errorf("NewDigits(%d): got (%v, %v), want ErrInvalidDigits", bad, d, err)
		}
	}
	for _, ok := range []int{6, 7, 8} {
		d, err := NewDigits(ok)
		if err != nil {
			t.Errorf("NewDigits(%d): unexpected error: %v", ok, err)
		}
		if int(d) != ok {
			t.Errorf("NewDigits(%d): got %d", ok, d)
		}
	}

	if got := Digits(6).Format(5); got != "000005" {
		t.Errorf(`Digits(6).Format(5): got %q, want "000005"`, got)
	}
	if got := Digits(6).Format(755224); got != "755224" {
		t.Errorf(`Digits(6).Format(755224): got %q, want "755224"`, got)
	}
	if got := Digits(8).Format(7081804); got != "07081804" {
		t.Errorf(`Digits(8).Format(7081804): got %q, want "07081804"`, got)
	}
	if got := Digits(0).Format(5); got != "000005" {
		t.Errorf(`Digits(0).Format(5): got %q, want "000005" (default width)`, got)
	}

	if got := Digits(6).Power(); got != 1000000 {
		t.Errorf("Digits(6).Power(): got %d, want 1000000", got)
	}
	if got := Digits(8).Power(); got != 100000000 {
		t.Errorf("Digits(8).Power(): got %d, want 100000000", got)
	}

	if _, err := ParseDigits("six"); err == nil {
		t.Error(`ParseDigits("six"): got nil, want error`)
	}
	if d, err := ParseDigits("7"); err != nil || d != 7 {
		t.Errorf(`ParseDigits("7"): got (%v, %v), want (7, nil)`, d, err)
	}
}

func TestPeriod(t *testing.T) {
	if _, err := NewPeriod(0); !errors.Is(err, ErrInvalidPeriod) {
		t.Errorf("NewPeriod(0): got %v, want ErrInvalidPeriod", err)
	}
	if p, err := NewPeriod(1); err != nil || p != 1 {
		t.Errorf("NewPeriod(1): got (%v, %v), want (1, nil)", p, err)
	}
	if _, err := ParsePeriod("-30"); err == nil {
		t.Error(`ParsePeriod("-30"): got nil, want error`)
	}
	if p := Period(0).OrDefault(); p != DefaultPeriod {
		t.Errorf("Period(0).OrDefault(): got %d, want %d", p, DefaultPeriod)
	}
}

func TestSkewApply(t *testing.T) {
	tests := []struct {
		skew  Skew
		value uint64
		want  []uint64
	}{
		{0, 13, []uint64{13}},
		{1, 13, []uint64{12, 13, 14}},
		{2, 13, []uint64{11, 12, 13, 14, 15}},
		{2, 1, []uint64{0, 1, 2, 3}},
		{1, 0, []uint64{0, 1}},
		{1, math.MaxUint64, []uint64{math.MaxUint64 - 1, math.MaxUint64}},
	}
	for _, tc := range tests {
		got := tc.skew.Apply(tc.value)
		if diff := gocmp.Diff(got, tc.want); diff != "" {
			t.Errorf("Skew(%d).Apply(%d) (-got, +want):\n%s", tc.skew, tc.value, diff)
		}
	}
}

func TestCounter(t *testing.T) {
	if n, ok := Counter(0).Next(); !ok || n != 1 {
		t.Errorf("Counter(0).Next(): got (%v, %v), want (1, true)", n, ok)
	}
	if n, ok := Counter(math.MaxUint64).Next(); ok || n != math.MaxUint64 {
		t.Errorf("Counter(max).Next(): got (%v, %v), want (max, false)", n, ok)
	}
	mtest.MustPanicf(t, func() {
		Counter(math.MaxUint64).MustNext()
	}, "MustNext at the maximum value should panic")

	if c, err := ParseCounter("42"); err != nil || c != 42 {
		t.Errorf(`ParseCounter("42"): got (%v, %v), want (42, nil)`, c, err)
	}
	if _, err := ParseCounter("-1"); err == nil {
		t.Error(`ParseCounter("-1"): got nil, want error`)
	}
}

func TestParseType(t *testing.T) {
	if typ, err := ParseType("hotp"); err != nil || typ != TypeHOTP {
		t.Errorf(`ParseType("hotp"): got (%v, %v), want (TypeHOTP, nil)`, typ, err)
	}
	if typ, err := ParseType("totp"); err != nil || typ != TypeTOTP {
		t.Errorf(`ParseType("totp"): got (%v, %v), want (TypeTOTP, nil)`, typ, err)
	}
	for _, bad := range []string{"", "TOTP", "steam", "Hotp"} {
		if _, err := ParseType(bad); !errors.Is(err, ErrUnknownType) {
			t.Errorf("ParseType(%q): got %v, want ErrUnknownType", bad, err)
		}
	}
}

func TestParseAlgorithm(t *testing.T) {
	for token, want := range map[string]Algorithm{"SHA1": SHA1, "SHA256": SHA256, "SHA512": SHA512} {
		got, err := ParseAlgorithm(token)
		if err != nil || got != want {
			t.Errorf("ParseAlgorithm(%q): got (%v, %v), want (%v, nil)", token, got, err, want)
		}
		if got.String() != token {
			t.Errorf("%v.String(): got %q, want %q", got, got.String(), token)
		}
	}
	for _, bad := range []string{"", "sha1", "SHA-1", "MD5"} {
		if _, err := ParseAlgorithm(bad); !errors.Is(err, ErrUnknownAlgorithm) {
			t.Errorf("ParseAlgorithm(%q): got %v, want ErrUnknownAlgorithm", bad, err)
		}
	}
}

func TestAlgorithmKeyLength(t *testing.T) {
	for algorithm, want := range map[Algorithm]int{SHA1: 20, SHA256: 32, SHA512: 64} {
		if got := algorithm.KeyLength(); got != want {
			t.Errorf("%v.KeyLength(): got %d, want %d", algorithm, got, want)
		}
	}
}

func TestGenerateSecret(t *testing.T) {
	for _, algorithm := range []Algorithm{SHA1, SHA256, SHA512} {
		key, err := GenerateSecret(algorithm)
		if err != nil {
			t.Fatalf("GenerateSecret(%v): unexpected error: %v", algorithm, err)
		}
		if got, want := key.Len(), algorithm.KeyLength(); got != want {
			t.Errorf("GenerateSecret(%v).Len: got %d, want %d", algorithm, got, want)
		}
	}
}

func TestHMACAnyKeyLength(t *testing.T) {
	msg := []byte{0, 0, 0, 0, 0, 0, 0, 1}
	for _, algorithm := range []Algorithm{SHA1, SHA256, SHA512} {
		for _, n := range []int{0, 1, 16, 64, 1000} {
			digest := algorithm.HMAC(make([]byte, n), msg)
			if len(digest) != algorithm.KeyLength() {
				t.Errorf("%v.HMAC with %d-byte key: digest length %d, want %d",
					algorithm, n, len(digest), algorithm.KeyLength())
			}
		}
	}
}
