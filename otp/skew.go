package otp

import (
	"fmt"
	"math"
	"strconv"
)

// A Skew is the half-width of the tolerance window applied during TOTP
// verification (RFC 6238 §5.2). Zero accepts only the exact time step.
type Skew uint64

// ParseSkew parses the decimal text form of a skew.
func ParseSkew(s string) (Skew, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse skew: %w", err)
	}
	return Skew(v), nil
}

func (s Skew) String() string { return strconv.FormatUint(uint64(s), 10) }

// Apply returns the moving factor candidates for value in verification
// order:
//
//	value-s, value-s+1, ..., value-1, value, value+1, ..., value+s
//
// Candidates that would overflow or underflow uint64 are dropped.
func (s Skew) Apply(value uint64) []uint64 {
	out := make([]uint64, 0, 2*uint64(s)+1)
	for off := uint64(s); off > 0; off-- {
		if value >= off {
			out = append(out, value-off)
		}
	}
	out = append(out, value)
	for off := uint64(1); off <= uint64(s); off++ {
		if value <= math.MaxUint64-off {
			out = append(out, value+off)
		}
	}
	return out
}

// MarshalText implements [encoding.TextMarshaler].
func (s Skew) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Skew) UnmarshalText(data []byte) error {
	v, err := ParseSkew(string(data))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
