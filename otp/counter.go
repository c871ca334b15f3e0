package otp

import (
	"errors"
	"fmt"
	"math"
	"strconv"
)

// A Counter is the HOTP moving factor. It starts at zero and is advanced
// by the caller after each accepted code (RFC 4226 §7.2).
type Counter uint64

// ErrCounterOverflow is reported when a counter at the maximum value is
// incremented.
var ErrCounterOverflow = errors.New("counter overflow")

// ParseCounter parses the decimal text form of a counter.
func ParseCounter(s string) (Counter, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse counter: %w", err)
	}
	return Counter(v), nil
}

func (c Counter) String() string { return strconv.FormatUint(uint64(c), 10) }

// Next returns the incremented counter. It reports false if c is at the
// maximum value, in which case the counter is returned unchanged.
func (c Counter) Next() (Counter, bool) {
	if c == math.MaxUint64 {
		return c, false
	}
	return c + 1, true
}

// MustNext is like Next, but panics if c is at the maximum value.
func (c Counter) MustNext() Counter {
	n, ok := c.Next()
	if !ok {
		panic(ErrCounterOverflow)
	}
	return n
}

// MarshalText implements [encoding.TextMarshaler].
func (c Counter) MarshalText() ([]byte, error) { return []byte(c.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (c *Counter) UnmarshalText(data []byte) error {
	v, err := ParseCounter(string(data))
	if err != nil {
		return err
	}
	*c = v
	return nil
}
