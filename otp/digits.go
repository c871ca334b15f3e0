package otp

import (
	"errors"
	"fmt"
	"strconv"
)

// Digits is the number of decimal digits in a generated code.
// Valid values are 6 through 8; the zero value means DefaultDigits.
type Digits int

const (
	MinDigits     Digits = 6
	MaxDigits     Digits = 8
	DefaultDigits        = MinDigits
)

// ErrInvalidDigits is reported when a digit count is outside [6, 8].
var ErrInvalidDigits = errors.New("invalid digit count")

// NewDigits checks that n is a valid digit count.
func NewDigits(n int) (Digits, error) {
	if d := Digits(n); d >= MinDigits && d <= MaxDigits {
		return d, nil
	}
	return 0, fmt.Errorf("%w %d (want 6..8)", ErrInvalidDigits, n)
}

// ParseDigits parses the decimal text form of a digit count.
func ParseDigits(s string) (Digits, error) {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parse digits: %w", err)
	}
	return NewDigits(n)
}

func (d Digits) String() string { return strconv.Itoa(int(d.OrDefault())) }

// OrDefault maps the zero value to DefaultDigits.
func (d Digits) OrDefault() Digits {
	if d == 0 {
		return DefaultDigits
	}
	return d
}

// Power returns 10^d, the modulus that truncates codes to d digits.
func (d Digits) Power() uint32 {
	p := uint32(1)
	for i := Digits(0); i < d.OrDefault(); i++ {
		p *= 10
	}
	return p
}

// Format renders code as a decimal string zero-padded to exactly d
// characters, e.g. Format(5) with d == 6 yields "000005".
func (d Digits) Format(code uint32) string {
	return fmt.Sprintf("%0*d", int(d.OrDefault()), code)
}

// MarshalText implements [encoding.TextMarshaler].
func (d Digits) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (d *Digits) UnmarshalText(data []byte) error {
	v, err := ParseDigits(string(data))
	if err != nil {
		return err
	}
	*d = v
	return nil
}
