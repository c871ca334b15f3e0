package otp

import (
	"errors"
	"fmt"
	"strconv"
)

// A Period is the length of a TOTP time step in seconds.
// The zero value means DefaultPeriod.
type Period uint64

const (
	MinPeriod     Period = 1
	DefaultPeriod Period = 30
)

// ErrInvalidPeriod is reported when a period is less than MinPeriod.
var ErrInvalidPeriod = errors.New("invalid period")

// NewPeriod checks that v is a valid period.
func NewPeriod(v uint64) (Period, error) {
	if Period(v) < MinPeriod {
		return 0, fmt.Errorf("%w %d (want at least %d)", ErrInvalidPeriod, v, MinPeriod)
	}
	return Period(v), nil
}

// ParsePeriod parses the decimal text form of a period.
func ParsePeriod(s string) (Period, error) {
	v, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse period: %w", err)
	}
	return NewPeriod(v)
}

func (p Period) String() string {
	return strconv.FormatUint(uint64(p.OrDefault()), 10)
}

// OrDefault maps the zero value to DefaultPeriod.
func (p Period) OrDefault() Period {
	if p == 0 {
		return DefaultPeriod
	}
	return p
}

// MarshalText implements [encoding.TextMarshaler].
func (p Period) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *Period) UnmarshalText(data []byte) error {
	v, err := ParsePeriod(string(data))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
