// Package otp generates and verifies one-time passwords as defined by
// RFC 4226 (HOTP) and RFC 6238 (TOTP).
//
// A [Base] combines a secret key, a hash algorithm, and a digit count,
// and converts an integer moving factor into a short numeric code using
// the RFC 4226 dynamic truncation algorithm. [HOTP] and [TOTP] wrap a
// Base with the counter-based and time-based moving factor derivations
// respectively.
package otp

import (
	"errors"
	"fmt"
)

// ErrUnknownType is reported when a type token is neither "hotp" nor "totp".
var ErrUnknownType = errors.New("unknown OTP type")

// Type denotes the kind of a one-time password configuration.
type Type int

const (
	TypeHOTP Type = iota // counter-based (RFC 4226)
	TypeTOTP             // time-based (RFC 6238)
)

// typeHOTP and typeTOTP are the host strings used in otpauth:// URLs.
const (
	typeHOTP = "hotp"
	typeTOTP = "totp"
)

// String returns the URL host string for t ("hotp" or "totp").
func (t Type) String() string {
	switch t {
	case TypeHOTP:
		return typeHOTP
	case TypeTOTP:
		return typeTOTP
	}
	return "invalid"
}

// ParseType parses the case-sensitive type tokens "hotp" and "totp".
func ParseType(s string) (Type, error) {
	switch s {
	case typeHOTP:
		return TypeHOTP, nil
	case typeTOTP:
		return TypeTOTP, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownType, s)
}

// MarshalText implements [encoding.TextMarshaler] using the token form.
func (t Type) MarshalText() ([]byte, error) { return []byte(t.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler] using the token form.
func (t *Type) UnmarshalText(data []byte) error {
	v, err := ParseType(string(data))
	if err != nil {
		return err
	}
	*t = v
	return nil
}

// An OTP is either a *HOTP or a *TOTP configuration.
type OTP interface {
	// Type reports whether the configuration is HOTP or TOTP.
	Type() Type

	// Config returns the shared base configuration.
	Config() *Base
}
