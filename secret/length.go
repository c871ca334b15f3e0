package secret

import (
	"errors"
	"fmt"
)

// A Length is a secret size in bytes. The zero value means DefaultLength.
type Length int

const (
	// MinLength is the smallest secret size accepted by New and Decode
	// (RFC 4226 §4 R6 requires at least 128 bits).
	MinLength Length = 16

	// DefaultLength is the recommended secret size (160 bits).
	DefaultLength Length = 20
)

// ErrLength is reported when a secret is shorter than MinLength.
var ErrLength = errors.New("secret length below minimum")

// NewLength checks that n is a safe secret length.
func NewLength(n int) (Length, error) {
	if Length(n) < MinLength {
		return 0, fmt.Errorf("%w: %d bytes (want at least %d)", ErrLength, n, MinLength)
	}
	return Length(n), nil
}

// OrDefault maps the zero value to DefaultLength.
func (l Length) OrDefault() Length {
	if l == 0 {
		return DefaultLength
	}
	return l
}
