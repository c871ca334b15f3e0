// Package secret implements the shared keys used for one-time password
// generation: validated byte strings with a base32 text form (RFC 4648,
// unpadded) and constant-time equality.
package secret

import (
	"crypto/subtle"
	"encoding/base32"
	"errors"
	"fmt"
	"strings"
)

// encoding is the RFC 4648 base32 alphabet without padding, the de facto
// text form for authenticator secrets.
var encoding = base32.StdEncoding.WithPadding(base32.NoPadding)

// ErrDecode is reported when a secret's text form is not valid base32.
var ErrDecode = errors.New("invalid base32 secret")

// A Secret is an immutable byte string used as an HMAC key. The zero
// value is empty and unusable; construct secrets with New, Weak, Decode,
// or Generate.
type Secret struct {
	data []byte
}

// New copies data into a Secret, checking that its length is safe
// (at least MinLength bytes).
func New(data []byte) (Secret, error) {
	if _, err := NewLength(len(data)); err != nil {
		return Secret{}, err
	}
	return Weak(data), nil
}

// Weak copies data into a Secret without any length check. It is the
// explicit opt-in for secrets shorter than MinLength; such keys are
// vulnerable to brute force and should only appear in tests and in
// interoperation with systems that already issued them.
func Weak(data []byte) Secret {
	return Secret{data: append([]byte(nil), data...)}
}

// Decode parses the base32 text form of a secret. Lowercase input is
// accepted and trailing padding is tolerated, since authenticator apps
// disagree on both. The decoded bytes must pass the length check.
func Decode(s string) (Secret, error) {
	clean := strings.ToUpper(strings.TrimRight(s, "="))
	data, err := encoding.DecodeString(clean)
	if err != nil {
		return Secret{}, fmt.Errorf("%w %q", ErrDecode, s)
	}
	return New(data)
}

// Bytes returns the secret key material. The caller must not modify the
// returned slice.
func (s Secret) Bytes() []byte { return s.data }

// Len returns the length of the secret in bytes.
func (s Secret) Len() int { return len(s.data) }

// Encode returns the base32 text form of s.
func (s Secret) Encode() string { return encoding.EncodeToString(s.data) }

func (s Secret) String() string { return s.Encode() }

// Equal reports whether s and t hold the same bytes. The comparison
// runs in time independent of where the secrets differ.
func (s Secret) Equal(t Secret) bool {
	return subtle.ConstantTimeCompare(s.data, t.data) == 1
}

// MarshalText implements [encoding.TextMarshaler] using the base32 form.
func (s Secret) MarshalText() ([]byte, error) { return []byte(s.Encode()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler] using the base32 form.
func (s *Secret) UnmarshalText(data []byte) error {
	v, err := Decode(string(data))
	if err != nil {
		return err
	}
	*s = v
	return nil
}
