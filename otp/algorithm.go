package otp

import (
	"crypto/hmac"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"errors"
	"fmt"
	"hash"
)

// An Algorithm selects the hash function used for HMAC computation.
// The zero value is SHA1, the RFC 4226 default.
type Algorithm int

const (
	SHA1 Algorithm = iota
	SHA256
	SHA512
)

// ErrUnknownAlgorithm is reported when an algorithm token is not one of
// the supported names.
var ErrUnknownAlgorithm = errors.New("unknown algorithm")

// String returns the otpauth:// token for a ("SHA1", "SHA256", "SHA512").
func (a Algorithm) String() string {
	switch a {
	case SHA1:
		return "SHA1"
	case SHA256:
		return "SHA256"
	case SHA512:
		return "SHA512"
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm parses the case-sensitive tokens "SHA1", "SHA256", and
// "SHA512". Any other input reports ErrUnknownAlgorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch s {
	case "SHA1":
		return SHA1, nil
	case "SHA256":
		return SHA256, nil
	case "SHA512":
		return SHA512, nil
	}
	return 0, fmt.Errorf("%w %q", ErrUnknownAlgorithm, s)
}

// KeyLength returns the recommended secret length in bytes for a, equal
// to the output length of the underlying hash (RFC 4226 §4 R6). It is a
// suggestion for secret generation, not an enforced constraint.
func (a Algorithm) KeyLength() int {
	switch a {
	case SHA1:
		return sha1.Size
	case SHA256:
		return sha256.Size
	case SHA512:
		return sha512.Size
	}
	panic(fmt.Sprintf("invalid algorithm %d", int(a)))
}

func (a Algorithm) newHash() func() hash.Hash {
	switch a {
	case SHA1:
		return sha1.New
	case SHA256:
		return sha256.New
	case SHA512:
		return sha512.New
	}
	panic(fmt.Sprintf("invalid algorithm %d", int(a)))
}

// HMAC computes the HMAC of msg under key using a as the hash. Keys of
// any length are accepted; HMAC pads or hashes the key as needed.
func (a Algorithm) HMAC(key, msg []byte) []byte {
	h := hmac.New(a.newHash(), key)
	h.Write(msg)
	return h.Sum(nil)
}

// MarshalText implements [encoding.TextMarshaler] using the token form.
func (a Algorithm) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler] using the token form.
func (a *Algorithm) UnmarshalText(data []byte) error {
	v, err := ParseAlgorithm(string(data))
	if err != nil {
		return err
	}
	*a = v
	return nil
}
