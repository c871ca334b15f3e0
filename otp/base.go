package otp

import (
	"crypto/subtle"
	"encoding/binary"

	"github.com/nekitdev/otp-std/secret"
)

// A Base holds the parameters shared by HOTP and TOTP and turns an
// integer moving factor into a code. Algorithm and Digits may be left
// zero to get the RFC defaults (SHA1 and 6 digits).
type Base struct {
	// Secret is the shared key used for HMAC computation.
	Secret secret.Secret

	// Algorithm selects the HMAC hash. Zero means SHA1.
	Algorithm Algorithm

	// Digits is the length of generated codes. Zero means 6.
	Digits Digits
}

// GenerateSecret returns a random secret of the recommended length for a.
func GenerateSecret(a Algorithm) (secret.Secret, error) {
	return secret.Generate(secret.Length(a.KeyLength()))
}

// Generate derives the code for the given moving factor using RFC 4226
// §5.3 dynamic truncation: the low nibble of the last digest byte
// selects a 4-byte window, whose big-endian value (sign bit cleared) is
// reduced modulo 10^digits.
//
// The window read cannot go out of bounds: the offset is at most 15 and
// every supported digest is at least 20 bytes long.
func (b Base) Generate(movingFactor uint64) uint32 {
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], movingFactor)

	digest := b.Algorithm.HMAC(b.Secret.Bytes(), msg[:])
	offset := digest[len(digest)-1] & 0x0f
	value := binary.BigEndian.Uint32(digest[offset:offset+4]) & 0x7fffffff
	return value % b.Digits.Power()
}

// GenerateString is Generate with the code zero-padded to the configured
// number of digits.
func (b Base) GenerateString(movingFactor uint64) string {
	return b.Digits.Format(b.Generate(movingFactor))
}

// Verify reports whether code matches the given moving factor. The
// numeric comparison is not constant time; use VerifyString for codes
// submitted by a remote party.
func (b Base) Verify(movingFactor uint64, code uint32) bool {
	return b.Generate(movingFactor) == code
}

// VerifyString reports whether the string code matches the given moving
// factor, comparing the formatted forms in constant time.
func (b Base) VerifyString(movingFactor uint64, code string) bool {
	want := b.GenerateString(movingFactor)
	return subtle.ConstantTimeCompare([]byte(want), []byte(code)) == 1
}
