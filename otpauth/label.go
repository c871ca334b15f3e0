package otpauth

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"
)

// separator joins the issuer and user parts of a label.
const separator = ":"

// Errors reported while decoding labels and parts.
var (
	ErrEmptyLabel    = errors.New("empty label")
	ErrEmptyPart     = errors.New("empty part")
	ErrPartSeparator = errors.New("part contains separator")
	ErrInvalidUTF8   = errors.New("part is not valid UTF-8")
)

// A Part is one component of a label: a non-empty string that does not
// contain the ":" separator. The zero value is invalid; construct parts
// with NewPart.
type Part string

// NewPart validates s as a label part.
func NewPart(s string) (Part, error) {
	if s == "" {
		return "", ErrEmptyPart
	}
	if !utf8.ValidString(s) {
		return "", fmt.Errorf("%w: %q", ErrInvalidUTF8, s)
	}
	if strings.Contains(s, separator) {
		return "", fmt.Errorf("%w: %q", ErrPartSeparator, s)
	}
	return Part(s), nil
}

// encode returns the percent-encoded form of p for use in a URL path.
func (p Part) encode() string { return url.PathEscape(string(p)) }

// A Label identifies the account an OTP configuration belongs to.
type Label struct {
	// Issuer names the service; empty means absent.
	Issuer Part

	// User names the account at the service.
	User Part
}

// String returns the decoded label text, "issuer:user" or "user".
func (l Label) String() string {
	if l.Issuer != "" {
		return string(l.Issuer) + separator + string(l.User)
	}
	return string(l.User)
}

// encode returns the percent-encoded label for use as a URL path.
func (l Label) encode() string {
	if l.Issuer != "" {
		return l.Issuer.encode() + separator + l.User.encode()
	}
	return l.User.encode()
}

// parseLabel splits a decoded label on the first separator. Note that a
// colon that was percent-encoded in the user part is indistinguishable
// from the separator after decoding; this ambiguity is inherent to the
// otpauth format and is not second-guessed here.
func parseLabel(s string) (Label, error) {
	if s == "" {
		return Label{}, ErrEmptyLabel
	}
	if issuer, user, ok := strings.Cut(s, separator); ok {
		ip, err := NewPart(issuer)
		if err != nil {
			return Label{}, err
		}
		up, err := NewPart(user)
		if err != nil {
			return Label{}, err
		}
		return Label{Issuer: ip, User: up}, nil
	}
	user, err := NewPart(s)
	if err != nil {
		return Label{}, err
	}
	return Label{User: user}, nil
}

// decodeLabel percent-decodes the raw URL path form of a label once and
// parses the result.
func decodeLabel(raw string) (Label, error) {
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return Label{}, fmt.Errorf("decode label: %w", err)
	}
	if !utf8.ValidString(decoded) {
		return Label{}, fmt.Errorf("%w: label %q", ErrInvalidUTF8, raw)
	}
	return parseLabel(decoded)
}
