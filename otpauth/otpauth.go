// Package otpauth parses and renders the otpauth:// URLs used by
// authenticator apps to exchange one-time password configurations:
//
//	otpauth://TYPE/LABEL?secret=...&algorithm=...&digits=...[&counter=...|&period=...][&issuer=...]
//
// TYPE is "hotp" or "totp", and LABEL is a percent-encoded "issuer:user"
// or bare "user". An issuer may appear both in the label and in the
// issuer query parameter; when both are present they must agree.
package otpauth

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/nekitdev/otp-std/otp"
	"github.com/nekitdev/otp-std/secret"
)

// Scheme is the URL scheme of OTP configuration URLs.
const Scheme = "otpauth"

// Query parameter names.
const (
	paramSecret    = "secret"
	paramAlgorithm = "algorithm"
	paramDigits    = "digits"
	paramCounter   = "counter"
	paramPeriod    = "period"
	paramIssuer    = "issuer"
)

// Errors reported while parsing otpauth:// URLs. ParseURL wraps these
// with the offending input; test with [errors.Is].
var (
	ErrScheme         = errors.New("unexpected URL scheme")
	ErrNoType         = errors.New("missing OTP type")
	ErrNoSecret       = errors.New("missing secret parameter")
	ErrNoCounter      = errors.New("missing counter parameter")
	ErrIssuerMismatch = errors.New("issuer mismatch")
)

// An Auth is the full decoded form of one otpauth:// URL: an OTP
// configuration plus the label identifying the account it belongs to.
type Auth struct {
	OTP   otp.OTP
	Label Label
}

// ParseURL decodes an otpauth:// URL. Unknown query parameters are
// ignored. Any failure is wrapped with the input string and satisfies
// errors.Is for the specific cause.
func ParseURL(s string) (*Auth, error) {
	a, err := parseURL(s)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", s, err)
	}
	return a, nil
}

func parseURL(s string) (*Auth, error) {
	u, err := url.Parse(s)
	if err != nil {
		return nil, err
	}
	if u.Scheme != Scheme {
		return nil, fmt.Errorf("%w %q (want %q)", ErrScheme, u.Scheme, Scheme)
	}
	if u.Host == "" {
		return nil, ErrNoType
	}
	typ, err := otp.ParseType(u.Host)
	if err != nil {
		return nil, err
	}

	query := u.Query()
	label, err := extractLabel(u, query)
	if err != nil {
		return nil, err
	}
	config, err := extractOTP(query, typ)
	if err != nil {
		return nil, err
	}
	return &Auth{OTP: config, Label: label}, nil
}

// take removes key from q and returns its value. If the key was given
// more than once, the last occurrence wins.
func take(q url.Values, key string) (string, bool) {
	vs, ok := q[key]
	if !ok || len(vs) == 0 {
		return "", false
	}
	delete(q, key)
	return vs[len(vs)-1], true
}

// extractLabel decodes the label from the URL path and reconciles it
// with the issuer query parameter: if both carry an issuer they must be
// equal, and whichever is present supplies the value.
func extractLabel(u *url.URL, q url.Values) (Label, error) {
	label, err := decodeLabel(strings.TrimPrefix(u.EscapedPath(), "/"))
	if err != nil {
		return Label{}, err
	}
	if s, ok := take(q, paramIssuer); ok {
		issuer, err := NewPart(s)
		if err != nil {
			return Label{}, err
		}
		if label.Issuer != "" && label.Issuer != issuer {
			return Label{}, fmt.Errorf("%w: label has %q, query has %q",
				ErrIssuerMismatch, label.Issuer, issuer)
		}
		label.Issuer = issuer
	}
	return label, nil
}

// extractBase pulls the shared parameters out of q. The secret is
// required; algorithm and digits fall back to the RFC defaults.
func extractBase(q url.Values) (otp.Base, error) {
	enc, ok := take(q, paramSecret)
	if !ok {
		return otp.Base{}, ErrNoSecret
	}
	key, err := secret.Decode(enc)
	if err != nil {
		return otp.Base{}, err
	}

	base := otp.Base{Secret: key, Algorithm: otp.SHA1, Digits: otp.DefaultDigits}
	if s, ok := take(q, paramAlgorithm); ok {
		if base.Algorithm, err = otp.ParseAlgorithm(s); err != nil {
			return otp.Base{}, err
		}
	}
	if s, ok := take(q, paramDigits); ok {
		if base.Digits, err = otp.ParseDigits(s); err != nil {
			return otp.Base{}, err
		}
	}
	return base, nil
}

func extractOTP(q url.Values, typ otp.Type) (otp.OTP, error) {
	base, err := extractBase(q)
	if err != nil {
		return nil, err
	}
	switch typ {
	case otp.TypeHOTP:
		s, ok := take(q, paramCounter)
		if !ok {
			return nil, ErrNoCounter
		}
		counter, err := otp.ParseCounter(s)
		if err != nil {
			return nil, err
		}
		return &otp.HOTP{Base: base, Counter: counter}, nil

	case otp.TypeTOTP:
		period := otp.DefaultPeriod
		if s, ok := take(q, paramPeriod); ok {
			if period, err = otp.ParsePeriod(s); err != nil {
				return nil, err
			}
		}
		return &otp.TOTP{Base: base, Period: period}, nil
	}
	panic(fmt.Sprintf("invalid OTP type %d", int(typ)))
}

// String renders the otpauth:// URL for a. It never fails: the label
// and type alphabets are constrained, and percent-encoding covers
// everything else.
func (a *Auth) String() string {
	base := a.OTP.Config()

	var sb strings.Builder
	fmt.Fprintf(&sb, "%s://%s/%s", Scheme, a.OTP.Type(), a.Label.encode())
	fmt.Fprintf(&sb, "?%s=%s", paramSecret, base.Secret.Encode())
	fmt.Fprintf(&sb, "&%s=%s", paramAlgorithm, base.Algorithm)
	fmt.Fprintf(&sb, "&%s=%s", paramDigits, base.Digits)

	switch o := a.OTP.(type) {
	case *otp.HOTP:
		fmt.Fprintf(&sb, "&%s=%s", paramCounter, o.Counter)
	case *otp.TOTP:
		fmt.Fprintf(&sb, "&%s=%s", paramPeriod, o.Period)
	}
	if a.Label.Issuer != "" {
		fmt.Fprintf(&sb, "&%s=%s", paramIssuer, url.QueryEscape(string(a.Label.Issuer)))
	}
	return sb.String()
}

// URL returns the parsed *url.URL form of a.
func (a *Auth) URL() *url.URL {
	u, err := url.Parse(a.String())
	if err != nil {
		panic(fmt.Sprintf("rendered URL is invalid: %v", err))
	}
	return u
}

// MarshalText implements [encoding.TextMarshaler] using the URL form.
func (a *Auth) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements [encoding.TextUnmarshaler] using the URL form.
func (a *Auth) UnmarshalText(data []byte) error {
	parsed, err := ParseURL(string(data))
	if err != nil {
		return err
	}
	*a = *parsed
	return nil
}
