package main

import (
	"errors"
	"fmt"

	"github.com/creachadair/command"
	"github.com/creachadair/getpass"
	"github.com/creachadair/mds/value"
	yaml "gopkg.in/yaml.v3"

	"github.com/nekitdev/otp-std/otp"
	"github.com/nekitdev/otp-std/otpauth"
	"github.com/nekitdev/otp-std/secret"
)

var codeFlags struct {
	At  uint64 `flag:"at,Generate for this time (seconds since epoch) instead of now"`
	TTL bool   `flag:"ttl,Also print the remaining validity in seconds (TOTP only)"`
}

// runCode implements the "code" subcommand.
func runCode(env *command.Env, urlStr string) error {
	auth, err := otpauth.ParseURL(urlStr)
	if err != nil {
		return err
	}
	switch o := auth.OTP.(type) {
	case *otp.HOTP:
		fmt.Println(o.GenerateString())

	case *otp.TOTP:
		at := codeFlags.At
		if at == 0 {
			if at, err = otp.Now(); err != nil {
				return err
			}
		}
		fmt.Println(o.GenerateStringAt(at))
		if codeFlags.TTL {
			fmt.Println(o.TimeToLiveAt(at))
		}
	}
	return nil
}

var verifyFlags struct {
	At   uint64 `flag:"at,Verify at this time (seconds since epoch) instead of now"`
	Skew uint64 `flag:"skew,Accept codes from this many adjacent periods (TOTP only)"`
}

// runVerify implements the "verify" subcommand. A mismatched code is
// reported as an error so the exit status reflects the result.
func runVerify(env *command.Env, urlStr, code string) error {
	auth, err := otpauth.ParseURL(urlStr)
	if err != nil {
		return err
	}

	var ok bool
	switch o := auth.OTP.(type) {
	case *otp.HOTP:
		ok = o.VerifyString(code)

	case *otp.TOTP:
		o.Skew = otp.Skew(verifyFlags.Skew)
		at := verifyFlags.At
		if at == 0 {
			if at, err = otp.Now(); err != nil {
				return err
			}
		}
		ok = o.VerifyStringAt(at, code)
	}
	if !ok {
		return errors.New("code does not match")
	}
	fmt.Println("ok")
	return nil
}

var urlFlags struct {
	Type      string `flag:"type,default=totp,OTP type (hotp or totp)"`
	Secret    string `flag:"secret,Base32-encoded secret (prompted for if empty)"`
	Issuer    string `flag:"issuer,Issuer name for the label (optional)"`
	User      string `flag:"user,Account name for the label (required)"`
	Algorithm string `flag:"algorithm,default=SHA1,Hash algorithm (SHA1; SHA256; SHA512)"`
	Digits    int    `flag:"digits,default=6,Number of code digits (6-8)"`
	Period    uint64 `flag:"period,default=30,Time step in seconds (TOTP)"`
	Counter   uint64 `flag:"counter,Initial counter value (HOTP)"`
}

// runURL implements the "url" subcommand.
func runURL(env *command.Env) error {
	if urlFlags.User == "" {
		return env.Usagef("you must provide a --user name")
	}
	user, err := otpauth.NewPart(urlFlags.User)
	if err != nil {
		return err
	}
	label := otpauth.Label{User: user}
	if urlFlags.Issuer != "" {
		if label.Issuer, err = otpauth.NewPart(urlFlags.Issuer); err != nil {
			return err
		}
	}

	typ, err := otp.ParseType(urlFlags.Type)
	if err != nil {
		return err
	}
	base, err := buildBase()
	if err != nil {
		return err
	}

	auth := &otpauth.Auth{Label: label}
	switch typ {
	case otp.TypeHOTP:
		auth.OTP = &otp.HOTP{Base: base, Counter: otp.Counter(urlFlags.Counter)}
	case otp.TypeTOTP:
		period, err := otp.NewPeriod(urlFlags.Period)
		if err != nil {
			return err
		}
		auth.OTP = &otp.TOTP{Base: base, Period: period}
	}
	fmt.Println(auth.String())
	return nil
}

// buildBase assembles the shared OTP parameters from the url flags,
// prompting for the secret if it was not given.
func buildBase() (otp.Base, error) {
	enc := urlFlags.Secret
	if enc == "" {
		var err error
		if enc, err = getpass.Prompt("Secret (base32): "); err != nil {
			return otp.Base{}, fmt.Errorf("reading secret: %w", err)
		}
	}
	key, err := secret.Decode(enc)
	if err != nil {
		return otp.Base{}, err
	}
	algorithm, err := otp.ParseAlgorithm(urlFlags.Algorithm)
	if err != nil {
		return otp.Base{}, err
	}
	digits, err := otp.NewDigits(urlFlags.Digits)
	if err != nil {
		return otp.Base{}, err
	}
	return otp.Base{Secret: key, Algorithm: algorithm, Digits: digits}, nil
}

// authInfo is the YAML rendering of a parsed otpauth:// URL.
type authInfo struct {
	Type      string `yaml:"type"`
	Issuer    string `yaml:"issuer,omitempty"`
	User      string `yaml:"user"`
	Secret    string `yaml:"secret"`
	Algorithm string `yaml:"algorithm"`
	Digits    string `yaml:"digits"`
	Counter   string `yaml:"counter,omitempty"`
	Period    string `yaml:"period,omitempty"`
}

// runInfo implements the "info" subcommand.
func runInfo(env *command.Env, urlStr string) error {
	auth, err := otpauth.ParseURL(urlStr)
	if err != nil {
		return err
	}
	base := auth.OTP.Config()
	info := authInfo{
		Type:      auth.OTP.Type().String(),
		Issuer:    string(auth.Label.Issuer),
		User:      string(auth.Label.User),
		Secret:    base.Secret.Encode(),
		Algorithm: base.Algorithm.String(),
		Digits:    base.Digits.String(),
	}
	switch o := auth.OTP.(type) {
	case *otp.HOTP:
		info.Counter = o.Counter.String()
	case *otp.TOTP:
		info.Period = o.Period.String()
	}
	data, err := yaml.Marshal(info)
	if err != nil {
		return err
	}
	fmt.Print(string(data))
	return nil
}

var secretFlags struct {
	Algorithm string `flag:"algorithm,Generate the recommended length for this algorithm"`
	Length    int    `flag:"length,Secret length in bytes (default 20)"`
}

// runSecret implements the "secret" subcommand.
func runSecret(env *command.Env) error {
	length := secret.Length(secretFlags.Length)
	if secretFlags.Algorithm != "" {
		algorithm, err := otp.ParseAlgorithm(secretFlags.Algorithm)
		if err != nil {
			return err
		}
		length = value.Cond(secretFlags.Length > 0, length, secret.Length(algorithm.KeyLength()))
	}
	key, err := secret.Generate(length)
	if err != nil {
		return err
	}
	fmt.Println(key.Encode())
	return nil
}
