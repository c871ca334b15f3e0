// Program otpstd is a command-line tool for one-time passwords.
// It generates and verifies HOTP and TOTP codes, and builds and
// inspects the otpauth:// URLs used by authenticator apps.
package main

import (
	"os"

	"github.com/creachadair/command"
	"github.com/creachadair/flax"
)

func main() {
	root := &command.C{
		Name: command.ProgramName(),
		Help: `A command-line tool for one-time passwords.

Codes are generated from otpauth:// URLs as produced by authenticator
enrollment flows. No state is stored: for HOTP URLs the counter is taken
from the URL itself, and advancing it after use is up to the caller.`,

		Commands: []*command.C{
			{
				Name:     "code",
				Usage:    "<url>",
				Help:     "Print the current code for the given otpauth:// URL.",
				SetFlags: command.Flags(flax.MustBind, &codeFlags),
				Run:      command.Adapt(runCode),
			},
			{
				Name:     "verify",
				Usage:    "<url> <code>",
				Help:     "Verify a code against the given otpauth:// URL.",
				SetFlags: command.Flags(flax.MustBind, &verifyFlags),
				Run:      command.Adapt(runVerify),
			},
			{
				Name:  "url",
				Help: `Build an otpauth:// URL from the given settings.

The secret must be base32-encoded. If --secret is not set, the secret
is read interactively without echo.`,
				SetFlags: command.Flags(flax.MustBind, &urlFlags),
				Run:      command.Adapt(runURL),
			},
			{
				Name:  "info",
				Usage: "<url>",
				Help:  "Parse an otpauth:// URL and print its settings as YAML.",
				Run:   command.Adapt(runInfo),
			},
			{
				Name:     "secret",
				Help:     "Generate a random secret and print its base32 form.",
				SetFlags: command.Flags(flax.MustBind, &secretFlags),
				Run:      command.Adapt(runSecret),
			},
			command.HelpCommand(nil),
			command.VersionCommand(),
		},
	}
	command.RunOrFail(root.NewEnv(nil).MergeFlags(true), os.Args[1:])
}
