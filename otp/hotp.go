package otp

// An HOTP is a counter-based one-time password configuration
// (RFC 4226). Generation and verification read the current counter;
// the caller advances it with Increment after accepting a code, since
// resynchronization policy lives outside this package.
type HOTP struct {
	Base

	// Counter is the current moving factor.
	Counter Counter
}

// Type reports TypeHOTP.
func (h *HOTP) Type() Type { return TypeHOTP }

// Config returns the shared base configuration.
func (h *HOTP) Config() *Base { return &h.Base }

// Generate returns the code for the current counter value.
func (h *HOTP) Generate() uint32 { return h.Base.Generate(uint64(h.Counter)) }

// GenerateString returns the zero-padded code for the current counter value.
func (h *HOTP) GenerateString() string { return h.Base.GenerateString(uint64(h.Counter)) }

// Verify reports whether code matches the current counter value.
func (h *HOTP) Verify(code uint32) bool { return h.Base.Verify(uint64(h.Counter), code) }

// VerifyString reports whether the string code matches the current
// counter value, in constant time.
func (h *HOTP) VerifyString(code string) bool {
	return h.Base.VerifyString(uint64(h.Counter), code)
}

// Increment advances the counter. It panics if the counter is at the
// maximum value; use Counter.Next directly for a checked advance.
func (h *HOTP) Increment() { h.Counter = h.Counter.MustNext() }
