package otp

// A TOTP is a time-based one-time password configuration (RFC 6238).
// The moving factor is the number of whole periods elapsed since the
// Unix epoch. Period and Skew may be left zero for the defaults
// (30 seconds, exact match only).
//
// Methods with an At suffix take the time in seconds since the epoch;
// their counterparts read the wall clock and report ErrTimeBeforeEpoch
// if it is unusable.
type TOTP struct {
	Base

	// Period is the time step length. Zero means 30 seconds.
	Period Period

	// Skew is the verification tolerance window half-width.
	// Zero accepts only the exact time step.
	Skew Skew
}

// Type reports TypeTOTP.
func (t *TOTP) Type() Type { return TypeTOTP }

// Config returns the shared base configuration.
func (t *TOTP) Config() *Base { return &t.Base }

// StepAt returns the moving factor for the given time.
func (t *TOTP) StepAt(time uint64) uint64 { return time / uint64(t.Period.OrDefault()) }

// NextPeriodAt returns the time at which the code for the given time expires.
func (t *TOTP) NextPeriodAt(time uint64) uint64 {
	period := uint64(t.Period.OrDefault())
	return (time/period + 1) * period
}

// NextPeriod returns the time at which the current code expires.
func (t *TOTP) NextPeriod() (uint64, error) {
	now, err := Now()
	if err != nil {
		return 0, err
	}
	return t.NextPeriodAt(now), nil
}

// TimeToLiveAt returns how many seconds the code for the given time
// remains valid.
func (t *TOTP) TimeToLiveAt(time uint64) uint64 {
	period := uint64(t.Period.OrDefault())
	return period - time%period
}

// TimeToLive returns how many seconds the current code remains valid.
func (t *TOTP) TimeToLive() (uint64, error) {
	now, err := Now()
	if err != nil {
		return 0, err
	}
	return t.TimeToLiveAt(now), nil
}

// GenerateAt returns the code for the given time.
func (t *TOTP) GenerateAt(time uint64) uint32 { return t.Base.Generate(t.StepAt(time)) }

// GenerateStringAt returns the zero-padded code for the given time.
func (t *TOTP) GenerateStringAt(time uint64) string {
	return t.Base.GenerateString(t.StepAt(time))
}

// Generate returns the code for the current time.
func (t *TOTP) Generate() (uint32, error) {
	now, err := Now()
	if err != nil {
		return 0, err
	}
	return t.GenerateAt(now), nil
}

// GenerateString returns the zero-padded code for the current time.
func (t *TOTP) GenerateString() (string, error) {
	now, err := Now()
	if err != nil {
		return "", err
	}
	return t.GenerateStringAt(now), nil
}

// MustGenerate is like Generate, but panics if the clock reads before
// the epoch.
func (t *TOTP) MustGenerate() uint32 { return t.GenerateAt(MustNow()) }

// MustGenerateString is like GenerateString, but panics if the clock
// reads before the epoch.
func (t *TOTP) MustGenerateString() string { return t.GenerateStringAt(MustNow()) }

// VerifyExactAt reports whether code matches the given time with no
// skew tolerance.
func (t *TOTP) VerifyExactAt(time uint64, code uint32) bool {
	return t.Base.Verify(t.StepAt(time), code)
}

// VerifyStringExactAt is VerifyExactAt for the string form, comparing
// in constant time.
func (t *TOTP) VerifyStringExactAt(time uint64, code string) bool {
	return t.Base.VerifyString(t.StepAt(time), code)
}

// VerifyExact reports whether code matches the current time with no
// skew tolerance.
func (t *TOTP) VerifyExact(code uint32) (bool, error) {
	now, err := Now()
	if err != nil {
		return false, err
	}
	return t.VerifyExactAt(now, code), nil
}

// VerifyStringExact is VerifyExact for the string form.
func (t *TOTP) VerifyStringExact(code string) (bool, error) {
	now, err := Now()
	if err != nil {
		return false, err
	}
	return t.VerifyStringExactAt(now, code), nil
}

// VerifyAt reports whether code matches any time step within the skew
// window around the given time, trying candidates in Skew.Apply order
// and stopping at the first match.
func (t *TOTP) VerifyAt(time uint64, code uint32) bool {
	for _, step := range t.Skew.Apply(t.StepAt(time)) {
		if t.Base.Verify(step, code) {
			return true
		}
	}
	return false
}

// VerifyStringAt is VerifyAt for the string form, comparing each
// candidate in constant time.
func (t *TOTP) VerifyStringAt(time uint64, code string) bool {
	for _, step := range t.Skew.Apply(t.StepAt(time)) {
		if t.Base.VerifyString(step, code) {
			return true
		}
	}
	return false
}

// Verify reports whether code matches the current time, honoring the
// skew window.
func (t *TOTP) Verify(code uint32) (bool, error) {
	now, err := Now()
	if err != nil {
		return false, err
	}
	return t.VerifyAt(now, code), nil
}

// VerifyString is Verify for the string form.
func (t *TOTP) VerifyString(code string) (bool, error) {
	now, err := Now()
	if err != nil {
		return false, err
	}
	return t.VerifyStringAt(now, code), nil
}
