package otp

import (
	"errors"
	"fmt"
	"time"
)

// timeNow is swapped out by tests that need a fixed or broken clock.
var timeNow = time.Now

// ErrTimeBeforeEpoch is reported when the wall clock reads before the
// Unix epoch, making the TOTP moving factor undefined.
var ErrTimeBeforeEpoch = errors.New("current time is before the Unix epoch")

// Now returns the current time in seconds since the Unix epoch.
func Now() (uint64, error) {
	t := timeNow()
	sec := t.Unix()
	if sec < 0 {
		return 0, fmt.Errorf("%w: %v", ErrTimeBeforeEpoch, t.UTC())
	}
	return uint64(sec), nil
}

// MustNow is like Now, but panics if the clock reads before the epoch.
func MustNow() uint64 {
	sec, err := Now()
	if err != nil {
		panic(err)
	}
	return sec
}
