//go:build linux

package counter

import (
	"fmt"

	"golang.org/x/sys/unix"
)

// CLOCK_MONOTONIC_RAW reports in nanoseconds, so the frequency is a
// fixed 1 GHz.
const rawClockHz = 1_000_000_000

func readCounter() (uint64, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC_RAW, &ts); err != nil {
		return 0, fmt.Errorf("%w: clock_gettime: %v", ErrUnavailable, err)
	}
	return uint64(ts.Sec)*rawClockHz + uint64(ts.Nsec), nil
}

func counterFrequency() (uint64, error) {
	// Read once so a broken clock surfaces at Init rather than later.
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_MONOTONIC_RAW, &ts); err != nil {
		return 0, fmt.Errorf("%w: clock_gettime: %v", ErrUnavailable, err)
	}
	return rawClockHz, nil
}
