//go:build !windows && !linux

package counter

import "time"

// Fallback for platforms without a dedicated counter API: nanoseconds
// since a package epoch, read from the runtime's monotonic clock.

var epoch = time.Now()

func readCounter() (uint64, error) {
	return uint64(time.Since(epoch).Nanoseconds()), nil
}

func counterFrequency() (uint64, error) {
	return 1_000_000_000, nil
}
