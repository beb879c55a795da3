package counter

import "errors"

// ErrUnavailable is returned when the platform's high-resolution
// counter cannot be queried.
var ErrUnavailable = errors.New("high-resolution counter unavailable")

// Source provides access to a monotonic high-resolution counter. Read
// and Frequency are expected to be fast synchronous reads; neither
// takes a context.
type Source interface {
	// Read returns the current counter value in ticks.
	Read() (uint64, error)

	// Frequency returns the counter's tick rate in ticks per second.
	Frequency() (uint64, error)
}

// SystemSource reads the operating system's monotonic high-resolution
// counter. The backing API is selected at build time: the performance
// counter on Windows, CLOCK_MONOTONIC_RAW on Linux, and a runtime
// monotonic clock elsewhere.
type SystemSource struct{}

// Read implements Source.
func (SystemSource) Read() (uint64, error) { return readCounter() }

// Frequency implements Source.
func (SystemSource) Frequency() (uint64, error) { return counterFrequency() }
