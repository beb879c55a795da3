//go:build windows

package counter

import "golang.org/x/sys/windows"

func readCounter() (uint64, error) {
	c := windows.QueryPerformanceCounter()
	if c <= 0 {
		return 0, ErrUnavailable
	}
	return uint64(c), nil
}

func counterFrequency() (uint64, error) {
	f := windows.QueryPerformanceFrequency()
	if f <= 0 {
		return 0, ErrUnavailable
	}
	return uint64(f), nil
}
