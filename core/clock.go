package core

import (
	"sync"
	"sync/atomic"
	"time"
	"unsafe"
)

var (
	coarseOnce sync.Once
	coarseNow  unsafe.Pointer // *time.Time
)

// StartCoarseClock starts the background goroutine that refreshes a
// cached time.Now() every 500µs. Safe to call more than once; the
// goroutine is started exactly once and runs for the lifetime of the
// process, which is acceptable because logging usually does too.
func StartCoarseClock() {
	coarseOnce.Do(func() {
		t := time.Now()
		atomic.StorePointer(&coarseNow, unsafe.Pointer(&t))
		go func() {
			ticker := time.NewTicker(500 * time.Microsecond)
			for range ticker.C {
				t := time.Now()
				atomic.StorePointer(&coarseNow, unsafe.Pointer(&t))
			}
		}()
	})
}

// CoarseNow returns the most recently cached wall-clock reading.
// StartCoarseClock must have been called first.
func CoarseNow() time.Time {
	return *(*time.Time)(atomic.LoadPointer(&coarseNow))
}
