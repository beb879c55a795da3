// Package core defines the types shared across the ticklog pipeline.
//
// It provides the Level type for severity filtering, the Entry type
// that represents a single log event, and the Field type for
// zero-allocation structured key-value pairs.
//
// Entry objects are pooled via sync.Pool so the hot path stays
// allocation-free. Callers obtain an Entry with GetEntry and must hand
// it back with PutEntry once the handler has consumed it. The pool
// pre-allocates the Fields slice with capacity 8, which covers most
// log calls without a slice growth.
//
// Field encodes values into fixed-size numeric slots (Int64, Float64)
// wherever possible so common types like int, bool, uint64 tick counts
// and time.Time never escape to the heap. The Any slot is a fallback
// for arbitrary types and will allocate.
//
// The coarse clock (StartCoarseClock, CoarseNow) trades up to ~0.5ms of
// timestamp accuracy for skipping a time.Now() call per entry.
package core
