package handler

import (
	"sync/atomic"

	"github.com/ticklog/ticklog/core"
)

// OverflowPolicy decides what happens when an async queue is full.
type OverflowPolicy int

const (
	// DropNewest drops the incoming entry.
	DropNewest OverflowPolicy = iota
	// DropOldest evicts the oldest queued entry to make room.
	DropOldest
	// Block waits for space up to a timeout, then falls back to a
	// synchronous write.
	Block
)

// String returns the name of the policy.
func (p OverflowPolicy) String() string {
	switch p {
	case DropNewest:
		return "DropNewest"
	case DropOldest:
		return "DropOldest"
	case Block:
		return "Block"
	default:
		return "Unknown"
	}
}

// DefaultLevelPolicy returns the default per-level overflow policies:
// everything below Error may be dropped, errors and above block.
func DefaultLevelPolicy() map[core.Level]OverflowPolicy {
	return map[core.Level]OverflowPolicy{
		core.DebugLevel: DropNewest,
		core.InfoLevel:  DropNewest,
		core.WarnLevel:  DropNewest,
		core.ErrorLevel: Block,
		core.FatalLevel: Block,
		core.PanicLevel: Block,
	}
}

// Stats tracks per-handler counters. All methods are safe for
// concurrent use.
type Stats struct {
	dropped   [core.PanicLevel + 1]atomic.Uint64
	blocked   atomic.Uint64
	processed atomic.Uint64
}

// NewStats creates a zeroed Stats instance.
func NewStats() *Stats {
	return &Stats{}
}

// IncrementDropped counts one dropped entry at the given level.
func (s *Stats) IncrementDropped(level core.Level) {
	if level >= 0 && int(level) < len(s.dropped) {
		s.dropped[level].Add(1)
	}
}

// IncrementBlocked counts one blocked-then-fallback write.
func (s *Stats) IncrementBlocked() {
	s.blocked.Add(1)
}

// IncrementProcessed counts one successfully written entry.
func (s *Stats) IncrementProcessed() {
	s.processed.Add(1)
}

// GetDropped returns the dropped count for a level.
func (s *Stats) GetDropped(level core.Level) uint64 {
	if level < 0 || int(level) >= len(s.dropped) {
		return 0
	}
	return s.dropped[level].Load()
}

// GetBlocked returns the blocked count.
func (s *Stats) GetBlocked() uint64 {
	return s.blocked.Load()
}

// GetProcessed returns the processed count.
func (s *Stats) GetProcessed() uint64 {
	return s.processed.Load()
}

// GetTotalDropped returns the dropped count summed over all levels.
func (s *Stats) GetTotalDropped() uint64 {
	var total uint64
	for i := range s.dropped {
		total += s.dropped[i].Load()
	}
	return total
}

// Reset zeroes all counters.
func (s *Stats) Reset() {
	for i := range s.dropped {
		s.dropped[i].Store(0)
	}
	s.blocked.Store(0)
	s.processed.Store(0)
}

// Snapshot is a point-in-time copy of a handler's counters.
type Snapshot struct {
	Dropped   map[core.Level]uint64
	Blocked   uint64
	Processed uint64
}

// GetSnapshot returns a snapshot of the current counters.
func (s *Stats) GetSnapshot() Snapshot {
	dropped := make(map[core.Level]uint64, len(s.dropped))
	for i := range s.dropped {
		dropped[core.Level(i)] = s.dropped[i].Load()
	}
	return Snapshot{
		Dropped:   dropped,
		Blocked:   s.blocked.Load(),
		Processed: s.processed.Load(),
	}
}
