package handler

import (
	"sync"
	"time"

	"github.com/ticklog/ticklog/core"
)

// enqueueResult tells the caller how the overflow machinery disposed
// of an entry.
type enqueueResult int

const (
	// enqueued: the worker goroutine owns the entry now.
	enqueued enqueueResult = iota
	// droppedEntry: the entry was discarded per policy.
	droppedEntry
	// syncFallback: the caller must write the entry itself.
	syncFallback
)

// asyncQueue is the bounded entry queue shared by the asynchronous
// handlers. It implements the per-level overflow policies in one
// place; the console and file handlers differ only in their write
// functions.
type asyncQueue struct {
	ch           chan *core.Entry
	policies     map[core.Level]OverflowPolicy
	blockTimeout time.Duration
	drainTimeout time.Duration
	stats        *Stats
	closed       chan struct{}
	wg           sync.WaitGroup
}

func newAsyncQueue(size int, policies map[core.Level]OverflowPolicy, blockTimeout, drainTimeout time.Duration, stats *Stats, closed chan struct{}) *asyncQueue {
	return &asyncQueue{
		ch:           make(chan *core.Entry, size),
		policies:     policies,
		blockTimeout: blockTimeout,
		drainTimeout: drainTimeout,
		stats:        stats,
		closed:       closed,
	}
}

// enqueue applies the overflow policy for the entry's level.
func (q *asyncQueue) enqueue(e *core.Entry) enqueueResult {
	policy, ok := q.policies[e.Level]
	if !ok {
		policy = DropNewest
	}

	select {
	case q.ch <- e:
		return enqueued
	default:
	}

	// Queue is full.
	switch policy {
	case Block:
		timer := time.NewTimer(q.blockTimeout)
		defer timer.Stop()
		select {
		case q.ch <- e:
			return enqueued
		case <-timer.C:
			q.stats.IncrementBlocked()
			return syncFallback
		case <-q.closed:
			return syncFallback
		}

	case DropOldest:
		select {
		case old := <-q.ch:
			q.stats.IncrementDropped(old.Level)
			core.PutEntry(old)
		default:
		}
		select {
		case q.ch <- e:
			return enqueued
		default:
			q.stats.IncrementDropped(e.Level)
			return droppedEntry
		}

	default: // DropNewest
		q.stats.IncrementDropped(e.Level)
		return droppedEntry
	}
}

// start launches the worker goroutine. write errors terminate the
// worker; remaining entries are drained on close up to drainTimeout.
func (q *asyncQueue) start(write func(*core.Entry) error) {
	q.wg.Add(1)
	go func() {
		defer q.wg.Done()
		for {
			select {
			case e := <-q.ch:
				if err := write(e); err != nil {
					return
				}
				core.PutEntry(e)
			case <-q.closed:
				q.drain(write)
				return
			}
		}
	}()
}

func (q *asyncQueue) drain(write func(*core.Entry) error) {
	deadline := time.After(q.drainTimeout)
	for {
		select {
		case e := <-q.ch:
			if err := write(e); err != nil {
				return
			}
			core.PutEntry(e)
		case <-deadline:
			return
		default:
			// Queue empty.
			return
		}
	}
}

// stop waits for the worker to finish. The closed channel must
// already be closed by the caller.
func (q *asyncQueue) stop() {
	q.wg.Wait()
}
