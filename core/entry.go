package core

import (
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

// Entry is a single log event with its metadata.
type Entry struct {
	Time    time.Time
	Level   Level
	Message string
	Fields  []Field
	Caller  CallerInfo
}

// CallerInfo identifies the call site that produced an entry.
// OK is false when the caller could not be resolved.
type CallerInfo struct {
	File     string
	BaseFile string
	Line     int
	Function string
	OK       bool
}

// entryPool recycles Entry values so the hot path stays allocation-free.
// The Fields slice is pre-sized for the common case.
var entryPool = sync.Pool{
	New: func() interface{} {
		return &Entry{
			Fields: make([]Field, 0, 8),
		}
	},
}

// GetEntry returns a cleared Entry from the pool with Time set to now.
func GetEntry() *Entry {
	e := entryPool.Get().(*Entry)
	e.Time = time.Now()
	e.Fields = e.Fields[:0]
	e.Caller = CallerInfo{}
	return e
}

// PutEntry returns an Entry to the pool. Callers must not retain the
// entry or any of its fields afterwards.
func PutEntry(e *Entry) {
	if e == nil {
		return
	}
	e.Fields = e.Fields[:0]
	e.Message = ""
	e.Caller = CallerInfo{}
	entryPool.Put(e)
}

// CloneEntry returns a pooled copy of e. Ownership of the copy passes
// to the caller; release it with PutEntry.
func CloneEntry(e *Entry) *Entry {
	c := entryPool.Get().(*Entry)
	c.Time = e.Time
	c.Level = e.Level
	c.Message = e.Message
	c.Fields = append(c.Fields[:0], e.Fields...)
	c.Caller = e.Caller
	return c
}

// GetCaller resolves the call site skip frames up the stack.
func GetCaller(skip int) CallerInfo {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	var fn string
	if f := runtime.FuncForPC(pc); f != nil {
		fn = f.Name()
	}

	return CallerInfo{
		File:     file,
		BaseFile: filepath.Base(file),
		Line:     line,
		Function: fn,
		OK:       true,
	}
}
