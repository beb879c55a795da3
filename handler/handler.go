package handler

import (
	"time"

	"github.com/ticklog/ticklog/core"
)

// Handler consumes log entries.
type Handler interface {
	// Handle processes a log entry.
	Handle(entry *core.Entry) error

	// Close flushes pending entries and releases resources.
	Close() error
}

// FastHandler is an optional interface for handlers that can process
// log data directly without a pooled Entry.
type FastHandler interface {
	HandleLog(t time.Time, level core.Level, msg string, loggerFields, callFields []core.Field, caller core.CallerInfo) error
}
