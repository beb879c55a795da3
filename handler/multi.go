package handler

import (
	"time"

	"github.com/ticklog/ticklog/core"
)

// MultiHandler fans a log entry out to several child handlers.
type MultiHandler struct {
	handlers     []Handler
	fastHandlers []FastHandler // nil slot when the child doesn't implement it
	ownsEntry    []bool        // true when the child retains entries past Handle
	allFast      bool
}

// NewMultiHandler creates a multi-handler over the given children.
func NewMultiHandler(handlers ...Handler) *MultiHandler {
	m := &MultiHandler{
		handlers:     handlers,
		fastHandlers: make([]FastHandler, len(handlers)),
		ownsEntry:    make([]bool, len(handlers)),
		allFast:      true,
	}
	for i, h := range handlers {
		if fh, ok := h.(FastHandler); ok {
			m.fastHandlers[i] = fh
		} else {
			m.allFast = false
		}
		// Children that don't declare recycling behavior are assumed
		// to retain entries, so they get copies too.
		if rc, ok := h.(interface{ CanRecycleEntry() bool }); ok {
			m.ownsEntry[i] = !rc.CanRecycleEntry()
		} else {
			m.ownsEntry[i] = true
		}
	}
	return m
}

// HandleLog processes log data directly. When every child implements
// FastHandler no Entry is allocated at all.
func (h *MultiHandler) HandleLog(t time.Time, level core.Level, msg string, loggerFields, callFields []core.Field, caller core.CallerInfo) error {
	if h.allFast {
		var lastErr error
		for _, fh := range h.fastHandlers {
			if err := fh.HandleLog(t, level, msg, loggerFields, callFields, caller); err != nil {
				lastErr = err
			}
		}
		return lastErr
	}

	// Mixed children: build one pooled entry for the slow ones.
	entry := core.GetEntry()
	entry.Time = t
	entry.Level = level
	entry.Message = msg
	entry.Caller = caller
	if len(loggerFields) > 0 {
		entry.Fields = append(entry.Fields, loggerFields...)
	}
	if len(callFields) > 0 {
		entry.Fields = append(entry.Fields, callFields...)
	}

	var lastErr error
	for i, child := range h.handlers {
		if fh := h.fastHandlers[i]; fh != nil {
			if err := fh.HandleLog(t, level, msg, loggerFields, callFields, caller); err != nil {
				lastErr = err
			}
		} else if err := h.handleChild(i, child, entry); err != nil {
			lastErr = err
		}
	}
	core.PutEntry(entry)
	return lastErr
}

// Handle sends the entry to every child handler, returning the last
// error seen. Children that retain entries past Handle receive their
// own copy so no two workers recycle the same pointer.
func (h *MultiHandler) Handle(entry *core.Entry) error {
	var lastErr error
	for i, child := range h.handlers {
		if err := h.handleChild(i, child, entry); err != nil {
			lastErr = err
		}
	}
	return lastErr
}

func (h *MultiHandler) handleChild(i int, child Handler, entry *core.Entry) error {
	if h.ownsEntry[i] {
		return child.Handle(core.CloneEntry(entry))
	}
	return child.Handle(entry)
}

// CanRecycleEntry is always true: synchronous children are done with
// the entry when Handle returns, and retaining children only ever see
// copies.
func (h *MultiHandler) CanRecycleEntry() bool {
	return true
}

// Close closes all child handlers.
func (h *MultiHandler) Close() error {
	var lastErr error
	for _, child := range h.handlers {
		if err := child.Close(); err != nil {
			lastErr = err
		}
	}
	return lastErr
}
