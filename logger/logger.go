package logger

import (
	"fmt"
	"os"
	"time"

	"github.com/ticklog/ticklog/core"
	"github.com/ticklog/ticklog/handler"
)

// osExit is swapped out in tests
var osExit = os.Exit

// Logger is the main logging type. It is immutable after Build, which
// makes it safe for concurrent use without locking.
type Logger struct {
	handler       handler.Handler
	fastHandler   handler.FastHandler
	level         core.Level
	fields        []core.Field
	includeCaller bool
	callerSkip    int
	coarseTime    bool
	recycleEntry  bool
}

// Builder assembles Logger instances.
type Builder struct {
	handler       handler.Handler
	fastHandler   handler.FastHandler
	level         core.Level
	fields        []core.Field
	includeCaller bool
	callerSkip    int
	coarseTime    bool
	recycleEntry  bool
}

// NewBuilder creates a builder with InfoLevel and the default caller
// skip depth.
func NewBuilder() *Builder {
	return &Builder{
		level:      core.InfoLevel,
		callerSkip: 3,
	}
}

// WithHandler sets the handler.
func (b *Builder) WithHandler(h handler.Handler) *Builder {
	b.handler = h
	// Pre-compute the recycle decision so Build stays assertion-free.
	if rc, ok := h.(interface{ CanRecycleEntry() bool }); ok {
		b.recycleEntry = rc.CanRecycleEntry()
	} else {
		b.recycleEntry = false
	}
	// Cache FastHandler for the pool-free hot path.
	b.fastHandler, _ = h.(handler.FastHandler)
	return b
}

// WithLevel sets the minimum level.
func (b *Builder) WithLevel(level core.Level) *Builder {
	b.level = level
	return b
}

// WithFields adds default fields carried by every entry.
func (b *Builder) WithFields(fields ...core.Field) *Builder {
	b.fields = append(b.fields, fields...)
	return b
}

// WithCaller enables call-site capture.
func (b *Builder) WithCaller(enabled bool) *Builder {
	b.includeCaller = enabled
	return b
}

// WithCoarseTime stamps entries from the cached coarse clock instead
// of calling time.Now per entry, trading up to ~0.5ms of timestamp
// accuracy for a cheaper hot path. Starts the coarse clock.
func (b *Builder) WithCoarseTime(enabled bool) *Builder {
	b.coarseTime = enabled
	if enabled {
		core.StartCoarseClock()
	}
	return b
}

// Build creates the Logger.
func (b *Builder) Build() *Logger {
	return &Logger{
		handler:       b.handler,
		fastHandler:   b.fastHandler,
		level:         b.level,
		fields:        b.fields,
		includeCaller: b.includeCaller,
		callerSkip:    b.callerSkip,
		coarseTime:    b.coarseTime,
		recycleEntry:  b.recycleEntry,
	}
}

// With returns a child logger carrying additional default fields.
func (l *Logger) With(fields ...core.Field) *Logger {
	newFields := make([]core.Field, len(l.fields)+len(fields))
	copy(newFields, l.fields)
	copy(newFields[len(l.fields):], fields)

	child := *l
	child.fields = newFields
	return &child
}

// Log logs a message at the given level.
func (l *Logger) Log(level core.Level, msg string, fields ...core.Field) {
	if level < l.level {
		return
	}
	l.log(level, msg, fields)
}

func (l *Logger) now() time.Time {
	if l.coarseTime {
		return core.CoarseNow()
	}
	return time.Now()
}

// log dispatches to the handler. The level check has already happened.
func (l *Logger) log(level core.Level, msg string, fields []core.Field) {
	if l.handler == nil {
		return
	}

	// Fast path: no call-site fields and the handler can take the data
	// directly, skipping the entry pool. Variadic fields cannot pass
	// through the interface without escaping to the heap, hence the
	// len check.
	if l.fastHandler != nil && len(fields) == 0 {
		t := l.now()
		var caller core.CallerInfo
		if l.includeCaller {
			caller = core.GetCaller(l.callerSkip)
		}
		l.fastHandler.HandleLog(t, level, msg, l.fields, nil, caller)
		return
	}

	entry := core.GetEntry()
	entry.Time = l.now()
	entry.Level = level
	entry.Message = msg

	if len(l.fields) > 0 {
		entry.Fields = append(entry.Fields, l.fields...)
	}
	if len(fields) > 0 {
		entry.Fields = append(entry.Fields, fields...)
	}
	if l.includeCaller {
		entry.Caller = core.GetCaller(l.callerSkip)
	}

	if err := l.handler.Handle(entry); err != nil {
		return
	}
	if l.recycleEntry {
		core.PutEntry(entry)
	}
}

// Debug logs a debug message.
func (l *Logger) Debug(msg string, fields ...core.Field) {
	if core.DebugLevel < l.level {
		return
	}
	l.log(core.DebugLevel, msg, fields)
}

// Info logs an info message.
func (l *Logger) Info(msg string, fields ...core.Field) {
	if core.InfoLevel < l.level {
		return
	}
	l.log(core.InfoLevel, msg, fields)
}

// Warn logs a warning message.
func (l *Logger) Warn(msg string, fields ...core.Field) {
	if core.WarnLevel < l.level {
		return
	}
	l.log(core.WarnLevel, msg, fields)
}

// Error logs an error message.
func (l *Logger) Error(msg string, fields ...core.Field) {
	if core.ErrorLevel < l.level {
		return
	}
	l.log(core.ErrorLevel, msg, fields)
}

// Fatal logs a fatal message and exits with status 1.
func (l *Logger) Fatal(msg string, fields ...core.Field) {
	l.log(core.FatalLevel, msg, fields)
	osExit(1)
}

// Panic logs a panic message and panics.
func (l *Logger) Panic(msg string, fields ...core.Field) {
	l.log(core.PanicLevel, msg, fields)
	panic(msg)
}

// Debugf logs a formatted debug message.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if core.DebugLevel < l.level {
		return
	}
	l.log(core.DebugLevel, fmt.Sprintf(format, args...), nil)
}

// Infof logs a formatted info message.
func (l *Logger) Infof(format string, args ...interface{}) {
	if core.InfoLevel < l.level {
		return
	}
	l.log(core.InfoLevel, fmt.Sprintf(format, args...), nil)
}

// Warnf logs a formatted warning message.
func (l *Logger) Warnf(format string, args ...interface{}) {
	if core.WarnLevel < l.level {
		return
	}
	l.log(core.WarnLevel, fmt.Sprintf(format, args...), nil)
}

// Errorf logs a formatted error message.
func (l *Logger) Errorf(format string, args ...interface{}) {
	if core.ErrorLevel < l.level {
		return
	}
	l.log(core.ErrorLevel, fmt.Sprintf(format, args...), nil)
}

// Fatalf logs a formatted fatal message and exits with status 1.
func (l *Logger) Fatalf(format string, args ...interface{}) {
	l.log(core.FatalLevel, fmt.Sprintf(format, args...), nil)
	osExit(1)
}

// Panicf logs a formatted panic message and panics.
func (l *Logger) Panicf(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	l.log(core.PanicLevel, msg, nil)
	panic(msg)
}

// Close closes the logger's handler.
func (l *Logger) Close() error {
	if l.handler != nil {
		return l.handler.Close()
	}
	return nil
}
