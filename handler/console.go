package handler

import (
	"bytes"
	"io"
	"os"
	"sync"
	"time"

	"github.com/ticklog/ticklog/core"
	"github.com/ticklog/ticklog/formatter"
)

// ColorMode controls ANSI coloring of console output.
type ColorMode int

const (
	// ColorAuto enables colors when the writer is a terminal.
	ColorAuto ColorMode = iota
	// ColorAlways forces colors on.
	ColorAlways
	// ColorNever forces colors off.
	ColorNever
)

// per-level ANSI line colors
var levelColors = [...]string{
	core.DebugLevel: "\x1b[90m",
	core.InfoLevel:  "\x1b[32m",
	core.WarnLevel:  "\x1b[33m",
	core.ErrorLevel: "\x1b[31m",
	core.FatalLevel: "\x1b[35m",
	core.PanicLevel: "\x1b[35m",
}

const colorReset = "\x1b[0m"

// ConsoleHandler writes log entries to an io.Writer, stdout by
// default, synchronously or through a bounded queue.
type ConsoleHandler struct {
	writer          io.Writer
	formatter       formatter.Formatter
	writerFormatter formatter.WriterFormatter
	bufferFormatter formatter.BufferFormatter
	color           bool
	async           bool
	queue           *asyncQueue
	closed          chan struct{}
	closeOnce       sync.Once
	mu              sync.Mutex
	stats           *Stats
}

// ConsoleConfig holds configuration for the console handler.
type ConsoleConfig struct {
	// Writer to write to (default: os.Stdout)
	Writer io.Writer
	// Formatter to use (default: TextFormatter)
	Formatter formatter.Formatter
	// Async enables asynchronous logging (default: false)
	Async bool
	// BufferSize is the size of the async queue (default: 1000)
	BufferSize int
	// Color controls ANSI coloring (default: ColorAuto)
	Color ColorMode
	// OverflowPolicy defines per-level overflow behavior (default: DefaultLevelPolicy)
	OverflowPolicy map[core.Level]OverflowPolicy
	// BlockTimeout is the timeout for the Block overflow policy (default: 100ms)
	BlockTimeout time.Duration
	// DrainTimeout is the timeout for draining the queue on Close (default: 5s)
	DrainTimeout time.Duration
}

// NewConsoleHandler creates a console handler.
func NewConsoleHandler(cfg ConsoleConfig) *ConsoleHandler {
	if cfg.Writer == nil {
		cfg.Writer = os.Stdout
	}
	if cfg.Formatter == nil {
		cfg.Formatter = formatter.NewTextFormatter(formatter.Config{})
	}
	if cfg.BufferSize <= 0 {
		cfg.BufferSize = 1000
	}
	if cfg.OverflowPolicy == nil {
		cfg.OverflowPolicy = DefaultLevelPolicy()
	}
	if cfg.BlockTimeout == 0 {
		cfg.BlockTimeout = 100 * time.Millisecond
	}
	if cfg.DrainTimeout == 0 {
		cfg.DrainTimeout = 5 * time.Second
	}

	h := &ConsoleHandler{
		writer:    cfg.Writer,
		formatter: cfg.Formatter,
		async:     cfg.Async,
		closed:    make(chan struct{}),
		stats:     NewStats(),
	}

	switch cfg.Color {
	case ColorAlways:
		h.color = true
	case ColorNever:
		h.color = false
	default:
		h.color = isTerminal(cfg.Writer)
	}

	// Cache the optional formatter interfaces for the zero-copy paths.
	h.writerFormatter, _ = cfg.Formatter.(formatter.WriterFormatter)
	h.bufferFormatter, _ = cfg.Formatter.(formatter.BufferFormatter)

	if h.async {
		h.queue = newAsyncQueue(cfg.BufferSize, cfg.OverflowPolicy, cfg.BlockTimeout, cfg.DrainTimeout, h.stats, h.closed)
		h.queue.start(h.write)
	}

	return h
}

// Handle processes a log entry.
func (h *ConsoleHandler) Handle(entry *core.Entry) error {
	if !h.async {
		return h.write(entry)
	}
	switch h.queue.enqueue(entry) {
	case syncFallback:
		return h.write(entry)
	default:
		return nil
	}
}

// colorBufPool holds buffers for the colored write path.
var colorBufPool = sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

// write formats and writes a single entry.
func (h *ConsoleHandler) write(entry *core.Entry) error {
	if h.color {
		return h.writeColored(entry)
	}

	if h.writerFormatter != nil {
		h.mu.Lock()
		err := h.writerFormatter.FormatTo(entry, h.writer)
		h.mu.Unlock()
		if err == nil {
			h.stats.IncrementProcessed()
		}
		return err
	}

	h.mu.Lock()
	data, err := h.formatter.Format(entry)
	if err != nil {
		h.mu.Unlock()
		return err
	}
	_, writeErr := h.writer.Write(data)
	h.mu.Unlock()

	if writeErr == nil {
		h.stats.IncrementProcessed()
	}
	return writeErr
}

// writeColored wraps the formatted line in the level's ANSI color,
// keeping the reset ahead of the trailing newline.
func (h *ConsoleHandler) writeColored(entry *core.Entry) error {
	buf := colorBufPool.Get().(*bytes.Buffer)
	buf.Reset()

	if int(entry.Level) >= 0 && int(entry.Level) < len(levelColors) {
		buf.WriteString(levelColors[entry.Level])
	}
	// Formatting runs under the lock so stateful formatter hooks see
	// entries one at a time.
	h.mu.Lock()
	if h.bufferFormatter != nil {
		h.bufferFormatter.FormatEntry(entry, buf)
	} else {
		data, err := h.formatter.Format(entry)
		if err != nil {
			h.mu.Unlock()
			colorBufPool.Put(buf)
			return err
		}
		buf.Write(data)
	}

	b := buf.Bytes()
	if n := len(b); n > 0 && b[n-1] == '\n' {
		buf.Truncate(n - 1)
		buf.WriteString(colorReset)
		buf.WriteByte('\n')
	} else {
		buf.WriteString(colorReset)
	}

	_, err := h.writer.Write(buf.Bytes())
	h.mu.Unlock()

	colorBufPool.Put(buf)
	if err == nil {
		h.stats.IncrementProcessed()
	}
	return err
}

// CanRecycleEntry reports whether the caller may recycle the entry
// after Handle returns. Entries handed to the async queue are owned by
// the worker.
func (h *ConsoleHandler) CanRecycleEntry() bool {
	return !h.async
}

// Stats returns a snapshot of the current counters.
func (h *ConsoleHandler) Stats() Snapshot {
	return h.stats.GetSnapshot()
}

// Close flushes the queue and shuts the handler down. Close is
// idempotent.
func (h *ConsoleHandler) Close() error {
	h.closeOnce.Do(func() {
		close(h.closed)
		if h.async {
			h.queue.stop()
		}
	})
	return nil
}
