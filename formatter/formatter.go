package formatter

import (
	"bytes"
	"io"
	"sync"

	"github.com/ticklog/ticklog/core"
	"github.com/ticklog/ticklog/counter"
)

// Formatter turns a log entry into bytes.
type Formatter interface {
	// Format formats a log entry into a freshly allocated byte slice.
	Format(entry *core.Entry) ([]byte, error)
}

// WriterFormatter is an optional interface for formatters that can
// write directly to a writer without an intermediate byte slice.
type WriterFormatter interface {
	// FormatTo formats a log entry and writes it to w.
	FormatTo(entry *core.Entry, w io.Writer) error
}

// BufferFormatter is an optional interface for formatters that can
// format into a caller-provided buffer, bypassing the internal pool.
type BufferFormatter interface {
	// FormatEntry formats a log entry into buf.
	FormatEntry(entry *core.Entry, buf *bytes.Buffer)
}

// Config holds configuration shared by the built-in formatters.
type Config struct {
	// IncludeCaller enables call-site information in the output.
	IncludeCaller bool

	// TimestampFormat is the time layout (empty selects a default per
	// formatter).
	TimestampFormat string

	// Elapsed, when non-nil, is an initialized counter renderer whose
	// token is emitted with every entry. The hosting handler serializes
	// formatting, which satisfies the renderer's single-goroutine
	// contract. A failed sample is emitted as no token at all.
	Elapsed *counter.Renderer
}

// bufferPool recycles format buffers.
var bufferPool = &sync.Pool{
	New: func() interface{} {
		b := new(bytes.Buffer)
		b.Grow(256)
		return b
	},
}

func getBuffer() *bytes.Buffer {
	buf := bufferPool.Get().(*bytes.Buffer)
	buf.Reset()
	return buf
}

func putBuffer(buf *bytes.Buffer) {
	if buf.Cap() > 64*1024 { // don't keep very large buffers
		return
	}
	bufferPool.Put(buf)
}
