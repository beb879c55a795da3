package counter

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"

	"github.com/ticklog/ticklog/core"
)

// Options configure a Renderer. The zero value renders raw counter
// ticks unchanged; most callers want DefaultOptions (zero-based
// elapsed seconds with four aligned fractional digits).
type Options struct {
	// Normalize rebases every sample against the first sample captured
	// at Init, producing zero-based output.
	Normalize bool

	// Difference reports the delta between consecutive samples instead
	// of a cumulative value. Difference wins over Normalize when both
	// are set.
	Difference bool

	// Seconds divides ticks by the counter frequency and renders a
	// decimal seconds value. When false, raw ticks are rendered and
	// Precision and AlignDecimalPoint are ignored.
	Seconds bool

	// Precision is the number of fractional digits in seconds mode.
	Precision int

	// AlignDecimalPoint pads the seconds value with trailing zeros so
	// every rendered value carries exactly Precision fractional digits.
	AlignDecimalPoint bool
}

// DefaultOptions returns the standard configuration: Normalize and
// Seconds on, Precision 4, AlignDecimalPoint on.
func DefaultOptions() Options {
	return Options{
		Normalize:         true,
		Seconds:           true,
		Precision:         4,
		AlignDecimalPoint: true,
	}
}

// Validate reports option combinations worth surfacing to the user.
// The Difference+Normalize case is advisory: rendering is well defined
// (Difference wins) but the pairing is usually a misconfiguration.
func (o Options) Validate() error {
	if o.Precision < 0 {
		return fmt.Errorf("counter: negative precision %d", o.Precision)
	}
	if o.Difference && o.Normalize {
		return errors.New("counter: Difference and Normalize are both set; Difference takes precedence")
	}
	return nil
}

// Renderer samples a monotonic high-resolution counter and appends the
// value as one textual token per log entry.
//
// A Renderer is not safe for concurrent use: Render performs an
// unsynchronized read-modify-write of the previous sample. Hosting
// handlers serialize per-entry formatting, which satisfies this
// contract; sharing one Renderer across independently formatting
// sinks does not.
type Renderer struct {
	src  Source
	opts Options

	freq  float64
	first uint64
	last  uint64
	ready bool
}

// NewRenderer creates a Renderer reading from src. A nil src selects
// the platform SystemSource. Init must be called before the first
// Render.
func NewRenderer(src Source, opts Options) *Renderer {
	if src == nil {
		src = SystemSource{}
	}
	if opts.Precision < 0 {
		opts.Precision = 0
	}
	return &Renderer{src: src, opts: opts}
}

// Init queries the source for its tick frequency and a baseline
// sample. It must succeed once before Render is used. Failure means
// the counter is unusable on this platform and is not recoverable;
// the Renderer never substitutes a default frequency or sample, since
// that would fabricate timing data.
func (r *Renderer) Init() error {
	freq, err := r.src.Frequency()
	if err != nil {
		return fmt.Errorf("counter: query frequency: %w", err)
	}
	sample, err := r.src.Read()
	if err != nil {
		return fmt.Errorf("counter: baseline sample: %w", err)
	}

	r.freq = float64(freq)
	r.first = sample
	r.last = sample
	r.ready = true
	return nil
}

// Render samples the counter and appends one token to buf: no
// surrounding whitespace, no newline. The entry is an opaque trigger
// and is not inspected.
//
// A failed sample appends nothing and leaves all state untouched; the
// next call is independent and may succeed. Render is a no-op until
// Init has succeeded.
func (r *Renderer) Render(_ *core.Entry, buf *bytes.Buffer) {
	if !r.ready {
		return
	}
	raw, err := r.src.Read()
	if err != nil {
		return
	}

	// Unsigned wraparound is the intended arithmetic here; the counter
	// domain is the full 64-bit ring.
	var adjusted uint64
	switch {
	case r.opts.Difference:
		adjusted = raw - r.last
	case r.opts.Normalize:
		adjusted = raw - r.first
	default:
		adjusted = raw
	}
	r.last = raw

	if !r.opts.Seconds {
		buf.Write(strconv.AppendUint(buf.AvailableBuffer(), adjusted, 10))
		return
	}

	seconds := float64(adjusted) / r.freq
	out := strconv.AppendFloat(buf.AvailableBuffer(), seconds, 'f', r.opts.Precision, 64)
	if !r.opts.AlignDecimalPoint {
		// Still rounded to Precision, just not padded.
		out = trimFraction(out)
	}
	buf.Write(out)
}

// trimFraction drops trailing zeros after the decimal point, and the
// point itself when nothing remains behind it.
func trimFraction(b []byte) []byte {
	if bytes.IndexByte(b, '.') < 0 {
		return b
	}
	for len(b) > 0 && b[len(b)-1] == '0' {
		b = b[:len(b)-1]
	}
	if len(b) > 0 && b[len(b)-1] == '.' {
		b = b[:len(b)-1]
	}
	return b
}
