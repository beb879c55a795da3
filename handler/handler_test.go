package handler

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ticklog/ticklog/core"
	"github.com/ticklog/ticklog/counter"
	"github.com/ticklog/ticklog/formatter"
)

// syncBuffer is a goroutine-safe bytes.Buffer for test sinks.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func testEntry(level core.Level, msg string) *core.Entry {
	return &core.Entry{
		Time:    time.Date(2026, 2, 18, 13, 0, 0, 0, time.UTC),
		Level:   level,
		Message: msg,
	}
}

func TestConsoleHandler_Sync(t *testing.T) {
	var buf syncBuffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer: &buf,
		Color:  ColorNever,
	})
	defer h.Close()

	if err := h.Handle(testEntry(core.InfoLevel, "hello")); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "[INFO]") || !strings.Contains(output, "hello") {
		t.Errorf("Unexpected output: %s", output)
	}
	if got := h.Stats().Processed; got != 1 {
		t.Errorf("Processed = %d, want 1", got)
	}
}

func TestConsoleHandler_ColorAlways(t *testing.T) {
	var buf syncBuffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer: &buf,
		Color:  ColorAlways,
	})
	defer h.Close()

	if err := h.Handle(testEntry(core.ErrorLevel, "boom")); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	output := buf.String()
	if !strings.HasPrefix(output, "\x1b[31m") {
		t.Errorf("Expected red prefix, got: %q", output)
	}
	if !strings.HasSuffix(output, "\x1b[0m\n") {
		t.Errorf("Expected reset before newline, got: %q", output)
	}
}

func TestConsoleHandler_ColorAutoNonTerminal(t *testing.T) {
	var buf syncBuffer
	h := NewConsoleHandler(ConsoleConfig{Writer: &buf})
	defer h.Close()

	if err := h.Handle(testEntry(core.InfoLevel, "plain")); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if strings.Contains(buf.String(), "\x1b[") {
		t.Errorf("Expected no ANSI codes for a buffer writer, got: %q", buf.String())
	}
}

func TestConsoleHandler_Async(t *testing.T) {
	var buf syncBuffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer: &buf,
		Async:  true,
		Color:  ColorNever,
	})

	entry := core.GetEntry()
	entry.Level = core.InfoLevel
	entry.Message = "queued"
	if err := h.Handle(entry); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if err := h.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !strings.Contains(buf.String(), "queued") {
		t.Errorf("Entry lost across Close(): %q", buf.String())
	}
}

func TestConsoleHandler_CloseIdempotent(t *testing.T) {
	h := NewConsoleHandler(ConsoleConfig{Writer: &syncBuffer{}, Async: true})
	if err := h.Close(); err != nil {
		t.Fatalf("first Close() error = %v", err)
	}
	if err := h.Close(); err != nil {
		t.Fatalf("second Close() error = %v", err)
	}
}

type failingHandler struct{ err error }

func (f *failingHandler) Handle(*core.Entry) error { return f.err }
func (f *failingHandler) Close() error             { return f.err }

func TestMultiHandler(t *testing.T) {
	var a, b syncBuffer
	h := NewMultiHandler(
		NewConsoleHandler(ConsoleConfig{Writer: &a, Color: ColorNever}),
		NewConsoleHandler(ConsoleConfig{Writer: &b, Color: ColorNever}),
	)
	defer h.Close()

	if err := h.Handle(testEntry(core.WarnLevel, "fanout")); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	for _, buf := range []*syncBuffer{&a, &b} {
		if !strings.Contains(buf.String(), "fanout") {
			t.Errorf("Child missed entry: %q", buf.String())
		}
	}
}

func TestMultiHandler_ErrorAggregation(t *testing.T) {
	wantErr := errors.New("sink down")
	var ok syncBuffer
	h := NewMultiHandler(
		&failingHandler{err: wantErr},
		NewConsoleHandler(ConsoleConfig{Writer: &ok, Color: ColorNever}),
	)

	err := h.Handle(testEntry(core.InfoLevel, "partial"))
	if !errors.Is(err, wantErr) {
		t.Errorf("Handle() error = %v, want %v", err, wantErr)
	}
	// The healthy child still received the entry.
	if !strings.Contains(ok.String(), "partial") {
		t.Errorf("Healthy child missed entry: %q", ok.String())
	}
}

func TestConsoleHandler_JSONFormatter(t *testing.T) {
	var buf syncBuffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer:    &buf,
		Formatter: formatter.NewJSONFormatter(formatter.Config{}),
		Color:     ColorNever,
	})
	defer h.Close()

	if err := h.Handle(testEntry(core.InfoLevel, "json line")); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if !strings.Contains(buf.String(), `"message":"json line"`) {
		t.Errorf("Unexpected output: %s", buf.String())
	}
}

// tickSource is a deterministic counter source: each Read advances
// one tick.
type tickSource struct{ n atomic.Uint64 }

func (s *tickSource) Read() (uint64, error)      { return s.n.Add(1), nil }
func (s *tickSource) Frequency() (uint64, error) { return 1000, nil }

func TestConsoleHandler_ColorConcurrentElapsed(t *testing.T) {
	elapsed := counter.NewRenderer(&tickSource{}, counter.DefaultOptions())
	if err := elapsed.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}

	var buf syncBuffer
	h := NewConsoleHandler(ConsoleConfig{
		Writer:    &buf,
		Color:     ColorAlways,
		Formatter: formatter.NewTextFormatter(formatter.Config{Elapsed: elapsed}),
	})
	defer h.Close()

	const goroutines = 8
	const perGoroutine = 25
	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perGoroutine; i++ {
				if err := h.Handle(testEntry(core.InfoLevel, "tick")); err != nil {
					t.Errorf("Handle() error = %v", err)
				}
			}
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != goroutines*perGoroutine {
		t.Fatalf("Got %d lines, want %d", len(lines), goroutines*perGoroutine)
	}
	for _, line := range lines {
		if !strings.Contains(line, "(") || !strings.Contains(line, ")") {
			t.Errorf("Line missing elapsed token: %q", line)
		}
		if !strings.HasSuffix(line, "\x1b[0m") {
			t.Errorf("Line missing color reset: %q", line)
		}
	}
}

// retainingHandler keeps the entry pointer past Handle, the way the
// async handlers hand entries to their workers.
type retainingHandler struct{ got *core.Entry }

func (r *retainingHandler) Handle(e *core.Entry) error { r.got = e; return nil }
func (r *retainingHandler) Close() error               { return nil }
func (r *retainingHandler) CanRecycleEntry() bool      { return false }

func TestMultiHandler_CopiesForRetainingChildren(t *testing.T) {
	a := &retainingHandler{}
	b := &retainingHandler{}
	h := NewMultiHandler(a, b)

	entry := testEntry(core.InfoLevel, "owned")
	entry.Fields = append(entry.Fields, core.Field{Key: "k", Kind: core.StringKind, Str: "v"})
	if err := h.Handle(entry); err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if a.got == entry || b.got == entry {
		t.Fatal("Retaining child received the caller's entry instead of a copy")
	}
	if a.got == b.got {
		t.Fatal("Retaining children share one entry pointer")
	}
	for _, got := range []*core.Entry{a.got, b.got} {
		if got.Message != "owned" || len(got.Fields) != 1 || got.Fields[0].Key != "k" {
			t.Errorf("Copy lost data: %+v", got)
		}
	}
	if !h.CanRecycleEntry() {
		t.Error("CanRecycleEntry() = false, want true")
	}
}
