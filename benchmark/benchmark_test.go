package benchmark

import (
	"bytes"
	"testing"

	"github.com/ticklog/ticklog/core"
	"github.com/ticklog/ticklog/counter"
	"github.com/ticklog/ticklog/formatter"
	"github.com/ticklog/ticklog/handler"
	"github.com/ticklog/ticklog/logger"
)

// discardWriter is a no-op writer for benchmarking.
type discardWriter struct{}

func (w discardWriter) Write(p []byte) (int, error) {
	return len(p), nil
}

func newDiscardLogger(cfg formatter.Config) *logger.Logger {
	h := handler.NewConsoleHandler(handler.ConsoleConfig{
		Writer:    discardWriter{},
		Formatter: formatter.NewTextFormatter(cfg),
		Color:     handler.ColorNever,
	})
	return logger.NewBuilder().
		WithHandler(h).
		WithLevel(core.InfoLevel).
		Build()
}

func BenchmarkInfoNoFields(b *testing.B) {
	l := newDiscardLogger(formatter.Config{})
	defer l.Close()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("info message")
	}
}

func BenchmarkInfoWithFields(b *testing.B) {
	l := newDiscardLogger(formatter.Config{})
	defer l.Close()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("request handled",
			logger.String("method", "GET"),
			logger.Int("status", 200),
			logger.Uint64("ticks", uint64(i)),
		)
	}
}

func BenchmarkInfoWithElapsed(b *testing.B) {
	r := counter.NewRenderer(nil, counter.DefaultOptions())
	if err := r.Init(); err != nil {
		b.Skipf("platform counter unavailable: %v", err)
	}
	l := newDiscardLogger(formatter.Config{Elapsed: r})
	defer l.Close()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("info message")
	}
}

func BenchmarkFilteredOut(b *testing.B) {
	l := newDiscardLogger(formatter.Config{})
	defer l.Close()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Debug("never written")
	}
}

func BenchmarkNoopHandler(b *testing.B) {
	l := logger.NewBuilder().
		WithHandler(newNoopHandler()).
		WithLevel(core.InfoLevel).
		Build()

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		l.Info("into the void")
	}
}

func BenchmarkRendererRender(b *testing.B) {
	r := counter.NewRenderer(nil, counter.DefaultOptions())
	if err := r.Init(); err != nil {
		b.Skipf("platform counter unavailable: %v", err)
	}

	var buf bytes.Buffer
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		r.Render(nil, &buf)
	}
}

func BenchmarkRendererRenderRawTicks(b *testing.B) {
	r := counter.NewRenderer(nil, counter.Options{Normalize: true})
	if err := r.Init(); err != nil {
		b.Skipf("platform counter unavailable: %v", err)
	}

	var buf bytes.Buffer
	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		buf.Reset()
		r.Render(nil, &buf)
	}
}
