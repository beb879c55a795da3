package logger_test

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/ticklog/ticklog/counter"
	"github.com/ticklog/ticklog/formatter"
	"github.com/ticklog/ticklog/handler"
	"github.com/ticklog/ticklog/logger"
)

func ExampleBuilder() {
	var buf bytes.Buffer
	h := handler.NewConsoleHandler(handler.ConsoleConfig{
		Writer: &buf,
		Color:  handler.ColorNever,
	})

	log := logger.NewBuilder().
		WithHandler(h).
		WithLevel(logger.DebugLevel).
		Build()

	log.Info("server ready", logger.Int("port", 8080))
	log.Close()

	fmt.Println(strings.Contains(buf.String(), "[INFO]"))
	fmt.Println(strings.Contains(buf.String(), "port=8080"))
	// Output:
	// true
	// true
}

// pacedSource advances half a second of ticks per read.
type pacedSource struct{ now uint64 }

func (s *pacedSource) Read() (uint64, error)      { s.now += 500; return s.now, nil }
func (s *pacedSource) Frequency() (uint64, error) { return 1000, nil }

func Example_elapsedLogging() {
	r := counter.NewRenderer(&pacedSource{}, counter.DefaultOptions())
	if err := r.Init(); err != nil {
		fmt.Println("init:", err)
		return
	}

	var buf bytes.Buffer
	h := handler.NewConsoleHandler(handler.ConsoleConfig{
		Writer:    &buf,
		Color:     handler.ColorNever,
		Formatter: formatter.NewTextFormatter(formatter.Config{Elapsed: r}),
	})
	log := logger.NewBuilder().WithHandler(h).Build()

	log.Info("step one")
	log.Info("step two")
	log.Close()

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		start := strings.IndexByte(line, '(')
		end := strings.IndexByte(line, ')')
		fmt.Println(line[start : end+1])
	}
	// Output:
	// (0.5000)
	// (1.0000)
}
