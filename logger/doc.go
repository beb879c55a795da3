// Package logger is the public API of ticklog. Most users only need
// to import this package, plus counter when they want elapsed tokens.
//
// A Logger is immutable after construction — all fields, the level,
// and the handler are set once via the Builder and never modified.
// This makes Logger inherently safe for concurrent use without any
// locking on the read path.
//
// The package initializes a default Logger (async, InfoLevel, text
// format to stdout) in init(). The package-level functions Info,
// Error, Debugf, etc. delegate to this default instance, so simple
// programs can log without any setup:
//
//	logger.Info("ready", logger.Int("port", 8080))
//
// For custom configuration, use the Builder:
//
//	log := logger.NewBuilder().
//	    WithHandler(myHandler).
//	    WithLevel(logger.DebugLevel).
//	    WithCaller(true).
//	    Build()
//
// To stamp every line with a high-resolution elapsed value, hand an
// initialized counter.Renderer to the formatter:
//
//	r := counter.NewRenderer(nil, counter.DefaultOptions())
//	if err := r.Init(); err != nil {
//	    // the platform counter is unusable; do not log misleading timings
//	    panic(err)
//	}
//	h := handler.NewConsoleHandler(handler.ConsoleConfig{
//	    Formatter: formatter.NewTextFormatter(formatter.Config{Elapsed: r}),
//	})
//
// Child loggers with extra fields are created via With, which returns
// a new Logger that shares the same handler but carries additional
// default fields:
//
//	reqLog := log.With(logger.String("request_id", id))
//
// Level checks happen before any allocation, so filtered-out messages
// cost only a single integer comparison.
package logger
