// Package handler provides the Handler interface and its built-in
// implementations for dispatching log entries to outputs.
//
// Handlers run synchronously by default. In async mode, entries are
// sent to a bounded channel and written by a background goroutine,
// which keeps the caller's hot path fast even under slow I/O. Both
// async handlers share one overflow implementation (asyncQueue), so
// the per-level policies behave identically everywhere.
//
// When the async queue is full, the entry's level selects an
// OverflowPolicy: DropNewest (default for Debug/Info/Warn),
// DropOldest, or Block with a timeout followed by a synchronous
// fallback write (default for Error and above). Low-priority logs
// never stall the application; errors are never silently dropped.
//
// Built-in handlers:
//
//   - ConsoleHandler writes formatted entries to any io.Writer
//     (default: stdout) with optional ANSI level colors, auto-enabled
//     when the writer is a terminal.
//   - FileHandler writes to a file with automatic rotation by size,
//     age, or interval, and prunes old backups.
//   - MultiHandler fans out a single entry to multiple child handlers.
//   - SlogHandler adapts the Handler interface to log/slog.Handler.
//
// All handlers track dropped, blocked, and processed counts via the
// Stats type, which can be queried at runtime.
package handler
