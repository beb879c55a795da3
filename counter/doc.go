// Package counter renders a monotonic high-resolution counter value
// as a per-entry token for log output.
//
// The hardware counter is abstracted behind the Source interface (one
// read, one frequency query) so the Renderer core is platform
// independent and testable with a deterministic fake. SystemSource is
// the platform implementation: the Windows performance counter,
// CLOCK_MONOTONIC_RAW on Linux, and the runtime monotonic clock
// elsewhere.
//
// A Renderer captures a baseline sample at Init and then, per log
// entry, samples again and renders either a zero-based elapsed value,
// the delta since the previous entry, or the raw counter, optionally
// scaled to seconds with a fixed number of fractional digits. The
// formatter package hosts a Renderer through the Config.Elapsed hook.
package counter
