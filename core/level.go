package core

// Level is the severity of a log entry.
type Level int8

const (
	// DebugLevel for verbose diagnostic output
	DebugLevel Level = iota
	// InfoLevel for routine operational messages (default)
	InfoLevel
	// WarnLevel for conditions worth attention
	WarnLevel
	// ErrorLevel for failures
	ErrorLevel
	// FatalLevel for unrecoverable failures (causes os.Exit(1))
	FatalLevel
	// PanicLevel for programming errors (causes panic)
	PanicLevel
)

var levelNames = [...]string{
	DebugLevel: "DEBUG",
	InfoLevel:  "INFO",
	WarnLevel:  "WARN",
	ErrorLevel: "ERROR",
	FatalLevel: "FATAL",
	PanicLevel: "PANIC",
}

// String returns the upper-case name of the level.
func (l Level) String() string {
	if l < 0 || int(l) >= len(levelNames) {
		return "UNKNOWN"
	}
	return levelNames[l]
}
