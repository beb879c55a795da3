package handler

import (
	"io"

	"golang.org/x/term"
)

type fdWriter interface {
	Fd() uintptr
}

// isTerminal reports whether w is an interactive terminal. Writers
// without a file descriptor (buffers, pipes wrapped in bufio, etc.)
// are never terminals.
func isTerminal(w io.Writer) bool {
	f, ok := w.(fdWriter)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
