// Package terminal provides terminal detection utilities.
package terminal

import (
	"io"
	"os"

	"golang.org/x/term"
)

// isTerminal is a test seam over term.IsTerminal.
var isTerminal = term.IsTerminal

// IsInteractive reports whether stdin and stdout are both interactive terminals.
// Prompts require this.
func IsInteractive() bool {
	return isTerminal(int(os.Stdin.Fd())) && isTerminal(int(os.Stdout.Fd()))
}

// IsTerminalWriter reports whether w writes to a terminal.
// Only *os.File values can be terminals.
func IsTerminalWriter(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	return isTerminal(int(f.Fd()))
}
