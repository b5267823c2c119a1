package pkgmgr

import (
	"strings"
	"unicode"

	"github.com/charmbracelet/x/ansi"
)

// MaxDiagnosticLen bounds the diagnostic text kept on a failed Outcome, in runes.
const MaxDiagnosticLen = 512

// SanitizeDiagnostic prepares captured stderr for display: escape sequences
// and control characters are dropped and the text is trimmed and truncated.
func SanitizeDiagnostic(raw string) string {
	cleaned := ansi.Strip(raw)
	cleaned = strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, cleaned)
	cleaned = strings.TrimSpace(cleaned)

	runes := []rune(cleaned)
	if len(runes) <= MaxDiagnosticLen {
		return cleaned
	}
	return strings.TrimSpace(string(runes[:MaxDiagnosticLen])) + "…"
}
