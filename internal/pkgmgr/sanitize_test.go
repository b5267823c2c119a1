package pkgmgr

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeDiagnostic(t *testing.T) {
	tests := map[string]struct {
		in   string
		want string
	}{
		"plain text is trimmed":  {in: "  boom \n", want: "boom"},
		"ansi colors stripped":   {in: "\x1b[1;31mError\x1b[0m: nope", want: "Error: nope"},
		"control chars dropped":  {in: "a\x07b\rc", want: "abc"},
		"osc hyperlink stripped": {in: "see \x1b]8;;https://brew.sh\x1b\\docs\x1b]8;;\x1b\\", want: "see docs"},
		"cursor moves stripped":  {in: "\x1b[2K\x1b[1Gdone", want: "done"},
		"newlines kept":          {in: "line one\nline two", want: "line one\nline two"},
		"empty stays empty":      {in: "", want: ""},
	}

	for name, test := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, test.want, SanitizeDiagnostic(test.in))
		})
	}
}

func TestSanitizeDiagnosticTruncates(t *testing.T) {
	got := SanitizeDiagnostic(strings.Repeat("x", MaxDiagnosticLen+50))
	assert.True(t, strings.HasSuffix(got, "…"))
	assert.Equal(t, MaxDiagnosticLen+1, len([]rune(got)))
}

func TestOutcomeOK(t *testing.T) {
	assert.True(t, AlreadyPresent().OK())
	assert.True(t, Installed().OK())
	assert.False(t, Failed("x").OK())
	assert.Equal(t, "failed", StatusFailed.String())
	assert.Equal(t, "unknown", Status(0).String())
}
