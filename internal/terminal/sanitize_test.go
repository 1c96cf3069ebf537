package terminal

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize_StripsColorSequences(t *testing.T) {
	assert.Equal(t, "ABC", Sanitize("A\x1b[31mB\x1b[0mC"))
}

func TestSanitize_SupportedFinalBytes(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"sgr reset", "a\x1b[mb", "ab"},
		{"sgr multi", "a\x1b[1;32;40mb", "ab"},
		{"cursor column", "a\x1b[10Gb", "ab"},
		{"erase line", "a\x1b[Kb", "ab"},
		{"erase line param", "a\x1b[2Kb", "ab"},
		{"cursor position", "a\x1b[3;4Hb", "ab"},
		{"cursor home", "a\x1b[Hb", "ab"},
		{"final F", "a\x1b[1Fb", "ab"},
		{"prompt", "\x1b[01;32muser@host\x1b[00m:\x1b[01;34m~\x1b[00m$ ", "user@host:~$ "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Sanitize(tt.input))
		})
	}
}

// Sequences outside the supported subset are a documented limitation.
func TestSanitize_LeavesUnsupportedSequences(t *testing.T) {
	tests := []string{
		"\x1b[2J",
		"\x1b[?25l",
		"\x1b[3A",
		"\x1b]0;title\x07",
		"\x1b(B",
	}

	for _, input := range tests {
		t.Run(strings.ReplaceAll(input, "\x1b", "ESC"), func(t *testing.T) {
			assert.Equal(t, input, Sanitize(input))
		})
	}
}

func TestSanitize_IdentityOnCleanInput(t *testing.T) {
	inputs := []string{"", "hello", "line1\nline2\r\n", "brackets [31m without escape", "unicode ✓ ünïcödé"}

	for _, input := range inputs {
		assert.Equal(t, input, Sanitize(input))
	}
}

func TestSanitize_Idempotent(t *testing.T) {
	inputs := []string{
		"A\x1b[31mB\x1b[0mC",
		"\x1b[\x1b[31mm",
		"\x1b[1\x1b[2mm",
		"\x1b\x1b[3m[5m",
		"x\x1b[2J\x1b[Ky",
		"\x1b[",
		"\x1b",
	}

	for _, input := range inputs {
		once := Sanitize(input)
		assert.Equal(t, once, Sanitize(once), "input %q", input)
	}
}

func TestSanitize_NestedSequenceCollapses(t *testing.T) {
	assert.Equal(t, "", Sanitize("\x1b[\x1b[31mm"))
	assert.Equal(t, "ok", Sanitize("o\x1b[1\x1b[2mmk"))
}

func TestStreamSanitizer_SplitEverywhereMatchesWhole(t *testing.T) {
	inputs := []string{
		"A\x1b[31mB\x1b[0mC",
		"\x1b[01;32muser@host\x1b[00m:~$ ls\r\n",
		"\x1b[12\x1b[3mm tail",
		"plain text only",
		"esc at end \x1b",
		"\x1b[2J stays \x1b[K",
	}

	for _, input := range inputs {
		whole := Sanitize(input)
		for cut := 0; cut <= len(input); cut++ {
			var s StreamSanitizer
			got := s.Push(input[:cut]) + s.Push(input[cut:]) + s.Flush()
			assert.Equal(t, whole, got, "input %q cut at %d", input, cut)
		}
	}
}

func TestStreamSanitizer_HoldsIncompleteTail(t *testing.T) {
	var s StreamSanitizer

	assert.Equal(t, "red: ", s.Push("red: \x1b[3"))
	assert.Equal(t, "\x1b[3", s.Pending())
	assert.Equal(t, "x", s.Push("1mx"))
	assert.Equal(t, "", s.Pending())
}

func TestStreamSanitizer_ReleasesUnresolvableTail(t *testing.T) {
	var s StreamSanitizer

	assert.Equal(t, "a", s.Push("a\x1b"))
	assert.Equal(t, "\x1bb", s.Push("b"))
}

func TestStreamSanitizer_BoundsPendingTail(t *testing.T) {
	var s StreamSanitizer
	long := "\x1b[" + strings.Repeat("1;", maxPendingTail)

	assert.Equal(t, long, s.Push(long))
	assert.Empty(t, s.Pending())
}
