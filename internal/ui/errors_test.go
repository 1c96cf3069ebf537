package ui

import (
	"errors"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestFormatErrorForDisplay(t *testing.T) {
	assert.Empty(t, formatErrorForDisplay(nil, 80))
	assert.Equal(t, "Error: unknown error", formatErrorForDisplay(errors.New(" "), 80))
	assert.Equal(t, "Error: not connected", formatErrorForDisplay(errors.New("not connected"), 80))
}

func TestFormatErrorForDisplay_WrapsAndTruncates(t *testing.T) {
	err := errors.New(strings.Repeat("connection refused by remote host ", 10))

	got := formatErrorForDisplay(err, 40)

	lines := strings.Split(got, "\n")
	assert.Len(t, lines, maxErrorLines)
	assert.True(t, strings.HasPrefix(lines[0], errorPrefix))
	assert.True(t, strings.HasSuffix(lines[1], truncationMark))
	for _, line := range lines {
		assert.LessOrEqual(t, ansi.StringWidth(line), 40)
	}
}

func TestFormatErrorForDisplay_CollapsesNewlines(t *testing.T) {
	got := formatErrorForDisplay(errors.New("ssh: handshake failed:\n\tEOF"), 80)

	assert.Equal(t, "Error: ssh: handshake failed: EOF", got)
}
