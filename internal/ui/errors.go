package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

const (
	maxErrorLines  = 2
	errorPrefix    = "Error: "
	minErrorWidth  = 10
	truncationMark = "..."
)

// clearErrorMsg is sent after the error clear delay. The sequence number ties it to
// the error that scheduled it so a newer error is not cleared early.
type clearErrorMsg struct {
	seq int
}

// ErrorManager holds the error shown under the input line and clears it after a delay.
type ErrorManager struct {
	currentError    error
	errorClearDelay time.Duration
	seq             int
}

// NewErrorManager creates a new ErrorManager with the specified auto-clear delay.
func NewErrorManager(errorClearDelay time.Duration) *ErrorManager {
	return &ErrorManager{errorClearDelay: errorClearDelay}
}

// SetError sets the current error and returns the command that clears it
func (em *ErrorManager) SetError(err error) tea.Cmd {
	em.currentError = err
	em.seq++
	if err == nil || em.errorClearDelay <= 0 {
		return nil
	}
	seq := em.seq
	return tea.Tick(em.errorClearDelay, func(time.Time) tea.Msg {
		return clearErrorMsg{seq: seq}
	})
}

// HandleClear clears the error if msg belongs to the current one
func (em *ErrorManager) HandleClear(msg clearErrorMsg) {
	if msg.seq == em.seq {
		em.currentError = nil
	}
}

// GetError returns the current error.
func (em *ErrorManager) GetError() error {
	return em.currentError
}

// HasError returns true if there is a current error.
func (em *ErrorManager) HasError() bool {
	return em.currentError != nil
}

// formatErrorForDisplay wraps an error to at most maxErrorLines of maxWidth cells,
// ending in "..." when the message does not fit.
func formatErrorForDisplay(err error, maxWidth int) string {
	if err == nil {
		return ""
	}

	message := err.Error()
	if strings.TrimSpace(message) == "" {
		return errorPrefix + "unknown error"
	}

	width := max(maxWidth, minErrorWidth+ansi.StringWidth(errorPrefix))
	wrapped := ansi.Wrap(errorPrefix+strings.Join(strings.Fields(message), " "), width, "")
	lines := strings.Split(wrapped, "\n")
	if len(lines) <= maxErrorLines {
		return wrapped
	}

	lines = lines[:maxErrorLines]
	lines[maxErrorLines-1] = ansi.Truncate(lines[maxErrorLines-1], width-len(truncationMark), "") + truncationMark
	return strings.Join(lines, "\n")
}
