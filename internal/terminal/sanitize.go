// Package terminal removes terminal control sequences from shell output before display.
//
// Only a narrow subset is handled: CSI sequences with numeric parameters and a final
// byte of m, G, K, H or F (attributes and colors, cursor column, erase in line, cursor
// position, cursor previous line). Anything else, such as ESC[2J, ESC[?25l, cursor up
// (A) or OSC title sequences, is passed through untouched. This is a known limitation,
// not full terminal emulation.
package terminal

import (
	"regexp"
	"strings"
)

// escapeSequence matches one strippable sequence
var escapeSequence = regexp.MustCompile(`\x1b\[[0-9;]*[mGKHF]`)

// incompleteTail matches a suffix that could still turn into strippable sequences once
// more bytes arrive, including chains like ESC[1ESC[2 that collapse from the inside out
var incompleteTail = regexp.MustCompile(`(?:\x1b(?:\[[0-9;]*)?)+$`)

// maxPendingTail bounds how much text the stream sanitizer holds back
const maxPendingTail = 64

// Sanitize strips the supported sequences. Removing a sequence can join the
// surrounding bytes into a new one (ESC[ESC[0mm), so removal repeats until nothing
// matches; this makes Sanitize idempotent.
func Sanitize(text string) string {
	if !strings.Contains(text, "\x1b[") {
		return text
	}
	for {
		next := escapeSequence.ReplaceAllString(text, "")
		if next == text {
			return next
		}
		text = next
	}
}

// StreamSanitizer sanitizes text that arrives in arbitrary pieces. A sequence split
// across two pieces is held back until it can be resolved, so only new text is
// processed on every tick instead of the whole display buffer.
// Not safe for concurrent use; the presenter owns it.
type StreamSanitizer struct {
	pending string
}

// Push returns the displayable part of pending+text
func (s *StreamSanitizer) Push(text string) string {
	out := Sanitize(s.pending + text)
	s.pending = ""

	loc := incompleteTail.FindStringIndex(out)
	if loc == nil || len(out)-loc[0] > maxPendingTail {
		return out
	}
	s.pending = out[loc[0]:]
	return out[:loc[0]]
}

// Pending returns the held-back fragment
func (s *StreamSanitizer) Pending() string {
	return s.pending
}

// Flush returns and clears the held-back fragment as plain text
func (s *StreamSanitizer) Flush() string {
	out := s.pending
	s.pending = ""
	return out
}
