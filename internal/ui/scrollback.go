package ui

import (
	"strings"
	"unicode/utf8"
)

// DefaultScrollbackBytes bounds the text kept for the output view
const DefaultScrollbackBytes = 1 << 20

// Scrollback is the bounded text shown in the output viewport. When it grows past
// its limit the oldest text is dropped up to the next line break, or up to the next
// rune boundary when the overflow holds no line break.
type Scrollback struct {
	content string
	limit   int
}

// NewScrollback creates a scrollback holding at most limit bytes
func NewScrollback(limit int) *Scrollback {
	if limit <= 0 {
		limit = DefaultScrollbackBytes
	}
	return &Scrollback{limit: limit}
}

// Append adds text and trims from the front when over the limit
func (s *Scrollback) Append(text string) {
	if text == "" {
		return
	}
	s.content += text
	if len(s.content) <= s.limit {
		return
	}

	cut := len(s.content) - s.limit
	if i := strings.IndexByte(s.content[cut:], '\n'); i >= 0 {
		s.content = s.content[cut+i+1:]
		return
	}
	for cut < len(s.content) && !utf8.RuneStart(s.content[cut]) {
		cut++
	}
	s.content = s.content[cut:]
}

// String returns the retained text
func (s *Scrollback) String() string {
	return s.content
}

// Len returns the retained size in bytes
func (s *Scrollback) Len() int {
	return len(s.content)
}
