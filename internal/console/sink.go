package console

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	enigmaDomain "github.com/allisson/enigma/internal/enigma/domain"
)

// DisplaySink prints one translation row per key press:
//
//	A --> B    positions: A A B
type DisplaySink struct {
	mu      sync.Mutex
	w       io.Writer
	newline string
	err     error
}

// NewDisplaySink creates a sink writing to w. A terminal in raw mode does not translate
// "\n", so raw selects "\r\n" line endings.
func NewDisplaySink(w io.Writer, raw bool) *DisplaySink {
	newline := "\n"
	if raw {
		newline = "\r\n"
	}
	return &DisplaySink{w: w, newline: newline}
}

// WriteHeader prints the instructions and the column header of the translation table.
func (s *DisplaySink) WriteHeader() {
	s.write("Type letters to encrypt them. Press ESC to quit." + s.newline + s.newline)
	s.write("key --> lamp    rotor positions" + s.newline)
}

// Display prints the row for one key press. Write failures are kept for Err and later
// rows are dropped.
func (s *DisplaySink) Display(_ context.Context, keystroke enigmaDomain.Keystroke) {
	s.write(fmt.Sprintf("%c --> %c    positions: %s%s",
		keystroke.Input.Rune(),
		keystroke.Output.Rune(),
		spacedLetters(keystroke.Positions),
		s.newline,
	))
}

// Err returns the first write error, if any.
func (s *DisplaySink) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

func (s *DisplaySink) write(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.err != nil {
		return
	}
	_, s.err = io.WriteString(s.w, text)
}

// spacedLetters renders positions the way the machine windows show them: "A A B".
func spacedLetters(letters []enigmaDomain.Letter) string {
	parts := make([]string, len(letters))
	for i, l := range letters {
		parts[i] = l.String()
	}
	return strings.Join(parts, " ")
}
