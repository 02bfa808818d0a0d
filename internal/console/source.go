// Package console adapts terminals and byte streams to the session key event source and
// output sink, and renders settings for people sitting at the keyboard.
package console

import (
	"bufio"
	"context"
	"io"
	"os"
	"sync"

	"golang.org/x/term"

	enigmaDomain "github.com/allisson/enigma/internal/enigma/domain"
	"github.com/allisson/enigma/internal/errors"
)

// Control keys that end a session.
const (
	keyCtrlC  = 0x03
	keyCtrlD  = 0x04
	keyEscape = 0x1b
)

// ErrNotTerminal is returned when raw key capture is requested on a non-terminal file.
var ErrNotTerminal = errors.New("not a terminal")

// decodeKey maps one input rune to a key event. Runes that are neither letters nor
// control keys report false and are skipped without stepping the rotors.
func decodeKey(r rune) (enigmaDomain.KeyEvent, bool) {
	switch r {
	case keyEscape, keyCtrlC, keyCtrlD:
		return enigmaDomain.TerminateEvent(), true
	}
	if l, ok := enigmaDomain.LetterFromRune(r); ok {
		return enigmaDomain.LetterEvent(l), true
	}
	return enigmaDomain.KeyEvent{}, false
}

// ReaderSource reads key events from a byte stream such as a pipe. It returns io.EOF when
// the stream ends.
//
// Reads happen on a background goroutine, one rune per request, so Next can return as soon
// as its context is done. A rune read after Next gave up is kept for the following call.
type ReaderSource struct {
	r *bufio.Reader

	start    sync.Once
	stop     sync.Once
	requests chan struct{}
	results  chan readResult
	done     chan struct{}

	pending bool
	err     error
}

type readResult struct {
	r   rune
	err error
}

// NewReaderSource creates a ReaderSource over r. A *bufio.Reader is used as is, so input it
// already buffered is not lost.
func NewReaderSource(r io.Reader) *ReaderSource {
	return &ReaderSource{
		r:        bufio.NewReader(r),
		requests: make(chan struct{}),
		results:  make(chan readResult),
		done:     make(chan struct{}),
	}
}

// Next blocks until a letter or control key arrives, the stream fails or ctx is done.
// It is not safe for concurrent use.
func (s *ReaderSource) Next(ctx context.Context) (enigmaDomain.KeyEvent, error) {
	s.start.Do(func() { go s.readLoop() })

	for {
		if s.err != nil {
			return enigmaDomain.KeyEvent{}, s.err
		}
		if err := ctx.Err(); err != nil {
			return enigmaDomain.KeyEvent{}, err
		}

		if !s.pending {
			select {
			case s.requests <- struct{}{}:
				s.pending = true
			case <-s.done:
				return enigmaDomain.KeyEvent{}, io.ErrClosedPipe
			case <-ctx.Done():
				return enigmaDomain.KeyEvent{}, ctx.Err()
			}
		}

		select {
		case res := <-s.results:
			s.pending = false
			if res.err != nil {
				s.err = res.err
				continue
			}
			if event, ok := decodeKey(res.r); ok {
				return event, nil
			}
		case <-ctx.Done():
			return enigmaDomain.KeyEvent{}, ctx.Err()
		}
	}
}

// Close stops the read goroutine. A read already blocked on the stream ends when the
// stream delivers data or fails.
func (s *ReaderSource) Close() error {
	s.stop.Do(func() { close(s.done) })
	return nil
}

func (s *ReaderSource) readLoop() {
	for {
		select {
		case <-s.requests:
		case <-s.done:
			return
		}

		r, _, err := s.r.ReadRune()
		select {
		case s.results <- readResult{r: r, err: err}:
		case <-s.done:
			return
		}
		if err != nil {
			return
		}
	}
}

// TerminalSource captures single key presses from a terminal in raw mode, so letters arrive
// without waiting for Enter and nothing is echoed.
type TerminalSource struct {
	*ReaderSource
	fd    int
	state *term.State
}

// IsTerminal reports whether f is attached to a terminal.
func IsTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// OpenTerminal switches f into raw mode. Keys are read through buffered when it is not nil,
// so anything it already holds from f is delivered first. Close must be called to restore
// the terminal.
func OpenTerminal(f *os.File, buffered *bufio.Reader) (*TerminalSource, error) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return nil, errors.Wrap(ErrNotTerminal, f.Name())
	}

	state, err := term.MakeRaw(fd)
	if err != nil {
		return nil, errors.Wrap(err, "failed to enter raw mode")
	}

	var r io.Reader = f
	if buffered != nil {
		r = buffered
	}

	return &TerminalSource{
		ReaderSource: NewReaderSource(r),
		fd:           fd,
		state:        state,
	}, nil
}

// Close restores the terminal to the mode it was in before OpenTerminal.
func (t *TerminalSource) Close() error {
	_ = t.ReaderSource.Close()
	return term.Restore(t.fd, t.state)
}
