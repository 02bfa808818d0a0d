package domain

import (
	"time"

	"github.com/google/uuid"
)

// KeyEvent is one item from a key event source: either a letter or the end of input.
type KeyEvent struct {
	Letter    Letter
	Terminate bool
}

// LetterEvent wraps a letter key press.
func LetterEvent(l Letter) KeyEvent {
	return KeyEvent{Letter: l}
}

// TerminateEvent signals the end of a session.
func TerminateEvent() KeyEvent {
	return KeyEvent{Terminate: true}
}

// SessionSummary describes a finished interactive session.
type SessionSummary struct {
	ID               uuid.UUID
	Keystrokes       int
	InitialPositions []Letter
	FinalPositions   []Letter
	StartedAt        time.Time
	EndedAt          time.Time
}

// TextOptions controls how free text is fed through a machine.
type TextOptions struct {
	// KeepNonLetters copies characters other than A-Z through unchanged without stepping
	// the rotors. When false they are dropped.
	KeepNonLetters bool

	// GroupSize splits the ciphertext into space separated groups of this many letters.
	// Zero disables grouping. Grouping cannot be combined with KeepNonLetters.
	GroupSize int
}

// Keystroke is one encrypted key press as reported to an output sink. Positions are the
// visible rotor positions after the press, left to right.
type Keystroke struct {
	Input     Letter
	Output    Letter
	Positions []Letter
}
