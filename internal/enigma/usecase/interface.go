// Package usecase implements the orchestration around the cipher engine: interactive
// keystroke sessions and free text encryption.
package usecase

import (
	"context"

	enigmaDomain "github.com/allisson/enigma/internal/enigma/domain"
)

// KeyEventSource produces key presses for a session, one at a time. A source returns
// a terminate event or io.EOF when input ends. Only letter events reach the machine;
// sources filter everything else.
type KeyEventSource interface {
	Next(ctx context.Context) (enigmaDomain.KeyEvent, error)
}

// OutputSink receives every encrypted key press. Display is fire-and-forget.
type OutputSink interface {
	Display(ctx context.Context, keystroke enigmaDomain.Keystroke)
}

// SessionUseCase defines the interface for running the machine against key events or text.
type SessionUseCase interface {
	// Run builds a machine from settings and encrypts key events from source until it
	// terminates, reporting each key press to sink.
	Run(
		ctx context.Context,
		settings enigmaDomain.Settings,
		source KeyEventSource,
		sink OutputSink,
	) (*enigmaDomain.SessionSummary, error)

	// EncryptText builds a fresh machine from settings and feeds text through it.
	EncryptText(
		ctx context.Context,
		settings enigmaDomain.Settings,
		text string,
		opts enigmaDomain.TextOptions,
	) (string, error)
}
