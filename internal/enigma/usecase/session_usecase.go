package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	enigmaDomain "github.com/allisson/enigma/internal/enigma/domain"
	enigmaService "github.com/allisson/enigma/internal/enigma/service"
	apperrors "github.com/allisson/enigma/internal/errors"
)

// ctxCheckInterval is how many characters EncryptText processes between context checks.
const ctxCheckInterval = 4096

type sessionUseCase struct {
	builder enigmaService.MachineBuilder
	logger  *slog.Logger
}

// NewSessionUseCase creates a new SessionUseCase.
func NewSessionUseCase(builder enigmaService.MachineBuilder, logger *slog.Logger) SessionUseCase {
	return &sessionUseCase{
		builder: builder,
		logger:  logger,
	}
}

// Run encrypts key events until the source terminates, returns io.EOF or ctx is done.
// Every session owns its own machine, so concurrent sessions never share rotor state.
func (s *sessionUseCase) Run(
	ctx context.Context,
	settings enigmaDomain.Settings,
	source KeyEventSource,
	sink OutputSink,
) (*enigmaDomain.SessionSummary, error) {
	machine, err := s.builder.Build(settings)
	if err != nil {
		return nil, err
	}

	summary := &enigmaDomain.SessionSummary{
		ID:               uuid.New(),
		InitialPositions: machine.Positions(),
		StartedAt:        time.Now().UTC(),
	}
	logger := s.logger.With(slog.String("session_id", summary.ID.String()))
	logger.Info("session started",
		slog.String("rotors", settings.RotorNames()),
		slog.String("reflector", string(settings.Reflector)),
		slog.String("positions", enigmaDomain.LettersString(summary.InitialPositions)),
		slog.Int("plugboard_pairs", len(settings.Plugboard)),
	)

	finish := func() {
		summary.FinalPositions = machine.Positions()
		summary.EndedAt = time.Now().UTC()
		logger.Info("session ended",
			slog.Int("keystrokes", summary.Keystrokes),
			slog.String("positions", enigmaDomain.LettersString(summary.FinalPositions)),
		)
	}

	for {
		if err := ctx.Err(); err != nil {
			finish()
			return summary, err
		}

		event, err := source.Next(ctx)
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			finish()
			return summary, fmt.Errorf("failed to read key event: %w", err)
		}
		if event.Terminate {
			break
		}
		if !event.Letter.Valid() {
			logger.Debug("ignoring out of range key event", slog.Int("letter", int(event.Letter)))
			continue
		}

		output := machine.Encrypt(event.Letter)
		summary.Keystrokes++

		sink.Display(ctx, enigmaDomain.Keystroke{
			Input:     event.Letter,
			Output:    output,
			Positions: machine.Positions(),
		})
	}

	finish()
	return summary, nil
}

// EncryptText feeds text through a fresh machine. Lowercase input is folded to uppercase.
func (s *sessionUseCase) EncryptText(
	ctx context.Context,
	settings enigmaDomain.Settings,
	text string,
	opts enigmaDomain.TextOptions,
) (string, error) {
	if opts.GroupSize < 0 {
		return "", apperrors.Wrap(enigmaDomain.ErrInvalidTextOptions, "group size must not be negative")
	}
	if opts.GroupSize > 0 && opts.KeepNonLetters {
		return "", apperrors.Wrap(
			enigmaDomain.ErrInvalidTextOptions,
			"grouping cannot be combined with keeping non-letters",
		)
	}

	machine, err := s.builder.Build(settings)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	out.Grow(len(text))

	letters, seen := 0, 0
	for _, r := range text {
		seen++
		if seen%ctxCheckInterval == 1 {
			if err := ctx.Err(); err != nil {
				return "", err
			}
		}

		l, ok := enigmaDomain.LetterFromRune(r)
		if !ok {
			if opts.KeepNonLetters {
				out.WriteRune(r)
			}
			continue
		}

		if opts.GroupSize > 0 && letters > 0 && letters%opts.GroupSize == 0 {
			out.WriteByte(' ')
		}
		out.WriteRune(machine.Encrypt(l).Rune())
		letters++
	}

	s.logger.Debug("text encrypted",
		slog.Int("letters", letters),
		slog.String("positions", enigmaDomain.LettersString(machine.Positions())),
	)
	return out.String(), nil
}
