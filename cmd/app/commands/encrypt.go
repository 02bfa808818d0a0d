package commands

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	enigmaDomain "github.com/allisson/enigma/internal/enigma/domain"
	enigmaUsecase "github.com/allisson/enigma/internal/enigma/usecase"
)

// EncryptInput selects where the text to encrypt comes from. Text wins over File; when
// both are empty the command reads its input stream.
type EncryptInput struct {
	Text string
	File string
}

// RunEncrypt feeds text through a machine built from settings and prints the result.
// Because the machine is reciprocal the same command decrypts.
func RunEncrypt(
	ctx context.Context,
	sessionUseCase enigmaUsecase.SessionUseCase,
	logger *slog.Logger,
	settings enigmaDomain.Settings,
	input EncryptInput,
	opts enigmaDomain.TextOptions,
	io IOTuple,
) error {
	text, err := readEncryptInput(input, io)
	if err != nil {
		return err
	}

	out, err := sessionUseCase.EncryptText(ctx, settings, text, opts)
	if err != nil {
		return fmt.Errorf("failed to encrypt text: %w", err)
	}

	if _, err := fmt.Fprintln(io.Writer, out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	logger.Debug("text encrypted",
		slog.String("rotors", settings.RotorNames()),
		slog.Int("input_bytes", len(text)),
	)
	return nil
}

func readEncryptInput(input EncryptInput, tuple IOTuple) (string, error) {
	switch {
	case input.Text != "":
		return input.Text, nil
	case input.File != "":
		data, err := os.ReadFile(input.File)
		if err != nil {
			return "", fmt.Errorf("failed to read input file: %w", err)
		}
		return string(data), nil
	default:
		if tuple.Reader == nil {
			return "", fmt.Errorf("no input: pass --text, --file or pipe text on stdin")
		}
		data, err := io.ReadAll(tuple.Reader)
		if err != nil {
			return "", fmt.Errorf("failed to read input: %w", err)
		}
		return string(data), nil
	}
}
