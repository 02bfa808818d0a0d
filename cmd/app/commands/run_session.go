package commands

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/allisson/enigma/internal/console"
	enigmaDomain "github.com/allisson/enigma/internal/enigma/domain"
	enigmaDTO "github.com/allisson/enigma/internal/enigma/dto"
	enigmaUsecase "github.com/allisson/enigma/internal/enigma/usecase"
)

// MetricsServer is the part of the metrics HTTP server a session drives. Listen binds the
// address before the session starts; Serve runs beside it until Shutdown.
type MetricsServer interface {
	Listen(ctx context.Context) error
	Serve() error
	Shutdown(ctx context.Context) error
}

// SessionOptions configures an interactive session.
type SessionOptions struct {
	// Defaults are the settings offered at the prompt, or used directly without it.
	Defaults enigmaDTO.SettingsRequest
	// Prompt asks whether to accept Defaults before the session starts.
	Prompt bool
	// Terminal captures single key presses in raw mode. Reader must then be an *os.File.
	Terminal bool
	// MetricsServer runs for the lifetime of the session when not nil.
	MetricsServer MetricsServer
	// ShutdownTimeout bounds the metrics server shutdown.
	ShutdownTimeout time.Duration
}

// RunSession runs one interactive keyboard session. It prints the banner, settles the machine
// settings, prints them, and then echoes a translation row per key press until ESC, Ctrl-C,
// Ctrl-D or end of input.
func RunSession(
	ctx context.Context,
	sessionUseCase enigmaUsecase.SessionUseCase,
	logger *slog.Logger,
	opts SessionOptions,
	io IOTuple,
) (*enigmaDomain.SessionSummary, error) {
	reader := bufio.NewReader(io.Reader)

	if err := console.WriteBanner(io.Writer); err != nil {
		return nil, fmt.Errorf("failed to write banner: %w", err)
	}

	settings, err := resolveSessionSettings(reader, io, opts)
	if err != nil {
		return nil, err
	}

	_, _ = fmt.Fprintln(io.Writer, "\nMachine settings:")
	if err := console.WriteSettings(io.Writer, settings); err != nil {
		return nil, fmt.Errorf("failed to write settings: %w", err)
	}
	_, _ = fmt.Fprintln(io.Writer)

	if opts.MetricsServer != nil {
		if err := opts.MetricsServer.Listen(ctx); err != nil {
			return nil, fmt.Errorf("metrics server error: %w", err)
		}
	}

	source, raw, closeSource, err := openKeySource(reader, io, opts.Terminal)
	if err != nil {
		shutdownMetricsServer(opts, logger)
		return nil, err
	}
	defer func() {
		if err := closeSource(); err != nil {
			logger.Error("failed to restore terminal", slog.Any("error", err))
		}
	}()

	sink := console.NewDisplaySink(io.Writer, raw)
	sink.WriteHeader()

	summary, err := runWithMetricsServer(ctx, sessionUseCase, settings, source, sink, opts)
	if err != nil {
		return summary, err
	}
	if err := sink.Err(); err != nil {
		logger.Warn("failed to display keystrokes", slog.Any("error", err))
	}

	newline := "\n"
	if raw {
		newline = "\r\n"
	}
	_, _ = fmt.Fprintf(io.Writer, "%sSession ended after %d keystrokes. Rotor positions: %s%s",
		newline,
		summary.Keystrokes,
		enigmaDomain.LettersString(summary.FinalPositions),
		newline,
	)

	return summary, nil
}

func resolveSessionSettings(
	reader *bufio.Reader,
	io IOTuple,
	opts SessionOptions,
) (enigmaDomain.Settings, error) {
	if opts.Prompt {
		settings, err := PromptSettings(reader, io.Writer, opts.Defaults)
		if err != nil {
			return enigmaDomain.Settings{}, fmt.Errorf("failed to read settings: %w", err)
		}
		return settings, nil
	}

	settings, err := opts.Defaults.ToDomain()
	if err != nil {
		return enigmaDomain.Settings{}, fmt.Errorf("invalid enigma settings: %w", err)
	}
	return settings, nil
}

// openKeySource picks raw terminal capture or plain stream reading. Both share the prompt's
// buffered reader so no typed-ahead input is lost.
func openKeySource(
	reader *bufio.Reader,
	io IOTuple,
	terminal bool,
) (enigmaUsecase.KeyEventSource, bool, func() error, error) {
	if !terminal {
		source := console.NewReaderSource(reader)
		return source, false, source.Close, nil
	}

	f, ok := io.Reader.(*os.File)
	if !ok {
		return nil, false, nil, fmt.Errorf("terminal mode needs a file input: %w", console.ErrNotTerminal)
	}
	ts, err := console.OpenTerminal(f, reader)
	if err != nil {
		return nil, false, nil, fmt.Errorf("failed to open terminal: %w", err)
	}
	return ts, true, ts.Close, nil
}

// runWithMetricsServer runs the session and, when configured, the metrics server beside it.
// The server is shut down as soon as the session returns.
func runWithMetricsServer(
	ctx context.Context,
	sessionUseCase enigmaUsecase.SessionUseCase,
	settings enigmaDomain.Settings,
	source enigmaUsecase.KeyEventSource,
	sink enigmaUsecase.OutputSink,
	opts SessionOptions,
) (*enigmaDomain.SessionSummary, error) {
	if opts.MetricsServer == nil {
		return sessionUseCase.Run(ctx, settings, source, sink)
	}

	g, gctx := errgroup.WithContext(ctx)
	sessionDone := make(chan struct{})

	g.Go(func() error {
		if err := opts.MetricsServer.Serve(); err != nil {
			return fmt.Errorf("metrics server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		select {
		case <-gctx.Done():
		case <-sessionDone:
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), opts.ShutdownTimeout)
		defer cancel()
		if err := opts.MetricsServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("metrics server shutdown: %w", err)
		}
		return nil
	})

	var summary *enigmaDomain.SessionSummary
	g.Go(func() error {
		defer close(sessionDone)
		var err error
		summary, err = sessionUseCase.Run(gctx, settings, source, sink)
		return err
	})

	err := g.Wait()
	return summary, err
}

// shutdownMetricsServer releases a listener bound before the session could start.
func shutdownMetricsServer(opts SessionOptions, logger *slog.Logger) {
	if opts.MetricsServer == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), opts.ShutdownTimeout)
	defer cancel()
	if err := opts.MetricsServer.Shutdown(ctx); err != nil {
		logger.Error("failed to shut down metrics server", slog.Any("error", err))
	}
}
