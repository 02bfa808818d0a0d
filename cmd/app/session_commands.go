package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/urfave/cli/v3"

	"github.com/allisson/enigma/cmd/app/commands"
	"github.com/allisson/enigma/internal/app"
	"github.com/allisson/enigma/internal/config"
	"github.com/allisson/enigma/internal/console"
	enigmaDomain "github.com/allisson/enigma/internal/enigma/domain"
)

func getSessionCommands(version string) []*cli.Command {
	return []*cli.Command{
		{
			Name:  "run",
			Usage: "Start an interactive keyboard session",
			Flags: append(settingsFlags(),
				&cli.BoolFlag{
					Name:    "yes",
					Aliases: []string{"y"},
					Usage:   "Accept the settings without prompting",
				},
			),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				if err := cfg.Validate(); err != nil {
					return fmt.Errorf("invalid configuration: %w", err)
				}
				gin.SetMode(cfg.GetGinMode())

				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(context.Background()) }()

				logger := container.Logger()
				logger.Info("starting enigma", slog.String("version", version))

				sessionUseCase, err := container.SessionUseCase()
				if err != nil {
					return fmt.Errorf("failed to initialize session use case: %w", err)
				}

				opts := commands.SessionOptions{
					Defaults:        commands.MergeSettingsRequest(cfg.DefaultSettingsRequest(), settingsOverride(cmd)),
					Prompt:          !cmd.Bool("yes"),
					Terminal:        console.IsTerminal(os.Stdin),
					ShutdownTimeout: cfg.MetricsShutdownTimeout,
				}

				metricsServer, err := container.MetricsServer()
				if err != nil {
					return fmt.Errorf("failed to initialize metrics server: %w", err)
				}
				if metricsServer != nil {
					opts.MetricsServer = metricsServer
				}

				ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
				defer cancel()

				_, err = commands.RunSession(ctx, sessionUseCase, logger, opts, commands.DefaultIO())
				return err
			},
		},
		{
			Name:  "encrypt",
			Usage: "Encrypt or decrypt text in one go",
			Flags: append(settingsFlags(),
				&cli.StringFlag{
					Name:    "text",
					Aliases: []string{"t"},
					Usage:   "Text to encrypt (defaults to stdin)",
				},
				&cli.StringFlag{
					Name:    "file",
					Aliases: []string{"f"},
					Usage:   "Read the text from this file",
				},
				&cli.BoolFlag{
					Name:  "keep-non-letters",
					Usage: "Copy spaces, digits and punctuation through instead of dropping them",
				},
				&cli.IntFlag{
					Name:    "group",
					Aliases: []string{"g"},
					Usage:   "Split the output into groups of this many letters (0 disables)",
				},
			),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				if err := cfg.Validate(); err != nil {
					return fmt.Errorf("invalid configuration: %w", err)
				}

				container := app.NewContainer(cfg)
				defer func() { _ = container.Shutdown(context.Background()) }()

				req := commands.MergeSettingsRequest(cfg.DefaultSettingsRequest(), settingsOverride(cmd))
				settings, err := req.ToDomain()
				if err != nil {
					return fmt.Errorf("invalid enigma settings: %w", err)
				}

				sessionUseCase, err := container.SessionUseCase()
				if err != nil {
					return fmt.Errorf("failed to initialize session use case: %w", err)
				}

				return commands.RunEncrypt(
					ctx,
					sessionUseCase,
					container.Logger(),
					settings,
					commands.EncryptInput{Text: cmd.String("text"), File: cmd.String("file")},
					enigmaDomain.TextOptions{
						KeepNonLetters: cmd.Bool("keep-non-letters"),
						GroupSize:      int(cmd.Int("group")),
					},
					commands.DefaultIO(),
				)
			},
		},
	}
}
