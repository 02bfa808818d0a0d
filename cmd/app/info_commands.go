package main

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/allisson/enigma/cmd/app/commands"
	"github.com/allisson/enigma/internal/config"
)

func getInfoCommands() []*cli.Command {
	return []*cli.Command{
		{
			Name:  "show-settings",
			Usage: "Print the machine settings that run and encrypt would use",
			Flags: settingsFlags(),
			Action: func(ctx context.Context, cmd *cli.Command) error {
				cfg := config.Load()
				req := commands.MergeSettingsRequest(cfg.DefaultSettingsRequest(), settingsOverride(cmd))
				return commands.RunShowSettings(req, commands.DefaultIO().Writer)
			},
		},
		{
			Name:  "list-components",
			Usage: "List the available rotors and reflectors",
			Action: func(ctx context.Context, cmd *cli.Command) error {
				return commands.RunListComponents(commands.DefaultIO().Writer)
			},
		},
	}
}
