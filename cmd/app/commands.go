package main

import (
	"github.com/urfave/cli/v3"

	enigmaDTO "github.com/allisson/enigma/internal/enigma/dto"
)

func getCommands(version string) []*cli.Command {
	cmds := []*cli.Command{}
	cmds = append(cmds, getSessionCommands(version)...)
	cmds = append(cmds, getInfoCommands()...)
	return cmds
}

// settingsFlags are shared by every command that builds a machine. Empty flags fall back
// to the ENIGMA_* environment defaults.
func settingsFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "rotors",
			Aliases: []string{"r"},
			Usage:   "Rotor order, left to right (e.g., \"I II III\")",
		},
		&cli.StringFlag{
			Name:  "rings",
			Usage: "Ring settings, letters or 1-26 (e.g., \"AAA\" or \"01 01 01\")",
		},
		&cli.StringFlag{
			Name:    "positions",
			Aliases: []string{"p"},
			Usage:   "Starting rotor positions (e.g., \"ADU\")",
		},
		&cli.StringFlag{
			Name:  "plugboard",
			Usage: "Plugboard pairs (e.g., \"AV BS CG\"), or \"none\"",
		},
		&cli.StringFlag{
			Name:  "reflector",
			Usage: "Reflector A, B or C",
		},
	}
}

func settingsOverride(cmd *cli.Command) enigmaDTO.SettingsRequest {
	return enigmaDTO.SettingsRequest{
		Rotors:       cmd.String("rotors"),
		RingSettings: cmd.String("rings"),
		Positions:    cmd.String("positions"),
		Plugboard:    cmd.String("plugboard"),
		Reflector:    cmd.String("reflector"),
	}
}
