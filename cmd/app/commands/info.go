package commands

import (
	"fmt"
	"io"

	"github.com/allisson/enigma/internal/console"
	enigmaDomain "github.com/allisson/enigma/internal/enigma/domain"
	enigmaDTO "github.com/allisson/enigma/internal/enigma/dto"
)

// RunShowSettings validates settings and prints them, without encrypting anything.
func RunShowSettings(req enigmaDTO.SettingsRequest, writer io.Writer) error {
	settings, err := req.ToDomain()
	if err != nil {
		return fmt.Errorf("invalid enigma settings: %w", err)
	}
	return console.WriteSettings(writer, settings)
}

// RunListComponents prints the rotor and reflector catalog.
func RunListComponents(writer io.Writer) error {
	if err := console.WriteCatalog(writer); err != nil {
		return err
	}
	_, err := fmt.Fprintf(writer, "\nUp to %d rotors and %d plugboard pairs.\n",
		enigmaDomain.MaxRotors, enigmaDomain.MaxPlugboardPairs)
	return err
}
