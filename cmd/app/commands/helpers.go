// Package commands contains CLI command implementations for the application.
package commands

import (
	"io"
	"os"
	"strings"

	enigmaDTO "github.com/allisson/enigma/internal/enigma/dto"
)

// IOTuple holds reader and writer for commands, allowing for testing.
type IOTuple struct {
	Reader io.Reader
	Writer io.Writer
}

// DefaultIO returns an IOTuple with os.Stdin and os.Stdout.
func DefaultIO() IOTuple {
	return IOTuple{
		Reader: os.Stdin,
		Writer: os.Stdout,
	}
}

// MergeSettingsRequest overlays the non-empty fields of override onto base. The plugboard
// is replaced only when override sets it; use "none" (any case) to clear a configured plugboard.
func MergeSettingsRequest(base, override enigmaDTO.SettingsRequest) enigmaDTO.SettingsRequest {
	merged := base
	if override.Rotors != "" {
		merged.Rotors = override.Rotors
	}
	if override.RingSettings != "" {
		merged.RingSettings = override.RingSettings
	}
	if override.Positions != "" {
		merged.Positions = override.Positions
	}
	if override.Plugboard != "" {
		merged.Plugboard = override.Plugboard
		if strings.EqualFold(strings.TrimSpace(override.Plugboard), "none") {
			merged.Plugboard = ""
		}
	}
	if override.Reflector != "" {
		merged.Reflector = override.Reflector
	}
	return merged
}
