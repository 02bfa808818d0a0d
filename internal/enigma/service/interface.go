// Package service implements the Enigma cipher engine: rotors, reflector, plugboard,
// the stepping rotor assembly and the machine that composes them.
package service

import (
	enigmaDomain "github.com/allisson/enigma/internal/enigma/domain"
)

// Cipher encrypts one letter per call, advancing its internal state every time.
// Implementations are not safe for concurrent use.
type Cipher interface {
	// Encrypt steps the rotors and returns the substitution of l.
	Encrypt(l enigmaDomain.Letter) enigmaDomain.Letter

	// Positions returns the visible rotor positions, left to right.
	Positions() []enigmaDomain.Letter
}

// MachineBuilder creates independent cipher instances from settings.
type MachineBuilder interface {
	// Build validates settings and returns a fresh machine in its initial state.
	Build(settings enigmaDomain.Settings) (Cipher, error)
}
