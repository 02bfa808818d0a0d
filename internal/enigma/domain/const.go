// Package domain defines the Enigma cipher domain model: letters, wiring permutations,
// the historical component catalog and the settings a machine is built from.
package domain

const (
	// AlphabetSize is the number of letters on every wheel, reflector and plugboard.
	AlphabetSize = 26

	// MaxRotors is the largest rotor stack a machine accepts. Every catalog rotor is a
	// distinct physical wheel, so a stack can never hold more rotors than the catalog.
	MaxRotors = 8

	// MaxPlugboardPairs is the number of cables needed to pair every letter.
	MaxPlugboardPairs = AlphabetSize / 2
)
