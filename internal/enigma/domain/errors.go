package domain

import (
	"github.com/allisson/enigma/internal/errors"
)

// Configuration error definitions.
//
// Every structural problem with machine settings is detected when the machine is built
// and reported as one of these sentinels. They all wrap ErrConfiguration, which in turn
// wraps the shared ErrInvalidInput, so callers can match at whichever level they need.
var (
	// ErrConfiguration indicates the settings cannot produce a working machine.
	ErrConfiguration = errors.Wrap(errors.ErrInvalidInput, "invalid enigma configuration")

	// ErrUnknownRotor indicates a rotor identifier that is not in the catalog.
	ErrUnknownRotor = errors.Wrap(ErrConfiguration, "unknown rotor")

	// ErrUnknownReflector indicates a reflector identifier that is not in the catalog.
	ErrUnknownReflector = errors.Wrap(ErrConfiguration, "unknown reflector")

	// ErrDuplicateRotor indicates the same physical rotor was placed in two slots.
	ErrDuplicateRotor = errors.Wrap(ErrConfiguration, "duplicate rotor")

	// ErrNoRotors indicates an empty or oversized rotor stack.
	ErrNoRotors = errors.Wrap(ErrConfiguration, "rotor stack must hold between 1 and 8 rotors")

	// ErrSettingsMismatch indicates ring settings or positions do not match the rotor count.
	ErrSettingsMismatch = errors.Wrap(ErrConfiguration, "settings length does not match rotor count")

	// ErrLetterOutOfRange indicates a ring setting, position or notch outside [0,25].
	ErrLetterOutOfRange = errors.Wrap(ErrConfiguration, "letter out of range")

	// ErrInvalidPermutation indicates a wiring that is not a bijection over the alphabet.
	ErrInvalidPermutation = errors.Wrap(ErrConfiguration, "invalid permutation")

	// ErrInvalidReflector indicates a reflector wiring that is not self-inverse or maps a
	// letter to itself when its type forbids it.
	ErrInvalidReflector = errors.Wrap(ErrConfiguration, "invalid reflector wiring")

	// ErrInvalidPlugboard indicates a malformed pair or a letter used by more than one pair.
	ErrInvalidPlugboard = errors.Wrap(ErrConfiguration, "invalid plugboard")
)

// Text encryption error definitions.
var (
	// ErrInvalidTextOptions indicates text options that cannot be honoured together.
	ErrInvalidTextOptions = errors.Wrap(errors.ErrInvalidInput, "invalid text options")
)
