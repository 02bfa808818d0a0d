package domain

import (
	"fmt"
	"strings"

	"github.com/allisson/enigma/internal/errors"
)

// PlugPair is one plugboard cable swapping two letters.
type PlugPair struct {
	A Letter
	B Letter
}

func (p PlugPair) String() string {
	return p.A.String() + p.B.String()
}

// Settings is the snapshot a machine is built from. Rotors, RingSettings and Positions
// are ordered left to right; the last rotor is the fast one next to the entry wheel.
type Settings struct {
	Rotors       []RotorType
	RingSettings []Letter
	Positions    []Letter
	Reflector    ReflectorType
	Plugboard    []PlugPair
}

// DefaultSettings returns rotors I II III with rings and positions at A, reflector B and
// an empty plugboard.
func DefaultSettings() Settings {
	return Settings{
		Rotors:       []RotorType{RotorI, RotorII, RotorIII},
		RingSettings: []Letter{0, 0, 0},
		Positions:    []Letter{0, 0, 0},
		Reflector:    ReflectorB,
	}
}

// Validate checks every structural invariant of the settings. Wiring tables are checked
// separately when the components are built.
func (s Settings) Validate() error {
	if len(s.Rotors) == 0 || len(s.Rotors) > MaxRotors {
		return errors.Wrap(ErrNoRotors, fmt.Sprintf("got %d rotors", len(s.Rotors)))
	}
	if len(s.RingSettings) != len(s.Rotors) {
		return errors.Wrap(
			ErrSettingsMismatch,
			fmt.Sprintf("%d ring settings for %d rotors", len(s.RingSettings), len(s.Rotors)),
		)
	}
	if len(s.Positions) != len(s.Rotors) {
		return errors.Wrap(
			ErrSettingsMismatch,
			fmt.Sprintf("%d positions for %d rotors", len(s.Positions), len(s.Rotors)),
		)
	}

	used := make(map[RotorType]bool, len(s.Rotors))
	for i, t := range s.Rotors {
		if _, err := LookupRotor(t); err != nil {
			return err
		}
		if used[t] {
			return errors.Wrap(ErrDuplicateRotor, fmt.Sprintf("rotor %s", string(t)))
		}
		used[t] = true

		if !s.RingSettings[i].Valid() {
			return errors.Wrap(ErrLetterOutOfRange, fmt.Sprintf("ring setting %d of rotor %d", s.RingSettings[i], i+1))
		}
		if !s.Positions[i].Valid() {
			return errors.Wrap(ErrLetterOutOfRange, fmt.Sprintf("position %d of rotor %d", s.Positions[i], i+1))
		}
	}

	if _, err := LookupReflector(s.Reflector); err != nil {
		return err
	}

	return ValidatePlugboard(s.Plugboard)
}

// ValidatePlugboard checks that every pair joins two different letters and that no letter
// is used by more than one pair.
func ValidatePlugboard(pairs []PlugPair) error {
	if len(pairs) > MaxPlugboardPairs {
		return errors.Wrap(ErrInvalidPlugboard, fmt.Sprintf("%d pairs exceed %d", len(pairs), MaxPlugboardPairs))
	}

	var used [AlphabetSize]bool
	for _, p := range pairs {
		if !p.A.Valid() || !p.B.Valid() {
			return errors.Wrap(ErrInvalidPlugboard, "pair letter out of range")
		}
		if p.A == p.B {
			return errors.Wrap(ErrInvalidPlugboard, fmt.Sprintf("letter %s paired with itself", p.A))
		}
		for _, l := range []Letter{p.A, p.B} {
			if used[l] {
				return errors.Wrap(ErrInvalidPlugboard, fmt.Sprintf("letter %s used by more than one pair", l))
			}
			used[l] = true
		}
	}
	return nil
}

// Clone returns a deep copy so callers cannot mutate a snapshot through shared slices.
func (s Settings) Clone() Settings {
	return Settings{
		Rotors:       append([]RotorType(nil), s.Rotors...),
		RingSettings: append([]Letter(nil), s.RingSettings...),
		Positions:    append([]Letter(nil), s.Positions...),
		Reflector:    s.Reflector,
		Plugboard:    append([]PlugPair(nil), s.Plugboard...),
	}
}

// RotorNames renders the rotor order, e.g. "I II III".
func (s Settings) RotorNames() string {
	names := make([]string, len(s.Rotors))
	for i, t := range s.Rotors {
		names[i] = string(t)
	}
	return strings.Join(names, " ")
}

// PlugboardString renders the plugboard pairs, e.g. "AV BS", or "none".
func (s Settings) PlugboardString() string {
	if len(s.Plugboard) == 0 {
		return "none"
	}
	pairs := make([]string, len(s.Plugboard))
	for i, p := range s.Plugboard {
		pairs[i] = p.String()
	}
	return strings.Join(pairs, " ")
}
