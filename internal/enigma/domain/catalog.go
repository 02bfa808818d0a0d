package domain

import (
	"fmt"
	"strings"

	"github.com/allisson/enigma/internal/errors"
)

// RotorType identifies a physical rotor by its historical roman numeral.
type RotorType string

// ReflectorType identifies a reflector (Umkehrwalze) by its historical letter.
type ReflectorType string

// Rotors of the Enigma I and M3.
const (
	RotorI    RotorType = "I"
	RotorII   RotorType = "II"
	RotorIII  RotorType = "III"
	RotorIV   RotorType = "IV"
	RotorV    RotorType = "V"
	RotorVI   RotorType = "VI"
	RotorVII  RotorType = "VII"
	RotorVIII RotorType = "VIII"
)

// Wide reflectors of the Enigma I and M3.
const (
	ReflectorA ReflectorType = "A"
	ReflectorB ReflectorType = "B"
	ReflectorC ReflectorType = "C"
)

// RotorSpec is the fixed description of a rotor type. Notches lists the positions at
// which the rotor causes its left neighbour to step on the next keystroke.
type RotorSpec struct {
	Type    RotorType
	Wiring  string
	Notches string
}

// ReflectorSpec is the fixed description of a reflector type.
type ReflectorSpec struct {
	Type             ReflectorType
	Wiring           string
	AllowFixedPoints bool
}

var rotorCatalog = []RotorSpec{
	{Type: RotorI, Wiring: "EKMFLGDQVZNTOWYHXUSPAIBRCJ", Notches: "Q"},
	{Type: RotorII, Wiring: "AJDKSIRUXBLHWTMCQGZNPYFVOE", Notches: "E"},
	{Type: RotorIII, Wiring: "BDFHJLCPRTXVZNYEIWGAKMUSQO", Notches: "V"},
	{Type: RotorIV, Wiring: "ESOVPZJAYQUIRHXLNFTGKDCMWB", Notches: "J"},
	{Type: RotorV, Wiring: "VZBRGITYUPSDNHLXAWMJQOFECK", Notches: "Z"},
	{Type: RotorVI, Wiring: "JPGVOUMFYQBENHZRDKASXLICTW", Notches: "ZM"},
	{Type: RotorVII, Wiring: "NZJHGRCXMYSWBOUFAIVLPEKQDT", Notches: "ZM"},
	{Type: RotorVIII, Wiring: "FKQHTLXOCBJSPDZRAMEWNIUYGV", Notches: "ZM"},
}

var reflectorCatalog = []ReflectorSpec{
	{Type: ReflectorA, Wiring: "EJMZALYXVBWFCRQUONTSPIKHGD"},
	{Type: ReflectorB, Wiring: "YRUHQSLDPXNGOKMIEBFZCWVJAT"},
	{Type: ReflectorC, Wiring: "FVPJIAOYEDRZXWGCTKUQSBNMHL"},
}

// RotorCatalog returns every known rotor in catalog order.
func RotorCatalog() []RotorSpec {
	out := make([]RotorSpec, len(rotorCatalog))
	copy(out, rotorCatalog)
	return out
}

// ReflectorCatalog returns every known reflector in catalog order.
func ReflectorCatalog() []ReflectorSpec {
	out := make([]ReflectorSpec, len(reflectorCatalog))
	copy(out, reflectorCatalog)
	return out
}

// LookupRotor returns the spec for t or ErrUnknownRotor.
func LookupRotor(t RotorType) (RotorSpec, error) {
	for _, spec := range rotorCatalog {
		if spec.Type == t {
			return spec, nil
		}
	}
	return RotorSpec{}, errors.Wrapf(ErrUnknownRotor, "rotor %q", string(t))
}

// LookupReflector returns the spec for t or ErrUnknownReflector.
func LookupReflector(t ReflectorType) (ReflectorSpec, error) {
	for _, spec := range reflectorCatalog {
		if spec.Type == t {
			return spec, nil
		}
	}
	return ReflectorSpec{}, errors.Wrapf(ErrUnknownReflector, "reflector %q", string(t))
}

// ParseRotorType normalizes user input such as "iii" to a catalog rotor type.
func ParseRotorType(s string) (RotorType, error) {
	t := RotorType(strings.ToUpper(strings.TrimSpace(s)))
	if _, err := LookupRotor(t); err != nil {
		return "", err
	}
	return t, nil
}

// ParseReflectorType normalizes user input such as "b", "UKW-B" or "ukw b".
func ParseReflectorType(s string) (ReflectorType, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	name = strings.TrimPrefix(name, "UKW")
	name = strings.TrimLeft(name, "-_ ")

	t := ReflectorType(name)
	if _, err := LookupReflector(t); err != nil {
		return "", err
	}
	return t, nil
}

// NotchLetters converts a notch string such as "ZM" into letters.
func (s RotorSpec) NotchLetters() ([]Letter, error) {
	notches := make([]Letter, 0, len(s.Notches))
	for _, r := range s.Notches {
		l, ok := LetterFromRune(r)
		if !ok {
			return nil, errors.Wrap(
				ErrLetterOutOfRange,
				fmt.Sprintf("rotor %s notch %q", string(s.Type), r),
			)
		}
		notches = append(notches, l)
	}
	return notches, nil
}
