package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	enigmaDomain "github.com/allisson/enigma/internal/enigma/domain"
)

// letters converts "ADU" into letter indexes.
func letters(s string) []enigmaDomain.Letter {
	out := make([]enigmaDomain.Letter, 0, len(s))
	for _, r := range s {
		out = append(out, enigmaDomain.MustLetter(r))
	}
	return out
}

// pairs converts "AV BS" into plugboard pairs.
func pairs(s ...string) []enigmaDomain.PlugPair {
	out := make([]enigmaDomain.PlugPair, 0, len(s))
	for _, p := range s {
		out = append(out, enigmaDomain.PlugPair{
			A: enigmaDomain.MustLetter(rune(p[0])),
			B: enigmaDomain.MustLetter(rune(p[1])),
		})
	}
	return out
}

func newTestRotor(t *testing.T, rotorType enigmaDomain.RotorType, ring, position rune) *Rotor {
	t.Helper()
	spec, err := enigmaDomain.LookupRotor(rotorType)
	require.NoError(t, err)
	r, err := NewRotor(spec, enigmaDomain.MustLetter(ring), enigmaDomain.MustLetter(position))
	require.NoError(t, err)
	return r
}

// newTestAssembly builds a stack of rotors with rings at A and the given positions.
func newTestAssembly(t *testing.T, positions string, rotorTypes ...enigmaDomain.RotorType) *RotorAssembly {
	t.Helper()
	require.Len(t, positions, len(rotorTypes))
	rotors := make([]*Rotor, len(rotorTypes))
	for i, rt := range rotorTypes {
		rotors[i] = newTestRotor(t, rt, 'A', rune(positions[i]))
	}
	return NewRotorAssembly(rotors)
}

func classicSettings(rings, positions string, plugs ...string) enigmaDomain.Settings {
	return enigmaDomain.Settings{
		Rotors:       []enigmaDomain.RotorType{enigmaDomain.RotorI, enigmaDomain.RotorII, enigmaDomain.RotorIII},
		RingSettings: letters(rings),
		Positions:    letters(positions),
		Reflector:    enigmaDomain.ReflectorB,
		Plugboard:    pairs(plugs...),
	}
}

func encryptString(m *Machine, text string) string {
	out := make([]rune, 0, len(text))
	for _, r := range text {
		out = append(out, m.EncryptCharacter(r))
	}
	return string(out)
}
