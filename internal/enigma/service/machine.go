package service

import (
	"fmt"

	enigmaDomain "github.com/allisson/enigma/internal/enigma/domain"
	"github.com/allisson/enigma/internal/errors"
)

// Machine is a complete Enigma: plugboard, rotor assembly and reflector.
// A Machine holds mutable rotor state and must not be shared between goroutines.
type Machine struct {
	settings  enigmaDomain.Settings
	plugboard *Plugboard
	assembly  *RotorAssembly
	reflector *Reflector
}

// NewMachine validates settings and builds a machine in its initial state.
// Any failure wraps enigmaDomain.ErrConfiguration.
func NewMachine(settings enigmaDomain.Settings) (*Machine, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	settings = settings.Clone()

	rotors := make([]*Rotor, len(settings.Rotors))
	for i, t := range settings.Rotors {
		spec, err := enigmaDomain.LookupRotor(t)
		if err != nil {
			return nil, err
		}
		rotors[i], err = NewRotor(spec, settings.RingSettings[i], settings.Positions[i])
		if err != nil {
			return nil, errors.Wrap(err, fmt.Sprintf("rotor %s", string(t)))
		}
	}

	reflectorSpec, err := enigmaDomain.LookupReflector(settings.Reflector)
	if err != nil {
		return nil, err
	}
	reflector, err := NewReflector(reflectorSpec)
	if err != nil {
		return nil, err
	}

	plugboard, err := NewPlugboard(settings.Plugboard)
	if err != nil {
		return nil, err
	}

	return &Machine{
		settings:  settings,
		plugboard: plugboard,
		assembly:  NewRotorAssembly(rotors),
		reflector: reflector,
	}, nil
}

// Encrypt steps the rotors once and returns the substitution of l. Encryption and
// decryption are the same operation.
func (m *Machine) Encrypt(l enigmaDomain.Letter) enigmaDomain.Letter {
	if !l.Valid() {
		panic(fmt.Sprintf("enigma: letter index %d out of range", l))
	}

	m.assembly.Step()

	l = m.plugboard.Substitute(l)
	l = m.assembly.Forward(l)
	l = m.reflector.Reflect(l)
	l = m.assembly.Backward(l)
	return m.plugboard.Substitute(l)
}

// EncryptCharacter encrypts a letter of either case and returns it uppercase.
// r must be an ASCII letter; filtering other keys is the caller's job.
func (m *Machine) EncryptCharacter(r rune) rune {
	return m.Encrypt(enigmaDomain.MustLetter(r)).Rune()
}

// Positions returns the visible rotor positions, left to right.
func (m *Machine) Positions() []enigmaDomain.Letter {
	return m.assembly.Positions()
}

// Settings returns a copy of the settings the machine was built from.
func (m *Machine) Settings() enigmaDomain.Settings {
	return m.settings.Clone()
}

// MachineBuilderService implements MachineBuilder with NewMachine.
type MachineBuilderService struct{}

// NewMachineBuilder creates a new MachineBuilderService.
func NewMachineBuilder() *MachineBuilderService {
	return &MachineBuilderService{}
}

// Build creates a new machine from settings.
func (b *MachineBuilderService) Build(settings enigmaDomain.Settings) (Cipher, error) {
	m, err := NewMachine(settings)
	if err != nil {
		return nil, err
	}
	return m, nil
}
