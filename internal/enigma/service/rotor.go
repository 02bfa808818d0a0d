package service

import (
	enigmaDomain "github.com/allisson/enigma/internal/enigma/domain"
)

// Rotor is one cipher wheel. Only its position changes after construction.
type Rotor struct {
	rotorType enigmaDomain.RotorType
	wiring    enigmaDomain.Permutation
	ring      enigmaDomain.Letter
	position  enigmaDomain.Letter
	notches   [enigmaDomain.AlphabetSize]bool
}

// NewRotor builds a rotor from its catalog spec with the given ring setting and starting
// position.
func NewRotor(spec enigmaDomain.RotorSpec, ring, position enigmaDomain.Letter) (*Rotor, error) {
	if !ring.Valid() || !position.Valid() {
		return nil, enigmaDomain.ErrLetterOutOfRange
	}

	wiring, err := enigmaDomain.NewPermutation(spec.Wiring)
	if err != nil {
		return nil, err
	}

	notchLetters, err := spec.NotchLetters()
	if err != nil {
		return nil, err
	}

	r := &Rotor{
		rotorType: spec.Type,
		wiring:    wiring,
		ring:      ring,
		position:  position,
	}
	for _, n := range notchLetters {
		r.notches[n] = true
	}
	return r, nil
}

// Type returns the catalog type of the rotor.
func (r *Rotor) Type() enigmaDomain.RotorType {
	return r.rotorType
}

// Position returns the letter currently visible in the rotor window.
func (r *Rotor) Position() enigmaDomain.Letter {
	return r.position
}

// RingSetting returns the ring offset.
func (r *Rotor) RingSetting() enigmaDomain.Letter {
	return r.ring
}

// Forward maps a signal travelling from the entry wheel towards the reflector.
func (r *Rotor) Forward(l enigmaDomain.Letter) enigmaDomain.Letter {
	shift := r.shift()
	return r.wiring.Apply(l.Add(shift)).Add(-shift)
}

// Backward maps a signal returning from the reflector. Backward(Forward(x)) == x at any
// fixed position.
func (r *Rotor) Backward(l enigmaDomain.Letter) enigmaDomain.Letter {
	shift := r.shift()
	return r.wiring.Invert(l.Add(shift)).Add(-shift)
}

// Step advances the rotor by one position and reports whether it landed on a notch.
func (r *Rotor) Step() bool {
	r.position = r.position.Add(1)
	return r.notches[r.position]
}

// IsAtNotch reports whether the current position is a notch position.
func (r *Rotor) IsAtNotch() bool {
	return r.notches[r.position]
}

func (r *Rotor) shift() int {
	return int(r.position) - int(r.ring)
}
