package service

import (
	"fmt"

	enigmaDomain "github.com/allisson/enigma/internal/enigma/domain"
	"github.com/allisson/enigma/internal/errors"
)

// Reflector sends the signal back through the rotor stack. It has no moving state.
type Reflector struct {
	reflectorType enigmaDomain.ReflectorType
	wiring        enigmaDomain.Permutation
}

// NewReflector builds a reflector and checks that its wiring is self-inverse and, unless
// the type allows it, free of fixed points.
func NewReflector(spec enigmaDomain.ReflectorSpec) (*Reflector, error) {
	wiring, err := enigmaDomain.NewPermutation(spec.Wiring)
	if err != nil {
		return nil, err
	}

	if !wiring.IsInvolution() {
		return nil, errors.Wrap(
			enigmaDomain.ErrInvalidReflector,
			fmt.Sprintf("reflector %s is not self-inverse", string(spec.Type)),
		)
	}
	if !spec.AllowFixedPoints && wiring.HasFixedPoint() {
		return nil, errors.Wrap(
			enigmaDomain.ErrInvalidReflector,
			fmt.Sprintf("reflector %s maps a letter to itself", string(spec.Type)),
		)
	}

	return &Reflector{reflectorType: spec.Type, wiring: wiring}, nil
}

// Type returns the catalog type of the reflector.
func (r *Reflector) Type() enigmaDomain.ReflectorType {
	return r.reflectorType
}

// Reflect returns the letter wired to l.
func (r *Reflector) Reflect(l enigmaDomain.Letter) enigmaDomain.Letter {
	return r.wiring.Apply(l)
}
