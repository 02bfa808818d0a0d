package domain

import (
	"fmt"

	"github.com/allisson/enigma/internal/errors"
)

// Permutation is a bijective mapping over the 26 letters. The inverse table is built once
// at construction so backward lookups never search.
type Permutation struct {
	forward [AlphabetSize]Letter
	inverse [AlphabetSize]Letter
}

// IdentityPermutation maps every letter to itself.
func IdentityPermutation() Permutation {
	var p Permutation
	for i := range AlphabetSize {
		p.forward[i] = Letter(i)
		p.inverse[i] = Letter(i)
	}
	return p
}

// NewPermutation parses a wiring such as "EKMFLGDQVZNTOWYHXUSPAIBRCJ", where the letter at
// index i is the image of letter i. Lowercase is accepted.
func NewPermutation(wiring string) (Permutation, error) {
	runes := []rune(wiring)
	if len(runes) != AlphabetSize {
		return Permutation{}, errors.Wrap(
			ErrInvalidPermutation,
			fmt.Sprintf("wiring %q has %d letters, want %d", wiring, len(runes), AlphabetSize),
		)
	}

	table := make([]Letter, AlphabetSize)
	for i, r := range runes {
		l, ok := LetterFromRune(r)
		if !ok {
			return Permutation{}, errors.Wrap(
				ErrInvalidPermutation,
				fmt.Sprintf("wiring %q contains non-letter %q", wiring, r),
			)
		}
		table[i] = l
	}
	return PermutationFromTable(table)
}

// PermutationFromTable builds a permutation from an explicit image table.
func PermutationFromTable(table []Letter) (Permutation, error) {
	if len(table) != AlphabetSize {
		return Permutation{}, errors.Wrap(
			ErrInvalidPermutation,
			fmt.Sprintf("table has %d entries, want %d", len(table), AlphabetSize),
		)
	}

	var p Permutation
	var seen [AlphabetSize]bool
	for i, l := range table {
		if !l.Valid() {
			return Permutation{}, errors.Wrap(ErrInvalidPermutation, fmt.Sprintf("entry %d out of range", i))
		}
		if seen[l] {
			return Permutation{}, errors.Wrap(
				ErrInvalidPermutation,
				fmt.Sprintf("letter %s appears more than once", l),
			)
		}
		seen[l] = true
		p.forward[i] = l
		p.inverse[l] = Letter(i)
	}
	return p, nil
}

// Apply returns the image of l.
func (p Permutation) Apply(l Letter) Letter {
	return p.forward[l]
}

// Invert returns the preimage of l.
func (p Permutation) Invert(l Letter) Letter {
	return p.inverse[l]
}

// IsInvolution reports whether applying p twice yields the identity.
func (p Permutation) IsInvolution() bool {
	for i := range AlphabetSize {
		if p.forward[p.forward[i]] != Letter(i) {
			return false
		}
	}
	return true
}

// HasFixedPoint reports whether some letter maps to itself.
func (p Permutation) HasFixedPoint() bool {
	for i := range AlphabetSize {
		if p.forward[i] == Letter(i) {
			return true
		}
	}
	return false
}

// String renders the forward table in wiring notation.
func (p Permutation) String() string {
	return LettersString(p.forward[:])
}
