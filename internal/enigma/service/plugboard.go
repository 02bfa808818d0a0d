package service

import (
	enigmaDomain "github.com/allisson/enigma/internal/enigma/domain"
)

// Plugboard swaps the letters of each cabled pair and leaves the rest untouched.
type Plugboard struct {
	wiring enigmaDomain.Permutation
}

// NewPlugboard builds a plugboard from letter pairs. An empty list yields the identity.
func NewPlugboard(pairs []enigmaDomain.PlugPair) (*Plugboard, error) {
	if err := enigmaDomain.ValidatePlugboard(pairs); err != nil {
		return nil, err
	}

	table := make([]enigmaDomain.Letter, enigmaDomain.AlphabetSize)
	for i := range table {
		table[i] = enigmaDomain.Letter(i)
	}
	for _, p := range pairs {
		table[p.A] = p.B
		table[p.B] = p.A
	}

	wiring, err := enigmaDomain.PermutationFromTable(table)
	if err != nil {
		return nil, err
	}
	return &Plugboard{wiring: wiring}, nil
}

// Substitute returns the partner of l, or l itself when it is not cabled.
func (p *Plugboard) Substitute(l enigmaDomain.Letter) enigmaDomain.Letter {
	return p.wiring.Apply(l)
}
