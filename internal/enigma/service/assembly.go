package service

import (
	enigmaDomain "github.com/allisson/enigma/internal/enigma/domain"
)

// RotorAssembly is an ordered rotor stack, left to right. The rightmost rotor is the
// fast rotor and steps on every key press.
type RotorAssembly struct {
	rotors []*Rotor
}

// NewRotorAssembly takes ownership of rotors, ordered left to right.
func NewRotorAssembly(rotors []*Rotor) *RotorAssembly {
	owned := make([]*Rotor, len(rotors))
	copy(owned, rotors)
	return &RotorAssembly{rotors: owned}
}

// Len returns the number of rotors in the stack.
func (a *RotorAssembly) Len() int {
	return len(a.rotors)
}

// StepPlan reports which rotors will move on the next cycle without moving any of them.
//
// Every decision uses notch state from before the cycle:
//   - the rightmost rotor always steps;
//   - any other rotor steps when its right neighbour sits on a notch;
//   - a middle rotor sitting on its own notch steps as well (the double step), and its
//     left neighbour follows through the previous rule.
func (a *RotorAssembly) StepPlan() []bool {
	n := len(a.rotors)
	atNotch := make([]bool, n)
	for i, r := range a.rotors {
		atNotch[i] = r.IsAtNotch()
	}

	plan := make([]bool, n)
	for i := range n {
		switch {
		case i == n-1:
			plan[i] = true
		case atNotch[i+1]:
			plan[i] = true
		case i > 0 && atNotch[i]:
			plan[i] = true
		}
	}
	return plan
}

// Step runs one stepping cycle: compute the plan first, then move the rotors.
func (a *RotorAssembly) Step() {
	for i, move := range a.StepPlan() {
		if move {
			a.rotors[i].Step()
		}
	}
}

// Forward passes the signal through the rotors from right to left.
func (a *RotorAssembly) Forward(l enigmaDomain.Letter) enigmaDomain.Letter {
	for i := len(a.rotors) - 1; i >= 0; i-- {
		l = a.rotors[i].Forward(l)
	}
	return l
}

// Backward passes the signal through the rotors from left to right.
func (a *RotorAssembly) Backward(l enigmaDomain.Letter) enigmaDomain.Letter {
	for _, r := range a.rotors {
		l = r.Backward(l)
	}
	return l
}

// Positions returns the visible rotor positions, left to right.
func (a *RotorAssembly) Positions() []enigmaDomain.Letter {
	positions := make([]enigmaDomain.Letter, len(a.rotors))
	for i, r := range a.rotors {
		positions[i] = r.Position()
	}
	return positions
}
