package domain

// Letter is a normalized letter index in [0,25] where 0 is A and 25 is Z.
// All cipher arithmetic happens in this space.
type Letter uint8

// LetterFromRune normalizes an ASCII letter of either case.
// The second return value is false for anything outside A-Z and a-z.
func LetterFromRune(r rune) (Letter, bool) {
	switch {
	case r >= 'A' && r <= 'Z':
		return Letter(r - 'A'), true
	case r >= 'a' && r <= 'z':
		return Letter(r - 'a'), true
	default:
		return 0, false
	}
}

// MustLetter is like LetterFromRune but panics on non-letters. Intended for constants
// and for callers that already filtered their input.
func MustLetter(r rune) Letter {
	l, ok := LetterFromRune(r)
	if !ok {
		panic("enigma: not a letter: " + string(r))
	}
	return l
}

// IsLetter reports whether r is an ASCII letter.
func IsLetter(r rune) bool {
	_, ok := LetterFromRune(r)
	return ok
}

// Valid reports whether l lies in [0,25].
func (l Letter) Valid() bool {
	return l < AlphabetSize
}

// Add returns l shifted by n positions, wrapping around the alphabet. n may be negative.
func (l Letter) Add(n int) Letter {
	v := (int(l) + n) % AlphabetSize
	if v < 0 {
		v += AlphabetSize
	}
	return Letter(v)
}

// Rune renders l as an uppercase letter.
func (l Letter) Rune() rune {
	return 'A' + rune(l)
}

func (l Letter) String() string {
	if !l.Valid() {
		return "?"
	}
	return string(l.Rune())
}

// LettersString renders a sequence of letters, e.g. rotor positions, as "ADU".
func LettersString(letters []Letter) string {
	buf := make([]rune, len(letters))
	for i, l := range letters {
		buf[i] = l.Rune()
	}
	return string(buf)
}
