package dto

import (
	"strconv"
	"strings"

	enigmaDomain "github.com/allisson/enigma/internal/enigma/domain"
	customValidation "github.com/allisson/enigma/internal/validation"
)

// ToDomain validates the request and converts it into machine settings.
// Validation failures are reported as ErrInvalidInput; structural problems that only
// show up once parsed (for example a letter used by two plugboard pairs) are reported
// by the domain as ErrConfiguration.
func (r *SettingsRequest) ToDomain() (enigmaDomain.Settings, error) {
	if err := r.Validate(); err != nil {
		return enigmaDomain.Settings{}, customValidation.WrapValidationError(err)
	}

	var s enigmaDomain.Settings
	for _, token := range customValidation.SplitTokens(r.Rotors) {
		t, err := enigmaDomain.ParseRotorType(token)
		if err != nil {
			return enigmaDomain.Settings{}, err
		}
		s.Rotors = append(s.Rotors, t)
	}

	s.RingSettings = parseDial(r.RingSettings)
	s.Positions = parseDial(r.Positions)

	reflector, err := enigmaDomain.ParseReflectorType(r.Reflector)
	if err != nil {
		return enigmaDomain.Settings{}, err
	}
	s.Reflector = reflector

	for _, token := range customValidation.SplitTokens(r.Plugboard) {
		runes := []rune(token)
		s.Plugboard = append(s.Plugboard, enigmaDomain.PlugPair{
			A: enigmaDomain.MustLetter(runes[0]),
			B: enigmaDomain.MustLetter(runes[1]),
		})
	}

	if err := s.Validate(); err != nil {
		return enigmaDomain.Settings{}, err
	}
	return s, nil
}

// FromDomain renders settings back into their textual form.
func FromDomain(s enigmaDomain.Settings) SettingsRequest {
	plugs := make([]string, len(s.Plugboard))
	for i, p := range s.Plugboard {
		plugs[i] = p.String()
	}

	return SettingsRequest{
		Rotors:       s.RotorNames(),
		RingSettings: enigmaDomain.LettersString(s.RingSettings),
		Positions:    enigmaDomain.LettersString(s.Positions),
		Plugboard:    strings.Join(plugs, " "),
		Reflector:    string(s.Reflector),
	}
}

// parseDial converts validated dial notation; numbers are 1-based as printed on the ring.
func parseDial(s string) []enigmaDomain.Letter {
	tokens := customValidation.ExpandLetterTokens(s)
	out := make([]enigmaDomain.Letter, 0, len(tokens))
	for _, token := range tokens {
		if n, err := strconv.Atoi(token); err == nil {
			out = append(out, enigmaDomain.Letter(n-1))
			continue
		}
		out = append(out, enigmaDomain.MustLetter([]rune(token)[0]))
	}
	return out
}
