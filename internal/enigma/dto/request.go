// Package dto provides data transfer objects for textual machine settings as they arrive
// from flags, environment variables and interactive prompts.
package dto

import (
	"errors"

	validation "github.com/jellydator/validation"

	enigmaDomain "github.com/allisson/enigma/internal/enigma/domain"
	customValidation "github.com/allisson/enigma/internal/validation"
)

// SettingsRequest holds machine settings in their textual form.
//
//	Rotors:       "I II III"          (left to right)
//	RingSettings: "AAA", "A A A" or "01 01 01"
//	Positions:    same notation as RingSettings
//	Plugboard:    "AV BS CG" (may be empty)
//	Reflector:    "B" or "UKW-B"
type SettingsRequest struct {
	Rotors       string `json:"rotors"`
	RingSettings string `json:"ring_settings"`
	Positions    string `json:"positions"`
	Plugboard    string `json:"plugboard"`
	Reflector    string `json:"reflector"`
}

// Validate checks if the settings request is well formed.
func (r *SettingsRequest) Validate() error {
	rotorCount := len(customValidation.SplitTokens(r.Rotors))

	return validation.ValidateStruct(r,
		validation.Field(&r.Rotors,
			validation.Required,
			customValidation.NotBlank,
			customValidation.TokenCount{Min: 1, Max: enigmaDomain.MaxRotors},
			validation.By(validateRotors),
		),
		validation.Field(&r.RingSettings,
			validation.Required,
			customValidation.DialPositions,
			validation.By(matchesRotorCount(rotorCount)),
		),
		validation.Field(&r.Positions,
			validation.Required,
			customValidation.DialPositions,
			validation.By(matchesRotorCount(rotorCount)),
		),
		validation.Field(&r.Plugboard,
			customValidation.LetterPairs,
			customValidation.TokenCount{Min: 0, Max: enigmaDomain.MaxPlugboardPairs},
		),
		validation.Field(&r.Reflector,
			validation.Required,
			customValidation.NotBlank,
			validation.By(validateReflector),
		),
	)
}

// validateRotors checks every rotor identifier against the catalog
func validateRotors(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return errors.New("must be a string")
	}
	for _, token := range customValidation.SplitTokens(s) {
		if _, err := enigmaDomain.ParseRotorType(token); err != nil {
			return errors.New("unknown rotor " + token + " (valid: I II III IV V VI VII VIII)")
		}
	}
	return nil
}

// validateReflector checks the reflector identifier against the catalog
func validateReflector(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return errors.New("must be a string")
	}
	if _, err := enigmaDomain.ParseReflectorType(s); err != nil {
		return errors.New("unknown reflector " + s + " (valid: A B C)")
	}
	return nil
}

// matchesRotorCount returns a rule that checks one dial entry per rotor
func matchesRotorCount(rotorCount int) validation.RuleFunc {
	return func(value interface{}) error {
		s, ok := value.(string)
		if !ok {
			return errors.New("must be a string")
		}
		if rotorCount > 0 && len(customValidation.ExpandLetterTokens(s)) != rotorCount {
			return errors.New("must have one entry per rotor")
		}
		return nil
	}
}
