// Package validation provides custom validation rules for the application.
package validation

import (
	"strconv"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/enigma/internal/errors"
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// SplitTokens splits a settings string on whitespace and commas, dropping empty tokens.
func SplitTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

// ExpandLetterTokens turns a single run of letters such as "AAA" into one token per
// letter. Anything else is returned as split by SplitTokens.
func ExpandLetterTokens(s string) []string {
	tokens := SplitTokens(s)
	if len(tokens) != 1 || len(tokens[0]) < 2 || !isLetters(tokens[0]) {
		return tokens
	}
	expanded := make([]string, 0, len(tokens[0]))
	for _, r := range tokens[0] {
		expanded = append(expanded, string(r))
	}
	return expanded
}

// TokenCount validates the number of tokens in a settings string.
type TokenCount struct {
	Min int
	Max int
}

// Validate checks that the token count falls within [Min, Max].
func (c TokenCount) Validate(value interface{}) error {
	s, ok := value.(string)
	if !ok {
		return validation.NewError("validation_token_count", "must be a string")
	}

	n := len(SplitTokens(s))
	if n < c.Min {
		return validation.NewError(
			"validation_token_count_min",
			"must contain at least "+strconv.Itoa(c.Min)+" entries",
		)
	}
	if c.Max > 0 && n > c.Max {
		return validation.NewError(
			"validation_token_count_max",
			"must contain at most "+strconv.Itoa(c.Max)+" entries",
		)
	}
	return nil
}

// isLetters checks if string is made only of ASCII letters
func isLetters(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
			return false
		}
	}
	return true
}

// isDialPosition checks if token is a single letter or a number between 1 and 26
func isDialPosition(token string) bool {
	if len(token) == 1 && isLetters(token) {
		return true
	}
	n, err := strconv.Atoi(token)
	return err == nil && n >= 1 && n <= 26
}

// DialPositions validates a list of letters (A-Z) or numbers (1-26), e.g. "A A A", "AAA" or "01 12 26".
var DialPositions = validation.NewStringRuleWithError(
	func(s string) bool {
		tokens := ExpandLetterTokens(s)
		if len(tokens) == 0 {
			return false
		}
		for _, token := range tokens {
			if !isDialPosition(token) {
				return false
			}
		}
		return true
	},
	validation.NewError("validation_dial_positions", "must be letters A-Z or numbers 1-26"),
)

// LetterPairs validates plugboard notation: pairs of two distinct letters, e.g. "AV BS CG".
var LetterPairs = validation.NewStringRuleWithError(
	func(s string) bool {
		for _, token := range SplitTokens(s) {
			if len(token) != 2 || !isLetters(token) {
				return false
			}
			if strings.EqualFold(token[:1], token[1:]) {
				return false
			}
		}
		return true
	},
	validation.NewError("validation_letter_pairs", "must be pairs of two different letters such as AB CD"),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
