package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	validation "github.com/jellydator/validation"

	enigmaDomain "github.com/allisson/enigma/internal/enigma/domain"
	enigmaDTO "github.com/allisson/enigma/internal/enigma/dto"
	customValidation "github.com/allisson/enigma/internal/validation"
)

// PromptSettings asks whether to accept defaults and, if not, asks for every setting.
// Invalid answers are reported and asked again. It fails only when input runs out.
func PromptSettings(
	reader *bufio.Reader,
	writer io.Writer,
	defaults enigmaDTO.SettingsRequest,
) (enigmaDomain.Settings, error) {
	for {
		accept, err := promptYesNo(reader, writer, "Accept default Enigma settings? (y/n): ")
		if err != nil {
			return enigmaDomain.Settings{}, err
		}

		if accept {
			settings, err := defaults.ToDomain()
			if err == nil {
				return settings, nil
			}
			_, _ = fmt.Fprintf(writer, "Default settings are invalid: %v\n", err)
			continue
		}

		return promptCustomSettings(reader, writer, defaults)
	}
}

// promptYesNo re-asks until the answer is y, yes, n or no.
func promptYesNo(reader *bufio.Reader, writer io.Writer, question string) (bool, error) {
	for {
		_, _ = fmt.Fprint(writer, question)
		answer, err := readLine(reader)
		if err != nil {
			return false, err
		}

		switch strings.ToLower(answer) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		}
		_, _ = fmt.Fprintln(writer, "Please answer y or n.")
	}
}

func promptCustomSettings(
	reader *bufio.Reader,
	writer io.Writer,
	defaults enigmaDTO.SettingsRequest,
) (enigmaDomain.Settings, error) {
	for {
		req := enigmaDTO.SettingsRequest{}

		fields := []struct {
			key      string
			label    string
			target   *string
			fallback func() string
		}{
			{"rotors", "Rotors, left to right (I-VIII)", &req.Rotors, func() string { return defaults.Rotors }},
			{"ring_settings", "Ring settings", &req.RingSettings, func() string {
				return fitDial(defaults.RingSettings, req.Rotors)
			}},
			{"positions", "Starting positions", &req.Positions, func() string {
				return fitDial(defaults.Positions, req.Rotors)
			}},
			{"plugboard", "Plugboard pairs (blank for none)", &req.Plugboard, func() string { return "" }},
			{"reflector", "Reflector (A, B or C)", &req.Reflector, func() string { return defaults.Reflector }},
		}

		for _, field := range fields {
			value, err := promptField(reader, writer, &req, field.key, field.label, field.fallback())
			if err != nil {
				return enigmaDomain.Settings{}, err
			}
			*field.target = value
		}

		settings, err := req.ToDomain()
		if err == nil {
			return settings, nil
		}
		_, _ = fmt.Fprintf(writer, "Invalid settings: %v\nPlease start again.\n", err)
	}
}

// promptField asks for one field until it passes that field's validation rules.
func promptField(
	reader *bufio.Reader,
	writer io.Writer,
	req *enigmaDTO.SettingsRequest,
	key, label, fallback string,
) (string, error) {
	for {
		if fallback != "" {
			_, _ = fmt.Fprintf(writer, "%s [%s]: ", label, fallback)
		} else {
			_, _ = fmt.Fprintf(writer, "%s: ", label)
		}

		value, err := readLine(reader)
		if err != nil {
			return "", err
		}
		if value == "" {
			value = fallback
		}

		candidate := *req
		setField(&candidate, key, value)
		if fieldErr := fieldError(candidate.Validate(), key); fieldErr != nil {
			_, _ = fmt.Fprintf(writer, "Invalid %s: %v\n", strings.ReplaceAll(key, "_", " "), fieldErr)
			continue
		}
		return value, nil
	}
}

func setField(req *enigmaDTO.SettingsRequest, key, value string) {
	switch key {
	case "rotors":
		req.Rotors = value
	case "ring_settings":
		req.RingSettings = value
	case "positions":
		req.Positions = value
	case "plugboard":
		req.Plugboard = value
	case "reflector":
		req.Reflector = value
	}
}

// fieldError extracts the error reported for key, if any.
func fieldError(err error, key string) error {
	var errs validation.Errors
	if errors.As(err, &errs) {
		return errs[key]
	}
	return err
}

// fitDial keeps a default dial setting if it has one entry per rotor, and otherwise
// proposes A for every rotor.
func fitDial(dial, rotors string) string {
	n := len(customValidation.SplitTokens(rotors))
	if len(customValidation.ExpandLetterTokens(dial)) == n {
		return dial
	}
	return strings.Repeat("A", n)
}

// readLine reads one trimmed line. A final line without newline is returned; io.EOF is
// only reported when nothing was read.
func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil && (!errors.Is(err, io.EOF) || line == "") {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
