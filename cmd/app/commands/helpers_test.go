package commands

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	enigmaDTO "github.com/allisson/enigma/internal/enigma/dto"
	enigmaService "github.com/allisson/enigma/internal/enigma/service"
	enigmaUsecase "github.com/allisson/enigma/internal/enigma/usecase"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newSessionUseCase() enigmaUsecase.SessionUseCase {
	return enigmaUsecase.NewSessionUseCase(enigmaService.NewMachineBuilder(), discardLogger())
}

func defaultRequest() enigmaDTO.SettingsRequest {
	return enigmaDTO.SettingsRequest{
		Rotors:       "I II III",
		RingSettings: "AAA",
		Positions:    "AAA",
		Reflector:    "B",
	}
}

func TestMergeSettingsRequest(t *testing.T) {
	base := defaultRequest()
	base.Plugboard = "AB"

	tests := []struct {
		name     string
		override enigmaDTO.SettingsRequest
		want     enigmaDTO.SettingsRequest
	}{
		{
			name:     "empty override keeps base",
			override: enigmaDTO.SettingsRequest{},
			want:     base,
		},
		{
			name:     "fields replaced",
			override: enigmaDTO.SettingsRequest{Rotors: "IV II V", Positions: "BLA", Reflector: "C"},
			want: enigmaDTO.SettingsRequest{
				Rotors:       "IV II V",
				RingSettings: "AAA",
				Positions:    "BLA",
				Plugboard:    "AB",
				Reflector:    "C",
			},
		},
		{
			name:     "none clears plugboard",
			override: enigmaDTO.SettingsRequest{Plugboard: "none"},
			want: enigmaDTO.SettingsRequest{
				Rotors:       "I II III",
				RingSettings: "AAA",
				Positions:    "AAA",
				Reflector:    "B",
			},
		},
		{
			name:     "uppercase NONE clears plugboard",
			override: enigmaDTO.SettingsRequest{Plugboard: "NONE"},
			want: enigmaDTO.SettingsRequest{
				Rotors:       "I II III",
				RingSettings: "AAA",
				Positions:    "AAA",
				Reflector:    "B",
			},
		},
		{
			name:     "mixed case None clears plugboard",
			override: enigmaDTO.SettingsRequest{Plugboard: " None "},
			want: enigmaDTO.SettingsRequest{
				Rotors:       "I II III",
				RingSettings: "AAA",
				Positions:    "AAA",
				Reflector:    "B",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MergeSettingsRequest(base, tt.override))
		})
	}
}
