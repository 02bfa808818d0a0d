package service

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	enigmaDomain "github.com/allisson/enigma/internal/enigma/domain"
	apperrors "github.com/allisson/enigma/internal/errors"
)

func TestNewMachine(t *testing.T) {
	t.Run("default settings", func(t *testing.T) {
		m, err := NewMachine(enigmaDomain.DefaultSettings())
		require.NoError(t, err)
		assert.Equal(t, "AAA", enigmaDomain.LettersString(m.Positions()))
	})

	t.Run("invalid settings are rejected before construction", func(t *testing.T) {
		s := classicSettings("AAA", "AAA", "AB", "BC")
		m, err := NewMachine(s)
		assert.Nil(t, m)
		assert.ErrorIs(t, err, enigmaDomain.ErrInvalidPlugboard)
		assert.ErrorIs(t, err, enigmaDomain.ErrConfiguration)
		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("unknown reflector", func(t *testing.T) {
		s := classicSettings("AAA", "AAA")
		s.Reflector = "UKW-D"
		_, err := NewMachine(s)
		assert.ErrorIs(t, err, enigmaDomain.ErrUnknownReflector)
	})

	t.Run("settings snapshot is copied", func(t *testing.T) {
		s := classicSettings("AAA", "AAA")
		m, err := NewMachine(s)
		require.NoError(t, err)

		s.Positions[2] = 10
		s.Rotors[0] = enigmaDomain.RotorV
		assert.Equal(t, "AAA", enigmaDomain.LettersString(m.Positions()))
		assert.Equal(t, enigmaDomain.RotorI, m.Settings().Rotors[0])
	})
}

func TestMachine_ReferenceCiphertexts(t *testing.T) {
	tests := []struct {
		name       string
		settings   enigmaDomain.Settings
		plaintext  string
		ciphertext string
		positions  string
	}{
		{
			name:       "rotors I II III rings AAA",
			settings:   classicSettings("AAA", "AAA"),
			plaintext:  "AAAAA",
			ciphertext: "BDZGO",
			positions:  "AAF",
		},
		{
			name:       "rotors I II III rings BBB",
			settings:   classicSettings("BBB", "AAA"),
			plaintext:  "AAAAA",
			ciphertext: "EWTYX",
			positions:  "AAF",
		},
		{
			name:       "lowercase input",
			settings:   classicSettings("AAA", "AAA"),
			plaintext:  "helloworld",
			ciphertext: "ILBDAAMTAZ",
			positions:  "AAK",
		},
		{
			name:       "single plugboard pair",
			settings:   classicSettings("AAA", "AAA", "AB"),
			plaintext:  "HELLOWORLD",
			ciphertext: "ILADBBMTBZ",
			positions:  "AAK",
		},
		{
			name:       "double step during message",
			settings:   classicSettings("AAA", "ADU"),
			plaintext:  "AAA",
			ciphertext: "EQI",
			positions:  "BFX",
		},
		{
			name: "rotors IV II V with full plugboard",
			settings: enigmaDomain.Settings{
				Rotors:       []enigmaDomain.RotorType{enigmaDomain.RotorIV, enigmaDomain.RotorII, enigmaDomain.RotorV},
				RingSettings: letters("BUL"),
				Positions:    letters("BLA"),
				Reflector:    enigmaDomain.ReflectorB,
				Plugboard:    pairs("AV", "BS", "CG", "DL", "FU", "HZ", "IN", "KM", "OW", "RX"),
			},
			plaintext:  "HELLOWORLD",
			ciphertext: "GMJIQVUCVZ",
			positions:  "BLK",
		},
		{
			name: "double notched rotors with reflector C",
			settings: enigmaDomain.Settings{
				Rotors:       []enigmaDomain.RotorType{enigmaDomain.RotorVI, enigmaDomain.RotorVII, enigmaDomain.RotorVIII},
				RingSettings: letters("AAA"),
				Positions:    letters("AZY"),
				Reflector:    enigmaDomain.ReflectorC,
			},
			plaintext:  "AAAA",
			ciphertext: "UZRX",
			positions:  "BBC",
		},
		{
			name: "four rotor stack",
			settings: enigmaDomain.Settings{
				Rotors: []enigmaDomain.RotorType{
					enigmaDomain.RotorI, enigmaDomain.RotorII, enigmaDomain.RotorIII, enigmaDomain.RotorIV,
				},
				RingSettings: letters("AAAA"),
				Positions:    letters("AAAA"),
				Reflector:    enigmaDomain.ReflectorB,
			},
			plaintext:  "HELLO",
			ciphertext: "EXSRB",
			positions:  "AAAF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := NewMachine(tt.settings)
			require.NoError(t, err)

			assert.Equal(t, tt.ciphertext, encryptString(m, tt.plaintext))
			assert.Equal(t, tt.positions, enigmaDomain.LettersString(m.Positions()))
		})
	}
}

func TestMachine_SingleStepDefault(t *testing.T) {
	m, err := NewMachine(classicSettings("AAA", "KCM"))
	require.NoError(t, err)

	m.EncryptCharacter('X')
	assert.Equal(t, "KCN", enigmaDomain.LettersString(m.Positions()))
}

func TestMachine_DoubleStepAnomaly(t *testing.T) {
	m, err := NewMachine(classicSettings("AAA", "AEA"))
	require.NoError(t, err)

	m.EncryptCharacter('A')
	assert.Equal(t, "BFB", enigmaDomain.LettersString(m.Positions()))
}

func TestMachine_Reciprocity(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	catalog := enigmaDomain.RotorCatalog()

	for round := range 50 {
		settings := randomSettings(rng, catalog)
		plaintext := randomText(rng, 1+rng.IntN(200))

		encryptor, err := NewMachine(settings)
		require.NoError(t, err)
		decryptor, err := NewMachine(settings)
		require.NoError(t, err)

		ciphertext := encryptString(encryptor, plaintext)
		require.Equal(t, plaintext, encryptString(decryptor, ciphertext), "round %d", round)
	}
}

func TestMachine_NeverEncryptsLetterToItself(t *testing.T) {
	m, err := NewMachine(classicSettings("CHJ", "QWE", "AZ", "PO", "LK"))
	require.NoError(t, err)

	for i := range 2000 {
		in := enigmaDomain.Letter(i % enigmaDomain.AlphabetSize)
		assert.NotEqual(t, in, m.Encrypt(in))
	}
}

func TestMachine_Determinism(t *testing.T) {
	rng := rand.New(rand.NewPCG(7, 7))
	settings := randomSettings(rng, enigmaDomain.RotorCatalog())
	plaintext := randomText(rng, 500)

	first, err := NewMachine(settings)
	require.NoError(t, err)
	second, err := NewMachine(settings)
	require.NoError(t, err)

	assert.Equal(t, encryptString(first, plaintext), encryptString(second, plaintext))
	assert.Equal(t, first.Positions(), second.Positions())
}

func TestMachine_OutputDependsOnPosition(t *testing.T) {
	m, err := NewMachine(classicSettings("AAA", "AAA"))
	require.NoError(t, err)

	ciphertext := encryptString(m, "AAAAAAAAAAAAAAAAAAAAAAAAAA")
	distinct := make(map[rune]bool)
	for _, r := range ciphertext {
		distinct[r] = true
	}
	assert.Greater(t, len(distinct), 1)
	assert.NotEqual(t, ciphertext[0], ciphertext[1])
}

func TestMachine_EncryptCharacter(t *testing.T) {
	m, err := NewMachine(classicSettings("AAA", "AAA"))
	require.NoError(t, err)

	assert.Equal(t, 'B', m.EncryptCharacter('a'))
	assert.Panics(t, func() { m.EncryptCharacter('1') })
	assert.Panics(t, func() { m.Encrypt(enigmaDomain.Letter(26)) })
}

func TestMachineBuilderService_Build(t *testing.T) {
	builder := NewMachineBuilder()

	t.Run("builds independent machines", func(t *testing.T) {
		first, err := builder.Build(enigmaDomain.DefaultSettings())
		require.NoError(t, err)
		second, err := builder.Build(enigmaDomain.DefaultSettings())
		require.NoError(t, err)

		first.Encrypt(0)
		assert.Equal(t, "AAB", enigmaDomain.LettersString(first.Positions()))
		assert.Equal(t, "AAA", enigmaDomain.LettersString(second.Positions()))
	})

	t.Run("propagates configuration errors", func(t *testing.T) {
		s := enigmaDomain.DefaultSettings()
		s.Rotors = []enigmaDomain.RotorType{enigmaDomain.RotorI, enigmaDomain.RotorI, enigmaDomain.RotorII}
		cipher, err := builder.Build(s)
		assert.Nil(t, cipher)
		assert.ErrorIs(t, err, enigmaDomain.ErrDuplicateRotor)
	})
}

func randomSettings(rng *rand.Rand, catalog []enigmaDomain.RotorSpec) enigmaDomain.Settings {
	count := 3 + rng.IntN(2)
	order := rng.Perm(len(catalog))[:count]

	s := enigmaDomain.Settings{
		Reflector: enigmaDomain.ReflectorCatalog()[rng.IntN(3)].Type,
	}
	for _, idx := range order {
		s.Rotors = append(s.Rotors, catalog[idx].Type)
		s.RingSettings = append(s.RingSettings, enigmaDomain.Letter(rng.IntN(enigmaDomain.AlphabetSize)))
		s.Positions = append(s.Positions, enigmaDomain.Letter(rng.IntN(enigmaDomain.AlphabetSize)))
	}

	shuffled := rng.Perm(enigmaDomain.AlphabetSize)
	for i := range rng.IntN(enigmaDomain.MaxPlugboardPairs + 1) {
		s.Plugboard = append(s.Plugboard, enigmaDomain.PlugPair{
			A: enigmaDomain.Letter(shuffled[2*i]),
			B: enigmaDomain.Letter(shuffled[2*i+1]),
		})
	}
	return s
}

func randomText(rng *rand.Rand, n int) string {
	buf := make([]rune, n)
	for i := range buf {
		buf[i] = 'A' + rune(rng.IntN(enigmaDomain.AlphabetSize))
	}
	return string(buf)
}
