package console

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	enigmaDomain "github.com/allisson/enigma/internal/enigma/domain"
)

func keystroke(in, out rune, positions string) enigmaDomain.Keystroke {
	k := enigmaDomain.Keystroke{
		Input:  enigmaDomain.MustLetter(in),
		Output: enigmaDomain.MustLetter(out),
	}
	for _, r := range positions {
		k.Positions = append(k.Positions, enigmaDomain.MustLetter(r))
	}
	return k
}

func TestDisplaySink_Display(t *testing.T) {
	t.Run("CookedMode", func(t *testing.T) {
		var buf bytes.Buffer
		sink := NewDisplaySink(&buf, false)

		sink.Display(context.Background(), keystroke('A', 'B', "AAB"))
		sink.Display(context.Background(), keystroke('A', 'D', "AAC"))

		assert.Equal(t, "A --> B    positions: A A B\nA --> D    positions: A A C\n", buf.String())
		assert.NoError(t, sink.Err())
	})

	t.Run("RawMode", func(t *testing.T) {
		var buf bytes.Buffer
		sink := NewDisplaySink(&buf, true)

		sink.Display(context.Background(), keystroke('H', 'I', "AAAB"))

		assert.Equal(t, "H --> I    positions: A A A B\r\n", buf.String())
	})
}

func TestDisplaySink_WriteHeader(t *testing.T) {
	var buf bytes.Buffer
	sink := NewDisplaySink(&buf, false)

	sink.WriteHeader()

	assert.Contains(t, buf.String(), "Press ESC to quit.")
	assert.Contains(t, buf.String(), "key --> lamp")
}

type failingWriter struct {
	writes int
}

func (w *failingWriter) Write([]byte) (int, error) {
	w.writes++
	return 0, errors.New("disk full")
}

func TestDisplaySink_WriteError(t *testing.T) {
	w := &failingWriter{}
	sink := NewDisplaySink(w, false)

	sink.Display(context.Background(), keystroke('A', 'B', "AAB"))
	sink.Display(context.Background(), keystroke('A', 'D', "AAC"))

	assert.EqualError(t, sink.Err(), "disk full")
	assert.Equal(t, 1, w.writes)
}
