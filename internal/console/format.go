package console

import (
	"fmt"
	"io"
	"text/tabwriter"

	enigmaDomain "github.com/allisson/enigma/internal/enigma/domain"
)

const banner = `ENIGMA
A simulation of the rotor cipher machine. Every key press lights a different lamp,
and the rightmost rotor turns before each letter is enciphered. Setting up a second
machine the same way and typing the ciphertext gives back the plaintext.
`

// WriteBanner prints the application description shown before an interactive session.
func WriteBanner(w io.Writer) error {
	_, err := io.WriteString(w, banner+"\n")
	return err
}

// WriteSettings prints a machine configuration as an aligned list.
func WriteSettings(w io.Writer, settings enigmaDomain.Settings) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Rotors:\t%s\n", settings.RotorNames())
	fmt.Fprintf(tw, "Ring settings:\t%s\n", spacedLetters(settings.RingSettings))
	fmt.Fprintf(tw, "Positions:\t%s\n", spacedLetters(settings.Positions))
	fmt.Fprintf(tw, "Plugboard:\t%s\n", settings.PlugboardString())
	fmt.Fprintf(tw, "Reflector:\t%s\n", string(settings.Reflector))
	return tw.Flush()
}

// WriteCatalog prints every rotor and reflector the machine can be built from.
func WriteCatalog(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ROTOR\tWIRING\tNOTCHES")
	for _, spec := range enigmaDomain.RotorCatalog() {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", string(spec.Type), spec.Wiring, spec.Notches)
	}
	fmt.Fprintln(tw)
	fmt.Fprintln(tw, "REFLECTOR\tWIRING\t")
	for _, spec := range enigmaDomain.ReflectorCatalog() {
		fmt.Fprintf(tw, "%s\t%s\t\n", string(spec.Type), spec.Wiring)
	}
	return tw.Flush()
}
