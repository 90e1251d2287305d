// Package output creates termenv outputs whose color profile follows the
// destination writer and the NO_COLOR convention.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// fder is implemented by *os.File.
type fder interface {
	Fd() uintptr
}

// ColorProfile returns the color profile for writing to w. Writers that
// are not terminals, and any writer while NO_COLOR is set, get Ascii.
func ColorProfile(w io.Writer) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}

	f, ok := w.(fder)
	if !ok || !term.IsTerminal(int(f.Fd())) { //nolint:gosec // fd fits in int
		return termenv.Ascii
	}

	return termenv.EnvColorProfile()
}

// New creates a new termenv.Output for w. A nil writer selects stderr.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts,
		termenv.WithProfile(ColorProfile(w)),
		termenv.WithTTY(true),
	)

	return termenv.NewOutput(w, opts...)
}
