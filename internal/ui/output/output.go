// Package output creates termenv outputs that honour NO_COLOR consistently across the CLI.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// ColorProfile returns the colour profile to use for w. NO_COLOR forces plain text, and so does
// a file that is not a terminal, so piped logs and CI captures carry no escape codes.
func ColorProfile(w io.Writer) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	if f, ok := w.(*os.File); ok && !term.IsTerminal(int(f.Fd())) {
		return termenv.Ascii
	}
	return termenv.EnvColorProfile()
}

// New creates a termenv.Output writing to w (os.Stderr when nil).
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
