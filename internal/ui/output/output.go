// Package output builds the termenv outputs log lines are written to.
package output

import (
	"io"
	"os"

	"github.com/muesli/termenv"
)

// Profile returns the color profile for w. NO_COLOR forces plain text.
// Otherwise the profile follows CLICOLOR and CLICOLOR_FORCE and whether w
// itself is a terminal, so logs piped from stderr stay uncolored even when
// stdout is a terminal.
func Profile(w io.Writer) termenv.Profile {
	if os.Getenv("NO_COLOR") != "" {
		return termenv.Ascii
	}
	return termenv.NewOutput(w).EnvColorProfile()
}

// New creates a termenv.Output for w, defaulting to stderr.
func New(w io.Writer, opts ...termenv.OutputOption) *termenv.Output {
	if w == nil {
		w = os.Stderr
	}

	opts = append(opts, termenv.WithProfile(Profile(w)))
	return termenv.NewOutput(w, opts...)
}
