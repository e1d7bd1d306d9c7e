// Package logging builds the zerolog logger handed to every component.
// There is no ambient global: constructors receive their logger explicitly.
package logging

import (
	"os"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to stderr at the given level.
// Unknown level strings fall back to info.
func New(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
