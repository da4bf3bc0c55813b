package util

import (
	"os"

	"github.com/rs/zerolog"
)

// NewLogger returns a console-formatted zerolog.Logger. When debug is false the
// returned logger is zerolog.Nop(), so call sites pay nothing for disabled trace
// output on the hot generation path.
func NewLogger(debug bool) zerolog.Logger {
	if !debug {
		return zerolog.Nop()
	}
	w := zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: "15:04:05"}
	return zerolog.New(w).With().Timestamp().Logger()
}
