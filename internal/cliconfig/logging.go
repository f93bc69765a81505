package cliconfig

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// NewLogger returns the console logger used for the error channel.
// Every line starts with the message, so error reports read
// "<program> ERR error=... input=...". Colour is only used on a terminal.
// Debug messages are only emitted when verbose is set.
func NewLogger(w io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	out := zerolog.ConsoleWriter{
		Out:        w,
		NoColor:    !isTerminal(w),
		PartsOrder: []string{zerolog.MessageFieldName, zerolog.LevelFieldName},
	}
	return zerolog.New(out).Level(level)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
