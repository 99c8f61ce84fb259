// Package logger builds the zerolog logger shared by every host binary.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a JSON logger in production and a console logger otherwise.
func New(environment string) zerolog.Logger {
	var w io.Writer = os.Stdout
	level := zerolog.InfoLevel

	if environment != "production" {
		w = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
		level = zerolog.DebugLevel
	}

	return zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Str("service", "storefront").
		Logger()
}
