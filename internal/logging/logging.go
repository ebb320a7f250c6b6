package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

var root = zerolog.New(os.Stdout).With().Timestamp().Logger()

// Setup configures the process-wide logger. Pretty output in debug mode,
// JSON otherwise.
func Setup(debug bool) {
	zerolog.TimeFieldFormat = time.RFC3339
	if debug {
		root = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}

// Component returns a child logger tagged with the component name.
func Component(name string) zerolog.Logger {
	return root.With().Str("component", name).Logger()
}
