package log

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns the logger for one framing loop. Logging is disabled unless the
// CODY_LOG environment variable names a zerolog level (e.g. "debug", "trace").
func New(direction Direction) zerolog.Logger {
	level, err := zerolog.ParseLevel(os.Getenv("CODY_LOG"))
	if err != nil || level == zerolog.NoLevel {
		return zerolog.Nop()
	}

	out := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(out).
		Level(level).
		With().
		Timestamp().
		Str("direction", direction.String()).
		Logger()
}
