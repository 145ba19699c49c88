package pto

import (
	"os"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Logger is the type used for the Registry's non-fatal warning output.
// It is a type alias so callers can pass a zerolog.Logger they've already
// configured elsewhere in their application via WithLogger.
type Logger = zerolog.Logger

// defaultLogger writes warnings to stderr, in the same spirit as the
// teacher lineage's encio.Warnings io.Writer: encode and decode never
// consult it for correctness, but conditions that "shouldn't happen" are
// not silently swallowed either.
var defaultLogger Logger = zerolog.New(os.Stderr).With().Timestamp().Str("component", "pto").Logger()

// warnCall returns log with a fresh correlation id attached. Each call site
// invokes it once per warning, so every warning carries its own id and can
// be picked out of a busy log stream; ids are not shared between warnings.
func warnCall(log Logger) Logger {
	return log.With().Str("call_id", uuid.NewString()).Logger()
}
