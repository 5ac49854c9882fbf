package iostreams

import "github.com/rs/zerolog"

// Logger is the leveled logging surface the command layer depends on.
// *zerolog.Logger satisfies it directly.
type Logger interface {
	Debug() *zerolog.Event
	Info() *zerolog.Event
	Warn() *zerolog.Event
	Error() *zerolog.Event
}
