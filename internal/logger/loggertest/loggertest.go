// Package loggertest provides logger doubles for tests.
package loggertest

import (
	"bytes"
	"sync"

	"github.com/rs/zerolog"
)

// TestLogger records JSON log output in memory. It exposes only the leveled
// constructors, so it satisfies iostreams.Logger and the narrower logger
// interfaces declared by consumers.
type TestLogger struct {
	logger zerolog.Logger
	buf    *syncBuffer
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func (b *syncBuffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.buf.Reset()
}

// New returns a logger that captures everything at debug level and above.
func New() *TestLogger {
	buf := &syncBuffer{}
	return &TestLogger{
		logger: zerolog.New(buf).Level(zerolog.DebugLevel),
		buf:    buf,
	}
}

// NewNop returns a logger that discards everything.
func NewNop() *TestLogger {
	return &TestLogger{
		logger: zerolog.Nop(),
		buf:    &syncBuffer{},
	}
}

func (tl *TestLogger) Debug() *zerolog.Event { return tl.logger.Debug() }
func (tl *TestLogger) Info() *zerolog.Event  { return tl.logger.Info() }
func (tl *TestLogger) Warn() *zerolog.Event  { return tl.logger.Warn() }
func (tl *TestLogger) Error() *zerolog.Event { return tl.logger.Error() }

// Output returns everything logged so far.
func (tl *TestLogger) Output() string { return tl.buf.String() }

// Reset discards captured output.
func (tl *TestLogger) Reset() { tl.buf.Reset() }
