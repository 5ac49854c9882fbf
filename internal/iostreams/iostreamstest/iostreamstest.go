// Package iostreamstest provides IOStreams wired to in-memory buffers.
package iostreamstest

import (
	"io"
	"sync"

	"github.com/schmitthub/vitewind/internal/iostreams"
	"github.com/schmitthub/vitewind/internal/logger/loggertest"
)

// TestIOStreams exposes the buffers behind an IOStreams.
type TestIOStreams struct {
	*iostreams.IOStreams
	InBuf  *Buffer
	OutBuf *Buffer
	ErrBuf *Buffer
}

// New returns non-interactive, colorless streams with a nop logger.
func New() *TestIOStreams {
	in, out, errOut := &Buffer{}, &Buffer{}, &Buffer{}
	ios := &iostreams.IOStreams{
		In:     in,
		Out:    out,
		ErrOut: errOut,
		Logger: loggertest.NewNop(),
	}
	// Zero-valued TTY and color fields already mean "not a TTY" and
	// "colors off".
	return &TestIOStreams{IOStreams: ios, InBuf: in, OutBuf: out, ErrBuf: errOut}
}

// SetInteractive marks all three streams as terminals (or not).
func (t *TestIOStreams) SetInteractive(interactive bool) {
	t.SetStdinTTY(interactive)
	t.SetStdoutTTY(interactive)
	t.SetStderrTTY(interactive)
}

// Buffer is a goroutine-safe read/write byte buffer.
type Buffer struct {
	mu   sync.Mutex
	data []byte
}

func (b *Buffer) Read(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.data) == 0 {
		return 0, io.EOF
	}
	n := copy(p, b.data)
	b.data = b.data[n:]
	return n, nil
}

func (b *Buffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = append(b.data, p...)
	return len(p), nil
}

// String returns the unread contents.
func (b *Buffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return string(b.data)
}

// Reset discards the contents.
func (b *Buffer) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = nil
}

// SetInput replaces the contents, typically with scripted prompt answers.
func (b *Buffer) SetInput(s string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.data = []byte(s)
}
