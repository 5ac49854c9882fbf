package create

import (
	"bytes"
	"context"
	"strings"
	"sync"

	"github.com/schmitthub/vitewind/internal/iostreams"
	"github.com/schmitthub/vitewind/internal/scaffold"
	"github.com/schmitthub/vitewind/internal/tui"
)

// progressReporter turns pipeline events into tui.ProgressStep updates and
// logs each step transition once. As an io.Writer it receives the output of
// the external commands and forwards it line by line to the display.
type progressReporter struct {
	ctx context.Context
	log iostreams.Logger
	ch  chan<- tui.ProgressStep

	mu      sync.Mutex
	partial bytes.Buffer
}

var _ scaffold.Observer = (*progressReporter)(nil)

func newProgressReporter(ctx context.Context, log iostreams.Logger, ch chan<- tui.ProgressStep) *progressReporter {
	return &progressReporter{ctx: ctx, log: log, ch: ch}
}

// send drops the update once ctx is done, so an abandoned display never
// blocks the pipeline.
func (r *progressReporter) send(step tui.ProgressStep) {
	select {
	case r.ch <- step:
	case <-r.ctx.Done():
	}
}

func (r *progressReporter) StepStarted(step scaffold.Step) {
	if r.log != nil {
		r.log.Debug().Str("step", step.Name).Msg("step started")
	}
	r.send(tui.ProgressStep{ID: step.Name, Name: step.Title, Status: tui.StepRunning})
}

func (r *progressReporter) StepSucceeded(step scaffold.Step) {
	r.flush()
	if r.log != nil {
		r.log.Info().Str("step", step.Name).Msg("step succeeded")
	}
	r.send(tui.ProgressStep{ID: step.Name, Name: step.Title, Status: tui.StepComplete})
}

func (r *progressReporter) StepFailed(step scaffold.Step, err error) {
	r.flush()
	if r.log != nil {
		r.log.Error().Str("step", step.Name).Err(err).Msg("step failed")
	}
	r.send(tui.ProgressStep{ID: step.Name, Name: step.Title, Status: tui.StepError})
}

// Write splits p into lines. A trailing fragment waits for the rest of its
// line or for the step to end.
func (r *progressReporter) Write(p []byte) (int, error) {
	r.mu.Lock()
	r.partial.Write(p)
	var lines []string
	for {
		data := r.partial.Bytes()
		i := bytes.IndexByte(data, '\n')
		if i < 0 {
			break
		}
		lines = append(lines, string(data[:i]))
		r.partial.Next(i + 1)
	}
	r.mu.Unlock()

	for _, line := range lines {
		r.sendLine(line)
	}
	return len(p), nil
}

func (r *progressReporter) flush() {
	r.mu.Lock()
	rest := r.partial.String()
	r.partial.Reset()
	r.mu.Unlock()
	r.sendLine(rest)
}

func (r *progressReporter) sendLine(line string) {
	line = strings.TrimRight(line, "\r")
	if strings.TrimSpace(line) == "" {
		return
	}
	r.send(tui.ProgressStep{LogLine: line})
}
