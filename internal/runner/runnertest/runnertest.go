// Package runnertest provides a fake runner.Runner that records commands
// instead of executing them.
package runnertest

import (
	"context"
	"io"
	"sync"

	"github.com/schmitthub/vitewind/internal/runner"
)

// Recorder implements runner.Runner.
type Recorder struct {
	mu       sync.Mutex
	commands []runner.Command

	// OnRun, when set, is called for every command. A non-nil return is
	// wrapped in a *runner.CommandError.
	OnRun func(cmd runner.Command) error
	// Output is attached to CommandErrors produced from OnRun failures.
	Output string
	// Stream is written to Command.Output, when set, as if the process
	// printed it.
	Stream string
}

var _ runner.Runner = (*Recorder)(nil)

// Run records cmd and delegates to OnRun.
func (r *Recorder) Run(ctx context.Context, cmd runner.Command) error {
	r.mu.Lock()
	r.commands = append(r.commands, cmd)
	r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return &runner.CommandError{Command: cmd, Err: err}
	}
	if r.Stream != "" && cmd.Output != nil {
		if _, err := io.WriteString(cmd.Output, r.Stream); err != nil {
			return &runner.CommandError{Command: cmd, Err: err}
		}
	}
	if r.OnRun == nil {
		return nil
	}
	if err := r.OnRun(cmd); err != nil {
		return &runner.CommandError{Command: cmd, Output: r.Output, Err: err}
	}
	return nil
}

// Commands returns a copy of every command run so far.
func (r *Recorder) Commands() []runner.Command {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]runner.Command, len(r.commands))
	copy(out, r.commands)
	return out
}

// CommandLines returns Command.String for every recorded command.
func (r *Recorder) CommandLines() []string {
	cmds := r.Commands()
	lines := make([]string, len(cmds))
	for i, c := range cmds {
		lines[i] = c.String()
	}
	return lines
}
