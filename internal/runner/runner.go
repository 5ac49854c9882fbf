// Package runner executes the external tools (package managers, npx) the
// scaffold pipeline shells out to.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/schmitthub/vitewind/internal/logger"
)

// Command is one external process invocation.
type Command struct {
	// Dir is the working directory. Empty means the current directory.
	Dir  string
	Name string
	Args []string
	// Output, when set, receives the combined output as it is produced.
	Output io.Writer
}

// String renders the command line for messages and logs.
func (c Command) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	return c.Name + " " + strings.Join(c.Args, " ")
}

// Runner runs a command to completion.
type Runner interface {
	Run(ctx context.Context, cmd Command) error
}

// CommandError reports a command that could not start or exited non-zero.
type CommandError struct {
	Command Command
	// Output is the combined stdout and stderr of the process.
	Output string
	Err    error
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("command %q failed: %v", e.Command.String(), e.Err)
}

func (e *CommandError) Unwrap() error { return e.Err }

// ExitCode returns the process exit code, or -1 if the process never ran.
func (e *CommandError) ExitCode() int {
	var exitErr *exec.ExitError
	if errors.As(e.Err, &exitErr) {
		return exitErr.ExitCode()
	}
	return -1
}

// ExecRunner runs commands with os/exec and blocks until they exit.
type ExecRunner struct{}

// New returns an ExecRunner.
func New() *ExecRunner {
	return &ExecRunner{}
}

// Run starts cmd and waits for it. Output is captured and attached to the
// returned *CommandError on failure.
func (r *ExecRunner) Run(ctx context.Context, cmd Command) error {
	c := exec.CommandContext(ctx, cmd.Name, cmd.Args...)
	c.Dir = cmd.Dir

	var buf bytes.Buffer
	var w io.Writer = &buf
	if cmd.Output != nil {
		w = io.MultiWriter(&buf, cmd.Output)
	}
	c.Stdout = w
	c.Stderr = w

	logger.Debug().Str("dir", cmd.Dir).Str("cmd", cmd.Name).Strs("args", cmd.Args).Msg("running command")

	if err := c.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = fmt.Errorf("%w: %w", ctxErr, err)
		}
		logger.Debug().Err(err).Str("cmd", cmd.String()).Msg("command failed")
		return &CommandError{Command: cmd, Output: buf.String(), Err: err}
	}
	return nil
}
