package cmdutil

import (
	"errors"
	"fmt"
)

// SilentError is returned once the command has already told the user what
// went wrong. Main exits 1 without printing anything else.
var SilentError = errors.New("SilentError")

// ExitError requests a specific exit code. Err, when set, is the cause.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("exit status %d", e.Code)
}

func (e *ExitError) Unwrap() error { return e.Err }

// FlagError marks a usage mistake: a bad flag, a bad argument or an invalid
// project name. Main prints it with a help hint and exits 2.
type FlagError struct {
	err error
}

func (e *FlagError) Error() string { return e.err.Error() }
func (e *FlagError) Unwrap() error { return e.err }

// FlagErrorf formats a FlagError.
func FlagErrorf(format string, args ...any) error {
	return &FlagError{err: fmt.Errorf(format, args...)}
}

// FlagErrorWrap marks err as a usage mistake. A nil err stays nil.
func FlagErrorWrap(err error) error {
	if err == nil {
		return nil
	}
	return &FlagError{err: err}
}
