package scaffold

import "fmt"

// StepError names the pipeline step that failed. Every error returned by
// Pipeline.Run is a *StepError.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %s: %v", e.Step, e.Err)
}

func (e *StepError) Unwrap() error { return e.Err }

// FileError reports a failed filesystem operation on a project file.
type FileError struct {
	// Op is the operation: read, write, append, prepend or copy.
	Op   string
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FileError) Unwrap() error { return e.Err }
