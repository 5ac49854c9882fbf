// Package conflict makes sure a project directory is safe to scaffold into.
//
// A Resolver inspects <workDir>/<name>. A missing or empty directory is
// accepted as-is. Anything else is a conflict and a Decider picks between
// clearing the directory, choosing another name, or aborting.
package conflict

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/schmitthub/vitewind/internal/fileops"
	"github.com/schmitthub/vitewind/internal/logger"
)

var (
	// ErrAborted is returned when the user declines to resolve a conflict.
	ErrAborted = errors.New("operation cancelled")
	// ErrTooManyAttempts is returned when MaxAttempts decisions did not
	// produce a usable directory.
	ErrTooManyAttempts = errors.New("too many conflict resolution attempts")
	// ErrNotDirectory is returned when Clear is chosen for a path that holds
	// a regular file.
	ErrNotDirectory = errors.New("target exists and is not a directory")
	// ErrInvalidName is returned for names that cannot be used as a single
	// directory under the working directory.
	ErrInvalidName = errors.New("invalid project name")
)

// Choice is a Decider's answer to a conflict.
type Choice int

const (
	Clear Choice = iota
	Rename
	Abort
)

func (c Choice) String() string {
	switch c {
	case Clear:
		return "clear"
	case Rename:
		return "rename"
	case Abort:
		return "abort"
	default:
		return fmt.Sprintf("choice(%d)", int(c))
	}
}

// State is a step of the resolution loop.
type State int

const (
	Checking State = iota
	AwaitingDecision
	Renaming
	Cleared
	Aborted
)

func (s State) String() string {
	switch s {
	case Checking:
		return "checking"
	case AwaitingDecision:
		return "awaiting-decision"
	case Renaming:
		return "renaming"
	case Cleared:
		return "cleared"
	case Aborted:
		return "aborted"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Decider answers conflicts. Implementations usually prompt the user.
type Decider interface {
	// Decide picks what to do about the non-empty path for name.
	Decide(ctx context.Context, name, path string) (Choice, error)
	// NewName asks for a replacement after Rename was chosen.
	NewName(ctx context.Context, current string) (string, error)
}

// Resolver checks project directories under WorkDir.
type Resolver struct {
	Fs      afero.Fs
	WorkDir string
	Decider Decider
	// MaxAttempts bounds the number of decisions. Zero means unbounded.
	MaxAttempts int
	// OnTransition, when set, observes every state change.
	OnTransition func(from, to State, name string)
}

// ValidateName rejects names that are empty, contain a path separator, or
// refer to the current or parent directory.
func ValidateName(name string) error {
	switch {
	case strings.TrimSpace(name) == "":
		return fmt.Errorf("%w: name cannot be empty", ErrInvalidName)
	case name == "." || name == "..":
		return fmt.Errorf("%w: %q refers to an existing directory", ErrInvalidName, name)
	case strings.ContainsAny(name, `/\`):
		return fmt.Errorf("%w: %q must not contain path separators", ErrInvalidName, name)
	}
	return nil
}

// Resolve returns the name whose directory may be scaffolded into. The
// directory at the returned name is either missing or empty.
func (r *Resolver) Resolve(ctx context.Context, candidate string) (string, error) {
	name := candidate
	state := Checking
	attempts := 0

	move := func(to State) {
		logger.Debug().Str("from", state.String()).Str("to", to.String()).Str("name", name).Msg("conflict state")
		if r.OnTransition != nil {
			r.OnTransition(state, to, name)
		}
		state = to
	}

	for {
		if err := ctx.Err(); err != nil {
			return "", err
		}

		switch state {
		case Checking:
			if err := ValidateName(name); err != nil {
				return "", err
			}
			free, err := r.isClear(name)
			if err != nil {
				return "", err
			}
			if free {
				return name, nil
			}
			move(AwaitingDecision)

		case AwaitingDecision:
			if r.MaxAttempts > 0 && attempts >= r.MaxAttempts {
				return "", fmt.Errorf("%w: %d", ErrTooManyAttempts, attempts)
			}
			attempts++

			choice, err := r.Decider.Decide(ctx, name, r.path(name))
			if err != nil {
				return "", fmt.Errorf("resolving conflict for %s: %w", name, err)
			}
			switch choice {
			case Clear:
				move(Cleared)
			case Rename:
				move(Renaming)
			case Abort:
				move(Aborted)
			default:
				return "", fmt.Errorf("unknown conflict choice %s", choice)
			}

		case Cleared:
			if err := r.clear(name); err != nil {
				return "", err
			}
			return name, nil

		case Renaming:
			next, err := r.Decider.NewName(ctx, name)
			if err != nil {
				return "", fmt.Errorf("reading new project name: %w", err)
			}
			name = strings.TrimSpace(next)
			move(Checking)

		case Aborted:
			return "", ErrAborted
		}
	}
}

func (r *Resolver) path(name string) string {
	return filepath.Join(r.WorkDir, name)
}

// isClear reports whether the target path is missing or an empty directory.
func (r *Resolver) isClear(name string) (bool, error) {
	path := r.path(name)
	exists, err := fileops.Exists(r.Fs, path)
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", path, err)
	}
	if !exists {
		return true, nil
	}
	isDir, err := fileops.DirExists(r.Fs, path)
	if err != nil {
		return false, fmt.Errorf("checking %s: %w", path, err)
	}
	if !isDir {
		return false, nil
	}
	empty, err := fileops.IsEmptyDir(r.Fs, path)
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", path, err)
	}
	return empty, nil
}

func (r *Resolver) clear(name string) error {
	path := r.path(name)
	isDir, err := fileops.DirExists(r.Fs, path)
	if err != nil {
		return fmt.Errorf("checking %s: %w", path, err)
	}
	if !isDir {
		return fmt.Errorf("%w: %s", ErrNotDirectory, path)
	}
	if err := fileops.EmptyDir(r.Fs, path); err != nil {
		return fmt.Errorf("clearing %s: %w", path, err)
	}
	logger.Info().Str("path", path).Msg("cleared existing directory")
	return nil
}

// Fixed is a Decider that always answers the same way. It backs the
// --overwrite flag and non-interactive runs.
type Fixed struct {
	Choice Choice
	Names  []string
}

func (f *Fixed) Decide(context.Context, string, string) (Choice, error) {
	return f.Choice, nil
}

// NewName pops the next queued name.
func (f *Fixed) NewName(_ context.Context, current string) (string, error) {
	if len(f.Names) == 0 {
		return "", fmt.Errorf("no replacement name available for %s", current)
	}
	next := f.Names[0]
	f.Names = f.Names[1:]
	return next, nil
}
