// Package git initializes a git repository in a freshly scaffolded project.
//
// It imports only stdlib and go-git packages; callers pass configuration in.
package git

import (
	"context"
	"errors"
	"fmt"
	"time"

	gogit "github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing/object"
)

// ErrAlreadyRepository is returned when the directory already lives inside a
// git work tree.
var ErrAlreadyRepository = errors.New("already inside a git repository")

// DefaultCommitMessage is used for the initial commit.
const DefaultCommitMessage = "Initial commit"

// Initializer creates repositories.
type Initializer struct {
	// Commit stages every file and records an initial commit.
	Commit bool
	// Message overrides DefaultCommitMessage.
	Message string
	// Author signs the initial commit. Defaults to "vitewind".
	Author *object.Signature
	// Now is used for the commit timestamp. Defaults to time.Now.
	Now func() time.Time
}

// IsRepository reports whether path is inside an existing git work tree.
func IsRepository(path string) bool {
	// DetectDotGit walks up to find an enclosing repository
	_, err := gogit.PlainOpenWithOptions(path, &gogit.PlainOpenOptions{
		DetectDotGit: true,
	})
	return err == nil
}

// Init creates a non-bare repository at dir. When dir already sits in a work
// tree it returns ErrAlreadyRepository and leaves the tree untouched.
func (i *Initializer) Init(ctx context.Context, dir string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if IsRepository(dir) {
		return fmt.Errorf("%w: %s", ErrAlreadyRepository, dir)
	}

	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		return fmt.Errorf("initializing repository at %s: %w", dir, err)
	}
	if !i.Commit {
		return nil
	}

	wt, err := repo.Worktree()
	if err != nil {
		return fmt.Errorf("getting worktree: %w", err)
	}
	if err := wt.AddWithOptions(&gogit.AddOptions{All: true}); err != nil {
		return fmt.Errorf("staging files: %w", err)
	}
	if _, err := wt.Commit(i.message(), &gogit.CommitOptions{Author: i.signature()}); err != nil {
		return fmt.Errorf("creating initial commit: %w", err)
	}
	return nil
}

func (i *Initializer) message() string {
	if i.Message != "" {
		return i.Message
	}
	return DefaultCommitMessage
}

func (i *Initializer) signature() *object.Signature {
	now := time.Now
	if i.Now != nil {
		now = i.Now
	}
	if i.Author != nil {
		sig := *i.Author
		if sig.When.IsZero() {
			sig.When = now()
		}
		return &sig
	}
	return &object.Signature{Name: "vitewind", Email: "vitewind@localhost", When: now()}
}
