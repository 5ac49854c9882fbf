// Package scaffold turns a fresh Vite + React project into a Tailwind CSS
// project.
//
// Pipeline.Run executes a fixed list of steps in order: three external
// commands (create vite, install Tailwind, tailwindcss init) followed by file
// edits that wire Tailwind into the generated sources. Steps are strictly
// sequential and the first failure stops the run. Nothing is rolled back.
package scaffold

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"

	"github.com/schmitthub/vitewind/internal/config"
	"github.com/schmitthub/vitewind/internal/fileops"
	"github.com/schmitthub/vitewind/internal/runner"
	"github.com/schmitthub/vitewind/internal/templates"
)

var errNoGit = errors.New("git initialization requested but no initializer configured")

// GitInitializer creates a repository in a directory.
type GitInitializer interface {
	Init(ctx context.Context, dir string) error
}

// RunContext carries everything a step needs for one project.
type RunContext struct {
	// Name is the confirmed project name.
	Name string
	// WorkDir is the directory the project is created in.
	WorkDir string
	// ProjectDir is WorkDir/Name.
	ProjectDir string
	Bundle     *templates.Bundle
	Settings   config.ScaffoldConfig
	// InitGit appends the git-init step.
	InitGit bool
	// Output, when set, receives the output of external commands as they run.
	Output io.Writer
}

// NewRunContext builds a RunContext for name under workDir.
func NewRunContext(workDir, name string, bundle *templates.Bundle, settings config.ScaffoldConfig) *RunContext {
	return &RunContext{
		Name:       name,
		WorkDir:    workDir,
		ProjectDir: filepath.Join(workDir, name),
		Bundle:     bundle,
		Settings:   settings,
	}
}

// Path joins a project-relative path onto ProjectDir.
func (rc *RunContext) Path(rel string) string {
	return filepath.Join(rc.ProjectDir, rel)
}

// Pipeline runs the scaffold steps against its collaborators.
type Pipeline struct {
	Fs       afero.Fs
	Runner   runner.Runner
	Git      GitInitializer
	Observer Observer
}

// Run executes every step for rc in order. The returned error, if any, is a
// *StepError naming the failed step.
func (p *Pipeline) Run(ctx context.Context, rc *RunContext) error {
	obs := p.Observer
	if obs == nil {
		obs = NopObserver{}
	}

	for _, step := range Steps(rc) {
		if err := ctx.Err(); err != nil {
			return &StepError{Step: step.Name, Err: err}
		}

		obs.StepStarted(step)
		if err := step.run(ctx, p, rc); err != nil {
			obs.StepFailed(step, err)
			return &StepError{Step: step.Name, Err: err}
		}
		obs.StepSucceeded(step)
	}
	return nil
}

func overwriteTrimmed(p *Pipeline, path, content string) error {
	if err := fileops.WriteFile(p.Fs, path, strings.TrimSpace(content)); err != nil {
		return &FileError{Op: "write", Path: path, Err: err}
	}
	return nil
}
