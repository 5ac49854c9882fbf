package cmdutil

import (
	"github.com/spf13/afero"

	"github.com/schmitthub/vitewind/internal/config"
	"github.com/schmitthub/vitewind/internal/git"
	"github.com/schmitthub/vitewind/internal/iostreams"
	"github.com/schmitthub/vitewind/internal/prompter"
	"github.com/schmitthub/vitewind/internal/runner"
	"github.com/schmitthub/vitewind/internal/templates"
)

// Factory provides shared dependencies for CLI commands.
// It is a dependency injection container: the struct defines what
// dependencies exist, while internal/cmd/factory wires the real
// implementations.
//
// Closure fields are set by the factory constructor and use lazy
// initialization internally. Commands extract only the fields they
// need into per-command Options structs.
type Factory struct {
	// Version info (set at build time via ldflags)
	Version string
	Commit  string

	// WorkDir is where new projects are created.
	WorkDir string

	IOStreams *iostreams.IOStreams
	Fs        afero.Fs

	ConfigLoader func() (*config.Loader, error)
	Settings     func() (*config.Settings, error)

	Prompter  func() *prompter.Prompter
	Runner    func() runner.Runner
	Git       func() *git.Initializer
	Templates func(dir string) (*templates.Bundle, error)
}
