package factory

import (
	"os"
	"sync"

	"github.com/spf13/afero"

	"github.com/schmitthub/vitewind/internal/cmdutil"
	"github.com/schmitthub/vitewind/internal/config"
	"github.com/schmitthub/vitewind/internal/git"
	"github.com/schmitthub/vitewind/internal/iostreams"
	"github.com/schmitthub/vitewind/internal/logger"
	"github.com/schmitthub/vitewind/internal/prompter"
	"github.com/schmitthub/vitewind/internal/runner"
	"github.com/schmitthub/vitewind/internal/templates"
)

// New creates a fully-wired Factory with lazy-initialized dependency closures.
// Called exactly once at the CLI entry point (internal/vitewind/cmd.go).
// Tests should NOT import this package; construct &cmdutil.Factory{} directly.
func New(version, commit string) *cmdutil.Factory {
	ios := iostreams.System()
	ios.Logger = logger.Leveled{}

	if ios.IsOutputTTY() {
		ios.DetectTerminalTheme()
		if os.Getenv("NO_COLOR") != "" {
			ios.SetColorEnabled(false)
		}
	} else {
		ios.SetColorEnabled(false)
	}

	// CI never prompts
	if os.Getenv("CI") != "" {
		ios.SetNeverPrompt(true)
	}

	workDir, err := os.Getwd()
	if err != nil {
		logger.Warn().Err(err).Msg("could not determine working directory; using '.'")
		workDir = "."
	}

	f := &cmdutil.Factory{
		Version:   version,
		Commit:    commit,
		WorkDir:   workDir,
		IOStreams: ios,
		Fs:        afero.NewOsFs(),
	}

	// --- Lazy dependency closures ---

	// Config
	var (
		loaderOnce sync.Once
		loader     *config.Loader
		loaderErr  error

		settingsData *config.Settings
		settingsErr  error
	)
	f.ConfigLoader = func() (*config.Loader, error) {
		loaderOnce.Do(func() {
			loader, loaderErr = config.NewLoader()
		})
		return loader, loaderErr
	}
	f.Settings = func() (*config.Settings, error) {
		if settingsData != nil || settingsErr != nil {
			return settingsData, settingsErr
		}
		l, err := f.ConfigLoader()
		if err != nil {
			settingsErr = err
			return nil, err
		}
		settingsData, settingsErr = l.Load()
		return settingsData, settingsErr
	}

	// Prompter shares one reader across prompts
	var (
		prompterOnce sync.Once
		p            *prompter.Prompter
	)
	f.Prompter = func() *prompter.Prompter {
		prompterOnce.Do(func() {
			p = prompter.NewPrompter(f.IOStreams)
		})
		return p
	}

	f.Runner = func() runner.Runner {
		return runner.New()
	}

	f.Git = func() *git.Initializer {
		return &git.Initializer{Commit: true}
	}

	f.Templates = templates.Resolve

	return f
}
