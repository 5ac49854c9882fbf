// Package create implements "vitewind create", which scaffolds a Vite + React
// project and wires Tailwind CSS into it.
package create

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/schmitthub/vitewind/internal/cmdutil"
	"github.com/schmitthub/vitewind/internal/config"
	"github.com/schmitthub/vitewind/internal/conflict"
	"github.com/schmitthub/vitewind/internal/git"
	"github.com/schmitthub/vitewind/internal/iostreams"
	"github.com/schmitthub/vitewind/internal/logger"
	"github.com/schmitthub/vitewind/internal/prompter"
	"github.com/schmitthub/vitewind/internal/runner"
	"github.com/schmitthub/vitewind/internal/scaffold"
	"github.com/schmitthub/vitewind/internal/templates"
	"github.com/schmitthub/vitewind/internal/tui"
)

// DefaultProjectName is offered when no name is given.
const DefaultProjectName = "vite-project"

// CreateOptions holds options for the create command.
type CreateOptions struct {
	IOStreams *iostreams.IOStreams
	Fs        afero.Fs
	WorkDir   string
	Settings  func() (*config.Settings, error)
	Prompter  func() *prompter.Prompter
	Runner    func() runner.Runner
	Git       func() *git.Initializer
	Templates func(dir string) (*templates.Bundle, error)

	Name           string
	Template       string
	PackageManager string
	Overwrite      bool
	InitGit        bool
	Progress       string
}

// NewCmdCreate creates the create command.
func NewCmdCreate(f *cmdutil.Factory, runF func(context.Context, *CreateOptions) error) *cobra.Command {
	opts := &CreateOptions{
		IOStreams: f.IOStreams,
		Fs:        f.Fs,
		WorkDir:   f.WorkDir,
		Settings:  f.Settings,
		Prompter:  f.Prompter,
		Runner:    f.Runner,
		Git:       f.Git,
		Templates: f.Templates,
	}

	cmd := &cobra.Command{
		Use:   "create [PROJECT]",
		Short: "Create a new Vite + React project with Tailwind CSS",
		Long: `Creates a Vite + React project in ./PROJECT, installs Tailwind CSS and
rewrites the starter files to use it.

When PROJECT is omitted you are asked for a name. If the target directory
already exists and is not empty you can clear it, pick another name or cancel.`,
		Example: `  # Create ./my-app
  vitewind create my-app

  # Use pnpm and the TypeScript template
  vitewind create my-app --package-manager pnpm --template react-ts

  # Replace the contents of an existing directory without asking
  vitewind create my-app --overwrite

  # Also initialize a git repository
  vitewind create my-app --git`,
		Args: cmdutil.RequiresMaxArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(tui.ProgressModes, opts.Progress) {
				return cmdutil.FlagErrorf("invalid --progress value %q: must be one of %s",
					opts.Progress, strings.Join(tui.ProgressModes, ", "))
			}
			if len(args) > 0 {
				opts.Name = args[0]
				if err := conflict.ValidateName(opts.Name); err != nil {
					return cmdutil.FlagErrorWrap(err)
				}
			}
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return createRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Template, "template", "t", "", "Vite template to start from (default from config: react)")
	cmd.Flags().StringVar(&opts.PackageManager, "package-manager", "", "Package manager used to create the project and install dependencies (default from config: npm)")
	cmd.Flags().BoolVar(&opts.Overwrite, "overwrite", false, "Clear a non-empty target directory without asking")
	cmd.Flags().BoolVar(&opts.InitGit, "git", false, "Initialize a git repository with an initial commit")
	cmd.Flags().StringVar(&opts.Progress, "progress", tui.ModeAuto, "Progress output: auto, plain, tty or none")

	return cmd
}

func createRun(ctx context.Context, opts *CreateOptions) error {
	ios := opts.IOStreams
	cs := ios.ColorScheme()

	settings, err := opts.Settings()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	scaffoldCfg := settings.Scaffold
	if opts.Template != "" {
		scaffoldCfg.Template = opts.Template
	}
	if opts.PackageManager != "" {
		scaffoldCfg.PackageManager = opts.PackageManager
	}

	name := opts.Name
	if name == "" {
		name, err = opts.Prompter().String(prompter.PromptConfig{
			Message:   "Project name",
			Default:   DefaultProjectName,
			Required:  true,
			Validator: conflict.ValidateName,
		})
		if err != nil {
			return err
		}
	}

	var decider conflict.Decider = &promptDecider{prompter: opts.Prompter(), fs: opts.Fs}
	if opts.Overwrite {
		decider = &conflict.Fixed{Choice: conflict.Clear}
	}
	resolver := &conflict.Resolver{Fs: opts.Fs, WorkDir: opts.WorkDir, Decider: decider}

	name, err = resolver.Resolve(ctx, name)
	if errors.Is(err, conflict.ErrAborted) {
		ios.PrintWarning("Operation cancelled")
		return cmdutil.SilentError
	}
	if err != nil {
		return err
	}

	bundle, err := opts.Templates(scaffoldCfg.TemplateDir)
	if err != nil {
		return err
	}

	logger.SetProject(name)
	defer logger.SetProject("")

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch := make(chan tui.ProgressStep, 32)
	reporter := newProgressReporter(ctx, ios.Logger, ch)

	rc := scaffold.NewRunContext(opts.WorkDir, name, bundle, scaffoldCfg)
	rc.Output = reporter
	pipeline := &scaffold.Pipeline{
		Fs:       opts.Fs,
		Runner:   opts.Runner(),
		Observer: reporter,
	}
	if opts.InitGit {
		if git.IsRepository(opts.WorkDir) {
			ios.PrintWarning("%s is already inside a git repository; skipping git init", opts.WorkDir)
		} else {
			rc.InitGit = true
			pipeline.Git = opts.Git()
		}
	}

	fmt.Fprintf(ios.ErrOut, "Creating %s in %s\n\n", cs.Bold(name), rc.ProjectDir)

	done := make(chan error, 1)
	go func() {
		defer close(ch)
		done <- pipeline.Run(ctx, rc)
	}()

	res := tui.RunProgress(ios, opts.Progress, tui.ProgressDisplayConfig{
		Title:          "Creating",
		Subtitle:       name,
		CompletionVerb: "Scaffolded",
	}, ch)
	if res.Err != nil {
		cancel()
	}
	if err := <-done; err != nil {
		if res.Err != nil && errors.Is(err, context.Canceled) {
			return res.Err
		}
		return err
	}
	if res.Err != nil {
		return res.Err
	}

	fmt.Fprintln(ios.ErrOut)
	ios.PrintSuccess("Project '%s' created successfully.", name)
	ios.PrintNextSteps(
		"cd "+name,
		scaffoldCfg.PackageManager+" run dev",
	)
	return nil
}
