package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/schmitthub/vitewind/internal/cmdutil"
	internalconfig "github.com/schmitthub/vitewind/internal/config"
	"github.com/schmitthub/vitewind/internal/iostreams"
	"github.com/schmitthub/vitewind/internal/logger"
)

// NewCmdConfig creates the config command.
func NewCmdConfig(f *cmdutil.Factory) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage vitewind configuration",
		Long: `Commands for inspecting and creating the vitewind configuration file.

Settings are read from $VITEWIND_HOME/config.yaml (default ~/.vitewind/config.yaml).
Any key can be overridden with an environment variable, e.g.
VITEWIND_SCAFFOLD_PACKAGE_MANAGER=pnpm.`,
	}

	cmd.AddCommand(NewCmdPath(f, nil))
	cmd.AddCommand(NewCmdShow(f, nil))
	cmd.AddCommand(NewCmdInit(f, nil))

	return cmd
}

// Options holds the collaborators shared by the config subcommands.
type Options struct {
	IOStreams    *iostreams.IOStreams
	ConfigLoader func() (*internalconfig.Loader, error)
	Settings     func() (*internalconfig.Settings, error)

	// Force overwrites an existing file (init only).
	Force bool
}

func newOptions(f *cmdutil.Factory) *Options {
	return &Options{
		IOStreams:    f.IOStreams,
		ConfigLoader: f.ConfigLoader,
		Settings:     f.Settings,
	}
}

// NewCmdPath creates the "config path" command.
func NewCmdPath(f *cmdutil.Factory, runF func(context.Context, *Options) error) *cobra.Command {
	opts := newOptions(f)
	return &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		Args:  cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return pathRun(cmd.Context(), opts)
		},
	}
}

func pathRun(_ context.Context, opts *Options) error {
	loader, err := opts.ConfigLoader()
	if err != nil {
		return err
	}
	fmt.Fprintln(opts.IOStreams.Out, loader.Path())
	return nil
}

// NewCmdShow creates the "config show" command.
func NewCmdShow(f *cmdutil.Factory, runF func(context.Context, *Options) error) *cobra.Command {
	opts := newOptions(f)
	return &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Long: `Prints the configuration after defaults, the config file and
environment overrides have been merged.`,
		Args: cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return showRun(cmd.Context(), opts)
		},
	}
}

func showRun(_ context.Context, opts *Options) error {
	settings, err := opts.Settings()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	enc := yaml.NewEncoder(opts.IOStreams.Out)
	enc.SetIndent(2)
	if err := enc.Encode(settings); err != nil {
		return err
	}
	return enc.Close()
}

// NewCmdInit creates the "config init" command.
func NewCmdInit(f *cmdutil.Factory, runF func(context.Context, *Options) error) *cobra.Command {
	opts := newOptions(f)
	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a configuration file with default settings",
		Example: `  # Create ~/.vitewind/config.yaml
  vitewind config init

  # Replace an existing file
  vitewind config init --force`,
		Args: cmdutil.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if runF != nil {
				return runF(cmd.Context(), opts)
			}
			return initRun(cmd.Context(), opts)
		},
	}

	cmd.Flags().BoolVarP(&opts.Force, "force", "f", false, "Overwrite an existing configuration file")

	return cmd
}

func initRun(ctx context.Context, opts *Options) error {
	ios := opts.IOStreams

	loader, err := opts.ConfigLoader()
	if err != nil {
		return err
	}

	err = loader.Save(ctx, internalconfig.DefaultSettings(), internalconfig.SaveOptions{Safe: !opts.Force})
	if errors.Is(err, internalconfig.ErrConfigExists) {
		ios.PrintWarning("%s already exists", loader.Path())
		ios.PrintNextSteps("Run 'vitewind config init --force' to replace it")
		return cmdutil.SilentError
	}
	if err != nil {
		return fmt.Errorf("writing configuration: %w", err)
	}

	logger.Debug().Str("path", loader.Path()).Msg("configuration written")
	ios.PrintSuccess("Wrote %s", loader.Path())
	return nil
}
