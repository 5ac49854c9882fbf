package vitewind

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/schmitthub/vitewind/internal/cmd/factory"
	"github.com/schmitthub/vitewind/internal/cmd/root"
	"github.com/schmitthub/vitewind/internal/cmdutil"
	"github.com/schmitthub/vitewind/internal/logger"
	"github.com/schmitthub/vitewind/internal/scaffold"
)

// Build-time variables injected via ldflags
var (
	Version = "dev"
	Commit  = ""
)

const (
	exitOk    = 0
	exitError = 1
	exitUsage = 2
)

// Main is the entry point for the vitewind CLI.
// It initializes the Factory, creates the root command, and executes it.
func Main() int {
	// Ensure logs are flushed on exit
	defer logger.CloseFileWriter()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	f := factory.New(Version, Commit)
	return execute(ctx, f, os.Args[1:])
}

func execute(ctx context.Context, f *cmdutil.Factory, args []string) int {
	rootCmd := root.NewCmdRoot(f)
	rootCmd.SetArgs(args)
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return cmdutil.FlagErrorWrap(err)
	})

	cmd, err := rootCmd.ExecuteContextC(ctx)
	if err == nil {
		return exitOk
	}
	return handleError(f, cmd, err)
}

// handleError renders err and maps it to an exit code.
func handleError(f *cmdutil.Factory, cmd *cobra.Command, err error) int {
	ios := f.IOStreams

	if errors.Is(err, cmdutil.SilentError) {
		return exitError
	}

	var exitErr *cmdutil.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}

	if errors.Is(err, context.Canceled) {
		ios.PrintWarning("Interrupted")
		return exitError
	}

	var flagErr *cmdutil.FlagError
	if errors.As(err, &flagErr) || isUsageError(err) {
		cmdutil.PrintError(ios, err)
		cmdutil.PrintHelpHint(ios, cmd.CommandPath())
		return exitUsage
	}

	// A failed step was already logged where it happened.
	var stepErr *scaffold.StepError
	if !errors.As(err, &stepErr) {
		logger.Error().Err(err).Msg("command failed")
	}
	cmdutil.PrintError(ios, err)
	if path := logger.LogFilePath(); path != "" {
		ios.PrintInfo("Full log: %s", path)
	}
	return exitError
}

// isUsageError catches the argument errors cobra reports without a typed error.
func isUsageError(err error) bool {
	return strings.HasPrefix(err.Error(), "unknown command ")
}
