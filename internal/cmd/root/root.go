package root

import (
	"github.com/spf13/cobra"

	configcmd "github.com/schmitthub/vitewind/internal/cmd/config"
	"github.com/schmitthub/vitewind/internal/cmd/create"
	versioncmd "github.com/schmitthub/vitewind/internal/cmd/version"
	"github.com/schmitthub/vitewind/internal/cmdutil"
	"github.com/schmitthub/vitewind/internal/config"
	"github.com/schmitthub/vitewind/internal/logger"
)

// NewCmdRoot creates the root command for the vitewind CLI.
func NewCmdRoot(f *cmdutil.Factory) *cobra.Command {
	var debug bool

	cmd := &cobra.Command{
		Use:   "vitewind",
		Short: "Scaffold Vite + React projects with Tailwind CSS",
		Long: `vitewind creates a Vite + React project and wires Tailwind CSS into it:
it installs tailwindcss, postcss and autoprefixer, generates the Tailwind
config and rewrites the starter files to use utility classes.

Quick start:
  vitewind create my-app   # Create ./my-app
  cd my-app
  npm run dev`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			initializeLogger(f, debug)
			// keep prompts readable; the log file still gets everything
			logger.SetQuiet(f.IOStreams.IsInteractive())

			logger.Debug().
				Str("version", f.Version).
				Str("workdir", f.WorkDir).
				Bool("debug", debug).
				Msg("vitewind starting")

			return nil
		},
		Version: f.Version,
	}

	cmd.PersistentFlags().BoolVarP(&debug, "debug", "D", false, "Enable debug logging")

	cmd.SetVersionTemplate(versioncmd.Format(f.Version, f.Commit))

	cmd.AddCommand(create.NewCmdCreate(f, nil))
	cmd.AddCommand(configcmd.NewCmdConfig(f))
	cmd.AddCommand(versioncmd.NewCmdVersion(f))

	return cmd
}

// initializeLogger sets up the logger with file logging if possible.
// Falls back to console-only logging on any errors.
func initializeLogger(f *cmdutil.Factory, debug bool) {
	if f.Settings == nil {
		logger.Init(debug)
		return
	}

	settings, err := f.Settings()
	if err != nil {
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to load settings")
		return
	}

	logsDir, err := config.LogsDir()
	if err != nil {
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to get logs directory")
		return
	}

	logCfg := &logger.LoggingConfig{
		FileEnabled: settings.Logging.FileEnabled,
		MaxSizeMB:   settings.Logging.MaxSizeMB,
		MaxAgeDays:  settings.Logging.MaxAgeDays,
		MaxBackups:  settings.Logging.MaxBackups,
	}

	if err := logger.InitWithFile(debug, logsDir, logCfg); err != nil {
		logger.Init(debug)
		logger.Warn().Err(err).Msg("file logging unavailable: failed to initialize file writer")
	}
}
