// Package config loads and persists vitewind settings.
//
// Settings live in $VITEWIND_HOME/config.yaml (default ~/.vitewind). Every key
// may be overridden by an environment variable named VITEWIND_ followed by the
// upper-cased key path with dots replaced by underscores, for example
// VITEWIND_SCAFFOLD_PACKAGE_MANAGER=pnpm. Command-line flags win over both.
package config

import (
	"os"
	"path/filepath"
)

const (
	// HomeEnv overrides the vitewind home directory.
	HomeEnv = "VITEWIND_HOME"
	// EnvPrefix prefixes environment overrides.
	EnvPrefix = "VITEWIND"
	// DefaultDirName is the home directory name under the user's home.
	DefaultDirName = ".vitewind"
	// ConfigFileName is the settings file inside the home directory.
	ConfigFileName = "config.yaml"
	// LogsSubdir holds rotated log files.
	LogsSubdir = "logs"
)

// Settings is the full user configuration.
type Settings struct {
	Scaffold ScaffoldConfig `mapstructure:"scaffold" yaml:"scaffold"`
	Logging  LoggingConfig  `mapstructure:"logging" yaml:"logging"`
}

// ScaffoldConfig controls the external tooling the scaffold pipeline invokes.
type ScaffoldConfig struct {
	// PackageManager runs "create vite" and installs dev dependencies.
	PackageManager string `mapstructure:"package_manager" yaml:"package_manager"`
	// Runner executes package binaries (tailwindcss init).
	Runner string `mapstructure:"runner" yaml:"runner"`
	// Template is the Vite starter template.
	Template string `mapstructure:"template" yaml:"template"`
	// DevDependencies are installed with "-D" after the project is created.
	DevDependencies []string `mapstructure:"dev_dependencies" yaml:"dev_dependencies"`
	// TemplateDir replaces the embedded template bundle when set.
	TemplateDir string `mapstructure:"template_dir" yaml:"template_dir,omitempty"`
}

// LoggingConfig controls file logging.
type LoggingConfig struct {
	FileEnabled *bool `mapstructure:"file_enabled" yaml:"file_enabled,omitempty"`
	MaxSizeMB   int   `mapstructure:"max_size_mb" yaml:"max_size_mb,omitempty"`
	MaxAgeDays  int   `mapstructure:"max_age_days" yaml:"max_age_days,omitempty"`
	MaxBackups  int   `mapstructure:"max_backups" yaml:"max_backups,omitempty"`
}

// DefaultSettings returns the settings used when nothing is configured.
func DefaultSettings() *Settings {
	enabled := true
	return &Settings{
		Scaffold: ScaffoldConfig{
			PackageManager: "npm",
			Runner:         "npx",
			Template:       "react",
			DevDependencies: []string{
				"tailwindcss@latest",
				"postcss@latest",
				"autoprefixer@latest",
			},
		},
		Logging: LoggingConfig{
			FileEnabled: &enabled,
			MaxSizeMB:   10,
			MaxAgeDays:  14,
			MaxBackups:  3,
		},
	}
}

// Home returns the vitewind home directory.
func Home() (string, error) {
	if home := os.Getenv(HomeEnv); home != "" {
		return home, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DefaultDirName), nil
}

// LogsDir returns $VITEWIND_HOME/logs.
func LogsDir() (string, error) {
	home, err := Home()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, LogsSubdir), nil
}
