package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"github.com/gofrs/flock"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// lockTimeout bounds how long Save waits for a concurrent writer.
const lockTimeout = 5 * time.Second

// ErrConfigExists is returned by Save with Safe set when the file exists.
var ErrConfigExists = errors.New("config file already exists")

// Loader reads and writes the settings file.
type Loader struct {
	path string
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithPath points the loader at an explicit file instead of the home default.
func WithPath(path string) LoaderOption {
	return func(l *Loader) { l.path = path }
}

// NewLoader returns a Loader for $VITEWIND_HOME/config.yaml.
func NewLoader(opts ...LoaderOption) (*Loader, error) {
	l := &Loader{}
	for _, opt := range opts {
		opt(l)
	}
	if l.path == "" {
		home, err := Home()
		if err != nil {
			return nil, fmt.Errorf("failed to determine vitewind home: %w", err)
		}
		l.path = filepath.Join(home, ConfigFileName)
	}
	return l, nil
}

// Path returns the settings file path.
func (l *Loader) Path() string { return l.path }

// Exists reports whether the settings file exists.
func (l *Loader) Exists() bool {
	_, err := os.Stat(l.path)
	return err == nil
}

// Load merges defaults, the settings file (if present) and environment
// overrides. A missing file is not an error.
func (l *Loader) Load() (*Settings, error) {
	v := viper.New()
	v.SetConfigFile(l.path)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv only applies to keys viper already knows about, so every
	// key gets a default.
	d := DefaultSettings()
	v.SetDefault("scaffold.package_manager", d.Scaffold.PackageManager)
	v.SetDefault("scaffold.runner", d.Scaffold.Runner)
	v.SetDefault("scaffold.template", d.Scaffold.Template)
	v.SetDefault("scaffold.dev_dependencies", d.Scaffold.DevDependencies)
	v.SetDefault("scaffold.template_dir", d.Scaffold.TemplateDir)
	v.SetDefault("logging.file_enabled", *d.Logging.FileEnabled)
	v.SetDefault("logging.max_size_mb", d.Logging.MaxSizeMB)
	v.SetDefault("logging.max_age_days", d.Logging.MaxAgeDays)
	v.SetDefault("logging.max_backups", d.Logging.MaxBackups)

	if l.Exists() {
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", l.path, err)
		}
	}

	var s Settings
	hook := viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		trimmedListHook,
		mapstructure.StringToTimeDurationHookFunc(),
	))
	if err := v.Unmarshal(&s, hook); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", l.path, err)
	}

	return &s, nil
}

// trimmedListHook decodes comma separated strings (as they arrive from
// environment variables) into string slices, dropping blank entries.
func trimmedListHook(from, to reflect.Type, data any) (any, error) {
	if from.Kind() != reflect.String || to.Kind() != reflect.Slice || to.Elem().Kind() != reflect.String {
		return data, nil
	}
	var out []string
	for _, part := range strings.FieldsFunc(data.(string), func(r rune) bool {
		return r == ',' || r == ' '
	}) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out, nil
}

// SaveOptions controls Save.
type SaveOptions struct {
	// Safe refuses to overwrite an existing file.
	Safe bool
}

// Save writes s as YAML under an exclusive file lock.
func (l *Loader) Save(ctx context.Context, s *Settings, opts SaveOptions) error {
	if err := os.MkdirAll(filepath.Dir(l.path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	lock := flock.New(l.path + ".lock")
	lockCtx, cancel := context.WithTimeout(ctx, lockTimeout)
	defer cancel()

	locked, err := lock.TryLockContext(lockCtx, 50*time.Millisecond)
	if err != nil {
		return fmt.Errorf("failed to lock config file: %w", err)
	}
	if !locked {
		return fmt.Errorf("failed to lock config file %s", l.path)
	}
	defer func() { _ = lock.Unlock() }()

	if opts.Safe && l.Exists() {
		return fmt.Errorf("%w: %s", ErrConfigExists, l.path)
	}

	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.WriteFile(l.path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
