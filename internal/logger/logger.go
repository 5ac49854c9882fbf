// Package logger holds the process-wide zerolog logger.
//
// Console output goes to stderr in a human-readable form. When file logging is
// enabled every event is also written as JSON to a rotated log file, which is
// where diagnostics end up while prompts and progress displays own the terminal.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFileName is the name of the rotated log file inside the logs directory.
const LogFileName = "vitewind.log"

var (
	// Log is the global logger instance.
	Log zerolog.Logger = zerolog.Nop()

	fileWriter *lumberjack.Logger
	fileLog    zerolog.Logger = zerolog.Nop()

	quiet   bool
	quietMu sync.RWMutex

	project   string
	projectMu sync.RWMutex

	consoleOut io.Writer = os.Stderr
)

// LoggingConfig mirrors config.LoggingConfig without importing it.
type LoggingConfig struct {
	FileEnabled *bool
	MaxSizeMB   int
	MaxAgeDays  int
	MaxBackups  int
}

// IsFileEnabled reports whether file logging is on. Nil means on.
func (c *LoggingConfig) IsFileEnabled() bool {
	if c.FileEnabled == nil {
		return true
	}
	return *c.FileEnabled
}

func (c *LoggingConfig) maxSizeMB() int {
	if c.MaxSizeMB <= 0 {
		return 10
	}
	return c.MaxSizeMB
}

func (c *LoggingConfig) maxAgeDays() int {
	if c.MaxAgeDays <= 0 {
		return 14
	}
	return c.MaxAgeDays
}

func (c *LoggingConfig) maxBackups() int {
	if c.MaxBackups <= 0 {
		return 3
	}
	return c.MaxBackups
}

func level(debug bool) zerolog.Level {
	if debug {
		return zerolog.DebugLevel
	}
	return zerolog.InfoLevel
}

func consoleWriter() zerolog.ConsoleWriter {
	return zerolog.ConsoleWriter{
		Out:        consoleOut,
		TimeFormat: time.Kitchen,
	}
}

// SetConsoleOutput redirects console logging for loggers initialized after
// the call. Nil restores stderr.
func SetConsoleOutput(w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	consoleOut = w
}

// Init sets up console-only logging.
func Init(debug bool) {
	Log = zerolog.New(consoleWriter()).
		Level(level(debug)).
		With().
		Timestamp().
		Logger()
}

// InitWithFile sets up console logging plus a rotated JSON log file in logsDir.
// An empty logsDir or a config with file logging disabled behaves like Init.
func InitWithFile(debug bool, logsDir string, cfg *LoggingConfig) error {
	if logsDir == "" || cfg == nil || !cfg.IsFileEnabled() {
		Init(debug)
		return nil
	}

	if err := os.MkdirAll(logsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create logs directory: %w", err)
	}

	fileWriter = &lumberjack.Logger{
		Filename:   filepath.Join(logsDir, LogFileName),
		MaxSize:    cfg.maxSizeMB(),
		MaxAge:     cfg.maxAgeDays(),
		MaxBackups: cfg.maxBackups(),
		LocalTime:  true,
	}

	fileLog = zerolog.New(fileWriter).
		Level(level(debug)).
		With().
		Timestamp().
		Logger()

	Log = zerolog.New(io.MultiWriter(consoleWriter(), fileWriter)).
		Level(level(debug)).
		With().
		Timestamp().
		Logger()

	return nil
}

// CloseFileWriter flushes and closes the log file, if any.
func CloseFileWriter() error {
	if fileWriter == nil {
		return nil
	}
	err := fileWriter.Close()
	fileWriter = nil
	fileLog = zerolog.Nop()
	return err
}

// LogFilePath returns the active log file path, or "" when file logging is off.
func LogFilePath() string {
	if fileWriter != nil {
		return fileWriter.Filename
	}
	return ""
}

// SetQuiet suppresses Info, Warn and Error on the console while prompts or a
// progress display are on screen. The log file still receives them. Debug is never
// suppressed.
func SetQuiet(enabled bool) {
	quietMu.Lock()
	defer quietMu.Unlock()
	quiet = enabled
}

func suppressed() bool {
	quietMu.RLock()
	defer quietMu.RUnlock()
	return quiet && Log.GetLevel() != zerolog.DebugLevel
}

// SetProject tags subsequent events with the project being scaffolded.
func SetProject(name string) {
	projectMu.Lock()
	defer projectMu.Unlock()
	project = name
}

func withProject(e *zerolog.Event) *zerolog.Event {
	projectMu.RLock()
	defer projectMu.RUnlock()
	if project != "" {
		e = e.Str("project", project)
	}
	return e
}

func event(console, file func() *zerolog.Event) *zerolog.Event {
	if suppressed() {
		return withProject(file())
	}
	return withProject(console())
}

// Debug starts a debug-level event.
func Debug() *zerolog.Event {
	return withProject(Log.Debug())
}

// Info starts an info-level event.
func Info() *zerolog.Event {
	return event(Log.Info, fileLog.Info)
}

// Warn starts a warn-level event.
func Warn() *zerolog.Event {
	return event(Log.Warn, fileLog.Warn)
}

// Error starts an error-level event.
func Error() *zerolog.Event {
	return event(Log.Error, fileLog.Error)
}

// Leveled exposes the package-level helpers as a value, so code that takes a
// leveled logger (iostreams.Logger) gets the same quiet handling and project
// tagging as direct calls.
type Leveled struct{}

func (Leveled) Debug() *zerolog.Event { return Debug() }
func (Leveled) Info() *zerolog.Event  { return Info() }
func (Leveled) Warn() *zerolog.Event  { return Warn() }
func (Leveled) Error() *zerolog.Event { return Error() }
