// Package iostreams wraps stdin, stdout and stderr behind a testable struct,
// following the GitHub CLI pattern.
//
// Human-facing status (progress, step results, prompts) goes to ErrOut so that
// Out stays clean for anything a script may want to capture.
package iostreams

import (
	"io"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// IOStreams provides access to the standard streams plus terminal state.
type IOStreams struct {
	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	// Logger receives diagnostics from the command layer. Production wires
	// logger.Leveled so quiet mode applies; tests use loggertest.
	Logger Logger

	// -1 = unchecked, 0 = false, 1 = true
	isInputTTY  int
	isOutputTTY int
	isStderrTTY int

	// -1 = auto (follow stdout TTY), 0 = disabled, 1 = enabled
	colorEnabled int

	// "light", "dark" or "none"; empty until detected
	terminalTheme string

	neverPrompt bool

	termWidthCache int
	termSizeCached bool
}

// System returns IOStreams connected to the process streams.
func System() *IOStreams {
	ios := &IOStreams{
		In:           os.Stdin,
		Out:          os.Stdout,
		ErrOut:       os.Stderr,
		isInputTTY:   -1,
		isOutputTTY:  -1,
		isStderrTTY:  -1,
		colorEnabled: -1,
	}

	return ios
}

func isTerminal(v any) bool {
	f, ok := v.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func cachedTTY(cache *int, v any) bool {
	if *cache == -1 {
		*cache = boolToInt(isTerminal(v))
	}
	return *cache == 1
}

// IsInputTTY reports whether stdin is a terminal.
func (s *IOStreams) IsInputTTY() bool { return cachedTTY(&s.isInputTTY, s.In) }

// IsOutputTTY reports whether stdout is a terminal.
func (s *IOStreams) IsOutputTTY() bool { return cachedTTY(&s.isOutputTTY, s.Out) }

// IsStderrTTY reports whether stderr is a terminal.
func (s *IOStreams) IsStderrTTY() bool { return cachedTTY(&s.isStderrTTY, s.ErrOut) }

// IsInteractive reports whether both stdin and stdout are terminals.
func (s *IOStreams) IsInteractive() bool {
	return s.IsInputTTY() && s.IsOutputTTY()
}

// CanPrompt reports whether interactive prompts may be shown.
func (s *IOStreams) CanPrompt() bool {
	if s.neverPrompt {
		return false
	}
	return s.IsInteractive()
}

// SetNeverPrompt disables all prompts, e.g. under CI.
func (s *IOStreams) SetNeverPrompt(never bool) { s.neverPrompt = never }

// ColorEnabled reports whether color output is on.
func (s *IOStreams) ColorEnabled() bool {
	if s.colorEnabled == -1 {
		return s.IsOutputTTY()
	}
	return s.colorEnabled == 1
}

// SetColorEnabled forces color output on or off.
func (s *IOStreams) SetColorEnabled(enabled bool) { s.colorEnabled = boolToInt(enabled) }

// DetectTerminalTheme sets the theme to "light", "dark" or "none".
// COLORFGBG wins when present; otherwise the terminal is queried.
func (s *IOStreams) DetectTerminalTheme() {
	if !s.IsOutputTTY() {
		s.terminalTheme = "none"
		return
	}

	if colorfgbg := os.Getenv("COLORFGBG"); colorfgbg != "" {
		parts := strings.Split(colorfgbg, ";")
		switch parts[len(parts)-1] {
		case "7", "15":
			s.terminalTheme = "light"
			return
		case "0", "1", "2", "3", "4", "5", "6", "8":
			s.terminalTheme = "dark"
			return
		}
	}

	if termenv.HasDarkBackground() {
		s.terminalTheme = "dark"
	} else {
		s.terminalTheme = "light"
	}
}

// TerminalTheme returns the detected theme, detecting on first use.
func (s *IOStreams) TerminalTheme() string {
	if s.terminalTheme == "" {
		s.DetectTerminalTheme()
	}
	return s.terminalTheme
}

// ColorScheme returns a ColorScheme for this stream set.
func (s *IOStreams) ColorScheme() *ColorScheme {
	if !s.ColorEnabled() {
		return NewColorScheme(false, "none")
	}
	return NewColorScheme(true, s.TerminalTheme())
}

// TerminalWidth returns the stderr terminal width, or 80 when unknown.
func (s *IOStreams) TerminalWidth() int {
	if s.termSizeCached {
		return s.termWidthCache
	}
	width := 80
	if f, ok := s.ErrOut.(*os.File); ok {
		if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
			width = w
		}
	}
	s.termWidthCache = width
	s.termSizeCached = true
	return width
}

// SetStdinTTY overrides stdin TTY detection.
func (s *IOStreams) SetStdinTTY(v bool) { s.isInputTTY = boolToInt(v) }

// SetStdoutTTY overrides stdout TTY detection.
func (s *IOStreams) SetStdoutTTY(v bool) { s.isOutputTTY = boolToInt(v) }

// SetStderrTTY overrides stderr TTY detection.
func (s *IOStreams) SetStderrTTY(v bool) { s.isStderrTTY = boolToInt(v) }

// SetTerminalWidth pins the terminal width.
func (s *IOStreams) SetTerminalWidth(w int) {
	s.termWidthCache = w
	s.termSizeCached = true
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
