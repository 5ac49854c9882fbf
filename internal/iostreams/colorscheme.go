package iostreams

import "fmt"

// ColorScheme formats text for the terminal. With colors disabled every
// method returns its input unchanged and icons fall back to ASCII tags.
type ColorScheme struct {
	enabled bool
	theme   string
}

// NewColorScheme returns a ColorScheme. An empty theme means "dark".
func NewColorScheme(enabled bool, theme string) *ColorScheme {
	if theme == "" {
		theme = "dark"
	}
	return &ColorScheme{enabled: enabled, theme: theme}
}

// Enabled reports whether colors are on.
func (cs *ColorScheme) Enabled() bool { return cs.enabled }

// Theme returns "light", "dark" or "none".
func (cs *ColorScheme) Theme() string { return cs.theme }

func (cs *ColorScheme) render(style interface{ Render(...string) string }, s string) string {
	if !cs.enabled {
		return s
	}
	return style.Render(s)
}

func (cs *ColorScheme) Red(s string) string     { return cs.render(ErrorStyle, s) }
func (cs *ColorScheme) Yellow(s string) string  { return cs.render(WarningStyle, s) }
func (cs *ColorScheme) Green(s string) string   { return cs.render(SuccessStyle, s) }
func (cs *ColorScheme) Cyan(s string) string    { return cs.render(InfoStyle, s) }
func (cs *ColorScheme) Magenta(s string) string { return cs.render(HighlightStyle, s) }
func (cs *ColorScheme) Muted(s string) string   { return cs.render(MutedStyle, s) }
func (cs *ColorScheme) Bold(s string) string    { return cs.render(BoldStyle, s) }
func (cs *ColorScheme) Title(s string) string   { return cs.render(TitleStyle, s) }

// Cyanf formats then colors cyan.
func (cs *ColorScheme) Cyanf(format string, a ...any) string {
	return cs.Cyan(fmt.Sprintf(format, a...))
}

// Boldf formats then bolds.
func (cs *ColorScheme) Boldf(format string, a ...any) string {
	return cs.Bold(fmt.Sprintf(format, a...))
}

// SuccessIcon is a green ✓, or [ok] without colors.
func (cs *ColorScheme) SuccessIcon() string {
	if cs.enabled {
		return cs.Green("✓")
	}
	return "[ok]"
}

// WarningIcon is a yellow !, or [warn] without colors.
func (cs *ColorScheme) WarningIcon() string {
	if cs.enabled {
		return cs.Yellow("!")
	}
	return "[warn]"
}

// FailureIcon is a red ✗, or [error] without colors.
func (cs *ColorScheme) FailureIcon() string {
	if cs.enabled {
		return cs.Red("✗")
	}
	return "[error]"
}

// InfoIcon is a cyan ℹ, or [info] without colors.
func (cs *ColorScheme) InfoIcon() string {
	if cs.enabled {
		return cs.Cyan("ℹ")
	}
	return "[info]"
}
