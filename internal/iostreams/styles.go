package iostreams

import "github.com/charmbracelet/lipgloss"

// Palette.
var (
	ColorSky     = lipgloss.Color("#38BDF8") // tailwind sky-400
	ColorViolet  = lipgloss.Color("#A78BFA") // vite violet
	ColorEmerald = lipgloss.Color("#10B981")
	ColorAmber   = lipgloss.Color("#F59E0B")
	ColorRose    = lipgloss.Color("#F43F5E")
	ColorSlate   = lipgloss.Color("#64748B")
)

// Semantic aliases. Swap the right-hand side to retheme.
var (
	ColorPrimary   = ColorViolet
	ColorInfo      = ColorSky
	ColorSuccess   = ColorEmerald
	ColorWarning   = ColorAmber
	ColorError     = ColorRose
	ColorMuted     = ColorSlate
	ColorHighlight = ColorViolet
)

var (
	TitleStyle     = lipgloss.NewStyle().Bold(true).Foreground(ColorPrimary)
	InfoStyle      = lipgloss.NewStyle().Foreground(ColorInfo)
	SuccessStyle   = lipgloss.NewStyle().Foreground(ColorSuccess)
	WarningStyle   = lipgloss.NewStyle().Foreground(ColorWarning)
	ErrorStyle     = lipgloss.NewStyle().Foreground(ColorError)
	MutedStyle     = lipgloss.NewStyle().Foreground(ColorMuted)
	HighlightStyle = lipgloss.NewStyle().Foreground(ColorHighlight)
	BoldStyle      = lipgloss.NewStyle().Bold(true)
)
