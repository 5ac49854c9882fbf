// Package tui holds the BubbleTea views used by vitewind commands.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/schmitthub/vitewind/internal/iostreams"
)

// RunProgram runs model on the IOStreams and returns its final state.
// Rendering goes to ErrOut so stdout stays clean for piped output.
func RunProgram(ios *iostreams.IOStreams, model tea.Model) (tea.Model, error) {
	p := tea.NewProgram(model,
		tea.WithInput(ios.In),
		tea.WithOutput(ios.ErrOut),
	)
	return p.Run()
}
