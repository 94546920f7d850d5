package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// Run starts the interactive interface and blocks until the user quits.
func Run(deps Deps) error {
	applyColorProfilePreference()
	applyThemePreference()

	p := tea.NewProgram(newAppModel(deps), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
