package ui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fenilsonani/cleantemp/internal/session"
	"github.com/fenilsonani/cleantemp/internal/ui/models"
)

// RunInteractive starts the interactive TUI mode on an existing session
func RunInteractive(sess *session.Session, dryRun bool) error {
	m := models.NewAppModel(sess, dryRun)

	p := tea.NewProgram(m, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running interactive mode: %w", err)
	}

	return nil
}
