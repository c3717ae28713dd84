package models

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fenilsonani/cleantemp/internal/cleaner"
	"github.com/fenilsonani/cleantemp/internal/ui/styles"
	"github.com/fenilsonani/cleantemp/pkg/utils"
)

// maxListedFailures caps how many failures the summary lists by name
const maxListedFailures = 10

// SummaryViewModel handles the summary/results view
type SummaryViewModel struct {
	result *cleaner.DeleteResult
}

// NewSummaryViewModel creates a new summary view model
func NewSummaryViewModel(result *cleaner.DeleteResult) *SummaryViewModel {
	return &SummaryViewModel{result: result}
}

// Init initializes the summary view
func (m *SummaryViewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *SummaryViewModel) Update(msg tea.Msg) (*SummaryViewModel, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "enter", "esc":
			return m, send(BackToBrowserMsg{})
		case "r":
			return m, send(RescanMsg{})
		}
	}
	return m, nil
}

// View renders the summary view
func (m *SummaryViewModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("✨ Cleanup Summary"))
	b.WriteString("\n\n")

	if m.result != nil {
		verb, freed := "Deleted", "Freed space"
		if m.result.DryRun {
			verb, freed = "Would delete", "Would free"
		}
		b.WriteString(styles.SuccessStyle.Render(fmt.Sprintf("✓ %s %d files", verb, m.result.DeletedCount)))
		b.WriteString("\n")
		b.WriteString(styles.BoldStyle.Render(fmt.Sprintf("%s: %s", freed, utils.FormatSize(m.result.FreedBytes))))
		b.WriteString("\n")

		if m.result.Missing > 0 {
			b.WriteString(styles.DimStyle.Render(fmt.Sprintf("%d files were already gone", m.result.Missing)))
			b.WriteString("\n")
		}

		if n := len(m.result.Failures); n > 0 {
			b.WriteString("\n")
			b.WriteString(styles.ErrorStyle.Render(fmt.Sprintf("✗ Failed to delete %d files:", n)))
			b.WriteString("\n")
			for i, f := range m.result.Failures {
				if i == maxListedFailures {
					b.WriteString(styles.DimStyle.Render(fmt.Sprintf("  ... and %d more", n-maxListedFailures)))
					b.WriteString("\n")
					break
				}
				b.WriteString("  " + f.String() + "\n")
			}
		}

		if m.result.DryRun {
			b.WriteString("\n")
			b.WriteString(styles.InfoStyle.Render("Note: This was a dry run. No files were actually deleted."))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpStyle.Render("enter: back  r: rescan  q: quit"))

	return b.String()
}
