package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/fenilsonani/cleantemp/internal/ui/styles"
	"github.com/fenilsonani/cleantemp/pkg/utils"
)

// Shortcut is one key hint shown on the right of the status bar
type Shortcut struct {
	Key  string
	Desc string
}

// StatusBar is the footer under the file table
type StatusBar struct {
	files     int
	size      int64
	sortLabel string
	shortcuts []Shortcut
}

// NewStatusBar creates a new status bar
func NewStatusBar(shortcuts ...Shortcut) *StatusBar {
	return &StatusBar{shortcuts: shortcuts}
}

// SetTotals sets the file count and total size
func (s *StatusBar) SetTotals(files int, size int64) {
	s.files = files
	s.size = size
}

// SetSort sets the description of the active sort
func (s *StatusBar) SetSort(label string) {
	s.sortLabel = label
}

// Totals renders the "Files: N | Total: X" summary
func (s *StatusBar) Totals() string {
	return fmt.Sprintf("Files: %d | Total: %s", s.files, utils.FormatSize(s.size))
}

// Render renders the status bar with the given width
func (s *StatusBar) Render(width int) string {
	if width <= 0 {
		width = 80
	}

	leftSide := styles.BoldStyle.Render(s.Totals())
	if s.sortLabel != "" {
		leftSide += " • " + s.sortLabel
	}

	var hints []string
	for _, sc := range s.shortcuts {
		hints = append(hints, fmt.Sprintf("%s:%s", styles.DimStyle.Render(sc.Key), sc.Desc))
	}
	rightSide := strings.Join(hints, " ")

	spacing := width - lipgloss.Width(leftSide) - lipgloss.Width(rightSide) - 2
	if spacing < 1 {
		// Hints no longer fit; keep the totals
		rightSide = ""
		spacing = 1
	}

	return styles.StatusBarStyle.Width(width).Render(leftSide + strings.Repeat(" ", spacing) + rightSide)
}
