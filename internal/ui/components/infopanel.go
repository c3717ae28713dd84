package components

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/fenilsonani/cleantemp/internal/scanner"
	"github.com/fenilsonani/cleantemp/internal/ui/styles"
	"github.com/fenilsonani/cleantemp/pkg/utils"
)

// InfoPanel shows details about the highlighted file
type InfoPanel struct {
	title   string
	content []InfoItem
	visible bool
	width   int
}

// InfoItem represents a single piece of information
type InfoItem struct {
	Label string
	Value string
}

// NewInfoPanel creates a new info panel
func NewInfoPanel(title string, width int) *InfoPanel {
	return &InfoPanel{
		title: title,
		width: width,
	}
}

// FileInfoPanel builds a panel describing rec, with its age relative to now
func FileInfoPanel(rec scanner.FileRecord, now time.Time, width int) *InfoPanel {
	p := NewInfoPanel(rec.DisplayName, width)
	p.AddItem("Path", rec.Path)
	p.AddItem("Size", styles.FileSizeStyle.Render(utils.FormatSize(rec.Size))+" ("+humanize.Comma(rec.Size)+" bytes)")
	p.AddItem("Created", rec.CreatedAt.Format("2006-01-02 15:04:05"))
	p.AddItem("Age", humanize.RelTime(rec.CreatedAt, now, "old", "in the future"))
	return p
}

// AddItem adds an information item to the panel
func (p *InfoPanel) AddItem(label, value string) {
	p.content = append(p.content, InfoItem{Label: label, Value: value})
}

// SetVisible sets the visibility of the panel
func (p *InfoPanel) SetVisible(visible bool) {
	p.visible = visible
}

// IsVisible returns whether the panel is visible
func (p *InfoPanel) IsVisible() bool {
	return p.visible
}

// Render renders the info panel
func (p *InfoPanel) Render() string {
	if !p.visible || len(p.content) == 0 {
		return ""
	}

	panelWidth := p.width / 2
	if panelWidth < 40 {
		panelWidth = 40
	}
	if panelWidth > 80 {
		panelWidth = 80
	}

	panelStyle := styles.PanelStyle.
		Border(lipgloss.ThickBorder()).
		BorderForeground(styles.FocusBorder).
		Width(panelWidth)

	titleStyle := lipgloss.NewStyle().
		Foreground(styles.Primary).
		Bold(true).
		Underline(true)

	labelStyle := lipgloss.NewStyle().
		Foreground(styles.Secondary).
		Bold(true)

	var content strings.Builder
	content.WriteString(titleStyle.Render(p.title))
	content.WriteString("\n\n")

	for i, item := range p.content {
		content.WriteString(labelStyle.Render(item.Label) + ": ")
		content.WriteString(item.Value)
		if i < len(p.content)-1 {
			content.WriteString("\n")
		}
	}

	content.WriteString("\n\n")
	content.WriteString(styles.HelpStyle.Render("Press 'i' or 'esc' to close"))

	return panelStyle.Render(content.String())
}
