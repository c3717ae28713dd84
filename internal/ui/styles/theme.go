package styles

import (
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Theme colors
var (
	Primary     = lipgloss.Color("#7C3AED")
	Secondary   = lipgloss.Color("#A78BFA")
	Success     = lipgloss.Color("#10B981")
	Warning     = lipgloss.Color("#F59E0B")
	Danger      = lipgloss.Color("#EF4444")
	Info        = lipgloss.Color("#3B82F6")
	Text        = lipgloss.Color("#F3F4F6")
	TextDim     = lipgloss.Color("#9CA3AF")
	Border      = lipgloss.Color("#4B5563")
	FocusBorder = lipgloss.Color("#A78BFA")
	BgDark      = lipgloss.Color("#1F2937")
)

// Common styles
var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Primary).
			MarginBottom(1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Secondary)

	PanelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Border).
			Padding(1, 2)

	SelectedStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true)

	FilePathStyle = lipgloss.NewStyle().
			Foreground(Info)

	FileSizeStyle = lipgloss.NewStyle().
			Foreground(Warning)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	HelpStyle = lipgloss.NewStyle().
			Foreground(TextDim).
			Italic(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(Text).
			Background(BgDark).
			Padding(0, 1)

	HighlightStyle = lipgloss.NewStyle().
			Foreground(Text).
			Background(Primary).
			Bold(true)

	DimStyle = lipgloss.NewStyle().
			Foreground(TextDim)

	BoldStyle = lipgloss.NewStyle().
			Bold(true)

	InfoStyle = lipgloss.NewStyle().
			Foreground(Info).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(Warning).
			Bold(true)
)

// TableStyles returns the file table styles in theme colors
func TableStyles() table.Styles {
	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(Border).
		BorderBottom(true).
		Foreground(Secondary).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(Text).
		Background(Primary).
		Bold(false)
	return s
}
