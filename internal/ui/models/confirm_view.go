package models

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fenilsonani/cleantemp/internal/ui/styles"
	uiutils "github.com/fenilsonani/cleantemp/internal/ui/utils"
	"github.com/fenilsonani/cleantemp/pkg/utils"
)

// ConfirmViewModel asks before the whole listing is deleted
type ConfirmViewModel struct {
	count  int
	size   int64
	dryRun bool
	cursor int // 0 = Yes, 1 = No
	width  int
	height int
}

// NewConfirmViewModel creates a new confirm view model. The cursor starts on
// "No".
func NewConfirmViewModel(count int, size int64, dryRun bool, width, height int) *ConfirmViewModel {
	return &ConfirmViewModel{
		count:  count,
		size:   size,
		dryRun: dryRun,
		cursor: 1,
		width:  width,
		height: height,
	}
}

// Init initializes the confirm view
func (m *ConfirmViewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *ConfirmViewModel) Update(msg tea.Msg) (*ConfirmViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			m.cursor = 0
		case "right", "l":
			m.cursor = 1
		case "tab":
			m.cursor = (m.cursor + 1) % 2
		case "enter":
			if m.cursor == 0 {
				return m, send(ConfirmedMsg{})
			}
			return m, send(CancelledMsg{})
		case "y":
			return m, send(ConfirmedMsg{})
		case "n", "esc":
			return m, send(CancelledMsg{})
		}
	}

	return m, nil
}

// View renders the confirmation view
func (m *ConfirmViewModel) View() string {
	var b strings.Builder

	b.WriteString(uiutils.GetSizeWarningBanner(m.width, m.height))
	b.WriteString(styles.TitleStyle.Render("⚠️  Confirm Deletion"))
	b.WriteString("\n\n")

	b.WriteString(styles.BoldStyle.Render(fmt.Sprintf("Are you sure you want to delete %d files (%s)?",
		m.count, utils.FormatSize(m.size))))
	b.WriteString("\n\n")

	if m.dryRun {
		b.WriteString(styles.InfoStyle.Render("Dry run: nothing will be removed."))
	} else {
		b.WriteString(styles.WarningStyle.Render("⚠️  This action cannot be undone!"))
	}
	b.WriteString("\n\n")

	yesBtn := "[ Yes, delete ]"
	noBtn := "[ No ]"
	if m.cursor == 0 {
		yesBtn = styles.HighlightStyle.Render(yesBtn)
	} else {
		noBtn = styles.HighlightStyle.Render(noBtn)
	}

	b.WriteString(yesBtn + "  " + noBtn)
	b.WriteString("\n\n")
	b.WriteString(styles.HelpStyle.Render("y:confirm  n:cancel  ←/→:choose  enter:select"))

	return b.String()
}
