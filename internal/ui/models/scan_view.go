package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fenilsonani/cleantemp/internal/session"
	"github.com/fenilsonani/cleantemp/internal/ui/styles"
	uiutils "github.com/fenilsonani/cleantemp/internal/ui/utils"
)

// ScanViewModel shows a spinner while the temp directory is scanned. There
// are no incremental updates; the result arrives in one ScanCompleteMsg.
type ScanViewModel struct {
	session   *session.Session
	spinner   spinner.Model
	startTime time.Time
	width     int
}

// NewScanViewModel creates a new scan view model
func NewScanViewModel(sess *session.Session, width int) *ScanViewModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SelectedStyle

	return &ScanViewModel{
		session:   sess,
		spinner:   s,
		startTime: time.Now(),
		width:     width,
	}
}

// Init initializes the scan view
func (m *ScanViewModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.performScan,
	)
}

// Update handles messages
func (m *ScanViewModel) Update(msg tea.Msg) (*ScanViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.WindowSizeMsg:
		m.width = msg.Width
	}

	return m, nil
}

// View renders the scan view
func (m *ScanViewModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("🔍 Scanning Temp Files"))
	b.WriteString("\n\n")

	b.WriteString(m.spinner.View())
	b.WriteString(" Scanning ")
	b.WriteString(styles.FilePathStyle.Render(uiutils.TruncatePath(m.session.Root, 60)))
	b.WriteString(" ")
	b.WriteString(styles.DimStyle.Render(fmt.Sprintf("(%s)", time.Since(m.startTime).Round(time.Second))))
	b.WriteString("\n\n")

	b.WriteString(styles.HelpStyle.Render("Press ctrl+c to cancel"))

	return b.String()
}

// performScan runs the scan through the session
func (m *ScanViewModel) performScan() tea.Msg {
	result, err := m.session.Scan()
	return ScanCompleteMsg{Result: result, Err: err}
}
