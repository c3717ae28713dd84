package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fenilsonani/cleantemp/internal/cleaner"
	"github.com/fenilsonani/cleantemp/internal/session"
	"github.com/fenilsonani/cleantemp/internal/ui/styles"
	"github.com/fenilsonani/cleantemp/pkg/utils"
)

const maxProgressWidth = 60

// CleanupViewModel shows deletion progress while the snapshot is deleted
type CleanupViewModel struct {
	session   *session.Session
	count     int
	spinner   spinner.Model
	progress  progress.Model
	current   int
	freed     int64
	updates   chan cleaner.Progress
	startTime time.Time
}

// NewCleanupViewModel creates a new cleanup view model
func NewCleanupViewModel(sess *session.Session, count, width int) *CleanupViewModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.SelectedStyle

	p := progress.New(progress.WithDefaultGradient())
	if width > 4 {
		p.Width = min(width-4, maxProgressWidth)
	}

	return &CleanupViewModel{
		session:   sess,
		count:     count,
		spinner:   s,
		progress:  p,
		updates:   make(chan cleaner.Progress, 1),
		startTime: time.Now(),
	}
}

// Init initializes the cleanup view
func (m *CleanupViewModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.performCleanup,
		m.waitForProgress,
	)
}

// Update handles messages
func (m *CleanupViewModel) Update(msg tea.Msg) (*CleanupViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case CleanProgressMsg:
		m.current = msg.Progress.Done
		m.freed = msg.Progress.FreedBytes
		return m, m.waitForProgress
	}

	return m, nil
}

// View renders the cleanup view
func (m *CleanupViewModel) View() string {
	var b strings.Builder

	b.WriteString(styles.TitleStyle.Render("🗑️  Cleaning Up"))
	b.WriteString("\n\n")
	b.WriteString(m.spinner.View())
	b.WriteString(fmt.Sprintf(" Deleting %d files... ", m.count))
	b.WriteString(styles.DimStyle.Render(fmt.Sprintf("(%s)", time.Since(m.startTime).Round(time.Second))))
	b.WriteString("\n\n")

	var percent float64
	if m.count > 0 {
		percent = float64(m.current) / float64(m.count)
	}
	b.WriteString(m.progress.ViewAs(percent))
	b.WriteString("\n\n")

	b.WriteString(fmt.Sprintf("Progress: %d/%d files", m.current, m.count))
	if m.freed > 0 {
		b.WriteString(styles.DimStyle.Render(fmt.Sprintf("  (%s freed)", utils.FormatSize(m.freed))))
	}

	return b.String()
}

// performCleanup deletes everything the session currently lists. Progress
// is dropped rather than blocking the delete when the view falls behind.
func (m *CleanupViewModel) performCleanup() tea.Msg {
	defer close(m.updates)

	result, err := m.session.DeleteWithProgress(func(p cleaner.Progress) {
		select {
		case m.updates <- p:
		default:
		}
	})
	return DeleteCompleteMsg{Result: result, Err: err}
}

// waitForProgress blocks until the next progress report. It returns nil once
// the delete has finished.
func (m *CleanupViewModel) waitForProgress() tea.Msg {
	p, ok := <-m.updates
	if !ok {
		return nil
	}
	return CleanProgressMsg{Progress: p}
}
