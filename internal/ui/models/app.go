package models

import (
	"errors"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fenilsonani/cleantemp/internal/session"
	"github.com/fenilsonani/cleantemp/internal/ui/styles"
)

// ViewState represents the current view in the app
type ViewState int

const (
	ViewScanning ViewState = iota
	ViewFileBrowser
	ViewConfirmation
	ViewCleaning
	ViewSummary
	ViewError
	ViewHelp
)

// AppModel is the root model for the interactive TUI
type AppModel struct {
	state         ViewState
	previousState ViewState

	session *session.Session
	dryRun  bool

	scanView    *ScanViewModel
	browserView *BrowserViewModel
	confirmView *ConfirmViewModel
	cleanupView *CleanupViewModel
	summaryView *SummaryViewModel

	width  int
	height int
	err    error
}

// NewAppModel creates a new app model
func NewAppModel(sess *session.Session, dryRun bool) *AppModel {
	return &AppModel{
		state:   ViewScanning,
		session: sess,
		dryRun:  dryRun,
	}
}

// State returns the active view
func (m *AppModel) State() ViewState {
	return m.state
}

// Init initializes the model
func (m *AppModel) Init() tea.Cmd {
	return m.startScan()
}

func (m *AppModel) startScan() tea.Cmd {
	m.state = ViewScanning
	m.err = nil
	m.scanView = NewScanViewModel(m.session, m.width)
	return m.scanView.Init()
}

// Update handles messages
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.state == ViewHelp {
			m.state = m.previousState
			return m, nil
		}

		switch msg.String() {
		case "q":
			// Deletion runs to completion once started
			if m.state != ViewCleaning {
				return m, tea.Quit
			}
		case "?":
			if m.state != ViewCleaning && m.state != ViewScanning {
				m.previousState = m.state
				m.state = ViewHelp
				return m, nil
			}
		case "r":
			if m.state == ViewError {
				return m, m.startScan()
			}
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case ScanCompleteMsg:
		if msg.Err != nil {
			m.err = msg.Err
			m.state = ViewError
			return m, nil
		}
		m.browserView = NewBrowserViewModel(m.session, m.width, m.height)
		m.state = ViewFileBrowser
		return m, nil

	case RescanMsg:
		return m, m.startScan()

	case DeleteRequestedMsg:
		count, size := m.session.Stats()
		m.confirmView = NewConfirmViewModel(count, size, m.dryRun, m.width, m.height)
		m.state = ViewConfirmation
		return m, nil

	case CancelledMsg:
		m.state = ViewFileBrowser
		return m, nil

	case ConfirmedMsg:
		count, _ := m.session.Stats()
		m.cleanupView = NewCleanupViewModel(m.session, count, m.width)
		m.state = ViewCleaning
		return m, m.cleanupView.Init()

	case DeleteCompleteMsg:
		if msg.Err != nil {
			if errors.Is(msg.Err, session.ErrNoScan) {
				m.state = ViewFileBrowser
				return m, nil
			}
			m.err = msg.Err
			m.state = ViewError
			return m, nil
		}
		// The session is empty now; rebuild the table for when the user returns
		m.browserView = NewBrowserViewModel(m.session, m.width, m.height)
		m.summaryView = NewSummaryViewModel(msg.Result)
		m.state = ViewSummary
		return m, nil

	case BackToBrowserMsg:
		m.state = ViewFileBrowser
		return m, nil
	}

	return m.delegateUpdate(msg)
}

// delegateUpdate delegates the update to the current view
func (m *AppModel) delegateUpdate(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch m.state {
	case ViewScanning:
		if m.scanView != nil {
			m.scanView, cmd = m.scanView.Update(msg)
		}
	case ViewFileBrowser:
		if m.browserView != nil {
			m.browserView, cmd = m.browserView.Update(msg)
		}
	case ViewConfirmation:
		if m.confirmView != nil {
			m.confirmView, cmd = m.confirmView.Update(msg)
		}
	case ViewCleaning:
		if m.cleanupView != nil {
			m.cleanupView, cmd = m.cleanupView.Update(msg)
		}
	case ViewSummary:
		if m.summaryView != nil {
			m.summaryView, cmd = m.summaryView.Update(msg)
		}
	}

	return m, cmd
}

// View renders the current view
func (m *AppModel) View() string {
	switch m.state {
	case ViewScanning:
		if m.scanView != nil {
			return m.scanView.View()
		}
	case ViewFileBrowser:
		if m.browserView != nil {
			return m.browserView.View()
		}
	case ViewConfirmation:
		if m.confirmView != nil {
			return m.confirmView.View()
		}
	case ViewCleaning:
		if m.cleanupView != nil {
			return m.cleanupView.View()
		}
	case ViewSummary:
		if m.summaryView != nil {
			return m.summaryView.View()
		}
	case ViewError:
		return m.renderError()
	case ViewHelp:
		return m.renderHelp()
	}

	return "Loading..."
}

func (m *AppModel) renderError() string {
	var b strings.Builder
	b.WriteString(styles.ErrorStyle.Render("✗ Error"))
	b.WriteString("\n\n")
	if m.err != nil {
		b.WriteString(m.err.Error())
	}
	b.WriteString("\n\n")
	b.WriteString(styles.HelpStyle.Render("r: retry  q: quit"))
	return b.String()
}

// renderHelp renders the help view with context-aware content
func (m *AppModel) renderHelp() string {
	var viewName, helpContent string

	switch m.previousState {
	case ViewFileBrowser:
		viewName = "File Browser"
		helpContent = helpForBrowser
	case ViewConfirmation:
		viewName = "Confirmation"
		helpContent = helpForConfirm
	case ViewSummary:
		viewName = "Summary"
		helpContent = helpForSummary
	default:
		viewName = "General"
		helpContent = helpForGeneral
	}

	var b strings.Builder
	b.WriteString(styles.TitleStyle.Render(fmt.Sprintf("Help - %s", viewName)))
	b.WriteString("\n\n")
	b.WriteString(helpContent)
	b.WriteString("\n\n")
	b.WriteString(styles.HelpStyle.Render("Press any key to close"))

	return b.String()
}

const helpForBrowser = `Every file in the temp directory, with size and creation date.

Navigation               Sorting
  ↑/k     Move up          n       By name
  ↓/j     Move down        s       By size
  g       Top              d       By date created
  G       Bottom           (press again to reverse)

Actions
  x/del   Delete all listed files
  r       Rescan
  i       File details
  q       Quit`

const helpForConfirm = `Review and confirm the deletion.

Actions:
  y       - Yes, delete
  n/esc   - No, back to the list
  ←/→     - Choose a button
  enter   - Select

Warning: Deleted files cannot be recovered!`

const helpForSummary = `Deletion finished. Files that could not be removed are listed
with the reason.

Actions:
  enter   - Back to the (now empty) list
  r       - Rescan
  q       - Exit application`

const helpForGeneral = `cleantemp - Interactive Mode Help

Global Shortcuts:
  ?       - Toggle this help
  q       - Quit
  ctrl+c  - Force quit`
