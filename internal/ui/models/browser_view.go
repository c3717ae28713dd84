package models

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fenilsonani/cleantemp/internal/reporter"
	"github.com/fenilsonani/cleantemp/internal/scanner"
	"github.com/fenilsonani/cleantemp/internal/session"
	"github.com/fenilsonani/cleantemp/internal/ui/components"
	"github.com/fenilsonani/cleantemp/internal/ui/styles"
	uiutils "github.com/fenilsonani/cleantemp/internal/ui/utils"
	"github.com/fenilsonani/cleantemp/pkg/utils"
)

const (
	nameColumnWidth = scanner.MaxDisplayName + 2
	sizeColumnWidth = 12
	dateColumnWidth = len(reporter.DateLayout) + 2
)

// BrowserViewModel shows the scanned files in a sortable table
type BrowserViewModel struct {
	session   *session.Session
	table     table.Model
	statusBar *components.StatusBar
	info      *components.InfoPanel
	warning   string
	width     int
	height    int
}

// NewBrowserViewModel creates a new browser view model
func NewBrowserViewModel(sess *session.Session, width, height int) *BrowserViewModel {
	t := table.New(
		table.WithFocused(true),
		table.WithHeight(uiutils.TableHeight(height)),
		table.WithStyles(styles.TableStyles()),
	)

	m := &BrowserViewModel{
		session: sess,
		table:   t,
		statusBar: components.NewStatusBar(
			components.Shortcut{Key: "n/s/d", Desc: "sort"},
			components.Shortcut{Key: "x", Desc: "delete"},
			components.Shortcut{Key: "r", Desc: "rescan"},
			components.Shortcut{Key: "i", Desc: "info"},
			components.Shortcut{Key: "q", Desc: "quit"},
		),
		width:  width,
		height: height,
	}
	m.refresh()
	return m
}

// Init initializes the browser view
func (m *BrowserViewModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m *BrowserViewModel) Update(msg tea.Msg) (*BrowserViewModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(uiutils.TableHeight(msg.Height))
		return m, nil

	case tea.KeyMsg:
		if m.info != nil && m.info.IsVisible() {
			switch msg.String() {
			case "i", "esc":
				m.info = nil
			}
			return m, nil
		}

		m.warning = ""
		switch msg.String() {
		case "n":
			m.sortBy(scanner.ByName)
			return m, nil
		case "s":
			m.sortBy(scanner.BySize)
			return m, nil
		case "d":
			m.sortBy(scanner.ByDate)
			return m, nil
		case "r":
			return m, send(RescanMsg{})
		case "x", "delete":
			if !m.session.HasResults() {
				m.warning = "Nothing to delete. Press r to scan the temp directory first."
				return m, nil
			}
			return m, send(DeleteRequestedMsg{})
		case "i":
			m.showInfo()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the browser view
func (m *BrowserViewModel) View() string {
	var b strings.Builder

	b.WriteString(uiutils.GetSizeWarningBanner(m.width, m.height))
	b.WriteString(styles.TitleStyle.Render("🗂  Temp Files"))
	b.WriteString("\n")
	b.WriteString(styles.SubtitleStyle.Render(m.session.Root))
	b.WriteString("\n\n")

	if m.info != nil && m.info.IsVisible() {
		b.WriteString(m.info.Render())
		return b.String()
	}

	b.WriteString(m.table.View())
	b.WriteString("\n")

	switch {
	case m.session.Result == nil:
		b.WriteString(styles.DimStyle.Render("No scan results. Press r to scan."))
		b.WriteString("\n")
	case len(m.session.Result.Records) == 0:
		b.WriteString(styles.DimStyle.Render("No files found"))
		b.WriteString("\n")
	}

	if m.warning != "" {
		b.WriteString(styles.WarningStyle.Render("⚠ " + m.warning))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.statusBar.Render(m.width))

	return b.String()
}

func (m *BrowserViewModel) sortBy(key scanner.SortKey) {
	m.session.SortBy(key)
	m.refresh()
	m.table.GotoTop()
}

func (m *BrowserViewModel) showInfo() {
	if m.session.Result == nil {
		return
	}
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.session.Result.Records) {
		return
	}
	m.info = components.FileInfoPanel(m.session.Result.Records[cursor], time.Now(), m.width)
	m.info.SetVisible(true)
}

// refresh rebuilds the columns and rows from the session
func (m *BrowserViewModel) refresh() {
	m.table.SetColumns(m.columns())
	m.table.SetRows(m.rows())

	count, size := m.session.Stats()
	m.statusBar.SetTotals(count, size)
	m.statusBar.SetSort("sorted by " + m.session.Sort.Key.String() + " " + m.session.Sort.Arrow())
}

func (m *BrowserViewModel) columns() []table.Column {
	titles := []struct {
		key   scanner.SortKey
		title string
		width int
	}{
		{scanner.ByName, "Temp File", nameColumnWidth},
		{scanner.BySize, "Size", sizeColumnWidth},
		{scanner.ByDate, "Date Created", dateColumnWidth},
	}

	cols := make([]table.Column, 0, len(titles))
	for _, c := range titles {
		title := c.title
		if c.key == m.session.Sort.Key {
			title += " " + m.session.Sort.Arrow()
		}
		cols = append(cols, table.Column{Title: title, Width: c.width})
	}
	return cols
}

func (m *BrowserViewModel) rows() []table.Row {
	if m.session.Result == nil {
		return []table.Row{}
	}

	rows := make([]table.Row, 0, len(m.session.Result.Records))
	for _, rec := range m.session.Result.Records {
		rows = append(rows, table.Row{
			rec.DisplayName,
			utils.FormatSize(rec.Size),
			rec.CreatedAt.Format(reporter.DateLayout),
		})
	}
	return rows
}
