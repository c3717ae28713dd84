package models

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fenilsonani/cleantemp/internal/cleaner"
	"github.com/fenilsonani/cleantemp/internal/scanner"
)

// ScanCompleteMsg carries the outcome of a scan. Err is set when the temp
// directory itself could not be scanned.
type ScanCompleteMsg struct {
	Result *scanner.ScanResult
	Err    error
}

// RescanMsg asks for a fresh scan
type RescanMsg struct{}

// DeleteRequestedMsg is sent by the browser when the user asks to delete
type DeleteRequestedMsg struct{}

// ConfirmedMsg is sent when the user confirms deletion
type ConfirmedMsg struct{}

// CancelledMsg is sent when the user declines deletion
type CancelledMsg struct{}

// CleanProgressMsg reports one more snapshot path handled
type CleanProgressMsg struct {
	Progress cleaner.Progress
}

// DeleteCompleteMsg carries the outcome of a delete
type DeleteCompleteMsg struct {
	Result *cleaner.DeleteResult
	Err    error
}

// BackToBrowserMsg returns from the summary to the file table
type BackToBrowserMsg struct{}

func send(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
