package utils

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/fenilsonani/cleantemp/internal/ui/styles"
)

const (
	// MinTerminalWidth is the minimum recommended terminal width
	MinTerminalWidth = 80
	// MinTerminalHeight is the minimum recommended terminal height
	MinTerminalHeight = 24
)

// TruncatePath shortens a path to maxWidth by dropping leading directories,
// always keeping the file name.
func TruncatePath(path string, maxWidth int) string {
	if len([]rune(path)) <= maxWidth {
		return path
	}
	if maxWidth < 10 {
		return "..."
	}

	file := filepath.Base(path)
	if len([]rune(file))+4 > maxWidth {
		runes := []rune(file)
		return "..." + string(runes[len(runes)-(maxWidth-3):])
	}

	parts := strings.Split(filepath.Dir(path), string(filepath.Separator))
	tail := file
	for i := len(parts) - 1; i >= 0; i-- {
		candidate := parts[i] + string(filepath.Separator) + tail
		if len([]rune(candidate))+4 > maxWidth {
			break
		}
		tail = candidate
	}
	return "..." + string(filepath.Separator) + tail
}

// TableHeight returns how many table rows fit given the terminal height and
// the lines used by the title, footer and help.
func TableHeight(terminalHeight int) int {
	const reservedLines = 9

	height := terminalHeight - reservedLines
	if height < 5 {
		height = 5
	}
	return height
}

// IsTerminalTooSmall checks if the terminal is below minimum recommended size
func IsTerminalTooSmall(width, height int) bool {
	return width < MinTerminalWidth || height < MinTerminalHeight
}

// GetSizeWarningBanner returns a warning banner if terminal is too small
func GetSizeWarningBanner(width, height int) string {
	if width == 0 && height == 0 {
		// No WindowSizeMsg yet
		return ""
	}
	if !IsTerminalTooSmall(width, height) {
		return ""
	}

	warning := "⚠️  Terminal too small! Recommended: 80x24 or larger"
	warning += styles.DimStyle.Render(" (current: ") +
		styles.WarningStyle.Render(fmt.Sprintf("%dx%d", width, height)) +
		styles.DimStyle.Render(")")

	return styles.WarningStyle.Render(warning) + "\n\n"
}
