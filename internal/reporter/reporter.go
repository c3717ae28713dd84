package reporter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/fenilsonani/cleantemp/internal/cleaner"
	"github.com/fenilsonani/cleantemp/internal/scanner"
	"github.com/fenilsonani/cleantemp/pkg/utils"
	"gopkg.in/yaml.v3"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatTable   OutputFormat = "table"
	FormatJSON    OutputFormat = "json"
	FormatYAML    OutputFormat = "yaml"
	FormatSummary OutputFormat = "summary"
)

// DateLayout is how creation dates are printed
const DateLayout = "2006-01-02 15:04:05"

const (
	nameWidth  = 50
	sizeWidth  = 12
	tableWidth = nameWidth + sizeWidth + len(DateLayout) + 6
)

// ParseFormat validates a format name
func ParseFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON, FormatYAML, FormatSummary:
		return f, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", s)
	}
}

// Reporter handles report generation
type Reporter struct {
	writer io.Writer
	format OutputFormat
	header lipgloss.Style
	now    func() time.Time
}

// New creates a new Reporter
func New(writer io.Writer, format OutputFormat) *Reporter {
	renderer := lipgloss.NewRenderer(writer)
	return &Reporter{
		writer: writer,
		format: format,
		header: renderer.NewStyle().Bold(true),
		now:    time.Now,
	}
}

// Report generates a report from scan results
func (r *Reporter) Report(result *scanner.ScanResult) error {
	switch r.format {
	case FormatTable:
		return r.reportTable(result)
	case FormatJSON:
		return r.encodeJSON(newScanReport(result, r.now()))
	case FormatYAML:
		return r.encodeYAML(newScanReport(result, r.now()))
	case FormatSummary:
		return r.reportSummary(result)
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
}

// ReportDelete generates a report from a delete run. Table and summary share
// the same plain text layout.
func (r *Reporter) ReportDelete(result *cleaner.DeleteResult) error {
	switch r.format {
	case FormatTable, FormatSummary:
		return r.reportDeleteSummary(result)
	case FormatJSON:
		return r.encodeJSON(newDeleteReport(result, r.now()))
	case FormatYAML:
		return r.encodeYAML(newDeleteReport(result, r.now()))
	default:
		return fmt.Errorf("unsupported format: %s", r.format)
	}
}

// reportSummary generates a summary report
func (r *Reporter) reportSummary(result *scanner.ScanResult) error {
	fmt.Fprintln(r.writer, r.header.Render("=== Temp Files ==="))
	fmt.Fprintf(r.writer, "Directory: %s\n", result.Root)
	fmt.Fprintf(r.writer, "Files: %s\n", humanize.Comma(int64(result.TotalCount)))
	fmt.Fprintf(r.writer, "Total: %s\n", utils.FormatSize(result.TotalSize))

	if oldest, ok := result.Oldest(); ok {
		fmt.Fprintf(r.writer, "Oldest: %s (created %s)\n",
			oldest.DisplayName, humanize.RelTime(oldest.CreatedAt, r.now(), "ago", "from now"))
	}

	if result.Skipped > 0 {
		fmt.Fprintf(r.writer, "Skipped: %d (inaccessible)\n", result.Skipped)
	}

	return nil
}

// reportTable generates a table report
func (r *Reporter) reportTable(result *scanner.ScanResult) error {
	fmt.Fprintln(r.writer, r.header.Render(fmt.Sprintf("%s | %s | %s",
		padRight("Temp File", nameWidth), padRight("Size", sizeWidth), "Date Created")))
	fmt.Fprintln(r.writer, strings.Repeat("-", tableWidth))

	if len(result.Records) == 0 {
		fmt.Fprintln(r.writer, "No files found")
	}

	for _, rec := range result.Records {
		fmt.Fprintf(r.writer, "%s | %s | %s\n",
			padRight(rec.DisplayName, nameWidth),
			padRight(utils.FormatSize(rec.Size), sizeWidth),
			rec.CreatedAt.Format(DateLayout))
	}

	fmt.Fprintln(r.writer, strings.Repeat("-", tableWidth))
	fmt.Fprintf(r.writer, "Files: %d | Total: %s\n", result.TotalCount, utils.FormatSize(result.TotalSize))

	return nil
}

// padRight pads s with spaces to width terminal cells. Wide and combining
// characters are measured by display width, not bytes.
func padRight(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func (r *Reporter) reportDeleteSummary(result *cleaner.DeleteResult) error {
	title := "=== Cleanup Complete ==="
	verb, freed := "Deleted", "Freed"
	if result.DryRun {
		title = "=== Dry Run ==="
		verb, freed = "Would delete", "Would free"
	}

	fmt.Fprintln(r.writer, r.header.Render(title))
	fmt.Fprintf(r.writer, "%s: %d of %d files\n", verb, result.DeletedCount, result.Attempted)
	fmt.Fprintf(r.writer, "%s: %s\n", freed, utils.FormatSize(result.FreedBytes))

	if result.Missing > 0 {
		fmt.Fprintf(r.writer, "Already gone: %d\n", result.Missing)
	}

	if len(result.Failures) > 0 {
		fmt.Fprintf(r.writer, "Failed: %d\n", len(result.Failures))
		for _, f := range result.Failures {
			fmt.Fprintf(r.writer, "  %s\n", f)
		}
		fmt.Fprint(r.writer, cleaner.FormatErrorSummary(result.Failures))
	}

	return nil
}

type scanReport struct {
	Timestamp          string               `json:"timestamp" yaml:"timestamp"`
	Root               string               `json:"root" yaml:"root"`
	TotalFiles         int                  `json:"total_files" yaml:"total_files"`
	TotalSize          int64                `json:"total_size" yaml:"total_size"`
	TotalSizeFormatted string               `json:"total_size_formatted" yaml:"total_size_formatted"`
	Skipped            int                  `json:"skipped" yaml:"skipped"`
	Files              []scanner.FileRecord `json:"files" yaml:"files"`
}

func newScanReport(result *scanner.ScanResult, now time.Time) scanReport {
	files := result.Records
	if files == nil {
		files = []scanner.FileRecord{}
	}
	return scanReport{
		Timestamp:          now.Format(time.RFC3339),
		Root:               result.Root,
		TotalFiles:         result.TotalCount,
		TotalSize:          result.TotalSize,
		TotalSizeFormatted: utils.FormatSize(result.TotalSize),
		Skipped:            result.Skipped,
		Files:              files,
	}
}

type deleteReport struct {
	Timestamp            string `json:"timestamp" yaml:"timestamp"`
	FreedSizeFormatted   string `json:"freed_size_formatted" yaml:"freed_size_formatted"`
	cleaner.DeleteResult `yaml:",inline"`
}

func newDeleteReport(result *cleaner.DeleteResult, now time.Time) deleteReport {
	return deleteReport{
		Timestamp:          now.Format(time.RFC3339),
		FreedSizeFormatted: utils.FormatSize(result.FreedBytes),
		DeleteResult:       *result,
	}
}

func (r *Reporter) encodeJSON(v any) error {
	encoder := json.NewEncoder(r.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func (r *Reporter) encodeYAML(v any) error {
	encoder := yaml.NewEncoder(r.writer)
	encoder.SetIndent(2)
	defer encoder.Close()
	return encoder.Encode(v)
}

// SaveToFile saves the report to a file
func SaveToFile(result *scanner.ScanResult, path string, format OutputFormat) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create report file: %w", err)
	}
	defer file.Close()

	reporter := New(file, format)
	return reporter.Report(result)
}
