package scanner

import (
	"errors"
	"fmt"
	"time"
)

// FileRecord represents one temp file found during scanning
type FileRecord struct {
	Path        string    `json:"path" yaml:"path"`
	DisplayName string    `json:"display_name" yaml:"display_name"`
	Size        int64     `json:"size" yaml:"size"`
	CreatedAt   time.Time `json:"created_at" yaml:"created_at"`
}

// ScanResult represents the result of a scan operation
type ScanResult struct {
	Root       string       `json:"root" yaml:"root"`
	Records    []FileRecord `json:"records" yaml:"records"`
	TotalCount int          `json:"total_count" yaml:"total_count"`
	TotalSize  int64        `json:"total_size" yaml:"total_size"`
	Skipped    int          `json:"skipped" yaml:"skipped"` // files that could not be stat'd
}

// Recount recomputes TotalCount and TotalSize from Records.
func (r *ScanResult) Recount() {
	r.TotalCount = len(r.Records)
	r.TotalSize = 0
	for _, rec := range r.Records {
		r.TotalSize += rec.Size
	}
}

// Paths returns the delete snapshot: the record paths in their current order.
func (r *ScanResult) Paths() []string {
	paths := make([]string, len(r.Records))
	for i, rec := range r.Records {
		paths[i] = rec.Path
	}
	return paths
}

// Oldest returns the record with the earliest CreatedAt.
func (r *ScanResult) Oldest() (FileRecord, bool) {
	if len(r.Records) == 0 {
		return FileRecord{}, false
	}
	oldest := r.Records[0]
	for _, rec := range r.Records[1:] {
		if rec.CreatedAt.Before(oldest.CreatedAt) {
			oldest = rec
		}
	}
	return oldest, true
}

// Outcome is the per-entry decision made while walking the tree
type Outcome int

const (
	Included Outcome = iota
	SkippedInaccessible
	NotRegular
)

// String returns a human-readable outcome
func (o Outcome) String() string {
	switch o {
	case Included:
		return "included"
	case SkippedInaccessible:
		return "skipped (inaccessible)"
	case NotRegular:
		return "not a regular file"
	default:
		return "unknown"
	}
}

// ErrNotDirectory is wrapped by ScanError when the root is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// ScanError reports that the scan root itself could not be walked. No
// partial result accompanies it.
type ScanError struct {
	Root string
	Err  error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("cannot scan %s: %v", e.Root, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}
