package cleaner

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"
	"syscall"
)

// ErrorReason categorizes why a deletion failed
type ErrorReason int

const (
	ErrorPermissionDenied ErrorReason = iota
	ErrorFileInUse
	ErrorFileNotFound
	ErrorIsDirectory
	ErrorInvalidPath
	ErrorUnknown
)

// String returns a human-readable error reason
func (e ErrorReason) String() string {
	switch e {
	case ErrorPermissionDenied:
		return "Permission denied"
	case ErrorFileInUse:
		return "File is in use"
	case ErrorFileNotFound:
		return "File not found"
	case ErrorIsDirectory:
		return "Is a directory"
	case ErrorInvalidPath:
		return "Invalid path"
	case ErrorUnknown:
		return "Unknown error"
	default:
		return "Unspecified error"
	}
}

// MarshalText encodes the reason by name in json and yaml reports
func (e ErrorReason) MarshalText() ([]byte, error) {
	return []byte(e.String()), nil
}

// DeletionError represents a detailed deletion error
type DeletionError struct {
	Path     string
	Reason   ErrorReason
	Original error
}

// Error implements the error interface
func (e *DeletionError) Error() string {
	return fmt.Sprintf("%s: %s (%v)", e.Path, e.Reason, e.Original)
}

func (e *DeletionError) Unwrap() error {
	return e.Original
}

// CategorizeError analyzes an error and returns a categorized DeletionError
func CategorizeError(path string, err error) *DeletionError {
	if err == nil {
		return nil
	}

	delErr := &DeletionError{
		Path:     path,
		Original: err,
		Reason:   ErrorUnknown,
	}

	switch {
	case errors.Is(err, fs.ErrNotExist):
		delErr.Reason = ErrorFileNotFound
		return delErr
	case errors.Is(err, fs.ErrPermission):
		delErr.Reason = ErrorPermissionDenied
		return delErr
	}

	var errno syscall.Errno
	if errors.As(err, &errno) {
		switch {
		case isBusyErrno(errno):
			delErr.Reason = ErrorFileInUse
		case isDirErrno(errno):
			delErr.Reason = ErrorIsDirectory
		}
	}

	return delErr
}

// Failure is one snapshot entry that could not be removed
type Failure struct {
	Path    string      `json:"path" yaml:"path"`
	Label   string      `json:"label" yaml:"label"`
	Message string      `json:"message" yaml:"message"`
	Reason  ErrorReason `json:"reason" yaml:"reason"`
}

// String renders the failure the way the summary lists it
func (f Failure) String() string {
	return f.Label + ": " + f.Message
}

// MaxLabel is the longest base name used in a failure label.
const MaxLabel = 30

// FailureLabel shortens the base name of path for display.
func FailureLabel(path string) string {
	runes := []rune(filepath.Base(path))
	if len(runes) <= MaxLabel {
		return string(runes)
	}
	return string(runes[:MaxLabel]) + "..."
}

func newFailure(delErr *DeletionError) Failure {
	return Failure{
		Path:    delErr.Path,
		Label:   FailureLabel(delErr.Path),
		Message: delErr.Original.Error(),
		Reason:  delErr.Reason,
	}
}

// GroupFailures groups failures by reason
func GroupFailures(failures []Failure) map[ErrorReason][]Failure {
	grouped := make(map[ErrorReason][]Failure)
	for _, f := range failures {
		grouped[f.Reason] = append(grouped[f.Reason], f)
	}
	return grouped
}

// FormatErrorSummary creates a user-friendly summary of failures
func FormatErrorSummary(failures []Failure) string {
	if len(failures) == 0 {
		return ""
	}

	grouped := GroupFailures(failures)
	var b strings.Builder
	b.WriteString("\nIssues encountered:\n")

	if perms, ok := grouped[ErrorPermissionDenied]; ok {
		fmt.Fprintf(&b, "   ├─ Permission denied: %d files\n", len(perms))
	}

	if busy, ok := grouped[ErrorFileInUse]; ok {
		fmt.Fprintf(&b, "   ├─ File in use: %d files\n", len(busy))
		b.WriteString("   │  └─ Tip: Close applications and retry\n")
	}

	if notFiles, ok := grouped[ErrorIsDirectory]; ok {
		fmt.Fprintf(&b, "   ├─ Not regular files: %d items\n", len(notFiles))
	}

	if invalid, ok := grouped[ErrorInvalidPath]; ok {
		fmt.Fprintf(&b, "   ├─ Unsafe paths refused: %d files\n", len(invalid))
	}

	var other int
	for reason, group := range grouped {
		switch reason {
		case ErrorPermissionDenied, ErrorFileInUse, ErrorIsDirectory, ErrorInvalidPath:
		default:
			other += len(group)
		}
	}
	if other > 0 {
		fmt.Fprintf(&b, "   └─ Other errors: %d files\n", other)
	}

	return b.String()
}
