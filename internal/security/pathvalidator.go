package security

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// PathValidator handles secure path validation for file operations
type PathValidator struct {
	protectedPaths []string
}

// NewPathValidator creates a new PathValidator with default protected paths
func NewPathValidator() *PathValidator {
	return &PathValidator{
		protectedPaths: []string{
			// Unix system directories
			"/",
			"/bin",
			"/boot",
			"/dev",
			"/etc",
			"/lib",
			"/lib64",
			"/proc",
			"/root",
			"/sbin",
			"/sys",
			"/usr",
			"/var",
			// macOS system directories
			"/System",
			"/Applications",
			"/Library/System",
			// Windows system directories
			`C:\`,
			`C:\Windows`,
			`C:\Windows\System32`,
			`C:\Program Files`,
			`C:\Program Files (x86)`,
		},
	}
}

// ValidatePathForDeletion checks a snapshot path before it is removed. The
// path must be absolute and already clean, and neither it nor its resolved
// location may be a protected system path or sit directly inside one.
func (pv *PathValidator) ValidatePathForDeletion(path string) error {
	if path == "" {
		return fmt.Errorf("path is empty")
	}

	if strings.ContainsRune(path, 0) {
		return fmt.Errorf("path contains a null byte: %q", path)
	}

	if !filepath.IsAbs(path) {
		return fmt.Errorf("path must be absolute: %s", path)
	}

	if filepath.Clean(path) != path {
		return fmt.Errorf("path contains suspicious elements: %s", path)
	}

	if err := pv.checkProtectedPaths(path); err != nil {
		return err
	}

	// Resolve the parent so a directory swapped for a symlink after the scan
	// cannot redirect the delete into a protected location.
	parent, err := filepath.EvalSymlinks(filepath.Dir(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to resolve symlinks: %w", err)
	}

	return pv.checkProtectedPaths(filepath.Join(parent, filepath.Base(path)))
}

// checkProtectedPaths validates that a path is not in a protected system directory
func (pv *PathValidator) checkProtectedPaths(cleanPath string) error {
	if pv.IsProtectedPath(cleanPath) {
		return fmt.Errorf("refusing to delete protected path: %s", cleanPath)
	}

	for _, protected := range pv.protectedPaths {
		// Only one level deep is refused: /usr/foo but not /usr/local/cache/foo
		rel, err := filepath.Rel(protected, cleanPath)
		if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
			continue
		}
		if !strings.ContainsRune(rel, filepath.Separator) {
			return fmt.Errorf("refusing to delete critical system path: %s", cleanPath)
		}
	}

	return nil
}

// IsProtectedPath checks if a path is a protected system path
func (pv *PathValidator) IsProtectedPath(path string) bool {
	cleanPath := filepath.Clean(path)
	for _, protected := range pv.protectedPaths {
		if samePath(cleanPath, protected) {
			return true
		}
	}
	return false
}

// AddProtectedPath adds a custom protected path
func (pv *PathValidator) AddProtectedPath(path string) {
	pv.protectedPaths = append(pv.protectedPaths, filepath.Clean(path))
}

func samePath(a, b string) bool {
	if filepath.Separator == '\\' {
		return strings.EqualFold(a, b)
	}
	return a == b
}
