// Package testutil provides test helpers and fixtures for cleantemp tests.
// All file operations use t.TempDir() for safe, isolated testing.
package testutil

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// TestFixture holds paths to a fake temp directory tree
type TestFixture struct {
	T       *testing.T
	RootDir string // Root temp directory (auto-cleaned)
}

// NewFixture creates a new, empty test fixture
func NewFixture(t *testing.T) *TestFixture {
	t.Helper()

	root := t.TempDir()

	// Resolve so paths match what the scanner reports (e.g. /var -> /private/var)
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}

	return &TestFixture{
		T:       t,
		RootDir: root,
	}
}

// =============================================================================
// File Creation Helpers
// =============================================================================

// CreateFile creates a file with specified content and returns its path
func (f *TestFixture) CreateFile(relPath string, content []byte) string {
	f.T.Helper()

	fullPath := filepath.Join(f.RootDir, relPath)
	dir := filepath.Dir(fullPath)

	if err := os.MkdirAll(dir, 0755); err != nil {
		f.T.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.WriteFile(fullPath, content, 0644); err != nil {
		f.T.Fatalf("failed to create file %s: %v", fullPath, err)
	}

	return fullPath
}

// CreateSizedFile creates a zero-filled file of exactly size bytes
func (f *TestFixture) CreateSizedFile(relPath string, size int) string {
	f.T.Helper()
	return f.CreateFile(relPath, make([]byte, size))
}

// =============================================================================
// Directory Helpers
// =============================================================================

// CreateDir creates a directory and returns its path
func (f *TestFixture) CreateDir(relPath string) string {
	f.T.Helper()

	fullPath := filepath.Join(f.RootDir, relPath)
	if err := os.MkdirAll(fullPath, 0755); err != nil {
		f.T.Fatalf("failed to create directory %s: %v", fullPath, err)
	}

	return fullPath
}

// CreateSymlink creates a symbolic link
func (f *TestFixture) CreateSymlink(target, linkPath string) string {
	f.T.Helper()

	fullLinkPath := filepath.Join(f.RootDir, linkPath)
	dir := filepath.Dir(fullLinkPath)

	if err := os.MkdirAll(dir, 0755); err != nil {
		f.T.Fatalf("failed to create directory %s: %v", dir, err)
	}

	if err := os.Symlink(target, fullLinkPath); err != nil {
		f.T.Fatalf("failed to create symlink %s -> %s: %v", fullLinkPath, target, err)
	}

	return fullLinkPath
}

// =============================================================================
// Permission Helpers
// =============================================================================

// CreateReadOnlyDir creates a read-only directory holding one file, which
// therefore cannot be deleted. Returns the directory and the trapped file.
func (f *TestFixture) CreateReadOnlyDir(relPath string) (string, string) {
	f.T.Helper()

	dirPath := f.CreateDir(relPath)
	trapped := f.CreateFile(filepath.Join(relPath, "trapped.txt"), []byte("trapped"))
	if err := os.Chmod(dirPath, 0555); err != nil {
		f.T.Fatalf("failed to chmod directory %s: %v", dirPath, err)
	}

	// Restore permissions so TempDir cleanup works
	f.T.Cleanup(func() {
		os.Chmod(dirPath, 0755)
	})

	return dirPath, trapped
}

// CreateUnreadableDir creates a directory with no permissions holding one
// file, so its contents cannot be listed.
func (f *TestFixture) CreateUnreadableDir(relPath string) string {
	f.T.Helper()

	dirPath := f.CreateDir(relPath)
	f.CreateFile(filepath.Join(relPath, "hidden.txt"), []byte("hidden"))
	if err := os.Chmod(dirPath, 0000); err != nil {
		f.T.Fatalf("failed to chmod directory %s: %v", dirPath, err)
	}

	f.T.Cleanup(func() {
		os.Chmod(dirPath, 0755)
	})

	return dirPath
}

// =============================================================================
// Path Helpers
// =============================================================================

// Path returns the full path for a relative path within the fixture
func (f *TestFixture) Path(relPath string) string {
	return filepath.Join(f.RootDir, relPath)
}

// =============================================================================
// Assertion Helpers
// =============================================================================

// FileExists checks if a file exists
func (f *TestFixture) FileExists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// AssertFileExists fails the test if the file doesn't exist
func (f *TestFixture) AssertFileExists(path string) {
	f.T.Helper()
	if !f.FileExists(path) {
		f.T.Errorf("expected file to exist: %s", path)
	}
}

// AssertFileNotExists fails the test if the file exists
func (f *TestFixture) AssertFileNotExists(path string) {
	f.T.Helper()
	if f.FileExists(path) {
		f.T.Errorf("expected file to not exist: %s", path)
	}
}

// =============================================================================
// Environment Helpers
// =============================================================================

// IsRoot returns true if running as root/admin
func IsRoot() bool {
	return os.Geteuid() == 0
}

// SkipIfRoot skips the test if running as root
func SkipIfRoot(t *testing.T) {
	t.Helper()
	if IsRoot() {
		t.Skip("skipping test when running as root")
	}
}

// SkipOnWindows skips tests that rely on unix permission bits or symlinks
func SkipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("skipping test on windows")
	}
}
