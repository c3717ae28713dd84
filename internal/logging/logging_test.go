package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNewWritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "cleantemp.log")

	logger, err := New("debug", path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Debug("scan finished")
	_ = logger.Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("log file not written: %v", err)
	}
	if !strings.Contains(string(data), "scan finished") {
		t.Errorf("log file missing entry: %q", data)
	}
}

func TestNewFilePathIsNotAURL(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"run#1", "50%"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name, "cleantemp.log")

			logger, err := New("info", path)
			if err != nil {
				t.Fatalf("New(%q) failed: %v", path, err)
			}
			logger.Info("delete complete")
			_ = logger.Sync()

			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("log file not written: %v", err)
			}
			if !strings.Contains(string(data), "delete complete") {
				t.Errorf("log file missing entry: %q", data)
			}
		})
	}
}

func TestNewAppendsToExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cleantemp.log")
	if err := os.WriteFile(path, []byte("earlier run\n"), 0644); err != nil {
		t.Fatal(err)
	}

	logger, err := New("info", path)
	if err != nil {
		t.Fatal(err)
	}
	logger.Info("later run")
	_ = logger.Sync()

	data, _ := os.ReadFile(path)
	if !strings.HasPrefix(string(data), "earlier run") || !strings.Contains(string(data), "later run") {
		t.Errorf("log file was not appended to: %q", data)
	}
}

func TestNewRespectsLevel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cleantemp.log")

	logger, err := New("warn", path)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	logger.Info("hidden")
	logger.Warn("shown")
	_ = logger.Sync()

	data, _ := os.ReadFile(path)
	if strings.Contains(string(data), "hidden") {
		t.Error("info entry written at warn level")
	}
	if !strings.Contains(string(data), "shown") {
		t.Error("warn entry missing")
	}
}

func TestNewInvalidLevel(t *testing.T) {
	if _, err := New("loud", ""); err == nil {
		t.Error("expected error for invalid level")
	}
}

func TestOrNop(t *testing.T) {
	if OrNop(nil) == nil {
		t.Fatal("OrNop(nil) returned nil")
	}
	l := Nop()
	if OrNop(l) != l {
		t.Error("OrNop should return the given logger")
	}
}
