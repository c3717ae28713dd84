package scanner

import (
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/fenilsonani/cleantemp/internal/logging"
	"go.uber.org/zap"
)

// Scanner walks a directory tree and inventories its regular files. It holds
// no state between scans.
type Scanner struct {
	logger *zap.Logger
	lstat  func(string) (os.FileInfo, error)
}

// New creates a new Scanner
func New(logger *zap.Logger) *Scanner {
	return &Scanner{
		logger: logging.OrNop(logger),
		lstat:  os.Lstat,
	}
}

// Scan recursively inventories every regular file under root. Files that
// cannot be stat'd are skipped and only counted in Skipped. If root itself
// is missing, unreadable or not a directory, a *ScanError is returned and
// no result.
func (s *Scanner) Scan(root string) (*ScanResult, error) {
	startTime := time.Now()

	resolved, err := resolveRoot(root)
	if err != nil {
		return nil, &ScanError{Root: root, Err: err}
	}

	result := &ScanResult{
		Root:    resolved,
		Records: []FileRecord{},
	}

	err = filepath.WalkDir(resolved, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == resolved {
				return err
			}
			// Unreadable subdirectory or entry that vanished mid-walk
			s.logger.Debug("skipping unreadable entry", zap.String("path", path), zap.Error(err))
			return nil
		}

		if d.IsDir() {
			return nil
		}

		record, outcome := s.inspect(path, d)
		switch outcome {
		case Included:
			result.Records = append(result.Records, record)
		case SkippedInaccessible:
			result.Skipped++
		}

		return nil
	})
	if err != nil {
		return nil, &ScanError{Root: root, Err: err}
	}

	result.Recount()

	s.logger.Info("scan complete",
		zap.String("root", resolved),
		zap.Int("files", result.TotalCount),
		zap.Int64("bytes", result.TotalSize),
		zap.Int("skipped", result.Skipped),
		zap.Duration("elapsed", time.Since(startTime)))

	return result, nil
}

// inspect decides what happens to a single walked entry.
func (s *Scanner) inspect(path string, d fs.DirEntry) (FileRecord, Outcome) {
	if !d.Type().IsRegular() {
		return FileRecord{}, NotRegular
	}

	info, err := s.lstat(path)
	if err != nil {
		s.logger.Debug("skipping inaccessible file", zap.String("path", path), zap.Error(err))
		return FileRecord{}, SkippedInaccessible
	}
	if !info.Mode().IsRegular() {
		return FileRecord{}, NotRegular
	}

	return FileRecord{
		Path:        path,
		DisplayName: DisplayName(filepath.Base(path)),
		Size:        info.Size(),
		CreatedAt:   createdAt(info),
	}, Included
}

// resolveRoot follows symlinks on the root (e.g. /tmp -> /private/tmp on
// macOS) and checks that it is a directory.
func resolveRoot(root string) (string, error) {
	info, err := os.Stat(root)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", ErrNotDirectory
	}

	resolved, err := filepath.EvalSymlinks(root)
	if err != nil {
		return "", err
	}
	return filepath.Abs(resolved)
}
