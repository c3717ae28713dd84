package cleaner

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/fenilsonani/cleantemp/internal/config"
	"github.com/fenilsonani/cleantemp/internal/logging"
	"github.com/fenilsonani/cleantemp/internal/security"
	"go.uber.org/zap"
)

// ErrEmptySnapshot is returned when DeleteAll is called with nothing to delete.
var ErrEmptySnapshot = errors.New("nothing to delete: scan first")

// FileSystem is the filesystem surface the cleaner needs
type FileSystem interface {
	Lstat(name string) (os.FileInfo, error)
	Remove(name string) error
}

type osFS struct{}

func (osFS) Lstat(name string) (os.FileInfo, error) { return os.Lstat(name) }
func (osFS) Remove(name string) error               { return os.Remove(name) }

// DeleteResult represents the result of a delete operation
type DeleteResult struct {
	Attempted    int       `json:"attempted" yaml:"attempted"`
	DeletedCount int       `json:"deleted_count" yaml:"deleted_count"`
	FreedBytes   int64     `json:"freed_bytes" yaml:"freed_bytes"`
	Failures     []Failure `json:"failures" yaml:"failures"`
	Missing      int       `json:"missing" yaml:"missing"`
	DryRun       bool      `json:"dry_run" yaml:"dry_run"`
}

// Progress is reported after each snapshot path has been handled
type Progress struct {
	Done       int
	Total      int
	Path       string
	FreedBytes int64
}

// ProgressFunc receives Progress on the goroutine running the delete
type ProgressFunc func(Progress)

// Cleaner deletes snapshot paths one by one, best effort
type Cleaner struct {
	fs        FileSystem
	validator *security.PathValidator
	logger    *zap.Logger
	dryRun    bool
}

// New creates a new Cleaner. A nil config means a real (non dry-run) delete.
func New(cfg *config.Config, logger *zap.Logger) *Cleaner {
	c := &Cleaner{
		fs:        osFS{},
		validator: security.NewPathValidator(),
		logger:    logging.OrNop(logger),
	}
	if cfg != nil {
		c.dryRun = cfg.DryRun
		for _, path := range cfg.ProtectedPaths {
			c.validator.AddProtectedPath(path)
		}
	}
	return c
}

// SetFileSystem replaces the filesystem used for Lstat and Remove
func (c *Cleaner) SetFileSystem(fsys FileSystem) {
	if fsys == nil {
		fsys = osFS{}
	}
	c.fs = fsys
}

// SetDryRun toggles dry-run mode
func (c *Cleaner) SetDryRun(dryRun bool) {
	c.dryRun = dryRun
}

// DryRun reports whether removals are skipped
func (c *Cleaner) DryRun() bool {
	return c.dryRun
}

// DeleteAll attempts to remove every path exactly once, in order. Paths that
// are already gone count as Missing, not as failures. A failure never stops
// the remaining deletions.
func (c *Cleaner) DeleteAll(paths []string) (*DeleteResult, error) {
	return c.DeleteAllWithProgress(paths, nil)
}

// DeleteAllWithProgress is DeleteAll calling onProgress after every path.
// A nil onProgress reports nothing.
func (c *Cleaner) DeleteAllWithProgress(paths []string, onProgress ProgressFunc) (*DeleteResult, error) {
	if len(paths) == 0 {
		return nil, ErrEmptySnapshot
	}

	startTime := time.Now()
	result := &DeleteResult{
		Attempted: len(paths),
		Failures:  []Failure{},
		DryRun:    c.dryRun,
	}

	for i, path := range paths {
		c.deleteOne(path, result)
		if onProgress != nil {
			onProgress(Progress{
				Done:       i + 1,
				Total:      len(paths),
				Path:       path,
				FreedBytes: result.FreedBytes,
			})
		}
	}

	c.logger.Debug("delete complete",
		zap.Int("attempted", result.Attempted),
		zap.Int("deleted", result.DeletedCount),
		zap.Int64("freed", result.FreedBytes),
		zap.Int("missing", result.Missing),
		zap.Int("failed", len(result.Failures)),
		zap.Bool("dry_run", result.DryRun),
		zap.Duration("duration", time.Since(startTime)),
	)

	return result, nil
}

func (c *Cleaner) deleteOne(path string, result *DeleteResult) {
	info, err := c.fs.Lstat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			c.logger.Debug("already gone", zap.String("path", path))
			result.Missing++
			return
		}
		c.fail(result, CategorizeError(path, err))
		return
	}

	if err := c.validator.ValidatePathForDeletion(path); err != nil {
		c.fail(result, &DeletionError{Path: path, Reason: ErrorInvalidPath, Original: err})
		return
	}

	if !info.Mode().IsRegular() {
		c.fail(result, &DeletionError{
			Path:     path,
			Reason:   ErrorInvalidPath,
			Original: fmt.Errorf("not a regular file (%s)", info.Mode().Type()),
		})
		return
	}

	if c.dryRun {
		c.logger.Debug("would delete", zap.String("path", path), zap.Int64("size", info.Size()))
		result.DeletedCount++
		result.FreedBytes += info.Size()
		return
	}

	if err := c.fs.Remove(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			result.Missing++
			return
		}
		c.fail(result, CategorizeError(path, err))
		return
	}

	result.DeletedCount++
	result.FreedBytes += info.Size()
}

func (c *Cleaner) fail(result *DeleteResult, delErr *DeletionError) {
	c.logger.Info("delete failed",
		zap.String("path", delErr.Path),
		zap.Stringer("reason", delErr.Reason),
		zap.Error(delErr.Original),
	)
	result.Failures = append(result.Failures, newFailure(delErr))
}
