// Package session holds the state the interactive front end owns between
// user actions: the current scan result and the active sort.
package session

import (
	"errors"

	"github.com/fenilsonani/cleantemp/internal/cleaner"
	"github.com/fenilsonani/cleantemp/internal/logging"
	"github.com/fenilsonani/cleantemp/internal/scanner"
	"go.uber.org/zap"
)

// ErrNoScan is returned by Delete when there is nothing scanned to delete.
var ErrNoScan = errors.New("no scan results: scan the temp directory first")

// Scanner produces a fresh inventory of root
type Scanner interface {
	Scan(root string) (*scanner.ScanResult, error)
}

// Deleter removes a snapshot of paths
type Deleter interface {
	DeleteAll(paths []string) (*cleaner.DeleteResult, error)
}

// ProgressDeleter is a Deleter that can report each path as it is handled
type ProgressDeleter interface {
	Deleter
	DeleteAllWithProgress(paths []string, onProgress cleaner.ProgressFunc) (*cleaner.DeleteResult, error)
}

// Session is the controller between the engine and a front end. It is not
// safe for concurrent use; the front end serializes calls.
type Session struct {
	Root   string
	Result *scanner.ScanResult
	Sort   scanner.SortState

	initial scanner.SortState
	scanner Scanner
	deleter Deleter
	logger  *zap.Logger

	// paths in the order the scan found them
	snapshot []string
}

// New creates a session for root. sort is the state restored after a delete.
func New(root string, sc Scanner, del Deleter, sort scanner.SortState, logger *zap.Logger) *Session {
	return &Session{
		Root:    root,
		Sort:    sort,
		initial: sort,
		scanner: sc,
		deleter: del,
		logger:  logging.OrNop(logger),
	}
}

// Scan replaces the current result with a fresh scan and applies the active
// sort. On failure the previous result is dropped.
func (s *Session) Scan() (*scanner.ScanResult, error) {
	result, err := s.scanner.Scan(s.Root)
	if err != nil {
		s.Result = nil
		s.snapshot = nil
		return nil, err
	}

	s.snapshot = result.Paths()
	scanner.Sort(result.Records, s.Sort)
	s.Result = result
	return result, nil
}

// SortBy toggles the sort on key and re-sorts the current records.
func (s *Session) SortBy(key scanner.SortKey) scanner.SortState {
	s.Sort = s.Sort.Toggle(key)
	if s.Result != nil {
		scanner.Sort(s.Result.Records, s.Sort)
	}
	s.logger.Debug("sort changed",
		zap.Stringer("key", s.Sort.Key),
		zap.Bool("descending", s.Sort.Descending),
	)
	return s.Sort
}

// HasResults reports whether there is anything to delete
func (s *Session) HasResults() bool {
	return s.Result != nil && len(s.Result.Records) > 0
}

// Delete removes every file of the current result, in the order the scan
// found them. Afterwards the session is empty and the sort is back to its
// initial state, whatever the outcome.
func (s *Session) Delete() (*cleaner.DeleteResult, error) {
	return s.DeleteWithProgress(nil)
}

// DeleteWithProgress is Delete reporting each path to onProgress when the
// deleter supports it.
func (s *Session) DeleteWithProgress(onProgress cleaner.ProgressFunc) (*cleaner.DeleteResult, error) {
	if !s.HasResults() {
		return nil, ErrNoScan
	}

	snapshot := s.snapshot
	if snapshot == nil {
		// Result was assigned without a scan
		snapshot = s.Result.Paths()
	}

	var (
		result *cleaner.DeleteResult
		err    error
	)
	if pd, ok := s.deleter.(ProgressDeleter); ok && onProgress != nil {
		result, err = pd.DeleteAllWithProgress(snapshot, onProgress)
	} else {
		result, err = s.deleter.DeleteAll(snapshot)
	}

	s.Result = nil
	s.snapshot = nil
	s.Sort = s.initial

	return result, err
}

// Stats returns the file count and total size of the current result
func (s *Session) Stats() (int, int64) {
	if s.Result == nil {
		return 0, 0
	}
	return s.Result.TotalCount, s.Result.TotalSize
}
