package scanner

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fenilsonani/cleantemp/internal/platform"
	"github.com/fenilsonani/cleantemp/internal/testutil"
)

// =============================================================================
// Scan Totals Tests
// =============================================================================

func TestScanTotals(t *testing.T) {
	f := testutil.NewFixture(t)

	sizes := map[string]int{
		"a.tmp":                 10,
		"b.log":                 2048,
		"nested/c.tmp":          0,
		"nested/deeper/d.cache": 1500,
		"other/e":               7,
	}

	var want int64
	for rel, size := range sizes {
		f.CreateSizedFile(rel, size)
		want += int64(size)
	}

	result, err := New(nil).Scan(f.RootDir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}

	if result.TotalCount != len(sizes) {
		t.Errorf("TotalCount = %d, want %d", result.TotalCount, len(sizes))
	}
	if result.TotalCount != len(result.Records) {
		t.Errorf("TotalCount %d != len(Records) %d", result.TotalCount, len(result.Records))
	}
	if result.TotalSize != want {
		t.Errorf("TotalSize = %d, want %d", result.TotalSize, want)
	}
	if result.Skipped != 0 {
		t.Errorf("Skipped = %d, want 0", result.Skipped)
	}

	for _, rec := range result.Records {
		rel, err := filepath.Rel(f.RootDir, rec.Path)
		if err != nil {
			t.Fatalf("record outside root: %s", rec.Path)
		}
		size, ok := sizes[filepath.ToSlash(rel)]
		if !ok {
			t.Errorf("unexpected record %s", rec.Path)
			continue
		}
		if rec.Size != int64(size) {
			t.Errorf("%s: Size = %d, want %d", rel, rec.Size, size)
		}
		if rec.DisplayName != filepath.Base(rec.Path) {
			t.Errorf("%s: DisplayName = %q", rel, rec.DisplayName)
		}
		if rec.CreatedAt.IsZero() {
			t.Errorf("%s: CreatedAt is zero", rel)
		}
	}
}

func TestScanEmptyRoot(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateDir("empty/subdir")

	result, err := New(nil).Scan(f.RootDir)
	if err != nil {
		t.Fatalf("empty root should not fail: %v", err)
	}
	if result.TotalCount != 0 || result.TotalSize != 0 {
		t.Errorf("expected empty totals, got %d files / %d bytes", result.TotalCount, result.TotalSize)
	}
	if result.Records == nil {
		t.Error("Records should be empty, not nil")
	}
}

// =============================================================================
// Root Failure Tests
// =============================================================================

func TestScanMissingRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "does-not-exist")

	result, err := New(nil).Scan(root)
	if err == nil {
		t.Fatal("expected error for missing root")
	}
	if result != nil {
		t.Error("no result should accompany a root failure")
	}

	var scanErr *ScanError
	if !errors.As(err, &scanErr) {
		t.Fatalf("expected *ScanError, got %T", err)
	}
	if scanErr.Root != root {
		t.Errorf("ScanError.Root = %q, want %q", scanErr.Root, root)
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected error to wrap os.ErrNotExist: %v", err)
	}
}

func TestScanRootIsFile(t *testing.T) {
	f := testutil.NewFixture(t)
	file := f.CreateFile("plain.txt", []byte("x"))

	_, err := New(nil).Scan(file)
	if !errors.Is(err, ErrNotDirectory) {
		t.Fatalf("expected ErrNotDirectory, got %v", err)
	}
}

func TestScanUnreadableRoot(t *testing.T) {
	testutil.SkipOnWindows(t)
	testutil.SkipIfRoot(t)

	f := testutil.NewFixture(t)
	root := f.CreateUnreadableDir("locked")

	result, err := New(nil).Scan(root)
	if err == nil {
		t.Fatal("expected error for unreadable root")
	}
	if result != nil {
		t.Error("no result should accompany a root failure")
	}
	if !errors.Is(err, os.ErrPermission) {
		t.Errorf("expected permission error, got %v", err)
	}
}

func TestScanSymlinkedRoot(t *testing.T) {
	testutil.SkipOnWindows(t)

	f := testutil.NewFixture(t)
	f.CreateSizedFile("real/a.tmp", 5)
	link := f.CreateSymlink(f.Path("real"), "link")

	result, err := New(nil).Scan(link)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if result.TotalCount != 1 {
		t.Errorf("TotalCount = %d, want 1", result.TotalCount)
	}
	if result.Root != f.Path("real") {
		t.Errorf("Root = %q, want resolved %q", result.Root, f.Path("real"))
	}
}

// =============================================================================
// Per-file Skip Tests
// =============================================================================

func TestScanSkipsInaccessibleFile(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateSizedFile("ok.tmp", 100)
	locked := f.CreateSizedFile("locked.tmp", 999)
	f.CreateSizedFile("sub/ok2.tmp", 50)

	s := New(nil)
	s.lstat = func(path string) (os.FileInfo, error) {
		if path == locked {
			return nil, &fs.PathError{Op: "lstat", Path: path, Err: fs.ErrPermission}
		}
		return os.Lstat(path)
	}

	result, err := s.Scan(f.RootDir)
	if err != nil {
		t.Fatalf("per-file failure must not fail the scan: %v", err)
	}
	if result.TotalCount != 2 {
		t.Errorf("TotalCount = %d, want 2", result.TotalCount)
	}
	if result.TotalSize != 150 {
		t.Errorf("TotalSize = %d, want 150", result.TotalSize)
	}
	if result.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", result.Skipped)
	}
	for _, rec := range result.Records {
		if rec.Path == locked {
			t.Error("inaccessible file should not be in the result")
		}
	}
}

func TestScanSkipsVanishedFile(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateSizedFile("stays.tmp", 1)
	gone := f.CreateSizedFile("gone.tmp", 1)

	s := New(nil)
	s.lstat = func(path string) (os.FileInfo, error) {
		if path == gone {
			os.Remove(path)
		}
		return os.Lstat(path)
	}

	result, err := s.Scan(f.RootDir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if result.TotalCount != 1 || result.Skipped != 1 {
		t.Errorf("got %d files / %d skipped, want 1 / 1", result.TotalCount, result.Skipped)
	}
}

func TestScanUnreadableSubdirectory(t *testing.T) {
	testutil.SkipOnWindows(t)
	testutil.SkipIfRoot(t)

	f := testutil.NewFixture(t)
	f.CreateSizedFile("visible.tmp", 10)
	f.CreateUnreadableDir("locked")

	result, err := New(nil).Scan(f.RootDir)
	if err != nil {
		t.Fatalf("unreadable subdirectory must not fail the scan: %v", err)
	}
	if result.TotalCount != 1 {
		t.Errorf("TotalCount = %d, want 1", result.TotalCount)
	}
}

func TestScanIgnoresSymlinks(t *testing.T) {
	testutil.SkipOnWindows(t)

	f := testutil.NewFixture(t)
	target := f.CreateSizedFile("target.tmp", 64)
	f.CreateSymlink(target, "link.tmp")
	f.CreateSymlink("/nonexistent/target", "broken.tmp")

	result, err := New(nil).Scan(f.RootDir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if result.TotalCount != 1 {
		t.Errorf("TotalCount = %d, want 1 (symlinks excluded)", result.TotalCount)
	}
	if result.Skipped != 0 {
		t.Errorf("symlinks are not inaccessible files, Skipped = %d", result.Skipped)
	}
}

// =============================================================================
// inspect Tests
// =============================================================================

func TestInspectOutcomes(t *testing.T) {
	f := testutil.NewFixture(t)
	file := f.CreateSizedFile("file.tmp", 3)
	dir := f.CreateDir("dir")

	entry := func(path string) fs.DirEntry {
		info, err := os.Lstat(path)
		if err != nil {
			t.Fatalf("lstat %s: %v", path, err)
		}
		return fs.FileInfoToDirEntry(info)
	}

	s := New(nil)

	rec, outcome := s.inspect(file, entry(file))
	if outcome != Included {
		t.Errorf("regular file outcome = %v, want %v", outcome, Included)
	}
	if rec.Size != 3 || rec.Path != file {
		t.Errorf("unexpected record: %+v", rec)
	}

	if _, outcome := s.inspect(dir, entry(dir)); outcome != NotRegular {
		t.Errorf("directory outcome = %v, want %v", outcome, NotRegular)
	}

	fileEntry := entry(file)
	os.Remove(file)
	if _, outcome := s.inspect(file, fileEntry); outcome != SkippedInaccessible {
		t.Errorf("vanished file outcome = %v, want %v", outcome, SkippedInaccessible)
	}
}

func TestOutcomeString(t *testing.T) {
	tests := map[Outcome]string{
		Included:            "included",
		SkippedInaccessible: "skipped (inaccessible)",
		NotRegular:          "not a regular file",
		Outcome(42):         "unknown",
	}
	for o, want := range tests {
		if got := o.String(); got != want {
			t.Errorf("Outcome(%d).String() = %q, want %q", o, got, want)
		}
	}
}

// =============================================================================
// Result Helpers Tests
// =============================================================================

func TestScanDisplayNameTruncation(t *testing.T) {
	f := testutil.NewFixture(t)
	long := strings.Repeat("x", 60) + ".tmp"
	f.CreateSizedFile(long, 1)

	result, err := New(nil).Scan(f.RootDir)
	if err != nil {
		t.Fatalf("Scan failed: %v", err)
	}
	if len(result.Records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(result.Records))
	}

	got := result.Records[0].DisplayName
	want := strings.Repeat("x", 47) + "..."
	if got != want {
		t.Errorf("DisplayName = %q, want %q", got, want)
	}
	if filepath.Base(result.Records[0].Path) != long {
		t.Error("Path must keep the full name")
	}
}

func TestScanReturnsFreshResults(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateSizedFile("a.tmp", 1)

	s := New(nil)
	first, err := s.Scan(f.RootDir)
	if err != nil {
		t.Fatal(err)
	}
	first.Records = nil
	first.Recount()

	f.CreateSizedFile("b.tmp", 2)
	second, err := s.Scan(f.RootDir)
	if err != nil {
		t.Fatal(err)
	}
	if second.TotalCount != 2 || second.TotalSize != 3 {
		t.Errorf("second scan = %d files / %d bytes, want 2 / 3", second.TotalCount, second.TotalSize)
	}
}

func TestScanResultPathsAndRecount(t *testing.T) {
	r := &ScanResult{
		Records: []FileRecord{
			{Path: "/t/a", Size: 1},
			{Path: "/t/b", Size: 2},
		},
	}
	r.Recount()
	if r.TotalCount != 2 || r.TotalSize != 3 {
		t.Errorf("Recount = %d / %d", r.TotalCount, r.TotalSize)
	}

	paths := r.Paths()
	if len(paths) != 2 || paths[0] != "/t/a" || paths[1] != "/t/b" {
		t.Errorf("Paths = %v", paths)
	}
	paths[0] = "/mutated"
	if r.Records[0].Path != "/t/a" {
		t.Error("Paths must return a copy")
	}
}

func TestScanTemp(t *testing.T) {
	f := testutil.NewFixture(t)
	f.CreateSizedFile("x.tmp", 12)

	result, err := New(nil).ScanTemp(&platform.Info{TempDir: f.RootDir})
	if err != nil {
		t.Fatalf("ScanTemp failed: %v", err)
	}
	if result.TotalSize != 12 {
		t.Errorf("TotalSize = %d, want 12", result.TotalSize)
	}
}
