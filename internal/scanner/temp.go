package scanner

import (
	"github.com/fenilsonani/cleantemp/internal/platform"
)

// ScanTemp scans the temp directory resolved for the current platform
func (s *Scanner) ScanTemp(info *platform.Info) (*ScanResult, error) {
	return s.Scan(info.TempDir)
}
