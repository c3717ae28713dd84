//go:build !linux && !darwin && !windows

package scanner

import (
	"os"
	"time"
)

func createdAt(info os.FileInfo) time.Time {
	return info.ModTime()
}
