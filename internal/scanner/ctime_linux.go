//go:build linux

package scanner

import (
	"os"
	"syscall"
	"time"
)

// createdAt returns the inode status-change time, the closest Linux has to a
// creation time through os.FileInfo.
func createdAt(info os.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		sec, nsec := st.Ctim.Unix()
		return time.Unix(sec, nsec)
	}
	return info.ModTime()
}
