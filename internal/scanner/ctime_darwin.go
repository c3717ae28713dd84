//go:build darwin

package scanner

import (
	"os"
	"syscall"
	"time"
)

func createdAt(info os.FileInfo) time.Time {
	if st, ok := info.Sys().(*syscall.Stat_t); ok {
		sec, nsec := st.Birthtimespec.Unix()
		return time.Unix(sec, nsec)
	}
	return info.ModTime()
}
