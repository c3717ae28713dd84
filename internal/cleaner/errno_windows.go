//go:build windows

package cleaner

import (
	"syscall"

	"golang.org/x/sys/windows"
)

func isBusyErrno(errno syscall.Errno) bool {
	return errno == windows.ERROR_SHARING_VIOLATION || errno == windows.ERROR_LOCK_VIOLATION
}

func isDirErrno(errno syscall.Errno) bool {
	return errno == windows.ERROR_DIRECTORY
}
