//go:build unix

package cleaner

import (
	"syscall"

	"golang.org/x/sys/unix"
)

func isBusyErrno(errno syscall.Errno) bool {
	return errno == unix.EBUSY || errno == unix.ETXTBSY
}

func isDirErrno(errno syscall.Errno) bool {
	return errno == unix.EISDIR
}
