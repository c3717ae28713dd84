//go:build !unix && !windows

package cleaner

import "syscall"

func isBusyErrno(errno syscall.Errno) bool { return false }

func isDirErrno(errno syscall.Errno) bool { return false }
