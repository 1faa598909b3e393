//go:build !windows && !plan9
// +build !windows,!plan9

package spawn

import (
	"syscall"
)

// detachedProcessAttributes returns the process attributes to use for
// starting launched applications. Setsid might be a little heavy handed
// since it creates a new process group, but it properly detaches the process
// from any controlling terminal, and it's a standard system call, so it's
// the most robust option.
func detachedProcessAttributes() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{
		Setsid: true,
	}
}
