//go:build !windows
// +build !windows

package filesystem

import (
	"golang.org/x/sys/unix"
)

// AccessibleForExecute returns true if the calling process would be permitted
// to execute the node at the specified path, as determined by access(2) with
// the X_OK probe. It answers permission only, it does not determine whether
// the node's content is actually runnable.
func AccessibleForExecute(path string) bool {
	return unix.Access(path, unix.X_OK) == nil
}
