//go:build !windows
// +build !windows

package filesystem

import (
	"golang.org/x/sys/unix"
)

// Mode is an opaque type representing a raw file mode. It is guaranteed to be
// convertable to a uint32 value. On POSIX systems, it is the raw underlying
// file mode from the Stat_t structure (as opposed to the os package's FileMode
// implementation).
type Mode uint32

const (
	// ModeTypeMask is a bit mask that isolates type information. After
	// masking, the resulting value can be compared with any of the ModeType*
	// values (other than ModeTypeMask).
	ModeTypeMask = Mode(unix.S_IFMT)
	// ModeTypeDirectory represents a directory.
	ModeTypeDirectory = Mode(unix.S_IFDIR)
	// ModeTypeFile represents a regular file.
	ModeTypeFile = Mode(unix.S_IFREG)
	// ModeTypeSymbolicLink represents a symbolic link.
	ModeTypeSymbolicLink = Mode(unix.S_IFLNK)
	// ModeTypeSocket represents a socket.
	ModeTypeSocket = Mode(unix.S_IFSOCK)
	// ModeTypeBlockDevice represents a block device.
	ModeTypeBlockDevice = Mode(unix.S_IFBLK)
	// ModeTypeCharacterDevice represents a character device.
	ModeTypeCharacterDevice = Mode(unix.S_IFCHR)
	// ModeTypeFifo represents a named pipe.
	ModeTypeFifo = Mode(unix.S_IFIFO)
)

const (
	// ModePermissionsMask is a bit mask that isolates the full 12-bit
	// permission set, including the setuid, setgid, and sticky bits.
	ModePermissionsMask = Mode(unix.S_ISUID | unix.S_ISGID | unix.S_ISVTX |
		unix.S_IRWXU | unix.S_IRWXG | unix.S_IRWXO)

	// ModePermissionSetUID is the setuid permission bit.
	ModePermissionSetUID = Mode(unix.S_ISUID)
	// ModePermissionSetGID is the setgid permission bit.
	ModePermissionSetGID = Mode(unix.S_ISGID)
	// ModePermissionSticky is the sticky permission bit.
	ModePermissionSticky = Mode(unix.S_ISVTX)

	// ModePermissionUserRead is the user-readable permission bit.
	ModePermissionUserRead = Mode(unix.S_IRUSR)
	// ModePermissionUserWrite is the user-writable permission bit.
	ModePermissionUserWrite = Mode(unix.S_IWUSR)
	// ModePermissionUserExecute is the user-executable permission bit.
	ModePermissionUserExecute = Mode(unix.S_IXUSR)
	// ModePermissionGroupRead is the group-readable permission bit.
	ModePermissionGroupRead = Mode(unix.S_IRGRP)
	// ModePermissionGroupWrite is the group-writable permission bit.
	ModePermissionGroupWrite = Mode(unix.S_IWGRP)
	// ModePermissionGroupExecute is the group-executable permission bit.
	ModePermissionGroupExecute = Mode(unix.S_IXGRP)
	// ModePermissionOthersRead is the others-readable permission bit.
	ModePermissionOthersRead = Mode(unix.S_IROTH)
	// ModePermissionOthersWrite is the others-writable permission bit.
	ModePermissionOthersWrite = Mode(unix.S_IWOTH)
	// ModePermissionOthersExecute is the others-executable permission bit.
	ModePermissionOthersExecute = Mode(unix.S_IXOTH)

	// ModePermissionAnyRead isolates all read permission bits.
	ModePermissionAnyRead = ModePermissionUserRead |
		ModePermissionGroupRead |
		ModePermissionOthersRead
	// ModePermissionAnyExecute isolates all execute permission bits.
	ModePermissionAnyExecute = ModePermissionUserExecute |
		ModePermissionGroupExecute |
		ModePermissionOthersExecute
)

// Permissions isolates the permission portion of the mode, including the
// setuid, setgid, and sticky bits.
func (m Mode) Permissions() Mode {
	return m & ModePermissionsMask
}

// Type isolates the type portion of the mode.
func (m Mode) Type() Mode {
	return m & ModeTypeMask
}
