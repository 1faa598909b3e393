package vfs

import (
	"fmt"

	"github.com/fmkit/vfs/pkg/filesystem"
)

// FileType identifies the type of a filesystem node.
type FileType uint8

const (
	// FileTypeUnknown indicates an unknown file type. It is never produced
	// by descriptor construction; it exists so that the zero value of
	// FileType doesn't alias a real type.
	FileTypeUnknown FileType = iota
	// FileTypeRegular indicates a regular file.
	FileTypeRegular
	// FileTypeDirectory indicates a directory.
	FileTypeDirectory
	// FileTypeSymlink indicates a symbolic link whose target could not be
	// resolved.
	FileTypeSymlink
	// FileTypeSocket indicates a socket.
	FileTypeSocket
	// FileTypeBlockDevice indicates a block device.
	FileTypeBlockDevice
	// FileTypeCharacterDevice indicates a character device.
	FileTypeCharacterDevice
	// FileTypeFifo indicates a named pipe.
	FileTypeFifo
	// FileTypeDoor indicates a door (Solaris).
	FileTypeDoor
)

// doorModeType is the type bit pattern of doors. The unix package only
// defines it on Solaris, so it's spelled out here.
const doorModeType = filesystem.Mode(0xd000)

// fileTypeFromMode classifies the type bits of a raw stat mode into a
// FileType. It is the single point at which raw type bits enter the library;
// a bit pattern outside the closed platform set is a defect (platform drift,
// memory corruption), not a recoverable condition, and panics.
func fileTypeFromMode(mode filesystem.Mode) FileType {
	switch mode.Type() {
	case filesystem.ModeTypeFile:
		return FileTypeRegular
	case filesystem.ModeTypeDirectory:
		return FileTypeDirectory
	case filesystem.ModeTypeSymbolicLink:
		return FileTypeSymlink
	case filesystem.ModeTypeSocket:
		return FileTypeSocket
	case filesystem.ModeTypeBlockDevice:
		return FileTypeBlockDevice
	case filesystem.ModeTypeCharacterDevice:
		return FileTypeCharacterDevice
	case filesystem.ModeTypeFifo:
		return FileTypeFifo
	case doorModeType:
		return FileTypeDoor
	default:
		panic(fmt.Sprintf("unknown file type in mode %o", uint32(mode)))
	}
}

// String implements fmt.Stringer.String.
func (t FileType) String() string {
	switch t {
	case FileTypeRegular:
		return "regular"
	case FileTypeDirectory:
		return "directory"
	case FileTypeSymlink:
		return "symlink"
	case FileTypeSocket:
		return "socket"
	case FileTypeBlockDevice:
		return "block device"
	case FileTypeCharacterDevice:
		return "character device"
	case FileTypeFifo:
		return "fifo"
	case FileTypeDoor:
		return "door"
	default:
		return "unknown"
	}
}

// Flags is a bit set of descriptor properties.
type Flags uint8

const (
	// FlagSymlink indicates that the underlying node is a symbolic link,
	// whether or not the link resolves.
	FlagSymlink Flags = 1 << iota
	// FlagExecutable indicates that the node can be executed, either
	// directly (an executable regular file with a runnable content type) or
	// through its launcher entry.
	FlagExecutable
)

// Contains returns true if the flag set contains all of the specified flags.
func (f Flags) Contains(flags Flags) bool {
	return f&flags == flags
}

// Hint identifies an optional display attribute sourced from a launcher
// file.
type Hint uint8

const (
	// HintIcon is the launcher entry's icon.
	HintIcon Hint = iota
	// HintName is the launcher entry's localized display name override.
	HintName
)
