package vfs

import (
	"sync/atomic"
	"time"

	"github.com/fmkit/vfs/pkg/filesystem"
	"github.com/fmkit/vfs/pkg/mime"
	"github.com/fmkit/vfs/pkg/vfs/location"
)

// Info is the metadata descriptor for a single filesystem node. Descriptors
// are created by Provider.NewInfo, shared across components by reference
// counting (Ref/Unref), and immutable except through Provider.Rename, which
// requires caller-exclusive access for its duration. All read accessors are
// safe for concurrent use between renames.
type Info struct {
	// location is the node's canonical location. Replaced on rename.
	location *location.Location
	// displayName is the node's human-readable name, derived from the
	// location at construction. Replaced on rename.
	displayName string
	// fileType is the node's resolved type. For symbolic links that resolve,
	// this is the target's type; for dangling links it is FileTypeSymlink.
	fileType FileType
	// mode is the node's 12-bit permission set.
	mode filesystem.Mode
	// flags records symlink-ness and executability.
	flags Flags
	// uid and gid identify the node's owner. For symbolic links that
	// resolve, these (and size, times, inode, and device) describe the
	// target; for dangling links they describe the link inode itself.
	uid, gid uint32
	// size is the node's size in bytes.
	size int64
	// accessTime, changeTime, and modificationTime are the node's
	// timestamps.
	accessTime, changeTime, modificationTime time.Time
	// inode and device identify the node on its filesystem.
	inode, device uint64
	// contentType is the node's resolved content type. It is owned and
	// interned by the provider's database and compared by identity.
	contentType *mime.Type
	// hints holds launcher display hints. It is non-nil only when the node
	// is a readable launcher file; a non-nil empty map means the launcher
	// file was read but provided no hints.
	hints map[Hint]string
	// refs is the descriptor's reference count.
	refs int32
	// teardown, if set, runs exactly once when the reference count reaches
	// zero, before the descriptor's fields are poisoned.
	teardown func()
}

// Ref increments the descriptor's reference count and returns the
// descriptor. It is safe for concurrent use.
func (i *Info) Ref() *Info {
	atomic.AddInt32(&i.refs, 1)
	return i
}

// Unref decrements the descriptor's reference count. When the count reaches
// zero the descriptor is torn down: its teardown hook (if any) runs exactly
// once and its reference-holding fields are cleared so that use after the
// final release fails loudly rather than silently. It is safe for concurrent
// use.
func (i *Info) Unref() {
	if atomic.AddInt32(&i.refs, -1) != 0 {
		return
	}
	if i.teardown != nil {
		i.teardown()
	}
	i.location = nil
	i.contentType = nil
	i.hints = nil
}

// Location returns the descriptor's canonical location.
func (i *Info) Location() *location.Location {
	return i.location
}

// DisplayName returns the descriptor's human-readable name.
func (i *Info) DisplayName() string {
	return i.displayName
}

// FileType returns the descriptor's resolved file type.
func (i *Info) FileType() FileType {
	return i.fileType
}

// Mode returns the descriptor's permission bits.
func (i *Info) Mode() filesystem.Mode {
	return i.mode
}

// Flags returns the descriptor's flag set.
func (i *Info) Flags() Flags {
	return i.flags
}

// UID returns the descriptor's owning user ID.
func (i *Info) UID() uint32 {
	return i.uid
}

// GID returns the descriptor's owning group ID.
func (i *Info) GID() uint32 {
	return i.gid
}

// Size returns the descriptor's size in bytes.
func (i *Info) Size() int64 {
	return i.size
}

// AccessTime returns the descriptor's access time.
func (i *Info) AccessTime() time.Time {
	return i.accessTime
}

// ChangeTime returns the descriptor's status change time.
func (i *Info) ChangeTime() time.Time {
	return i.changeTime
}

// ModificationTime returns the descriptor's modification time.
func (i *Info) ModificationTime() time.Time {
	return i.modificationTime
}

// Inode returns the descriptor's inode number.
func (i *Info) Inode() uint64 {
	return i.inode
}

// Device returns the ID of the device on which the descriptor's node
// resides.
func (i *Info) Device() uint64 {
	return i.device
}

// ContentType returns the descriptor's resolved content type.
func (i *Info) ContentType() *mime.Type {
	return i.contentType
}

// Hint returns the value of the specified display hint and whether the
// descriptor provides it. Descriptors for non-launcher nodes provide no
// hints.
func (i *Info) Hint(hint Hint) (string, bool) {
	value, ok := i.hints[hint]
	return value, ok
}

// Matches returns true if the other descriptor refers to the same node and
// shares every property: type, mode, flags, ownership, size, times, inode,
// device, content type (by identity), and location (by equality).
func (i *Info) Matches(other *Info) bool {
	return i.fileType == other.fileType &&
		i.mode == other.mode &&
		i.flags == other.flags &&
		i.uid == other.uid &&
		i.gid == other.gid &&
		i.size == other.size &&
		i.accessTime.Equal(other.accessTime) &&
		i.modificationTime.Equal(other.modificationTime) &&
		i.changeTime.Equal(other.changeTime) &&
		i.inode == other.inode &&
		i.device == other.device &&
		i.contentType == other.contentType &&
		i.location.Equal(other.location)
}
