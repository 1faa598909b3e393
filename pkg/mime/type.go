package mime

// Well-known content type identifiers used by the descriptor machinery.
// Non-regular filesystem nodes map to fixed inode/* types, and executability
// classification keys off of the executable and shell script types.
const (
	// TypeDirectory is the content type of directories.
	TypeDirectory = "inode/directory"
	// TypeSymlink is the content type of (dangling) symbolic links.
	TypeSymlink = "inode/symlink"
	// TypeSocket is the content type of sockets.
	TypeSocket = "inode/socket"
	// TypeBlockDevice is the content type of block devices.
	TypeBlockDevice = "inode/blockdevice"
	// TypeCharacterDevice is the content type of character devices.
	TypeCharacterDevice = "inode/chardevice"
	// TypeFifo is the content type of named pipes.
	TypeFifo = "inode/fifo"
	// TypeDoor is the content type of doors.
	TypeDoor = "inode/door"
	// TypeExecutable is the content type of native executables.
	TypeExecutable = "application/x-executable"
	// TypeShellScript is the content type of shell scripts.
	TypeShellScript = "application/x-shellscript"
	// TypeDesktopEntry is the content type of launcher (.desktop) files.
	TypeDesktopEntry = "application/x-desktop"
	// TypePlainText is the content type of generic text content.
	TypePlainText = "text/plain"
	// TypeOctetStream is the content type of unclassifiable content.
	TypeOctetStream = "application/octet-stream"
)

// Type is an interned content type record. Type records are owned by the
// database that produced them and live as long as that database, so holders
// reference them without any ownership bookkeeping and compare them by
// pointer identity.
type Type struct {
	// name is the content type identifier, e.g. "application/x-desktop".
	name string
	// parents are the identifiers of the types that this type specializes.
	parents []string
}

// Name returns the content type identifier.
func (t *Type) Name() string {
	return t.name
}

// String implements fmt.Stringer.String.
func (t *Type) String() string {
	return t.name
}

// Database is the content classification interface consumed by descriptor
// construction, rename, and execution. Implementations must intern their
// Type records: repeated lookups of the same identifier must return the same
// pointer.
type Database interface {
	// Classify determines the content type of the file at the specified path.
	// The display name is consulted for extension-based classification, which
	// may differ from the path's base name. Classification never fails: a
	// file that cannot be identified is classified as
	// application/octet-stream.
	Classify(path, displayName string) *Type
	// Lookup returns the interned record for the specified content type
	// identifier.
	Lookup(name string) *Type
	// Lineage returns the specified type followed by its ancestors and
	// equivalent types, deduplicated, most specific first.
	Lineage(t *Type) []*Type
}
