// Package location provides the canonical filesystem location value shared
// by descriptors and the operations that consume them.
package location

import (
	"net/url"
	"path/filepath"

	"github.com/pkg/errors"

	"golang.org/x/text/unicode/norm"
)

// Location represents a canonical local filesystem location. Locations are
// immutable after construction and are shared by pointer; two locations may
// be compared with Equal regardless of which owner constructed them.
type Location struct {
	// path is the canonical (absolute, cleaned) path of the location.
	path string
}

// New constructs a location from the specified path, expanding home directory
// tildes, converting the path to an absolute path, and cleaning the result.
func New(path string) (*Location, error) {
	// Expand any leading tilde.
	path, err := tildeExpand(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to perform tilde expansion")
	}

	// Convert to an absolute path. This will also invoke filepath.Clean.
	path, err = filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to compute absolute path")
	}

	// Success.
	return &Location{path: path}, nil
}

// Path returns the canonical path of the location.
func (l *Location) Path() string {
	return l.path
}

// DisplayName returns the human-readable name of the location: the
// NFC-normalized base name of its path.
func (l *Location) DisplayName() string {
	return norm.NFC.String(filepath.Base(l.path))
}

// Parent returns the path of the location's parent directory. The parent of
// the root is the root itself.
func (l *Location) Parent() string {
	return filepath.Dir(l.path)
}

// Sibling constructs the location that shares this location's parent
// directory and has the specified base name.
func (l *Location) Sibling(name string) *Location {
	return &Location{path: filepath.Join(filepath.Dir(l.path), name)}
}

// URI renders the location as a file URI suitable for %u/%U command line
// placeholder expansion.
func (l *Location) URI() string {
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(l.path)}
	return u.String()
}

// Equal returns true if the other location denotes the same canonical path.
func (l *Location) Equal(other *Location) bool {
	if l == nil || other == nil {
		return l == other
	}
	return l.path == other.path
}

// String implements fmt.Stringer.String.
func (l *Location) String() string {
	return l.path
}
