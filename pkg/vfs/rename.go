package vfs

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"

	"github.com/fmkit/vfs/pkg/desktop"
	"github.com/fmkit/vfs/pkg/mime"
)

// Rename gives the node referred to by the descriptor a new name, mutating
// the descriptor in place. The caller must hold the only mutating access to
// the descriptor for the duration of the call; concurrent reads of the
// fields being replaced are not synchronized.
//
// The operation is launcher-aware: for a launcher file, the file name on
// disk is left untouched and the entry's Name field (localized if a
// locale-variant key already exists) is rewritten instead. For any other
// node, the file itself is renamed within its parent directory, and the
// descriptor's location, display name, and (for regular files) content type
// are updated to match.
//
// The destination existence check and the rename are separate system calls;
// a node created in between can still be overwritten. The original library
// carries the same window, and closing it would require a platform-specific
// rename-if-absent primitive.
func (p *Provider) Rename(info *Info, name string) error {
	// Validate the name before touching anything.
	if name == "" || !utf8.ValidString(name) || strings.ContainsRune(name, os.PathSeparator) {
		return &ValidationError{Message: "invalid file name"}
	}

	path := info.location.Path()

	// Launcher files are renamed by rewriting their embedded display name.
	if info.contentType == p.database.Lookup(mime.TypeDesktopEntry) {
		entry, err := desktop.Open(path)
		if err != nil {
			return &IOError{Op: "open", Path: path, Err: err}
		}
		if !entry.HasMainGroup() {
			return &ValidationError{Message: "invalid launcher file"}
		}

		// Write the new name into the first locale-variant key that already
		// exists for the preferred languages, falling back to the
		// untranslated key. Comments and other translations survive the
		// rewrite.
		if err := entry.SetName(name, p.languages); err != nil {
			return &ValidationError{Message: "invalid launcher file"}
		}
		if err := entry.Save(p.logger); err != nil {
			return &IOError{Op: "write", Path: path, Err: err}
		}

		// Update the name hint if hints were already loaded. Hints are never
		// force-loaded just to record the new name.
		if info.hints != nil {
			info.hints[HintName] = name
		}
		return nil
	}

	// Compute the destination as a sibling of the current path, with the
	// name normalized to the on-disk form.
	destination := info.location.Sibling(norm.NFC.String(name))

	// Verify that the destination doesn't already exist. There is no silent
	// overwrite, but also no atomicity guarantee (see above).
	if _, err := os.Lstat(destination.Path()); err == nil {
		return &AlreadyExistsError{Path: destination.Path()}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return &IOError{Op: "stat", Path: destination.Path(), Err: err}
	}

	// Perform the rename. This is the single irreversible step; everything
	// after it is in-memory and unconditional.
	if err := os.Rename(path, destination.Path()); err != nil {
		return &IOError{Op: "rename", Path: path, Err: err}
	}

	// Update the descriptor's identity.
	info.location = destination
	info.displayName = name

	// For regular files the content type may be name-dependent, so resolve
	// it again against the new name.
	if info.fileType == FileTypeRegular {
		info.contentType = p.database.Classify(destination.Path(), info.displayName)
	}

	return nil
}
