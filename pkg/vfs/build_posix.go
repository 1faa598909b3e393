//go:build !windows
// +build !windows

package vfs

import (
	"golang.org/x/sys/unix"

	"github.com/fmkit/vfs/pkg/desktop"
	"github.com/fmkit/vfs/pkg/filesystem"
	"github.com/fmkit/vfs/pkg/mime"
	"github.com/fmkit/vfs/pkg/vfs/location"
)

// NewInfo builds the descriptor for the node at the specified location. The
// returned descriptor carries one reference owned by the caller.
//
// Symbolic links are resolved for attribute purposes: a link that resolves
// reports its target's type and attributes (with FlagSymlink set), while a
// dangling link reports FileTypeSymlink with the attributes of the link
// inode itself. A dangling link is a fully described descriptor, not an
// error.
func (p *Provider) NewInfo(l *location.Location) (*Info, error) {
	path := l.Path()

	// Obtain link-level attributes. If the node can't be statted at all, no
	// descriptor is produced.
	var linkStat unix.Stat_t
	if err := unix.Lstat(path, &linkStat); err != nil {
		return nil, &IOError{Op: "stat", Path: path, Err: err}
	}

	// Prepare the descriptor shell.
	info := &Info{
		location:    l,
		displayName: l.DisplayName(),
		refs:        1,
	}

	// Determine the POSIX attributes, resolving symbolic links.
	if filesystem.Mode(linkStat.Mode).Type() != filesystem.ModeTypeSymbolicLink {
		info.populateFromStat(&linkStat)
		info.fileType = fileTypeFromMode(filesystem.Mode(linkStat.Mode))
	} else {
		var targetStat unix.Stat_t
		if err := unix.Stat(path, &targetStat); err == nil {
			info.populateFromStat(&targetStat)
			info.fileType = fileTypeFromMode(filesystem.Mode(targetStat.Mode))
		} else {
			// The link is dangling. Expose the link inode's own metadata,
			// but never report the (nonexistent) target's type.
			info.populateFromStat(&linkStat)
			info.fileType = FileTypeSymlink
		}
		info.flags = FlagSymlink
	}

	// Resolve the content type and, for regular files, executability and
	// launcher hints.
	switch info.fileType {
	case FileTypeSocket:
		info.contentType = p.database.Lookup(mime.TypeSocket)
	case FileTypeSymlink:
		info.contentType = p.database.Lookup(mime.TypeSymlink)
	case FileTypeBlockDevice:
		info.contentType = p.database.Lookup(mime.TypeBlockDevice)
	case FileTypeDirectory:
		info.contentType = p.database.Lookup(mime.TypeDirectory)
	case FileTypeCharacterDevice:
		info.contentType = p.database.Lookup(mime.TypeCharacterDevice)
	case FileTypeFifo:
		info.contentType = p.database.Lookup(mime.TypeFifo)
	case FileTypeDoor:
		info.contentType = p.database.Lookup(mime.TypeDoor)
	case FileTypeRegular:
		info.contentType = p.database.Classify(path, info.displayName)
		p.classifyExecutability(info, path)
		p.extractLauncherHints(info, path)
	default:
		panic("unhandled file type")
	}

	// Success.
	return info, nil
}

// populateFromStat fills the descriptor's POSIX attributes from a raw stat
// structure.
func (i *Info) populateFromStat(s *unix.Stat_t) {
	i.mode = filesystem.Mode(s.Mode).Permissions()
	i.uid = s.Uid
	i.gid = s.Gid
	i.size = s.Size
	i.accessTime, i.changeTime, i.modificationTime = filesystem.StatTimes(s)
	i.inode = s.Ino
	i.device = uint64(s.Dev)
}

// classifyExecutability sets FlagExecutable on a regular file's descriptor
// if the file is both permitted to execute and of a content type that's
// known to be runnable. For security reasons only well known executable
// content types qualify, so a stray execute bit on a document doesn't mark
// it runnable.
func (p *Provider) classifyExecutability(info *Info, path string) {
	if info.mode&filesystem.ModePermissionAnyRead == 0 {
		return
	}
	if !filesystem.AccessibleForExecute(path) {
		return
	}
	for _, contentType := range p.database.Lineage(info.contentType) {
		if name := contentType.Name(); name == mime.TypeExecutable || name == mime.TypeShellScript {
			info.flags |= FlagExecutable
			return
		}
	}
}

// extractLauncherHints reads display hints from a launcher file's entry. An
// unreadable entry leaves the hint table absent without error; a readable
// entry allocates the table even when it yields no hints, so that hint
// presence remains distinguishable from hint absence. An Application-typed
// entry with a command marks the descriptor executable regardless of the
// file's own permission bits.
func (p *Provider) extractLauncherHints(info *Info, path string) {
	if info.contentType != p.database.Lookup(mime.TypeDesktopEntry) {
		return
	}
	entry, err := desktop.Open(path)
	if err != nil {
		p.logger.Debugf("unable to read launcher entry %q: %s", path, err.Error())
		return
	}

	info.hints = make(map[Hint]string)
	if icon := entry.Icon(); icon != "" {
		info.hints[HintIcon] = icon
	}
	if name := entry.Name(p.languages); name != "" {
		info.hints[HintName] = name
	}
	if entry.EntryType() == desktop.TypeApplication && entry.Exec() != "" {
		info.flags |= FlagExecutable
	}
}
