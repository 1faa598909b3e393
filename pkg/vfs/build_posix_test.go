//go:build !windows
// +build !windows

package vfs

import (
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/fmkit/vfs/pkg/filesystem"
	"github.com/fmkit/vfs/pkg/mime"
	"github.com/fmkit/vfs/pkg/vfs/location"
)

// mustLocation constructs a location or fails the test.
func mustLocation(t *testing.T, path string) *location.Location {
	t.Helper()
	l, err := location.New(path)
	if err != nil {
		t.Fatal("unable to create location:", err)
	}
	return l
}

func TestNewInfoMissingNode(t *testing.T) {
	provider := newTestProvider(t)
	_, err := provider.NewInfo(mustLocation(t, "/does/not/exist"))
	if err == nil {
		t.Fatal("descriptor construction did not fail for missing node")
	}
	if !IsNotFound(err) {
		t.Error("construction failure is not classified as not-found:", err)
	}
}

func TestNewInfoRegularFile(t *testing.T) {
	provider := newTestProvider(t)
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("some notes"), 0640); err != nil {
		t.Fatal("unable to create test file:", err)
	}
	info, err := provider.NewInfo(mustLocation(t, path))
	if err != nil {
		t.Fatal("unable to build descriptor:", err)
	}

	// Attributes must agree with a direct stat of the path.
	var expected unix.Stat_t
	if err := unix.Lstat(path, &expected); err != nil {
		t.Fatal("unable to stat test file:", err)
	}
	if info.FileType() != FileTypeRegular {
		t.Error("file type does not match expected:", info.FileType())
	}
	if info.Flags() != 0 {
		t.Error("flags do not match expected:", info.Flags())
	}
	if info.Mode() != filesystem.Mode(0640) {
		t.Errorf("mode does not match expected: %o", uint32(info.Mode()))
	}
	if info.UID() != expected.Uid || info.GID() != expected.Gid {
		t.Error("ownership does not match expected")
	}
	if info.Size() != expected.Size {
		t.Error("size does not match expected:", info.Size())
	}
	if info.Inode() != expected.Ino || info.Device() != uint64(expected.Dev) {
		t.Error("node identity does not match expected")
	}
	if info.DisplayName() != "notes.txt" {
		t.Error("display name does not match expected:", info.DisplayName())
	}
	if info.ContentType().Name() != mime.TypePlainText {
		t.Error("content type does not match expected:", info.ContentType())
	}
}

func TestNewInfoDirectory(t *testing.T) {
	provider := newTestProvider(t)
	directory := t.TempDir()
	info, err := provider.NewInfo(mustLocation(t, directory))
	if err != nil {
		t.Fatal("unable to build descriptor:", err)
	}
	if info.FileType() != FileTypeDirectory {
		t.Error("file type does not match expected:", info.FileType())
	}
	if info.ContentType() != provider.database.Lookup(mime.TypeDirectory) {
		t.Error("content type does not match expected:", info.ContentType())
	}
}

func TestNewInfoFifo(t *testing.T) {
	provider := newTestProvider(t)
	path := filepath.Join(t.TempDir(), "pipe")
	if err := unix.Mkfifo(path, 0600); err != nil {
		t.Fatal("unable to create fifo:", err)
	}
	info, err := provider.NewInfo(mustLocation(t, path))
	if err != nil {
		t.Fatal("unable to build descriptor:", err)
	}
	if info.FileType() != FileTypeFifo {
		t.Error("file type does not match expected:", info.FileType())
	}
	if info.ContentType().Name() != mime.TypeFifo {
		t.Error("content type does not match expected:", info.ContentType())
	}
}

func TestNewInfoResolvedSymlink(t *testing.T) {
	provider := newTestProvider(t)
	directory := t.TempDir()
	target := filepath.Join(directory, "target.txt")
	if err := os.WriteFile(target, []byte("target content"), 0644); err != nil {
		t.Fatal("unable to create target file:", err)
	}
	link := filepath.Join(directory, "link.txt")
	if err := os.Symlink(target, link); err != nil {
		t.Fatal("unable to create symlink:", err)
	}
	info, err := provider.NewInfo(mustLocation(t, link))
	if err != nil {
		t.Fatal("unable to build descriptor:", err)
	}

	// The descriptor reports the target's type and attributes, with the
	// symlink flag set.
	var expected unix.Stat_t
	if err := unix.Stat(target, &expected); err != nil {
		t.Fatal("unable to stat target:", err)
	}
	if info.FileType() != FileTypeRegular {
		t.Error("file type does not match expected:", info.FileType())
	}
	if !info.Flags().Contains(FlagSymlink) {
		t.Error("symlink flag not set for symbolic link")
	}
	if info.Size() != expected.Size {
		t.Error("size does not reflect the link target:", info.Size())
	}
	if info.Inode() != expected.Ino {
		t.Error("inode does not reflect the link target")
	}
}

func TestNewInfoDanglingSymlink(t *testing.T) {
	provider := newTestProvider(t)
	link := filepath.Join(t.TempDir(), "dangling")
	if err := os.Symlink("/nonexistent/target", link); err != nil {
		t.Fatal("unable to create symlink:", err)
	}
	info, err := provider.NewInfo(mustLocation(t, link))
	if err != nil {
		t.Fatal("dangling symlink reported as an error:", err)
	}

	// The descriptor must report the link itself, never the missing target.
	var expected unix.Stat_t
	if err := unix.Lstat(link, &expected); err != nil {
		t.Fatal("unable to stat link:", err)
	}
	if info.FileType() != FileTypeSymlink {
		t.Error("file type does not match expected:", info.FileType())
	}
	if !info.Flags().Contains(FlagSymlink) {
		t.Error("symlink flag not set for dangling symbolic link")
	}
	if info.Size() != expected.Size {
		t.Error("size does not reflect the link inode:", info.Size())
	}
	if info.UID() != expected.Uid {
		t.Error("ownership does not reflect the link inode")
	}
	if info.ContentType().Name() != mime.TypeSymlink {
		t.Error("content type does not match expected:", info.ContentType())
	}
}

func TestExecutabilityClassification(t *testing.T) {
	provider := newTestProvider(t)
	path := filepath.Join(t.TempDir(), "script.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0755); err != nil {
		t.Fatal("unable to create script:", err)
	}

	// With read permission, execute access, and a runnable content type, the
	// executable flag must be set.
	info, err := provider.NewInfo(mustLocation(t, path))
	if err != nil {
		t.Fatal("unable to build descriptor:", err)
	}
	if !info.Flags().Contains(FlagExecutable) {
		t.Error("executable flag not set for executable script")
	}

	// Without execute access, it must not be.
	if err := os.Chmod(path, 0644); err != nil {
		t.Fatal("unable to change permissions:", err)
	}
	info, err = provider.NewInfo(mustLocation(t, path))
	if err != nil {
		t.Fatal("unable to build descriptor:", err)
	}
	if info.Flags().Contains(FlagExecutable) {
		t.Error("executable flag set without execute access")
	}
}

func TestExecutabilityRequiresRunnableContentType(t *testing.T) {
	provider := newTestProvider(t)
	path := filepath.Join(t.TempDir(), "notes.txt")
	if err := os.WriteFile(path, []byte("just text"), 0755); err != nil {
		t.Fatal("unable to create test file:", err)
	}
	info, err := provider.NewInfo(mustLocation(t, path))
	if err != nil {
		t.Fatal("unable to build descriptor:", err)
	}

	// Execute permission alone doesn't make a document runnable.
	if info.Flags().Contains(FlagExecutable) {
		t.Error("executable flag set for non-runnable content type")
	}
}

// launcherContent is a minimal launcher file used by builder tests.
const launcherContent = `[Desktop Entry]
Type=Application
Name=Report Viewer
Name[de]=Berichtsbetrachter
Icon=report-viewer
Exec=report-viewer %U
`

func TestLauncherHintExtraction(t *testing.T) {
	provider := newTestProvider(t)
	path := filepath.Join(t.TempDir(), "viewer.desktop")
	if err := os.WriteFile(path, []byte(launcherContent), 0644); err != nil {
		t.Fatal("unable to create launcher file:", err)
	}
	info, err := provider.NewInfo(mustLocation(t, path))
	if err != nil {
		t.Fatal("unable to build descriptor:", err)
	}
	if info.ContentType().Name() != mime.TypeDesktopEntry {
		t.Fatal("content type does not match expected:", info.ContentType())
	}
	if icon, ok := info.Hint(HintIcon); !ok || icon != "report-viewer" {
		t.Error("icon hint does not match expected:", icon)
	}
	if name, ok := info.Hint(HintName); !ok || name != "Berichtsbetrachter" {
		t.Error("name hint does not match expected:", name)
	}

	// An Application entry with a command is executable regardless of the
	// file's own permission bits.
	if !info.Flags().Contains(FlagExecutable) {
		t.Error("executable flag not set for application launcher")
	}
}

func TestLauncherWithoutExecIsNotExecutable(t *testing.T) {
	provider := newTestProvider(t)
	path := filepath.Join(t.TempDir(), "broken.desktop")
	content := "[Desktop Entry]\nType=Application\nName=Broken\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal("unable to create launcher file:", err)
	}
	info, err := provider.NewInfo(mustLocation(t, path))
	if err != nil {
		t.Fatal("unable to build descriptor:", err)
	}
	if info.Flags().Contains(FlagExecutable) {
		t.Error("executable flag set for launcher without a command")
	}

	// The hint table must still exist: the entry was readable, it just
	// provided nothing beyond a name.
	if name, ok := info.Hint(HintName); !ok || name != "Broken" {
		t.Error("name hint does not match expected:", name)
	}
}

func TestLauncherLinkTypeIsNotExecutable(t *testing.T) {
	provider := newTestProvider(t)
	path := filepath.Join(t.TempDir(), "link.desktop")
	content := "[Desktop Entry]\nType=Link\nName=Somewhere\nExec=true\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal("unable to create launcher file:", err)
	}
	info, err := provider.NewInfo(mustLocation(t, path))
	if err != nil {
		t.Fatal("unable to build descriptor:", err)
	}
	if info.Flags().Contains(FlagExecutable) {
		t.Error("executable flag set for non-application launcher")
	}
}
