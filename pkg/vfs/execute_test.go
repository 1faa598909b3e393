package vfs

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/fmkit/vfs/pkg/vfs/location"
)

// captureLauncher records the launch request instead of spawning anything.
type captureLauncher struct {
	workingDirectory string
	argv             []string
	display          string
	spawned          int
	err              error
}

// Spawn implements spawn.Launcher.Spawn.
func (l *captureLauncher) Spawn(workingDirectory string, argv []string, display string) error {
	l.workingDirectory = workingDirectory
	l.argv = argv
	l.display = display
	l.spawned++
	return l.err
}

func TestExecutePlainExecutable(t *testing.T) {
	capture := &captureLauncher{}
	provider := newTestProvider(t, WithLauncher(capture))
	directory := t.TempDir()
	path := filepath.Join(directory, "run me.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0755); err != nil {
		t.Fatal("unable to create script:", err)
	}
	info, err := provider.NewInfo(mustLocation(t, path))
	if err != nil {
		t.Fatal("unable to build descriptor:", err)
	}

	targetDirectory := t.TempDir()
	first := filepath.Join(targetDirectory, "a.txt")
	second := filepath.Join(targetDirectory, "b.txt")
	targets := []*location.Location{mustLocation(t, first), mustLocation(t, second)}

	if err := provider.Execute(info, targets, "display-1"); err != nil {
		t.Fatal("unable to execute:", err)
	}

	// The script's path survives quoting intact and the targets follow.
	if !reflect.DeepEqual(capture.argv, []string{path, first, second}) {
		t.Error("argument vector does not match expected:", capture.argv)
	}

	// The working directory follows the first target.
	if capture.workingDirectory != targetDirectory {
		t.Error("working directory does not match expected:", capture.workingDirectory)
	}
	if capture.display != "display-1" {
		t.Error("display context does not match expected:", capture.display)
	}
}

func TestExecuteWithoutTargets(t *testing.T) {
	capture := &captureLauncher{}
	provider := newTestProvider(t, WithLauncher(capture))
	directory := t.TempDir()
	path := filepath.Join(directory, "tool.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\nexit 0\n"), 0755); err != nil {
		t.Fatal("unable to create script:", err)
	}
	info, err := provider.NewInfo(mustLocation(t, path))
	if err != nil {
		t.Fatal("unable to build descriptor:", err)
	}
	if err := provider.Execute(info, nil, ""); err != nil {
		t.Fatal("unable to execute:", err)
	}
	if !reflect.DeepEqual(capture.argv, []string{path}) {
		t.Error("argument vector does not match expected:", capture.argv)
	}

	// Without targets, the working directory is the node's own parent.
	if capture.workingDirectory != directory {
		t.Error("working directory does not match expected:", capture.workingDirectory)
	}
}

func TestExecuteLauncher(t *testing.T) {
	capture := &captureLauncher{}
	provider := newTestProvider(t, WithLauncher(capture))
	path := filepath.Join(t.TempDir(), "viewer.desktop")
	content := `[Desktop Entry]
Type=Application
Name=Report Viewer
Icon=report-viewer
Exec=report-viewer %i %U
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal("unable to create launcher file:", err)
	}
	info, err := provider.NewInfo(mustLocation(t, path))
	if err != nil {
		t.Fatal("unable to build descriptor:", err)
	}

	target := mustLocation(t, "/data/report.txt")
	if err := provider.Execute(info, []*location.Location{target}, ""); err != nil {
		t.Fatal("unable to execute:", err)
	}
	expected := []string{"report-viewer", "--icon", "report-viewer", "file:///data/report.txt"}
	if !reflect.DeepEqual(capture.argv, expected) {
		t.Error("argument vector does not match expected:", capture.argv)
	}
	if capture.workingDirectory != "/data" {
		t.Error("working directory does not match expected:", capture.workingDirectory)
	}
}

func TestExecuteLauncherMissingExec(t *testing.T) {
	capture := &captureLauncher{}
	provider := newTestProvider(t, WithLauncher(capture))
	path := filepath.Join(t.TempDir(), "broken.desktop")
	content := "[Desktop Entry]\nType=Application\nName=Broken\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal("unable to create launcher file:", err)
	}
	info, err := provider.NewInfo(mustLocation(t, path))
	if err != nil {
		t.Fatal("unable to build descriptor:", err)
	}
	err = provider.Execute(info, nil, "")
	if _, ok := err.(*ValidationError); !ok {
		t.Fatal("missing Exec did not fail with a validation error:", err)
	}
	if capture.spawned != 0 {
		t.Error("process spawned despite command construction failure")
	}
}

func TestExecuteLauncherUnparseable(t *testing.T) {
	capture := &captureLauncher{}
	provider := newTestProvider(t, WithLauncher(capture))
	path := filepath.Join(t.TempDir(), "gone.desktop")
	if err := os.WriteFile(path, []byte(launcherContent), 0644); err != nil {
		t.Fatal("unable to create launcher file:", err)
	}
	info, err := provider.NewInfo(mustLocation(t, path))
	if err != nil {
		t.Fatal("unable to build descriptor:", err)
	}

	// Remove the file out from under the descriptor so that the entry can
	// no longer be read.
	if err := os.Remove(path); err != nil {
		t.Fatal("unable to remove launcher file:", err)
	}
	err = provider.Execute(info, nil, "")
	if _, ok := err.(*ValidationError); !ok {
		t.Fatal("unreadable launcher did not fail with a validation error:", err)
	}
	if capture.spawned != 0 {
		t.Error("process spawned despite unreadable launcher")
	}
}

func TestExecuteSurfacesSpawnFailure(t *testing.T) {
	capture := &captureLauncher{err: os.ErrPermission}
	provider := newTestProvider(t, WithLauncher(capture))
	info := buildTestInfo(t, provider, "tool.sh", "#!/bin/sh\nexit 0\n")
	if err := provider.Execute(info, nil, ""); err != os.ErrPermission {
		t.Error("spawn failure was not surfaced as-is:", err)
	}
}
