package vfs

import (
	"github.com/kballard/go-shellquote"

	"github.com/fmkit/vfs/pkg/desktop"
	"github.com/fmkit/vfs/pkg/mime"
	"github.com/fmkit/vfs/pkg/spawn"
	"github.com/fmkit/vfs/pkg/vfs/location"
)

// Execute runs the node referred to by the descriptor, passing the specified
// target locations as parameters. The descriptor may refer to a launcher
// file, whose Exec template is expanded against the targets, or to a plain
// executable, which is invoked with the targets appended. The display
// context identifies the display the process should appear on and is handed
// through to the launcher unchanged.
//
// The working directory of the spawned process is the parent directory of
// the first target, or of the descriptor itself when no targets are given.
// Command construction failures abort before anything is spawned; spawn
// failures surface as-is from the launcher.
func (p *Provider) Execute(info *Info, targets []*location.Location, display string) error {
	path := info.location.Path()

	// Derive the argument vector.
	var argv []string
	if info.contentType == p.database.Lookup(mime.TypeDesktopEntry) {
		// Read the entry and its command template.
		entry, err := desktop.Open(path)
		if err != nil {
			return &ValidationError{Message: "unable to parse launcher file"}
		}
		command := entry.Exec()
		if command == "" {
			return &ValidationError{Message: "no Exec field specified"}
		}

		// Expand the template with the entry's own context.
		argv, err = spawn.ParseExec(command, targets, &spawn.ExecOptions{
			Icon:      entry.Icon(),
			Name:      entry.Name(p.languages),
			EntryPath: path,
			Terminal:  entry.Terminal(),
		})
		if err != nil {
			return &ValidationError{Message: "invalid Exec field: " + err.Error()}
		}
	} else {
		// Synthesize a template that invokes the node itself with all
		// targets appended.
		template := shellquote.Join(path) + " %F"
		var err error
		argv, err = spawn.ParseExec(template, targets, nil)
		if err != nil {
			return err
		}
	}

	// Determine the working directory.
	workingDirectory := info.location.Parent()
	if len(targets) > 0 {
		workingDirectory = targets[0].Parent()
	}

	// Hand off to the launcher.
	p.logger.Debugf("spawning %v in %q", argv, workingDirectory)
	return p.launcher.Spawn(workingDirectory, argv, display)
}
