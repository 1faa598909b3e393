package spawn

import (
	"os"
	"os/exec"

	"github.com/pkg/errors"
)

// Launcher is the process launch interface consumed by the execute
// operation. Implementations receive a fully expanded argument vector and
// are responsible only for starting the process.
type Launcher interface {
	// Spawn starts the specified argument vector in the specified working
	// directory, resolving argv[0] against the executable search path. The
	// display context identifies the display the process should appear on;
	// an empty context inherits the launching process's environment. Spawn
	// returns once the process has been started, it does not wait for
	// completion.
	Spawn(workingDirectory string, argv []string, display string) error
}

// launcher is the default Launcher implementation, starting processes
// detached from the calling process.
type launcher struct{}

// NewLauncher creates the default process launcher.
func NewLauncher() Launcher {
	return &launcher{}
}

// Spawn implements Launcher.Spawn.
func (l *launcher) Spawn(workingDirectory string, argv []string, display string) error {
	// Verify that there's a command to run.
	if len(argv) == 0 {
		return errors.New("empty argument vector")
	}

	// Set up the command. exec.Command resolves argv[0] against PATH.
	command := exec.Command(argv[0], argv[1:]...)
	command.Dir = workingDirectory
	command.SysProcAttr = detachedProcessAttributes()
	if display != "" {
		command.Env = append(os.Environ(), "DISPLAY="+display)
	}

	// Start the process and release our handle to it. Launched applications
	// outlive us; nothing waits on them.
	if err := command.Start(); err != nil {
		return errors.Wrap(err, "unable to start process")
	}
	return command.Process.Release()
}
