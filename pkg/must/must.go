// Package must provides best-effort cleanup helpers for operations whose
// failure shouldn't abort the surrounding control flow but shouldn't vanish
// silently either.
package must

import (
	"io"
	"os"

	"github.com/fmkit/vfs/pkg/logging"
)

// Close closes the specified closer, warning through the logger on failure.
func Close(c io.Closer, logger *logging.Logger) {
	if err := c.Close(); err != nil {
		logger.Warnf("unable to close: %s", err.Error())
	}
}

// OSRemove removes the filesystem entry at the specified path, warning
// through the logger on failure.
func OSRemove(path string, logger *logging.Logger) {
	if err := os.Remove(path); err != nil {
		logger.Warnf("unable to remove %q: %s", path, err.Error())
	}
}
