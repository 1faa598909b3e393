// Package spawn derives launchable command lines from launcher command
// templates and hands them to a process launcher.
package spawn

import (
	"strings"

	"github.com/kballard/go-shellquote"
	"github.com/pkg/errors"

	"github.com/fmkit/vfs/pkg/vfs/location"
)

// defaultTerminalCommand is the command prefix used to run terminal-preferring
// entries when no explicit terminal command is configured.
var defaultTerminalCommand = []string{"xterm", "-e"}

// ExecOptions carry the launcher-entry context consumed by field code
// expansion. The zero value is valid for plain (non-launcher) command
// templates.
type ExecOptions struct {
	// Icon is the value expanded by the %i field code. When empty, %i
	// expands to nothing.
	Icon string
	// Name is the value expanded by the %c field code.
	Name string
	// EntryPath is the launcher file path expanded by the %k field code.
	EntryPath string
	// Terminal indicates that the command must run in a terminal emulator.
	Terminal bool
	// TerminalCommand is the command prefix used when Terminal is set. When
	// empty, a default of "xterm -e" applies.
	TerminalCommand []string
}

// ParseExec tokenizes a command template and expands its field codes against
// the specified target locations, producing the argument vector to spawn.
// Standard field codes are supported: %f/%F (paths), %u/%U (URIs), %i
// (icon), %c (name), %k (entry path), and %% (literal percent). The
// multi-target codes %F and %U must appear as standalone arguments.
func ParseExec(template string, targets []*location.Location, options *ExecOptions) ([]string, error) {
	if options == nil {
		options = &ExecOptions{}
	}

	// Tokenize the template with shell word splitting rules.
	tokens, err := shellquote.Split(template)
	if err != nil {
		return nil, errors.Wrap(err, "unable to tokenize command template")
	}

	// Expand field codes token by token. Standalone multi-target codes may
	// grow the argument vector; embedded codes expand in place.
	var argv []string
	for _, token := range tokens {
		switch token {
		case "%F":
			for _, target := range targets {
				argv = append(argv, target.Path())
			}
		case "%U":
			for _, target := range targets {
				argv = append(argv, target.URI())
			}
		case "%f":
			if len(targets) > 0 {
				argv = append(argv, targets[0].Path())
			}
		case "%u":
			if len(targets) > 0 {
				argv = append(argv, targets[0].URI())
			}
		case "%i":
			if options.Icon != "" {
				argv = append(argv, "--icon", options.Icon)
			}
		default:
			expanded, err := expandToken(token, targets, options)
			if err != nil {
				return nil, err
			}
			argv = append(argv, expanded)
		}
	}
	if len(argv) == 0 {
		return nil, errors.New("command template expands to an empty command")
	}

	// Honor the terminal preference.
	if options.Terminal {
		prefix := options.TerminalCommand
		if len(prefix) == 0 {
			prefix = defaultTerminalCommand
		}
		argv = append(append([]string(nil), prefix...), argv...)
	}

	// Success.
	return argv, nil
}

// expandToken expands field codes embedded within a single token.
func expandToken(token string, targets []*location.Location, options *ExecOptions) (string, error) {
	// Fast path for tokens without field codes.
	if !strings.ContainsRune(token, '%') {
		return token, nil
	}

	var builder strings.Builder
	for i := 0; i < len(token); i++ {
		if token[i] != '%' {
			builder.WriteByte(token[i])
			continue
		}
		if i+1 == len(token) {
			return "", errors.New("dangling % in command template")
		}
		i++
		switch token[i] {
		case '%':
			builder.WriteByte('%')
		case 'f':
			if len(targets) > 0 {
				builder.WriteString(targets[0].Path())
			}
		case 'u':
			if len(targets) > 0 {
				builder.WriteString(targets[0].URI())
			}
		case 'c':
			builder.WriteString(options.Name)
		case 'k':
			builder.WriteString(options.EntryPath)
		case 'F', 'U':
			return "", errors.Errorf("field code %%%c must be a standalone argument", token[i])
		case 'd', 'D', 'n', 'N', 'v', 'm':
			// Deprecated field codes expand to nothing.
		default:
			return "", errors.Errorf("unknown field code %%%c in command template", token[i])
		}
	}
	return builder.String(), nil
}
