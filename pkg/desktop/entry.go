// Package desktop reads and writes launcher (.desktop style) files: grouped
// key=value text with optional per-locale key variants. Writes preserve
// comments and unrelated keys, including translations.
package desktop

import (
	"bytes"
	"os"

	"github.com/pkg/errors"
	"gopkg.in/ini.v1"

	"github.com/fmkit/vfs/pkg/filesystem"
	"github.com/fmkit/vfs/pkg/logging"
)

// MainGroup is the mandatory group of a launcher file.
const MainGroup = "Desktop Entry"

// TypeApplication is the default value of the Type key.
const TypeApplication = "Application"

// entryPermissionsFallback is the permission set applied when writing an
// entry whose on-disk predecessor can't be statted.
const entryPermissionsFallback = 0644

func init() {
	// Launcher files use KEY=VALUE without alignment padding.
	ini.PrettyFormat = false
}

// loadOptions configure the underlying parser for the launcher file dialect:
// keys are case-sensitive, # inside a value is literal, and comments above
// keys and groups survive a round trip.
var loadOptions = ini.LoadOptions{
	IgnoreInlineComment: true,
}

// Entry represents a parsed launcher file.
type Entry struct {
	// path is the path the entry was loaded from.
	path string
	// file is the parsed key file content.
	file *ini.File
}

// Open parses the launcher file at the specified path.
func Open(path string) (*Entry, error) {
	file, err := ini.LoadSources(loadOptions, path)
	if err != nil {
		return nil, errors.Wrap(err, "unable to parse launcher file")
	}
	return &Entry{path: path, file: file}, nil
}

// HasMainGroup returns true if the entry contains the mandatory
// "Desktop Entry" group.
func (e *Entry) HasMainGroup() bool {
	_, err := e.file.GetSection(MainGroup)
	return err == nil
}

// value returns the raw value of the specified key in the main group, or an
// empty string if the group or key is absent.
func (e *Entry) value(key string) (string, bool) {
	section, err := e.file.GetSection(MainGroup)
	if err != nil || !section.HasKey(key) {
		return "", false
	}
	return section.Key(key).String(), true
}

// Icon returns the untranslated Icon key, or an empty string if absent.
func (e *Entry) Icon() string {
	icon, _ := e.value("Icon")
	return icon
}

// Name returns the Name key localized against the specified preference-ordered
// language list, falling back to the untranslated Name key. It returns an
// empty string if no variant is present.
func (e *Entry) Name(languages []string) string {
	for _, language := range languages {
		if name, ok := e.value("Name[" + language + "]"); ok {
			return name
		}
	}
	name, _ := e.value("Name")
	return name
}

// EntryType returns the untranslated Type key, defaulting to "Application"
// when absent.
func (e *Entry) EntryType() string {
	if entryType, ok := e.value("Type"); ok {
		return entryType
	}
	return TypeApplication
}

// Exec returns the untranslated Exec key: the raw command template, with
// placeholders unexpanded. It returns an empty string if absent.
func (e *Entry) Exec() string {
	command, _ := e.value("Exec")
	return command
}

// Terminal returns the Terminal key, defaulting to false when absent or
// malformed.
func (e *Entry) Terminal() bool {
	section, err := e.file.GetSection(MainGroup)
	if err != nil || !section.HasKey("Terminal") {
		return false
	}
	return section.Key("Terminal").MustBool(false)
}

// SetName writes the specified name into the first locale-variant Name key
// that already exists for the specified preference-ordered language list. If
// no variant exists, the untranslated Name key is written. The mandatory
// group must already exist.
func (e *Entry) SetName(name string, languages []string) error {
	section, err := e.file.GetSection(MainGroup)
	if err != nil {
		return errors.New("invalid launcher file")
	}
	for _, language := range languages {
		key := "Name[" + language + "]"
		if section.HasKey(key) {
			section.Key(key).SetValue(name)
			return nil
		}
	}
	section.Key("Name").SetValue(name)
	return nil
}

// Save serializes the entry and atomically replaces the on-disk file content,
// preserving the file's existing permissions.
func (e *Entry) Save(logger *logging.Logger) error {
	// Serialize the entry.
	var buffer bytes.Buffer
	if _, err := e.file.WriteTo(&buffer); err != nil {
		return errors.Wrap(err, "unable to serialize launcher file")
	}

	// Carry over the existing permissions, if any.
	permissions := os.FileMode(entryPermissionsFallback)
	if info, err := os.Stat(e.path); err == nil {
		permissions = info.Mode().Perm()
	}

	// Swap the new content into place.
	return filesystem.WriteFileAtomic(e.path, buffer.Bytes(), permissions, logger)
}
