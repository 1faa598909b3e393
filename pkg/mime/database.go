package mime

import (
	"bytes"
	"fmt"
	stdmime "mime"
	"os"
	"path/filepath"
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// sniffCacheSize is the number of content-sniffing results retained by the
// default database. Keys incorporate size and modification time, so stale
// entries age out naturally as files change.
const sniffCacheSize = 4096

// sniffLength is the number of leading bytes examined during content
// sniffing.
const sniffLength = 256

// parentTypes records which content types a given type specializes, following
// the shared-mime-info subclass relations relevant to this library. Types
// without an entry specialize application/octet-stream directly.
var parentTypes = map[string][]string{
	TypeShellScript:  {TypeExecutable, TypePlainText},
	TypeDesktopEntry: {TypePlainText},
	TypePlainText:    {TypeOctetStream},
	TypeExecutable:   {TypeOctetStream},
	TypeOctetStream:  nil,
}

// extensionTypes maps lowercase file name extensions to content type
// identifiers for the classifications the resolver must get right without
// consulting file content.
var extensionTypes = map[string]string{
	".desktop": TypeDesktopEntry,
	".sh":      TypeShellScript,
	".bash":    TypeShellScript,
	".zsh":     TypeShellScript,
	".ksh":     TypeShellScript,
	".txt":     TypePlainText,
	".text":    TypePlainText,
	".log":     TypePlainText,
}

// DefaultDatabase is the built-in Database implementation. It classifies by
// extension first (its own table, then the platform's extension registry) and
// falls back to content sniffing for extensionless files. It is safe for
// concurrent use.
type DefaultDatabase struct {
	// lock serializes access to types.
	lock sync.Mutex
	// types is the interning registry. Entries are never evicted: pointer
	// identity of a Type must hold for the lifetime of the database.
	types map[string]*Type
	// sniffed caches content-sniffing results, keyed by path, size, and
	// modification time.
	sniffed *lru.Cache[string, string]
}

// NewDefaultDatabase creates an empty default content type database.
func NewDefaultDatabase() *DefaultDatabase {
	// The only construction error for an LRU cache is a non-positive size.
	sniffed, err := lru.New[string, string](sniffCacheSize)
	if err != nil {
		panic(err)
	}
	return &DefaultDatabase{
		types:   make(map[string]*Type),
		sniffed: sniffed,
	}
}

// Lookup implements Database.Lookup.
func (d *DefaultDatabase) Lookup(name string) *Type {
	d.lock.Lock()
	defer d.lock.Unlock()
	return d.lookupLocked(name)
}

// lookupLocked interns the record for the specified identifier. The caller
// must hold the database lock.
func (d *DefaultDatabase) lookupLocked(name string) *Type {
	if t, ok := d.types[name]; ok {
		return t
	}
	parents, ok := parentTypes[name]
	if !ok && name != TypeOctetStream {
		parents = []string{TypeOctetStream}
	}
	t := &Type{name: name, parents: parents}
	d.types[name] = t
	return t
}

// Classify implements Database.Classify.
func (d *DefaultDatabase) Classify(path, displayName string) *Type {
	// Try the resolver's own extension table.
	extension := strings.ToLower(filepath.Ext(displayName))
	if extension != "" {
		if name, ok := extensionTypes[extension]; ok {
			return d.Lookup(name)
		}

		// Fall back to the platform extension registry, discarding any media
		// type parameters that it may attach.
		if registered := stdmime.TypeByExtension(extension); registered != "" {
			if index := strings.IndexByte(registered, ';'); index >= 0 {
				registered = strings.TrimSpace(registered[:index])
			}
			return d.Lookup(registered)
		}
	}

	// The name alone doesn't identify the file, so sniff its content.
	return d.Lookup(d.sniff(path))
}

// sniff determines a content type identifier from the leading bytes of the
// file at the specified path, consulting and updating the sniff cache.
func (d *DefaultDatabase) sniff(path string) string {
	// Compute the cache key from the file's identity and currency. If the
	// file can't be statted, skip caching entirely.
	var key string
	if info, err := os.Stat(path); err == nil {
		key = fmt.Sprintf("%s\x00%d\x00%d", path, info.Size(), info.ModTime().UnixNano())
		if name, ok := d.sniffed.Get(key); ok {
			return name
		}
	}

	// Perform the sniff and record the result.
	name := sniffContent(path)
	if key != "" {
		d.sniffed.Add(key, name)
	}
	return name
}

// sniffContent examines the leading bytes of the file at the specified path.
func sniffContent(path string) string {
	file, err := os.Open(path)
	if err != nil {
		return TypeOctetStream
	}
	defer file.Close()

	buffer := make([]byte, sniffLength)
	n, err := file.Read(buffer)
	if n == 0 || (err != nil && n < 0) {
		return TypeOctetStream
	}
	buffer = buffer[:n]

	// Native executables (ELF) and script shebangs take priority.
	if bytes.HasPrefix(buffer, []byte{0x7f, 'E', 'L', 'F'}) {
		return TypeExecutable
	}
	if bytes.HasPrefix(buffer, []byte("#!")) {
		return TypeShellScript
	}

	// Treat NUL-free content as text.
	if !bytes.ContainsRune(buffer, 0) {
		return TypePlainText
	}
	return TypeOctetStream
}

// Lineage implements Database.Lineage.
func (d *DefaultDatabase) Lineage(t *Type) []*Type {
	d.lock.Lock()
	defer d.lock.Unlock()

	// Walk the parent relation breadth-first, deduplicating as we go so that
	// diamond-shaped relations don't yield duplicates.
	seen := map[string]bool{t.name: true}
	result := []*Type{t}
	queue := append([]string(nil), t.parents...)
	for len(queue) > 0 {
		name := queue[0]
		queue = queue[1:]
		if seen[name] {
			continue
		}
		seen[name] = true
		parent := d.lookupLocked(name)
		result = append(result, parent)
		queue = append(queue, parent.parents...)
	}
	return result
}
