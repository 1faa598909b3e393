// Package vfs provides the file metadata descriptor at the heart of the
// library: a reference-counted record of a filesystem node's POSIX
// attributes, resolved content type, executability, and launcher display
// hints, together with the launcher-aware rename and execute operations that
// consume it.
package vfs
