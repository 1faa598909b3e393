// Package mime provides content type classification for filesystem nodes.
// Content types are interned records owned by their database, so two
// references to the same type are always pointer-equal and descriptors can
// compare them by identity.
package mime
