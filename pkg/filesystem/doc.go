// Package filesystem provides low-level filesystem primitives shared by the
// descriptor machinery: raw stat modes, execute-access probing, atomic file
// replacement, and per-platform stat timestamp extraction.
package filesystem
