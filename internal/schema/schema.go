// Package schema provides the principal schematics for all other packages. It
// defines the host file-system handle types and provides the implementations
// that the other packages are wired against: one backed by the (Unix-based)
// operating system and one held entirely in memory. The package serves as a
// foundational layer for filesystem interactions throughout the codebase.
package schema

import "io"

// File describes the methods an open file handle needs to have.
type File interface {
	io.Reader
	io.Writer
	io.Closer
	Name() string
	Sync() error
}
