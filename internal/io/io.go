// Package io implements the writing operations on a host file-system:
// creating directories and writing text content to files, as well as reading
// text content back from files.
package io

import (
	"os"

	"github.com/desertwitch/fichier/internal/schema"
)

const (
	// DirectoryPerms are the permissions of newly created directories.
	DirectoryPerms os.FileMode = 0o755

	// FilePerms are the permissions of newly written files.
	FilePerms os.FileMode = 0o644

	// TempFileSuffix is the suffix of the hidden temporary files that content
	// is written to before being renamed to its destination.
	TempFileSuffix = ".fichier"
)

type fsProvider interface {
	DirectoryExists(path string) bool
	HasEnoughFreeSpace(path string, minFree uint64, fileSize uint64) (bool, error)
}

type osProvider interface {
	MkdirAll(path string, perm os.FileMode) error
	OpenFile(name string, flag int, perm os.FileMode) (schema.File, error)
	ReadFile(name string) ([]byte, error)
	Remove(name string) error
	Rename(oldpath, newpath string) error
}

// Handler is the principal implementation for the IO functions.
type Handler struct {
	fsHandler    fsProvider
	osHandler    osProvider
	minFreeSpace uint64
}

// NewHandler returns a pointer to a new IO [Handler]. If minFreeSpace is not
// zero, writes are refused that would leave no more than minFreeSpace bytes
// free on the destination.
func NewHandler(fsHandler fsProvider, osHandler osProvider, minFreeSpace uint64) *Handler {
	return &Handler{
		fsHandler:    fsHandler,
		osHandler:    osHandler,
		minFreeSpace: minFreeSpace,
	}
}
