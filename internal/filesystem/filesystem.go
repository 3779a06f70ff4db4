// Package filesystem implements the read-only queries on a host file-system:
// classifying paths as directories, listing directory entries, enumerating all
// files below a set of root directories and gathering disk usage statistics.
package filesystem

import (
	"os"

	"golang.org/x/sys/unix"
)

type osProvider interface {
	Getwd() (dir string, err error)
	ReadDir(name string) ([]os.DirEntry, error)
	Stat(name string) (os.FileInfo, error)
	UserHomeDir() (string, error)
}

type unixProvider interface {
	Statfs(path string, buf *unix.Statfs_t) error
}

// Handler is the principal implementation for the filesystem queries.
type Handler struct {
	osHandler   osProvider
	unixHandler unixProvider
}

// NewHandler returns a pointer to a new filesystem [Handler].
func NewHandler(osHandler osProvider, unixHandler unixProvider) *Handler {
	return &Handler{
		osHandler:   osHandler,
		unixHandler: unixHandler,
	}
}
