package fichier

import (
	"os"

	"github.com/desertwitch/fichier/internal/schema"
	"golang.org/x/sys/unix"
)

// File is an open file handle as returned by [Host.OpenFile].
type File = schema.File

// OSHost is the host file-system of the operating system.
type OSHost = schema.Host

// MemoryHost is a host file-system held entirely in memory. Its working
// directory, home directory and reported free space can be set, which makes
// it suitable for tests and dry runs.
type MemoryHost = schema.Memory

// Host is the file-system that a [Fichier] operates on.
type Host interface {
	Stat(name string) (os.FileInfo, error)
	ReadDir(name string) ([]os.DirEntry, error)
	ReadFile(name string) ([]byte, error)
	MkdirAll(path string, perm os.FileMode) error
	OpenFile(name string, flag int, perm os.FileMode) (File, error)
	Rename(oldpath, newpath string) error
	Remove(name string) error
	Getwd() (string, error)
	UserHomeDir() (string, error)
	Statfs(path string, buf *unix.Statfs_t) error
}

// NewOSHost returns a pointer to a new [OSHost].
func NewOSHost() *OSHost {
	return schema.NewHost()
}

// NewMemoryHost returns a pointer to a new empty [MemoryHost].
func NewMemoryHost() *MemoryHost {
	return schema.NewMemory()
}
