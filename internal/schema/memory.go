package schema

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"golang.org/x/sys/unix"
)

const (
	// MemoryDefaultCapacity is the capacity in bytes that a new [Memory] host
	// reports to [Memory.Statfs].
	MemoryDefaultCapacity = 1 << 40

	memoryBlockSize = 4096
)

// Memory is an in-memory host file-system backed by an [afero.MemMapFs]. It
// implements the same methods as [Host] and is meant for tests and dry runs.
type Memory struct {
	fs   afero.Fs
	cwd  string
	home string

	// Capacity and FreeSpace (in bytes) are reported through
	// [Memory.Statfs]. They are not decreased by writes.
	Capacity  uint64
	FreeSpace uint64
}

// NewMemory returns a pointer to a new empty [Memory] host. The working
// directory is "/" and the home directory is "/home".
func NewMemory() *Memory {
	return &Memory{
		fs:        afero.NewMemMapFs(),
		cwd:       "/",
		home:      "/home",
		Capacity:  MemoryDefaultCapacity,
		FreeSpace: MemoryDefaultCapacity,
	}
}

// Fs returns the underlying [afero.Fs], e.g. for seeding test fixtures.
func (m *Memory) Fs() afero.Fs {
	return m.fs
}

// SetWorkingDirectory sets the path returned by [Memory.Getwd]. It is
// resolved against the previous working directory when relative.
func (m *Memory) SetWorkingDirectory(path string) {
	m.cwd = m.resolve(path)
}

// SetHomeDirectory sets the path returned by [Memory.UserHomeDir].
func (m *Memory) SetHomeDirectory(path string) {
	m.home = m.resolve(path)
}

func (m *Memory) resolve(path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}

	return filepath.Join(m.cwd, path)
}

// Stat returns the [os.FileInfo] for a path.
func (m *Memory) Stat(name string) (os.FileInfo, error) {
	return m.fs.Stat(m.resolve(name))
}

// ReadDir returns the entries of a directory sorted by name.
func (m *Memory) ReadDir(name string) ([]os.DirEntry, error) {
	infos, err := afero.ReadDir(m.fs, m.resolve(name))
	if err != nil {
		return nil, err
	}

	entries := make([]os.DirEntry, 0, len(infos))
	for _, info := range infos {
		entries = append(entries, fs.FileInfoToDirEntry(info))
	}

	return entries, nil
}

// ReadFile returns the content of a file.
func (m *Memory) ReadFile(name string) ([]byte, error) {
	path := m.resolve(name)

	info, err := m.fs.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, &fs.PathError{Op: "read", Path: path, Err: unix.EISDIR}
	}

	return afero.ReadFile(m.fs, path)
}

// MkdirAll creates a directory and all missing parents.
func (m *Memory) MkdirAll(path string, perm os.FileMode) error {
	return m.fs.MkdirAll(m.resolve(path), perm)
}

// OpenFile opens a file with the given flags and permissions.
func (m *Memory) OpenFile(name string, flag int, perm os.FileMode) (File, error) {
	f, err := m.fs.OpenFile(m.resolve(name), flag, perm)
	if err != nil {
		return nil, err
	}

	return f, nil
}

// Rename renames a file, replacing the destination if it exists.
func (m *Memory) Rename(oldpath, newpath string) error {
	return m.fs.Rename(m.resolve(oldpath), m.resolve(newpath))
}

// Remove removes a file or an empty directory.
func (m *Memory) Remove(name string) error {
	return m.fs.Remove(m.resolve(name))
}

// Getwd returns the working directory.
func (m *Memory) Getwd() (string, error) {
	return m.cwd, nil
}

// UserHomeDir returns the home directory.
func (m *Memory) UserHomeDir() (string, error) {
	return m.home, nil
}

// Statfs fills buf with the configured [Memory.Capacity] and
// [Memory.FreeSpace]. The path needs to exist.
func (m *Memory) Statfs(path string, buf *unix.Statfs_t) error {
	if _, err := m.fs.Stat(m.resolve(path)); err != nil {
		return &fs.PathError{Op: "statfs", Path: path, Err: unix.ENOENT}
	}

	*buf = unix.Statfs_t{
		Bsize:  memoryBlockSize,
		Blocks: m.Capacity / memoryBlockSize,
		Bfree:  m.FreeSpace / memoryBlockSize,
		Bavail: m.FreeSpace / memoryBlockSize,
	}

	return nil
}
