package filesystem

import (
	"fmt"
	"path/filepath"
	"strings"
)

// DirectoryExists checks if a path currently exists and is a directory.
// Symbolic links are followed. Any error of the host, including the path not
// existing, results in false.
func (f *Handler) DirectoryExists(path string) bool {
	info, err := f.osHandler.Stat(path)
	if err != nil {
		return false
	}

	return info.IsDir()
}

// ReadDirectory returns the immediate entries (files and subdirectories) of
// a directory, joined onto the given path. Hidden entries are excluded and the
// order is the one provided by the host. An [ErrDirectoryNotFound] is returned
// if the path is not an existing directory, an [ErrDirectoryReadFailure] if the
// host failed to read the existing directory.
func (f *Handler) ReadDirectory(path string) ([]string, error) {
	if !f.DirectoryExists(path) {
		return nil, fmt.Errorf("(fs-readdir) %w: %s", ErrDirectoryNotFound, path)
	}

	entries, err := f.osHandler.ReadDir(path)
	if err != nil {
		return nil, fmt.Errorf("(fs-readdir) %w: %w", ErrDirectoryReadFailure, err)
	}

	paths := make([]string, 0, len(entries))
	for _, entry := range entries {
		if isHidden(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(path, entry.Name()))
	}

	return paths, nil
}

// isHidden is a helper function checking if an entry name is hidden by the
// Unix convention of a leading dot.
func isHidden(name string) bool {
	return strings.HasPrefix(name, ".")
}
