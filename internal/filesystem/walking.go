package filesystem

import (
	"errors"
	"fmt"
	"log/slog"
)

// GetAllFiles returns every file that is reachable from the given root
// directories by descending into all subdirectories, without a depth limit.
//
// The roots are expanded breadth-first: each expanded directory has its files
// appended to the result and its subdirectories appended to the back of the
// queue of directories still to be expanded. The result is in that order of
// discovery. An empty list of roots returns an empty result.
//
// Every root needs to be an existing directory. If any directory cannot be
// listed, the enumeration is aborted with an [ErrDirectoryNotFound] and no
// partial result is returned. Symbolic links to directories are followed and
// cycles are not detected.
func (f *Handler) GetAllFiles(roots []string) ([]string, error) {
	frontier := make([]string, len(roots))
	copy(frontier, roots)

	files := []string{}
	expanded := 0

	for len(frontier) > 0 {
		head := frontier[0]
		frontier = frontier[1:]

		entries, err := f.ReadDirectory(head)
		if err != nil {
			if errors.Is(err, ErrDirectoryNotFound) {
				return nil, fmt.Errorf("(fs-allfiles) %w", err)
			}

			return nil, fmt.Errorf("(fs-allfiles) %w: %s (%v)", ErrDirectoryNotFound, head, err) //nolint:errorlint
		}
		expanded++

		for _, entry := range entries {
			if f.DirectoryExists(entry) {
				frontier = append(frontier, entry)
			} else {
				files = append(files, entry)
			}
		}
	}

	slog.Debug("Enumerated files:",
		"roots", len(roots),
		"dirs", expanded,
		"files", len(files),
	)

	return files, nil
}
