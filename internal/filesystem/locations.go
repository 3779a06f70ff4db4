package filesystem

import (
	"fmt"
	"log/slog"
	"path/filepath"
)

// DocumentsDirectoryName is the name of the per-user documents directory.
const DocumentsDirectoryName = "Documents"

// GetCurrentDirectory returns the working directory of the process. If the
// host cannot report it, "." is returned instead.
func (f *Handler) GetCurrentDirectory() string {
	dir, err := f.osHandler.Getwd()
	if err != nil {
		slog.Warn("Failed to get working directory: falling back to relative.",
			"err", err,
		)

		return "."
	}

	return dir
}

// GetDocumentsDirectory returns the conventional per-user documents directory,
// which is [DocumentsDirectoryName] inside the home directory. It is not
// checked for existence.
func (f *Handler) GetDocumentsDirectory() (string, error) {
	home, err := f.osHandler.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("(fs-documents) failed to get home: %w", err)
	}

	return filepath.Join(home, DocumentsDirectoryName), nil
}
