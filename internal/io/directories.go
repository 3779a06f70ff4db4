package io

import (
	"fmt"
)

// CreateDirectory creates a directory along with any missing parents. It is
// not an error if the directory already exists.
func (i *Handler) CreateDirectory(path string) error {
	if err := i.osHandler.MkdirAll(path, DirectoryPerms); err != nil {
		return fmt.Errorf("(io-mkdir) %w: %w", ErrFailedToCreateDirectory, err)
	}

	return nil
}
