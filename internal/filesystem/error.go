package filesystem

import "errors"

var (
	// ErrDirectoryNotFound is an error that occurs when a path that was
	// expected to be an existing directory is not one. This includes paths
	// that do not exist and paths that exist as a file.
	ErrDirectoryNotFound = errors.New("directory not found")

	// ErrDirectoryReadFailure is an error that occurs when a path is an
	// existing directory, but its entries cannot be read from the host.
	ErrDirectoryReadFailure = errors.New("failed to read directory")

	// ErrInvalidStats is an error that occurs when the host reports disk
	// usage statistics that cannot be used (e.g. a total size of zero).
	ErrInvalidStats = errors.New("invalid disk usage stats")
)
