package fichier

import (
	"github.com/desertwitch/fichier/internal/filesystem"
	"github.com/desertwitch/fichier/internal/io"
)

//nolint:gochecknoglobals
var (
	// ErrFailedToCreateDirectory occurs when a directory could not be created.
	ErrFailedToCreateDirectory = io.ErrFailedToCreateDirectory

	// ErrFailedToWriteFile occurs when content could not be written to a file.
	ErrFailedToWriteFile = io.ErrFailedToWriteFile

	// ErrDirectoryNotFound occurs when a path is not an existing directory.
	// It is also the only error of [Fichier.GetAllFiles].
	ErrDirectoryNotFound = filesystem.ErrDirectoryNotFound

	// ErrDirectoryReadFailure occurs when an existing directory could not be
	// read.
	ErrDirectoryReadFailure = filesystem.ErrDirectoryReadFailure

	// ErrFileNotFound occurs when a file to read does not exist.
	ErrFileNotFound = io.ErrFileNotFound

	// ErrFileUnreadable occurs when an existing file could not be read.
	ErrFileUnreadable = io.ErrFileUnreadable

	// ErrInvalidEncoding occurs when content is not valid UTF-8.
	ErrInvalidEncoding = io.ErrInvalidEncoding
)
