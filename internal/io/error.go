package io

import "errors"

var (
	// ErrFailedToCreateDirectory is an error that occurs when a directory, or
	// any of its missing parents, could not be created.
	ErrFailedToCreateDirectory = errors.New("failed to create directory")

	// ErrFailedToWriteFile is an error that occurs when content could not be
	// written to a file. It wraps the more specific cause of the failure.
	ErrFailedToWriteFile = errors.New("failed to write file")

	// ErrFileNotFound is an error that occurs when a file to be read does not
	// exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrFileUnreadable is an error that occurs when a file exists but cannot
	// be read, e.g. due to permissions or because it is a directory.
	ErrFileUnreadable = errors.New("file is unreadable")

	// ErrInvalidEncoding is an error that occurs when content is not valid
	// UTF-8 text.
	ErrInvalidEncoding = errors.New("content is not valid utf-8")

	// ErrEmptyPath is an error that occurs when a write is requested without
	// a destination path.
	ErrEmptyPath = errors.New("destination path is empty")

	// ErrNotEnoughSpace is an error that occurs when there is not enough free
	// space on the destination's file system to take the content.
	ErrNotEnoughSpace = errors.New("not enough free space on destination")

	// ErrHashMismatch is an error that occurs when the content read back from
	// a written file does not match the content that was written, this
	// usually means that there are underlying storage issues.
	ErrHashMismatch = errors.New("hash mismatch")
)
