package io

import (
	"errors"
	"fmt"
	"io/fs"
	"unicode/utf8"
)

// ReadFile returns the content of a file as text. The failures are
// distinguished into [ErrFileNotFound], [ErrFileUnreadable] and
// [ErrInvalidEncoding].
func (i *Handler) ReadFile(path string) (string, error) {
	data, err := i.osHandler.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("(io-read) %w: %s", ErrFileNotFound, path)
		}

		return "", fmt.Errorf("(io-read) %w: %w", ErrFileUnreadable, err)
	}

	if !utf8.Valid(data) {
		return "", fmt.Errorf("(io-read) %w: %s", ErrInvalidEncoding, path)
	}

	return string(data), nil
}

// ReadFileContent returns the content of a file as text. Any failure, be it a
// missing file, an unreadable file or content that is not UTF-8, results in an
// empty string and false.
func (i *Handler) ReadFileContent(path string) (string, bool) {
	content, err := i.ReadFile(path)
	if err != nil {
		return "", false
	}

	return content, true
}
