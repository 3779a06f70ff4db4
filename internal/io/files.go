package io

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"unicode/utf8"

	"github.com/desertwitch/fichier/internal/pathing"
	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/zeebo/blake3"
)

// Write writes text content to a file, creating any missing parent
// directories first. An existing file is replaced as a whole, so that the
// destination holds either the previous or the new content at any time. The
// destination path is returned on success. Any failure is returned as an
// [ErrFailedToWriteFile], wrapping the cause.
func (i *Handler) Write(content string, path string) (string, error) {
	if err := i.writeFile(content, path); err != nil {
		return "", fmt.Errorf("(io-write) %w: %w", ErrFailedToWriteFile, err)
	}

	slog.Debug("Wrote file:",
		"path", path,
		"size", humanize.Bytes(uint64(len(content))),
	)

	return path, nil
}

// WriteTitled writes text content to the index file of a directory named
// after a title, within an output directory. See [pathing.TitledPath] for how
// the destination is derived; otherwise it behaves like [Handler.Write].
func (i *Handler) WriteTitled(content string, title string, output string, transliterate bool) (string, error) {
	path, err := pathing.TitledPath(output, title, transliterate)
	if err != nil {
		return "", fmt.Errorf("(io-writetitled) %w: %w", ErrFailedToWriteFile, err)
	}

	return i.Write(content, path)
}

func (i *Handler) writeFile(content string, path string) error {
	if path == "" {
		return ErrEmptyPath
	}

	if !utf8.ValidString(content) {
		return ErrInvalidEncoding
	}

	dir := filepath.Dir(path)
	if !i.fsHandler.DirectoryExists(dir) {
		if err := i.osHandler.MkdirAll(dir, DirectoryPerms); err != nil {
			return fmt.Errorf("failed to create parent directories: %w", err)
		}
	}

	if i.minFreeSpace > 0 {
		if err := i.checkFreeSpace(dir, uint64(len(content))); err != nil {
			return err
		}
	}

	if err := i.replaceFile([]byte(content), path); err != nil {
		return err
	}

	return nil
}

// checkFreeSpace refuses a write that would leave no more than the minimum
// free space on the file system of dir. Hosts that cannot report usable
// statistics are not checked.
func (i *Handler) checkFreeSpace(dir string, size uint64) error {
	enough, err := i.fsHandler.HasEnoughFreeSpace(dir, i.minFreeSpace, size)
	if err != nil {
		slog.Warn("Failed to check free space: writing without check.",
			"path", dir,
			"err", err,
		)

		return nil
	}

	if !enough {
		return fmt.Errorf("%w: %s", ErrNotEnoughSpace, dir)
	}

	return nil
}

// replaceFile writes data to a hidden temporary file in the destination's
// directory, checks that what was written matches the data and then renames
// the temporary file to the destination. The temporary file is removed if any
// step fails.
func (i *Handler) replaceFile(data []byte, path string) error {
	var writeComplete bool

	tmpPath := filepath.Join(filepath.Dir(path), "."+uuid.NewString()+TempFileSuffix)

	tmpFile, err := i.osHandler.OpenFile(tmpPath, os.O_CREATE|os.O_WRONLY|os.O_EXCL, FilePerms)
	if err != nil {
		return fmt.Errorf("failed to open temporary file %s: %w", tmpPath, err)
	}
	defer func() {
		if !writeComplete {
			tmpFile.Close()              //nolint:errcheck
			i.osHandler.Remove(tmpPath) //nolint:errcheck
		}
	}()

	hasher := blake3.New()
	multiWriter := io.MultiWriter(tmpFile, hasher)

	if _, err := io.Copy(multiWriter, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tmpFile.Sync(); err != nil {
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := i.verifyChecksum(tmpPath, hasher.Sum(nil)); err != nil {
		return err
	}

	if err := i.osHandler.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file to destination file: %w", err)
	}

	writeComplete = true

	return nil
}

// verifyChecksum reads back a written file and compares its BLAKE3 checksum
// with the checksum of the content that was meant to be written.
func (i *Handler) verifyChecksum(path string, expected []byte) error {
	written, err := i.osHandler.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read back temporary file: %w", err)
	}

	actual := blake3.Sum256(written)

	if !bytes.Equal(expected, actual[:]) {
		return fmt.Errorf("%w: %s (content) != %s (written)",
			ErrHashMismatch,
			hex.EncodeToString(expected),
			hex.EncodeToString(actual[:]),
		)
	}

	return nil
}
