// Package fichier is a convenience layer over a host file-system. It creates
// directories, writes text content to files (creating any missing parent
// directories), reads text content back, lists directories and enumerates all
// files below a set of root directories.
//
// A [Fichier] holds no mutable state and is safe for concurrent use.
package fichier

import (
	"github.com/desertwitch/fichier/internal/filesystem"
	"github.com/desertwitch/fichier/internal/io"
)

// Option configures a [Fichier].
type Option func(*options)

type options struct {
	minFreeSpace uint64
}

// WithMinFreeSpace refuses writes to file-systems with no more than the given
// amount of bytes free. File-systems that cannot report their free space are
// written to without the check.
func WithMinFreeSpace(bytes uint64) Option {
	return func(o *options) {
		o.minFreeSpace = bytes
	}
}

// Fichier is the principal implementation of the file-system operations.
type Fichier struct {
	fsHandler *filesystem.Handler
	ioHandler *io.Handler
}

// New returns a pointer to a new [Fichier] operating on the host file-system
// of the operating system.
func New(opts ...Option) *Fichier {
	return NewWithHost(NewOSHost(), opts...)
}

// NewWithHost returns a pointer to a new [Fichier] operating on the given
// [Host], such as a [MemoryHost].
func NewWithHost(host Host, opts ...Option) *Fichier {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	fsHandler := filesystem.NewHandler(host, host)

	return &Fichier{
		fsHandler: fsHandler,
		ioHandler: io.NewHandler(fsHandler, host, o.minFreeSpace),
	}
}

// CreateDirectory creates a directory along with any missing parents. It
// succeeds if the directory already exists, otherwise any failure is returned
// as [ErrFailedToCreateDirectory].
func (f *Fichier) CreateDirectory(location string) error {
	return f.ioHandler.CreateDirectory(location) //nolint:wrapcheck
}

// Write writes text content to a file, creating any missing parent
// directories first, and returns the location of the file. An existing file
// is replaced atomically. Any failure is returned as [ErrFailedToWriteFile].
func (f *Fichier) Write(content string, location string) (string, error) {
	return f.ioHandler.Write(content, location) //nolint:wrapcheck
}

// WriteTitled writes text content to "<output>/<name>/index.html", where the
// name is the lower-cased title with spaces and slashes replaced by dashes. If
// transliterate is set, "ä" and "ö" are replaced by "a" and "o" in the name.
// It otherwise behaves like [Fichier.Write].
func (f *Fichier) WriteTitled(content string, title string, output string, transliterate bool) (string, error) {
	return f.ioHandler.WriteTitled(content, title, output, transliterate) //nolint:wrapcheck
}

// ReadFileContent returns the text content of a file. It returns false if the
// file does not exist, cannot be read or does not hold valid UTF-8.
func (f *Fichier) ReadFileContent(location string) (string, bool) {
	return f.ioHandler.ReadFileContent(location)
}

// ReadFile returns the text content of a file, or one of [ErrFileNotFound],
// [ErrFileUnreadable] or [ErrInvalidEncoding].
func (f *Fichier) ReadFile(location string) (string, error) {
	return f.ioHandler.ReadFile(location) //nolint:wrapcheck
}

// ReadDirectory returns the locations of the non-hidden immediate children of
// a directory. It returns [ErrDirectoryNotFound] if the location is not an
// existing directory and [ErrDirectoryReadFailure] if it cannot be read.
func (f *Fichier) ReadDirectory(location string) ([]string, error) {
	return f.fsHandler.ReadDirectory(location) //nolint:wrapcheck
}

// DirectoryExists returns true if the location is an existing directory.
func (f *Fichier) DirectoryExists(location string) bool {
	return f.fsHandler.DirectoryExists(location)
}

// GetCurrentDirectory returns the working directory, or "." if the host
// cannot report it.
func (f *Fichier) GetCurrentDirectory() string {
	return f.fsHandler.GetCurrentDirectory()
}

// GetDocumentsDirectory returns the documents directory of the current user.
func (f *Fichier) GetDocumentsDirectory() (string, error) {
	return f.fsHandler.GetDocumentsDirectory() //nolint:wrapcheck
}

// GetAllFiles returns the locations of all files below the given directories,
// in breadth-first order. Hidden entries are skipped. Any directory that
// cannot be listed fails the whole call with [ErrDirectoryNotFound].
func (f *Fichier) GetAllFiles(locations []string) ([]string, error) {
	return f.fsHandler.GetAllFiles(locations) //nolint:wrapcheck
}
