// Package pathing derives destination paths for titled content.
package pathing

import (
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// IndexFileName is the name of the file that titled content is written to.
const IndexFileName = "index.html"

//nolint:gochecknoglobals
var (
	// separatorReplacer replaces spaces and path separators with hyphens.
	separatorReplacer = strings.NewReplacer(" ", "-", "/", "-")

	// scandsReplacer replaces the Scandinavian vowels with their unaccented
	// equivalents.
	scandsReplacer = strings.NewReplacer(
		"ä", "a",
		"Ä", "A",
		"ö", "o",
		"Ö", "O",
	)
)

// TitleToName transforms a human-readable title into a directory name. The
// title is lower-cased, spaces and slashes are replaced with hyphens. With
// transliterate, the letters ä, Ä, ö and Ö are additionally replaced with a,
// A, o and O.
//
// The title is brought into Unicode normalization form C beforehand, so that
// decomposed letters (e.g. "a" followed by a combining diaeresis) are treated
// the same as their precomposed forms. Applying the transformation to its own
// output returns the output unchanged.
func TitleToName(title string, transliterate bool) string {
	name := norm.NFC.String(title)
	name = strings.ToLower(name)
	name = separatorReplacer.Replace(name)

	if transliterate {
		name = scandsReplacer.Replace(name)
	}

	return name
}

// TitledPath returns the path that content with a title is written to within
// an output directory: output/<name>/[IndexFileName], with the name as
// returned by [TitleToName]. An [ErrInvalidTitle] is returned for names that
// would not be a subdirectory of output ("", "." and "..").
func TitledPath(output string, title string, transliterate bool) (string, error) {
	name := TitleToName(title, transliterate)

	switch name {
	case "", ".", "..":
		return "", fmt.Errorf("(pathing-titled) %w: %q", ErrInvalidTitle, title)
	}

	return filepath.Join(output, name, IndexFileName), nil
}
