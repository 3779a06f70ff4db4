package pathing

import "errors"

// ErrInvalidTitle is an error that occurs when a title does not transform
// into a usable directory name.
var ErrInvalidTitle = errors.New("invalid title")
