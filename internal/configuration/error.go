package configuration

import "errors"

// ErrInvalidValue is an error that occurs when a configuration key holds a
// value that cannot be parsed into the type of its setting.
var ErrInvalidValue = errors.New("invalid configuration value")
