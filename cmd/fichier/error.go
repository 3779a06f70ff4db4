package main

import "errors"

var (
	// ErrUnknownCommand occurs when the given command does not exist.
	ErrUnknownCommand = errors.New("unknown command")

	// ErrMissingArgument occurs when a command is missing a required argument.
	ErrMissingArgument = errors.New("missing argument")
)
