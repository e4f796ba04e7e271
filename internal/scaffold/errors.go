package scaffold

import "errors"

var (
	// ErrInvalidDestination means the destination does not exist, is not a
	// directory, or cannot be written to.
	ErrInvalidDestination = errors.New("invalid destination")

	// ErrFileExists means a target file exists and overwriting was not allowed.
	ErrFileExists = errors.New("file already exists")
)
