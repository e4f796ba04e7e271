package prompt

import (
	"errors"
	"fmt"
)

var (
	// ErrNonInteractive is returned by an Asker when no terminal is attached.
	ErrNonInteractive = errors.New("no interactive terminal available")

	// ErrAborted is returned when the operator cancels a prompt.
	ErrAborted = errors.New("prompt aborted by user")
)

// UnresolvableError reports a prompt that had no override and could not be
// asked interactively.
type UnresolvableError struct {
	Key string
	Err error
}

func (e *UnresolvableError) Error() string {
	return fmt.Sprintf("cannot resolve %q: %v (pass --%s to answer it non-interactively)", e.Key, e.Err, e.Key)
}

func (e *UnresolvableError) Unwrap() error {
	return e.Err
}
