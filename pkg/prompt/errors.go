package prompt

import "errors"

var (
	// ErrAborted signals the user aborted input (e.g., Ctrl+C).
	ErrAborted = errors.New("prompt: aborted")
	// ErrNoStyles is returned when a style must be picked from an empty list.
	ErrNoStyles = errors.New("prompt: no styles to choose from")
)
