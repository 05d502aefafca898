package domain

import "errors"

var (
	// ErrInvalidGrid rejects malformed grid input at construction boundaries.
	ErrInvalidGrid = errors.New("invalid grid")
	// ErrUnsolvable reports a well-formed grid with no completion.
	ErrUnsolvable = errors.New("unsolvable grid")
	// ErrNoHint reports that the current grid already matches its solution.
	ErrNoHint = errors.New("no hint available")
	// ErrNotFound reports a missing puzzle or saved game in storage.
	ErrNotFound = errors.New("not found")
)
