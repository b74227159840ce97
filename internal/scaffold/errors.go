package scaffold

import "errors"

// Sentinel errors returned by the Generator. All of them are fatal:
// the run aborts with a non-zero exit and nothing is rolled back.
var (
	// ErrInvalidName indicates an empty project name or one containing whitespace.
	ErrInvalidName = errors.New("invalid project name")

	// ErrCreateDirectory indicates the project directory could not be created.
	ErrCreateDirectory = errors.New("create project directory")
)
