package pipes

import "errors"

var (
	// ErrNoStart indicates the input has no S tile.
	ErrNoStart = errors.New("pipes: no start tile")
	// ErrMultipleStarts indicates the input has more than one S tile.
	ErrMultipleStarts = errors.New("pipes: more than one start tile")
	// ErrNoLoop indicates no neighbor of the start connects back to it.
	ErrNoLoop = errors.New("pipes: no pipe connects to the start tile")
	// ErrBrokenLoop indicates the walk from the start never closes.
	ErrBrokenLoop = errors.New("pipes: loop does not close")
)
