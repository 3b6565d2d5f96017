package timeline

import "errors"

var (
	// ErrNoOngoingActivity indicates there is nothing to finish.
	ErrNoOngoingActivity = errors.New("no ongoing activity to finish")
	// ErrMalformedTimeline indicates an entry refers to an activity missing from the tree.
	ErrMalformedTimeline = errors.New("malformed timeline")
	// ErrInvalidInput indicates invalid timeline input.
	ErrInvalidInput = errors.New("invalid timeline input")
)
