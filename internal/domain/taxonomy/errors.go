package taxonomy

import "errors"

var (
	// ErrNotFound indicates no activity matched a lookup.
	ErrNotFound = errors.New("activity not found")
	// ErrInvalidSelector indicates a lookup was given both or neither of name and id.
	ErrInvalidSelector = errors.New("exactly one of name or id must be given")
	// ErrInvalidName indicates an empty or malformed activity name or path segment.
	ErrInvalidName = errors.New("invalid activity name")
	// ErrInvalidChoice indicates the operator picked an option that does not exist.
	ErrInvalidChoice = errors.New("invalid choice")
	// ErrAlreadyExists indicates an explicit path that is already fully present.
	ErrAlreadyExists = errors.New("activity already exists")
	// ErrDuplicateID indicates an id that is already used in the tree.
	ErrDuplicateID = errors.New("duplicate activity id")
	// ErrDuplicateName indicates a sibling with the same name already exists.
	ErrDuplicateName = errors.New("duplicate activity name at this level")
	// ErrInvariantViolation indicates the tree lost a node it just created.
	ErrInvariantViolation = errors.New("activity tree invariant violated")
	// ErrUserCancelled indicates the operator declined to create an activity.
	ErrUserCancelled = errors.New("user cancelled activity creation")
)
