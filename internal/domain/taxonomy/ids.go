package taxonomy

import "github.com/google/uuid"

// NewID returns a random identifier for a new activity node.
func NewID() string {
	return uuid.NewString()
}
