package user

import "time"

// User owns one activity tree and one timeline.
type User struct {
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}
