package timeline

import (
	"time"

	"github.com/ganot/lifelog/internal/domain/taxonomy"
)

// DayFormat is the layout of the UTC day an entry belongs to.
const DayFormat = "2006-01-02"

// Entry is one stretch of time spent on an activity.
type Entry struct {
	ID         int64      `json:"id" yaml:"id"`
	User       string     `json:"user" yaml:"-"`
	Day        string     `json:"day" yaml:"day"`
	ActivityID string     `json:"activity_id" yaml:"activity_id"`
	Name       string     `json:"name" yaml:"name"`
	StartedAt  time.Time  `json:"started_at" yaml:"start"`
	EndedAt    *time.Time `json:"ended_at,omitempty" yaml:"end,omitempty"`
	// Previous marks the copy recorded on the day an overnight activity ended.
	Previous bool `json:"previous,omitempty" yaml:"previous,omitempty"`
}

// Ongoing reports whether the entry has not been finished.
func (e Entry) Ongoing() bool {
	return e.EndedAt == nil
}

// Finished describes an activity that was just ended.
type Finished struct {
	Entry   Entry         `json:"entry"`
	Elapsed time.Duration `json:"elapsed"`
}

// Status describes what a user is currently doing.
type Status struct {
	User     string          `json:"user"`
	Current  *Entry          `json:"current,omitempty"`
	Activity *taxonomy.Match `json:"activity,omitempty"`
	Elapsed  time.Duration   `json:"elapsed"`
}
