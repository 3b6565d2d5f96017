package timeline

import (
	"context"
	"time"

	"github.com/ganot/lifelog/internal/domain/taxonomy"
)

// TreeRepository loads and stores a user's activity tree.
type TreeRepository interface {
	LoadTree(ctx context.Context, user string) (*taxonomy.Tree, error)
	SaveTree(ctx context.Context, user string, tree *taxonomy.Tree) error
}

// EntryRepository provides persistence for timeline entries.
type EntryRepository interface {
	Create(ctx context.Context, user string, entry *Entry) error
	Current(ctx context.Context, user string) (*Entry, error)
	Finish(ctx context.Context, user string, id int64, endedAt time.Time) error
	ListDay(ctx context.Context, user, day string) ([]Entry, error)
	Days(ctx context.Context, user string) ([]string, error)
}

// Resolver maps a typed activity name to an activity id, creating nodes as needed.
type Resolver interface {
	Resolve(ctx context.Context, tree *taxonomy.Tree, raw string) (string, error)
}
