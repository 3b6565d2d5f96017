package taxonomy

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Resolver turns typed activity names into activity ids.
type Resolver struct {
	creator *Creator
	logger  *slog.Logger
}

// NewResolver creates a resolver that falls back to creator for unknown names.
func NewResolver(creator *Creator, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Resolver{creator: creator, logger: logger}
}

// Resolve returns the id for raw. A single name is looked up anywhere in the
// tree and created interactively when missing. A slash-delimited path is
// created without asking, like mkdir -p, and must add at least one node.
func (r *Resolver) Resolve(ctx context.Context, tree *Tree, raw string) (string, error) {
	segments, err := splitPath(raw)
	if err != nil {
		return "", fmt.Errorf("%q: %w", raw, err)
	}

	if len(segments) == 1 {
		m, err := tree.Find(ByName(segments[0]))
		if err == nil {
			return m.ID, nil
		}
		if !errors.Is(err, ErrNotFound) {
			return "", err
		}
		created, err := r.creator.Create(ctx, tree, segments[0])
		if err != nil {
			return "", err
		}
		return created.ID, nil
	}

	if err := materialize(tree, segments); err != nil {
		return "", err
	}

	last := segments[len(segments)-1]
	m, err := tree.Find(ByName(last))
	if err != nil {
		return "", fmt.Errorf("%w: created %q but cannot find %q", ErrInvariantViolation, raw, last)
	}
	r.logger.Debug("activity path created", "path", strings.Join(segments, "/"), "id", m.ID)
	return m.ID, nil
}

func materialize(tree *Tree, segments []string) error {
	parentID := ""
	for i, seg := range segments {
		n, ok := tree.Child(parentID, seg)
		if !ok {
			_, err := tree.InsertPath(parentID, segments[i:])
			return err
		}
		rest := segments[i+1:]
		if len(rest) == 0 {
			return fmt.Errorf("activity %q: %w", strings.Join(segments, "/"), ErrAlreadyExists)
		}
		if n.IsLeaf() {
			_, err := tree.InsertPath(n.ID, rest)
			return err
		}
		parentID = n.ID
	}
	return nil
}
