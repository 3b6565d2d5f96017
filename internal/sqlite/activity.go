package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ganot/lifelog/internal/domain/taxonomy"
	"github.com/ganot/lifelog/internal/domain/timeline"
	"github.com/ganot/lifelog/internal/repository"
)

var _ timeline.TreeRepository = (*ActivityRepository)(nil)

// ActivityRepository stores activity trees, one row per node.
type ActivityRepository struct {
	db *DB
}

// NewActivityRepository creates a new ActivityRepository
func NewActivityRepository(db *DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// LoadTree reads the user's activity tree.
func (r *ActivityRepository) LoadTree(ctx context.Context, user string) (*taxonomy.Tree, error) {
	query := `
		SELECT id, parent_id, name
		FROM activities
		WHERE user_name = ?
		ORDER BY position, rowid
	`

	rows, err := r.db.QueryContext(ctx, query, user)
	if err != nil {
		return nil, fmt.Errorf("failed to load activities: %w", err)
	}
	defer rows.Close()

	var nodes []taxonomy.Node
	for rows.Next() {
		var n taxonomy.Node
		var parentID sql.NullString
		if err := rows.Scan(&n.ID, &parentID, &n.Name); err != nil {
			return nil, fmt.Errorf("failed to scan activity: %w", err)
		}
		n.ParentID = parentID.String
		nodes = append(nodes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating activity rows: %w", err)
	}

	tree, err := taxonomy.Build(nodes)
	if err != nil {
		return nil, fmt.Errorf("failed to rebuild activity tree: %w", err)
	}
	return tree, nil
}

// SaveTree inserts the nodes that are not stored yet. Nodes are never renamed
// or moved, so existing rows are left alone.
func (r *ActivityRepository) SaveTree(ctx context.Context, user string, tree *taxonomy.Tree) error {
	type row struct {
		node     taxonomy.Node
		position int
	}
	var rows []row
	positions := map[string]int{}
	tree.Walk(func(n taxonomy.Node, _ []string) bool {
		rows = append(rows, row{node: n, position: positions[n.ParentID]})
		positions[n.ParentID]++
		return true
	})

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO activities (id, user_name, parent_id, name, position)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare activity insert: %w", err)
	}
	defer stmt.Close()

	for _, rw := range rows {
		var parentID any
		if rw.node.ParentID != "" {
			parentID = rw.node.ParentID
		}
		if _, err := stmt.ExecContext(ctx, rw.node.ID, user, parentID, rw.node.Name, rw.position); err != nil {
			if isForeignKeyViolation(err) {
				return repository.ErrForeignKeyViolation
			}
			if isUniqueViolation(err) {
				return fmt.Errorf("activity %q: %w", rw.node.Name, repository.ErrConflict)
			}
			return fmt.Errorf("failed to save activity %q: %w", rw.node.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit activities: %w", err)
	}
	return nil
}
