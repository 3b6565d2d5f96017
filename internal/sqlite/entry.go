package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ganot/lifelog/internal/domain/timeline"
	"github.com/ganot/lifelog/internal/repository"
)

var _ timeline.EntryRepository = (*EntryRepository)(nil)

const entryColumns = `id, user_name, day, activity_id, name, started_at, ended_at, previous`

// EntryRepository implements timeline.EntryRepository for SQLite
type EntryRepository struct {
	db *DB
}

// NewEntryRepository creates a new EntryRepository
func NewEntryRepository(db *DB) *EntryRepository {
	return &EntryRepository{db: db}
}

// Create inserts a new entry and sets its ID.
func (r *EntryRepository) Create(ctx context.Context, user string, entry *timeline.Entry) error {
	query := `
		INSERT INTO entries (
			user_name, day, activity_id, name, started_at, ended_at, previous
		) VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	var endedAt any
	if entry.EndedAt != nil {
		endedAt = *entry.EndedAt
	}
	result, err := r.db.ExecContext(ctx, query,
		user,
		entry.Day,
		entry.ActivityID,
		entry.Name,
		entry.StartedAt,
		endedAt,
		entry.Previous,
	)
	if err != nil {
		if isForeignKeyViolation(err) {
			return repository.ErrForeignKeyViolation
		}
		return fmt.Errorf("failed to create entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err == nil {
		entry.ID = id
	}
	entry.User = user
	return nil
}

// Current returns the latest unfinished entry.
func (r *EntryRepository) Current(ctx context.Context, user string) (*timeline.Entry, error) {
	query := `SELECT ` + entryColumns + `
		FROM entries
		WHERE user_name = ? AND ended_at IS NULL
		ORDER BY id DESC
		LIMIT 1
	`
	entry, err := scanEntry(r.db.QueryRowContext(ctx, query, user))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, repository.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get current entry: %w", err)
	}
	return entry, nil
}

// Finish sets the end time of an unfinished entry.
func (r *EntryRepository) Finish(ctx context.Context, user string, id int64, endedAt time.Time) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE entries SET ended_at = ? WHERE id = ? AND user_name = ? AND ended_at IS NULL`,
		endedAt, id, user)
	if err != nil {
		return fmt.Errorf("failed to finish entry: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to finish entry: %w", err)
	}
	if n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

// ListDay returns the entries of one day in the order they were recorded.
func (r *EntryRepository) ListDay(ctx context.Context, user, day string) ([]timeline.Entry, error) {
	query := `SELECT ` + entryColumns + `
		FROM entries
		WHERE user_name = ? AND day = ?
		ORDER BY id
	`
	rows, err := r.db.QueryContext(ctx, query, user, day)
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	var entries []timeline.Entry
	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entry: %w", err)
		}
		entries = append(entries, *entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entry rows: %w", err)
	}
	return entries, nil
}

// Days returns the distinct days with entries, oldest first.
func (r *EntryRepository) Days(ctx context.Context, user string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT DISTINCT day FROM entries WHERE user_name = ? ORDER BY day`, user)
	if err != nil {
		return nil, fmt.Errorf("failed to list days: %w", err)
	}
	defer rows.Close()

	var days []string
	for rows.Next() {
		var day string
		if err := rows.Scan(&day); err != nil {
			return nil, fmt.Errorf("failed to scan day: %w", err)
		}
		days = append(days, day)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating day rows: %w", err)
	}
	return days, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(row rowScanner) (*timeline.Entry, error) {
	var entry timeline.Entry
	var endedAt sql.NullTime
	if err := row.Scan(
		&entry.ID,
		&entry.User,
		&entry.Day,
		&entry.ActivityID,
		&entry.Name,
		&entry.StartedAt,
		&endedAt,
		&entry.Previous,
	); err != nil {
		return nil, err
	}
	if endedAt.Valid {
		t := endedAt.Time
		entry.EndedAt = &t
	}
	return &entry, nil
}
