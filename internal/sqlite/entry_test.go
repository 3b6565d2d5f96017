package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/ganot/lifelog/internal/domain/timeline"
	"github.com/ganot/lifelog/internal/repository"
	"github.com/stretchr/testify/require"
)

func insertActivity(t *testing.T, db *DB, id, user, name string) {
	t.Helper()
	_, err := db.ExecContext(context.Background(),
		`INSERT INTO activities (id, user_name, name, position) VALUES (?, ?, ?, 0)`, id, user, name)
	require.NoError(t, err)
}

func TestEntryRepository_CreateCurrentFinish(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertUser(t, db, "ana")
	insertActivity(t, db, "a1", "ana", "coding")
	repo := NewEntryRepository(db)

	start := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	entry := &timeline.Entry{Day: "2024-03-01", ActivityID: "a1", Name: "coding", StartedAt: start}
	require.NoError(t, repo.Create(ctx, "ana", entry))
	require.NotZero(t, entry.ID)

	current, err := repo.Current(ctx, "ana")
	require.NoError(t, err)
	require.Equal(t, entry.ID, current.ID)
	require.Equal(t, "coding", current.Name)
	require.True(t, current.StartedAt.Equal(start))
	require.True(t, current.Ongoing())
	require.False(t, current.Previous)

	end := start.Add(90 * time.Minute)
	require.NoError(t, repo.Finish(ctx, "ana", entry.ID, end))
	require.ErrorIs(t, repo.Finish(ctx, "ana", entry.ID, end), repository.ErrNotFound)

	_, err = repo.Current(ctx, "ana")
	require.ErrorIs(t, err, repository.ErrNotFound)

	entries, err := repo.ListDay(ctx, "ana", "2024-03-01")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	require.NotNil(t, entries[0].EndedAt)
	require.True(t, entries[0].EndedAt.Equal(end))
}

func TestEntryRepository_ListDayAndDays(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	insertUser(t, db, "ana")
	insertUser(t, db, "ben")
	insertActivity(t, db, "a1", "ana", "coding")
	insertActivity(t, db, "b1", "ben", "coding")
	repo := NewEntryRepository(db)

	end := time.Date(2024, 3, 2, 1, 0, 0, 0, time.UTC)
	for _, e := range []*timeline.Entry{
		{Day: "2024-03-01", ActivityID: "a1", Name: "coding", StartedAt: end.Add(-2 * time.Hour), EndedAt: &end},
		{Day: "2024-03-02", ActivityID: "a1", Name: "coding", StartedAt: end.Add(-2 * time.Hour), EndedAt: &end, Previous: true},
		{Day: "2024-03-02", ActivityID: "a1", Name: "coding", StartedAt: end},
	} {
		require.NoError(t, repo.Create(ctx, "ana", e))
	}
	require.NoError(t, repo.Create(ctx, "ben", &timeline.Entry{Day: "2024-02-01", ActivityID: "b1", Name: "coding", StartedAt: end}))

	days, err := repo.Days(ctx, "ana")
	require.NoError(t, err)
	require.Equal(t, []string{"2024-03-01", "2024-03-02"}, days)

	entries, err := repo.ListDay(ctx, "ana", "2024-03-02")
	require.NoError(t, err)
	require.Len(t, entries, 2)
	require.True(t, entries[0].Previous)
	require.False(t, entries[1].Previous)
	require.True(t, entries[1].Ongoing())

	current, err := repo.Current(ctx, "ben")
	require.NoError(t, err)
	require.Equal(t, "2024-02-01", current.Day)
}

func TestEntryRepository_UnknownActivity(t *testing.T) {
	db := NewTestDB(t)
	insertUser(t, db, "ana")
	repo := NewEntryRepository(db)

	err := repo.Create(context.Background(), "ana", &timeline.Entry{Day: "2024-03-01", ActivityID: "nope", Name: "x", StartedAt: time.Now()})
	require.ErrorIs(t, err, repository.ErrForeignKeyViolation)
}
