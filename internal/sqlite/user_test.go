package sqlite

import (
	"context"
	"testing"

	"github.com/ganot/lifelog/internal/domain/user"
	"github.com/ganot/lifelog/internal/repository"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_CreateGetList(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	require.NoError(t, repo.Create(ctx, &user.User{Name: "ben"}))
	require.NoError(t, repo.Create(ctx, &user.User{Name: "ana"}))
	require.ErrorIs(t, repo.Create(ctx, &user.User{Name: "ana"}), repository.ErrConflict)

	u, err := repo.Get(ctx, "ana")
	require.NoError(t, err)
	require.Equal(t, "ana", u.Name)

	_, err = repo.Get(ctx, "ghost")
	require.ErrorIs(t, err, repository.ErrNotFound)

	users, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 2)
	require.Equal(t, "ana", users[0].Name)
}

func TestUserRepository_Default(t *testing.T) {
	db := NewTestDB(t)
	ctx := context.Background()
	repo := NewUserRepository(db)

	_, err := repo.GetDefault(ctx)
	require.ErrorIs(t, err, repository.ErrNotFound)

	require.NoError(t, repo.SetDefault(ctx, "ana"))
	require.NoError(t, repo.SetDefault(ctx, "ben"))

	name, err := repo.GetDefault(ctx)
	require.NoError(t, err)
	require.Equal(t, "ben", name)
}
