package user_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ganot/lifelog/internal/domain/user"
	"github.com/ganot/lifelog/internal/repository"
	"github.com/ganot/lifelog/internal/repository/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_CreateFirstBecomesDefault(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.UserRepository{}
	repo.On("Create", ctx, mock.AnythingOfType("*user.User")).Return(nil)
	repo.On("GetDefault", ctx).Return("", repository.ErrNotFound)
	repo.On("SetDefault", ctx, "ana").Return(nil)

	svc := user.NewService(repo, nil)
	u, err := svc.Create(ctx, " ana ")
	require.NoError(t, err)
	require.Equal(t, "ana", u.Name)
	require.False(t, u.CreatedAt.IsZero())
	repo.AssertExpectations(t)
}

func TestUserService_CreateKeepsExistingDefault(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.UserRepository{}
	repo.On("Create", ctx, mock.AnythingOfType("*user.User")).Return(nil)
	repo.On("GetDefault", ctx).Return("ana", nil)

	svc := user.NewService(repo, nil)
	_, err := svc.Create(ctx, "ben")
	require.NoError(t, err)
	repo.AssertNotCalled(t, "SetDefault", mock.Anything, mock.Anything)
}

func TestUserService_CreateExisting(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.UserRepository{}
	repo.On("Create", ctx, mock.AnythingOfType("*user.User")).Return(repository.ErrConflict)

	svc := user.NewService(repo, nil)
	_, err := svc.Create(ctx, "ana")
	require.ErrorIs(t, err, user.ErrUserExists)
}

func TestUserService_CreateValidation(t *testing.T) {
	svc := user.NewService(&mocks.UserRepository{}, nil)
	for _, name := range []string{"", "  ", "a/b", `a\b`} {
		_, err := svc.Create(context.Background(), name)
		require.ErrorIs(t, err, user.ErrInvalidInput, name)
	}
}

func TestUserService_SetDefaultRequiresUser(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.UserRepository{}
	repo.On("Get", ctx, "ghost").Return((*user.User)(nil), repository.ErrNotFound)

	svc := user.NewService(repo, nil)
	err := svc.SetDefault(ctx, "ghost")
	require.ErrorIs(t, err, user.ErrUserNotFound)
	repo.AssertNotCalled(t, "SetDefault", mock.Anything, mock.Anything)
}

func TestUserService_SetDefault(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.UserRepository{}
	repo.On("Get", ctx, "ana").Return(&user.User{Name: "ana"}, nil)
	repo.On("SetDefault", ctx, "ana").Return(nil)

	svc := user.NewService(repo, nil)
	require.NoError(t, svc.SetDefault(ctx, "ana"))
	repo.AssertExpectations(t)
}

func TestUserService_Resolve(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.UserRepository{}
	repo.On("Get", ctx, "ben").Return(&user.User{Name: "ben"}, nil)
	repo.On("GetDefault", ctx).Return("ana", nil)

	svc := user.NewService(repo, nil)
	name, err := svc.Resolve(ctx, "ben")
	require.NoError(t, err)
	require.Equal(t, "ben", name)

	name, err = svc.Resolve(ctx, "")
	require.NoError(t, err)
	require.Equal(t, "ana", name)
}

func TestUserService_NoDefault(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.UserRepository{}
	repo.On("GetDefault", ctx).Return("", repository.ErrNotFound)

	svc := user.NewService(repo, nil)
	_, err := svc.Resolve(ctx, "")
	require.ErrorIs(t, err, user.ErrNoDefaultUser)
}

func TestUserService_CreateDefaultLookupFails(t *testing.T) {
	ctx := context.Background()
	repo := &mocks.UserRepository{}
	repo.On("Create", ctx, mock.AnythingOfType("*user.User")).Return(nil)
	repo.On("GetDefault", ctx).Return("", errors.New("database is locked"))

	svc := user.NewService(repo, nil)
	_, err := svc.Create(ctx, "ana")
	require.ErrorContains(t, err, "getting default user")
	require.ErrorContains(t, err, "database is locked")
	repo.AssertNotCalled(t, "SetDefault", mock.Anything, mock.Anything)
}
