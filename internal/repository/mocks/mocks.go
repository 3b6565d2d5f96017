package mocks

import (
	"context"
	"time"

	"github.com/ganot/lifelog/internal/domain/taxonomy"
	"github.com/ganot/lifelog/internal/domain/timeline"
	"github.com/ganot/lifelog/internal/domain/user"
	"github.com/stretchr/testify/mock"
)

// TreeRepository is a mock for timeline.TreeRepository.
type TreeRepository struct {
	mock.Mock
}

func (m *TreeRepository) LoadTree(ctx context.Context, userName string) (*taxonomy.Tree, error) {
	args := m.Called(ctx, userName)
	if tree, ok := args.Get(0).(*taxonomy.Tree); ok {
		return tree, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TreeRepository) SaveTree(ctx context.Context, userName string, tree *taxonomy.Tree) error {
	args := m.Called(ctx, userName, tree)
	return args.Error(0)
}

// EntryRepository is a mock for timeline.EntryRepository.
type EntryRepository struct {
	mock.Mock
}

func (m *EntryRepository) Create(ctx context.Context, userName string, entry *timeline.Entry) error {
	args := m.Called(ctx, userName, entry)
	return args.Error(0)
}

func (m *EntryRepository) Current(ctx context.Context, userName string) (*timeline.Entry, error) {
	args := m.Called(ctx, userName)
	if entry, ok := args.Get(0).(*timeline.Entry); ok {
		return entry, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *EntryRepository) Finish(ctx context.Context, userName string, id int64, endedAt time.Time) error {
	args := m.Called(ctx, userName, id, endedAt)
	return args.Error(0)
}

func (m *EntryRepository) ListDay(ctx context.Context, userName, day string) ([]timeline.Entry, error) {
	args := m.Called(ctx, userName, day)
	if list, ok := args.Get(0).([]timeline.Entry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *EntryRepository) Days(ctx context.Context, userName string) ([]string, error) {
	args := m.Called(ctx, userName)
	if list, ok := args.Get(0).([]string); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// UserRepository is a mock for user.Repository.
type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, u *user.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *UserRepository) Get(ctx context.Context, name string) (*user.User, error) {
	args := m.Called(ctx, name)
	if u, ok := args.Get(0).(*user.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) List(ctx context.Context) ([]user.User, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]user.User); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *UserRepository) GetDefault(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *UserRepository) SetDefault(ctx context.Context, name string) error {
	args := m.Called(ctx, name)
	return args.Error(0)
}
