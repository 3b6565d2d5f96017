package user

import "context"

// Repository provides persistence for users and the default-user setting.
type Repository interface {
	Create(ctx context.Context, u *User) error
	Get(ctx context.Context, name string) (*User, error)
	List(ctx context.Context) ([]User, error)
	GetDefault(ctx context.Context) (string, error)
	SetDefault(ctx context.Context, name string) error
}
