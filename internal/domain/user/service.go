package user

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ganot/lifelog/internal/repository"
)

// Service handles user operations.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService creates a new user service.
func NewService(repo Repository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{repo: repo, logger: logger}
}

// Create starts a new, empty timeline for name. The first user created
// becomes the default user.
func (s *Service) Create(ctx context.Context, name string) (*User, error) {
	name, err := cleanName(name)
	if err != nil {
		return nil, err
	}

	u := &User{Name: name, CreatedAt: time.Now()}
	if err := s.repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrConflict) {
			return nil, fmt.Errorf("%w: '%s'", ErrUserExists, name)
		}
		return nil, fmt.Errorf("creating user: %w", err)
	}

	if _, err := s.repo.GetDefault(ctx); err != nil {
		if !errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("getting default user: %w", err)
		}
		if err := s.repo.SetDefault(ctx, name); err != nil {
			return nil, fmt.Errorf("setting default user: %w", err)
		}
		s.logger.Info("default user set", "user", name)
	}
	return u, nil
}

// SetDefault makes name the default user.
func (s *Service) SetDefault(ctx context.Context, name string) error {
	name, err := cleanName(name)
	if err != nil {
		return err
	}
	if _, err := s.get(ctx, name); err != nil {
		return err
	}
	if err := s.repo.SetDefault(ctx, name); err != nil {
		return fmt.Errorf("setting default user: %w", err)
	}
	return nil
}

// Default returns the default user's name.
func (s *Service) Default(ctx context.Context) (string, error) {
	name, err := s.repo.GetDefault(ctx)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrNoDefaultUser
		}
		return "", fmt.Errorf("getting default user: %w", err)
	}
	return name, nil
}

// Resolve returns explicit when it names an existing user, or the default
// user when explicit is empty.
func (s *Service) Resolve(ctx context.Context, explicit string) (string, error) {
	if strings.TrimSpace(explicit) == "" {
		return s.Default(ctx)
	}
	u, err := s.get(ctx, strings.TrimSpace(explicit))
	if err != nil {
		return "", err
	}
	return u.Name, nil
}

// List returns all users.
func (s *Service) List(ctx context.Context) ([]User, error) {
	return s.repo.List(ctx)
}

func (s *Service) get(ctx context.Context, name string) (*User, error) {
	u, err := s.repo.Get(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: '%s'", ErrUserNotFound, name)
		}
		return nil, fmt.Errorf("getting user: %w", err)
	}
	return u, nil
}

func cleanName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || strings.ContainsAny(name, "/\\") {
		return "", ErrInvalidInput
	}
	return name, nil
}
