package timeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/ganot/lifelog/internal/domain/taxonomy"
	"github.com/ganot/lifelog/internal/repository"
)

// Service handles starting, finishing and reporting activities.
type Service struct {
	trees    TreeRepository
	entries  EntryRepository
	resolver Resolver
	logger   *slog.Logger
	now      func() time.Time
}

// NewService creates a new timeline service.
func NewService(trees TreeRepository, entries EntryRepository, resolver Resolver, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Service{
		trees:    trees,
		entries:  entries,
		resolver: resolver,
		logger:   logger,
		now:      time.Now,
	}
}

// SetClock replaces the time source.
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// Start resolves name to an activity, ends any ongoing activity and records a
// new entry for today. A cancelled activity creation ends nothing.
func (s *Service) Start(ctx context.Context, user, name string) (*Entry, error) {
	if strings.TrimSpace(user) == "" || strings.TrimSpace(name) == "" {
		return nil, ErrInvalidInput
	}

	tree, err := s.trees.LoadTree(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("loading activities: %w", err)
	}

	before := tree.Len()
	id, err := s.resolver.Resolve(ctx, tree, name)
	if err != nil {
		if errors.Is(err, taxonomy.ErrUserCancelled) {
			return nil, err
		}
		return nil, fmt.Errorf("resolving activity: %w", err)
	}
	if tree.Len() != before {
		if err := s.trees.SaveTree(ctx, user, tree); err != nil {
			return nil, fmt.Errorf("saving activities: %w", err)
		}
	}

	m, err := tree.Find(taxonomy.ByID(id))
	if err != nil {
		return nil, fmt.Errorf("%w: resolved id %s is not in the tree", taxonomy.ErrInvariantViolation, id)
	}

	current, err := s.current(ctx, user)
	if err != nil {
		return nil, err
	}
	if current != nil {
		if _, err := s.finish(ctx, user, current); err != nil {
			return nil, err
		}
	}

	now := s.now().UTC()
	entry := &Entry{
		User:       user,
		Day:        now.Format(DayFormat),
		ActivityID: m.ID,
		Name:       m.Name,
		StartedAt:  now,
	}
	if err := s.entries.Create(ctx, user, entry); err != nil {
		return nil, fmt.Errorf("recording entry: %w", err)
	}

	s.logger.Info("activity started", "user", user, "activity", m.FullName(), "id", m.ID)
	return entry, nil
}

// Done finishes the ongoing activity.
func (s *Service) Done(ctx context.Context, user string) (*Finished, error) {
	current, err := s.current(ctx, user)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNoOngoingActivity
	}
	return s.finish(ctx, user, current)
}

// Current returns the ongoing entry, or nil when nothing is running.
func (s *Service) Current(ctx context.Context, user string) (*Entry, error) {
	return s.current(ctx, user)
}

// Status reports the ongoing activity together with its category path.
func (s *Service) Status(ctx context.Context, user string) (*Status, error) {
	current, err := s.current(ctx, user)
	if err != nil {
		return nil, err
	}
	status := &Status{User: user}
	if current == nil {
		return status, nil
	}

	tree, err := s.trees.LoadTree(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("loading activities: %w", err)
	}
	m, err := tree.Find(taxonomy.ByID(current.ActivityID))
	if err != nil {
		if errors.Is(err, taxonomy.ErrNotFound) {
			return nil, fmt.Errorf("%w: activity '%s' (%s) has no entry in the activity tree",
				ErrMalformedTimeline, current.Name, current.ActivityID)
		}
		return nil, err
	}

	status.Current = current
	status.Activity = m
	status.Elapsed = s.now().UTC().Sub(current.StartedAt)
	return status, nil
}

// Tree returns the user's activity tree.
func (s *Service) Tree(ctx context.Context, user string) (*taxonomy.Tree, error) {
	return s.trees.LoadTree(ctx, user)
}

// Days lists the days that have entries, oldest first.
func (s *Service) Days(ctx context.Context, user string) ([]string, error) {
	return s.entries.Days(ctx, user)
}

// Day lists the entries recorded on day.
func (s *Service) Day(ctx context.Context, user, day string) ([]Entry, error) {
	if _, err := time.Parse(DayFormat, day); err != nil {
		return nil, fmt.Errorf("%w: day %q", ErrInvalidInput, day)
	}
	return s.entries.ListDay(ctx, user, day)
}

func (s *Service) current(ctx context.Context, user string) (*Entry, error) {
	entry, err := s.entries.Current(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("loading current entry: %w", err)
	}
	return entry, nil
}

func (s *Service) finish(ctx context.Context, user string, current *Entry) (*Finished, error) {
	now := s.now().UTC()
	if err := s.entries.Finish(ctx, user, current.ID, now); err != nil {
		return nil, fmt.Errorf("finishing entry: %w", err)
	}
	finished := *current
	finished.EndedAt = &now

	// An activity that ran past midnight also shows up on the day it ended.
	if today := now.Format(DayFormat); current.Day != today {
		carried := finished
		carried.ID = 0
		carried.Day = today
		carried.Previous = true
		if err := s.entries.Create(ctx, user, &carried); err != nil {
			return nil, fmt.Errorf("recording carried entry: %w", err)
		}
	}

	elapsed := now.Sub(current.StartedAt)
	s.logger.Info("activity finished", "user", user, "activity", current.Name, "elapsed", elapsed)
	return &Finished{Entry: finished, Elapsed: elapsed}, nil
}

// ElapsedPhrase renders d as "H hours M minutes and S seconds".
func ElapsedPhrase(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	total := int64(d / time.Second)
	hours := total / 3600
	minutes := (total / 60) % 60
	seconds := total % 60
	return fmt.Sprintf("%d hours %d minutes and %d seconds", hours, minutes, seconds)
}
