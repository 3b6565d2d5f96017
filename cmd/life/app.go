package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/ganot/lifelog/internal/config"
	"github.com/ganot/lifelog/internal/domain/taxonomy"
	"github.com/ganot/lifelog/internal/domain/timeline"
	"github.com/ganot/lifelog/internal/domain/user"
	"github.com/ganot/lifelog/internal/sqlite"
)

// app holds the services one command invocation works with.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	db      *sqlite.DB
	trees   *sqlite.ActivityRepository
	entries *sqlite.EntryRepository
	users   *user.Service
	closers []io.Closer
}

func openApp(configPath string, stderr io.Writer) (*app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("config error: %w", err)
	}

	logger, logCloser, err := newLogger(cfg.Log.Level, cfg.Log.Path, stderr)
	if err != nil {
		return nil, fmt.Errorf("log file error: %w", err)
	}

	if err := ensureDir(cfg.DB.Path); err != nil {
		logCloser.Close()
		return nil, fmt.Errorf("preparing database path: %w", err)
	}
	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		logCloser.Close()
		return nil, err
	}
	if err := db.RunMigrations(); err != nil {
		db.Close()
		logCloser.Close()
		return nil, err
	}
	logger.Debug("database ready", "path", cfg.DB.Path)

	return &app{
		cfg:     cfg,
		logger:  logger,
		db:      db,
		trees:   sqlite.NewActivityRepository(db),
		entries: sqlite.NewEntryRepository(db),
		users:   user.NewService(sqlite.NewUserRepository(db), logger),
		closers: []io.Closer{db, logCloser},
	}, nil
}

// timeline builds the timeline service. Missing single-name activities are
// offered to p for interactive creation.
func (a *app) timeline(p taxonomy.Prompter) *timeline.Service {
	creator := taxonomy.NewCreator(p, a.logger)
	resolver := taxonomy.NewResolver(creator, a.logger)
	return timeline.NewService(a.trees, a.entries, resolver, a.logger)
}

// user picks the --user flag, then the configured user, then the stored
// default.
func (a *app) user(ctx context.Context, flag string) (string, error) {
	explicit := flag
	if explicit == "" {
		explicit = a.cfg.User.Name
	}
	return a.users.Resolve(ctx, explicit)
}

func (a *app) Close() error {
	var errs []error
	for _, c := range a.closers {
		errs = append(errs, c.Close())
	}
	return errors.Join(errs...)
}
