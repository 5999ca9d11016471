// Package app assembles note backends from configuration. The server and the
// CLI share it.
package app

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/evgeniy-krivenko/exec-notes/internal/backend"
	"github.com/evgeniy-krivenko/exec-notes/internal/config"
	"github.com/evgeniy-krivenko/exec-notes/internal/ctxtr"
	"github.com/evgeniy-krivenko/exec-notes/internal/demo"
	"github.com/evgeniy-krivenko/exec-notes/internal/entity"
	"github.com/evgeniy-krivenko/exec-notes/internal/repository"
	"github.com/evgeniy-krivenko/exec-notes/internal/usecase/notes"
	"github.com/evgeniy-krivenko/exec-notes/migrations"
	"github.com/evgeniy-krivenko/exec-notes/pkg/database"
	"github.com/evgeniy-krivenko/exec-notes/pkg/kvstore"
	"github.com/evgeniy-krivenko/exec-notes/pkg/logger/slogx"
)

const sqliteFile = "demo.db"

type Backends struct {
	DB     *database.Database
	Remote *notes.Usecase
	Demo   *demo.Sessions

	selection backend.Selection
	closers   []func() error
}

// Build connects to the database when one is configured and prepares the demo
// store. A database that cannot be reached is an error; demo mode is only
// chosen when no database is configured at all.
func Build(ctx context.Context, cfg config.Config) (*Backends, error) {
	b := &Backends{
		selection: backend.Selection{
			DatabaseConfigured: cfg.Database.Configured(),
			ForceDemo:          cfg.Demo.Force,
		},
	}

	store, closeStore, err := newDemoStore(cfg.Demo)
	if err != nil {
		return nil, err
	}
	if closeStore != nil {
		b.closers = append(b.closers, closeStore)
	}
	b.Demo = demo.NewSessions(store)

	if !b.selection.DatabaseConfigured {
		slogx.Info(ctx, "database is not configured, running in demo mode")
		return b, nil
	}

	if cfg.Sync.Channel != migrations.ChangeChannel {
		return nil, errors.Join(
			fmt.Errorf("sync channel %q: change feed triggers notify %q", cfg.Sync.Channel, migrations.ChangeChannel),
			b.Close(),
		)
	}

	db, err := Connect(ctx, cfg.Database)
	if err != nil {
		return nil, errors.Join(err, b.Close())
	}
	b.DB = db
	b.closers = append(b.closers, func() error { db.Close(); return nil })

	if cfg.Database.MigrateOnStart {
		if err := db.Migrate(ctx, migrations.FS, 0, slogx.Component("migrate")); err != nil {
			return nil, errors.Join(fmt.Errorf("migrate: %v", err), b.Close())
		}
	}

	feed := repository.NewChangeFeed(db, cfg.Sync.Channel)
	b.closers = append(b.closers, runFeed(ctx, feed))

	uc, err := notes.New(notes.NewOptions(
		repository.New(db),
		db,
		ctxtr.Identity{},
		notes.WithFeed(feed),
	))
	if err != nil {
		return nil, errors.Join(fmt.Errorf("init notes usecase: %v", err), b.Close())
	}
	b.Remote = uc

	return b, nil
}

// runFeed keeps the single LISTEN of the process open until the returned
// closer runs.
func runFeed(ctx context.Context, feed *repository.ChangeFeed) func() error {
	ctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
	done := make(chan struct{})

	go func() {
		defer close(done)
		if err := feed.Run(ctx); err != nil && ctx.Err() == nil {
			slogx.Warn(ctx, "change feed stopped, falling back to local signals", slogx.Err(err))
		}
	}()

	return func() error {
		cancel()
		<-done
		return nil
	}
}

// Connect opens the notes database with the configured retry policy.
func Connect(ctx context.Context, cfg config.DatabaseConfig) (*database.Database, error) {
	pool, err := database.NewPGX(ctx, database.NewOptions(
		cfg.Address(),
		cfg.User,
		cfg.Password,
		cfg.Name,
		database.WithRetryAttempts(cfg.RetryAttempts),
		database.WithRetryDelay(cfg.RetryDelay),
		database.WithMaxConns(cfg.MaxConns),
		database.WithAppName(cfg.AppName),
		database.WithLogger(slogx.Component("database")),
	))
	if err != nil {
		return nil, fmt.Errorf("connect database: %v", err)
	}

	return database.NewDatabase(pool).WithLogger(slogx.Component("database")), nil
}

// Health reports whether the database answers. Demo-only setups are always healthy.
func (b *Backends) Health(ctx context.Context) error {
	if b.DB == nil {
		return nil
	}

	return b.DB.Pool().Ping(ctx)
}

// Resolve picks the backend serving user.
func (b *Backends) Resolve(user entity.CurrentUser) backend.NoteBackend {
	var remote backend.NoteBackend
	if b.Remote != nil {
		remote = b.Remote
	}

	return backend.Select(b.selection, remote, func(u entity.CurrentUser) backend.NoteBackend {
		return b.Demo.For(u)
	}, user)
}

func (b *Backends) Close() error {
	var errs []error
	for i := len(b.closers) - 1; i >= 0; i-- {
		errs = append(errs, b.closers[i]())
	}
	b.closers = nil

	return errors.Join(errs...)
}

func newDemoStore(cfg config.DemoConfig) (kvstore.Store, func() error, error) {
	switch cfg.Store {
	case "memory":
		return kvstore.NewMemoryStore(), nil, nil

	case "sqlite":
		if err := os.MkdirAll(cfg.Dir, 0o700); err != nil {
			slogx.Warn(context.Background(), "demo store dir unavailable, using memory", slogx.Err(err))
			return kvstore.NewFallback(nil), nil, nil
		}

		s, err := kvstore.NewSQLiteStore(filepath.Join(cfg.Dir, sqliteFile))
		if err != nil {
			slogx.Warn(context.Background(), "demo sqlite store unavailable, using memory", slogx.Err(err))
			return kvstore.NewFallback(nil), nil, nil
		}
		return kvstore.NewFallback(s), s.Close, nil

	case "file", "":
		s, err := kvstore.NewFileStore(cfg.Dir)
		if err != nil {
			slogx.Warn(context.Background(), "demo file store unavailable, using memory", slogx.Err(err))
			return kvstore.NewFallback(nil), nil, nil
		}
		return kvstore.NewFallback(s), nil, nil

	default:
		return nil, nil, fmt.Errorf("unknown demo store %q", cfg.Store)
	}
}
