// Package notesync keeps the dashboard read model (own notes, shared notes,
// notifications) current and runs mutations against a note backend.
package notesync

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/imkira/go-observer"
	"golang.org/x/sync/errgroup"

	"github.com/evgeniy-krivenko/exec-notes/internal/backend"
	"github.com/evgeniy-krivenko/exec-notes/internal/entity"
	"github.com/evgeniy-krivenko/exec-notes/pkg/logger/slogx"
)

var (
	ErrClosed = errors.New("sync controller closed")
	ErrStale  = errors.New("refresh superseded by a newer one")
)

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=controller_options.gen.go -from-struct=Options
type Options struct {
	backend backend.NoteBackend `option:"mandatory" validate:"required"`
	user    entity.CurrentUser  `option:"mandatory"`

	notificationLimit int `default:"20" validate:"min=1,max=100"`
	now               func() time.Time
}

type Snapshot struct {
	OwnNotes      []entity.Note
	SharedNotes   []entity.Note
	Notifications []entity.Notification
	UnreadCount   int
	Warnings      []string
	Demo          bool
	RefreshedAt   time.Time
}

type Controller struct {
	Options

	state observer.Property

	mu       sync.Mutex
	started  uint64
	applied  uint64
	closed   bool
	statuses map[Op]Status
	cancel   context.CancelFunc
	eg       *errgroup.Group
}

func New(opts Options) (*Controller, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate sync controller options: %v", err)
	}

	if opts.now == nil {
		opts.now = time.Now
	}

	return &Controller{
		Options:  opts,
		state:    observer.NewProperty(Snapshot{Demo: backend.IsDemo(opts.backend)}),
		statuses: make(map[Op]Status),
	}, nil
}

// Load performs a single refresh against b. Used by request-scoped adapters.
func Load(ctx context.Context, b backend.NoteBackend, user entity.CurrentUser, limit int) (Snapshot, error) {
	if limit <= 0 {
		limit = entity.DefaultNotificationLimit
	}

	c, err := New(NewOptions(b, user, WithNotificationLimit(limit)))
	if err != nil {
		return Snapshot{}, err
	}

	return c.Refresh(ctx)
}

// Start refreshes once and, when the backend has a change feed, refreshes
// again on every change signal until Close. Signals that arrive while a
// refresh runs are coalesced into one.
func (c *Controller) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return ErrClosed
	}
	if c.cancel != nil {
		c.mu.Unlock()
		return errors.New("sync controller already started")
	}
	ctx, c.cancel = context.WithCancel(ctx)
	c.eg, ctx = errgroup.WithContext(ctx)
	c.mu.Unlock()

	if _, err := c.Refresh(ctx); err != nil && !errors.Is(err, ErrStale) {
		return fmt.Errorf("initial refresh: %w", err)
	}

	sub, ok := c.backend.(backend.Subscriber)
	if !ok {
		return nil
	}

	events, err := sub.Subscribe(ctx)
	if err != nil {
		slogx.Warn(ctx, "change feed unavailable, refreshing on mutations only", slogx.Err(err))
		return nil
	}

	trigger := make(chan struct{}, 1)

	c.eg.Go(func() error {
		defer close(trigger)
		for {
			select {
			case <-ctx.Done():
				return nil
			case _, ok := <-events:
				if !ok {
					return nil
				}
			}

			select {
			case trigger <- struct{}{}:
			default:
			}
		}
	})

	c.eg.Go(func() error {
		for range trigger {
			if _, err := c.Refresh(ctx); err != nil && ctx.Err() == nil && !errors.Is(err, ErrStale) {
				slogx.Warn(ctx, "refresh on change failed", slogx.Err(err))
			}
		}
		return nil
	})

	return nil
}

// Close stops the change loop. Refreshes still in flight are discarded.
func (c *Controller) Close() error {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	cancel, eg := c.cancel, c.eg
	c.mu.Unlock()

	if cancel == nil {
		return nil
	}

	cancel()
	return eg.Wait()
}

// Refresh fetches the three collections concurrently and replaces the state
// as one unit. A failing collection is reported as empty with a warning.
func (c *Controller) Refresh(ctx context.Context) (Snapshot, error) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return Snapshot{}, ErrClosed
	}
	c.started++
	gen := c.started
	c.mu.Unlock()

	snap := c.fetch(ctx)
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return Snapshot{}, ErrClosed
	}
	if gen <= c.applied {
		return Snapshot{}, ErrStale
	}

	c.applied = gen
	c.state.Update(snap)

	return snap, nil
}

func (c *Controller) fetch(ctx context.Context) Snapshot {
	var (
		eg                errgroup.Group
		own, shared       []entity.Note
		notifications     []entity.Notification
		ownErr, sharedErr error
		notificationsErr  error
	)

	eg.Go(func() error {
		own, ownErr = c.backend.ListOwnNotes(ctx, c.user.Role, c.user.ID)
		return nil
	})
	eg.Go(func() error {
		shared, sharedErr = c.backend.ListSharedNotes(ctx, c.user.ID, c.user.Role)
		return nil
	})
	eg.Go(func() error {
		notifications, notificationsErr = c.backend.ListNotifications(ctx, c.user.ID, c.notificationLimit)
		return nil
	})
	_ = eg.Wait()

	snap := Snapshot{
		Demo:        backend.IsDemo(c.backend),
		RefreshedAt: c.now(),
	}

	snap.OwnNotes = orEmpty(own, c.warn(ctx, &snap, "own notes", ownErr))
	snap.SharedNotes = orEmpty(shared, c.warn(ctx, &snap, "shared notes", sharedErr))
	snap.Notifications = orEmpty(notifications, c.warn(ctx, &snap, "notifications", notificationsErr))
	snap.UnreadCount = entity.UnreadCount(snap.Notifications)

	return snap
}

func (c *Controller) warn(ctx context.Context, snap *Snapshot, what string, err error) bool {
	if err == nil {
		return false
	}

	slogx.Warn(ctx, "failed to load "+what, slogx.UserID(c.user.ID), slogx.Err(err))
	snap.Warnings = append(snap.Warnings, fmt.Sprintf("Could not load %s. %s", what, UserMessage(err)))

	return true
}

func orEmpty[T any](items []T, failed bool) []T {
	if failed || items == nil {
		return []T{}
	}

	return items
}

// Snapshot returns the last applied state.
func (c *Controller) Snapshot() Snapshot {
	return c.state.Value().(Snapshot)
}

// Watch streams every applied snapshot until ctx is done.
func (c *Controller) Watch(ctx context.Context) <-chan Snapshot {
	stream := c.state.Observe()

	result := make(chan Snapshot)
	go func() {
		defer close(result)
		for {
			select {
			case <-ctx.Done():
				return

			case <-stream.Changes():
				snap := stream.Next().(Snapshot)

				select {
				case <-ctx.Done():
					return
				case result <- snap:
				}
			}
		}
	}()

	return result
}
