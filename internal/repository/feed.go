package repository

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/imkira/go-observer"

	"github.com/evgeniy-krivenko/exec-notes/internal/entity"
	"github.com/evgeniy-krivenko/exec-notes/pkg/database"
)

type listener interface {
	Listen(ctx context.Context, channel string) (<-chan database.Notification, error)
}

// ChangeFeed turns store NOTIFY messages into change events. One Run holds the
// only LISTEN connection of the process; any number of subscribers share it.
// The payload is a table name at best; consumers must not rely on it.
type ChangeFeed struct {
	db      listener
	channel string

	events  observer.Property
	running atomic.Bool
	done    chan struct{}
}

func NewChangeFeed(db listener, channel string) *ChangeFeed {
	return &ChangeFeed{
		db:      db,
		channel: channel,
		events:  observer.NewProperty(entity.ChangeEvent{}),
		done:    make(chan struct{}),
	}
}

// Run listens until ctx is done or the listener gives up. Subscriber channels
// are closed when it returns.
func (f *ChangeFeed) Run(ctx context.Context) error {
	if !f.running.CompareAndSwap(false, true) {
		return errors.New("change feed already running")
	}
	defer close(f.done)

	notifications, err := f.db.Listen(ctx, f.channel)
	if err != nil {
		return fmt.Errorf("change feed listen: %w", err)
	}

	for n := range notifications {
		f.events.Update(entity.ChangeEvent{Collection: parseCollection(n.Payload)})
	}

	return nil
}

// Subscribe streams events published after the call. It never opens a
// connection of its own.
func (f *ChangeFeed) Subscribe(ctx context.Context) (<-chan entity.ChangeEvent, error) {
	stream := f.events.Observe()

	events := make(chan entity.ChangeEvent)
	go func() {
		defer close(events)

		send := func(ev entity.ChangeEvent) bool {
			select {
			case <-ctx.Done():
				return false
			case events <- ev:
				return true
			}
		}

		for {
			select {
			case <-ctx.Done():
				return

			case <-stream.Changes():
				if !send(stream.Next().(entity.ChangeEvent)) {
					return
				}

			case <-f.done:
				for stream.HasNext() {
					if !send(stream.Next().(entity.ChangeEvent)) {
						return
					}
				}
				return
			}
		}
	}()

	return events, nil
}

func parseCollection(payload string) entity.Collection {
	switch c := entity.Collection(payload); c {
	case entity.CollectionNotes, entity.CollectionShares, entity.CollectionNotifications:
		return c
	}

	return entity.CollectionUnknown
}
