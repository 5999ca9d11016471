package database

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go/v4"
	"github.com/jackc/pgx/v5"
)

// Notification is a single NOTIFY delivered on a listened channel.
type Notification struct {
	Channel string
	Payload string
}

// Listen subscribes to a Postgres NOTIFY channel on a dedicated pooled
// connection. The connection is re-established after failures until ctx is done;
// the returned channel is closed when ctx is done.
func (db *Database) Listen(ctx context.Context, channel string) (<-chan Notification, error) {
	if channel == "" {
		return nil, errors.New("listen: empty channel")
	}
	log := db.log

	out := make(chan Notification, 16)

	go func() {
		defer close(out)

		for ctx.Err() == nil {
			err := retry.Do(
				func() error { return db.listenOnce(ctx, channel, out) },
				retry.Context(ctx),
				retry.Attempts(0),
				retry.Delay(500*time.Millisecond),
				retry.MaxDelay(10*time.Second),
				retry.LastErrorOnly(true),
				retry.OnRetry(func(attempt uint, err error) {
					log.Warn(ctx, "listen connection lost",
						slog.String("channel", channel),
						slog.Any("err", err),
						slog.Uint64("attempt", uint64(attempt)),
					)
				}),
			)
			if err != nil && ctx.Err() == nil {
				log.Warn(ctx, "listen stopped", slog.String("channel", channel), slog.Any("err", err))
			}
		}
	}()

	return out, nil
}

func (db *Database) listenOnce(ctx context.Context, channel string, out chan<- Notification) error {
	conn, err := db.p.Acquire(ctx)
	if err != nil {
		return fmt.Errorf("acquire listen conn: %w", err)
	}
	defer conn.Release()

	if _, err := conn.Exec(ctx, "LISTEN "+pgx.Identifier{channel}.Sanitize()); err != nil {
		return fmt.Errorf("listen %s: %w", channel, err)
	}

	for {
		n, err := conn.Conn().WaitForNotification(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}
			return fmt.Errorf("wait for notification: %w", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case out <- Notification{Channel: n.Channel, Payload: n.Payload}:
		}
	}
}
