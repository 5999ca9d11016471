package notes

import (
	"context"
	"fmt"

	"github.com/evgeniy-krivenko/exec-notes/internal/entity"
	"github.com/evgeniy-krivenko/exec-notes/pkg/logger/slogx"
)

// Subscribe streams change signals: mutations made through this usecase and,
// when configured, the store change feed. The channel is closed when ctx is done.
func (u *Usecase) Subscribe(ctx context.Context) (<-chan entity.ChangeEvent, error) {
	var external <-chan entity.ChangeEvent
	if u.feed != nil {
		ch, err := u.feed.Subscribe(ctx)
		if err != nil {
			return nil, fmt.Errorf("usecase subscribe: %w", err)
		}
		external = ch
	}

	stream := u.observer.Observe()

	result := make(chan entity.ChangeEvent)
	go func() {
		defer close(result)
		for {
			var ev entity.ChangeEvent

			select {
			case <-ctx.Done():
				return

			case <-stream.Changes():
				ev = stream.Next().(entity.ChangeEvent)

			case e, ok := <-external:
				if !ok {
					slogx.Warn(ctx, "store change feed closed")
					external = nil
					continue
				}
				ev = e
			}

			select {
			case <-ctx.Done():
				return
			case result <- ev:
			}
		}
	}()

	return result, nil
}
