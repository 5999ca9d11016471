package notesync

import (
	"context"
	"errors"

	"github.com/evgeniy-krivenko/exec-notes/internal/entity"
	"github.com/evgeniy-krivenko/exec-notes/pkg/logger/slogx"
)

type Op string

const (
	OpCreate      Op = "create"
	OpUpdate      Op = "update"
	OpDelete      Op = "delete"
	OpShare       Op = "share"
	OpUnshare     Op = "unshare"
	OpMarkRead    Op = "mark_read"
	OpMarkAllRead Op = "mark_all_read"
)

// Status of the last call of a mutation. Error holds a user-facing message
// and is cleared when the mutation is attempted again.
type Status struct {
	Loading bool
	Error   string
}

func (c *Controller) Status(op Op) Status {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.statuses[op]
}

func (c *Controller) setStatus(op Op, s Status) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.statuses[op] = s
}

// mutate runs fn with the op status tracked, then reloads the read model.
func (c *Controller) mutate(ctx context.Context, op Op, fn func(context.Context) error) error {
	c.setStatus(op, Status{Loading: true})

	if err := fn(ctx); err != nil {
		c.setStatus(op, Status{Error: UserMessage(err)})
		return err
	}

	c.setStatus(op, Status{})

	if _, err := c.Refresh(ctx); err != nil && !errors.Is(err, ErrStale) && !errors.Is(err, ErrClosed) {
		slogx.Warn(ctx, "refresh after mutation failed", slogx.Err(err))
	}

	return nil
}

func (c *Controller) CreateNote(ctx context.Context, content string, opts entity.CreateNoteOptions) (entity.Note, error) {
	var note entity.Note
	err := c.mutate(ctx, OpCreate, func(ctx context.Context) error {
		var err error
		note, err = c.backend.CreateNote(ctx, content, opts)
		return err
	})

	return note, err
}

func (c *Controller) UpdateNote(ctx context.Context, id, content string, title *string) error {
	return c.mutate(ctx, OpUpdate, func(ctx context.Context) error {
		return c.backend.UpdateNote(ctx, id, content, title)
	})
}

func (c *Controller) DeleteNote(ctx context.Context, id string) error {
	return c.mutate(ctx, OpDelete, func(ctx context.Context) error {
		return c.backend.DeleteNote(ctx, id)
	})
}

// ShareNoteWithRole never returns a bare error: failures are reported in the result.
func (c *Controller) ShareNoteWithRole(ctx context.Context, req entity.ShareRequest) entity.ShareResult {
	var share entity.Share
	err := c.mutate(ctx, OpShare, func(ctx context.Context) error {
		var err error
		share, err = c.backend.ShareNoteWithRole(ctx, req)
		return err
	})
	if err != nil {
		return entity.ShareResult{Success: false, Err: err}
	}

	return entity.ShareResult{Success: true, Share: share}
}

func (c *Controller) UnshareNote(ctx context.Context, noteID, recipient string) error {
	return c.mutate(ctx, OpUnshare, func(ctx context.Context) error {
		return c.backend.UnshareNote(ctx, noteID, recipient)
	})
}

func (c *Controller) MarkNotificationAsRead(ctx context.Context, id string) error {
	return c.mutate(ctx, OpMarkRead, func(ctx context.Context) error {
		return c.backend.MarkNotificationAsRead(ctx, id)
	})
}

func (c *Controller) MarkAllNotificationsAsRead(ctx context.Context) error {
	return c.mutate(ctx, OpMarkAllRead, func(ctx context.Context) error {
		return c.backend.MarkAllNotificationsAsRead(ctx, c.user.ID)
	})
}
