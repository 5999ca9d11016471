// Package backend defines the note backend contract shared by the
// store-backed usecase and the local demo store.
package backend

import (
	"context"

	"github.com/evgeniy-krivenko/exec-notes/internal/demo"
	"github.com/evgeniy-krivenko/exec-notes/internal/entity"
	"github.com/evgeniy-krivenko/exec-notes/internal/usecase/notes"
)

type NoteBackend interface {
	ListOwnNotes(ctx context.Context, ownerRole entity.Role, userID string) ([]entity.Note, error)
	ListSharedNotes(ctx context.Context, userID string, role entity.Role) ([]entity.Note, error)
	ListNotifications(ctx context.Context, userID string, limit int) ([]entity.Notification, error)

	GetNote(ctx context.Context, id string) (entity.Note, error)
	CreateNote(ctx context.Context, content string, opts entity.CreateNoteOptions) (entity.Note, error)
	UpdateNote(ctx context.Context, id, content string, title *string) error
	DeleteNote(ctx context.Context, id string) error

	ShareNoteWithRole(ctx context.Context, req entity.ShareRequest) (entity.Share, error)
	UnshareNote(ctx context.Context, noteID, recipient string) error
	GetNoteShares(ctx context.Context, noteID string) ([]entity.Share, error)

	MarkNotificationAsRead(ctx context.Context, id string) error
	MarkAllNotificationsAsRead(ctx context.Context, userID string) error
}

// Subscriber is implemented by backends with a change feed.
type Subscriber interface {
	Subscribe(ctx context.Context) (<-chan entity.ChangeEvent, error)
}

var (
	_ NoteBackend = (*notes.Usecase)(nil)
	_ NoteBackend = (*demo.Backend)(nil)
	_ Subscriber  = (*notes.Usecase)(nil)
)

// IsDemo reports whether b keeps notes locally.
func IsDemo(b NoteBackend) bool {
	d, ok := b.(interface{ Demo() bool })
	return ok && d.Demo()
}

// Selection inputs, resolved once per session.
type Selection struct {
	DatabaseConfigured bool
	ForceDemo          bool
}

// Select returns the demo backend when no database is configured, demo mode is
// forced, or the user is in an explicit demo session. Otherwise remote is used.
func Select(sel Selection, remote NoteBackend, newDemo func(entity.CurrentUser) NoteBackend, user entity.CurrentUser) NoteBackend {
	if remote == nil || !sel.DatabaseConfigured || sel.ForceDemo || user.Demo {
		return newDemo(user)
	}

	return remote
}
