// Package demo is the note backend used without a database: a role-scoped
// note collection kept in a local key-value store. Sharing is not supported.
package demo

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/evgeniy-krivenko/exec-notes/internal/entity"
	"github.com/evgeniy-krivenko/exec-notes/pkg/kvstore"
	"github.com/evgeniy-krivenko/exec-notes/pkg/logger/slogx"
)

const keyPrefix = "demo_notes_"

type Backend struct {
	mu    *sync.Mutex
	store kvstore.Store
	user  entity.CurrentUser
	now   func() time.Time
}

func New(store kvstore.Store, user entity.CurrentUser) *Backend {
	return newBackend(store, user, new(sync.Mutex))
}

func newBackend(store kvstore.Store, user entity.CurrentUser, mu *sync.Mutex) *Backend {
	return &Backend{mu: mu, store: store, user: user, now: time.Now}
}

// WithClock replaces the time source used for timestamps.
func (b *Backend) WithClock(now func() time.Time) *Backend {
	b.now = now
	return b
}

// Demo marks the backend as local-only.
func (b *Backend) Demo() bool { return true }

func CollectionKey(role entity.Role) string {
	return keyPrefix + string(role)
}

func (b *Backend) ListOwnNotes(_ context.Context, ownerRole entity.Role, _ string) ([]entity.Note, error) {
	if !ownerRole.Valid() {
		return nil, entity.InvalidRoleError(ownerRole)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	notes, err := b.load(ownerRole)
	if err != nil {
		return nil, err
	}

	return notes, nil
}

func (b *Backend) ListSharedNotes(context.Context, string, entity.Role) ([]entity.Note, error) {
	return []entity.Note{}, nil
}

func (b *Backend) ListNotifications(context.Context, string, int) ([]entity.Notification, error) {
	return []entity.Notification{}, nil
}

func (b *Backend) GetNoteShares(context.Context, string) ([]entity.Share, error) {
	return []entity.Share{}, nil
}

func (b *Backend) GetNote(_ context.Context, id string) (entity.Note, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	_, notes, i, err := b.find(id)
	if err != nil {
		return entity.Note{}, err
	}

	return notes[i], nil
}

func (b *Backend) CreateNote(ctx context.Context, content string, opts entity.CreateNoteOptions) (entity.Note, error) {
	if err := opts.Validate(content); err != nil {
		return entity.Note{}, fmt.Errorf("demo create note: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	notes, err := b.load(opts.OwnerRole)
	if err != nil {
		return entity.Note{}, err
	}

	at := b.now()
	note := entity.Note{
		ID:             "demo-" + uuid.NewString(),
		Title:          opts.Title,
		Content:        content,
		OwnerRole:      opts.OwnerRole,
		CreatedForRole: opts.CreatedForRole,
		CreatedBy:      b.creator(),
		CreatedAt:      at,
		UpdatedAt:      at,
	}

	if err := b.save(opts.OwnerRole, slices.Insert(notes, 0, note)); err != nil {
		return entity.Note{}, err
	}

	slogx.Debug(ctx, "demo note created", slogx.NoteID(note.ID), slogx.Role(string(opts.OwnerRole)))
	return note, nil
}

func (b *Backend) UpdateNote(_ context.Context, id, content string, title *string) error {
	if err := entity.ValidateContent(content); err != nil {
		return fmt.Errorf("demo update note: %w", err)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	role, notes, i, err := b.find(id)
	if err != nil {
		return err
	}

	notes[i].Content = content
	if title != nil {
		notes[i].Title = *title
	}
	notes[i].UpdatedAt = b.now()

	return b.save(role, notes)
}

func (b *Backend) DeleteNote(_ context.Context, id string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	role, notes, i, err := b.find(id)
	if err != nil {
		return err
	}

	return b.save(role, slices.Delete(notes, i, i+1))
}

func (b *Backend) ShareNoteWithRole(context.Context, entity.ShareRequest) (entity.Share, error) {
	return entity.Share{}, entity.ErrNotSupportedInDemoMode
}

func (b *Backend) UnshareNote(context.Context, string, string) error {
	return entity.ErrNotSupportedInDemoMode
}

// Demo mode has no notifications, so marking them read has nothing to do.
func (b *Backend) MarkNotificationAsRead(context.Context, string) error { return nil }

func (b *Backend) MarkAllNotificationsAsRead(context.Context, string) error { return nil }

func (b *Backend) creator() string {
	if b.user.ID != "" {
		return b.user.ID
	}

	return "demo-" + string(b.user.Role)
}

// find looks a note up in the session role collection first, then in the other
// role's collection if one was ever stored.
func (b *Backend) find(id string) (entity.Role, []entity.Note, int, error) {
	roles := []entity.Role{entity.RoleCEO, entity.RoleCTO}
	if b.user.Role.Valid() {
		roles = []entity.Role{b.user.Role, b.user.Role.Counterpart()}
	}

	for _, role := range roles {
		notes, ok, err := b.peek(role)
		if err != nil {
			return "", nil, 0, err
		}
		if !ok {
			continue
		}

		if i := slices.IndexFunc(notes, func(n entity.Note) bool { return n.ID == id }); i >= 0 {
			return role, notes, i, nil
		}
	}

	return "", nil, 0, entity.ErrNoteNotFound
}
