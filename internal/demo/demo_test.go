package demo_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/exec-notes/internal/demo"
	"github.com/evgeniy-krivenko/exec-notes/internal/entity"
	"github.com/evgeniy-krivenko/exec-notes/pkg/kvstore"
)

func fixedClock() func() time.Time {
	at := time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		at = at.Add(time.Second)
		return at
	}
}

func newBackend(t *testing.T, store kvstore.Store, role entity.Role) *demo.Backend {
	t.Helper()
	return demo.New(store, entity.CurrentUser{Role: role, Demo: true}).WithClock(fixedClock())
}

func TestSeeds(t *testing.T) {
	ctx := context.Background()
	store := kvstore.NewMemoryStore()
	b := newBackend(t, store, entity.RoleCEO)

	notes, err := b.ListOwnNotes(ctx, entity.RoleCEO, "")
	require.NoError(t, err)
	require.Len(t, notes, 2)
	assert.Equal(t, "demo-sample-ceo", notes[0].ID)
	assert.Equal(t, "demo-welcome-ceo", notes[1].ID)
	assert.Equal(t, "demo-ceo", notes[0].CreatedBy)

	_, ok, err := store.Get(demo.CollectionKey(entity.RoleCEO))
	require.NoError(t, err)
	assert.True(t, ok, "seeds are persisted")

	again, err := newBackend(t, store, entity.RoleCEO).ListOwnNotes(ctx, entity.RoleCEO, "")
	require.NoError(t, err)
	assert.Equal(t, notes, again)
}

func TestSeedsNotRecreatedAfterDeletingAll(t *testing.T) {
	ctx := context.Background()
	b := newBackend(t, kvstore.NewMemoryStore(), entity.RoleCTO)

	notes, err := b.ListOwnNotes(ctx, entity.RoleCTO, "")
	require.NoError(t, err)
	for _, n := range notes {
		require.NoError(t, b.DeleteNote(ctx, n.ID))
	}

	notes, err = b.ListOwnNotes(ctx, entity.RoleCTO, "")
	require.NoError(t, err)
	assert.Empty(t, notes)
}

func TestCreateThenDeleteRestoresCollection(t *testing.T) {
	ctx := context.Background()
	b := newBackend(t, kvstore.NewMemoryStore(), entity.RoleCTO)

	before, err := b.ListOwnNotes(ctx, entity.RoleCTO, "")
	require.NoError(t, err)

	note, err := b.CreateNote(ctx, "Q3 roadmap", entity.CreateNoteOptions{OwnerRole: entity.RoleCTO})
	require.NoError(t, err)
	assert.False(t, note.IsShared)
	assert.False(t, note.IsCollaborative)
	assert.Equal(t, note.CreatedAt, note.UpdatedAt)

	during, err := b.ListOwnNotes(ctx, entity.RoleCTO, "")
	require.NoError(t, err)
	require.Len(t, during, len(before)+1)
	assert.Equal(t, note.ID, during[0].ID)

	require.NoError(t, b.DeleteNote(ctx, note.ID))

	after, err := b.ListOwnNotes(ctx, entity.RoleCTO, "")
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestUpdateNote(t *testing.T) {
	ctx := context.Background()
	b := newBackend(t, kvstore.NewMemoryStore(), entity.RoleCEO)

	note, err := b.CreateNote(ctx, "draft", entity.CreateNoteOptions{OwnerRole: entity.RoleCEO})
	require.NoError(t, err)

	title := "Board prep"
	require.NoError(t, b.UpdateNote(ctx, note.ID, "final", &title))

	got, err := b.GetNote(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "final", got.Content)
	assert.Equal(t, "Board prep", got.Title)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))

	assert.ErrorIs(t, b.UpdateNote(ctx, note.ID, "", nil), entity.ErrEmptyContent)
	assert.ErrorIs(t, b.UpdateNote(ctx, "missing", "x", nil), entity.ErrNoteNotFound)
	assert.ErrorIs(t, b.DeleteNote(ctx, "missing"), entity.ErrNoteNotFound)
}

func TestCreateValidation(t *testing.T) {
	b := newBackend(t, kvstore.NewMemoryStore(), entity.RoleCEO)

	_, err := b.CreateNote(context.Background(), "   ", entity.CreateNoteOptions{OwnerRole: entity.RoleCEO})
	assert.ErrorIs(t, err, entity.ErrEmptyContent)
}

func TestSharingIsRejected(t *testing.T) {
	ctx := context.Background()
	b := newBackend(t, kvstore.NewMemoryStore(), entity.RoleCTO)

	note, err := b.CreateNote(ctx, "Q3 roadmap", entity.CreateNoteOptions{OwnerRole: entity.RoleCTO})
	require.NoError(t, err)

	for _, perm := range []entity.PermissionLevel{entity.PermissionView, entity.PermissionEdit} {
		_, err = b.ShareNoteWithRole(ctx, entity.ShareRequest{NoteID: note.ID, Role: entity.RoleCEO, Permission: perm})
		assert.ErrorIs(t, err, entity.ErrNotSupportedInDemoMode)
	}
	assert.ErrorIs(t, b.UnshareNote(ctx, note.ID, ""), entity.ErrNotSupportedInDemoMode)

	shared, err := b.ListSharedNotes(ctx, "", entity.RoleCEO)
	require.NoError(t, err)
	assert.Empty(t, shared)

	shares, err := b.GetNoteShares(ctx, note.ID)
	require.NoError(t, err)
	assert.Empty(t, shares)

	require.NoError(t, b.MarkAllNotificationsAsRead(ctx, ""))
}

func TestCallerIDIsCreator(t *testing.T) {
	b := demo.New(kvstore.NewMemoryStore(), entity.CurrentUser{ID: "u-1", Role: entity.RoleCEO, Demo: true})

	note, err := b.CreateNote(context.Background(), "x", entity.CreateNoteOptions{OwnerRole: entity.RoleCEO})
	require.NoError(t, err)
	assert.Equal(t, "u-1", note.CreatedBy)
}

func TestReloadFromFileStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	fs, err := kvstore.NewFileStore(dir)
	require.NoError(t, err)

	note, err := newBackend(t, fs, entity.RoleCEO).CreateNote(ctx, "persist me", entity.CreateNoteOptions{OwnerRole: entity.RoleCEO})
	require.NoError(t, err)

	reopened, err := kvstore.NewFileStore(dir)
	require.NoError(t, err)

	got, err := newBackend(t, reopened, entity.RoleCEO).GetNote(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "persist me", got.Content)
}

type disabledStore struct{}

func (disabledStore) Get(string) (string, bool, error) { return "", false, errors.New("storage disabled") }
func (disabledStore) Set(string, string) error          { return errors.New("storage disabled") }

func TestDisabledStorageDegradesToMemory(t *testing.T) {
	ctx := context.Background()
	b := newBackend(t, kvstore.NewFallback(disabledStore{}), entity.RoleCTO)

	notes, err := b.ListOwnNotes(ctx, entity.RoleCTO, "")
	require.NoError(t, err)
	assert.Len(t, notes, 2)

	_, err = b.CreateNote(ctx, "in memory", entity.CreateNoteOptions{OwnerRole: entity.RoleCTO})
	require.NoError(t, err)

	notes, err = b.ListOwnNotes(ctx, entity.RoleCTO, "")
	require.NoError(t, err)
	assert.Len(t, notes, 3)
}

// readOnlyStore wraps a store whose writes fail after it was filled.
type readOnlyStore struct {
	kvstore.Store
}

func (readOnlyStore) Set(string, string) error { return errors.New("read-only file system") }

func TestWriteFailureKeepsOtherRoleCollection(t *testing.T) {
	ctx := context.Background()
	disk := kvstore.NewMemoryStore()

	cto := newBackend(t, disk, entity.RoleCTO)
	_, err := cto.CreateNote(ctx, "saved before the disk filled up", entity.CreateNoteOptions{OwnerRole: entity.RoleCTO})
	require.NoError(t, err)

	store := kvstore.NewFallback(readOnlyStore{Store: disk})

	ceo := newBackend(t, store, entity.RoleCEO)
	_, err = ceo.CreateNote(ctx, "kept in memory", entity.CreateNoteOptions{OwnerRole: entity.RoleCEO})
	require.NoError(t, err)
	assert.True(t, store.Degraded())

	notes, err := newBackend(t, store, entity.RoleCTO).ListOwnNotes(ctx, entity.RoleCTO, "")
	require.NoError(t, err)
	require.Len(t, notes, 3)
	assert.Equal(t, "saved before the disk filled up", notes[0].Content)

	notes, err = ceo.ListOwnNotes(ctx, entity.RoleCEO, "")
	require.NoError(t, err)
	assert.Len(t, notes, 3)
}

func TestStorageFailureWithoutFallback(t *testing.T) {
	b := newBackend(t, disabledStore{}, entity.RoleCTO)

	_, err := b.ListOwnNotes(context.Background(), entity.RoleCTO, "")
	assert.True(t, entity.IsStoreError(err))
}

func TestSessionsShareOneCollection(t *testing.T) {
	ctx := context.Background()
	sessions := demo.NewSessions(kvstore.NewMemoryStore())

	alice := entity.CurrentUser{ID: "alice", Role: entity.RoleCTO, Demo: true}
	assert.Same(t, sessions.For(alice), sessions.For(alice))

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		i := i
		wg.Add(1)
		go func() {
			defer wg.Done()
			user := entity.CurrentUser{ID: fmt.Sprintf("user-%d", i%3), Role: entity.RoleCTO, Demo: true}
			_, err := sessions.For(user).CreateNote(ctx, "note", entity.CreateNoteOptions{OwnerRole: entity.RoleCTO})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	notes, err := sessions.For(alice).ListOwnNotes(ctx, entity.RoleCTO, "")
	require.NoError(t, err)
	assert.Len(t, notes, 12)
}
