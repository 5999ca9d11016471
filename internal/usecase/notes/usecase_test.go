package notes_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/exec-notes/internal/entity"
	"github.com/evgeniy-krivenko/exec-notes/internal/usecase/notes"
)

type env struct {
	store *memStore
	tx    *inlineTx
	ident *staticIdentity
	uc    *notes.Usecase

	cto entity.CurrentUser
	ceo entity.CurrentUser
}

func newEnv(t *testing.T, opts ...notes.OptOptionsSetter) *env {
	t.Helper()

	e := &env{
		store: newMemStore(),
		tx:    &inlineTx{},
		cto:   entity.CurrentUser{ID: uuid.NewString(), Role: entity.RoleCTO},
		ceo:   entity.CurrentUser{ID: uuid.NewString(), Role: entity.RoleCEO},
	}
	e.store.profiles[entity.RoleCTO] = e.cto.ID
	e.store.profiles[entity.RoleCEO] = e.ceo.ID
	e.ident = &staticIdentity{user: &e.cto}

	uc, err := notes.New(notes.NewOptions(e.store, e.tx, e.ident, opts...))
	require.NoError(t, err)
	e.uc = uc

	return e
}

func (e *env) as(u entity.CurrentUser) {
	e.ident.user = &u
}

func TestNew_ValidatesOptions(t *testing.T) {
	_, err := notes.New(notes.NewOptions(nil, &inlineTx{}, &staticIdentity{}))
	require.Error(t, err)
}

func TestUsecase_CreateNote(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	note, err := e.uc.CreateNote(ctx, "Q3 roadmap", entity.CreateNoteOptions{OwnerRole: entity.RoleCTO})
	require.NoError(t, err)

	assert.False(t, note.IsShared)
	assert.False(t, note.IsCollaborative)
	assert.Equal(t, note.CreatedAt, note.UpdatedAt)
	assert.Equal(t, e.cto.ID, note.CreatedBy)

	own, err := e.uc.ListOwnNotes(ctx, entity.RoleCTO, e.cto.ID)
	require.NoError(t, err)
	require.Len(t, own, 1)
	assert.Equal(t, note.ID, own[0].ID)
}

func TestUsecase_CreateNote_Errors(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	_, err := e.uc.CreateNote(ctx, "", entity.CreateNoteOptions{OwnerRole: entity.RoleCTO})
	assert.ErrorIs(t, err, entity.ErrEmptyContent)

	_, err = e.uc.CreateNote(ctx, "x", entity.CreateNoteOptions{OwnerRole: "cfo"})
	assert.ErrorIs(t, err, entity.ErrValidation)

	e.ident.user = nil
	_, err = e.uc.CreateNote(ctx, "x", entity.CreateNoteOptions{OwnerRole: entity.RoleCTO})
	assert.ErrorIs(t, err, entity.ErrNotAuthenticated)

	_, err = e.uc.ShareNoteWithRole(ctx, entity.ShareRequest{NoteID: uuid.NewString(), Role: entity.RoleCEO, Permission: entity.PermissionView})
	assert.ErrorIs(t, err, entity.ErrNotAuthenticated)

	err = e.uc.UnshareNote(ctx, uuid.NewString(), "")
	assert.ErrorIs(t, err, entity.ErrNotAuthenticated)
}

func TestUsecase_ShareView(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	note, err := e.uc.CreateNote(ctx, "Budget", entity.CreateNoteOptions{OwnerRole: entity.RoleCTO})
	require.NoError(t, err)

	share, err := e.uc.ShareNoteWithRole(ctx, entity.ShareRequest{
		NoteID:     note.ID,
		Role:       entity.RoleCEO,
		Permission: entity.PermissionView,
	})
	require.NoError(t, err)
	assert.Equal(t, e.ceo.ID, share.SharedWithUserID)
	assert.Equal(t, 1, e.tx.calls)

	shares, err := e.uc.GetNoteShares(ctx, note.ID)
	require.NoError(t, err)
	require.Len(t, shares, 1)
	assert.Equal(t, entity.RoleCEO, shares[0].SharedWithRole)
	assert.Equal(t, entity.PermissionView, shares[0].PermissionLevel)

	got, err := e.uc.GetNote(ctx, note.ID)
	require.NoError(t, err)
	assert.True(t, got.IsShared)
	assert.False(t, got.IsCollaborative)
}

func TestUsecase_ShareTwiceUpdatesInPlace(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	note, err := e.uc.CreateNote(ctx, "Hiring plan", entity.CreateNoteOptions{OwnerRole: entity.RoleCTO})
	require.NoError(t, err)

	req := entity.ShareRequest{NoteID: note.ID, Role: entity.RoleCEO, Permission: entity.PermissionEdit}
	first, err := e.uc.ShareNoteWithRole(ctx, req)
	require.NoError(t, err)

	req.Message = "please review"
	second, err := e.uc.ShareNoteWithRole(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	shares, err := e.uc.GetNoteShares(ctx, note.ID)
	require.NoError(t, err)
	require.Len(t, shares, 1)
	assert.Equal(t, "please review", shares[0].Message)

	got, err := e.uc.GetNote(ctx, note.ID)
	require.NoError(t, err)
	assert.True(t, got.IsShared)
	assert.True(t, got.IsCollaborative)
}

func TestUsecase_UnshareRoundTrip(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	note, err := e.uc.CreateNote(ctx, "Vendors", entity.CreateNoteOptions{OwnerRole: entity.RoleCTO})
	require.NoError(t, err)

	_, err = e.uc.ShareNoteWithRole(ctx, entity.ShareRequest{NoteID: note.ID, Role: entity.RoleCEO, Permission: entity.PermissionEdit})
	require.NoError(t, err)

	require.NoError(t, e.uc.UnshareNote(ctx, note.ID, ""))

	got, err := e.uc.GetNote(ctx, note.ID)
	require.NoError(t, err)
	assert.False(t, got.IsShared)
	assert.False(t, got.IsCollaborative)

	require.NoError(t, e.uc.UnshareNote(ctx, note.ID, ""))
}

func TestUsecase_UnshareSingleRecipient(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	note, err := e.uc.CreateNote(ctx, "Offsite", entity.CreateNoteOptions{OwnerRole: entity.RoleCTO})
	require.NoError(t, err)

	_, err = e.uc.ShareNoteWithRole(ctx, entity.ShareRequest{NoteID: note.ID, Role: entity.RoleCEO, Permission: entity.PermissionView})
	require.NoError(t, err)

	require.NoError(t, e.uc.UnshareNote(ctx, note.ID, uuid.NewString()))
	shares, err := e.uc.GetNoteShares(ctx, note.ID)
	require.NoError(t, err)
	assert.Len(t, shares, 1)

	require.NoError(t, e.uc.UnshareNote(ctx, note.ID, e.ceo.ID))
	shares, err = e.uc.GetNoteShares(ctx, note.ID)
	require.NoError(t, err)
	assert.Empty(t, shares)
}

func TestUsecase_RoleShareWithoutProfile(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	delete(e.store.profiles, entity.RoleCEO)

	note, err := e.uc.CreateNote(ctx, "Board deck", entity.CreateNoteOptions{OwnerRole: entity.RoleCTO})
	require.NoError(t, err)

	share, err := e.uc.ShareNoteWithRole(ctx, entity.ShareRequest{NoteID: note.ID, Role: entity.RoleCEO, Permission: entity.PermissionView})
	require.NoError(t, err)
	assert.Empty(t, share.SharedWithUserID)

	shared, err := e.uc.ListSharedNotes(ctx, e.ceo.ID, entity.RoleCEO)
	require.NoError(t, err)
	require.Len(t, shared, 1)
	assert.Equal(t, note.ID, shared[0].ID)
}

func TestUsecase_UnshareRoleShareWithoutRecipient(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)
	delete(e.store.profiles, entity.RoleCEO)

	for _, recipient := range []string{"ceo", "profile"} {
		t.Run(recipient, func(t *testing.T) {
			note, err := e.uc.CreateNote(ctx, "Hiring plan", entity.CreateNoteOptions{OwnerRole: entity.RoleCTO})
			require.NoError(t, err)

			share, err := e.uc.ShareNoteWithRole(ctx, entity.ShareRequest{NoteID: note.ID, Role: entity.RoleCEO, Permission: entity.PermissionView})
			require.NoError(t, err)
			require.Empty(t, share.SharedWithUserID)

			if recipient == "profile" {
				// The CEO signed up after the note was shared.
				e.store.profiles[entity.RoleCEO] = e.ceo.ID
				recipient = e.ceo.ID
			}

			require.NoError(t, e.uc.UnshareNote(ctx, note.ID, recipient))

			shares, err := e.uc.GetNoteShares(ctx, note.ID)
			require.NoError(t, err)
			assert.Empty(t, shares)

			got, err := e.uc.GetNote(ctx, note.ID)
			require.NoError(t, err)
			assert.False(t, got.IsShared)
		})
	}
}

func TestUsecase_MarkAllNotificationsAsRead(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	for _, content := range []string{"a", "b"} {
		note, err := e.uc.CreateNote(ctx, content, entity.CreateNoteOptions{OwnerRole: entity.RoleCTO})
		require.NoError(t, err)
		_, err = e.uc.ShareNoteWithRole(ctx, entity.ShareRequest{NoteID: note.ID, Role: entity.RoleCEO, Permission: entity.PermissionView})
		require.NoError(t, err)
	}

	items, err := e.uc.ListNotifications(ctx, e.ceo.ID, entity.DefaultNotificationLimit)
	require.NoError(t, err)
	require.Equal(t, 2, entity.UnreadCount(items))

	require.NoError(t, e.uc.MarkNotificationAsRead(ctx, items[0].ID))
	items, err = e.uc.ListNotifications(ctx, e.ceo.ID, entity.DefaultNotificationLimit)
	require.NoError(t, err)
	assert.Equal(t, 1, entity.UnreadCount(items))

	for i := 0; i < 2; i++ {
		require.NoError(t, e.uc.MarkAllNotificationsAsRead(ctx, e.ceo.ID))

		items, err = e.uc.ListNotifications(ctx, e.ceo.ID, entity.DefaultNotificationLimit)
		require.NoError(t, err)
		assert.Zero(t, entity.UnreadCount(items))
	}
}

func TestUsecase_Q3RoadmapScenario(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	a, err := e.uc.CreateNote(ctx, "Q3 roadmap", entity.CreateNoteOptions{OwnerRole: entity.RoleCTO})
	require.NoError(t, err)
	require.False(t, a.IsShared)

	_, err = e.uc.ShareNoteWithRole(ctx, entity.ShareRequest{
		NoteID:     a.ID,
		Role:       entity.RoleCEO,
		Permission: entity.PermissionView,
		Message:    "FYI",
	})
	require.NoError(t, err)

	shares, err := e.uc.GetNoteShares(ctx, a.ID)
	require.NoError(t, err)
	require.Len(t, shares, 1)
	assert.Equal(t, entity.RoleCEO, shares[0].SharedWithRole)
	assert.Equal(t, entity.PermissionView, shares[0].PermissionLevel)

	got, err := e.uc.GetNote(ctx, a.ID)
	require.NoError(t, err)
	assert.True(t, got.IsShared)

	shared, err := e.uc.ListSharedNotes(ctx, e.ceo.ID, entity.RoleCEO)
	require.NoError(t, err)
	assert.True(t, containsNote(shared, a.ID))

	items, err := e.uc.ListNotifications(ctx, e.ceo.ID, entity.DefaultNotificationLimit)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, entity.NotificationShared, items[0].Type)

	require.NoError(t, e.uc.UnshareNote(ctx, a.ID, ""))

	shares, err = e.uc.GetNoteShares(ctx, a.ID)
	require.NoError(t, err)
	assert.Empty(t, shares)

	got, err = e.uc.GetNote(ctx, a.ID)
	require.NoError(t, err)
	assert.False(t, got.IsShared)

	shared, err = e.uc.ListSharedNotes(ctx, e.ceo.ID, entity.RoleCEO)
	require.NoError(t, err)
	assert.False(t, containsNote(shared, a.ID))
}

func TestUsecase_DegradedSharingSchema(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	note, err := e.uc.CreateNote(ctx, "Plan", entity.CreateNoteOptions{OwnerRole: entity.RoleCTO})
	require.NoError(t, err)

	e.store.sharingMissing = true

	shares, err := e.uc.GetNoteShares(ctx, note.ID)
	require.NoError(t, err)
	assert.Empty(t, shares)

	_, err = e.uc.ShareNoteWithRole(ctx, entity.ShareRequest{NoteID: note.ID, Role: entity.RoleCEO, Permission: entity.PermissionView})
	assert.ErrorIs(t, err, entity.ErrFeatureUnavailable)

	err = e.uc.UnshareNote(ctx, note.ID, "")
	assert.ErrorIs(t, err, entity.ErrFeatureUnavailable)
}

func TestUsecase_UpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t)

	note, err := e.uc.CreateNote(ctx, "draft", entity.CreateNoteOptions{OwnerRole: entity.RoleCTO})
	require.NoError(t, err)

	_, err = e.uc.ShareNoteWithRole(ctx, entity.ShareRequest{NoteID: note.ID, Role: entity.RoleCEO, Permission: entity.PermissionEdit})
	require.NoError(t, err)

	e.as(e.ceo)
	title := "Final"
	require.NoError(t, e.uc.UpdateNote(ctx, note.ID, "final text", &title))
	assert.ErrorIs(t, e.uc.UpdateNote(ctx, note.ID, " ", nil), entity.ErrEmptyContent)

	got, err := e.uc.GetNote(ctx, note.ID)
	require.NoError(t, err)
	assert.Equal(t, "final text", got.Content)
	assert.Equal(t, "Final", got.Title)
	assert.True(t, got.UpdatedAt.After(got.CreatedAt))

	items, err := e.uc.ListNotifications(ctx, e.ceo.ID, entity.DefaultNotificationLimit)
	require.NoError(t, err)
	require.NotEmpty(t, items)
	assert.Equal(t, entity.NotificationEdited, items[0].Type)

	require.NoError(t, e.uc.DeleteNote(ctx, note.ID))
	assert.ErrorIs(t, e.uc.DeleteNote(ctx, note.ID), entity.ErrNoteNotFound)
}

func TestUsecase_Subscribe(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	feed := &chanFeed{ch: make(chan entity.ChangeEvent, 1)}
	e := newEnv(t, notes.WithFeed(feed))

	events, err := e.uc.Subscribe(ctx)
	require.NoError(t, err)

	note, err := e.uc.CreateNote(ctx, "watch me", entity.CreateNoteOptions{OwnerRole: entity.RoleCTO})
	require.NoError(t, err)

	ev := receive(t, events)
	assert.Equal(t, entity.CollectionNotes, ev.Collection)
	assert.Equal(t, note.ID, ev.NoteID)

	feed.ch <- entity.ChangeEvent{Collection: entity.CollectionNotifications}
	ev = receive(t, events)
	assert.Equal(t, entity.CollectionNotifications, ev.Collection)

	cancel()
	assert.Eventually(t, func() bool {
		select {
		case _, ok := <-events:
			return !ok
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)
}

func receive(t *testing.T, events <-chan entity.ChangeEvent) entity.ChangeEvent {
	t.Helper()

	select {
	case ev := <-events:
		return ev
	case <-time.After(time.Second):
		t.Fatal("no change event")
		return entity.ChangeEvent{}
	}
}

func containsNote(notes []entity.Note, id string) bool {
	for _, n := range notes {
		if n.ID == id {
			return true
		}
	}

	return false
}
