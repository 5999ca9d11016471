package notes_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/evgeniy-krivenko/exec-notes/internal/entity"
)

// memStore mimics the Postgres repository including the notification trigger.
type memStore struct {
	mu sync.Mutex

	now           time.Time
	profiles      map[entity.Role]string
	notes         map[string]entity.Note
	shares        map[string]entity.Share
	notifications []entity.Notification

	sharingMissing bool
}

func newMemStore() *memStore {
	return &memStore{
		now:      time.Date(2024, 7, 1, 9, 0, 0, 0, time.UTC),
		profiles: map[entity.Role]string{},
		notes:    map[string]entity.Note{},
		shares:   map[string]entity.Share{},
	}
}

func (s *memStore) tick() time.Time {
	s.now = s.now.Add(time.Second)
	return s.now
}

func shareKey(noteID string, role entity.Role) string {
	return noteID + "/" + string(role)
}

func (s *memStore) featureErr(op string) error {
	return fmt.Errorf("%s: %w", op, entity.ErrFeatureUnavailable)
}

func (s *memStore) CreateNote(_ context.Context, createdBy, content string, opts entity.CreateNoteOptions) (entity.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	at := s.tick()
	note := entity.Note{
		ID:             uuid.NewString(),
		Title:          opts.Title,
		Content:        content,
		OwnerRole:      opts.OwnerRole,
		CreatedForRole: opts.CreatedForRole,
		CreatedBy:      createdBy,
		CreatedAt:      at,
		UpdatedAt:      at,
	}
	s.notes[note.ID] = note

	return note, nil
}

func (s *memStore) GetNote(_ context.Context, id string) (entity.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	note, ok := s.notes[id]
	if !ok {
		return entity.Note{}, entity.ErrNoteNotFound
	}

	return note, nil
}

func (s *memStore) UpdateNote(_ context.Context, id, content string, title *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	note, ok := s.notes[id]
	if !ok {
		return entity.ErrNoteNotFound
	}

	note.Content = content
	if title != nil {
		note.Title = *title
	}
	note.UpdatedAt = s.tick()
	s.notes[id] = note

	if note.IsShared {
		for _, sh := range s.shares {
			if sh.NoteID == id && sh.SharedWithUserID != "" {
				s.notifyLocked(id, sh.SharedWithUserID, entity.NotificationEdited)
			}
		}
	}

	return nil
}

func (s *memStore) DeleteNote(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.notes[id]; !ok {
		return entity.ErrNoteNotFound
	}
	delete(s.notes, id)

	for k, sh := range s.shares {
		if sh.NoteID == id {
			delete(s.shares, k)
		}
	}

	kept := s.notifications[:0]
	for _, n := range s.notifications {
		if n.NoteID != id {
			kept = append(kept, n)
		}
	}
	s.notifications = kept

	return nil
}

func (s *memStore) ListOwnNotes(_ context.Context, ownerRole entity.Role, createdBy string) ([]entity.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []entity.Note
	for _, n := range s.notes {
		if n.OwnerRole == ownerRole && n.CreatedBy == createdBy {
			out = append(out, n)
		}
	}

	return newestFirst(out), nil
}

func (s *memStore) ListSharedNotes(_ context.Context, recipient string, role entity.Role) ([]entity.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sharingMissing {
		return nil, nil
	}

	seen := map[string]bool{}
	var out []entity.Note
	for _, sh := range s.shares {
		match := sh.SharedWithUserID == recipient || (sh.SharedWithUserID == "" && sh.SharedWithRole == role)
		note := s.notes[sh.NoteID]
		if !match || note.CreatedBy == recipient || seen[note.ID] {
			continue
		}
		seen[note.ID] = true
		out = append(out, note)
	}

	return newestFirst(out), nil
}

func (s *memStore) ListNotifications(_ context.Context, recipient string, limit int) ([]entity.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sharingMissing {
		return nil, nil
	}

	var out []entity.Notification
	for i := len(s.notifications) - 1; i >= 0 && len(out) < limit; i-- {
		if s.notifications[i].RecipientUserID == recipient {
			out = append(out, s.notifications[i])
		}
	}

	return out, nil
}

func (s *memStore) ResolveRoleUser(_ context.Context, role entity.Role) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sharingMissing {
		return "", s.featureErr("resolve role user")
	}

	return s.profiles[role], nil
}

func (s *memStore) UpsertShare(_ context.Context, share entity.Share) (entity.Share, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sharingMissing {
		return entity.Share{}, s.featureErr("upsert share")
	}

	if _, ok := s.notes[share.NoteID]; !ok {
		return entity.Share{}, entity.ErrNoteNotFound
	}

	key := shareKey(share.NoteID, share.SharedWithRole)
	if prev, ok := s.shares[key]; ok {
		share.ID = prev.ID
		share.CreatedAt = prev.CreatedAt
	} else {
		share.ID = uuid.NewString()
		share.CreatedAt = s.tick()
	}
	s.shares[key] = share

	if share.SharedWithUserID != "" {
		s.notifyLocked(share.NoteID, share.SharedWithUserID, entity.NotificationShared)
	}

	return share, nil
}

func (s *memStore) ListNoteShares(_ context.Context, noteID string) ([]entity.Share, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sharingMissing {
		return nil, nil
	}

	var out []entity.Share
	for _, sh := range s.shares {
		if sh.NoteID == noteID {
			out = append(out, sh)
		}
	}

	return out, nil
}

func (s *memStore) DeleteShares(_ context.Context, noteID, sharedBy, recipient string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sharingMissing {
		return 0, s.featureErr("delete shares")
	}

	var n int64
	for k, sh := range s.shares {
		if sh.NoteID != noteID || sh.SharedByUserID != sharedBy {
			continue
		}
		if recipient != "" && !s.sharedWithLocked(sh, recipient) {
			continue
		}
		delete(s.shares, k)
		n++

		if sh.SharedWithUserID != "" {
			s.notifyLocked(noteID, sh.SharedWithUserID, entity.NotificationUnshared)
		}
	}

	return n, nil
}

// sharedWithLocked matches a recipient user id or role, including role shares
// that never resolved to a user.
func (s *memStore) sharedWithLocked(sh entity.Share, recipient string) bool {
	if sh.SharedWithUserID != "" {
		return sh.SharedWithUserID == recipient
	}

	return string(sh.SharedWithRole) == recipient || s.profiles[sh.SharedWithRole] == recipient
}

func (s *memStore) SetNoteFlags(_ context.Context, noteID string, flags entity.NoteFlags) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sharingMissing {
		return s.featureErr("set note flags")
	}

	note, ok := s.notes[noteID]
	if !ok {
		return nil
	}
	note.IsShared = flags.IsShared
	note.IsCollaborative = flags.IsCollaborative
	s.notes[noteID] = note

	return nil
}

func (s *memStore) MarkNotificationRead(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].ID == id {
			s.notifications[i].IsRead = true
		}
	}

	return nil
}

func (s *memStore) MarkAllNotificationsRead(_ context.Context, recipient string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notifications {
		if s.notifications[i].RecipientUserID == recipient {
			s.notifications[i].IsRead = true
		}
	}

	return nil
}

func (s *memStore) notifyLocked(noteID, recipient string, typ entity.NotificationType) {
	s.notifications = append(s.notifications, entity.Notification{
		ID:              uuid.NewString(),
		NoteID:          noteID,
		RecipientUserID: recipient,
		Type:            typ,
		Metadata:        map[string]any{},
		CreatedAt:       s.tick(),
	})
}

func newestFirst(notes []entity.Note) []entity.Note {
	sort.Slice(notes, func(i, j int) bool {
		return notes[i].CreatedAt.After(notes[j].CreatedAt)
	})

	return notes
}

type inlineTx struct {
	calls int
}

func (t *inlineTx) RunInTx(ctx context.Context, f func(context.Context) error) error {
	t.calls++
	return f(ctx)
}

type staticIdentity struct {
	user *entity.CurrentUser
}

func (i *staticIdentity) CurrentUser(context.Context) (entity.CurrentUser, error) {
	if i.user == nil {
		return entity.CurrentUser{}, entity.ErrNotAuthenticated
	}

	return *i.user, nil
}

type chanFeed struct {
	ch chan entity.ChangeEvent
}

func (f *chanFeed) Subscribe(context.Context) (<-chan entity.ChangeEvent, error) {
	return f.ch, nil
}
