package demo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/evgeniy-krivenko/exec-notes/internal/entity"
	"github.com/evgeniy-krivenko/exec-notes/pkg/logger/slogx"
)

type storedNote struct {
	ID             string    `json:"id"`
	Title          string    `json:"title,omitempty"`
	Content        string    `json:"content"`
	OwnerRole      string    `json:"owner_role"`
	CreatedForRole string    `json:"created_for_role,omitempty"`
	CreatedBy      string    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// load returns the role collection, materialising the seed notes on first use.
func (b *Backend) load(role entity.Role) ([]entity.Note, error) {
	notes, ok, err := b.peek(role)
	if err != nil {
		return nil, err
	}
	if ok {
		return notes, nil
	}

	notes = seedNotes(role, b.creatorFor(role), b.now())
	if err := b.save(role, notes); err != nil {
		return nil, err
	}

	return notes, nil
}

// peek reads a stored collection without seeding. A corrupt value reads as empty.
func (b *Backend) peek(role entity.Role) ([]entity.Note, bool, error) {
	raw, ok, err := b.store.Get(CollectionKey(role))
	if err != nil {
		return nil, false, entity.NewStoreError("read demo notes", err)
	}
	if !ok {
		return nil, false, nil
	}

	var stored []storedNote
	if err := json.Unmarshal([]byte(raw), &stored); err != nil {
		slogx.Warn(context.Background(), "demo notes are corrupt, starting empty",
			slogx.Role(string(role)),
			slogx.Err(err),
		)
		return []entity.Note{}, true, nil
	}

	notes := make([]entity.Note, 0, len(stored))
	for _, s := range stored {
		notes = append(notes, entity.Note{
			ID:             s.ID,
			Title:          s.Title,
			Content:        s.Content,
			OwnerRole:      entity.Role(s.OwnerRole),
			CreatedForRole: entity.Role(s.CreatedForRole),
			CreatedBy:      s.CreatedBy,
			CreatedAt:      s.CreatedAt,
			UpdatedAt:      s.UpdatedAt,
		})
	}

	return notes, true, nil
}

func (b *Backend) save(role entity.Role, notes []entity.Note) error {
	stored := make([]storedNote, 0, len(notes))
	for _, n := range notes {
		stored = append(stored, storedNote{
			ID:             n.ID,
			Title:          n.Title,
			Content:        n.Content,
			OwnerRole:      string(n.OwnerRole),
			CreatedForRole: string(n.CreatedForRole),
			CreatedBy:      n.CreatedBy,
			CreatedAt:      n.CreatedAt,
			UpdatedAt:      n.UpdatedAt,
		})
	}

	raw, err := json.Marshal(stored)
	if err != nil {
		return fmt.Errorf("encode demo notes: %w", err)
	}

	if err := b.store.Set(CollectionKey(role), string(raw)); err != nil {
		return entity.NewStoreError("write demo notes", err)
	}

	return nil
}

func (b *Backend) creatorFor(role entity.Role) string {
	if b.user.ID != "" && b.user.Role == role {
		return b.user.ID
	}

	return "demo-" + string(role)
}

func seedNotes(role entity.Role, createdBy string, at time.Time) []entity.Note {
	return []entity.Note{
		{
			ID:        "demo-sample-" + string(role),
			Title:     "Sample note",
			Content:   "Try editing or deleting this note. Sharing becomes available once the dashboard is connected to a database.",
			OwnerRole: role,
			CreatedBy: createdBy,
			CreatedAt: at,
			UpdatedAt: at,
		},
		{
			ID:        "demo-welcome-" + string(role),
			Title:     "Welcome to your dashboard",
			Content:   "This is a demo workspace. Notes you write here are kept on this device only.",
			OwnerRole: role,
			CreatedBy: createdBy,
			CreatedAt: at.Add(-time.Minute),
			UpdatedAt: at.Add(-time.Minute),
		},
	}
}
