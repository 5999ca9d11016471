package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/evgeniy-krivenko/exec-notes/internal/entity"
	"github.com/evgeniy-krivenko/exec-notes/internal/repository/converter"
	notesrepo "github.com/evgeniy-krivenko/exec-notes/internal/repository/notes/gen"
	"github.com/evgeniy-krivenko/exec-notes/pkg/logger/slogx"
)

func (r *Repo) CreateNote(ctx context.Context, createdBy, content string, opts entity.CreateNoteOptions) (entity.Note, error) {
	creator, err := userID(createdBy)
	if err != nil {
		return entity.Note{}, err
	}

	row, err := r.notesDB.CreateNote(ctx, notesrepo.CreateNoteParams{
		Title:          converter.ConvertStringToText(opts.Title),
		Content:        content,
		OwnerRole:      string(opts.OwnerRole),
		CreatedForRole: converter.ConvertStringToText(string(opts.CreatedForRole)),
		CreatedBy:      creator,
	})
	if err != nil {
		return entity.Note{}, storeErr("create note", err)
	}

	slogx.Debug(ctx, "success to create note", slogx.UserID(createdBy))

	return conv.ConvertNoteToEntity(row), nil
}

func (r *Repo) GetNote(ctx context.Context, id string) (entity.Note, error) {
	nid, err := noteID(id)
	if err != nil {
		return entity.Note{}, err
	}

	row, err := r.notesDB.GetNote(ctx, nid)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Note{}, entity.ErrNoteNotFound
		}
		return entity.Note{}, storeErr("get note", err)
	}

	return conv.ConvertNoteToEntity(row), nil
}

// ListOwnNotes lists the notes a user wrote on a role's dashboard, newest first.
// Before the dashboard columns exist it degrades to every note of the creator
// with the sharing flags left false.
func (r *Repo) ListOwnNotes(ctx context.Context, ownerRole entity.Role, createdBy string) ([]entity.Note, error) {
	creator, err := userID(createdBy)
	if err != nil {
		return nil, err
	}

	rows, err := r.notesDB.ListNotesByOwnerRole(ctx, notesrepo.ListNotesByOwnerRoleParams{
		OwnerRole: string(ownerRole),
		CreatedBy: creator,
	})
	if err == nil {
		return conv.ConvertNotesToEntity(rows), nil
	}

	if !IsSchemaMissing(err) {
		return nil, storeErr("list own notes", err)
	}

	slogx.Warn(ctx, "notes schema is behind, listing by creator only",
		slogx.Role(string(ownerRole)),
		slogx.Err(err),
	)

	legacy, err := r.notesDB.ListNotesByCreator(ctx, creator)
	if err != nil {
		return nil, storeErr("list notes by creator", err)
	}

	notes := conv.ConvertLegacyNotesToEntity(legacy)
	for i := range notes {
		notes[i].OwnerRole = ownerRole
	}

	return notes, nil
}

// ListSharedNotes lists notes shared with the user, either directly or through
// a share on the user's role that has no resolved recipient.
func (r *Repo) ListSharedNotes(ctx context.Context, recipient string, role entity.Role) ([]entity.Note, error) {
	uid, err := userID(recipient)
	if err != nil {
		return nil, err
	}

	rows, err := r.notesDB.ListSharedNotes(ctx, notesrepo.ListSharedNotesParams{
		UserID: uid,
		Role:   string(role),
	})
	if err != nil {
		if IsSchemaMissing(err) {
			slogx.Warn(ctx, "sharing schema is missing, no shared notes", slogx.UserID(recipient), slogx.Err(err))
			return nil, nil
		}
		return nil, storeErr("list shared notes", err)
	}

	return conv.ConvertNotesToEntity(rows), nil
}

// UpdateNote replaces content and, when title is not nil, the title.
func (r *Repo) UpdateNote(ctx context.Context, id, content string, title *string) error {
	nid, err := noteID(id)
	if err != nil {
		return err
	}

	params := notesrepo.UpdateNoteParams{ID: nid, Content: content}
	if title != nil {
		params.Title.String = *title
		params.Title.Valid = true
	}

	n, err := r.notesDB.UpdateNote(ctx, params)
	if err != nil {
		return storeErr("update note", err)
	}
	if n == 0 {
		return entity.ErrNoteNotFound
	}

	return nil
}

func (r *Repo) DeleteNote(ctx context.Context, id string) error {
	nid, err := noteID(id)
	if err != nil {
		return err
	}

	n, err := r.notesDB.DeleteNote(ctx, nid)
	if err != nil {
		return storeErr("delete note", err)
	}
	if n == 0 {
		return entity.ErrNoteNotFound
	}

	return nil
}
