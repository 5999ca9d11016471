package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/evgeniy-krivenko/exec-notes/internal/entity"
	"github.com/evgeniy-krivenko/exec-notes/internal/repository/converter"
	notesrepo "github.com/evgeniy-krivenko/exec-notes/internal/repository/notes/gen"
	"github.com/evgeniy-krivenko/exec-notes/pkg/logger/slogx"
)

// ResolveRoleUser returns the designated user of a role: the earliest created
// profile holding it. An empty id means nobody holds the role yet.
func (r *Repo) ResolveRoleUser(ctx context.Context, role entity.Role) (string, error) {
	id, err := r.notesDB.ResolveRoleUser(ctx, string(role))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", featureErr("resolve role user", err)
	}

	return converter.ConvertUUIDToString(id), nil
}

// UpsertShare writes the single share of a note for a role, replacing the
// permission and message of an existing one.
func (r *Repo) UpsertShare(ctx context.Context, share entity.Share) (entity.Share, error) {
	nid, err := noteID(share.NoteID)
	if err != nil {
		return entity.Share{}, err
	}

	sharer, err := userID(share.SharedByUserID)
	if err != nil {
		return entity.Share{}, err
	}

	var recipient pgtype.UUID
	if share.SharedWithUserID != "" {
		if recipient, err = userID(share.SharedWithUserID); err != nil {
			return entity.Share{}, err
		}
	}

	row, err := r.notesDB.UpsertShare(ctx, notesrepo.UpsertShareParams{
		NoteID:           nid,
		SharedByUserID:   sharer,
		SharedWithUserID: recipient,
		SharedWithRole:   string(share.SharedWithRole),
		PermissionLevel:  string(share.PermissionLevel),
		Message:          converter.ConvertStringToText(share.Message),
	})
	if err != nil {
		if isForeignKeyViolation(err) {
			return entity.Share{}, entity.ErrNoteNotFound
		}
		return entity.Share{}, featureErr("upsert share", err)
	}

	return conv.ConvertShareToEntity(row), nil
}

// ListNoteShares lists the active shares of a note with the sharer's display name.
func (r *Repo) ListNoteShares(ctx context.Context, id string) ([]entity.Share, error) {
	nid, err := noteID(id)
	if err != nil {
		return nil, nil
	}

	rows, err := r.notesDB.ListNoteShares(ctx, nid)
	if err != nil {
		if IsSchemaMissing(err) {
			slogx.Warn(ctx, "sharing schema is missing, no shares", slogx.NoteID(id), slogx.Err(err))
			return nil, nil
		}
		return nil, storeErr("list note shares", err)
	}

	return conv.ConvertShareRowsToEntity(rows), nil
}

// DeleteShares removes the share of one recipient when recipient is set,
// otherwise every share of the note created by sharedBy. recipient is a user
// id, or a role name for role-level shares that never resolved to a user. A
// user id also matches an unresolved share of that user's role. Missing rows
// are not an error.
func (r *Repo) DeleteShares(ctx context.Context, id, sharedBy, recipient string) (int64, error) {
	nid, err := noteID(id)
	if err != nil {
		return 0, nil
	}

	sharer, err := userID(sharedBy)
	if err != nil {
		return 0, err
	}

	var n int64
	switch role := entity.Role(recipient); {
	case recipient == "":
		n, err = r.notesDB.DeleteSharesBySharer(ctx, notesrepo.DeleteSharesBySharerParams{
			NoteID:         nid,
			SharedByUserID: sharer,
		})
		if err != nil {
			return 0, featureErr("delete shares", err)
		}

	case role.Valid():
		n, err = r.notesDB.DeleteShareForRole(ctx, notesrepo.DeleteShareForRoleParams{
			NoteID:         nid,
			SharedByUserID: sharer,
			SharedWithRole: string(role),
		})
		if err != nil {
			return 0, featureErr("delete role share", err)
		}

	default:
		rid, err := userID(recipient)
		if err != nil {
			return 0, err
		}

		n, err = r.notesDB.DeleteShareForRecipient(ctx, notesrepo.DeleteShareForRecipientParams{
			NoteID:         nid,
			SharedByUserID: sharer,
			RecipientID:    rid,
		})
		if err != nil {
			return 0, featureErr("delete recipient share", err)
		}
	}

	return n, nil
}

func (r *Repo) SetNoteFlags(ctx context.Context, id string, flags entity.NoteFlags) error {
	nid, err := noteID(id)
	if err != nil {
		return err
	}

	err = r.notesDB.SetNoteFlags(ctx, notesrepo.SetNoteFlagsParams{
		ID:              nid,
		IsShared:        flags.IsShared,
		IsCollaborative: flags.IsCollaborative,
	})
	if err != nil {
		return featureErr("set note flags", err)
	}

	return nil
}
