package notes

import (
	"context"
	"fmt"

	"github.com/evgeniy-krivenko/exec-notes/internal/entity"
	"github.com/evgeniy-krivenko/exec-notes/pkg/logger/slogx"
)

// ShareNoteWithRole creates or updates the share of a note for a role and
// re-derives the note flags in the same transaction. The recipient
// notification is written by the store.
func (u *Usecase) ShareNoteWithRole(ctx context.Context, req entity.ShareRequest) (entity.Share, error) {
	user, err := u.identity.CurrentUser(ctx)
	if err != nil {
		return entity.Share{}, fmt.Errorf("usecase share note: %w", err)
	}

	if err := req.Validate(); err != nil {
		return entity.Share{}, fmt.Errorf("usecase share note: %w", err)
	}

	var share entity.Share
	err = u.transactor.RunInTx(ctx, func(ctx context.Context) error {
		recipient, err := u.repo.ResolveRoleUser(ctx, req.Role)
		if err != nil {
			return fmt.Errorf("resolve recipient: %w", err)
		}

		share, err = u.repo.UpsertShare(ctx, entity.Share{
			NoteID:           req.NoteID,
			SharedByUserID:   user.ID,
			SharedWithUserID: recipient,
			SharedWithRole:   req.Role,
			PermissionLevel:  req.Permission,
			Message:          req.Message,
		})
		if err != nil {
			return fmt.Errorf("upsert share: %w", err)
		}

		return u.syncFlags(ctx, req.NoteID)
	})
	if err != nil {
		return entity.Share{}, fmt.Errorf("usecase share note: %w", err)
	}

	u.publish(entity.CollectionShares, req.NoteID)

	slogx.Info(ctx, "note shared",
		slogx.UserID(user.ID),
		slogx.NoteID(req.NoteID),
		slogx.Role(string(req.Role)),
	)

	return share, nil
}

// UnshareNote removes the share of recipientID, a user id or a role name, or
// every share of the note made by the caller when recipientID is empty.
// Unsharing twice is not an error.
func (u *Usecase) UnshareNote(ctx context.Context, noteID, recipientID string) error {
	user, err := u.identity.CurrentUser(ctx)
	if err != nil {
		return fmt.Errorf("usecase unshare note: %w", err)
	}

	var removed int64
	err = u.transactor.RunInTx(ctx, func(ctx context.Context) error {
		removed, err = u.repo.DeleteShares(ctx, noteID, user.ID, recipientID)
		if err != nil {
			return fmt.Errorf("delete shares: %w", err)
		}

		return u.syncFlags(ctx, noteID)
	})
	if err != nil {
		return fmt.Errorf("usecase unshare note: %w", err)
	}

	if removed > 0 {
		u.publish(entity.CollectionShares, noteID)
	}

	return nil
}

func (u *Usecase) GetNoteShares(ctx context.Context, noteID string) ([]entity.Share, error) {
	shares, err := u.repo.ListNoteShares(ctx, noteID)
	if err != nil {
		return nil, fmt.Errorf("usecase get note shares: %w", err)
	}

	return shares, nil
}

// syncFlags recomputes is_shared and is_collaborative from the remaining shares.
func (u *Usecase) syncFlags(ctx context.Context, noteID string) error {
	shares, err := u.repo.ListNoteShares(ctx, noteID)
	if err != nil {
		return fmt.Errorf("list shares: %w", err)
	}

	if err := u.repo.SetNoteFlags(ctx, noteID, entity.DeriveFlags(shares)); err != nil {
		return fmt.Errorf("set note flags: %w", err)
	}

	return nil
}
