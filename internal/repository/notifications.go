package repository

import (
	"context"
	"fmt"

	"github.com/evgeniy-krivenko/exec-notes/internal/entity"
	"github.com/evgeniy-krivenko/exec-notes/internal/repository/converter"
	notesrepo "github.com/evgeniy-krivenko/exec-notes/internal/repository/notes/gen"
	"github.com/evgeniy-krivenko/exec-notes/pkg/logger/slogx"
)

// ListNotifications returns the latest notifications of a user, newest first.
// A non-positive limit falls back to entity.DefaultNotificationLimit.
func (r *Repo) ListNotifications(ctx context.Context, recipient string, limit int) ([]entity.Notification, error) {
	uid, err := userID(recipient)
	if err != nil {
		return nil, err
	}

	if limit <= 0 {
		limit = entity.DefaultNotificationLimit
	}

	rows, err := r.notesDB.ListNotifications(ctx, notesrepo.ListNotificationsParams{
		RecipientUserID: uid,
		Limit:           int32(limit),
	})
	if err != nil {
		if IsSchemaMissing(err) {
			slogx.Warn(ctx, "notifications schema is missing, no notifications", slogx.UserID(recipient), slogx.Err(err))
			return nil, nil
		}
		return nil, storeErr("list notifications", err)
	}

	return conv.ConvertNotificationsToEntity(rows), nil
}

func (r *Repo) MarkNotificationRead(ctx context.Context, id string) error {
	nid, err := converter.ConvertStringToUUID(id)
	if err != nil {
		return fmt.Errorf("%w: invalid notification id %q", entity.ErrValidation, id)
	}

	if err := r.notesDB.MarkNotificationRead(ctx, nid); err != nil {
		return featureErr("mark notification read", err)
	}

	return nil
}

func (r *Repo) MarkAllNotificationsRead(ctx context.Context, recipient string) error {
	uid, err := userID(recipient)
	if err != nil {
		return err
	}

	if _, err := r.notesDB.MarkAllNotificationsRead(ctx, uid); err != nil {
		return featureErr("mark all notifications read", err)
	}

	return nil
}
