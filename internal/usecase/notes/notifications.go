package notes

import (
	"context"
	"fmt"

	"github.com/evgeniy-krivenko/exec-notes/internal/entity"
)

func (u *Usecase) MarkNotificationAsRead(ctx context.Context, id string) error {
	if err := u.repo.MarkNotificationRead(ctx, id); err != nil {
		return fmt.Errorf("usecase mark notification read: %w", err)
	}

	u.publish(entity.CollectionNotifications, "")

	return nil
}

func (u *Usecase) MarkAllNotificationsAsRead(ctx context.Context, userID string) error {
	if err := u.repo.MarkAllNotificationsRead(ctx, userID); err != nil {
		return fmt.Errorf("usecase mark all notifications read: %w", err)
	}

	u.publish(entity.CollectionNotifications, "")

	return nil
}
