package entity

import "time"

const DefaultNotificationLimit = 20

type NotificationType string

const (
	NotificationShared    NotificationType = "shared"
	NotificationEdited    NotificationType = "edited"
	NotificationUnshared  NotificationType = "unshared"
	NotificationCommented NotificationType = "commented"
)

type Notification struct {
	ID              string
	NoteID          string
	RecipientUserID string
	Type            NotificationType
	IsRead          bool
	Metadata        map[string]any
	CreatedAt       time.Time
}

// UnreadCount counts notifications not yet marked read.
func UnreadCount(notifications []Notification) int {
	var n int
	for _, item := range notifications {
		if !item.IsRead {
			n++
		}
	}

	return n
}

// Collection names a store table watched by the change feed.
type Collection string

const (
	CollectionUnknown       Collection = ""
	CollectionNotes         Collection = "notes"
	CollectionShares        Collection = "note_shares"
	CollectionNotifications Collection = "note_notifications"
)

// ChangeEvent signals that something changed; Collection may be unknown.
type ChangeEvent struct {
	Collection Collection
	NoteID     string
}
