// Package v1 holds the JSON payloads of the notes HTTP API.
package v1

import "time"

type Note struct {
	ID              string    `json:"id" yaml:"id"`
	Title           string    `json:"title,omitempty" yaml:"title,omitempty"`
	Content         string    `json:"content" yaml:"content"`
	OwnerRole       string    `json:"owner_role" yaml:"owner_role"`
	CreatedForRole  string    `json:"created_for_role,omitempty" yaml:"created_for_role,omitempty"`
	IsShared        bool      `json:"is_shared" yaml:"is_shared"`
	IsCollaborative bool      `json:"is_collaborative" yaml:"is_collaborative"`
	CreatedBy       string    `json:"created_by" yaml:"created_by"`
	CreatedAt       time.Time `json:"created_at" yaml:"created_at"`
	UpdatedAt       time.Time `json:"updated_at" yaml:"updated_at"`
}

type Share struct {
	ID               string    `json:"id" yaml:"id"`
	NoteID           string    `json:"note_id" yaml:"note_id"`
	SharedByUserID   string    `json:"shared_by_user_id" yaml:"shared_by_user_id"`
	SharedByName     string    `json:"shared_by_name,omitempty" yaml:"shared_by_name,omitempty"`
	SharedWithUserID string    `json:"shared_with_user_id,omitempty" yaml:"shared_with_user_id,omitempty"`
	SharedWithRole   string    `json:"shared_with_role" yaml:"shared_with_role"`
	PermissionLevel  string    `json:"permission_level" yaml:"permission_level"`
	Message          string    `json:"message,omitempty" yaml:"message,omitempty"`
	CreatedAt        time.Time `json:"created_at" yaml:"created_at"`
}

type Notification struct {
	ID              string         `json:"id" yaml:"id"`
	NoteID          string         `json:"note_id" yaml:"note_id"`
	RecipientUserID string         `json:"recipient_user_id" yaml:"recipient_user_id"`
	Type            string         `json:"type" yaml:"type"`
	IsRead          bool           `json:"is_read" yaml:"is_read"`
	Metadata        map[string]any `json:"metadata,omitempty" yaml:"metadata,omitempty"`
	CreatedAt       time.Time      `json:"created_at" yaml:"created_at"`
}

type Dashboard struct {
	OwnNotes      []Note         `json:"own_notes" yaml:"own_notes"`
	SharedNotes   []Note         `json:"shared_notes" yaml:"shared_notes"`
	Notifications []Notification `json:"notifications" yaml:"notifications"`
	UnreadCount   int            `json:"unread_count" yaml:"unread_count"`
	Warnings      []string       `json:"warnings,omitempty" yaml:"warnings,omitempty"`
	Demo          bool           `json:"demo" yaml:"demo"`
	RefreshedAt   time.Time      `json:"refreshed_at" yaml:"refreshed_at"`
}

type NotificationList struct {
	Items       []Notification `json:"items" yaml:"items"`
	UnreadCount int            `json:"unread_count" yaml:"unread_count"`
}

type CreateNoteRequest struct {
	Content        string `json:"content"`
	Title          string `json:"title,omitempty"`
	OwnerRole      string `json:"owner_role,omitempty"`
	CreatedForRole string `json:"created_for_role,omitempty"`
}

type UpdateNoteRequest struct {
	Content string  `json:"content"`
	Title   *string `json:"title,omitempty"`
}

type ShareNoteRequest struct {
	Role       string `json:"role"`
	Permission string `json:"permission"`
	Message    string `json:"message,omitempty"`
}

type ShareResult struct {
	Success bool   `json:"success"`
	Share   *Share `json:"share,omitempty"`
	Error   string `json:"error,omitempty"`
}

type Error struct {
	Error string `json:"error"`
}
