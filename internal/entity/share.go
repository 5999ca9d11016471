package entity

import (
	"fmt"
	"time"
)

type Share struct {
	ID               string
	NoteID           string
	SharedByUserID   string
	SharedByName     string
	SharedWithUserID string
	SharedWithRole   Role
	PermissionLevel  PermissionLevel
	Message          string
	CreatedAt        time.Time
}

type ShareRequest struct {
	NoteID     string
	Role       Role
	Permission PermissionLevel
	Message    string
}

func (r ShareRequest) Validate() error {
	if r.NoteID == "" {
		return fmt.Errorf("%w: note id is required", ErrValidation)
	}

	if !r.Role.Valid() {
		return InvalidRoleError(r.Role)
	}

	if !r.Permission.Valid() {
		return fmt.Errorf("%w: unknown permission level %q", ErrValidation, string(r.Permission))
	}

	return nil
}

// ShareResult is the discriminated outcome of a share attempt.
type ShareResult struct {
	Success bool
	Share   Share
	Err     error
}
