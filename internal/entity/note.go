package entity

import (
	"strings"
	"time"
)

type Note struct {
	ID              string
	Title           string
	Content         string
	OwnerRole       Role
	CreatedForRole  Role
	IsShared        bool
	IsCollaborative bool
	CreatedBy       string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// Flags returns the derived sharing flags stored on the note.
func (n Note) Flags() NoteFlags {
	return NoteFlags{IsShared: n.IsShared, IsCollaborative: n.IsCollaborative}
}

type CreateNoteOptions struct {
	Title          string
	OwnerRole      Role
	CreatedForRole Role
}

// ValidateContent rejects empty or blank note content.
func ValidateContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return ErrEmptyContent
	}

	return nil
}

func (o CreateNoteOptions) Validate(content string) error {
	if err := ValidateContent(content); err != nil {
		return err
	}

	if !o.OwnerRole.Valid() {
		return InvalidRoleError(o.OwnerRole)
	}

	if o.CreatedForRole != "" && !o.CreatedForRole.Valid() {
		return InvalidRoleError(o.CreatedForRole)
	}

	return nil
}

// NoteFlags are the denormalized sharing flags kept on a note.
type NoteFlags struct {
	IsShared        bool
	IsCollaborative bool
}

// DeriveFlags computes the note flags from its active shares.
func DeriveFlags(shares []Share) NoteFlags {
	var flags NoteFlags
	for _, s := range shares {
		flags.IsShared = true
		if s.PermissionLevel == PermissionEdit {
			flags.IsCollaborative = true
			break
		}
	}

	return flags
}
