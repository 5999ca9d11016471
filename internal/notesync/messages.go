package notesync

import (
	"errors"

	"github.com/evgeniy-krivenko/exec-notes/internal/entity"
)

// UserMessage turns an error into text that can be shown to a dashboard user.
func UserMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, entity.ErrNotAuthenticated):
		return "Please sign in to continue."
	case errors.Is(err, entity.ErrEmptyContent):
		return "Note content cannot be empty."
	case errors.Is(err, entity.ErrValidation):
		return "Some of the entered values are invalid."
	case errors.Is(err, entity.ErrFeatureUnavailable):
		return "Note sharing is not set up yet. Please contact your administrator."
	case errors.Is(err, entity.ErrNotSupportedInDemoMode):
		return "Sharing is not available in demo mode."
	case errors.Is(err, entity.ErrNoteNotFound):
		return "This note no longer exists."
	case errors.Is(err, ErrClosed):
		return "The dashboard was closed."
	default:
		return "Something went wrong. Please try again."
	}
}
