package converter

import (
	"github.com/evgeniy-krivenko/exec-notes/internal/entity"
	"github.com/evgeniy-krivenko/exec-notes/internal/notesync"
	v1 "github.com/evgeniy-krivenko/exec-notes/pkg/api/notes/v1"
)

// goverter:converter
// goverter:output:file ./generated/generated.go
// goverter:output:package generated
// goverter:extend ConvertRoleToString
// goverter:extend ConvertPermissionToString
// goverter:extend ConvertNotificationTypeToString
//go:generate go run github.com/jmattheis/goverter/cmd/goverter@v1.7.0 gen .
type Converter interface {
	ConvertNoteToAPI(note entity.Note) v1.Note
	ConvertNotesToAPI(notes []entity.Note) []v1.Note

	ConvertShareToAPI(share entity.Share) v1.Share
	ConvertSharesToAPI(shares []entity.Share) []v1.Share

	ConvertNotificationToAPI(n entity.Notification) v1.Notification
	ConvertNotificationsToAPI(ns []entity.Notification) []v1.Notification

	ConvertSnapshotToAPI(snap notesync.Snapshot) v1.Dashboard
}

func ConvertRoleToString(r entity.Role) string {
	return string(r)
}

func ConvertPermissionToString(p entity.PermissionLevel) string {
	return string(p)
}

func ConvertNotificationTypeToString(t entity.NotificationType) string {
	return string(t)
}
