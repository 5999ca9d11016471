package converter

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/evgeniy-krivenko/exec-notes/internal/entity"
	notesrepo "github.com/evgeniy-krivenko/exec-notes/internal/repository/notes/gen"
)

// goverter:converter
// goverter:output:file ./generated/generated.go
// goverter:output:package generated
// goverter:extend ConvertTimestampzToTime
// goverter:extend ConvertUUIDToString
// goverter:extend ConvertTextToString
// goverter:extend ConvertTextToRole
// goverter:extend ConvertJSONToMetadata
// goverter:skipCopySameType
//go:generate go run github.com/jmattheis/goverter/cmd/goverter@v1.7.0 gen .
type Converter interface {
	ConvertNoteToEntity(row notesrepo.Note) entity.Note
	ConvertNotesToEntity(rows []notesrepo.Note) []entity.Note

	// goverter:ignore OwnerRole CreatedForRole IsShared IsCollaborative
	ConvertLegacyNoteToEntity(row notesrepo.ListNotesByCreatorRow) entity.Note
	ConvertLegacyNotesToEntity(rows []notesrepo.ListNotesByCreatorRow) []entity.Note

	// goverter:ignore SharedByName
	ConvertShareToEntity(row notesrepo.NoteShare) entity.Share
	ConvertShareRowToEntity(row notesrepo.ListNoteSharesRow) entity.Share
	ConvertShareRowsToEntity(rows []notesrepo.ListNoteSharesRow) []entity.Share

	ConvertNotificationToEntity(row notesrepo.NoteNotification) entity.Notification
	ConvertNotificationsToEntity(rows []notesrepo.NoteNotification) []entity.Notification
}

func ConvertTimestampzToTime(t pgtype.Timestamptz) time.Time {
	return t.Time
}

func ConvertTimeToTimestampz(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: !t.IsZero()}
}

func ConvertUUIDToString(id pgtype.UUID) string {
	if !id.Valid {
		return ""
	}

	return uuid.UUID(id.Bytes).String()
}

func ConvertStringToUUID(s string) (pgtype.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return pgtype.UUID{}, err
	}

	return pgtype.UUID{Bytes: id, Valid: true}, nil
}

func ConvertTextToString(t pgtype.Text) string {
	if !t.Valid {
		return ""
	}

	return t.String
}

func ConvertStringToText(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: s != ""}
}

func ConvertTextToRole(t pgtype.Text) entity.Role {
	return entity.Role(ConvertTextToString(t))
}

// ConvertJSONToMetadata decodes a jsonb column; malformed payloads yield an empty map.
func ConvertJSONToMetadata(raw []byte) map[string]any {
	md := map[string]any{}
	if len(raw) == 0 {
		return md
	}

	if err := json.Unmarshal(raw, &md); err != nil {
		return map[string]any{}
	}

	return md
}
