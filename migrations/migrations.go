// Package migrations embeds the goose SQL migrations of the notes store.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS

// Versions at which the schema gains each capability.
const (
	VersionBase      int64 = 1
	VersionDashboard int64 = 2
	VersionSharing   int64 = 3
	VersionFeed      int64 = 4
)

// ChangeChannel is the NOTIFY channel the change feed triggers publish on.
const ChangeChannel = "note_changes"
