package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evgeniy-krivenko/exec-notes/internal/app"
	"github.com/evgeniy-krivenko/exec-notes/internal/config"
	"github.com/evgeniy-krivenko/exec-notes/migrations"
	"github.com/evgeniy-krivenko/exec-notes/pkg/logger/slogx"
)

// NewMigrateCommand applies the store migrations to the configured database.
func NewMigrateCommand() *cobra.Command {
	var version int64

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Long: fmt.Sprintf(`Apply the notes schema migrations.

Versions: %d base notes, %d dashboard roles, %d sharing and notifications,
%d change feed. Stopping before %d leaves sharing unavailable.`,
			migrations.VersionBase, migrations.VersionDashboard, migrations.VersionSharing,
			migrations.VersionFeed, migrations.VersionSharing),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Parse()
			if err != nil {
				return err
			}
			if !cfg.Database.Configured() {
				return errors.New("database is not configured")
			}

			db, err := app.Connect(cmd.Context(), cfg.Database)
			if err != nil {
				return err
			}
			defer db.Close()

			if err := db.Migrate(cmd.Context(), migrations.FS, version, slogx.Component("migrate")); err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), "migrations applied")
			return err
		},
	}

	cmd.Flags().Int64Var(&version, "version", 0, "target version, 0 for the latest")

	return cmd
}
