// Package cli implements notesctl, the command line client of the notes
// backends.
package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evgeniy-krivenko/exec-notes/internal/cli/render"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Output string
	UserID string
	Role   string
	Demo   bool
	Limit  int

	// Open builds the backends. Defaults to the configured ones.
	Open Opener
}

// NewRootCommand creates the root command of notesctl.
func NewRootCommand(open Opener) *cobra.Command {
	if open == nil {
		open = openConfigured
	}
	opts := &RootOptions{Open: open}

	cmd := &cobra.Command{
		Use:           "notesctl",
		Short:         "Executive dashboard notes from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if _, err := render.ParseFormat(opts.Output); err != nil {
				return err
			}
			if opts.Limit < 1 || opts.Limit > 100 {
				return fmt.Errorf("invalid limit %d: must be between 1 and 100", opts.Limit)
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.Output, "output", "o", "text", "output format (text|json|yaml)")
	cmd.PersistentFlags().StringVar(&opts.UserID, "user-id", "", "id of the acting user")
	cmd.PersistentFlags().StringVar(&opts.Role, "role", "ceo", "role of the acting user (ceo|cto)")
	cmd.PersistentFlags().BoolVar(&opts.Demo, "demo", false, "use the local demo store")
	cmd.PersistentFlags().IntVar(&opts.Limit, "limit", 20, "max notifications to load")

	cmd.AddCommand(NewDashboardCommand(opts))
	cmd.AddCommand(NewWatchCommand(opts))
	cmd.AddCommand(NewNotesCommand(opts))
	cmd.AddCommand(NewShareCommand(opts))
	cmd.AddCommand(NewUnshareCommand(opts))
	cmd.AddCommand(NewSharesCommand(opts))
	cmd.AddCommand(NewNotificationsCommand(opts))
	cmd.AddCommand(NewMigrateCommand())

	return cmd
}

// Execute runs notesctl with ctx bound to every command.
func Execute(ctx context.Context, cmd *cobra.Command) error {
	return cmd.ExecuteContext(ctx)
}
