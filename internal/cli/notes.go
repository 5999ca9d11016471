package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/evgeniy-krivenko/exec-notes/internal/entity"
)

// NewNotesCommand groups the note commands.
func NewNotesCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notes",
		Short: "Manage notes",
	}

	cmd.AddCommand(
		newNotesListCommand(opts),
		newNotesSharedCommand(opts),
		newNotesGetCommand(opts),
		newNotesCreateCommand(opts),
		newNotesUpdateCommand(opts),
		newNotesDeleteCommand(opts),
	)

	return cmd
}

func newNotesListCommand(opts *RootOptions) *cobra.Command {
	var owner string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List notes owned by a role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			role := s.user.Role
			if owner != "" {
				if role, err = entity.ParseRole(owner); err != nil {
					return err
				}
			}

			notes, err := s.backend.ListOwnNotes(s.ctx, role, s.user.ID)
			if err != nil {
				return failed(err)
			}

			return s.out.Notes("Own notes", conv.ConvertNotesToAPI(notes))
		},
	}

	cmd.Flags().StringVar(&owner, "owner-role", "", "owner role, defaults to --role")

	return cmd
}

func newNotesSharedCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shared",
		Short: "List notes shared with the acting user",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			notes, err := s.backend.ListSharedNotes(s.ctx, s.user.ID, s.user.Role)
			if err != nil {
				return failed(err)
			}

			return s.out.Notes("Shared with you", conv.ConvertNotesToAPI(notes))
		},
	}
}

func newNotesGetCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <note-id>",
		Short: "Show one note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			note, err := s.backend.GetNote(s.ctx, args[0])
			if err != nil {
				return failed(err)
			}

			return s.out.Note(conv.ConvertNoteToAPI(note))
		},
	}
}

func newNotesCreateCommand(opts *RootOptions) *cobra.Command {
	var title, forRole string

	cmd := &cobra.Command{
		Use:   "create <content>...",
		Short: "Create a note owned by the acting role",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			note, err := s.ctrl.CreateNote(s.ctx, strings.Join(args, " "), entity.CreateNoteOptions{
				Title:          title,
				OwnerRole:      s.user.Role,
				CreatedForRole: entity.Role(forRole),
			})
			if err != nil {
				return failed(err)
			}

			return s.out.Note(conv.ConvertNoteToAPI(note))
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "note title")
	cmd.Flags().StringVar(&forRole, "for-role", "", "role the note is written for")

	return cmd
}

func newNotesUpdateCommand(opts *RootOptions) *cobra.Command {
	var title string

	cmd := &cobra.Command{
		Use:   "update <note-id> <content>...",
		Short: "Replace the content of a note",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			var newTitle *string
			if cmd.Flags().Changed("title") {
				newTitle = &title
			}

			if err := s.ctrl.UpdateNote(s.ctx, args[0], strings.Join(args[1:], " "), newTitle); err != nil {
				return failed(err)
			}

			return s.out.Message("updated note " + args[0])
		},
	}

	cmd.Flags().StringVar(&title, "title", "", "new title")

	return cmd
}

func newNotesDeleteCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <note-id>",
		Short: "Delete a note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.ctrl.DeleteNote(s.ctx, args[0]); err != nil {
				return failed(err)
			}

			return s.out.Message("deleted note " + args[0])
		},
	}
}
