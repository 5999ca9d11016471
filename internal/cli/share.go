package cli

import (
	"github.com/spf13/cobra"

	"github.com/evgeniy-krivenko/exec-notes/internal/entity"
	"github.com/evgeniy-krivenko/exec-notes/internal/notesync"
	v1 "github.com/evgeniy-krivenko/exec-notes/pkg/api/notes/v1"
)

// NewShareCommand shares a note with the user holding a role.
func NewShareCommand(opts *RootOptions) *cobra.Command {
	var (
		with       string
		permission string
		message    string
	)

	cmd := &cobra.Command{
		Use:   "share <note-id>",
		Short: "Share a note with a role",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			res := s.ctrl.ShareNoteWithRole(s.ctx, entity.ShareRequest{
				NoteID:     args[0],
				Role:       entity.Role(with),
				Permission: entity.PermissionLevel(permission),
				Message:    message,
			})

			out := v1.ShareResult{Success: res.Success}
			if res.Success {
				share := conv.ConvertShareToAPI(res.Share)
				out.Share = &share
			} else {
				out.Error = notesync.UserMessage(res.Err)
			}

			if err := s.out.ShareResult(out); err != nil {
				return err
			}

			return failed(res.Err)
		},
	}

	cmd.Flags().StringVar(&with, "with", "", "recipient role (ceo|cto)")
	cmd.Flags().StringVar(&permission, "permission", string(entity.PermissionView), "permission level (view|edit)")
	cmd.Flags().StringVar(&message, "message", "", "message for the recipient")
	_ = cmd.MarkFlagRequired("with")

	return cmd
}

// NewUnshareCommand removes the shares of a note for one recipient.
func NewUnshareCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "unshare <note-id> <recipient-user-id|role>",
		Short: "Stop sharing a note with a user or role",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			if err := s.ctrl.UnshareNote(s.ctx, args[0], args[1]); err != nil {
				return failed(err)
			}

			return s.out.Message("unshared note " + args[0])
		},
	}
}

// NewSharesCommand lists the shares of a note.
func NewSharesCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shares <note-id>",
		Short: "List who a note is shared with",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			shares, err := s.backend.GetNoteShares(s.ctx, args[0])
			if err != nil {
				return failed(err)
			}

			return s.out.Shares(conv.ConvertSharesToAPI(shares))
		},
	}
}
