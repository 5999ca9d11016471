package cli

import (
	"github.com/spf13/cobra"

	"github.com/evgeniy-krivenko/exec-notes/internal/entity"
	v1 "github.com/evgeniy-krivenko/exec-notes/pkg/api/notes/v1"
)

// NewNotificationsCommand groups the notification commands.
func NewNotificationsCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "notifications",
		Aliases: []string{"notifs"},
		Short:   "Read and acknowledge notifications",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "list",
			Short: "List the latest notifications",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				s, err := opts.open(cmd)
				if err != nil {
					return err
				}
				defer s.Close()

				items, err := s.backend.ListNotifications(s.ctx, s.user.ID, opts.Limit)
				if err != nil {
					return failed(err)
				}

				return s.out.Notifications(v1.NotificationList{
					Items:       conv.ConvertNotificationsToAPI(items),
					UnreadCount: entity.UnreadCount(items),
				})
			},
		},
		&cobra.Command{
			Use:   "read <notification-id>",
			Short: "Mark one notification read",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				s, err := opts.open(cmd)
				if err != nil {
					return err
				}
				defer s.Close()

				if err := s.ctrl.MarkNotificationAsRead(s.ctx, args[0]); err != nil {
					return failed(err)
				}

				return s.out.Message("marked notification " + args[0] + " read")
			},
		},
		&cobra.Command{
			Use:   "read-all",
			Short: "Mark every notification read",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				s, err := opts.open(cmd)
				if err != nil {
					return err
				}
				defer s.Close()

				if err := s.ctrl.MarkAllNotificationsAsRead(s.ctx); err != nil {
					return failed(err)
				}

				return s.out.Message("marked all notifications read")
			},
		},
	)

	return cmd
}
