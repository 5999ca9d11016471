package cli

import (
	"github.com/spf13/cobra"
)

// NewDashboardCommand prints one snapshot of the dashboard.
func NewDashboardCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show own notes, shared notes and notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			snap, err := s.ctrl.Refresh(s.ctx)
			if err != nil {
				return failed(err)
			}

			return s.out.Dashboard(conv.ConvertSnapshotToAPI(snap))
		},
	}
}

// NewWatchCommand prints the dashboard again on every change until interrupted.
func NewWatchCommand(opts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Follow dashboard changes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := opts.open(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			return watch(s)
		},
	}
}

func watch(s *session) error {
	snaps := s.ctrl.Watch(s.ctx)

	if err := s.ctrl.Start(s.ctx); err != nil {
		return failed(err)
	}

	for snap := range snaps {
		if err := s.out.Dashboard(conv.ConvertSnapshotToAPI(snap)); err != nil {
			return err
		}
	}

	return nil
}
