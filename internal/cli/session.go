package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/evgeniy-krivenko/exec-notes/internal/api/notes/converter"
	"github.com/evgeniy-krivenko/exec-notes/internal/api/notes/converter/generated"
	"github.com/evgeniy-krivenko/exec-notes/internal/app"
	"github.com/evgeniy-krivenko/exec-notes/internal/backend"
	"github.com/evgeniy-krivenko/exec-notes/internal/cli/render"
	"github.com/evgeniy-krivenko/exec-notes/internal/config"
	"github.com/evgeniy-krivenko/exec-notes/internal/ctxtr"
	"github.com/evgeniy-krivenko/exec-notes/internal/entity"
	"github.com/evgeniy-krivenko/exec-notes/internal/notesync"
)

var conv converter.Converter = &generated.ConverterImpl{}

// Resolver picks the backend for a user.
type Resolver func(user entity.CurrentUser) backend.NoteBackend

// Opener prepares backends and returns a func releasing them.
type Opener func(ctx context.Context) (Resolver, func() error, error)

func openConfigured(ctx context.Context) (Resolver, func() error, error) {
	cfg, err := config.Parse()
	if err != nil {
		return nil, nil, err
	}

	b, err := app.Build(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	return b.Resolve, b.Close, nil
}

type session struct {
	ctx     context.Context
	user    entity.CurrentUser
	backend backend.NoteBackend
	ctrl    *notesync.Controller
	out     *render.Printer
	close   func() error
}

// open resolves the acting user and a sync controller over its backend. The
// caller must call s.Close.
func (o *RootOptions) open(cmd *cobra.Command) (*session, error) {
	role, err := entity.ParseRole(o.Role)
	if err != nil {
		return nil, err
	}
	user := entity.CurrentUser{ID: o.UserID, Role: role, Demo: o.Demo}

	format, err := render.ParseFormat(o.Output)
	if err != nil {
		return nil, err
	}

	ctx := ctxtr.WithUser(cmd.Context(), user)

	resolve, closeFn, err := o.Open(ctx)
	if err != nil {
		return nil, fmt.Errorf("open backends: %w", err)
	}
	if closeFn == nil {
		closeFn = func() error { return nil }
	}

	b := resolve(user)
	ctrl, err := notesync.New(notesync.NewOptions(b, user, notesync.WithNotificationLimit(o.Limit)))
	if err != nil {
		return nil, errors.Join(err, closeFn())
	}

	return &session{
		ctx:     ctx,
		user:    user,
		backend: b,
		ctrl:    ctrl,
		out:     render.New(cmd.OutOrStdout(), format),
		close:   closeFn,
	}, nil
}

func (s *session) Close() error {
	return errors.Join(s.ctrl.Close(), s.close())
}

// userError keeps the cause for errors.Is but prints the dashboard message.
type userError struct {
	err error
}

func (e userError) Error() string { return notesync.UserMessage(e.err) }
func (e userError) Unwrap() error { return e.err }

func failed(err error) error {
	if err == nil {
		return nil
	}
	return userError{err: err}
}
