package ctxtr

import (
	"context"

	"github.com/evgeniy-krivenko/exec-notes/internal/entity"
)

type ctxKey string

const userKey ctxKey = "current_user"

func WithUser(ctx context.Context, user entity.CurrentUser) context.Context {
	return context.WithValue(ctx, userKey, user)
}

func User(ctx context.Context) (entity.CurrentUser, bool) {
	user, ok := ctx.Value(userKey).(entity.CurrentUser)
	return user, ok
}

// Identity resolves the caller from the request context.
type Identity struct{}

func (Identity) CurrentUser(ctx context.Context) (entity.CurrentUser, error) {
	user, ok := User(ctx)
	if !ok || user.ID == "" {
		return entity.CurrentUser{}, entity.ErrNotAuthenticated
	}

	return user, nil
}
