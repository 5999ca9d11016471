package ctxtr_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/exec-notes/internal/ctxtr"
	"github.com/evgeniy-krivenko/exec-notes/internal/entity"
)

func TestIdentity(t *testing.T) {
	_, err := ctxtr.Identity{}.CurrentUser(context.Background())
	assert.ErrorIs(t, err, entity.ErrNotAuthenticated)

	ctx := ctxtr.WithUser(context.Background(), entity.CurrentUser{ID: "u1", Role: entity.RoleCEO})
	user, err := ctxtr.Identity{}.CurrentUser(ctx)
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestAuthMiddleware(t *testing.T) {
	var (
		got    entity.CurrentUser
		hasUsr bool
	)
	h := ctxtr.AuthMiddleware("s3cret")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, hasUsr = ctxtr.User(r.Context())
	}))

	cases := []struct {
		name    string
		headers map[string]string
		status  int
		user    *entity.CurrentUser
	}{
		{name: "missing token", headers: map[string]string{}, status: http.StatusUnauthorized},
		{name: "wrong token", headers: map[string]string{"Authorization": "Bearer nope"}, status: http.StatusUnauthorized},
		{name: "anonymous", headers: map[string]string{"Authorization": "Bearer s3cret"}, status: http.StatusOK},
		{
			name: "user",
			headers: map[string]string{
				"Authorization":      "Bearer s3cret",
				ctxtr.HeaderUserID:   "u1",
				ctxtr.HeaderUserRole: "CTO",
			},
			status: http.StatusOK,
			user:   &entity.CurrentUser{ID: "u1", Role: entity.RoleCTO},
		},
		{
			name: "demo session",
			headers: map[string]string{
				"Authorization":         "Bearer s3cret",
				ctxtr.HeaderUserRole:    "ceo",
				ctxtr.HeaderDemoSession: "true",
			},
			status: http.StatusOK,
			user:   &entity.CurrentUser{Role: entity.RoleCEO, Demo: true},
		},
		{
			name: "bad role",
			headers: map[string]string{
				"Authorization":      "Bearer s3cret",
				ctxtr.HeaderUserID:   "u1",
				ctxtr.HeaderUserRole: "cfo",
			},
			status: http.StatusBadRequest,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, hasUsr = entity.CurrentUser{}, false

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			for k, v := range tc.headers {
				req.Header.Set(k, v)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tc.status, rec.Code)
			if tc.user != nil {
				require.True(t, hasUsr)
				assert.Equal(t, *tc.user, got)
			} else {
				assert.False(t, hasUsr)
			}
		})
	}
}
