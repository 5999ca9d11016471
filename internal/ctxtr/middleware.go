package ctxtr

import (
	"crypto/subtle"
	"net/http"
	"strconv"
	"strings"

	"github.com/evgeniy-krivenko/exec-notes/internal/entity"
)

const (
	HeaderUserID      = "X-User-ID"
	HeaderUserRole    = "X-User-Role"
	HeaderDemoSession = "X-Demo-Session"
)

// AuthMiddleware puts the caller into the request context. When token is set,
// requests must carry it as a bearer token. Requests without a user id stay
// anonymous unless they ask for a demo session.
func AuthMiddleware(token string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if token != "" && !validBearer(r.Header.Get("Authorization"), token) {
				http.Error(w, "unauthorized", http.StatusUnauthorized)
				return
			}

			demo, _ := strconv.ParseBool(r.Header.Get(HeaderDemoSession))
			id := r.Header.Get(HeaderUserID)
			rawRole := r.Header.Get(HeaderUserRole)

			if id == "" && !demo {
				next.ServeHTTP(w, r)
				return
			}

			role, err := entity.ParseRole(strings.ToLower(rawRole))
			if err != nil {
				http.Error(w, "invalid "+HeaderUserRole, http.StatusBadRequest)
				return
			}

			ctx := WithUser(r.Context(), entity.CurrentUser{ID: id, Role: role, Demo: demo})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func validBearer(header, token string) bool {
	got, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(got), []byte(token)) == 1
}
