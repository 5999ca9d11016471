package notes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/evgeniy-krivenko/exec-notes/internal/backend"
	"github.com/evgeniy-krivenko/exec-notes/internal/ctxtr"
	"github.com/evgeniy-krivenko/exec-notes/internal/entity"
	"github.com/evgeniy-krivenko/exec-notes/internal/notesync"
	v1 "github.com/evgeniy-krivenko/exec-notes/pkg/api/notes/v1"
	"github.com/evgeniy-krivenko/exec-notes/pkg/logger/slogx"
)

const maxBodyBytes = 1 << 20

func respondJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func respondError(ctx context.Context, w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		slogx.Error(ctx, "request failed", slogx.Err(err))
	}

	respondJSON(w, status, v1.Error{Error: notesync.UserMessage(err)})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, entity.ErrNotAuthenticated):
		return http.StatusUnauthorized
	case errors.Is(err, entity.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, entity.ErrNoteNotFound):
		return http.StatusNotFound
	case errors.Is(err, entity.ErrNotSupportedInDemoMode):
		return http.StatusConflict
	case errors.Is(err, entity.ErrFeatureUnavailable):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		return errors.Join(entity.ErrValidation, err)
	}

	return nil
}

// session returns the caller and the backend chosen for them.
func (s *Service) session(r *http.Request) (entity.CurrentUser, backend.NoteBackend, error) {
	user, ok := ctxtr.User(r.Context())
	if !ok {
		return entity.CurrentUser{}, nil, entity.ErrNotAuthenticated
	}

	return user, s.resolve(user), nil
}

func (s *Service) limit(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("limit")
	if raw == "" {
		return s.notificationLimit, nil
	}

	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > 100 {
		return 0, errors.Join(entity.ErrValidation, errors.New("limit must be between 1 and 100"))
	}

	return n, nil
}
