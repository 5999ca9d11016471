package notes

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/evgeniy-krivenko/exec-notes/internal/entity"
	"github.com/evgeniy-krivenko/exec-notes/internal/notesync"
	v1 "github.com/evgeniy-krivenko/exec-notes/pkg/api/notes/v1"
)

func (s *Service) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, b, err := s.session(r)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	limit, err := s.limit(r)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	snap, err := notesync.Load(ctx, b, user, limit)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	respondJSON(w, http.StatusOK, conv.ConvertSnapshotToAPI(snap))
}

func (s *Service) handleListOwnNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, b, err := s.session(r)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	role := user.Role
	if raw := r.URL.Query().Get("role"); raw != "" {
		if role, err = entity.ParseRole(raw); err != nil {
			respondError(ctx, w, err)
			return
		}
	}

	notes, err := b.ListOwnNotes(ctx, role, user.ID)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	respondJSON(w, http.StatusOK, nonNil(conv.ConvertNotesToAPI(notes)))
}

func (s *Service) handleListSharedNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, b, err := s.session(r)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	notes, err := b.ListSharedNotes(ctx, user.ID, user.Role)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	respondJSON(w, http.StatusOK, nonNil(conv.ConvertNotesToAPI(notes)))
}

func (s *Service) handleCreateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, b, err := s.session(r)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	var req v1.CreateNoteRequest
	if err := decode(w, r, &req); err != nil {
		respondError(ctx, w, err)
		return
	}

	opts := entity.CreateNoteOptions{
		Title:          req.Title,
		OwnerRole:      entity.Role(req.OwnerRole),
		CreatedForRole: entity.Role(req.CreatedForRole),
	}
	if opts.OwnerRole == "" {
		opts.OwnerRole = user.Role
	}

	note, err := b.CreateNote(ctx, req.Content, opts)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	respondJSON(w, http.StatusCreated, conv.ConvertNoteToAPI(note))
}

func (s *Service) handleGetNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, b, err := s.session(r)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	note, err := b.GetNote(ctx, mux.Vars(r)["id"])
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	respondJSON(w, http.StatusOK, conv.ConvertNoteToAPI(note))
}

func (s *Service) handleUpdateNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, b, err := s.session(r)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	var req v1.UpdateNoteRequest
	if err := decode(w, r, &req); err != nil {
		respondError(ctx, w, err)
		return
	}

	if err := b.UpdateNote(ctx, mux.Vars(r)["id"], req.Content, req.Title); err != nil {
		respondError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleDeleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, b, err := s.session(r)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	if err := b.DeleteNote(ctx, mux.Vars(r)["id"]); err != nil {
		respondError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleGetNoteShares(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, b, err := s.session(r)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	shares, err := b.GetNoteShares(ctx, mux.Vars(r)["id"])
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	respondJSON(w, http.StatusOK, nonNil(conv.ConvertSharesToAPI(shares)))
}

// handleShareNote always answers with a ShareResult body, failures included.
func (s *Service) handleShareNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, b, err := s.session(r)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	var req v1.ShareNoteRequest
	if err := decode(w, r, &req); err != nil {
		respondError(ctx, w, err)
		return
	}

	share, err := b.ShareNoteWithRole(ctx, entity.ShareRequest{
		NoteID:     mux.Vars(r)["id"],
		Role:       entity.Role(req.Role),
		Permission: entity.PermissionLevel(req.Permission),
		Message:    req.Message,
	})
	if err != nil {
		respondJSON(w, statusFor(err), v1.ShareResult{Success: false, Error: notesync.UserMessage(err)})
		return
	}

	out := conv.ConvertShareToAPI(share)
	respondJSON(w, http.StatusOK, v1.ShareResult{Success: true, Share: &out})
}

func (s *Service) handleUnshareNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, b, err := s.session(r)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	recipient := r.URL.Query().Get("user_id")
	if recipient == "" {
		recipient = r.URL.Query().Get("role")
	}

	if err := b.UnshareNote(ctx, mux.Vars(r)["id"], recipient); err != nil {
		respondError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, b, err := s.session(r)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	limit, err := s.limit(r)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	items, err := b.ListNotifications(ctx, user.ID, limit)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	respondJSON(w, http.StatusOK, v1.NotificationList{
		Items:       nonNil(conv.ConvertNotificationsToAPI(items)),
		UnreadCount: entity.UnreadCount(items),
	})
}

func (s *Service) handleMarkRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	_, b, err := s.session(r)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	if err := b.MarkNotificationAsRead(ctx, mux.Vars(r)["id"]); err != nil {
		respondError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) handleMarkAllRead(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	user, b, err := s.session(r)
	if err != nil {
		respondError(ctx, w, err)
		return
	}

	if err := b.MarkAllNotificationsAsRead(ctx, user.ID); err != nil {
		respondError(ctx, w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}

	return items
}
