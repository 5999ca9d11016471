// Package notes is the HTTP adapter of the note backends.
package notes

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/evgeniy-krivenko/exec-notes/internal/api/notes/converter"
	"github.com/evgeniy-krivenko/exec-notes/internal/api/notes/converter/generated"
	"github.com/evgeniy-krivenko/exec-notes/internal/backend"
	"github.com/evgeniy-krivenko/exec-notes/internal/entity"
)

var conv converter.Converter = &generated.ConverterImpl{}

// BackendResolver picks the backend serving a user for one request.
type BackendResolver func(user entity.CurrentUser) backend.NoteBackend

//go:generate go run github.com/kazhuravlev/options-gen/cmd/options-gen@v0.55.3 -out-filename=service_options.gen.go -from-struct=Options
type Options struct {
	resolve BackendResolver `option:"mandatory" validate:"required"`

	notificationLimit int `default:"20" validate:"min=1,max=100"`
}

type Service struct {
	Options
	upgrader websocket.Upgrader
}

func New(opts Options) (*Service, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("validate notes service options: %v", err)
	}

	return &Service{Options: opts}, nil
}

// RegisterService mounts the API under /v1.
func (s *Service) RegisterService(r *mux.Router) {
	v1 := r.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/dashboard", s.handleDashboard).Methods(http.MethodGet)
	v1.HandleFunc("/dashboard/stream", s.handleDashboardStream).Methods(http.MethodGet)

	v1.HandleFunc("/notes", s.handleListOwnNotes).Methods(http.MethodGet)
	v1.HandleFunc("/notes", s.handleCreateNote).Methods(http.MethodPost)
	v1.HandleFunc("/notes/shared", s.handleListSharedNotes).Methods(http.MethodGet)
	v1.HandleFunc("/notes/{id}", s.handleGetNote).Methods(http.MethodGet)
	v1.HandleFunc("/notes/{id}", s.handleUpdateNote).Methods(http.MethodPut)
	v1.HandleFunc("/notes/{id}", s.handleDeleteNote).Methods(http.MethodDelete)

	v1.HandleFunc("/notes/{id}/shares", s.handleGetNoteShares).Methods(http.MethodGet)
	v1.HandleFunc("/notes/{id}/shares", s.handleShareNote).Methods(http.MethodPost)
	v1.HandleFunc("/notes/{id}/shares", s.handleUnshareNote).Methods(http.MethodDelete)

	v1.HandleFunc("/notifications", s.handleListNotifications).Methods(http.MethodGet)
	v1.HandleFunc("/notifications/read-all", s.handleMarkAllRead).Methods(http.MethodPost)
	v1.HandleFunc("/notifications/{id}/read", s.handleMarkRead).Methods(http.MethodPost)
}

// Handler returns a router serving only this API.
func (s *Service) Handler() http.Handler {
	r := mux.NewRouter()
	s.RegisterService(r)

	return r
}
