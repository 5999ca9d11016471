package notes

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/evgeniy-krivenko/exec-notes/internal/notesync"
	"github.com/evgeniy-krivenko/exec-notes/pkg/logger/slogx"
)

const writeTimeout = 10 * time.Second

// handleDashboardStream pushes a dashboard snapshot over a websocket after
// every applied refresh, starting with the current state.
func (s *Service) handleDashboardStream(w http.ResponseWriter, r *http.Request) {
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

	ctrl, err := notesync.New(notesync.NewOptions(b, user, notesync.WithNotificationLimit(limit)))
	if err != nil {
		respondError(ctx, w, err)
		return
	}
	defer ctrl.Close()

	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slogx.Warn(ctx, "websocket upgrade failed", slogx.Err(err))
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Reads only detect the peer going away.
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	snaps := ctrl.Watch(ctx)
	if err := ctrl.Start(ctx); err != nil {
		slogx.Warn(ctx, "dashboard stream start failed", slogx.UserID(user.ID), slogx.Err(err))
		return
	}

	for snap := range snaps {
		_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := conn.WriteJSON(conv.ConvertSnapshotToAPI(snap)); err != nil {
			return
		}
	}

	_ = conn.WriteControl(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
		time.Now().Add(writeTimeout))
}
