package slogx_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evgeniy-krivenko/exec-notes/pkg/logger/slogx"
)

func TestParseLevel(t *testing.T) {
	level, err := slogx.ParseLevel("DEBUG")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)

	level, err = slogx.ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)

	_, err = slogx.ParseLevel("loud")
	assert.Error(t, err)
}

func TestInitGlobalJSON(t *testing.T) {
	prev := slogx.Default()
	t.Cleanup(func() { slogx.SetDefault(prev) })

	var buf bytes.Buffer
	require.NoError(t, slogx.InitGlobal(&buf, slogx.Setup{Level: "info", Service: "exec-notes-server"}))

	slogx.Debug(context.Background(), "hidden")
	slogx.Warn(context.Background(), "share failed", slogx.NoteID("n1"), slogx.Err(errors.New("boom")))

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"note_id":"n1"`)
	assert.Contains(t, out, `"err":"boom"`)
	assert.Contains(t, out, `"service":"exec-notes-server"`)
}

func TestInitGlobalRejectsUnknownLevel(t *testing.T) {
	prev := slogx.Default()
	t.Cleanup(func() { slogx.SetDefault(prev) })

	require.Error(t, slogx.InitGlobal(&bytes.Buffer{}, slogx.Setup{Level: "loud"}))
	assert.Same(t, prev, slogx.Default())
}

func TestComponentAndWrap(t *testing.T) {
	prev := slogx.Default()
	t.Cleanup(func() { slogx.SetDefault(prev) })

	var wrapped int
	var buf bytes.Buffer
	require.NoError(t, slogx.InitGlobal(&buf, slogx.Setup{
		Level: "debug",
		Wrap: []func(slog.Handler) slog.Handler{
			func(h slog.Handler) slog.Handler { wrapped++; return h },
		},
	}))

	slogx.Component("database").Debug(context.Background(), "listening")

	assert.Equal(t, 1, wrapped)
	assert.Contains(t, buf.String(), `"component":"database"`)
	assert.NotContains(t, buf.String(), `"service"`)
}

func TestMiddlewareLogsStatus(t *testing.T) {
	prev := slogx.Default()
	t.Cleanup(func() { slogx.SetDefault(prev) })

	var buf bytes.Buffer
	require.NoError(t, slogx.InitGlobal(&buf, slogx.Setup{Level: "info"}))

	h := slogx.Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/notes", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
	assert.Contains(t, buf.String(), `"status":418`)
}
