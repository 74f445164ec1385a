package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"safetrip/internal/app/client/config"
	"safetrip/internal/utils/logger"
)

func newTestApp(t *testing.T, handler http.Handler) (*App, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	dir := t.TempDir()
	cfg := &config.Config{
		ServerAddress: strings.TrimPrefix(srv.URL, "http://"),
		ConfigDir:     dir,
		SessionPath:   filepath.Join(dir, "session.json"),
		CachePath:     filepath.Join(dir, "offline.db"),
		Timeout:       5 * time.Second,
	}
	app, err := New(cfg, logger.Discard())
	require.NoError(t, err)
	t.Cleanup(func() { _ = app.Close() })
	return app, srv
}

func loginHandler(t *testing.T, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/login" {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"status":"success","message":"Login successful","token":"tok",
				"user":{"id":7,"name":"Asha","email":"a@b.co","user_type":"Traveler","phone":"1","created_at":"2026-01-01T00:00:00Z"}}`))
			return
		}
		if next != nil {
			next.ServeHTTP(w, r)
		}
	})
}

func TestApp_LoginPersistsSession(t *testing.T) {
	app, _ := newTestApp(t, loginHandler(t, nil))

	s, err := app.Login(context.Background(), "a@b.co", "pass")
	require.NoError(t, err)
	assert.Equal(t, 7, s.UserID)
	assert.Equal(t, "tok", s.Token)

	restored, err := loadSession(app.config.SessionPath)
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, "Asha", restored.Name)
	assert.Equal(t, "tok", restored.Token)
}

func TestApp_ErrorEnvelope(t *testing.T) {
	app, _ := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"status":"error","message":"User not found"}`))
	}))

	_, err := app.Login(context.Background(), "x@y.z", "p")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "User not found", apiErr.Message)
}

func TestApp_SendsBearerToken(t *testing.T) {
	var gotAuth string
	app, _ := newTestApp(t, loginHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"status":"success","expenses":[]}`))
	})))

	_, err := app.Expenses(context.Background())
	assert.ErrorIs(t, err, ErrNotLoggedIn)

	_, err = app.Login(context.Background(), "a@b.co", "pass")
	require.NoError(t, err)

	_, err = app.Expenses(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok", gotAuth)
}

func TestApp_FallsBackToOfflineCache(t *testing.T) {
	app, srv := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"status":"success","items":[{"report_id":1}]}`))
	}))
	ctx := context.Background()

	live, err := app.LostFoundItems(ctx)
	require.NoError(t, err)
	assert.False(t, live.Stale())

	srv.Close()

	offline, err := app.LostFoundItems(ctx)
	require.NoError(t, err)
	assert.True(t, offline.Stale())
	assert.JSONEq(t, string(live.Payload), string(offline.Payload))

	var body struct {
		Items []LostFoundItem `json:"items"`
	}
	require.NoError(t, offline.Decode(&body))
	require.Len(t, body.Items, 1)
	assert.Equal(t, 1, body.Items[0].ReportID)

	entry, err := app.Offline(ctx, CacheLostFound)
	require.NoError(t, err)
	assert.Equal(t, live.Payload, entry.Payload)
}

func TestApp_NoFallbackOnServerError(t *testing.T) {
	calls := 0
	app, _ := newTestApp(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		if calls == 1 {
			_, _ = w.Write([]byte(`{"status":"success","routes":[]}`))
			return
		}
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":"error","message":"Source and destination are required"}`))
	}))
	ctx := context.Background()

	_, err := app.TransportRoutes(ctx, "Pune", "Goa")
	require.NoError(t, err)

	_, err = app.TransportRoutes(ctx, "", "")
	assert.ErrorContains(t, err, "Source and destination are required")
}

func TestApp_Logout(t *testing.T) {
	var revoked bool
	app, _ := newTestApp(t, loginHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		revoked = r.URL.Path == "/api/logout" && r.Header.Get("Authorization") == "Bearer tok"
		_, _ = w.Write([]byte(`{"status":"success","message":"Logged out"}`))
	})))
	ctx := context.Background()

	assert.ErrorIs(t, app.Logout(ctx), ErrNotLoggedIn)

	_, err := app.Login(ctx, "a@b.co", "pass")
	require.NoError(t, err)
	require.NoError(t, app.Logout(ctx))

	assert.True(t, revoked)
	_, err = app.Session()
	assert.ErrorIs(t, err, ErrNotLoggedIn)
	s, err := loadSession(app.config.SessionPath)
	assert.NoError(t, err)
	assert.Nil(t, s)
}
