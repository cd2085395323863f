package cli

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/dmitrijs2005/creditscore/internal/client/config"
	"github.com/dmitrijs2005/creditscore/internal/client/repositories/localstorage"
	"github.com/dmitrijs2005/creditscore/internal/client/session"
	"github.com/dmitrijs2005/creditscore/internal/client/storage"
	"github.com/dmitrijs2005/creditscore/internal/client/viewstate"
	"github.com/dmitrijs2005/creditscore/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsLoggedIn_FollowsViewState(t *testing.T) {
	auth := &fakeAuth{}
	app, _ := newTestApp(t, auth, "")
	if app.isLoggedIn() {
		t.Fatalf("expected isLoggedIn() == false when anonymous")
	}

	auth.state = viewstate.Authenticating
	assert.False(t, app.isLoggedIn())

	auth.state = viewstate.Authenticated
	if !app.isLoggedIn() {
		t.Fatalf("expected isLoggedIn() == true when authenticated")
	}
}

func TestSetMode_ChangesAndLogsOnce(t *testing.T) {
	app, _ := newTestApp(t, &fakeAuth{}, "")
	var buf bytes.Buffer
	app.logger = logging.NewSlogLogger(slog.New(slog.NewTextHandler(&buf, nil)))

	ctx := context.Background()

	app.setMode(ctx, ModeOnline)
	if app.mode() != ModeOnline {
		t.Fatalf("expected mode to be %q, got %q", ModeOnline, app.mode())
	}
	if got := buf.String(); got == "" {
		t.Fatalf("expected log output on mode change, got empty")
	}

	buf.Reset()

	app.setMode(ctx, ModeOnline)
	if got := buf.String(); got != "" {
		t.Fatalf("expected no log output when mode doesn't change, got: %q", got)
	}

	app.setMode(ctx, ModeOffline)
	assert.Equal(t, ModeOffline, app.mode())
	assert.Contains(t, buf.String(), "switched to offline mode")
}

func TestCheckOnline(t *testing.T) {
	auth := &fakeAuth{}
	app, _ := newTestApp(t, auth, "")

	app.checkOnline(context.Background())
	assert.Equal(t, ModeOnline, app.mode())

	auth.pingErr = errors.New("down")
	app.checkOnline(context.Background())
	assert.Equal(t, ModeOffline, app.mode())
}

func TestCheckOnline_CancelledContextKeepsMode(t *testing.T) {
	auth := &fakeAuth{pingErr: context.Canceled}
	app, _ := newTestApp(t, auth, "")
	app.Mode = ModeOnline

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	app.checkOnline(ctx)

	assert.Equal(t, ModeOnline, app.mode())
}

func TestStartOnlineStatusWatcher_StopsOnCancel(t *testing.T) {
	app, _ := newTestApp(t, &fakeAuth{}, "")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		app.StartOnlineStatusWatcher(ctx, 5*time.Millisecond)
		close(done)
	}()

	require.Eventually(t, func() bool { return app.mode() == ModeOnline }, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watcher did not stop")
	}
}

func testConfig(t *testing.T, storagePath string) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.AuthServiceURL = "http://127.0.0.1:1"
	cfg.StoragePath = storagePath
	return cfg
}

func TestNewApp_MemoryStorage(t *testing.T) {
	app, err := NewApp(context.Background(), testConfig(t, ""), logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { app.Close(context.Background()) })

	assert.Nil(t, app.db)
	assert.False(t, app.isLoggedIn())
}

func TestNewApp_RestoresStoredSession(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "credit.db")

	db, err := storage.OpenDatabase(ctx, path)
	require.NoError(t, err)
	store := session.NewPersistentStore(localstorage.NewSQLiteRepository(db), logging.Nop())
	require.NoError(t, store.Save(ctx, "T1"))
	require.NoError(t, db.Close())

	app, err := NewApp(ctx, testConfig(t, path), logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { app.Close(ctx) })

	assert.NotNil(t, app.db)
	assert.True(t, app.isLoggedIn())
}

func TestNewApp_InvalidServiceURL(t *testing.T) {
	cfg := testConfig(t, filepath.Join(t.TempDir(), "credit.db"))
	cfg.AuthServiceURL = "not a url"

	_, err := NewApp(context.Background(), cfg, logging.Nop())
	require.Error(t, err)
}
