package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/creditscore/internal/client/client"
	"github.com/dmitrijs2005/creditscore/internal/client/config"
	"github.com/dmitrijs2005/creditscore/internal/client/repositories/localstorage"
	"github.com/dmitrijs2005/creditscore/internal/client/services"
	"github.com/dmitrijs2005/creditscore/internal/client/session"
	"github.com/dmitrijs2005/creditscore/internal/client/storage"
	"github.com/dmitrijs2005/creditscore/internal/client/viewstate"
	"github.com/dmitrijs2005/creditscore/internal/logging"
)

// Mode is the reachability of the auth service as last observed by the
// status watcher.
type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

const pingTimeout = 3 * time.Second

type App struct {
	config             *config.Config
	authService        services.AuthService
	applicationService services.ApplicationService
	logger             logging.Logger
	db                 *sql.DB
	reader             *bufio.Reader
	out                io.Writer

	mu   sync.RWMutex
	Mode Mode
}

// NewApp wires local storage, the auth client and the services from c.
// An empty StoragePath keeps the credential in memory for this run only.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	var (
		store session.Store
		db    *sql.DB
	)

	if c.StoragePath == "" {
		store = session.NewMemoryStore()
	} else {
		var err error
		db, err = storage.OpenDatabase(ctx, c.StoragePath)
		if err != nil {
			logger.Error(ctx, "error initializing database", "path", c.StoragePath, "error", err)
			return nil, err
		}
		store = session.NewPersistentStore(localstorage.NewSQLiteRepository(db), logger)
	}

	apiClient, err := client.NewHTTPClient(client.Options{
		BaseURL:       c.AuthServiceURL,
		Timeout:       c.RequestTimeout,
		RegisterField: c.RegisterField,
	})
	if err != nil {
		if db != nil {
			_ = db.Close()
		}
		return nil, err
	}

	_, hasCredential := store.Load(ctx)
	view := viewstate.New(hasCredential)

	return &App{
		config:             c,
		authService:        services.NewAuthService(apiClient, store, view, logger),
		applicationService: services.NewApplicationService(c.EvaluationDelay, logger),
		logger:             logger,
		db:                 db,
		reader:             bufio.NewReader(os.Stdin),
		out:                os.Stdout,
	}, nil
}

func (a *App) mode() Mode {
	a.mu.RLock()
	defer a.mu.RUnlock()
	return a.Mode
}

func (a *App) setMode(ctx context.Context, mode Mode) {
	a.mu.Lock()
	changed := a.Mode != mode
	a.Mode = mode
	a.mu.Unlock()

	if changed {
		a.logger.Info(ctx, fmt.Sprintf("switched to %s mode", mode))
	}
}

// Run blocks in the REPL until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.Close(ctx)
	a.Root(ctx)
}

func (a *App) Close(ctx context.Context) {
	if err := a.authService.Close(ctx); err != nil {
		a.logger.Warn(ctx, "closing auth client", "error", err)
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.logger.Warn(ctx, "closing database", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.authService.State() == viewstate.Authenticated
}

// StartOnlineStatusWatcher probes the auth service every interval and flips
// Mode between online and offline. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	a.checkOnline(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			a.checkOnline(ctx)
		case <-ctx.Done():
			return
		}
	}
}

func (a *App) checkOnline(ctx context.Context) {
	pctx, cancel := context.WithTimeout(ctx, pingTimeout)
	err := a.authService.Ping(pctx)
	cancel()

	if ctx.Err() != nil {
		return
	}
	if err != nil {
		a.setMode(ctx, ModeOffline)
		return
	}
	a.setMode(ctx, ModeOnline)
}
