package cli

import (
	"bufio"
	"context"
	"database/sql"
	"io"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/shopkeeper/internal/client/client"
	"github.com/dmitrijs2005/shopkeeper/internal/client/config"
	"github.com/dmitrijs2005/shopkeeper/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/shopkeeper/internal/client/routes"
	"github.com/dmitrijs2005/shopkeeper/internal/client/services"
	"github.com/dmitrijs2005/shopkeeper/internal/client/session"
	"github.com/dmitrijs2005/shopkeeper/internal/client/tokenstore"
	"github.com/dmitrijs2005/shopkeeper/internal/client/validation"
	"github.com/dmitrijs2005/shopkeeper/internal/logging"
)

type Mode string

const (
	ModeOffline Mode = "offline"
	ModeOnline  Mode = "online"
)

type App struct {
	config      *config.Config
	log         logging.Logger
	db          *sql.DB
	authService services.AuthService
	session     *session.Session
	router      *routes.Router
	notifier    *consoleNotifier
	reader      *bufio.Reader
	out         io.Writer

	modeMu sync.Mutex
	mode   Mode
}

// NewApp opens the local database and wires the session, the API client and
// the auth service. The caller must Close the App.
func NewApp(ctx context.Context, c *config.Config, log logging.Logger) (*App, error) {
	db, err := client.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	apiClient, err := client.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, log)
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	a := &App{
		config:  c,
		log:     log,
		db:      db,
		session: session.New(log),
		router:  routes.NewRouter(routes.Home),
		reader:  bufio.NewReader(os.Stdin),
		out:     os.Stdout,
	}
	a.notifier = newConsoleNotifier(a.out)
	tokens := tokenstore.New(metadata.NewSQLiteRepository(db))
	a.authService = services.NewAuthService(apiClient, tokens, a.session, validation.New(), a, a.notifier, log)

	return a, nil
}

func (a *App) currentMode() Mode {
	a.modeMu.Lock()
	defer a.modeMu.Unlock()
	return a.mode
}

func (a *App) setMode(mode Mode) {
	a.modeMu.Lock()
	changed := a.mode != mode
	a.mode = mode
	a.modeMu.Unlock()

	if changed {
		a.log.Info(context.Background(), "switched mode", "mode", mode)
	}
}

// Run restores a previous session if one was stored, then blocks in the REPL
// until the user exits or ctx is cancelled.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	if err := a.authService.Restore(ctx); err != nil {
		if client.IsUnavailable(err) {
			a.setMode(ModeOffline)
		} else {
			a.log.Error(ctx, "session restore failed", "error", err)
		}
	}

	a.Root(ctx)
}

// Close detaches the session and closes the database.
func (a *App) Close() {
	if a.session != nil {
		a.session.Close()
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Error(context.Background(), "error closing database", "error", err)
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.Identity.LoggedInUser() != nil
}

// StartOnlineStatusWatcher pings the server every interval and flips the
// mode when reachability changes. It returns when ctx is done.
func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}

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
	pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
	err := a.authService.Ping(pingCtx)
	cancel()

	if err != nil {
		a.setMode(ModeOffline)
	} else {
		a.setMode(ModeOnline)
	}
}
