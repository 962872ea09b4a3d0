package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/dmitrijs2005/facecam/internal/client/api"
	"github.com/dmitrijs2005/facecam/internal/client/config"
	"github.com/dmitrijs2005/facecam/internal/client/models"
	"github.com/dmitrijs2005/facecam/internal/client/resources"
	"github.com/dmitrijs2005/facecam/internal/client/services"
	"github.com/dmitrijs2005/facecam/internal/client/session"
	"github.com/dmitrijs2005/facecam/internal/client/storage"
	"github.com/dmitrijs2005/facecam/internal/client/view"
	"github.com/dmitrijs2005/facecam/internal/logging"
)

type App struct {
	config      *config.Config
	db          *sql.DB
	client      *api.Client
	download    *http.Client
	authService services.AuthService
	view        *view.Controller
	log         logging.Logger
	reader      *bufio.Reader
	out         io.Writer

	mu      sync.Mutex
	session models.Session
	sync    *resources.Sync
}

func NewApp(c *config.Config) (*App, error) {
	ctx := context.Background()
	log := logging.NewTextLogger(os.Stderr, c.LogLevel)

	db, err := storage.Open(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "error initializing database", "path", c.DatabasePath, "error", err)
		return nil, err
	}

	apiClient := api.New(c.ServerURL, api.WithLogger(log))
	as := services.NewAuthService(apiClient, session.NewSQLiteStore(db), log)

	return &App{
		config:      c,
		db:          db,
		client:      apiClient,
		download:    http.DefaultClient,
		authService: as,
		view:        view.NewController(),
		log:         log,
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

// Run restores a saved session, starts the background feed refresh if
// configured, and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) {
	defer a.db.Close()

	fmt.Fprintln(a.out, "Welcome to facecam (type 'help' for commands)")
	a.restore(ctx)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.config.RefreshInterval > 0 {
		go a.StartFeedWatcher(ctx, a.config.RefreshInterval)
	}

	runREPL(ctx, a, a.getStatus, bufio.NewScanner(a.reader))
}

// restore is the startup gate: a stored session opens the feed, anything
// else leaves the user at the login prompt.
func (a *App) restore(ctx context.Context) {
	s, ok, err := a.authService.Restore(ctx)
	if err != nil {
		a.log.Error(ctx, "session restore failed", "error", err)
	}
	if !ok {
		fmt.Fprintln(a.out, "Please login or register")
		return
	}
	a.startSession(s)
	_ = a.Feed(ctx)
}

// startSession binds a fresh resource cache to s. Nothing from a previous
// session survives.
func (a *App) startSession(s models.Session) {
	rs := resources.New(a.client.WithSession(s), resources.GateFunc(a.dropSession), a.log)

	a.mu.Lock()
	a.session = s
	a.sync = rs
	a.mu.Unlock()

	a.view = view.NewController()
}

func (a *App) endSession() {
	a.mu.Lock()
	a.session = models.Session{}
	a.sync = nil
	a.mu.Unlock()
}

// dropSession is handed to the resource cache and runs when the server
// rejects the current session.
func (a *App) dropSession(ctx context.Context) {
	if err := a.authService.Drop(ctx); err != nil {
		a.log.Error(ctx, "session drop failed", "error", err)
	}
	a.endSession()
	fmt.Fprintln(a.out, "Session expired, please login again")
}

func (a *App) current() (models.Session, *resources.Sync) {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.session, a.sync
}

func (a *App) isLoggedIn() bool {
	s, rs := a.current()
	return s.Valid() && rs != nil
}

func (a *App) getStatus() string {
	s, _ := a.current()
	if !s.Valid() {
		return ""
	}
	return fmt.Sprintf("(%s %s)", s.Username, a.view.View())
}

// StartFeedWatcher refreshes the feed every interval until ctx is done.
// Ticks while logged out are skipped.
func (a *App) StartFeedWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_, rs := a.current()
			if rs == nil {
				continue
			}
			tctx, cancel := context.WithTimeout(ctx, interval)
			if f := rs.RefreshFrames(tctx); f != nil {
				a.log.Debug(ctx, "background feed refresh failed", "error", f)
			}
			cancel()

		case <-ctx.Done():
			return
		}
	}
}
