// Package cli implements the interactive CourseKeeper shell. Each screen of
// the original web client maps to a route here, and every screen change is
// authorized by the route guard before any data is fetched.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"os"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/mjimenezh/coursekeeper/internal/client/api"
	"github.com/mjimenezh/coursekeeper/internal/client/config"
	"github.com/mjimenezh/coursekeeper/internal/client/router"
	"github.com/mjimenezh/coursekeeper/internal/client/services"
	"github.com/mjimenezh/coursekeeper/internal/client/state"
	"github.com/mjimenezh/coursekeeper/internal/logging"

	_ "modernc.org/sqlite"
)

type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

type App struct {
	config    *config.Config
	log       logging.Logger
	apiClient api.Client
	db        *sql.DB

	session   *services.SessionService
	courses   *services.CourseStore
	lessons   *services.LessonStore
	dashboard *services.DashboardService

	reader *bufio.Reader
	Mode   Mode

	// current screen state
	path          string
	currentCourse string // course id when on /courses/{id}
	trashCourse   string // course id whose trash is open on /trash
}

func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	if log == nil {
		log = logging.Nop()
	}

	ctx := context.Background()

	db, err := state.Open(ctx, c.StateDBPath())
	if err != nil {
		log.Error(ctx, "error initializing state database", "error", err)
		return nil, err
	}

	a := &App{
		config: c,
		log:    log,
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		Mode:   ModeOffline,
	}

	// The session issues auth calls through the same client it feeds
	// tokens into; the closure breaks the construction cycle.
	apiClient := api.NewHTTPClient(c.APIBaseURL, c.RequestTimeout, func() string {
		return a.session.Token()
	}, log)
	a.apiClient = apiClient
	a.session = services.NewSessionService(apiClient, db, log)

	a.courses = services.NewCourseStore(apiClient, log)
	a.lessons = services.NewLessonStore(apiClient, log)
	a.dashboard = services.NewDashboardService(apiClient, log)

	return a, nil
}

func (a *App) Run(ctx context.Context) {
	defer a.db.Close()
	defer a.apiClient.Close()

	a.session.Init(ctx)
	a.WaitForServer(ctx)

	go a.StartOnlineStatusWatcher(ctx, a.config.OnlineCheckInterval)

	a.Root(ctx)
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.log.Info(context.Background(), "connectivity changed", "mode", string(mode))
	}
}

// WaitForServer probes the backend with exponential backoff so the shell
// starts in a known connectivity state. Giving up is not fatal: the user
// can still work and the watcher will flip the mode when the server comes
// back.
func (a *App) WaitForServer(ctx context.Context) {
	_, err := backoff.Retry(ctx, func() (struct{}, error) {
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		defer cancel()
		return struct{}{}, a.apiClient.Ping(pingCtx)
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(4))

	if err != nil {
		a.log.Warn(ctx, "server not reachable", "url", a.config.APIBaseURL, "error", err)
		a.setMode(ModeOffline)
		return
	}
	a.setMode(ModeOnline)
}

func (a *App) StartOnlineStatusWatcher(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
			err := a.apiClient.Ping(pingCtx)
			cancel()

			if err != nil {
				a.setMode(ModeOffline)
			} else {
				a.setMode(ModeOnline)
			}

		case <-ctx.Done():
			return
		}
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

// landingPath is where the shell starts: authenticated users land on the
// course list, everyone else on the login screen.
func (a *App) landingPath() string {
	if a.isLoggedIn() {
		return router.LandingPath
	}
	return router.LoginPath
}
