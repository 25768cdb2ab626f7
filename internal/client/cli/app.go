package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/dmitrijs2005/localauth/internal/client/config"
	"github.com/dmitrijs2005/localauth/internal/client/localstore"
	"github.com/dmitrijs2005/localauth/internal/client/models"
	"github.com/dmitrijs2005/localauth/internal/client/notify"
	"github.com/dmitrijs2005/localauth/internal/client/services"
	"github.com/dmitrijs2005/localauth/internal/logging"
)

// App is the interactive client: it owns the database, the auth service
// and the terminal.
type App struct {
	config      *config.Config
	logger      logging.Logger
	db          *sql.DB
	authService services.AuthService
	notifier    *notify.Notifier
	reader      *bufio.Reader
	out         io.Writer

	// busy is set from the first prompt of an auth command until the
	// service returns; commands that would start another one are refused.
	busy bool
}

// NewApp opens the database at c.DatabaseDSN and wires the services.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.NewTextLogger(os.Stderr, c.LogLevel)

	db, err := localstore.InitDatabase(ctx, c.DatabaseDSN)
	if err != nil {
		logger.Error(ctx, "error initializing database", "dsn", c.DatabaseDSN, "error", err)
		return nil, err
	}

	return &App{
		config:      c,
		logger:      logger,
		db:          db,
		authService: services.NewAuthService(db, logger),
		notifier:    notify.New(os.Stdout),
		reader:      bufio.NewReader(os.Stdin),
		out:         os.Stdout,
	}, nil
}

// Run restores the session, routes to the right view and blocks in the
// REPL until the user exits or input ends.
func (a *App) Run(ctx context.Context) {
	if a.db != nil {
		defer a.db.Close()
	}

	unsubscribe := a.authService.Subscribe(func(s models.SessionState) {
		a.logger.Debug(ctx, "session changed", "status", s.Status.String())
	})
	defer unsubscribe()

	fmt.Fprintln(a.out, "Welcome! Type 'help' for commands.")

	st := a.authService.Restore(ctx)
	if st.Status == models.StatusAuthenticated {
		a.showHome(st.User)
	} else {
		a.notifier.Info("Welcome", "Log in or sign up to get started.")
	}

	runREPL(ctx, a, a.getStatus, a.reader)
}

func (a *App) isLoggedIn() bool {
	return a.authService.State().Status == models.StatusAuthenticated
}

func (a *App) getStatus() string {
	st := a.authService.State()
	switch {
	case st.Loading():
		return "(loading)"
	case st.User != nil:
		return fmt.Sprintf("(%s)", st.User.Name)
	default:
		return ""
	}
}

// withBusy runs fn unless another operation is still running. The check
// comes before any prompt, so a refused command reads no input.
func (a *App) withBusy(fn func() error) error {
	if a.busy {
		a.notifier.Info("Please wait", "Another operation is in progress.")
		return errBusy
	}
	a.busy = true
	defer func() { a.busy = false }()
	return fn()
}
