package cli

import (
	"bufio"
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/splits-cli/internal/client/api"
	"github.com/dmitrijs2005/splits-cli/internal/client/config"
	"github.com/dmitrijs2005/splits-cli/internal/client/models"
	"github.com/dmitrijs2005/splits-cli/internal/client/session"
	"github.com/dmitrijs2005/splits-cli/internal/logging"
)

type screen int

const (
	screenAuth screen = iota
	screenDashboard
	screenGroup
)

// App holds the CLI state: the API client, the session controller and the
// data of the screen currently shown.
type App struct {
	config  *config.Config
	api     api.Client
	session *session.Controller
	logger  logging.Logger
	reader  *bufio.Reader

	screen   screen
	groups   []models.Group
	group    *models.Group
	activity *models.GroupActivity

	closeStore func() error
}

func NewApp(cfg *config.Config, logger logging.Logger) (*App, error) {
	ctx := context.Background()

	store, err := session.OpenSQLiteStore(ctx, cfg.LocalDBPath)
	if err != nil {
		return nil, err
	}

	sess := session.NewController(store, logger)

	client := api.NewHTTPClient(cfg.ServerBaseURL, cfg.RequestTimeout, sess, logger)
	// The transport only signals; the session controller owns the state
	// mutation. Registered once here; SetExpiryHandler replaces, never stacks.
	client.SetExpiryHandler(func() {
		_ = sess.ForceLogout(context.Background())
	})

	if err := sess.Initialize(ctx); err != nil {
		_ = store.Close()
		return nil, err
	}

	app := &App{
		config:     cfg,
		api:        client,
		session:    sess,
		logger:     logger,
		reader:     bufio.NewReader(os.Stdin),
		closeStore: store.Close,
	}
	if sess.IsAuthenticated() {
		app.screen = screenDashboard
	}
	return app, nil
}

// Run starts the REPL and blocks until the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	printlnFn("Welcome to Splits CLI (type 'help' for commands)")
	if u := a.session.User(); u != nil {
		printfFn("Signed in as %s\n", u.Name)
	}

	runREPL(ctx, a, bufio.NewScanner(os.Stdin))
}

// Close releases the API client and the local session store.
func (a *App) Close() {
	_ = a.api.Close()
	if a.closeStore != nil {
		_ = a.closeStore()
	}
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) activeScreen() screen {
	return a.screen
}

func (a *App) status() string {
	s := ""
	if u := a.session.User(); u != nil {
		s = u.Name
	}
	if a.screen == screenGroup && a.group != nil {
		s += " / " + a.group.GroupName
	}
	if s != "" {
		return "(" + s + ")"
	}
	return ""
}

// syncScreen drops back to the sign-in screen when a forced logout has
// cleared the session underneath the current screen.
func (a *App) syncScreen() {
	if a.isLoggedIn() || a.screen == screenAuth {
		return
	}
	a.screen = screenAuth
	a.groups, a.group, a.activity = nil, nil, nil
	printlnFn("Session expired, please sign in again.")
}

// errorMessage renders a transport error for the user. Unauthorized errors
// need no message of their own: the expiry handler already cleared the
// session and syncScreen announces the redirect.
func errorMessage(err error) string {
	var apiErr *api.APIError
	switch {
	case errors.Is(err, api.ErrUnauthorized):
		return ""
	case errors.Is(err, api.ErrUnavailable):
		return "Server unavailable, please try again later."
	case errors.As(err, &apiErr):
		return apiErr.Message
	default:
		return err.Error()
	}
}

// reportErr prints a command error unless it is an unauthorized error,
// which resolves into a redirect instead of a message.
func reportErr(err error) {
	if msg := errorMessage(err); msg != "" {
		printlnFn(msg)
	}
}

// failValidation rejects a form locally, before any network call.
func failValidation(msg string) error {
	printlnFn(msg)
	return errors.New(msg)
}
