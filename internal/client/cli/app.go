package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/rentora/rentora/internal/client/api"
	"github.com/rentora/rentora/internal/client/config"
	"github.com/rentora/rentora/internal/client/models"
	"github.com/rentora/rentora/internal/client/repositories"
	"github.com/rentora/rentora/internal/client/session"
	"github.com/rentora/rentora/internal/logging"

	_ "modernc.org/sqlite"
)

// sessionStore is the slice of the session API the CLI drives.
// *session.Store satisfies it; tests can provide a stub.
type sessionStore interface {
	State() session.State
	Initialize(ctx context.Context) error
	Login(ctx context.Context, creds models.LoginRequest) error
	Register(ctx context.Context, req models.RegisterRequest) error
	Logout(ctx context.Context) error
	ClearError()
	UpdateProfile(ctx context.Context, patch models.UserPatch) error
	ChangePassword(ctx context.Context, oldPassword, newPassword string) error
}

// App holds everything a command handler needs: the session store for auth
// state, the raw API client for rental browsing, and the input reader.
type App struct {
	config  *config.Config
	session sessionStore
	api     api.Client
	repos   *repositories.Repositories
	log     logging.Logger
	reader  *bufio.Reader
}

// NewApp opens the local database, builds the REST client on top of it, and
// assembles the session store.
func NewApp(c *config.Config, log logging.Logger) (*App, error) {
	ctx := context.Background()

	repos, err := repositories.InitDatabase(ctx, c.DatabasePath)
	if err != nil {
		log.Error(ctx, "failed to initialize database", "error", err)
		return nil, err
	}

	if _, err := api.EnsureDeviceID(ctx, repos.Metadata); err != nil {
		_ = repos.DB.Close()
		return nil, err
	}

	rest := api.NewREST(api.Options{BaseURL: c.BaseURL, Timeout: c.RequestTimeout}, repos.Metadata, log)
	store := session.NewStore(rest, repos.DB, log)

	return &App{
		config:  c,
		session: store,
		api:     rest,
		repos:   repos,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
	}, nil
}

// Run restores the persisted session and enters the command loop. It returns
// when the user exits or stdin closes.
func (a *App) Run(ctx context.Context) {
	defer func() { _ = a.repos.DB.Close() }()

	if err := a.session.Initialize(ctx); err != nil {
		// A failed restore still leaves a usable anonymous session.
		a.log.Warn(ctx, "session restore failed", "error", err)
	}

	printlnFn("Rentora CLI (type 'help' for commands)")
	runREPL(ctx, a, a.status, bufio.NewScanner(os.Stdin))
}

func (a *App) isLoggedIn() bool {
	return a.session.State().IsAuthenticated
}

// status renders the prompt segment: the username, or "guest".
func (a *App) status() string {
	st := a.session.State()
	if st.User != nil {
		return st.User.Username
	}
	return "guest"
}
