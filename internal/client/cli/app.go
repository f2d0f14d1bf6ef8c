package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"sync/atomic"

	"github.com/dmitrijs2005/voyage/internal/client/client"
	"github.com/dmitrijs2005/voyage/internal/client/config"
	"github.com/dmitrijs2005/voyage/internal/client/models"
	"github.com/dmitrijs2005/voyage/internal/client/session"
	"github.com/dmitrijs2005/voyage/internal/client/storage"
	"github.com/dmitrijs2005/voyage/internal/common"
	"github.com/dmitrijs2005/voyage/internal/filex"
	"github.com/dmitrijs2005/voyage/internal/logging"
)

// sessionStore is the part of *session.Store the CLI consumes.
type sessionStore interface {
	State() session.State
	CurrentUser() (models.User, bool)
	IsAuthenticated() bool
	IsLoading() bool
	Subscribe(fn func(session.State)) func()
	Login(ctx context.Context, email string, password []byte, remember bool) error
	Register(ctx context.Context, name, email string, password []byte) error
	Logout(ctx context.Context)
	UpdateProfile(ctx context.Context, patch models.ProfilePatch) error
}

type App struct {
	config *config.Config
	store  sessionStore
	logger logging.Logger
	reader *bufio.Reader
	out    io.Writer
	closer io.Closer

	authenticated atomic.Bool
}

func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger := logging.New(c.LogLevel, os.Stderr)

	dir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		logger.Error(ctx, "error creating data directory", "dir", c.DataDir, "error", err)
		return nil, err
	}
	c.DataDir = dir

	st, err := storage.Open(ctx, c.DatabasePath())
	if err != nil {
		logger.Error(ctx, "error initializing storage", "path", c.DatabasePath(), "error", err)
		return nil, err
	}

	store := session.New(ctx, client.NewMockClient(c.Delays()), st.Scopes, logger)

	return &App{
		config: c,
		store:  store,
		logger: logger,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
		closer: st,
	}, nil
}

// Run blocks in the REPL until the user exits or stdin is closed.
func (a *App) Run(ctx context.Context) {
	defer a.close(ctx)

	a.authenticated.Store(a.store.IsAuthenticated())
	if u, ok := a.store.CurrentUser(); ok {
		a.println("Welcome back,", u.Name)
	}

	unsubscribe := a.store.Subscribe(func(st session.State) { a.onStateChange(ctx, st) })
	defer unsubscribe()

	runREPL(ctx, a, a.status, a.reader, a.out)
}

func (a *App) close(ctx context.Context) {
	if a.closer == nil {
		return
	}
	if err := a.closer.Close(); err != nil {
		a.logger.Error(ctx, "error closing storage", "error", err)
	}
}

func (a *App) isLoggedIn() bool {
	return a.store.IsAuthenticated()
}

// status renders the prompt marker: the signed-in email or "guest",
// followed by an ellipsis while an operation is pending.
func (a *App) status() string {
	st := a.store.State()
	s := "guest"
	if st.User != nil {
		s = st.User.Email
	}
	if st.Loading {
		s += " ..."
	}
	return s
}

func (a *App) onStateChange(ctx context.Context, st session.State) {
	now := st.IsAuthenticated()
	if a.authenticated.Swap(now) == now {
		return
	}
	if now {
		a.logger.Info(ctx, "signed in", "user_id", st.User.ID)
	} else {
		a.logger.Info(ctx, "signed out")
	}
}

func (a *App) println(args ...any) {
	fmt.Fprintln(a.out, args...)
}

// report prints a user-facing message for err and returns it unchanged.
func (a *App) report(err error) error {
	switch {
	case errors.Is(err, common.ErrValidation):
		a.println(err.Error())
	case errors.Is(err, client.ErrUnauthorized):
		a.println("Invalid email or password.")
	case errors.Is(err, client.ErrUnavailable):
		a.println("Service unavailable, please try again later.")
	case errors.Is(err, common.ErrOperationFailed):
		a.println("Something went wrong, please try again.")
	default:
		a.println("Error:", err.Error())
	}
	return err
}
