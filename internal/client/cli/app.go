package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/common-nighthawk/go-figure"
	"github.com/dmitrijs2005/vidwave/internal/client/client"
	"github.com/dmitrijs2005/vidwave/internal/client/config"
	"github.com/dmitrijs2005/vidwave/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/vidwave/internal/client/services"
	"github.com/dmitrijs2005/vidwave/internal/client/session"
	"github.com/dmitrijs2005/vidwave/internal/client/storage"
	"github.com/dmitrijs2005/vidwave/internal/filex"
	"github.com/dmitrijs2005/vidwave/internal/logging"
)

const dbFileName = "vidwave.db"

type App struct {
	config        *config.Config
	authService   services.AuthService
	studioService services.StudioService
	logger        logging.Logger
	db            *sql.DB
	reader        *bufio.Reader
	out           io.Writer
}

// NewApp opens the local database under the configured data directory and
// builds the client stack on top of it.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	if logger == nil {
		logger = logging.NewNop()
	}

	dir, err := filex.EnsureDir(c.DataDir)
	if err != nil {
		return nil, err
	}

	db, err := storage.InitDatabase(ctx, filepath.Join(dir, dbFileName))
	if err != nil {
		logger.Error(ctx, "error initializing database", "error", err.Error())
		return nil, err
	}

	store := session.NewPersistentStore(metadata.NewSQLiteRepository(db))
	apiClient := client.NewHTTPClient(client.Endpoints{
		Auth:      c.AuthURL,
		Dashboard: c.DashboardURL,
		Thumbnail: c.ThumbnailURL,
	}, store, logger, client.WithTimeout(c.RequestTimeout))

	return &App{
		config:        c,
		authService:   services.NewAuthService(apiClient),
		studioService: services.NewStudioService(apiClient),
		logger:        logger,
		db:            db,
		reader:        bufio.NewReader(os.Stdin),
		out:           os.Stdout,
	}, nil
}

// Run restores the previous session, if any, and blocks in the REPL until
// the user exits or input ends.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	if _, err := a.authService.Restore(ctx); err != nil {
		a.logger.Warn(ctx, "could not restore session", "error", err.Error())
	}

	displayBanner(a.out)
	fmt.Fprintln(a.out, "Welcome to VidWave CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, a.reader)
	return nil
}

func displayBanner(w io.Writer) {
	fmt.Fprintln(w, figure.NewFigure("VidWave", "cybermedium", true).String())
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) isLoggedIn() bool {
	return a.authService.User() != nil
}

func (a *App) isAuthor() bool {
	return a.authService.IsAuthor()
}

func (a *App) getStatus() string {
	u := a.authService.User()
	if u == nil {
		return "(guest)"
	}
	if u.IsAuthor {
		return fmt.Sprintf("(%s, author)", u.Username)
	}
	return fmt.Sprintf("(%s)", u.Username)
}

// Refresh re-reads the session from the server, dropping the cached user if
// the stored token is no longer accepted.
func (a *App) Refresh(ctx context.Context) error {
	_, err := a.authService.Restore(ctx)
	return err
}
