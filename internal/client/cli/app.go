// Package cli implements the interactive activities client: a REPL that
// wires user commands to the auth and roster services.
package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/client/api"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/client/config"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/client/localdb"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/client/notify"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/client/repositories/tokens"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/client/services"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/logging"
)

type App struct {
	config        *config.Config
	authService   services.AuthService
	rosterService services.RosterService
	notifications *notify.Center
	logger        logging.Logger
	db            *sql.DB
	reader        *bufio.Reader
	out           io.Writer
}

func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	dsn := cfg.DatabasePath
	if dsn == "" {
		var err error
		dsn, err = localdb.DefaultPath()
		if err != nil {
			return nil, fmt.Errorf("resolving database path: %w", err)
		}
	}

	db, err := localdb.Open(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("opening local database: %w", err)
	}

	client := api.NewHTTPClient(cfg.ServerBaseURL)
	store := tokens.NewSQLiteStore(db)

	out := io.Writer(os.Stdout)
	app := &App{
		config:        cfg,
		authService:   services.NewAuthService(client, store, logger),
		rosterService: services.NewRosterService(client),
		logger:        logger,
		db:            db,
		reader:        bufio.NewReader(os.Stdin),
		out:           out,
	}
	app.notifications = notify.NewCenter(cfg.NotificationTTL, func(m *notify.Message) {
		if m != nil {
			fmt.Fprintf(out, "[%s] %s\n", m.Kind, m.Text)
		}
	})
	return app, nil
}

func (a *App) isAdmin() bool {
	return a.authService.Session().Authenticated
}

// status feeds the REPL prompt: the admin username when logged in, empty
// otherwise.
func (a *App) status() string {
	s := a.authService.Session()
	if s.Authenticated {
		return fmt.Sprintf("(%s) ", s.Username)
	}
	return ""
}

// Run sequences startup: the persisted session is restored first, and only
// then is the roster fetched and rendered, so admin affordances never flash
// under a stale assumption. Afterwards control passes to the REPL.
func (a *App) Run(ctx context.Context) {
	defer a.Close()

	a.authService.Restore(ctx)
	_ = a.List(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.status, scanner)
}

func (a *App) Close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}
