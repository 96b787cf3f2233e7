// Package server initializes and runs the activities server: it selects a
// storage backend, runs migrations, seeds teacher accounts, and serves the
// HTTP API until interrupted.
package server

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lmittmann/tint"
	"golang.org/x/term"

	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/logging"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/server/config"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/server/repositories/repomanager"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/server/repositories/teachers"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/server/rest"
	"github.com/cmurillo08gap/skills-integrate-mcp-with-copilot/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	db     *sql.DB
	server *rest.Server
}

func newLogger() logging.Logger {
	var handler slog.Handler
	if term.IsTerminal(int(os.Stderr.Fd())) {
		handler = tint.NewHandler(os.Stderr, nil)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, nil)
	}
	return logging.NewSlogLogger(slog.New(handler))
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	logger := newLogger()

	var db *sql.DB
	var m repomanager.RepositoryManager

	if cfg.DatabaseDSN != "" {
		var err error
		db, err = sql.Open("pgx", cfg.DatabaseDSN)
		if err != nil {
			return nil, fmt.Errorf("db init error: %w", err)
		}

		pm := repomanager.NewPostgresRepositoryManager()
		if err := pm.RunMigrations(ctx, db); err != nil {
			return nil, fmt.Errorf("migration error: %w", err)
		}
		m = pm
	} else {
		m = repomanager.NewMemoryRepositoryManager()
	}

	authService := services.NewAuthService(db, m, cfg)
	activityService := services.NewActivityService(db, m)

	seed, err := teachers.LoadSeedFile(cfg.TeachersFile)
	if err != nil {
		return nil, fmt.Errorf("loading teacher credentials: %w", err)
	}
	if err := authService.SeedTeachers(ctx, seed); err != nil {
		return nil, err
	}
	if len(seed) == 0 {
		logger.Warn(ctx, "no teacher accounts loaded, login is disabled", "file", cfg.TeachersFile)
	}

	return &App{
		config: cfg,
		logger: logger,
		db:     db,
		server: rest.NewServer(cfg, logger, authService, activityService),
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "starting app")

	app.initSignalHandler(cancelFunc)

	if err := app.server.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
	}

	if app.db != nil {
		_ = app.db.Close()
	}
}
