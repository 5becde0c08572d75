package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-pg/pg/v10"
	"github.com/labstack/echo/v4"

	"github.com/daniilsolovey/blog-portal/config"
	"github.com/daniilsolovey/blog-portal/internal/blog"
	"github.com/daniilsolovey/blog-portal/internal/db"
	"github.com/daniilsolovey/blog-portal/internal/rest"
	"github.com/daniilsolovey/blog-portal/internal/rpc"
)

type App struct {
	DB      *db.Repository
	Manager *blog.Manager
	Logger  *slog.Logger
	Echo    *echo.Echo
	Config  *config.Config
}

func New(cfg *config.Config, dbConnect *pg.DB, logger *slog.Logger) (*App, error) {
	site, err := cfg.BlogSite()
	if err != nil {
		return nil, err
	}

	if cfg.LogQueries {
		dbConnect.AddQueryHook(db.NewQueryHook(logger))
	}

	repo := db.New(dbConnect)
	manager := blog.NewManager(repo, site, cfg.Disqus())
	handler := rest.NewBlogHandler(manager, logger)

	return &App{
		DB:      repo,
		Manager: manager,
		Logger:  logger,
		Echo:    handler.RegisterRoutes(rpc.New(logger, manager)),
		Config:  cfg,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	if err := a.DB.Ping(ctx); err != nil {
		return fmt.Errorf("database is not reachable: %w", err)
	}

	addr := fmt.Sprintf("%s:%d", a.Config.App.Host, a.Config.App.Port)
	a.Logger.InfoContext(ctx, "http server starting", "addr", addr, "rootUrl", a.Config.Site.RootURL)

	return a.Echo.Start(addr)
}

func (a *App) GracefulShutdown(ctx context.Context) error {
	err := a.Echo.Shutdown(ctx)
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}
