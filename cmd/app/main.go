package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/go-pg/pg/v10"
	"github.com/namsral/flag"

	"github.com/daniilsolovey/blog-portal/config"
	_ "github.com/daniilsolovey/blog-portal/docs"
	"github.com/daniilsolovey/blog-portal/internal/app"
	"github.com/daniilsolovey/blog-portal/internal/db"
)

var (
	flConfig      = flag.String("config", "config.toml", "path to TOML configuration file")
	flDebug       = flag.Bool("debug", false, "enable debug mode")
	flMigrate     = flag.Bool("migrate", false, "apply database migrations before start")
	flDatabaseURL = flag.String("database-url", "", "database connection URL, overrides [Database] (DATABASE_URL)")
	cfg           config.Config
	lg            *slog.Logger
)

// @title Blog Portal API
// @version 1.0
// @description Blog engine on a page tree: blogs, dated entries, categories, tags, feeds
// @host localhost:3000
// @BasePath /

func main() {
	flag.Parse()

	lg = newLogger(*flDebug)

	_, err := toml.DecodeFile(*flConfig, &cfg)
	if err != nil {
		exitOnError(err)
	}

	exitOnError(cfg.ApplyDatabaseURL(*flDatabaseURL))

	ctx := context.Background()

	if *flMigrate {
		connCfg, err := db.ConnConfig(&cfg.Database)
		exitOnError(err)
		exitOnError(db.Migrate(ctx, connCfg))
		lg.Info("migrations applied")
	}

	dbc := pg.Connect(&cfg.Database)
	if err := dbc.Ping(ctx); err != nil {
		dbc.Close()
		exitOnError(err)
	}

	service, err := app.New(&cfg, dbc, lg)
	exitOnError(err)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		err := service.Run(ctx)
		if err != nil {
			lg.Error("service run failed", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	lg.Info("service stopping")

	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	err = service.GracefulShutdown(shutdownCtx)
	if err != nil {
		lg.Error("service graceful shutdown failed", "error", err)
	}

	if err := dbc.Close(); err != nil {
		lg.Error("database close failed", "error", err)
	}
}

func newLogger(debug bool) *slog.Logger {
	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
}

func exitOnError(err error) {
	if err != nil {
		lg.Error("app init failed", "error", err)
		os.Exit(1)
	}
}
