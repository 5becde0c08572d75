package db

import (
	"context"
	"embed"
	"fmt"
	"net"
	"strconv"

	"github.com/go-pg/pg/v10"
	"github.com/jackc/pgx"
	"github.com/jackc/pgx/stdlib"
	"github.com/pressly/goose/v3"
)

const migrationsDir = "migrations"

//go:embed migrations/*.sql
var migrations embed.FS

// ConnConfig converts go-pg options into a pgx connection config for goose.
func ConnConfig(opts *pg.Options) (pgx.ConnConfig, error) {
	cfg := pgx.ConnConfig{
		Database:  opts.Database,
		User:      opts.User,
		Password:  opts.Password,
		TLSConfig: opts.TLSConfig,
	}

	host, port, err := net.SplitHostPort(opts.Addr)
	if err != nil {
		return cfg, fmt.Errorf("parse database address %q: %w", opts.Addr, err)
	}

	p, err := strconv.ParseUint(port, 10, 16)
	if err != nil {
		return cfg, fmt.Errorf("parse database port %q: %w", port, err)
	}

	cfg.Host, cfg.Port = host, uint16(p)
	return cfg, nil
}

// Migrate applies the embedded goose migrations.
func Migrate(ctx context.Context, cfg pgx.ConnConfig) error {
	sqldb := stdlib.OpenDB(cfg)
	defer sqldb.Close()

	if err := sqldb.PingContext(ctx); err != nil {
		return fmt.Errorf("ping db: %w", err)
	}

	goose.SetBaseFS(migrations)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, sqldb, migrationsDir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}
