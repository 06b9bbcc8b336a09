package pg

import (
	"context"
	"embed"
	"errors"
	"io"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// embeddedMigrations carries the schema this module depends on, currently the
// user_profiles table holding per-user locale preferences.
//
//go:embed migrations/*.sql
var embeddedMigrations embed.FS

// Migrate applies pending schema migrations with goose. When
// cfg.MigrationsPath is empty the migrations embedded in this package are
// used; otherwise the on-disk directory is applied, which lets an application
// extend the schema with its own migrations.
//
// goose speaks database/sql, so the pgx pool is exposed through its stdlib
// adapter; the pool itself stays untouched.
func Migrate(ctx context.Context, pool *pgxpool.Pool, cfg Config, log *slog.Logger) error {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	dir := "migrations"
	if cfg.MigrationsPath == "" {
		goose.SetBaseFS(embeddedMigrations)
		defer goose.SetBaseFS(nil)
	} else {
		info, err := os.Stat(cfg.MigrationsPath)
		if err != nil || !info.IsDir() {
			return ErrMigrationsDirNotFound
		}
		dir = cfg.MigrationsPath
	}

	if cfg.MigrationsTable != "" {
		goose.SetTableName(cfg.MigrationsTable)
	}
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}

	db := stdlib.OpenDBFromPool(pool)
	defer func() { _ = db.Close() }()

	log.InfoContext(ctx, "applying database migrations", slog.String("dir", dir))
	if err := goose.UpContext(ctx, db, dir); err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}
	return nil
}
