package db

import (
	"context"
	"embed"
	"io/fs"
	"log/slog"
	"strconv"

	"little-lemon/internal/pkg/errs"

	"github.com/golang-migrate/migrate/v4"
	pgxmigrate "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
)

//go:embed migrations/*.sql
var migrationFS embed.FS

var errDirty = errs.New("database is dirty, a previous migration failed halfway")

// Migrate applies pending embedded migrations and returns the versions it
// applied. A database that is already current yields an empty slice.
func Migrate(ctx context.Context, pool *pgxpool.Pool, logger *slog.Logger) ([]string, error) {
	src, err := iofs.New(migrationFS, "migrations")
	if err != nil {
		return nil, errs.Wrap(err, "open embedded migrations")
	}

	// closing the database/sql wrapper leaves the pool open
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, errs.Wrap(err, "ping before migrate")
	}
	driver, err := pgxmigrate.WithInstance(sqlDB, &pgxmigrate.Config{})
	if err != nil {
		return nil, errs.Wrap(err, "create migration driver")
	}

	m, err := migrate.NewWithInstance("iofs", src, "pgx5", driver)
	if err != nil {
		_ = driver.Close()
		return nil, errs.Wrap(err, "create migrate instance")
	}
	defer m.Close()

	before, err := currentVersion(m)
	if err != nil {
		return nil, err
	}

	if err := m.Up(); err != nil && !errs.Is(err, migrate.ErrNoChange) {
		return nil, errs.Wrap(err, "apply migrations")
	}

	after, err := currentVersion(m)
	if err != nil {
		return nil, err
	}

	applied, err := versionsBetween(src, before, after)
	if err != nil {
		return nil, err
	}
	for _, v := range applied {
		logger.Info("migration applied", slog.String("version", v))
	}
	return applied, nil
}

func currentVersion(m *migrate.Migrate) (uint, error) {
	v, dirty, err := m.Version()
	if errs.Is(err, migrate.ErrNilVersion) {
		return 0, nil
	}
	if err != nil {
		return 0, errs.Wrap(err, "read migration version")
	}
	if dirty {
		return 0, errs.Wrapf(errDirty, "version %d", v)
	}
	return v, nil
}

// versionsBetween lists source versions in (from, to].
func versionsBetween(src source.Driver, from, to uint) ([]string, error) {
	if to <= from {
		return nil, nil
	}
	var out []string
	v, err := src.First()
	for err == nil && v <= to {
		if v > from {
			out = append(out, strconv.FormatUint(uint64(v), 10))
		}
		v, err = src.Next(v)
	}
	if err != nil && !errs.Is(err, fs.ErrNotExist) {
		return nil, errs.Wrap(err, "list migrations")
	}
	return out, nil
}
