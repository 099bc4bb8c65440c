// Package migrations owns the database schema. Files under sql/ are applied by goose.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"io/fs"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver
	"github.com/pressly/goose/v3"

	"foodgram/internal/errors"
)

const (
	driverName = "pgx"
	dialect    = "postgres"
	dir        = "sql"
)

//go:embed sql/*.sql
var files embed.FS

// Command is a goose command supported by cmd/migrate.
type Command string

const (
	CommandUp      Command = "up"
	CommandDown    Command = "down"
	CommandStatus  Command = "status"
	CommandVersion Command = "version"
	CommandReset   Command = "reset"
)

// FS exposes the embedded migration files.
func FS() fs.FS {
	return files
}

// Open connects through the pgx stdlib driver.
func Open(ctx context.Context, dsn string) (*sql.DB, error) {
	if dsn == "" {
		return nil, errors.New("migrations dsn is empty")
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open migrations database")
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()

		return nil, errors.Wrap(err, "failed to ping migrations database")
	}

	return db, nil
}

// Run executes command against db using the embedded migrations.
func Run(ctx context.Context, db *sql.DB, command Command) error {
	goose.SetBaseFS(files)
	defer goose.SetBaseFS(nil)

	if err := goose.SetDialect(dialect); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	var err error
	switch command {
	case CommandUp:
		err = goose.UpContext(ctx, db, dir)
	case CommandDown:
		err = goose.DownContext(ctx, db, dir)
	case CommandStatus:
		err = goose.StatusContext(ctx, db, dir)
	case CommandVersion:
		err = goose.VersionContext(ctx, db, dir)
	case CommandReset:
		err = goose.ResetContext(ctx, db, dir)
	default:
		return errors.Errorf("unsupported migration command %q", command)
	}

	return errors.Wrapf(err, "goose %s", command)
}
